package repository

import (
	"context"
	"time"

	"badge-promotion-engine/internal/domain/promotion"
	"badge-promotion-engine/internal/infra"
	"badge-promotion-engine/internal/infra/repository/converter"
	sqlc "badge-promotion-engine/internal/infra/sqlc/generated"
	"badge-promotion-engine/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type PromotionWriteQueries interface {
	CreatePromotion(ctx context.Context, db sqlc.DBTX, arg sqlc.CreatePromotionParams) (sqlc.Promotions, error)
	LockDraftPromotion(ctx context.Context, db sqlc.DBTX, arg sqlc.LockDraftPromotionParams) (sqlc.Promotions, error)
	SubmitPromotion(ctx context.Context, db sqlc.DBTX, arg sqlc.SubmitPromotionParams) (sqlc.Promotions, error)
	ApprovePromotion(ctx context.Context, db sqlc.DBTX, arg sqlc.ApprovePromotionParams) (sqlc.Promotions, error)
	RejectPromotion(ctx context.Context, db sqlc.DBTX, arg sqlc.RejectPromotionParams) (sqlc.Promotions, error)
	DeleteDraftPromotion(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (int64, error)
}

type PromotionRepository struct {
	queries PromotionWriteQueries
}

func NewPromotionRepository(queries PromotionWriteQueries) *PromotionRepository {
	return &PromotionRepository{queries: queries}
}

func (r *PromotionRepository) Create(ctx context.Context, tx sqlc.DBTX, p *promotion.Promotion) error {
	if _, err := r.queries.CreatePromotion(ctx, tx, converter.PromotionToCreateParams(p)); err != nil {
		return infra.WrapRepoErr("failed to create promotion", err)
	}
	return nil
}

// LockDraft row-locks a draft promotion for the rest of the transaction.
func (r *PromotionRepository) LockDraft(ctx context.Context, tx sqlc.DBTX, id uuid.UUID, now time.Time) (*promotion.Promotion, error) {
	row, err := r.queries.LockDraftPromotion(ctx, tx, sqlc.LockDraftPromotionParams{
		UpdatedAt: pgconv.TimeToPgtype(now),
		ID:        id,
	})
	if err != nil {
		return nil, guardErr("failed to lock draft promotion", err)
	}

	p, err := converter.PromotionFromRow(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to convert promotion", err, infra.KindDataIntegrity)
	}
	return p, nil
}

func (r *PromotionRepository) Submit(ctx context.Context, tx sqlc.DBTX, p *promotion.Promotion) error {
	_, err := r.queries.SubmitPromotion(ctx, tx, sqlc.SubmitPromotionParams{
		SubmittedAt: pgconv.TimePtrToPgtype(p.SubmittedAt()),
		ID:          p.ID(),
	})
	if err != nil {
		return guardErr("failed to submit promotion", err)
	}
	return nil
}

func (r *PromotionRepository) Approve(ctx context.Context, tx sqlc.DBTX, p *promotion.Promotion) error {
	_, err := r.queries.ApprovePromotion(ctx, tx, sqlc.ApprovePromotionParams{
		ApprovedAt: pgconv.TimePtrToPgtype(p.ApprovedAt()),
		ApprovedBy: pgconv.UUIDPtrToPgtype(p.ApprovedBy()),
		ID:         p.ID(),
	})
	if err != nil {
		return guardErr("failed to approve promotion", err)
	}
	return nil
}

func (r *PromotionRepository) Reject(ctx context.Context, tx sqlc.DBTX, p *promotion.Promotion) error {
	_, err := r.queries.RejectPromotion(ctx, tx, sqlc.RejectPromotionParams{
		RejectedAt:   pgconv.TimePtrToPgtype(p.RejectedAt()),
		RejectedBy:   pgconv.UUIDPtrToPgtype(p.RejectedBy()),
		RejectReason: pgconv.StringPtrToPgtype(p.RejectReason()),
		ID:           p.ID(),
	})
	if err != nil {
		return guardErr("failed to reject promotion", err)
	}
	return nil
}

func (r *PromotionRepository) DeleteDraft(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) error {
	n, err := r.queries.DeleteDraftPromotion(ctx, tx, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete draft promotion", err)
	}
	if n == 0 {
		return infra.WrapRepoErr("draft promotion not found", nil, infra.KindNotFound)
	}
	return nil
}

// A guarded UPDATE that matches nothing returns no row.
func guardErr(msg string, err error) error {
	if pgconv.IsNoRows(err) {
		return infra.WrapRepoErr(msg+": status guard not met", err, infra.KindNotFound)
	}
	return infra.WrapRepoErr(msg, err)
}
