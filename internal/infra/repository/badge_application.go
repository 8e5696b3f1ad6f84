package repository

import (
	"context"

	"badge-promotion-engine/internal/infra"
	sqlc "badge-promotion-engine/internal/infra/sqlc/generated"

	"github.com/google/uuid"
)

type BadgeApplicationWriteQueries interface {
	MarkBadgeApplicationsUsedByPromotion(ctx context.Context, db sqlc.DBTX, promotionID uuid.UUID) (int64, error)
	RevertBadgeApplicationsToAccepted(ctx context.Context, db sqlc.DBTX, ids []uuid.UUID) (int64, error)
}

type BadgeApplicationRepository struct {
	queries BadgeApplicationWriteQueries
}

func NewBadgeApplicationRepository(queries BadgeApplicationWriteQueries) *BadgeApplicationRepository {
	return &BadgeApplicationRepository{queries: queries}
}

// MarkUsedByPromotion moves every accepted application reserved by the
// promotion to used_in_promotion and returns how many moved.
func (r *BadgeApplicationRepository) MarkUsedByPromotion(ctx context.Context, tx sqlc.DBTX, promotionID uuid.UUID) (int64, error) {
	n, err := r.queries.MarkBadgeApplicationsUsedByPromotion(ctx, tx, promotionID)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to mark badge applications used", err)
	}
	return n, nil
}

func (r *BadgeApplicationRepository) RevertToAccepted(ctx context.Context, tx sqlc.DBTX, ids []uuid.UUID) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	n, err := r.queries.RevertBadgeApplicationsToAccepted(ctx, tx, ids)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to revert badge applications", err)
	}
	return n, nil
}
