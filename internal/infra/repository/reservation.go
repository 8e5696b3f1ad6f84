package repository

import (
	"context"

	"badge-promotion-engine/internal/domain/reservation"
	"badge-promotion-engine/internal/infra"
	"badge-promotion-engine/internal/infra/repository/converter"
	sqlc "badge-promotion-engine/internal/infra/sqlc/generated"
	"badge-promotion-engine/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type ReservationWriteQueries interface {
	InsertPromotionBadge(ctx context.Context, db sqlc.DBTX, arg sqlc.InsertPromotionBadgeParams) (uuid.UUID, error)
	DeleteActivePromotionBadges(ctx context.Context, db sqlc.DBTX, promotionID uuid.UUID) ([]uuid.UUID, error)
	DeleteActivePromotionBadgesByIDs(ctx context.Context, db sqlc.DBTX, arg sqlc.DeleteActivePromotionBadgesByIDsParams) ([]uuid.UUID, error)
	ConsumePromotionBadges(ctx context.Context, db sqlc.DBTX, promotionID uuid.UUID) (int64, error)
}

type ReservationRepository struct {
	queries ReservationWriteQueries
}

func NewReservationRepository(queries ReservationWriteQueries) *ReservationRepository {
	return &ReservationRepository{queries: queries}
}

// Insert relies on the partial unique index over unconsumed reservations.
// The insert is skipped, not failed, when the badge application is taken, so
// the surrounding transaction stays usable for the follow-up owner lookup.
func (r *ReservationRepository) Insert(ctx context.Context, tx sqlc.DBTX, res *reservation.Reservation) (bool, error) {
	_, err := r.queries.InsertPromotionBadge(ctx, tx, converter.ReservationToInsertParams(res))
	if err != nil {
		if pgconv.IsNoRows(err) {
			return false, nil
		}
		return false, infra.WrapRepoErr("failed to insert reservation", err)
	}
	return true, nil
}

// ReleaseAll is idempotent: releasing a promotion with no active
// reservations returns an empty slice.
func (r *ReservationRepository) ReleaseAll(ctx context.Context, tx sqlc.DBTX, promotionID uuid.UUID) ([]uuid.UUID, error) {
	ids, err := r.queries.DeleteActivePromotionBadges(ctx, tx, promotionID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to release reservations", err)
	}
	return ids, nil
}

func (r *ReservationRepository) ReleaseSome(ctx context.Context, tx sqlc.DBTX, promotionID uuid.UUID, badgeApplicationIDs []uuid.UUID) ([]uuid.UUID, error) {
	ids, err := r.queries.DeleteActivePromotionBadgesByIDs(ctx, tx, sqlc.DeleteActivePromotionBadgesByIDsParams{
		PromotionID:         promotionID,
		BadgeApplicationIds: badgeApplicationIDs,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to release selected reservations", err)
	}
	return ids, nil
}

func (r *ReservationRepository) ConsumeAll(ctx context.Context, tx sqlc.DBTX, promotionID uuid.UUID) (int64, error) {
	n, err := r.queries.ConsumePromotionBadges(ctx, tx, promotionID)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to consume reservations", err)
	}
	return n, nil
}
