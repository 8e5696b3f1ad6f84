package readstore

import (
	"context"

	"badge-promotion-engine/internal/domain/badge"
	"badge-promotion-engine/internal/infra"
	"badge-promotion-engine/internal/infra/repository/converter"
	sqlc "badge-promotion-engine/internal/infra/sqlc/generated"
	"badge-promotion-engine/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type BadgeReadQueries interface {
	GetBadgeApplicationForReservation(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.GetBadgeApplicationForReservationRow, error)
	GetActiveReservationOwner(ctx context.Context, db sqlc.DBTX, badgeApplicationID uuid.UUID) (uuid.UUID, error)
	ListHeldBadgeKeys(ctx context.Context, db sqlc.DBTX, promotionID uuid.UUID) ([]sqlc.ListHeldBadgeKeysRow, error)
	CountActivePromotionBadges(ctx context.Context, db sqlc.DBTX, promotionID uuid.UUID) (int64, error)
}

// BadgeReadStore is the engine's view of the badge catalog and of the
// reservation ledger.
type BadgeReadStore struct {
	queries BadgeReadQueries
	db      sqlc.DBTX
}

func NewBadgeReadStore(queries BadgeReadQueries, db sqlc.DBTX) *BadgeReadStore {
	return &BadgeReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *BadgeReadStore) FindForReservation(ctx context.Context, id uuid.UUID) (*badge.Application, error) {
	row, err := r.queries.GetBadgeApplicationForReservation(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("badge application not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find badge application", err)
	}

	app, err := converter.BadgeApplicationFromRow(row)
	if err != nil {
		return nil, infra.WrapRepoErr("stored badge application is malformed", err, infra.KindDataIntegrity)
	}
	return app, nil
}

func (r *BadgeReadStore) ActiveReservationOwner(ctx context.Context, badgeApplicationID uuid.UUID) (uuid.UUID, error) {
	owner, err := r.queries.GetActiveReservationOwner(ctx, r.db, badgeApplicationID)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return uuid.Nil, infra.WrapRepoErr("no active reservation", err, infra.KindNotFound)
		}
		return uuid.Nil, infra.WrapRepoErr("failed to find reservation owner", err)
	}
	return owner, nil
}

func (r *BadgeReadStore) HeldBadgeKeys(ctx context.Context, promotionID uuid.UUID) ([]badge.Key, error) {
	return heldBadgeKeys(ctx, r.queries, r.db, promotionID)
}

func (r *BadgeReadStore) ActiveReservationCount(ctx context.Context, promotionID uuid.UUID) (int64, error) {
	n, err := r.queries.CountActivePromotionBadges(ctx, r.db, promotionID)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to count active reservations", err)
	}
	return n, nil
}

type heldBadgeKeyLister interface {
	ListHeldBadgeKeys(ctx context.Context, db sqlc.DBTX, promotionID uuid.UUID) ([]sqlc.ListHeldBadgeKeysRow, error)
}

func heldBadgeKeys(ctx context.Context, q heldBadgeKeyLister, db sqlc.DBTX, promotionID uuid.UUID) ([]badge.Key, error) {
	rows, err := q.ListHeldBadgeKeys(ctx, db, promotionID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list held badges", err)
	}

	keys := make([]badge.Key, 0, len(rows))
	for _, row := range rows {
		key, err := converter.BadgeKeyFromRow(row)
		if err != nil {
			return nil, infra.WrapRepoErr("stored badge definition is malformed", err, infra.KindDataIntegrity)
		}
		keys = append(keys, key)
	}
	return keys, nil
}
