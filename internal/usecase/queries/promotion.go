package queries

import (
	"context"
	"time"

	"badge-promotion-engine/internal/domain/user"
	"badge-promotion-engine/internal/infra"
	"badge-promotion-engine/internal/pkg/errs"

	"github.com/google/uuid"
)

// Hidden and missing promotions are indistinguishable to the caller.
var ErrPromotionNotFound = errs.New("promotion not found or not visible")

type PromotionReadStore interface {
	FindDetailByID(ctx context.Context, id uuid.UUID) (*PromotionDetail, error)
	FindFirstPage(ctx context.Context, filters PromotionFilters, limit int32) ([]*PromotionListItem, error)
	FindKeyset(ctx context.Context, filters PromotionFilters, lastCreatedAt time.Time, lastID uuid.UUID, limit int32) ([]*PromotionListItem, error)
}

type PromotionQueries interface {
	GetByID(ctx context.Context, id uuid.UUID, actor user.Actor) (*PromotionDetail, error)
	List(ctx context.Context, actor user.Actor, filters PromotionFilters, cursor *Cursor, limit int) ([]*PromotionListItem, *Cursor, error)
}

type promotionQueriesImpl struct {
	readStore PromotionReadStore
}

func NewPromotionQueries(readStore PromotionReadStore) PromotionQueries {
	return &promotionQueriesImpl{readStore: readStore}
}

func (q *promotionQueriesImpl) GetByID(ctx context.Context, id uuid.UUID, actor user.Actor) (*PromotionDetail, error) {
	detail, err := q.readStore.FindDetailByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrPromotionNotFound
		}
		return nil, err
	}
	if !canView(actor, detail.Promotion.CreatedBy) {
		return nil, ErrPromotionNotFound
	}
	return detail, nil
}

// List scopes members to their own promotions. Admins see everything unless
// they filter by creator.
func (q *promotionQueriesImpl) List(ctx context.Context, actor user.Actor, filters PromotionFilters, cursor *Cursor, limit int) ([]*PromotionListItem, *Cursor, error) {
	if !actor.IsAdmin() {
		own := actor.UserID()
		filters.CreatedBy = &own
	}

	limit = ValidateLimit(limit)
	var rows []*PromotionListItem
	var err error
	if cursor == nil || cursor.After == "" {
		rows, err = q.readStore.FindFirstPage(ctx, filters, int32(limit+1))
	} else {
		lastCreatedAt, lastID, derr := DecodeAfterCursor(cursor.After)
		if derr != nil {
			return nil, nil, ErrInvalidCursor
		}
		rows, err = q.readStore.FindKeyset(ctx, filters, lastCreatedAt, lastID, int32(limit+1))
	}
	if err != nil {
		return nil, nil, err
	}

	var next *Cursor
	if len(rows) > limit {
		last := rows[limit-1]
		next = &Cursor{After: EncodeAfterCursor(last.CreatedAt, last.ID)}
		rows = rows[:limit]
	}
	return rows, next, nil
}

func canView(actor user.Actor, ownerID uuid.UUID) bool {
	return actor.IsAdmin() || actor.Is(ownerID)
}
