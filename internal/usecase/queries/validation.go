package queries

import (
	"context"

	"badge-promotion-engine/internal/domain/promotion"
	"badge-promotion-engine/internal/domain/user"
	"badge-promotion-engine/internal/infra"

	"github.com/google/uuid"
)

type ValidationReadStore interface {
	LoadValidationInput(ctx context.Context, promotionID uuid.UUID) (*ValidationInput, error)
}

// ValidationQueries answers "would this promotion pass submit right now".
// It never writes and never locks.
type ValidationQueries interface {
	Validate(ctx context.Context, promotionID uuid.UUID, actor user.Actor) (*ValidationView, error)
}

type validationQueriesImpl struct {
	readStore ValidationReadStore
}

func NewValidationQueries(readStore ValidationReadStore) ValidationQueries {
	return &validationQueriesImpl{readStore: readStore}
}

func (q *validationQueriesImpl) Validate(ctx context.Context, promotionID uuid.UUID, actor user.Actor) (*ValidationView, error) {
	input, err := q.readStore.LoadValidationInput(ctx, promotionID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrPromotionNotFound
		}
		return nil, err
	}
	if !canView(actor, input.CreatedBy) {
		return nil, ErrPromotionNotFound
	}

	result := promotion.Evaluate(input.Rules, input.Held)
	return &ValidationView{
		PromotionID:  input.PromotionID,
		IsValid:      result.IsValid,
		Requirements: result.Requirements,
		Missing:      result.Missing,
	}, nil
}
