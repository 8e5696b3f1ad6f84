package request

import (
	"badge-promotion-engine/internal/domain/promotion"
	"badge-promotion-engine/internal/pkg/errs"
	"badge-promotion-engine/internal/usecase/queries"

	"github.com/google/uuid"
)

var ErrInvalidCreatedBy = errs.Validation("created_by must be a UUID")

type CreatePromotionRequest struct {
	TemplateID uuid.UUID `json:"templateId" binding:"required"`
}

// BadgeApplicationIDsRequest is the body of both add and remove badge calls.
// Size and uniqueness are checked by the reservation batch.
type BadgeApplicationIDsRequest struct {
	BadgeApplicationIDs []uuid.UUID `json:"badgeApplicationIds" binding:"required"`
}

type RejectPromotionRequest struct {
	RejectReason string `json:"rejectReason"`
}

type ListPromotionsQuery struct {
	Status    string `form:"status"`
	CreatedBy string `form:"created_by"`
	Limit     int    `form:"limit" binding:"omitempty,min=1,max=100"`
	After     string `form:"after"`
}

func (q *ListPromotionsQuery) ToFilters() (queries.PromotionFilters, error) {
	var f queries.PromotionFilters
	if q.Status != "" {
		st, err := promotion.NewStatus(q.Status)
		if err != nil {
			return queries.PromotionFilters{}, err
		}
		f.Status = &st
	}
	if q.CreatedBy != "" {
		id, err := uuid.Parse(q.CreatedBy)
		if err != nil {
			return queries.PromotionFilters{}, ErrInvalidCreatedBy
		}
		f.CreatedBy = &id
	}
	return f, nil
}

func (q *ListPromotionsQuery) ToCursor() *queries.Cursor {
	if q.After == "" {
		return nil
	}
	return &queries.Cursor{After: q.After}
}
