package response

import (
	"time"

	"badge-promotion-engine/internal/domain/promotion"
	"badge-promotion-engine/internal/usecase/commands"
	"badge-promotion-engine/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type PromotionResponse struct {
	ID           uuid.UUID  `json:"id"`
	TemplateID   uuid.UUID  `json:"templateId"`
	TemplateName string     `json:"templateName,omitempty"`
	Path         string     `json:"path"`
	FromLevel    string     `json:"fromLevel"`
	ToLevel      string     `json:"toLevel"`
	CreatedBy    uuid.UUID  `json:"createdBy"`
	Status       string     `json:"status"`
	SubmittedAt  *time.Time `json:"submittedAt,omitempty"`
	ApprovedAt   *time.Time `json:"approvedAt,omitempty"`
	ApprovedBy   *uuid.UUID `json:"approvedBy,omitempty"`
	RejectedAt   *time.Time `json:"rejectedAt,omitempty"`
	RejectedBy   *uuid.UUID `json:"rejectedBy,omitempty"`
	RejectReason *string    `json:"rejectReason,omitempty"`
	Executed     bool       `json:"executed"`
	CreatedAt    time.Time  `json:"createdAt"`
	UpdatedAt    time.Time  `json:"updatedAt"`
}

// FromPromotion renders the aggregate returned by a command.
func FromPromotion(p *promotion.Promotion) *PromotionResponse {
	s := p.Snapshot()
	return &PromotionResponse{
		ID:           s.ID,
		TemplateID:   s.TemplateID,
		Path:         s.Path.String(),
		FromLevel:    s.FromLevel.String(),
		ToLevel:      s.ToLevel.String(),
		CreatedBy:    s.CreatedBy,
		Status:       s.Status.String(),
		SubmittedAt:  s.SubmittedAt,
		ApprovedAt:   s.ApprovedAt,
		ApprovedBy:   s.ApprovedBy,
		RejectedAt:   s.RejectedAt,
		RejectedBy:   s.RejectedBy,
		RejectReason: s.RejectReason,
		Executed:     s.Executed,
		CreatedAt:    s.CreatedAt,
		UpdatedAt:    s.UpdatedAt,
	}
}

type PromotionBadgeResponse struct {
	BadgeApplicationID uuid.UUID `json:"badgeApplicationId"`
	BadgeDefinitionID  uuid.UUID `json:"badgeDefinitionId"`
	DefinitionVersion  int32     `json:"definitionVersion"`
	Title              string    `json:"title"`
	Category           string    `json:"category"`
	Level              string    `json:"level"`
	ApplicationStatus  string    `json:"applicationStatus"`
	AssignedBy         uuid.UUID `json:"assignedBy"`
	AssignedAt         time.Time `json:"assignedAt"`
	Consumed           bool      `json:"consumed"`
}

type PromotionDetailResponse struct {
	PromotionResponse
	Badges []*PromotionBadgeResponse `json:"badges"`
}

func FromPromotionDetail(d *queries.PromotionDetail) (*PromotionDetailResponse, error) {
	res := &PromotionDetailResponse{Badges: make([]*PromotionBadgeResponse, 0, len(d.Badges))}
	if err := copier.Copy(&res.PromotionResponse, d.Promotion); err != nil {
		return nil, err
	}
	for _, b := range d.Badges {
		var item PromotionBadgeResponse
		if err := copier.Copy(&item, b); err != nil {
			return nil, err
		}
		res.Badges = append(res.Badges, &item)
	}
	return res, nil
}

type PromotionListItemResponse struct {
	ID           uuid.UUID `json:"id"`
	TemplateID   uuid.UUID `json:"templateId"`
	TemplateName string    `json:"templateName"`
	Path         string    `json:"path"`
	FromLevel    string    `json:"fromLevel"`
	ToLevel      string    `json:"toLevel"`
	CreatedBy    uuid.UUID `json:"createdBy"`
	Status       string    `json:"status"`
	BadgeCount   int32     `json:"badgeCount"`
	CreatedAt    time.Time `json:"createdAt"`
}

type PromotionListResponse struct {
	Items      []*PromotionListItemResponse `json:"items"`
	NextCursor *string                      `json:"next_cursor,omitempty"`
}

func FromPromotionList(items []*queries.PromotionListItem, next *queries.Cursor) (*PromotionListResponse, error) {
	res := &PromotionListResponse{Items: make([]*PromotionListItemResponse, 0, len(items))}
	for _, it := range items {
		var item PromotionListItemResponse
		if err := copier.Copy(&item, it); err != nil {
			return nil, err
		}
		res.Items = append(res.Items, &item)
	}
	if next != nil && next.After != "" {
		after := next.After
		res.NextCursor = &after
	}
	return res, nil
}

type AddBadgesResponse struct {
	AddedCount          int         `json:"addedCount"`
	BadgeApplicationIDs []uuid.UUID `json:"badgeApplicationIds"`
}

func FromAddedBadges(r *commands.BadgeChangeResult) *AddBadgesResponse {
	return &AddBadgesResponse{AddedCount: r.Count(), BadgeApplicationIDs: nonNilIDs(r.BadgeApplicationIDs)}
}

type RemoveBadgesResponse struct {
	RemovedCount        int         `json:"removedCount"`
	BadgeApplicationIDs []uuid.UUID `json:"badgeApplicationIds"`
}

func FromRemovedBadges(r *commands.BadgeChangeResult) *RemoveBadgesResponse {
	return &RemoveBadgesResponse{RemovedCount: r.Count(), BadgeApplicationIDs: nonNilIDs(r.BadgeApplicationIDs)}
}

func nonNilIDs(ids []uuid.UUID) []uuid.UUID {
	if ids == nil {
		return []uuid.UUID{}
	}
	return ids
}

type ValidationResponse struct {
	PromotionID  uuid.UUID                      `json:"promotionId"`
	IsValid      bool                           `json:"isValid"`
	Requirements []promotion.Requirement        `json:"requirements"`
	Missing      []promotion.MissingRequirement `json:"missing"`
}

func FromValidationView(v *queries.ValidationView) *ValidationResponse {
	res := &ValidationResponse{
		PromotionID:  v.PromotionID,
		IsValid:      v.IsValid,
		Requirements: v.Requirements,
		Missing:      v.Missing,
	}
	if res.Requirements == nil {
		res.Requirements = []promotion.Requirement{}
	}
	if res.Missing == nil {
		res.Missing = []promotion.MissingRequirement{}
	}
	return res
}
