package queries

import (
	"time"

	"badge-promotion-engine/internal/domain/badge"
	"badge-promotion-engine/internal/domain/promotion"

	"github.com/google/uuid"
)

// Read models (DTO for read side)
type PromotionView struct {
	ID           uuid.UUID  `json:"id"`
	TemplateID   uuid.UUID  `json:"templateId"`
	TemplateName string     `json:"templateName"`
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

// PromotionBadgeView is a reservation joined with its badge application and
// the current badge definition.
type PromotionBadgeView struct {
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

type PromotionDetail struct {
	Promotion *PromotionView
	Badges    []*PromotionBadgeView
}

type PromotionListItem struct {
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

type PromotionFilters struct {
	CreatedBy *uuid.UUID
	Status    *promotion.Status
}

// ValidationInput is everything the evaluator needs, read from one snapshot.
type ValidationInput struct {
	PromotionID uuid.UUID
	CreatedBy   uuid.UUID
	Rules       []promotion.Rule
	Held        []badge.Key
}

type ValidationView struct {
	PromotionID  uuid.UUID                      `json:"promotionId"`
	IsValid      bool                           `json:"isValid"`
	Requirements []promotion.Requirement        `json:"requirements"`
	Missing      []promotion.MissingRequirement `json:"missing"`
}
