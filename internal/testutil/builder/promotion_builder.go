package builder

import (
	"time"

	"badge-promotion-engine/internal/domain/badge"
	"badge-promotion-engine/internal/domain/promotion"
	"badge-promotion-engine/internal/domain/user"
	"badge-promotion-engine/internal/usecase/queries"

	"github.com/google/uuid"
)

type PromotionBuilder struct {
	ID           uuid.UUID
	TemplateID   uuid.UUID
	Path         promotion.Path
	FromLevel    string
	ToLevel      string
	CreatedBy    uuid.UUID
	Status       promotion.Status
	SubmittedAt  *time.Time
	ApprovedAt   *time.Time
	ApprovedBy   *uuid.UUID
	RejectedAt   *time.Time
	RejectedBy   *uuid.UUID
	RejectReason *string
	Executed     bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func NewPromotionBuilder() *PromotionBuilder {
	now := time.Date(2026, 1, 15, 9, 0, 0, 0, time.UTC)
	return &PromotionBuilder{
		ID:         uuid.New(),
		TemplateID: uuid.New(),
		Path:       promotion.PathTechnical,
		FromLevel:  "J2",
		ToLevel:    "S1",
		CreatedBy:  uuid.New(),
		Status:     promotion.StatusDraft,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

func (b *PromotionBuilder) With(mutate func(*PromotionBuilder)) *PromotionBuilder {
	mutate(b)
	return b
}

func (b *PromotionBuilder) WithStatus(s promotion.Status) *PromotionBuilder {
	b.Status = s
	return b
}

func (b *PromotionBuilder) WithOwner(id uuid.UUID) *PromotionBuilder {
	b.CreatedBy = id
	return b
}

func (b *PromotionBuilder) Owner() user.Actor {
	return user.NewActor(b.CreatedBy, false)
}

func (b *PromotionBuilder) BuildDomain() *promotion.Promotion {
	from, _ := promotion.NewPositionLevel(b.FromLevel)
	to, _ := promotion.NewPositionLevel(b.ToLevel)
	return promotion.Reconstruct(promotion.Snapshot{
		ID:           b.ID,
		TemplateID:   b.TemplateID,
		Path:         b.Path,
		FromLevel:    from,
		ToLevel:      to,
		CreatedBy:    b.CreatedBy,
		Status:       b.Status,
		SubmittedAt:  b.SubmittedAt,
		ApprovedAt:   b.ApprovedAt,
		ApprovedBy:   b.ApprovedBy,
		RejectedAt:   b.RejectedAt,
		RejectedBy:   b.RejectedBy,
		RejectReason: b.RejectReason,
		Executed:     b.Executed,
		CreatedAt:    b.CreatedAt,
		UpdatedAt:    b.UpdatedAt,
	})
}

func (b *PromotionBuilder) BuildView() *queries.PromotionView {
	return &queries.PromotionView{
		ID:           b.ID,
		TemplateID:   b.TemplateID,
		TemplateName: "Senior Engineer",
		Path:         b.Path.String(),
		FromLevel:    b.FromLevel,
		ToLevel:      b.ToLevel,
		CreatedBy:    b.CreatedBy,
		Status:       b.Status.String(),
		SubmittedAt:  b.SubmittedAt,
		ApprovedAt:   b.ApprovedAt,
		ApprovedBy:   b.ApprovedBy,
		RejectedAt:   b.RejectedAt,
		RejectedBy:   b.RejectedBy,
		RejectReason: b.RejectReason,
		Executed:     b.Executed,
		CreatedAt:    b.CreatedAt,
		UpdatedAt:    b.UpdatedAt,
	}
}

func (b *PromotionBuilder) BuildListItem(badgeCount int32) *queries.PromotionListItem {
	return &queries.PromotionListItem{
		ID:           b.ID,
		TemplateID:   b.TemplateID,
		TemplateName: "Senior Engineer",
		Path:         b.Path.String(),
		FromLevel:    b.FromLevel,
		ToLevel:      b.ToLevel,
		CreatedBy:    b.CreatedBy,
		Status:       b.Status.String(),
		BadgeCount:   badgeCount,
		CreatedAt:    b.CreatedAt,
	}
}

type TemplateBuilder struct {
	ID        uuid.UUID
	Name      string
	Path      promotion.Path
	FromLevel string
	ToLevel   string
	Rules     []promotion.Rule
	Active    bool
}

func NewTemplateBuilder() *TemplateBuilder {
	return &TemplateBuilder{
		ID:        uuid.New(),
		Name:      "Technical J2 to S1",
		Path:      promotion.PathTechnical,
		FromLevel: "J2",
		ToLevel:   "S1",
		Rules: []promotion.Rule{
			{Category: promotion.ExactCategory(badge.CategoryTechnical), Level: badge.LevelBronze, Count: 3},
		},
		Active: true,
	}
}

func (b *TemplateBuilder) With(mutate func(*TemplateBuilder)) *TemplateBuilder {
	mutate(b)
	return b
}

func (b *TemplateBuilder) BuildDomain() *promotion.Template {
	from, _ := promotion.NewPositionLevel(b.FromLevel)
	to, _ := promotion.NewPositionLevel(b.ToLevel)
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	return promotion.ReconstructTemplate(b.ID, b.Name, b.Path, from, to, b.Rules, b.Active, now, now)
}

type BadgeApplicationBuilder struct {
	ID                uuid.UUID
	ApplicantID       uuid.UUID
	DefinitionID      uuid.UUID
	DefinitionVersion int
	Title             string
	Category          badge.Category
	Level             badge.Level
	Status            badge.ApplicationStatus
}

func NewBadgeApplicationBuilder() *BadgeApplicationBuilder {
	return &BadgeApplicationBuilder{
		ID:                uuid.New(),
		ApplicantID:       uuid.New(),
		DefinitionID:      uuid.New(),
		DefinitionVersion: 1,
		Title:             "Go concurrency",
		Category:          badge.CategoryTechnical,
		Level:             badge.LevelBronze,
		Status:            badge.StatusAccepted,
	}
}

func (b *BadgeApplicationBuilder) With(mutate func(*BadgeApplicationBuilder)) *BadgeApplicationBuilder {
	mutate(b)
	return b
}

func (b *BadgeApplicationBuilder) BuildDomain() *badge.Application {
	return badge.ReconstructApplication(b.ID, b.ApplicantID, b.DefinitionID, b.DefinitionVersion, b.Title, b.Category, b.Level, b.Status)
}
