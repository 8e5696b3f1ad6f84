package converter

import (
	"badge-promotion-engine/internal/domain/promotion"
	sqlc "badge-promotion-engine/internal/infra/sqlc/generated"
	"badge-promotion-engine/internal/pkg/errs"
	"badge-promotion-engine/internal/pkg/pgconv"
)

func PromotionToCreateParams(p *promotion.Promotion) sqlc.CreatePromotionParams {
	return sqlc.CreatePromotionParams{
		ID:         p.ID(),
		TemplateID: p.TemplateID(),
		Path:       p.Path().String(),
		FromLevel:  p.FromLevel().String(),
		ToLevel:    p.ToLevel().String(),
		CreatedBy:  p.CreatedBy(),
		CreatedAt:  pgconv.TimeToPgtype(p.CreatedAt()),
		UpdatedAt:  pgconv.TimeToPgtype(p.UpdatedAt()),
	}
}

// PromotionFromRow rebuilds the aggregate. Stored values that no longer parse
// are a data-integrity failure, not a validation error.
func PromotionFromRow(row sqlc.Promotions) (*promotion.Promotion, error) {
	path, err := promotion.NewPath(row.Path)
	if err != nil {
		return nil, errs.Wrapf(err, "promotion %s has invalid path", row.ID)
	}
	from, err := promotion.NewPositionLevel(row.FromLevel)
	if err != nil {
		return nil, errs.Wrapf(err, "promotion %s has invalid from level", row.ID)
	}
	to, err := promotion.NewPositionLevel(row.ToLevel)
	if err != nil {
		return nil, errs.Wrapf(err, "promotion %s has invalid to level", row.ID)
	}
	status, err := promotion.NewStatus(row.Status)
	if err != nil {
		return nil, errs.Wrapf(err, "promotion %s has invalid status", row.ID)
	}

	return promotion.Reconstruct(promotion.Snapshot{
		ID:           row.ID,
		TemplateID:   row.TemplateID,
		Path:         path,
		FromLevel:    from,
		ToLevel:      to,
		CreatedBy:    row.CreatedBy,
		Status:       status,
		SubmittedAt:  pgconv.TimePtrFromPgtype(row.SubmittedAt),
		ApprovedAt:   pgconv.TimePtrFromPgtype(row.ApprovedAt),
		ApprovedBy:   pgconv.UUIDPtrFromPgtype(row.ApprovedBy),
		RejectedAt:   pgconv.TimePtrFromPgtype(row.RejectedAt),
		RejectedBy:   pgconv.UUIDPtrFromPgtype(row.RejectedBy),
		RejectReason: pgconv.StringPtrFromPgtype(row.RejectReason),
		Executed:     row.Executed,
		CreatedAt:    pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:    pgconv.TimeFromPgtype(row.UpdatedAt),
	}), nil
}

func TemplateFromRow(row sqlc.PromotionTemplates) (*promotion.Template, error) {
	path, err := promotion.NewPath(row.Path)
	if err != nil {
		return nil, errs.Wrapf(err, "template %s has invalid path", row.ID)
	}
	from, err := promotion.NewPositionLevel(row.FromLevel)
	if err != nil {
		return nil, errs.Wrapf(err, "template %s has invalid from level", row.ID)
	}
	to, err := promotion.NewPositionLevel(row.ToLevel)
	if err != nil {
		return nil, errs.Wrapf(err, "template %s has invalid to level", row.ID)
	}
	rules, err := promotion.ParseRules(row.Rules)
	if err != nil {
		return nil, errs.Wrapf(err, "template %s has malformed rules", row.ID)
	}

	return promotion.ReconstructTemplate(
		row.ID,
		row.Name,
		path,
		from,
		to,
		rules,
		row.IsActive,
		pgconv.TimeFromPgtype(row.CreatedAt),
		pgconv.TimeFromPgtype(row.UpdatedAt),
	), nil
}
