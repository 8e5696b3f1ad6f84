package readstore

import (
	"context"
	"time"

	"badge-promotion-engine/internal/domain/promotion"
	"badge-promotion-engine/internal/infra"
	"badge-promotion-engine/internal/infra/repository/converter"
	sqlc "badge-promotion-engine/internal/infra/sqlc/generated"
	"badge-promotion-engine/internal/pkg/pgconv"
	"badge-promotion-engine/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type PromotionReadQueries interface {
	GetPromotionByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Promotions, error)
	GetPromotionViewByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.GetPromotionViewByIDRow, error)
	ListPromotionBadgeViews(ctx context.Context, db sqlc.DBTX, promotionID uuid.UUID) ([]sqlc.ListPromotionBadgeViewsRow, error)
	ListPromotionsFirstPage(ctx context.Context, db sqlc.DBTX, arg sqlc.ListPromotionsFirstPageParams) ([]sqlc.ListPromotionsFirstPageRow, error)
	ListPromotionsKeyset(ctx context.Context, db sqlc.DBTX, arg sqlc.ListPromotionsKeysetParams) ([]sqlc.ListPromotionsKeysetRow, error)
	GetPromotionTemplateByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.PromotionTemplates, error)
	ListHeldBadgeKeys(ctx context.Context, db sqlc.DBTX, promotionID uuid.UUID) ([]sqlc.ListHeldBadgeKeysRow, error)
}

type PromotionReadStore struct {
	queries PromotionReadQueries
	db      sqlc.DBTX
}

func NewPromotionReadStore(queries PromotionReadQueries, db sqlc.DBTX) *PromotionReadStore {
	return &PromotionReadStore{
		queries: queries,
		db:      db,
	}
}

// FindAggregateByID loads the write-side aggregate without locking it.
func (r *PromotionReadStore) FindAggregateByID(ctx context.Context, id uuid.UUID) (*promotion.Promotion, error) {
	return r.findAggregate(ctx, r.db, id)
}

func (r *PromotionReadStore) findAggregate(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (*promotion.Promotion, error) {
	row, err := r.queries.GetPromotionByID(ctx, db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("promotion not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find promotion by ID", err)
	}

	p, err := converter.PromotionFromRow(row)
	if err != nil {
		return nil, infra.WrapRepoErr("stored promotion is malformed", err, infra.KindDataIntegrity)
	}
	return p, nil
}

func (r *PromotionReadStore) FindDetailByID(ctx context.Context, id uuid.UUID) (*queries.PromotionDetail, error) {
	var detail *queries.PromotionDetail
	err := snapshot(ctx, r.db, func(db sqlc.DBTX) error {
		row, err := r.queries.GetPromotionViewByID(ctx, db, id)
		if err != nil {
			if pgconv.IsNoRows(err) {
				return infra.WrapRepoErr("promotion not found", err, infra.KindNotFound)
			}
			return infra.WrapRepoErr("failed to find promotion view", err)
		}

		badgeRows, err := r.queries.ListPromotionBadgeViews(ctx, db, id)
		if err != nil {
			return infra.WrapRepoErr("failed to list promotion badges", err)
		}

		badges := make([]*queries.PromotionBadgeView, len(badgeRows))
		for i, b := range badgeRows {
			badges[i] = toPromotionBadgeView(b)
		}
		detail = &queries.PromotionDetail{
			Promotion: rowToPromotionView(row),
			Badges:    badges,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return detail, nil
}

// LoadValidationInput reads the promotion, its template rules and its held
// badges from one snapshot.
func (r *PromotionReadStore) LoadValidationInput(ctx context.Context, promotionID uuid.UUID) (*queries.ValidationInput, error) {
	var input *queries.ValidationInput
	err := snapshot(ctx, r.db, func(db sqlc.DBTX) error {
		p, err := r.findAggregate(ctx, db, promotionID)
		if err != nil {
			return err
		}
		tmpl, err := findTemplate(ctx, r.queries, db, p.TemplateID())
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return infra.WrapRepoErr("promotion references a missing template", err, infra.KindDataIntegrity)
			}
			return err
		}
		held, err := heldBadgeKeys(ctx, r.queries, db, promotionID)
		if err != nil {
			return err
		}

		input = &queries.ValidationInput{
			PromotionID: p.ID(),
			CreatedBy:   p.CreatedBy(),
			Rules:       tmpl.Rules(),
			Held:        held,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return input, nil
}

func (r *PromotionReadStore) FindFirstPage(ctx context.Context, filters queries.PromotionFilters, limit int32) ([]*queries.PromotionListItem, error) {
	createdBy, status := filterParams(filters)
	params := sqlc.ListPromotionsFirstPageParams{
		CreatedBy: createdBy,
		Status:    status,
		RowLimit:  limit,
	}

	rows, err := r.queries.ListPromotionsFirstPage(ctx, r.db, params)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list promotions first page", err)
	}

	result := make([]*queries.PromotionListItem, len(rows))
	for i, row := range rows {
		result[i] = toPromotionListItemFromFirstPageRow(row)
	}
	return result, nil
}

func (r *PromotionReadStore) FindKeyset(ctx context.Context, filters queries.PromotionFilters, lastCreatedAt time.Time, lastID uuid.UUID, limit int32) ([]*queries.PromotionListItem, error) {
	createdBy, status := filterParams(filters)
	params := sqlc.ListPromotionsKeysetParams{
		CreatedBy:      createdBy,
		Status:         status,
		AfterCreatedAt: pgconv.TimeToPgtype(lastCreatedAt),
		AfterID:        lastID,
		RowLimit:       limit,
	}

	rows, err := r.queries.ListPromotionsKeyset(ctx, r.db, params)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list promotions keyset", err)
	}

	result := make([]*queries.PromotionListItem, len(rows))
	for i, row := range rows {
		result[i] = toPromotionListItemFromKeysetRow(row)
	}
	return result, nil
}

func filterParams(filters queries.PromotionFilters) (pgtype.UUID, pgtype.Text) {
	var status pgtype.Text
	if filters.Status != nil {
		status = pgconv.StringToPgtype(filters.Status.String())
	}
	return pgconv.UUIDPtrToPgtype(filters.CreatedBy), status
}

func rowToPromotionView(row sqlc.GetPromotionViewByIDRow) *queries.PromotionView {
	return &queries.PromotionView{
		ID:           row.ID,
		TemplateID:   row.TemplateID,
		TemplateName: row.TemplateName,
		Path:         row.Path,
		FromLevel:    row.FromLevel,
		ToLevel:      row.ToLevel,
		CreatedBy:    row.CreatedBy,
		Status:       row.Status,
		SubmittedAt:  pgconv.TimePtrFromPgtype(row.SubmittedAt),
		ApprovedAt:   pgconv.TimePtrFromPgtype(row.ApprovedAt),
		ApprovedBy:   pgconv.UUIDPtrFromPgtype(row.ApprovedBy),
		RejectedAt:   pgconv.TimePtrFromPgtype(row.RejectedAt),
		RejectedBy:   pgconv.UUIDPtrFromPgtype(row.RejectedBy),
		RejectReason: pgconv.StringPtrFromPgtype(row.RejectReason),
		Executed:     row.Executed,
		CreatedAt:    pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:    pgconv.TimeFromPgtype(row.UpdatedAt),
	}
}

func toPromotionBadgeView(row sqlc.ListPromotionBadgeViewsRow) *queries.PromotionBadgeView {
	return &queries.PromotionBadgeView{
		BadgeApplicationID: row.BadgeApplicationID,
		BadgeDefinitionID:  row.BadgeDefinitionID,
		DefinitionVersion:  row.BadgeDefinitionVersionSnapshot,
		Title:              row.Title,
		Category:           row.Category,
		Level:              row.Level,
		ApplicationStatus:  row.ApplicationStatus,
		AssignedBy:         row.AssignedBy,
		AssignedAt:         pgconv.TimeFromPgtype(row.AssignedAt),
		Consumed:           row.Consumed,
	}
}

func toPromotionListItemFromFirstPageRow(row sqlc.ListPromotionsFirstPageRow) *queries.PromotionListItem {
	return &queries.PromotionListItem{
		ID:           row.ID,
		TemplateID:   row.TemplateID,
		TemplateName: row.TemplateName,
		Path:         row.Path,
		FromLevel:    row.FromLevel,
		ToLevel:      row.ToLevel,
		CreatedBy:    row.CreatedBy,
		Status:       row.Status,
		BadgeCount:   row.BadgeCount,
		CreatedAt:    pgconv.TimeFromPgtype(row.CreatedAt),
	}
}

func toPromotionListItemFromKeysetRow(row sqlc.ListPromotionsKeysetRow) *queries.PromotionListItem {
	return &queries.PromotionListItem{
		ID:           row.ID,
		TemplateID:   row.TemplateID,
		TemplateName: row.TemplateName,
		Path:         row.Path,
		FromLevel:    row.FromLevel,
		ToLevel:      row.ToLevel,
		CreatedBy:    row.CreatedBy,
		Status:       row.Status,
		BadgeCount:   row.BadgeCount,
		CreatedAt:    pgconv.TimeFromPgtype(row.CreatedAt),
	}
}
