package readstore

import (
	"context"

	"badge-promotion-engine/internal/domain/promotion"
	"badge-promotion-engine/internal/infra"
	"badge-promotion-engine/internal/infra/repository/converter"
	sqlc "badge-promotion-engine/internal/infra/sqlc/generated"
	"badge-promotion-engine/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type TemplateReadQueries interface {
	GetPromotionTemplateByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.PromotionTemplates, error)
}

type TemplateReadStore struct {
	queries TemplateReadQueries
	db      sqlc.DBTX
}

func NewTemplateReadStore(queries TemplateReadQueries, db sqlc.DBTX) *TemplateReadStore {
	return &TemplateReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *TemplateReadStore) FindByID(ctx context.Context, id uuid.UUID) (*promotion.Template, error) {
	return findTemplate(ctx, r.queries, r.db, id)
}

func findTemplate(ctx context.Context, q TemplateReadQueries, db sqlc.DBTX, id uuid.UUID) (*promotion.Template, error) {
	row, err := q.GetPromotionTemplateByID(ctx, db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("promotion template not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find promotion template", err)
	}

	tmpl, err := converter.TemplateFromRow(row)
	if err != nil {
		return nil, infra.WrapRepoErr("stored promotion template is malformed", err, infra.KindDataIntegrity)
	}
	return tmpl, nil
}
