package components

import (
	"badge-promotion-engine/internal/infra/readstore"
	sqlc "badge-promotion-engine/internal/infra/sqlc/generated"
	"badge-promotion-engine/internal/infra/uow"
	"badge-promotion-engine/internal/usecase/queries"
	"badge-promotion-engine/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	baseOption,
	readstoreModule,
	repositoryModule,
)

var baseOption = fx.Provide(
	NewSQLQueries,
	NewDBTX,
)

// Command-side repositories and read stores are built per transaction by the
// unit of work. Only the query side needs pool-bound read stores here.
var readstoreModule = fx.Module("persistence/readstore",
	fx.Provide(
		// Promotion
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.PromotionReadQueries)),
		),
		fx.Annotate(
			readstore.NewPromotionReadStore,
			fx.As(new(queries.PromotionReadStore)),
			fx.As(new(queries.ValidationReadStore)),
		),
	),
)

var repositoryModule = fx.Module("persistence/repository",
	fx.Provide(
		// UnitOfWork
		fx.Annotate(
			uow.NewPostgresUoW,
			fx.As(new(shared.UnitOfWork)),
		),
	),
)

func NewSQLQueries(_ *pgxpool.Pool) *sqlc.Queries {
	return sqlc.New()
}

func NewDBTX(pool *pgxpool.Pool) sqlc.DBTX {
	return pool
}
