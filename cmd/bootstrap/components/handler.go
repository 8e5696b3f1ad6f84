package components

import (
	"badge-promotion-engine/internal/handler"
	"badge-promotion-engine/internal/handler/api"
	"badge-promotion-engine/internal/handler/middleware"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewPromotionHandler,
		api.NewPromotionBadgeHandler,
		api.NewValidationHandler,
		fx.Annotate(
			func(pool *pgxpool.Pool) *pgxpool.Pool { return pool },
			fx.As(new(api.Pinger)),
		),
		api.NewHealthHandler,
		middleware.NewAuthMiddleware,
		NewHandlers,
	),
	fx.Invoke(handler.NewRouter),
)

func NewHandlers(
	promotion *api.PromotionHandler,
	promotionBadge *api.PromotionBadgeHandler,
	validation *api.ValidationHandler,
	health *api.HealthHandler,
) handler.Handlers {
	return handler.Handlers{
		Promotion:      promotion,
		PromotionBadge: promotionBadge,
		Validation:     validation,
		Health:         health,
	}
}
