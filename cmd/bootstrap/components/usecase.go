package components

import (
	"badge-promotion-engine/internal/domain/reservation"
	"badge-promotion-engine/internal/pkg/clock"
	"badge-promotion-engine/internal/usecase"
	"badge-promotion-engine/internal/usecase/commands"
	"badge-promotion-engine/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseValidatorsModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	reservation.NewFactory,
	commands.NewReservationLedger,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewPromotionUseCase,
		commands.NewBadgeUseCase,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewPromotionQueries,
		queries.NewValidationQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)
