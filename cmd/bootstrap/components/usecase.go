package components

import (
	"transfer-booking/internal/domain/pricing"
	"transfer-booking/internal/pkg/clock"
	"transfer-booking/internal/usecase/commands"
	"transfer-booking/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	fx.Annotate(
		pricing.NewDefaultAuthority,
		fx.As(new(commands.PriceAuthority)),
		fx.As(new(queries.PriceQuoter)),
	),
	fx.Annotate(
		commands.NewOutboxArtifactTrigger,
		fx.As(new(commands.ArtifactTrigger)),
	),
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewCheckoutUseCase,
		commands.NewReconcileUseCase,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewPricingQueries,
		queries.NewBookingQueries,
	),
)
