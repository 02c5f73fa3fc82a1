package components

import (
	"salon-broker/internal/pkg/clock"
	"salon-broker/internal/usecase"
	"salon-broker/internal/usecase/commands"
	"salon-broker/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseCommandsModule,
	usecaseAuthModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	commands.NewPolicy,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewIntakeCommands,
		commands.NewReservationCommands,
		commands.NewBookingCommands,
		commands.NewSettlementCommands,
		commands.NewSlotLedger,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewDecisionQueries,
		queries.NewBookingQueries,
		queries.NewEarningsQueries,
	),
)

var usecaseAuthModule = fx.Module("usecase/auth",
	fx.Provide(
		usecase.NewPrincipalResolver,
	),
)
