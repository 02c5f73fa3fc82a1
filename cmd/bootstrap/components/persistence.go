package components

import (
	"salon-broker/internal/infra/readstore"
	sqlc "salon-broker/internal/infra/sqlc/generated"
	"salon-broker/internal/infra/uow"
	"salon-broker/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	baseOption,
	readstoreModule,
	unitOfWorkModule,
)

var baseOption = fx.Provide(
	NewSQLQueries,
	NewDBTX,
)

var readstoreModule = fx.Module("persistence/readstore",
	fx.Provide(
		// Decision page
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.DecisionViewQueries)),
		),
		fx.Annotate(
			readstore.NewDecisionReadStore,
			fx.As(new(queries.DecisionReadStore)),
		),
		// Booking
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.BookingViewQueries)),
		),
		fx.Annotate(
			readstore.NewBookingReadStore,
			fx.As(new(queries.BookingReadStore)),
		),
		// Earnings
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.EarningsViewQueries)),
		),
		fx.Annotate(
			readstore.NewEarningsReadStore,
			fx.As(new(queries.EarningsReadStore)),
		),
	),
)

// repositories are built per transaction inside the unit of work
var unitOfWorkModule = fx.Module("persistence/uow",
	fx.Provide(
		uow.NewPostgresUoW,
	),
)

func NewSQLQueries(_ *pgxpool.Pool) *sqlc.Queries {
	return sqlc.New()
}

func NewDBTX(pool *pgxpool.Pool) sqlc.DBTX {
	return pool
}
