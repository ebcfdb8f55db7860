package components

import (
	"booking-core/internal/infra/ledger"
	"booking-core/internal/infra/readstore"
	"booking-core/internal/infra/repository"
	sqlc "booking-core/internal/infra/sqlc/generated"
	"booking-core/internal/infra/uow"
	"booking-core/internal/usecase/queries"
	"booking-core/internal/usecase/shared"
	"booking-core/internal/worker"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

// PersistenceModule backs every storage port with Postgres.
var PersistenceModule = fx.Module("persistence",
	baseOption,
	readstoreModule,
	repositoryModule,
)

var baseOption = fx.Provide(
	fx.Annotate(
		NewSQLQueries,
		fx.As(fx.Self()),
		fx.As(new(repository.ResourceQueries)),
		fx.As(new(repository.PageQueries)),
	),
	NewDBTX,
	NewBeginner,
)

var readstoreModule = fx.Module("persistence/readstore",
	fx.Provide(
		fx.Annotate(
			readstore.NewBookingReadStore,
			fx.As(new(queries.BookingReadStore)),
		),
		fx.Annotate(
			readstore.NewOccupancyReadStore,
			fx.As(new(queries.OccupancyReadStore)),
		),
	),
)

var repositoryModule = fx.Module("persistence/repository",
	fx.Provide(
		uow.NewPostgresUoW,
		fx.Annotate(
			ledger.NewPostgresLedger,
			fx.As(new(shared.Ledger)),
		),
		// Resource
		fx.Annotate(
			repository.NewResourceRepository,
			fx.As(new(shared.ResourceRegistry)),
			fx.As(new(queries.ResourceReadStore)),
		),
		// Page
		fx.Annotate(
			repository.NewPageRepository,
			fx.As(new(shared.PageRegistry)),
			fx.As(new(queries.PageReadStore)),
		),
		// Idempotency
		fx.Annotate(
			repository.NewIdempotencyRepository,
			fx.As(new(shared.IdempotencyStore)),
			fx.As(new(worker.ExpiredKeyPurger)),
		),
		// Outbox
		fx.Annotate(
			repository.NewOutboxRelay,
			fx.As(new(shared.OutboxStore)),
		),
	),
)

func NewSQLQueries(_ *pgxpool.Pool) *sqlc.Queries {
	return sqlc.New()
}

func NewDBTX(pool *pgxpool.Pool) sqlc.DBTX {
	return pool
}

func NewBeginner(pool *pgxpool.Pool) repository.Beginner {
	return pool
}
