package components

import (
	"booking-core/internal/infra/memory"
	"booking-core/internal/usecase/queries"
	"booking-core/internal/usecase/shared"
	"booking-core/internal/worker"

	"go.uber.org/fx"
)

// MemoryModule backs every storage port with one in-process store.
var MemoryModule = fx.Module("memory",
	fx.Provide(
		fx.Annotate(
			memory.NewStore,
			fx.As(new(shared.Ledger)),
			fx.As(new(shared.ResourceRegistry)),
			fx.As(new(shared.PageRegistry)),
			fx.As(new(shared.IdempotencyStore)),
			fx.As(new(shared.OutboxStore)),
			fx.As(new(queries.BookingReadStore)),
			fx.As(new(queries.OccupancyReadStore)),
			fx.As(new(queries.ResourceReadStore)),
			fx.As(new(queries.PageReadStore)),
			fx.As(new(worker.ExpiredKeyPurger)),
		),
	),
)
