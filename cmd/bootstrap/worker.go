package bootstrap

import (
	"booking-core/internal/pkg/config"
	"booking-core/internal/usecase/commands"
	"booking-core/internal/usecase/shared"
	"booking-core/internal/worker"

	"go.uber.org/fx"
)

var WorkerModule = fx.Module("worker",
	fx.Invoke(registerWorkers),
)

type workerParams struct {
	fx.In

	Lifecycle fx.Lifecycle
	Config    config.Config
	Holds     commands.HoldCommands
	Outbox    shared.OutboxStore
	Publisher shared.EventPublisher
	Keys      worker.ExpiredKeyPurger
}

func registerWorkers(p workerParams) {
	workers := []*worker.Periodic{
		worker.NewIdempotencyPurger(p.Keys, p.Config.Idempotency.PurgeInterval),
	}
	if p.Config.Sweeper.Enabled {
		workers = append(workers, worker.NewHoldSweeper(p.Holds, p.Config.Sweeper))
	}
	if p.Config.Outbox.Enabled {
		workers = append(workers, worker.NewOutboxRelay(p.Outbox, p.Publisher, p.Config.Outbox))
	}

	for _, w := range workers {
		p.Lifecycle.Append(fx.Hook{
			OnStart: w.Start,
			OnStop:  w.Stop,
		})
	}
}
