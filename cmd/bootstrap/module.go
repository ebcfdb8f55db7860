package bootstrap

import (
	"booking-core/cmd/bootstrap/components"
	"booking-core/internal/pkg/config"

	"go.uber.org/fx"
)

func Module(cfg config.Config) fx.Option {
	storage := components.MemoryModule
	if cfg.UsesPostgres() {
		storage = fx.Options(DBModule, components.PersistenceModule)
	}

	return fx.Options(
		ConfigModule(cfg),
		LoggerModule,
		TracingModule,
		JWTModule,
		MQModule,
		storage,
		components.UseCaseModule,
		components.HandlerModule,
		WorkerModule,
	)
}
