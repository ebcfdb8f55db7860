package bootstrap

import (
	"booking-core/internal/pkg/config"

	"go.uber.org/fx"
)

// ConfigModule supplies an already loaded config; the storage driver it names
// decides which persistence module gets wired.
func ConfigModule(cfg config.Config) fx.Option {
	return fx.Module("config",
		fx.Supply(cfg),
	)
}
