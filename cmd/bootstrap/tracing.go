package bootstrap

import (
	"context"

	"booking-core/internal/pkg/config"
	"booking-core/internal/pkg/obs"

	"go.uber.org/fx"
)

var TracingModule = fx.Module("tracing",
	fx.Invoke(registerTracer),
)

func registerTracer(lc fx.Lifecycle, cfg config.Config) error {
	shutdown, err := obs.InitTracer(context.Background(), cfg.Tracing)
	if err != nil {
		return err
	}
	lc.Append(fx.Hook{
		OnStop: shutdown,
	})
	return nil
}
