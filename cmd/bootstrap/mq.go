package bootstrap

import (
	"context"
	"log/slog"

	"booking-core/internal/infra/mq"
	"booking-core/internal/pkg/config"
	"booking-core/internal/usecase/shared"

	"go.uber.org/fx"
)

var MQModule = fx.Module("mq",
	fx.Provide(
		NewEventPublisher,
	),
)

// NewEventPublisher connects to RabbitMQ when MQ_URL is set and logs events otherwise.
func NewEventPublisher(lc fx.Lifecycle, cfg config.Config) (shared.EventPublisher, error) {
	if cfg.MQ.URL == "" {
		slog.Info("MQ_URL not set, domain events are logged only")
		return mq.LogPublisher{}, nil
	}

	pub, err := mq.NewPublisher(cfg.MQ.URL, cfg.MQ.Exchange)
	if err != nil {
		return nil, err
	}
	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return pub.Close()
		},
	})
	return pub, nil
}
