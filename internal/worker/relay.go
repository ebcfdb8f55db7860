package worker

import (
	"context"
	"log/slog"

	"booking-core/internal/pkg/config"
	"booking-core/internal/usecase/shared"
)

// NewOutboxRelay publishes committed events in batches. A publish failure leaves the
// rest of the batch for the next tick, preserving order.
func NewOutboxRelay(store shared.OutboxStore, publisher shared.EventPublisher, cfg config.OutboxConfig) *Periodic {
	return NewPeriodic("outbox-relay", cfg.Interval, func(ctx context.Context) error {
		for {
			n, err := store.RelayBatch(ctx, cfg.BatchSize, publisher.Publish)
			if n > 0 {
				slog.Debug("outbox events relayed", "count", n)
			}
			if err != nil || n < cfg.BatchSize {
				return err
			}
		}
	})
}
