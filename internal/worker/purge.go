package worker

import (
	"context"
	"log/slog"
	"time"
)

type ExpiredKeyPurger interface {
	DeleteExpired(ctx context.Context) (int64, error)
}

func NewIdempotencyPurger(purger ExpiredKeyPurger, interval time.Duration) *Periodic {
	return NewPeriodic("idempotency-purge", interval, func(ctx context.Context) error {
		n, err := purger.DeleteExpired(ctx)
		if n > 0 {
			slog.Info("expired idempotency keys purged", "count", n)
		}
		return err
	})
}
