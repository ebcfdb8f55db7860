package worker

import (
	"context"
	"log/slog"

	"booking-core/internal/pkg/config"
	"booking-core/internal/usecase/commands"
)

// NewHoldSweeper expires overdue holds so their intervals come back even when nobody
// reserves over them.
func NewHoldSweeper(holds commands.HoldCommands, cfg config.SweeperConfig) *Periodic {
	return NewPeriodic("hold-sweeper", cfg.Interval, func(ctx context.Context) error {
		n, err := holds.SweepExpiredHolds(ctx, cfg.BatchSize)
		if n > 0 {
			slog.Info("expired holds swept", "count", n)
		}
		return err
	})
}
