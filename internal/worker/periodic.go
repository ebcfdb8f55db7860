// Package worker runs the background loops: hold expiry, outbox relay and idempotency key purge.
package worker

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

// Periodic calls tick every interval until stopped. A tick never overlaps the next one.
type Periodic struct {
	name     string
	interval time.Duration
	tick     func(ctx context.Context) error

	cancel context.CancelFunc
	wg     sync.WaitGroup
}

func NewPeriodic(name string, interval time.Duration, tick func(ctx context.Context) error) *Periodic {
	return &Periodic{name: name, interval: interval, tick: tick}
}

func (p *Periodic) Start(_ context.Context) error {
	ctx, cancel := context.WithCancel(context.Background())
	p.cancel = cancel
	p.wg.Add(1)
	go p.run(ctx)
	slog.Info("worker started", "worker", p.name, "interval", p.interval.String())
	return nil
}

// Stop cancels the loop and waits for an in-flight tick, or until ctx ends.
func (p *Periodic) Stop(ctx context.Context) error {
	if p.cancel == nil {
		return nil
	}
	p.cancel()
	done := make(chan struct{})
	go func() {
		p.wg.Wait()
		close(done)
	}()
	select {
	case <-done:
		slog.Info("worker stopped", "worker", p.name)
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (p *Periodic) run(ctx context.Context) {
	defer p.wg.Done()
	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := p.tick(ctx); err != nil && ctx.Err() == nil {
				slog.Error("worker tick failed", "worker", p.name, "error", err.Error())
			}
		}
	}
}
