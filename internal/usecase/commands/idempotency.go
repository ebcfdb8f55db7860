package commands

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"log/slog"
	"time"

	"booking-core/internal/pkg/clock"
	"booking-core/internal/pkg/errs"
	"booking-core/internal/usecase/shared"

	"github.com/google/uuid"
)

const idempotencyRetention = 24 * time.Hour

// IdempotencyScope identifies one client-supplied Idempotency-Key. An empty Key disables the guard.
type IdempotencyScope struct {
	TenantID uuid.UUID
	Key      string
	Endpoint string
}

type IdempotencyGuard struct {
	store shared.IdempotencyStore
	clock clock.Clock
}

func NewIdempotencyGuard(store shared.IdempotencyStore, clk clock.Clock) *IdempotencyGuard {
	return &IdempotencyGuard{store: store, clock: clk}
}

// Idempotent runs fn at most once per scope. A repeated request with the same body is answered
// through load with the id stored by the first run; a different body, or a repeat while the
// first run is still in flight, fails with ErrIdempotencyConflict. The bool reports a replay.
func Idempotent[T any](
	ctx context.Context,
	g *IdempotencyGuard,
	scope IdempotencyScope,
	request any,
	fn func(ctx context.Context) (T, uuid.UUID, error),
	load func(ctx context.Context, id uuid.UUID) (T, error),
) (T, bool, error) {
	var zero T
	if g == nil || scope.Key == "" {
		v, _, err := fn(ctx)
		return v, false, err
	}

	hash, err := requestHash(request)
	if err != nil {
		return zero, false, errs.Wrap(err, "failed to hash request")
	}
	existing, err := g.store.Begin(ctx, shared.IdempotencyRecord{
		TenantID:    scope.TenantID,
		Key:         scope.Key,
		Endpoint:    scope.Endpoint,
		RequestHash: hash,
		Status:      shared.IdempotencyProcessing,
		ExpiresAt:   g.clock.Now().Add(idempotencyRetention),
	})
	if err != nil {
		return zero, false, classify(err, ErrNotFound)
	}

	if existing != nil {
		switch {
		case existing.RequestHash != hash:
			return zero, false, errs.Wrap(ErrIdempotencyConflict, "key reused with a different request")
		case existing.Status != shared.IdempotencyCompleted || existing.ResultID == nil:
			return zero, false, errs.Wrap(ErrIdempotencyConflict, "request with this key is still in progress")
		}
		v, err := load(ctx, *existing.ResultID)
		if err != nil {
			return zero, false, err
		}
		return v, true, nil
	}

	v, id, err := fn(ctx)
	if err != nil {
		if abandonErr := g.store.Abandon(ctx, scope.TenantID, scope.Key, scope.Endpoint); abandonErr != nil {
			slog.Warn("failed to abandon idempotency key", "key", scope.Key, "error", abandonErr)
		}
		return zero, false, err
	}
	if err := g.store.Complete(ctx, scope.TenantID, scope.Key, scope.Endpoint, id); err != nil {
		// the operation itself succeeded; a retry will see the key as in progress until it expires
		slog.Error("failed to complete idempotency key", "key", scope.Key, "error", err)
	}
	return v, false, nil
}

func requestHash(request any) (string, error) {
	data, err := json.Marshal(request)
	if err != nil {
		return "", err
	}
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:]), nil
}
