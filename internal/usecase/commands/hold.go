package commands

import (
	"context"
	"time"

	"booking-core/internal/domain/booking"
	"booking-core/internal/domain/resource"
	"booking-core/internal/pkg/clock"
	"booking-core/internal/pkg/errs"
	"booking-core/internal/usecase/queries"
	"booking-core/internal/usecase/shared"

	"github.com/google/uuid"
)

type CreateHoldInput struct {
	TenantID    uuid.UUID
	ResourceIDs []uuid.UUID
	StartAt     time.Time
	EndAt       time.Time
	// TTLSeconds of zero selects the default ttl.
	TTLSeconds int
	Notes      *string
}

//go:generate mockgen -source=hold.go -destination=../../testutil/mock/commands/hold.go -package=commandsmock
type HoldCommands interface {
	CreateHold(ctx context.Context, in CreateHoldInput) (*queries.HoldView, error)
	// ReleaseHold is idempotent: releasing a terminal hold returns it unchanged.
	ReleaseHold(ctx context.Context, tenantID, holdID uuid.UUID) (*queries.HoldView, error)
	// SweepExpiredHolds retires expired holds in batches until a batch comes back short.
	SweepExpiredHolds(ctx context.Context, batchSize int) (int, error)
}

type holdCommandsImpl struct {
	ledger    shared.Ledger
	resources shared.ResourceRegistry
	policy    booking.HoldPolicy
	clock     clock.Clock
}

func NewHoldCommands(ledger shared.Ledger, resources shared.ResourceRegistry, policy booking.HoldPolicy, clk clock.Clock) HoldCommands {
	return &holdCommandsImpl{
		ledger:    ledger,
		resources: resources,
		policy:    policy,
		clock:     clk,
	}
}

func (uc *holdCommandsImpl) CreateHold(ctx context.Context, in CreateHoldInput) (_ *queries.HoldView, err error) {
	ctx, span := startSpan(ctx, "HoldCommands.CreateHold")
	defer func() { endSpan(span, err) }()

	slot, err := booking.NewTimeSlot(in.StartAt, in.EndAt)
	if err != nil {
		return nil, validation(err)
	}
	ttl, err := uc.policy.ResolveTTL(in.TTLSeconds)
	if err != nil {
		return nil, validation(err)
	}
	notes, err := booking.NoteFromPtr(in.Notes)
	if err != nil {
		return nil, validation(err)
	}
	h, err := booking.NewHold(in.TenantID, in.ResourceIDs, slot, ttl, notes, uc.clock.Now())
	if err != nil {
		return nil, validation(err)
	}
	if err := ensureBookable(ctx, uc.resources, in.TenantID, h.ResourceIDs()); err != nil {
		return nil, err
	}

	if err := uc.ledger.ReserveHold(ctx, h); err != nil {
		return nil, classify(err, ErrHoldNotFound)
	}
	return queries.NewHoldView(h), nil
}

func (uc *holdCommandsImpl) ReleaseHold(ctx context.Context, tenantID, holdID uuid.UUID) (_ *queries.HoldView, err error) {
	ctx, span := startSpan(ctx, "HoldCommands.ReleaseHold")
	defer func() { endSpan(span, err) }()

	h, err := uc.ledger.UpdateHold(ctx, tenantID, holdID, func(h *booking.Hold) error {
		h.Release(uc.clock.Now())
		return nil
	})
	if err != nil {
		return nil, classify(err, ErrHoldNotFound)
	}
	return queries.NewHoldView(h).WithLiveStatus(uc.clock.Now()), nil
}

func (uc *holdCommandsImpl) SweepExpiredHolds(ctx context.Context, batchSize int) (total int, err error) {
	ctx, span := startSpan(ctx, "HoldCommands.SweepExpiredHolds")
	defer func() { endSpan(span, err) }()

	if batchSize <= 0 {
		return 0, errs.Wrap(ErrValidation, "batch size must be positive")
	}
	for {
		n, err := uc.ledger.ExpireHolds(ctx, batchSize)
		if err != nil {
			return total, classify(err, ErrHoldNotFound)
		}
		total += n
		if n < batchSize || ctx.Err() != nil {
			break
		}
	}
	return total, nil
}

// ensureBookable checks that every id names an active resource of the tenant.
func ensureBookable(ctx context.Context, registry shared.ResourceRegistry, tenantID uuid.UUID, ids []uuid.UUID) error {
	found, err := registry.FindResources(ctx, tenantID, ids)
	if err != nil {
		return classify(err, ErrNotFound)
	}
	byID := make(map[uuid.UUID]*resource.Resource, len(found))
	for _, r := range found {
		byID[r.ID()] = r
	}
	for _, id := range ids {
		r, ok := byID[id]
		if !ok {
			return errs.Wrapf(ErrValidation, "unknown resource %s", id)
		}
		if !r.IsActive() {
			return errs.Wrapf(ErrValidation, "resource %s is inactive", id)
		}
	}
	return nil
}
