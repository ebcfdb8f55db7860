// Package ledger implements the allocation ledger on Postgres. Overlap is enforced by the
// allocations_no_overlap exclusion constraint, so concurrent writers on different
// resources never block each other.
package ledger

import (
	"context"
	"slices"
	"time"

	"booking-core/internal/domain/booking"
	"booking-core/internal/infra/uow"
	"booking-core/internal/pkg/clock"
	"booking-core/internal/pkg/errs"
	"booking-core/internal/usecase/shared"

	"github.com/google/uuid"
)

type PostgresLedger struct {
	uow   uow.UnitOfWork
	clock clock.Clock
}

var _ shared.Ledger = (*PostgresLedger)(nil)

func NewPostgresLedger(u uow.UnitOfWork, clk clock.Clock) *PostgresLedger {
	return &PostgresLedger{
		uow:   u,
		clock: clk,
	}
}

func (l *PostgresLedger) ReserveHold(ctx context.Context, h *booking.Hold) error {
	return l.uow.Within(ctx, func(ctx context.Context, tx uow.Tx) error {
		if err := l.allocate(ctx, tx, h.TenantID(), h.TimeSlot(), h.Allocations()); err != nil {
			return err
		}
		if err := tx.Holds().Create(ctx, h); err != nil {
			return err
		}
		return appendEvents(ctx, tx, booking.HoldCreated(h))
	})
}

func (l *PostgresLedger) ReserveBooking(ctx context.Context, b *booking.Booking) error {
	return l.uow.Within(ctx, func(ctx context.Context, tx uow.Tx) error {
		if err := l.allocate(ctx, tx, b.TenantID(), b.TimeSlot(), b.Allocations()); err != nil {
			return err
		}
		if err := tx.Bookings().Create(ctx, b); err != nil {
			return err
		}
		return appendEvents(ctx, tx, booking.BookingConfirmed(b))
	})
}

func (l *PostgresLedger) ConsumeHold(ctx context.Context, tenantID, holdID uuid.UUID, confirm func(h *booking.Hold) (*booking.Booking, error)) (*booking.Booking, error) {
	var result *booking.Booking
	err := l.uow.Within(ctx, func(ctx context.Context, tx uow.Tx) error {
		h, err := tx.Holds().GetForUpdate(ctx, tenantID, holdID)
		if err != nil {
			return err
		}
		b, err := confirm(h)
		if err != nil {
			return err
		}

		// the rows must still be ours: a reservation may have retired them once the ttl passed
		moved, err := tx.Allocations().RelabelHold(ctx, holdID, b.ID())
		if err != nil {
			return err
		}
		if moved != int64(len(h.ResourceIDs())) {
			return errs.Wrapf(booking.ErrHoldExpired, "hold %s lost %d of its allocations", holdID, int64(len(h.ResourceIDs()))-moved)
		}

		if err := tx.Holds().UpdateStatus(ctx, h); err != nil {
			return err
		}
		if err := tx.Bookings().Create(ctx, b); err != nil {
			return err
		}
		if err := appendEvents(ctx, tx, booking.BookingConfirmed(b)); err != nil {
			return err
		}
		result = b
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (l *PostgresLedger) UpdateHold(ctx context.Context, tenantID, holdID uuid.UUID, mutate func(h *booking.Hold) error) (*booking.Hold, error) {
	var result *booking.Hold
	err := l.uow.Within(ctx, func(ctx context.Context, tx uow.Tx) error {
		h, err := tx.Holds().GetForUpdate(ctx, tenantID, holdID)
		if err != nil {
			return err
		}
		before := h.Status()
		if err := mutate(h); err != nil {
			return err
		}
		if before == booking.HoldStatusActive && h.Status() != booking.HoldStatusActive {
			if _, err := tx.Allocations().DeactivateByOwners(ctx, []uuid.UUID{holdID}); err != nil {
				return err
			}
		}
		if err := tx.Holds().UpdateStatus(ctx, h); err != nil {
			return err
		}
		if ev, ok := booking.HoldTransition(before, h); ok {
			if err := appendEvents(ctx, tx, ev); err != nil {
				return err
			}
		}
		result = h
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (l *PostgresLedger) UpdateBooking(ctx context.Context, tenantID, bookingID uuid.UUID, mutate func(b *booking.Booking) error) (*booking.Booking, error) {
	var result *booking.Booking
	err := l.uow.Within(ctx, func(ctx context.Context, tx uow.Tx) error {
		before, err := tx.Bookings().GetForUpdate(ctx, tenantID, bookingID)
		if err != nil {
			return err
		}
		after := before.Clone()
		if err := mutate(after); err != nil {
			return err
		}

		moved := before.IsConfirmed() && after.IsConfirmed() && !before.TimeSlot().Equal(after.TimeSlot())
		freed := before.IsConfirmed() && !after.IsConfirmed()
		if moved || freed {
			if _, err := tx.Allocations().DeactivateByOwners(ctx, []uuid.UUID{bookingID}); err != nil {
				return err
			}
		}
		if moved {
			// a conflict aborts the transaction and the old rows come back on rollback
			if err := l.allocate(ctx, tx, tenantID, after.TimeSlot(), after.Allocations()); err != nil {
				return err
			}
		}

		if err := tx.Bookings().Update(ctx, after, before.Version()); err != nil {
			return err
		}
		if ev, ok := booking.BookingChanged(before, after); ok {
			if err := appendEvents(ctx, tx, ev); err != nil {
				return err
			}
		}
		result = after
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (l *PostgresLedger) ExpireHolds(ctx context.Context, limit int) (int, error) {
	var expired int
	err := l.uow.Within(ctx, func(ctx context.Context, tx uow.Tx) error {
		now := l.clock.Now()
		ids, err := tx.Holds().DueIDsForUpdate(ctx, now, limit)
		if err != nil {
			return err
		}
		n, err := expire(ctx, tx, ids, now)
		expired = n
		return err
	})
	if err != nil {
		return 0, err
	}
	return expired, nil
}

// allocate inserts allocs after retiring expired hold rows in the way. Resource ids are
// visited in ascending order so concurrent writers lock rows consistently.
func (l *PostgresLedger) allocate(ctx context.Context, tx uow.Tx, tenantID uuid.UUID, slot booking.TimeSlot, allocs []booking.Allocation) error {
	if len(allocs) == 0 {
		return nil
	}
	sorted := slices.Clone(allocs)
	slices.SortFunc(sorted, func(a, b booking.Allocation) int {
		return slices.Compare(a.ResourceID[:], b.ResourceID[:])
	})
	resourceIDs := make([]uuid.UUID, len(sorted))
	for i, a := range sorted {
		resourceIDs[i] = a.ResourceID
	}

	now := l.clock.Now()
	owners, err := tx.Allocations().RetireExpired(ctx, tenantID, resourceIDs, slot, now)
	if err != nil {
		return err
	}
	if len(owners) > 0 {
		slices.SortFunc(owners, func(a, b uuid.UUID) int { return slices.Compare(a[:], b[:]) })
		if _, err := expire(ctx, tx, slices.Compact(owners), now); err != nil {
			return err
		}
	}
	return tx.Allocations().Insert(ctx, tenantID, sorted)
}

// expire moves overdue ACTIVE holds to EXPIRED and releases every row they still own.
func expire(ctx context.Context, tx uow.Tx, holdIDs []uuid.UUID, now time.Time) (int, error) {
	if len(holdIDs) == 0 {
		return 0, nil
	}
	holds, err := tx.Holds().Expire(ctx, holdIDs, now)
	if err != nil {
		return 0, err
	}
	if _, err := tx.Allocations().DeactivateByOwners(ctx, holdIDs); err != nil {
		return 0, err
	}
	events := make([]booking.Event, 0, len(holds))
	for _, h := range holds {
		if ev, ok := booking.HoldTransition(booking.HoldStatusActive, h); ok {
			events = append(events, ev)
		}
	}
	if err := appendEvents(ctx, tx, events...); err != nil {
		return 0, err
	}
	return len(holds), nil
}

func appendEvents(ctx context.Context, tx uow.Tx, events ...booking.Event) error {
	msgs := make([]shared.OutboxMessage, 0, len(events))
	for _, ev := range events {
		m, err := shared.NewOutboxMessage(ev)
		if err != nil {
			return errs.Wrapf(err, "failed to encode %s event", ev.Type)
		}
		msgs = append(msgs, m)
	}
	return tx.Outbox().Append(ctx, msgs...)
}
