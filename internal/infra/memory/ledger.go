package memory

import (
	"context"
	"slices"
	"time"

	"booking-core/internal/domain/booking"
	"booking-core/internal/pkg/errs"
	"booking-core/internal/usecase/shared"

	"github.com/google/uuid"
)

var _ shared.Ledger = (*Store)(nil)

// checkFree fails when a live allocation not owned by ignore overlaps any of allocs.
// The stripes of every resource in allocs must be held.
func (s *Store) checkFree(tenantID uuid.UUID, allocs []booking.Allocation, now time.Time, ignore uuid.UUID) error {
	for _, a := range allocs {
		if s.timeline(tenantID, a.ResourceID).blocked(a.Slot, now, ignore) {
			return errs.Wrapf(shared.ErrAllocationConflict, "resource %s is occupied during %s", a.ResourceID, a.Slot)
		}
	}
	return nil
}

func (s *Store) place(tenantID uuid.UUID, allocs []booking.Allocation) {
	for _, a := range allocs {
		s.timeline(tenantID, a.ResourceID).insert(entry{
			slot:      a.Slot,
			kind:      a.Kind,
			ownerID:   a.OwnerID,
			expiresAt: a.ExpiresAt,
		})
	}
}

func (s *Store) free(tenantID, ownerID uuid.UUID, resourceIDs []uuid.UUID, slot booking.TimeSlot) {
	for _, rid := range resourceIDs {
		s.timeline(tenantID, rid).remove(ownerID, slot)
	}
}

func (s *Store) ReserveHold(ctx context.Context, h *booking.Hold) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	unlock := s.lockResources(h.TenantID(), h.ResourceIDs())
	defer unlock()

	if err := s.checkFree(h.TenantID(), h.Allocations(), s.clock.Now(), uuid.Nil); err != nil {
		return err
	}
	msgs, err := outboxMessages(booking.HoldCreated(h))
	if err != nil {
		return errs.Wrap(err, "failed to encode hold event")
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.holds[h.ID()]; ok {
		return errs.Wrapf(shared.ErrDuplicateRecord, "hold %s", h.ID())
	}
	s.place(h.TenantID(), h.Allocations())
	s.holds[h.ID()] = h.Clone()
	s.enqueue(msgs)
	return nil
}

func (s *Store) ReserveBooking(ctx context.Context, b *booking.Booking) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	unlock := s.lockResources(b.TenantID(), b.ResourceIDs())
	defer unlock()

	if err := s.checkFree(b.TenantID(), b.Allocations(), s.clock.Now(), uuid.Nil); err != nil {
		return err
	}
	msgs, err := outboxMessages(booking.BookingConfirmed(b))
	if err != nil {
		return errs.Wrap(err, "failed to encode booking event")
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.bookings[b.ID()]; ok {
		return errs.Wrapf(shared.ErrDuplicateRecord, "booking %s", b.ID())
	}
	s.place(b.TenantID(), b.Allocations())
	s.bookings[b.ID()] = b.Clone()
	s.enqueue(msgs)
	return nil
}

func (s *Store) ConsumeHold(ctx context.Context, tenantID, holdID uuid.UUID, confirm func(h *booking.Hold) (*booking.Booking, error)) (*booking.Booking, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	h, err := s.loadHold(tenantID, holdID)
	if err != nil {
		return nil, err
	}
	unlock := s.lockResources(tenantID, h.ResourceIDs())
	defer unlock()

	// reload under the stripes so confirm sees the latest state
	h, err = s.loadHold(tenantID, holdID)
	if err != nil {
		return nil, err
	}
	slot := h.TimeSlot()
	b, err := confirm(h)
	if err != nil {
		return nil, err
	}
	for _, rid := range h.ResourceIDs() {
		if !s.timeline(tenantID, rid).has(holdID, slot) {
			return nil, errs.Wrapf(booking.ErrHoldExpired, "hold %s no longer owns resource %s", holdID, rid)
		}
	}
	msgs, err := outboxMessages(booking.BookingConfirmed(b))
	if err != nil {
		return nil, errs.Wrap(err, "failed to encode booking event")
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.bookings[b.ID()]; ok {
		return nil, errs.Wrapf(shared.ErrDuplicateRecord, "booking %s", b.ID())
	}
	for _, rid := range h.ResourceIDs() {
		s.timeline(tenantID, rid).relabel(holdID, slot, b.ID())
	}
	s.holds[holdID] = h.Clone()
	s.bookings[b.ID()] = b.Clone()
	s.enqueue(msgs)
	return b.Clone(), nil
}

func (s *Store) UpdateHold(ctx context.Context, tenantID, holdID uuid.UUID, mutate func(h *booking.Hold) error) (*booking.Hold, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	h, err := s.loadHold(tenantID, holdID)
	if err != nil {
		return nil, err
	}
	unlock := s.lockResources(tenantID, h.ResourceIDs())
	defer unlock()

	h, err = s.loadHold(tenantID, holdID)
	if err != nil {
		return nil, err
	}
	before := h.Status()
	if err := mutate(h); err != nil {
		return nil, err
	}
	return h.Clone(), s.commitHold(h, before)
}

// commitHold stores h and frees its allocation when it left ACTIVE. The hold's stripes must be held.
func (s *Store) commitHold(h *booking.Hold, before booking.HoldStatus) error {
	var msgs []shared.OutboxMessage
	if ev, ok := booking.HoldTransition(before, h); ok {
		m, err := outboxMessages(ev)
		if err != nil {
			return errs.Wrap(err, "failed to encode hold event")
		}
		msgs = m
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if before == booking.HoldStatusActive && h.Status() != booking.HoldStatusActive {
		s.free(h.TenantID(), h.ID(), h.ResourceIDs(), h.TimeSlot())
	}
	s.holds[h.ID()] = h.Clone()
	s.enqueue(msgs)
	return nil
}

func (s *Store) UpdateBooking(ctx context.Context, tenantID, bookingID uuid.UUID, mutate func(b *booking.Booking) error) (*booking.Booking, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	before, err := s.loadBooking(tenantID, bookingID)
	if err != nil {
		return nil, err
	}
	unlock := s.lockResources(tenantID, before.ResourceIDs())
	defer unlock()

	before, err = s.loadBooking(tenantID, bookingID)
	if err != nil {
		return nil, err
	}
	after := before.Clone()
	if err := mutate(after); err != nil {
		return nil, err
	}

	moved := before.IsConfirmed() && after.IsConfirmed() && !before.TimeSlot().Equal(after.TimeSlot())
	if moved {
		if err := s.checkFree(tenantID, after.Allocations(), s.clock.Now(), bookingID); err != nil {
			return nil, err
		}
	}
	var msgs []shared.OutboxMessage
	if ev, ok := booking.BookingChanged(before, after); ok {
		if msgs, err = outboxMessages(ev); err != nil {
			return nil, errs.Wrap(err, "failed to encode booking event")
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	switch {
	case moved:
		s.free(tenantID, bookingID, before.ResourceIDs(), before.TimeSlot())
		s.place(tenantID, after.Allocations())
	case before.IsConfirmed() && !after.IsConfirmed():
		s.free(tenantID, bookingID, before.ResourceIDs(), before.TimeSlot())
	}
	s.bookings[bookingID] = after.Clone()
	s.enqueue(msgs)
	return after, nil
}

func (s *Store) ExpireHolds(ctx context.Context, limit int) (int, error) {
	now := s.clock.Now()

	s.mu.RLock()
	due := make([]*booking.Hold, 0)
	for _, h := range s.holds {
		if h.Status() == booking.HoldStatusActive && h.IsExpiredAt(now) {
			due = append(due, h)
		}
	}
	s.mu.RUnlock()
	slices.SortFunc(due, func(a, b *booking.Hold) int { return a.ExpiresAt().Compare(b.ExpiresAt()) })
	if len(due) > limit {
		due = due[:limit]
	}

	expired := 0
	for _, d := range due {
		if err := ctx.Err(); err != nil {
			return expired, err
		}
		ok, err := s.expireHold(d.TenantID(), d.ID(), d.ResourceIDs(), now)
		if err != nil {
			return expired, err
		}
		if ok {
			expired++
		}
	}
	return expired, nil
}

func (s *Store) expireHold(tenantID, holdID uuid.UUID, resourceIDs []uuid.UUID, now time.Time) (bool, error) {
	unlock := s.lockResources(tenantID, resourceIDs)
	defer unlock()

	h, err := s.loadHold(tenantID, holdID)
	if err != nil {
		return false, err
	}
	before := h.Status()
	if !h.Expire(now) {
		return false, nil
	}
	return true, s.commitHold(h, before)
}

// loadHold returns a private copy of the tenant's hold.
func (s *Store) loadHold(tenantID, holdID uuid.UUID) (*booking.Hold, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	h, ok := s.holds[holdID]
	if !ok || h.TenantID() != tenantID {
		return nil, errs.Wrapf(shared.ErrRecordNotFound, "hold %s", holdID)
	}
	return h.Clone(), nil
}

func (s *Store) loadBooking(tenantID, bookingID uuid.UUID) (*booking.Booking, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	b, ok := s.bookings[bookingID]
	if !ok || b.TenantID() != tenantID {
		return nil, errs.Wrapf(shared.ErrRecordNotFound, "booking %s", bookingID)
	}
	return b.Clone(), nil
}
