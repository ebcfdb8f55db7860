package memory

import (
	"context"
	"slices"
	"strings"
	"time"

	"booking-core/internal/domain/booking"
	"booking-core/internal/pkg/errs"
	"booking-core/internal/usecase/queries"

	"github.com/google/uuid"
)

var (
	_ queries.BookingReadStore   = (*Store)(nil)
	_ queries.OccupancyReadStore = (*Store)(nil)
	_ queries.ResourceReadStore  = (*Store)(nil)
	_ queries.PageReadStore      = (*Store)(nil)
)

func (s *Store) FindBooking(_ context.Context, tenantID, id uuid.UUID) (*queries.BookingView, error) {
	b, err := s.loadBooking(tenantID, id)
	if err != nil {
		return nil, err
	}
	return queries.NewBookingView(b), nil
}

func (s *Store) FindHold(_ context.Context, tenantID, id uuid.UUID) (*queries.HoldView, error) {
	h, err := s.loadHold(tenantID, id)
	if err != nil {
		return nil, err
	}
	return queries.NewHoldView(h), nil
}

func (s *Store) ListBookings(_ context.Context, tenantID uuid.UUID, f queries.BookingFilter, limit, offset int) ([]*queries.BookingView, int, error) {
	s.mu.RLock()
	matched := make([]*booking.Booking, 0)
	for _, b := range s.bookings {
		if b.TenantID() == tenantID && matches(b, f) {
			matched = append(matched, b.Clone())
		}
	}
	s.mu.RUnlock()

	slices.SortFunc(matched, func(a, b *booking.Booking) int {
		if c := a.TimeSlot().Start().Compare(b.TimeSlot().Start()); c != 0 {
			return c
		}
		return strings.Compare(a.ID().String(), b.ID().String())
	})

	total := len(matched)
	if offset >= total {
		return []*queries.BookingView{}, total, nil
	}
	end := min(offset+limit, total)
	out := make([]*queries.BookingView, 0, end-offset)
	for _, b := range matched[offset:end] {
		out = append(out, queries.NewBookingView(b))
	}
	return out, total, nil
}

func matches(b *booking.Booking, f queries.BookingFilter) bool {
	if f.Status != nil && b.Status() != *f.Status {
		return false
	}
	if f.ResourceID != nil && !slices.Contains(b.ResourceIDs(), *f.ResourceID) {
		return false
	}
	if f.From != nil && !b.TimeSlot().End().After(*f.From) {
		return false
	}
	if f.To != nil && !b.TimeSlot().Start().Before(*f.To) {
		return false
	}
	return true
}

func (s *Store) ListOccupied(ctx context.Context, tenantID uuid.UUID, resourceIDs []uuid.UUID, from, to time.Time) ([]booking.Allocation, error) {
	window, err := booking.NewTimeSlot(from, to)
	if err != nil {
		return nil, errs.Mark(err, queries.ErrInvalidQuery)
	}

	var out []booking.Allocation
	seen := make(map[uuid.UUID]struct{}, len(resourceIDs))
	for _, rid := range resourceIDs {
		if _, dup := seen[rid]; dup {
			continue
		}
		seen[rid] = struct{}{}
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		unlock := s.lockResources(tenantID, []uuid.UUID{rid})
		for _, e := range s.timeline(tenantID, rid).within(window) {
			out = append(out, e.allocation(rid))
		}
		unlock()
	}
	slices.SortStableFunc(out, func(a, b booking.Allocation) int {
		return a.Slot.Start().Compare(b.Slot.Start())
	})
	return out, nil
}
