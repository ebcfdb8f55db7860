package shared

import (
	"context"

	"booking-core/internal/domain/booking"
	"booking-core/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	// ErrAllocationConflict: an active allocation already overlaps the requested interval.
	ErrAllocationConflict = errs.New("allocation conflict")
	ErrRecordNotFound     = errs.New("record not found")
	// ErrStorageUnavailable: transient storage failures persisted through every retry.
	ErrStorageUnavailable = errs.New("storage unavailable")
	ErrDuplicateRecord    = errs.New("duplicate record")
)

// Ledger is the single authority over which intervals are occupied on which resources.
// Every method is atomic: it either applies completely or leaves no trace.
//
// Callbacks receive a private copy of the locked aggregate and may be invoked more than
// once when the storage retries; they must not have side effects beyond mutating it.
type Ledger interface {
	// ReserveHold allocates every resource of h for its interval and stores h.
	ReserveHold(ctx context.Context, h *booking.Hold) error
	// ReserveBooking allocates every resource of b for its interval and stores b.
	ReserveBooking(ctx context.Context, b *booking.Booking) error
	// ConsumeHold hands the hold to confirm, which returns the booking replacing it. The hold's
	// allocation is re-labelled in place, so the interval never appears free.
	ConsumeHold(ctx context.Context, tenantID, holdID uuid.UUID, confirm func(h *booking.Hold) (*booking.Booking, error)) (*booking.Booking, error)
	// UpdateHold applies mutate and frees the allocation if the hold left ACTIVE.
	UpdateHold(ctx context.Context, tenantID, holdID uuid.UUID, mutate func(h *booking.Hold) error) (*booking.Hold, error)
	// UpdateBooking applies mutate and reconciles the allocation with the result: a changed
	// interval is moved all-or-nothing, a cancellation frees it.
	UpdateBooking(ctx context.Context, tenantID, bookingID uuid.UUID, mutate func(b *booking.Booking) error) (*booking.Booking, error)
	// ExpireHolds retires up to limit holds whose ttl has elapsed and reports how many.
	ExpireHolds(ctx context.Context, limit int) (int, error)
}
