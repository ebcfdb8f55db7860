package booking

import (
	"errors"
	"slices"
	"time"

	"github.com/google/uuid"
)

var (
	ErrBookingNotReschedulable = errors.New("only confirmed bookings can be changed")
	ErrAlreadyCancelled        = errors.New("booking is already cancelled")
)

type Booking struct {
	id              uuid.UUID
	tenantID        uuid.UUID
	holdID          *uuid.UUID
	resourceIDs     []uuid.UUID
	slot            TimeSlot
	status          Status
	bookedBy        Contact
	notes           Note
	cancelledReason *string
	version         int
	createdAt       time.Time
	updatedAt       time.Time
}

func NewDirectBooking(tenantID uuid.UUID, resourceIDs []uuid.UUID, slot TimeSlot, bookedBy Contact, notes Note, now time.Time) (*Booking, error) {
	ids, err := normalizeResourceIDs(resourceIDs)
	if err != nil {
		return nil, err
	}
	if slot.IsZero() {
		return nil, ErrInvalidTimeSlot
	}

	now = now.UTC()
	return &Booking{
		id:          uuid.New(),
		tenantID:    tenantID,
		resourceIDs: ids,
		slot:        slot,
		status:      StatusConfirmed,
		bookedBy:    bookedBy,
		notes:       notes,
		version:     1,
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

// NewBookingFromHold consumes h and returns the booking that takes over its interval.
// A nil notes pointer carries the hold's notes over.
func NewBookingFromHold(h *Hold, bookedBy Contact, notes *Note, now time.Time) (*Booking, error) {
	if err := h.Consume(now); err != nil {
		return nil, err
	}

	n := h.Notes()
	if notes != nil {
		n = *notes
	}
	holdID := h.ID()
	now = now.UTC()
	return &Booking{
		id:          uuid.New(),
		tenantID:    h.TenantID(),
		holdID:      &holdID,
		resourceIDs: h.ResourceIDs(),
		slot:        h.TimeSlot(),
		status:      StatusConfirmed,
		bookedBy:    bookedBy,
		notes:       n,
		version:     1,
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

func ReconstructBooking(
	id, tenantID uuid.UUID,
	holdID *uuid.UUID,
	resourceIDs []uuid.UUID,
	slot TimeSlot,
	status Status,
	bookedBy Contact,
	notes Note,
	cancelledReason *string,
	version int,
	createdAt, updatedAt time.Time,
) *Booking {
	return &Booking{
		id:              id,
		tenantID:        tenantID,
		holdID:          holdID,
		resourceIDs:     slices.Clone(resourceIDs),
		slot:            slot,
		status:          status,
		bookedBy:        bookedBy,
		notes:           notes,
		cancelledReason: cancelledReason,
		version:         version,
		createdAt:       createdAt.UTC(),
		updatedAt:       updatedAt.UTC(),
	}
}

// ReconstructContact skips validation for values already persisted.
func ReconstructContact(name, email string) Contact {
	return Contact{name: name, email: email}
}

func (b *Booking) ID() uuid.UUID            { return b.id }
func (b *Booking) TenantID() uuid.UUID      { return b.tenantID }
func (b *Booking) HoldID() *uuid.UUID       { return b.holdID }
func (b *Booking) ResourceIDs() []uuid.UUID { return slices.Clone(b.resourceIDs) }
func (b *Booking) TimeSlot() TimeSlot       { return b.slot }
func (b *Booking) Status() Status           { return b.status }
func (b *Booking) BookedBy() Contact        { return b.bookedBy }
func (b *Booking) Notes() Note              { return b.notes }
func (b *Booking) CancelledReason() *string { return b.cancelledReason }
func (b *Booking) Version() int             { return b.version }
func (b *Booking) CreatedAt() time.Time     { return b.createdAt }
func (b *Booking) UpdatedAt() time.Time     { return b.updatedAt }

func (b *Booking) IsConfirmed() bool {
	return b.status == StatusConfirmed
}

func (b *Booking) IsCancelled() bool {
	return b.status == StatusCancelled
}

// Reschedule moves the booking to slot on the same resources. A nil notes pointer keeps the
// current notes.
func (b *Booking) Reschedule(slot TimeSlot, notes *Note, now time.Time) error {
	if !b.IsConfirmed() {
		return ErrBookingNotReschedulable
	}
	if slot.IsZero() {
		return ErrInvalidTimeSlot
	}
	b.slot = slot
	if notes != nil {
		b.notes = *notes
	}
	b.touch(now)
	return nil
}

func (b *Booking) UpdateNotes(notes Note, now time.Time) error {
	if !b.IsConfirmed() {
		return ErrBookingNotReschedulable
	}
	b.notes = notes
	b.touch(now)
	return nil
}

func (b *Booking) Cancel(reason *string, now time.Time) error {
	if b.IsCancelled() {
		return ErrAlreadyCancelled
	}
	b.status = StatusCancelled
	if reason != nil && *reason != "" {
		r := *reason
		b.cancelledReason = &r
	}
	b.touch(now)
	return nil
}

// Allocations lists the per-resource intervals a confirmed booking occupies.
func (b *Booking) Allocations() []Allocation {
	if !b.IsConfirmed() {
		return nil
	}
	out := make([]Allocation, 0, len(b.resourceIDs))
	for _, rid := range b.resourceIDs {
		out = append(out, Allocation{
			ResourceID: rid,
			Slot:       b.slot,
			Kind:       AllocationBooking,
			OwnerID:    b.id,
		})
	}
	return out
}

func (b *Booking) Clone() *Booking {
	c := *b
	c.resourceIDs = slices.Clone(b.resourceIDs)
	if b.holdID != nil {
		id := *b.holdID
		c.holdID = &id
	}
	if b.cancelledReason != nil {
		r := *b.cancelledReason
		c.cancelledReason = &r
	}
	return &c
}

func (b *Booking) touch(now time.Time) {
	b.version++
	b.updatedAt = now.UTC()
}
