package commands

import (
	"context"
	"time"

	"booking-core/internal/domain/booking"
	"booking-core/internal/pkg/clock"
	"booking-core/internal/usecase/queries"
	"booking-core/internal/usecase/shared"

	"github.com/google/uuid"
)

// CreateBookingRequest is either a ConfirmFromHoldInput or a CreateDirectInput.
type CreateBookingRequest interface {
	isCreateBookingRequest()
}

type ConfirmFromHoldInput struct {
	TenantID      uuid.UUID
	HoldID        uuid.UUID
	BookedByName  string
	BookedByEmail string
	// Notes of nil carries the hold's notes over.
	Notes *string
}

type CreateDirectInput struct {
	TenantID      uuid.UUID
	ResourceIDs   []uuid.UUID
	StartAt       time.Time
	EndAt         time.Time
	BookedByName  string
	BookedByEmail string
	Notes         *string
}

func (ConfirmFromHoldInput) isCreateBookingRequest() {}
func (CreateDirectInput) isCreateBookingRequest()    {}

type RescheduleInput struct {
	TenantID  uuid.UUID
	BookingID uuid.UUID
	StartAt   time.Time
	EndAt     time.Time
	// Notes of nil keeps the current notes.
	Notes *string
}

//go:generate mockgen -source=booking.go -destination=../../testutil/mock/commands/booking.go -package=commandsmock -exclude_interfaces=CreateBookingRequest
type BookingCommands interface {
	Create(ctx context.Context, req CreateBookingRequest) (*queries.BookingView, error)
	ConfirmFromHold(ctx context.Context, in ConfirmFromHoldInput) (*queries.BookingView, error)
	CreateDirect(ctx context.Context, in CreateDirectInput) (*queries.BookingView, error)
	Reschedule(ctx context.Context, in RescheduleInput) (*queries.BookingView, error)
	UpdateNotes(ctx context.Context, tenantID, bookingID uuid.UUID, notes string) (*queries.BookingView, error)
	Cancel(ctx context.Context, tenantID, bookingID uuid.UUID, reason *string) (*queries.BookingView, error)
}

type bookingCommandsImpl struct {
	ledger    shared.Ledger
	resources shared.ResourceRegistry
	clock     clock.Clock
}

func NewBookingCommands(ledger shared.Ledger, resources shared.ResourceRegistry, clk clock.Clock) BookingCommands {
	return &bookingCommandsImpl{
		ledger:    ledger,
		resources: resources,
		clock:     clk,
	}
}

func (uc *bookingCommandsImpl) Create(ctx context.Context, req CreateBookingRequest) (*queries.BookingView, error) {
	switch r := req.(type) {
	case ConfirmFromHoldInput:
		return uc.ConfirmFromHold(ctx, r)
	case CreateDirectInput:
		return uc.CreateDirect(ctx, r)
	default:
		return nil, ErrValidation
	}
}

func (uc *bookingCommandsImpl) ConfirmFromHold(ctx context.Context, in ConfirmFromHoldInput) (_ *queries.BookingView, err error) {
	ctx, span := startSpan(ctx, "BookingCommands.ConfirmFromHold")
	defer func() { endSpan(span, err) }()

	contact, err := booking.NewContact(in.BookedByName, in.BookedByEmail)
	if err != nil {
		return nil, validation(err)
	}
	var notes *booking.Note
	if in.Notes != nil {
		n, nerr := booking.NewNote(*in.Notes)
		if nerr != nil {
			return nil, validation(nerr)
		}
		notes = &n
	}

	b, err := uc.ledger.ConsumeHold(ctx, in.TenantID, in.HoldID, func(h *booking.Hold) (*booking.Booking, error) {
		return booking.NewBookingFromHold(h, contact, notes, uc.clock.Now())
	})
	if err != nil {
		return nil, classify(err, ErrHoldNotFound)
	}
	return queries.NewBookingView(b), nil
}

func (uc *bookingCommandsImpl) CreateDirect(ctx context.Context, in CreateDirectInput) (_ *queries.BookingView, err error) {
	ctx, span := startSpan(ctx, "BookingCommands.CreateDirect")
	defer func() { endSpan(span, err) }()

	slot, err := booking.NewTimeSlot(in.StartAt, in.EndAt)
	if err != nil {
		return nil, validation(err)
	}
	contact, err := booking.NewContact(in.BookedByName, in.BookedByEmail)
	if err != nil {
		return nil, validation(err)
	}
	notes, err := booking.NoteFromPtr(in.Notes)
	if err != nil {
		return nil, validation(err)
	}
	b, err := booking.NewDirectBooking(in.TenantID, in.ResourceIDs, slot, contact, notes, uc.clock.Now())
	if err != nil {
		return nil, validation(err)
	}
	if err := ensureBookable(ctx, uc.resources, in.TenantID, b.ResourceIDs()); err != nil {
		return nil, err
	}

	if err := uc.ledger.ReserveBooking(ctx, b); err != nil {
		return nil, classify(err, ErrBookingNotFound)
	}
	return queries.NewBookingView(b), nil
}

func (uc *bookingCommandsImpl) Reschedule(ctx context.Context, in RescheduleInput) (_ *queries.BookingView, err error) {
	ctx, span := startSpan(ctx, "BookingCommands.Reschedule")
	defer func() { endSpan(span, err) }()

	slot, err := booking.NewTimeSlot(in.StartAt, in.EndAt)
	if err != nil {
		return nil, validation(err)
	}
	var notes *booking.Note
	if in.Notes != nil {
		n, nerr := booking.NewNote(*in.Notes)
		if nerr != nil {
			return nil, validation(nerr)
		}
		notes = &n
	}

	b, err := uc.ledger.UpdateBooking(ctx, in.TenantID, in.BookingID, func(b *booking.Booking) error {
		return b.Reschedule(slot, notes, uc.clock.Now())
	})
	if err != nil {
		return nil, classify(err, ErrBookingNotFound)
	}
	return queries.NewBookingView(b), nil
}

func (uc *bookingCommandsImpl) UpdateNotes(ctx context.Context, tenantID, bookingID uuid.UUID, notes string) (_ *queries.BookingView, err error) {
	ctx, span := startSpan(ctx, "BookingCommands.UpdateNotes")
	defer func() { endSpan(span, err) }()

	n, err := booking.NewNote(notes)
	if err != nil {
		return nil, validation(err)
	}
	b, err := uc.ledger.UpdateBooking(ctx, tenantID, bookingID, func(b *booking.Booking) error {
		return b.UpdateNotes(n, uc.clock.Now())
	})
	if err != nil {
		return nil, classify(err, ErrBookingNotFound)
	}
	return queries.NewBookingView(b), nil
}

func (uc *bookingCommandsImpl) Cancel(ctx context.Context, tenantID, bookingID uuid.UUID, reason *string) (_ *queries.BookingView, err error) {
	ctx, span := startSpan(ctx, "BookingCommands.Cancel")
	defer func() { endSpan(span, err) }()

	b, err := uc.ledger.UpdateBooking(ctx, tenantID, bookingID, func(b *booking.Booking) error {
		return b.Cancel(reason, uc.clock.Now())
	})
	if err != nil {
		return nil, classify(err, ErrBookingNotFound)
	}
	return queries.NewBookingView(b), nil
}
