//go:build unit || e2e

package builder

import (
	"time"

	"booking-core/internal/domain/booking"
	reqdto "booking-core/internal/handler/dto/request"
	"booking-core/internal/pkg/ptr"
	"booking-core/internal/usecase/queries"

	"github.com/google/uuid"
)

type BookingBuilder struct {
	TenantID      uuid.UUID
	ResourceIDs   []uuid.UUID
	StartAt       time.Time
	EndAt         time.Time
	TTL           time.Duration
	BookedByName  string
	BookedByEmail string
	Notes         *string
	Now           time.Time
}

func NewBookingBuilder() *BookingBuilder {
	return &BookingBuilder{
		TenantID:      uuid.New(),
		ResourceIDs:   []uuid.UUID{uuid.New()},
		StartAt:       time.Date(2028, 6, 16, 10, 0, 0, 0, time.UTC),
		EndAt:         time.Date(2028, 6, 16, 11, 0, 0, 0, time.UTC),
		TTL:           10 * time.Minute,
		BookedByName:  "E2E Customer",
		BookedByEmail: "customer@example.com",
		Notes:         ptr.To("window seat"),
		Now:           time.Date(2028, 6, 1, 9, 0, 0, 0, time.UTC),
	}
}

func (b *BookingBuilder) With(mutate func(*BookingBuilder)) *BookingBuilder {
	mutate(b)
	return b
}

func (b *BookingBuilder) WithSlot(start, end time.Time) *BookingBuilder {
	b.StartAt, b.EndAt = start, end
	return b
}

func (b *BookingBuilder) WithResources(ids ...uuid.UUID) *BookingBuilder {
	b.ResourceIDs = ids
	return b
}

// Build methods
func (b *BookingBuilder) BuildHold() (*booking.Hold, error) {
	slot, err := booking.NewTimeSlot(b.StartAt, b.EndAt)
	if err != nil {
		return nil, err
	}
	notes, err := booking.NoteFromPtr(b.Notes)
	if err != nil {
		return nil, err
	}
	return booking.NewHold(b.TenantID, b.ResourceIDs, slot, b.TTL, notes, b.Now)
}

func (b *BookingBuilder) BuildDirect() (*booking.Booking, error) {
	slot, err := booking.NewTimeSlot(b.StartAt, b.EndAt)
	if err != nil {
		return nil, err
	}
	contact, err := booking.NewContact(b.BookedByName, b.BookedByEmail)
	if err != nil {
		return nil, err
	}
	notes, err := booking.NoteFromPtr(b.Notes)
	if err != nil {
		return nil, err
	}
	return booking.NewDirectBooking(b.TenantID, b.ResourceIDs, slot, contact, notes, b.Now)
}

func (b *BookingBuilder) BuildHoldRequestDTO() reqdto.CreateHoldRequest {
	return reqdto.CreateHoldRequest{
		ResourceIDs: b.ResourceIDs,
		StartAt:     b.StartAt,
		EndAt:       b.EndAt,
		TTLSeconds:  int(b.TTL / time.Second),
		Notes:       b.Notes,
	}
}

func (b *BookingBuilder) BuildDirectRequestDTO() reqdto.CreateBookingRequest {
	return reqdto.CreateBookingRequest{
		ResourceIDs:   b.ResourceIDs,
		StartAt:       ptr.To(b.StartAt),
		EndAt:         ptr.To(b.EndAt),
		BookedByName:  b.BookedByName,
		BookedByEmail: b.BookedByEmail,
		Notes:         b.Notes,
	}
}

func (b *BookingBuilder) BuildConfirmRequestDTO(holdID uuid.UUID) reqdto.CreateBookingRequest {
	return reqdto.CreateBookingRequest{
		HoldID:        ptr.To(holdID),
		BookedByName:  b.BookedByName,
		BookedByEmail: b.BookedByEmail,
	}
}

func (b *BookingBuilder) BuildHoldView() *queries.HoldView {
	return &queries.HoldView{
		ID:          uuid.New(),
		TenantID:    b.TenantID,
		ResourceIDs: b.ResourceIDs,
		StartAt:     b.StartAt,
		EndAt:       b.EndAt,
		Status:      booking.HoldStatusActive.String(),
		ExpiresAt:   b.Now.Add(b.TTL),
		Notes:       b.Notes,
		CreatedAt:   b.Now,
		UpdatedAt:   b.Now,
	}
}

func (b *BookingBuilder) BuildBookingView() *queries.BookingView {
	return &queries.BookingView{
		ID:            uuid.New(),
		TenantID:      b.TenantID,
		ResourceIDs:   b.ResourceIDs,
		StartAt:       b.StartAt,
		EndAt:         b.EndAt,
		Status:        booking.StatusConfirmed.String(),
		BookedByName:  b.BookedByName,
		BookedByEmail: b.BookedByEmail,
		Notes:         b.Notes,
		Version:       1,
		CreatedAt:     b.Now,
		UpdatedAt:     b.Now,
	}
}
