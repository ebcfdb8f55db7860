package request

import (
	"errors"
	"strings"
	"time"

	"booking-core/internal/domain/booking"
	"booking-core/internal/usecase/commands"
	"booking-core/internal/usecase/queries"

	"github.com/google/uuid"
)

var (
	ErrAmbiguousBookingRequest  = errors.New("send either holdId or startAt/endAt/resourceIds, not both")
	ErrIncompleteBookingRequest = errors.New("holdId or startAt, endAt and resourceIds are required")
)

type CreateHoldRequest struct {
	ResourceIDs []uuid.UUID `json:"resourceIds" binding:"required"`
	StartAt     time.Time   `json:"startAt" binding:"required"`
	EndAt       time.Time   `json:"endAt" binding:"required"`
	// TTLSeconds of zero selects the server default.
	TTLSeconds int     `json:"ttlSeconds,omitempty" binding:"omitempty,min=1"`
	Notes      *string `json:"notes,omitempty"`
}

func (r CreateHoldRequest) ToInput(tenantID uuid.UUID) commands.CreateHoldInput {
	return commands.CreateHoldInput{
		TenantID:    tenantID,
		ResourceIDs: r.ResourceIDs,
		StartAt:     r.StartAt,
		EndAt:       r.EndAt,
		TTLSeconds:  r.TTLSeconds,
		Notes:       r.Notes,
	}
}

// CreateBookingRequest confirms a hold when HoldID is set and creates a booking directly otherwise.
type CreateBookingRequest struct {
	HoldID        *uuid.UUID  `json:"holdId,omitempty"`
	ResourceIDs   []uuid.UUID `json:"resourceIds,omitempty"`
	StartAt       *time.Time  `json:"startAt,omitempty"`
	EndAt         *time.Time  `json:"endAt,omitempty"`
	BookedByName  string      `json:"bookedByName" binding:"required"`
	BookedByEmail string      `json:"bookedByEmail" binding:"required"`
	Notes         *string     `json:"notes,omitempty"`
}

func (r CreateBookingRequest) ToCommand(tenantID uuid.UUID) (commands.CreateBookingRequest, error) {
	direct := r.StartAt != nil || r.EndAt != nil || len(r.ResourceIDs) > 0
	switch {
	case r.HoldID != nil && direct:
		return nil, ErrAmbiguousBookingRequest
	case r.HoldID != nil:
		return commands.ConfirmFromHoldInput{
			TenantID:      tenantID,
			HoldID:        *r.HoldID,
			BookedByName:  r.BookedByName,
			BookedByEmail: r.BookedByEmail,
			Notes:         r.Notes,
		}, nil
	case r.StartAt == nil || r.EndAt == nil || len(r.ResourceIDs) == 0:
		return nil, ErrIncompleteBookingRequest
	}
	return commands.CreateDirectInput{
		TenantID:      tenantID,
		ResourceIDs:   r.ResourceIDs,
		StartAt:       *r.StartAt,
		EndAt:         *r.EndAt,
		BookedByName:  r.BookedByName,
		BookedByEmail: r.BookedByEmail,
		Notes:         r.Notes,
	}, nil
}

type RescheduleBookingRequest struct {
	StartAt time.Time `json:"startAt" binding:"required"`
	EndAt   time.Time `json:"endAt" binding:"required"`
	Notes   *string   `json:"notes,omitempty"`
}

func (r RescheduleBookingRequest) ToInput(tenantID, bookingID uuid.UUID) commands.RescheduleInput {
	return commands.RescheduleInput{
		TenantID:  tenantID,
		BookingID: bookingID,
		StartAt:   r.StartAt,
		EndAt:     r.EndAt,
		Notes:     r.Notes,
	}
}

// An empty string clears the notes.
type UpdateNotesRequest struct {
	Notes *string `json:"notes"`
}

type CancelBookingRequest struct {
	Reason *string `json:"reason,omitempty"`
}

// BookingListQuery holds the raw query string; ToFilter validates it.
type BookingListQuery struct {
	Status     string `form:"status"`
	ResourceID string `form:"resourceId"`
	FromDate   string `form:"fromDate"`
	ToDate     string `form:"toDate"`
	Page       int    `form:"page" binding:"omitempty,min=1"`
	PageSize   int    `form:"pageSize" binding:"omitempty,min=1"`
}

var (
	ErrInvalidStatus = errors.New("status must be CONFIRMED or CANCELLED")
	ErrInvalidDate   = errors.New("dates must be RFC 3339 timestamps or YYYY-MM-DD")
)

func (q BookingListQuery) ToFilter() (queries.BookingFilter, error) {
	var f queries.BookingFilter
	if q.Status != "" {
		st, ok := booking.ParseStatus(strings.ToUpper(q.Status))
		if !ok {
			return f, ErrInvalidStatus
		}
		f.Status = &st
	}
	if q.ResourceID != "" {
		id, err := uuid.Parse(q.ResourceID)
		if err != nil {
			return f, err
		}
		f.ResourceID = &id
	}
	var err error
	if f.From, err = parseDate(q.FromDate, false); err != nil {
		return f, err
	}
	if f.To, err = parseDate(q.ToDate, true); err != nil {
		return f, err
	}
	return f, nil
}

// parseDate accepts a full timestamp or a bare UTC date. A bare date used as an upper
// bound covers the whole day.
func parseDate(s string, wholeDay bool) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return &t, nil
	}
	t, err := time.Parse(time.DateOnly, s)
	if err != nil {
		return nil, ErrInvalidDate
	}
	if wholeDay {
		t = t.AddDate(0, 0, 1)
	}
	return &t, nil
}
