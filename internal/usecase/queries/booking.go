package queries

import (
	"context"
	"time"

	"booking-core/internal/domain/booking"
	"booking-core/internal/pkg/clock"
	"booking-core/internal/pkg/errs"
	"booking-core/internal/usecase/shared"

	"github.com/google/uuid"
)

const (
	DefaultPageSize = 20
	MaxPageSize     = 200
)

// BookingFilter narrows a listing; nil fields do not filter. From/To select bookings
// overlapping [From, To).
type BookingFilter struct {
	Status     *booking.Status
	ResourceID *uuid.UUID
	From       *time.Time
	To         *time.Time
}

type BookingReadStore interface {
	FindBooking(ctx context.Context, tenantID, id uuid.UUID) (*BookingView, error)
	// ListBookings orders by start time then id and returns the total match count.
	ListBookings(ctx context.Context, tenantID uuid.UUID, f BookingFilter, limit, offset int) ([]*BookingView, int, error)
	FindHold(ctx context.Context, tenantID, id uuid.UUID) (*HoldView, error)
}

//go:generate mockgen -source=booking.go -destination=../../testutil/mock/queries/booking.go -package=queriesmock -exclude_interfaces=BookingReadStore
type BookingQueries interface {
	GetBooking(ctx context.Context, tenantID, id uuid.UUID) (*BookingView, error)
	ListBookings(ctx context.Context, tenantID uuid.UUID, f BookingFilter, page, pageSize int) (*BookingList, error)
	GetHold(ctx context.Context, tenantID, id uuid.UUID) (*HoldView, error)
}

type bookingQueriesImpl struct {
	store BookingReadStore
	clock clock.Clock
}

func NewBookingQueries(store BookingReadStore, clk clock.Clock) BookingQueries {
	return &bookingQueriesImpl{store: store, clock: clk}
}

func (q *bookingQueriesImpl) GetBooking(ctx context.Context, tenantID, id uuid.UUID) (*BookingView, error) {
	v, err := q.store.FindBooking(ctx, tenantID, id)
	if err != nil {
		if errs.Is(err, shared.ErrRecordNotFound) {
			return nil, errs.Mark(err, ErrBookingNotFound)
		}
		return nil, err
	}
	return v, nil
}

func (q *bookingQueriesImpl) ListBookings(ctx context.Context, tenantID uuid.UUID, f BookingFilter, page, pageSize int) (*BookingList, error) {
	if page == 0 {
		page = 1
	}
	if pageSize == 0 {
		pageSize = DefaultPageSize
	}
	if page < 0 || pageSize < 0 {
		return nil, ErrInvalidQuery
	}
	pageSize = min(pageSize, MaxPageSize)
	if f.From != nil && f.To != nil && !f.From.Before(*f.To) {
		return nil, ErrInvalidQuery
	}

	items, total, err := q.store.ListBookings(ctx, tenantID, f, pageSize, (page-1)*pageSize)
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []*BookingView{}
	}
	return &BookingList{
		Items: items,
		PageInfo: PageInfo{
			Total:    total,
			Page:     page,
			PageSize: pageSize,
			HasNext:  page*pageSize < total,
		},
	}, nil
}

func (q *bookingQueriesImpl) GetHold(ctx context.Context, tenantID, id uuid.UUID) (*HoldView, error) {
	v, err := q.store.FindHold(ctx, tenantID, id)
	if err != nil {
		if errs.Is(err, shared.ErrRecordNotFound) {
			return nil, errs.Mark(err, ErrHoldNotFound)
		}
		return nil, err
	}
	return v.WithLiveStatus(q.clock.Now()), nil
}
