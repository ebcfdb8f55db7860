package response

import (
	"time"

	"booking-core/internal/usecase/queries"

	"github.com/google/uuid"
)

type HoldResponse struct {
	ID          uuid.UUID   `json:"id"`
	TenantID    uuid.UUID   `json:"tenantId"`
	ResourceIDs []uuid.UUID `json:"resourceIds"`
	StartAt     time.Time   `json:"startAt"`
	EndAt       time.Time   `json:"endAt"`
	Status      string      `json:"status"`
	ExpiresAt   time.Time   `json:"expiresAt"`
	Notes       *string     `json:"notes,omitempty"`
	CreatedAt   time.Time   `json:"createdAt"`
	UpdatedAt   time.Time   `json:"updatedAt"`
}

type HoldEnvelope struct {
	Hold *HoldResponse `json:"hold"`
}

type BookingResponse struct {
	ID              uuid.UUID   `json:"id"`
	TenantID        uuid.UUID   `json:"tenantId"`
	HoldID          *uuid.UUID  `json:"holdId,omitempty"`
	ResourceIDs     []uuid.UUID `json:"resourceIds"`
	StartAt         time.Time   `json:"startAt"`
	EndAt           time.Time   `json:"endAt"`
	Status          string      `json:"status"`
	BookedByName    string      `json:"bookedByName"`
	BookedByEmail   string      `json:"bookedByEmail"`
	Notes           *string     `json:"notes,omitempty"`
	CancelledReason *string     `json:"cancelledReason,omitempty"`
	Version         int         `json:"version"`
	CreatedAt       time.Time   `json:"createdAt"`
	UpdatedAt       time.Time   `json:"updatedAt"`
}

type BookingEnvelope struct {
	Booking *BookingResponse `json:"booking"`
}

type PageInfo struct {
	Total    int  `json:"total"`
	Page     int  `json:"page"`
	PageSize int  `json:"pageSize"`
	HasNext  bool `json:"hasNext"`
}

type BookingListResponse struct {
	Items    []*BookingResponse `json:"items"`
	PageInfo PageInfo           `json:"pageInfo"`
}

func FromHoldView(v *queries.HoldView) HoldEnvelope {
	return HoldEnvelope{Hold: convert[HoldResponse](v)}
}

func FromBookingView(v *queries.BookingView) BookingEnvelope {
	return BookingEnvelope{Booking: convert[BookingResponse](v)}
}

func FromBookingList(l *queries.BookingList) BookingListResponse {
	items := make([]*BookingResponse, 0, len(l.Items))
	for _, v := range l.Items {
		items = append(items, convert[BookingResponse](v))
	}
	return BookingListResponse{
		Items:    items,
		PageInfo: *convert[PageInfo](&l.PageInfo),
	}
}
