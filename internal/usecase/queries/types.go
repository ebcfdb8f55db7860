package queries

import (
	"time"

	"booking-core/internal/domain/availability"
	"booking-core/internal/domain/booking"
	"booking-core/internal/domain/page"
	"booking-core/internal/domain/resource"
	"booking-core/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrNotFound        = errs.New("not found")
	ErrHoldNotFound    = errs.New("hold not found")
	ErrBookingNotFound = errs.New("booking not found")
	ErrInvalidQuery    = errs.New("invalid query")
)

// HoldView represents read-optimized hold data
type HoldView struct {
	ID          uuid.UUID   `json:"id"`
	TenantID    uuid.UUID   `json:"tenant_id"`
	ResourceIDs []uuid.UUID `json:"resource_ids"`
	StartAt     time.Time   `json:"start_at"`
	EndAt       time.Time   `json:"end_at"`
	Status      string      `json:"status"`
	ExpiresAt   time.Time   `json:"expires_at"`
	Notes       *string     `json:"notes,omitempty"`
	CreatedAt   time.Time   `json:"created_at"`
	UpdatedAt   time.Time   `json:"updated_at"`
}

// WithLiveStatus reports an ACTIVE hold past its expiry as EXPIRED.
func (v *HoldView) WithLiveStatus(now time.Time) *HoldView {
	if v.Status == string(booking.HoldStatusActive) && !now.Before(v.ExpiresAt) {
		c := *v
		c.Status = string(booking.HoldStatusExpired)
		return &c
	}
	return v
}

// BookingView represents read-optimized booking data
type BookingView struct {
	ID              uuid.UUID   `json:"id"`
	TenantID        uuid.UUID   `json:"tenant_id"`
	HoldID          *uuid.UUID  `json:"hold_id,omitempty"`
	ResourceIDs     []uuid.UUID `json:"resource_ids"`
	StartAt         time.Time   `json:"start_at"`
	EndAt           time.Time   `json:"end_at"`
	Status          string      `json:"status"`
	BookedByName    string      `json:"booked_by_name"`
	BookedByEmail   string      `json:"booked_by_email"`
	Notes           *string     `json:"notes,omitempty"`
	CancelledReason *string     `json:"cancelled_reason,omitempty"`
	Version         int         `json:"version"`
	CreatedAt       time.Time   `json:"created_at"`
	UpdatedAt       time.Time   `json:"updated_at"`
}

type ResourceView struct {
	ID        uuid.UUID `json:"id"`
	TenantID  uuid.UUID `json:"tenant_id"`
	Type      string    `json:"type"`
	Name      string    `json:"name"`
	Capacity  int       `json:"capacity"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type WindowView struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

type PageView struct {
	ID           uuid.UUID               `json:"id"`
	TenantID     uuid.UUID               `json:"tenant_id"`
	Slug         string                  `json:"slug"`
	Title        string                  `json:"title"`
	Timezone     string                  `json:"timezone"`
	WorkingHours map[string][]WindowView `json:"working_hours"`
	Published    bool                    `json:"published"`
	Services     []*ServiceView          `json:"services,omitempty"`
	CreatedAt    time.Time               `json:"created_at"`
}

type ServiceView struct {
	ID              uuid.UUID   `json:"id"`
	PageID          uuid.UUID   `json:"page_id"`
	Name            string      `json:"name"`
	DurationMinutes int         `json:"duration_minutes"`
	ResourceIDs     []uuid.UUID `json:"resource_ids"`
	StaffIDs        []uuid.UUID `json:"staff_ids"`
}

// SlotView is one bookable option; a start with several free candidates appears once per candidate.
type SlotView struct {
	Start       time.Time   `json:"start"`
	End         time.Time   `json:"end"`
	ResourceIDs []uuid.UUID `json:"resource_ids"`
	ResourceID  *uuid.UUID  `json:"resource_id,omitempty"`
	StaffID     *uuid.UUID  `json:"staff_id,omitempty"`
}

type AvailabilityView struct {
	Timezone      string     `json:"timezone"`
	AvailableDays []string   `json:"available_days"`
	TimeSlots     []SlotView `json:"time_slots"`
}

type PageInfo struct {
	Total    int  `json:"total"`
	Page     int  `json:"page"`
	PageSize int  `json:"page_size"`
	HasNext  bool `json:"has_next"`
}

type BookingList struct {
	Items    []*BookingView `json:"items"`
	PageInfo PageInfo       `json:"page_info"`
}

func NewHoldView(h *booking.Hold) *HoldView {
	return &HoldView{
		ID:          h.ID(),
		TenantID:    h.TenantID(),
		ResourceIDs: h.ResourceIDs(),
		StartAt:     h.TimeSlot().Start(),
		EndAt:       h.TimeSlot().End(),
		Status:      h.Status().String(),
		ExpiresAt:   h.ExpiresAt(),
		Notes:       h.Notes().Ptr(),
		CreatedAt:   h.CreatedAt(),
		UpdatedAt:   h.UpdatedAt(),
	}
}

func NewBookingView(b *booking.Booking) *BookingView {
	return &BookingView{
		ID:              b.ID(),
		TenantID:        b.TenantID(),
		HoldID:          b.HoldID(),
		ResourceIDs:     b.ResourceIDs(),
		StartAt:         b.TimeSlot().Start(),
		EndAt:           b.TimeSlot().End(),
		Status:          b.Status().String(),
		BookedByName:    b.BookedBy().Name(),
		BookedByEmail:   b.BookedBy().Email(),
		Notes:           b.Notes().Ptr(),
		CancelledReason: b.CancelledReason(),
		Version:         b.Version(),
		CreatedAt:       b.CreatedAt(),
		UpdatedAt:       b.UpdatedAt(),
	}
}

func NewResourceView(r *resource.Resource) *ResourceView {
	return &ResourceView{
		ID:        r.ID(),
		TenantID:  r.TenantID(),
		Type:      r.Type().String(),
		Name:      r.Name(),
		Capacity:  r.Capacity(),
		IsActive:  r.IsActive(),
		CreatedAt: r.CreatedAt(),
		UpdatedAt: r.UpdatedAt(),
	}
}

func NewPageView(p *page.BookingPage, services []*page.Service) *PageView {
	hours := make(map[string][]WindowView, len(p.WorkingHours()))
	for day, windows := range p.WorkingHours() {
		ws := make([]WindowView, 0, len(windows))
		for _, w := range windows {
			ws = append(ws, WindowView{Start: w.Start.String(), End: w.End.String()})
		}
		hours[availability.WeekdayKey(day)] = ws
	}
	v := &PageView{
		ID:           p.ID(),
		TenantID:     p.TenantID(),
		Slug:         p.Slug(),
		Title:        p.Title(),
		Timezone:     p.Timezone(),
		WorkingHours: hours,
		Published:    p.IsPublished(),
		CreatedAt:    p.CreatedAt(),
	}
	for _, s := range services {
		v.Services = append(v.Services, NewServiceView(s))
	}
	return v
}

func NewServiceView(s *page.Service) *ServiceView {
	return &ServiceView{
		ID:              s.ID(),
		PageID:          s.PageID(),
		Name:            s.Name(),
		DurationMinutes: int(s.Duration() / time.Minute),
		ResourceIDs:     s.ResourceIDs(),
		StaffIDs:        s.StaffIDs(),
	}
}
