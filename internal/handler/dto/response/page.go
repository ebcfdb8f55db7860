package response

import (
	"time"

	"booking-core/internal/usecase/queries"

	"github.com/google/uuid"
)

type WindowResponse struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

type ServiceResponse struct {
	ID              uuid.UUID   `json:"id"`
	PageID          uuid.UUID   `json:"pageId"`
	Name            string      `json:"name"`
	DurationMinutes int         `json:"durationMinutes"`
	ResourceIDs     []uuid.UUID `json:"resourceIds"`
	StaffIDs        []uuid.UUID `json:"staffIds"`
}

type PageResponse struct {
	ID           uuid.UUID                   `json:"id"`
	Slug         string                      `json:"slug"`
	Title        string                      `json:"title"`
	Timezone     string                      `json:"timezone"`
	WorkingHours map[string][]WindowResponse `json:"workingHours"`
	Published    bool                        `json:"published"`
	Services     []*ServiceResponse          `json:"services"`
	CreatedAt    time.Time                   `json:"createdAt"`
}

type PageEnvelope struct {
	Page *PageResponse `json:"page"`
}

type ServiceEnvelope struct {
	Service *ServiceResponse `json:"service"`
}

type SlotResponse struct {
	Start       time.Time   `json:"start"`
	End         time.Time   `json:"end"`
	ResourceIDs []uuid.UUID `json:"resourceIds"`
	ResourceID  *uuid.UUID  `json:"resourceId,omitempty"`
	StaffID     *uuid.UUID  `json:"staffId,omitempty"`
}

type AvailabilityResponse struct {
	Timezone      string         `json:"timezone"`
	AvailableDays []string       `json:"availableDays"`
	TimeSlots     []SlotResponse `json:"timeSlots"`
}

func FromPageView(v *queries.PageView) PageEnvelope {
	hours := make(map[string][]WindowResponse, len(v.WorkingHours))
	for day, windows := range v.WorkingHours {
		ws := make([]WindowResponse, 0, len(windows))
		for _, w := range windows {
			ws = append(ws, WindowResponse(w))
		}
		hours[day] = ws
	}
	services := make([]*ServiceResponse, 0, len(v.Services))
	for _, s := range v.Services {
		services = append(services, convert[ServiceResponse](s))
	}
	return PageEnvelope{Page: &PageResponse{
		ID:           v.ID,
		Slug:         v.Slug,
		Title:        v.Title,
		Timezone:     v.Timezone,
		WorkingHours: hours,
		Published:    v.Published,
		Services:     services,
		CreatedAt:    v.CreatedAt,
	}}
}

func FromServiceView(v *queries.ServiceView) ServiceEnvelope {
	return ServiceEnvelope{Service: convert[ServiceResponse](v)}
}

func FromAvailabilityView(v *queries.AvailabilityView) AvailabilityResponse {
	slots := make([]SlotResponse, 0, len(v.TimeSlots))
	for _, s := range v.TimeSlots {
		slots = append(slots, SlotResponse(s))
	}
	days := v.AvailableDays
	if days == nil {
		days = []string{}
	}
	return AvailabilityResponse{
		Timezone:      v.Timezone,
		AvailableDays: days,
		TimeSlots:     slots,
	}
}
