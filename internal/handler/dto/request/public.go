package request

import (
	"time"

	"booking-core/internal/usecase/commands"
	"booking-core/internal/usecase/queries"

	"github.com/google/uuid"
)

type PublicHoldRequest struct {
	ServiceID  uuid.UUID  `json:"serviceId" binding:"required"`
	StartAt    time.Time  `json:"startAt" binding:"required"`
	ResourceID *uuid.UUID `json:"resourceId,omitempty"`
	StaffID    *uuid.UUID `json:"staffId,omitempty"`
	Notes      *string    `json:"notes,omitempty"`
}

func (r PublicHoldRequest) ToInput(slug string) commands.PublicHoldInput {
	return commands.PublicHoldInput{
		Slug:       slug,
		ServiceID:  r.ServiceID,
		StartAt:    r.StartAt,
		ResourceID: r.ResourceID,
		StaffID:    r.StaffID,
		Notes:      r.Notes,
	}
}

type PublicConfirmRequest struct {
	HoldID uuid.UUID `json:"holdId" binding:"required"`
	Name   string    `json:"name" binding:"required"`
	Email  string    `json:"email" binding:"required"`
	Notes  *string   `json:"notes,omitempty"`
}

func (r PublicConfirmRequest) ToInput(slug string) commands.PublicConfirmInput {
	return commands.PublicConfirmInput{
		Slug:   slug,
		HoldID: r.HoldID,
		Name:   r.Name,
		Email:  r.Email,
		Notes:  r.Notes,
	}
}

type AvailabilityQuery struct {
	ServiceID  string `form:"serviceId" binding:"required"`
	ResourceID string `form:"resourceId"`
	StaffID    string `form:"staffId"`
	From       string `form:"from"`
	To         string `form:"to"`
	Day        string `form:"day"`
}

func (q AvailabilityQuery) ToInput() (queries.PageAvailabilityInput, error) {
	var in queries.PageAvailabilityInput
	var err error
	if in.ServiceID, err = uuid.Parse(q.ServiceID); err != nil {
		return in, err
	}
	if in.ResourceID, err = optionalUUID(q.ResourceID); err != nil {
		return in, err
	}
	if in.StaffID, err = optionalUUID(q.StaffID); err != nil {
		return in, err
	}
	if in.From, err = parseDate(q.From, false); err != nil {
		return in, err
	}
	if in.To, err = parseDate(q.To, true); err != nil {
		return in, err
	}
	if q.Day != "" {
		in.Day = &q.Day
	}
	return in, nil
}

// ResourceAvailabilityQuery drives the tenant-side slot search over raw resources.
type ResourceAvailabilityQuery struct {
	ResourceIDs     []string `form:"resourceIds" binding:"required"`
	DurationMinutes int      `form:"durationMinutes" binding:"required,min=1"`
	From            string   `form:"from"`
	To              string   `form:"to"`
	RequireAll      bool     `form:"requireAll"`
	Timezone        string   `form:"timezone"`
}

func (q ResourceAvailabilityQuery) ToInput() (queries.ResourceAvailabilityInput, error) {
	in := queries.ResourceAvailabilityInput{
		RequireAll: q.RequireAll,
		Duration:   time.Duration(q.DurationMinutes) * time.Minute,
		Timezone:   q.Timezone,
	}
	for _, raw := range q.ResourceIDs {
		id, err := uuid.Parse(raw)
		if err != nil {
			return in, err
		}
		in.ResourceIDs = append(in.ResourceIDs, id)
	}
	from, err := parseDate(q.From, false)
	if err != nil {
		return in, err
	}
	to, err := parseDate(q.To, true)
	if err != nil {
		return in, err
	}
	if from != nil {
		in.From = *from
	}
	if to != nil {
		in.To = *to
	}
	return in, nil
}

type OccupancyQuery struct {
	From string `form:"from" binding:"required"`
	To   string `form:"to" binding:"required"`
}

func (q OccupancyQuery) Range() (time.Time, time.Time, error) {
	from, err := parseDate(q.From, false)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	to, err := parseDate(q.To, true)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	return *from, *to, nil
}

func optionalUUID(s string) (*uuid.UUID, error) {
	if s == "" {
		return nil, nil
	}
	id, err := uuid.Parse(s)
	if err != nil {
		return nil, err
	}
	return &id, nil
}
