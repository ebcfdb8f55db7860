package request

import (
	"booking-core/internal/usecase/commands"

	"github.com/google/uuid"
)

type WindowRequest struct {
	Start string `json:"start" binding:"required"`
	End   string `json:"end" binding:"required"`
}

type CreatePageRequest struct {
	Slug     string `json:"slug" binding:"required"`
	Title    string `json:"title" binding:"required"`
	Timezone string `json:"timezone" binding:"required"`
	// WorkingHours maps weekdays ("mon", "tue", ...) to local opening windows.
	WorkingHours map[string][]WindowRequest `json:"workingHours,omitempty"`
	Published    *bool                      `json:"published,omitempty"`
}

func (r CreatePageRequest) ToInput(tenantID uuid.UUID) commands.CreatePageInput {
	in := commands.CreatePageInput{
		TenantID:  tenantID,
		Slug:      r.Slug,
		Title:     r.Title,
		Timezone:  r.Timezone,
		Published: r.Published == nil || *r.Published,
	}
	if r.WorkingHours != nil {
		in.WorkingHours = make(map[string][]commands.WindowInput, len(r.WorkingHours))
		for day, windows := range r.WorkingHours {
			ws := make([]commands.WindowInput, 0, len(windows))
			for _, w := range windows {
				ws = append(ws, commands.WindowInput{Start: w.Start, End: w.End})
			}
			in.WorkingHours[day] = ws
		}
	}
	return in
}

type AddServiceRequest struct {
	Name            string      `json:"name" binding:"required"`
	DurationMinutes int         `json:"durationMinutes" binding:"required,min=1"`
	ResourceIDs     []uuid.UUID `json:"resourceIds" binding:"required"`
	StaffIDs        []uuid.UUID `json:"staffIds,omitempty"`
}

func (r AddServiceRequest) ToInput(tenantID, pageID uuid.UUID) commands.AddServiceInput {
	return commands.AddServiceInput{
		TenantID:        tenantID,
		PageID:          pageID,
		Name:            r.Name,
		DurationMinutes: r.DurationMinutes,
		ResourceIDs:     r.ResourceIDs,
		StaffIDs:        r.StaffIDs,
	}
}
