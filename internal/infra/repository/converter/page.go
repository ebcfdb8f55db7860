package converter

import (
	"encoding/json"
	"fmt"
	"time"

	"booking-core/internal/domain/availability"
	"booking-core/internal/domain/page"
	sqlc "booking-core/internal/infra/sqlc/generated"
	"booking-core/internal/pkg/pgconv"
)

type windowJSON struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// EncodeWorkingHours stores hours keyed by lowercase weekday ("mon": [{"start":"09:00","end":"18:00"}]).
func EncodeWorkingHours(wh availability.WorkingHours) ([]byte, error) {
	doc := make(map[string][]windowJSON, len(wh))
	for day, windows := range wh {
		ws := make([]windowJSON, 0, len(windows))
		for _, w := range windows {
			ws = append(ws, windowJSON{Start: w.Start.String(), End: w.End.String()})
		}
		doc[availability.WeekdayKey(day)] = ws
	}
	return json.Marshal(doc)
}

func DecodeWorkingHours(raw []byte) (availability.WorkingHours, error) {
	var doc map[string][]windowJSON
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("decode working hours: %w", err)
	}
	wh := make(availability.WorkingHours, len(doc))
	for key, windows := range doc {
		day, err := availability.ParseWeekday(key)
		if err != nil {
			return nil, fmt.Errorf("decode working hours %q: %w", key, err)
		}
		for _, w := range windows {
			win, err := availability.NewWindow(w.Start, w.End)
			if err != nil {
				return nil, fmt.Errorf("decode working hours %q: %w", key, err)
			}
			wh[day] = append(wh[day], win)
		}
	}
	return wh.Normalize()
}

func BookingPageToInfra(p *page.BookingPage) (sqlc.CreateBookingPageParams, error) {
	hours, err := EncodeWorkingHours(p.WorkingHours())
	if err != nil {
		return sqlc.CreateBookingPageParams{}, err
	}
	return sqlc.CreateBookingPageParams{
		ID:           p.ID(),
		TenantID:     p.TenantID(),
		Slug:         p.Slug(),
		Title:        p.Title(),
		Timezone:     p.Timezone(),
		WorkingHours: hours,
		Published:    p.IsPublished(),
		CreatedAt:    pgconv.TimeToPgtype(p.CreatedAt()),
		UpdatedAt:    pgconv.TimeToPgtype(p.UpdatedAt()),
	}, nil
}

func BookingPageFromRow(row sqlc.BookingPages) (*page.BookingPage, error) {
	hours, err := DecodeWorkingHours(row.WorkingHours)
	if err != nil {
		return nil, err
	}
	return page.ReconstructBookingPage(
		row.ID,
		row.TenantID,
		row.Slug,
		row.Title,
		row.Timezone,
		hours,
		row.Published,
		pgconv.TimeFromPgtype(row.CreatedAt),
		pgconv.TimeFromPgtype(row.UpdatedAt),
	)
}

func ServiceToInfra(s *page.Service) sqlc.CreatePageServiceParams {
	return sqlc.CreatePageServiceParams{
		ID:              s.ID(),
		PageID:          s.PageID(),
		TenantID:        s.TenantID(),
		Name:            s.Name(),
		DurationMinutes: int32(s.Duration() / time.Minute), // #nosec G115
		ResourceIds:     s.ResourceIDs(),
		StaffIds:        s.StaffIDs(),
		CreatedAt:       pgconv.TimeToPgtype(s.CreatedAt()),
	}
}

func ServiceFromRow(row sqlc.PageServices) *page.Service {
	return page.ReconstructService(
		row.ID,
		row.PageID,
		row.TenantID,
		row.Name,
		time.Duration(row.DurationMinutes)*time.Minute,
		row.ResourceIds,
		row.StaffIds,
		pgconv.TimeFromPgtype(row.CreatedAt),
	)
}

func ServicesFromRows(rows []sqlc.PageServices) []*page.Service {
	out := make([]*page.Service, 0, len(rows))
	for _, row := range rows {
		out = append(out, ServiceFromRow(row))
	}
	return out
}
