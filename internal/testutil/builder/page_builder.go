//go:build unit || e2e

package builder

import (
	"time"

	"booking-core/internal/domain/availability"
	"booking-core/internal/domain/page"
	sqlc "booking-core/internal/infra/sqlc/generated"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type PageBuilder struct {
	TenantID  uuid.UUID
	Slug      string
	Title     string
	Timezone  string
	Hours     availability.WorkingHours
	Published bool
	CreatedAt time.Time
}

func NewPageBuilder() *PageBuilder {
	return &PageBuilder{
		TenantID: uuid.New(),
		Slug:     "acme-clinic",
		Title:    "Acme Clinic",
		Timezone: "Europe/Berlin",
		Hours: availability.WorkingHours{
			time.Monday:    {{Start: 9 * 60, End: 17 * 60}},
			time.Wednesday: {{Start: 9 * 60, End: 12 * 60}, {Start: 13 * 60, End: 17 * 60}},
		},
		Published: true,
		CreatedAt: time.Date(2028, 6, 1, 9, 0, 0, 0, time.UTC),
	}
}

func (p *PageBuilder) With(mutate func(*PageBuilder)) *PageBuilder {
	mutate(p)
	return p
}

// Build methods
func (p *PageBuilder) BuildDomain() (*page.BookingPage, error) {
	return page.NewBookingPage(p.TenantID, p.Slug, p.Title, p.Timezone, p.Hours, p.Published, p.CreatedAt)
}

func (p *PageBuilder) BuildInfra(workingHours []byte) sqlc.BookingPages {
	return sqlc.BookingPages{
		ID:           uuid.New(),
		TenantID:     p.TenantID,
		Slug:         p.Slug,
		Title:        p.Title,
		Timezone:     p.Timezone,
		WorkingHours: workingHours,
		Published:    p.Published,
		CreatedAt:    pgtype.Timestamptz{Time: p.CreatedAt, Valid: true},
		UpdatedAt:    pgtype.Timestamptz{Time: p.CreatedAt, Valid: true},
	}
}
