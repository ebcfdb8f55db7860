package page

import (
	"errors"
	"regexp"
	"slices"
	"strings"
	"time"

	"booking-core/internal/domain/availability"

	"github.com/google/uuid"
)

var (
	ErrInvalidSlug     = errors.New("slug must be 3-64 lowercase letters, digits or hyphens")
	ErrEmptyTitle      = errors.New("title cannot be empty")
	ErrInvalidTimezone = errors.New("unknown IANA timezone")
	ErrEmptyName       = errors.New("service name cannot be empty")
	ErrInvalidDuration = errors.New("service duration must be positive")
	ErrNoResources     = errors.New("service needs at least one resource")
)

var slugRegex = regexp.MustCompile(`^[a-z0-9][a-z0-9-]{1,62}[a-z0-9]$`)

// BookingPage is a tenant's public entry point for self-service booking.
type BookingPage struct {
	id           uuid.UUID
	tenantID     uuid.UUID
	slug         string
	title        string
	timezone     string
	location     *time.Location
	workingHours availability.WorkingHours
	published    bool
	createdAt    time.Time
	updatedAt    time.Time
}

func NewBookingPage(tenantID uuid.UUID, slug, title, timezone string, hours availability.WorkingHours, published bool, now time.Time) (*BookingPage, error) {
	slug = strings.TrimSpace(slug)
	if !slugRegex.MatchString(slug) {
		return nil, ErrInvalidSlug
	}
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, ErrEmptyTitle
	}
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, ErrInvalidTimezone
	}
	normalized, err := hours.Normalize()
	if err != nil {
		return nil, err
	}

	now = now.UTC()
	return &BookingPage{
		id:           uuid.New(),
		tenantID:     tenantID,
		slug:         slug,
		title:        title,
		timezone:     timezone,
		location:     loc,
		workingHours: normalized,
		published:    published,
		createdAt:    now,
		updatedAt:    now,
	}, nil
}

func ReconstructBookingPage(id, tenantID uuid.UUID, slug, title, timezone string, hours availability.WorkingHours, published bool, createdAt, updatedAt time.Time) (*BookingPage, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, ErrInvalidTimezone
	}
	return &BookingPage{
		id:           id,
		tenantID:     tenantID,
		slug:         slug,
		title:        title,
		timezone:     timezone,
		location:     loc,
		workingHours: hours,
		published:    published,
		createdAt:    createdAt.UTC(),
		updatedAt:    updatedAt.UTC(),
	}, nil
}

func (p *BookingPage) ID() uuid.UUID                           { return p.id }
func (p *BookingPage) TenantID() uuid.UUID                     { return p.tenantID }
func (p *BookingPage) Slug() string                            { return p.slug }
func (p *BookingPage) Title() string                           { return p.title }
func (p *BookingPage) Timezone() string                        { return p.timezone }
func (p *BookingPage) Location() *time.Location                { return p.location }
func (p *BookingPage) WorkingHours() availability.WorkingHours { return p.workingHours }
func (p *BookingPage) IsPublished() bool                       { return p.published }
func (p *BookingPage) CreatedAt() time.Time                    { return p.createdAt }
func (p *BookingPage) UpdatedAt() time.Time                    { return p.updatedAt }

// Service is a bookable offering on a page: a fixed duration over a set of resources,
// optionally paired with staff.
type Service struct {
	id          uuid.UUID
	pageID      uuid.UUID
	tenantID    uuid.UUID
	name        string
	duration    time.Duration
	resourceIDs []uuid.UUID
	staffIDs    []uuid.UUID
	createdAt   time.Time
}

func NewService(p *BookingPage, name string, durationMinutes int, resourceIDs, staffIDs []uuid.UUID, now time.Time) (*Service, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyName
	}
	if durationMinutes <= 0 {
		return nil, ErrInvalidDuration
	}
	if len(resourceIDs) == 0 {
		return nil, ErrNoResources
	}
	return &Service{
		id:          uuid.New(),
		pageID:      p.ID(),
		tenantID:    p.TenantID(),
		name:        name,
		duration:    time.Duration(durationMinutes) * time.Minute,
		resourceIDs: distinct(resourceIDs),
		staffIDs:    distinct(staffIDs),
		createdAt:   now.UTC(),
	}, nil
}

func ReconstructService(id, pageID, tenantID uuid.UUID, name string, duration time.Duration, resourceIDs, staffIDs []uuid.UUID, createdAt time.Time) *Service {
	return &Service{
		id:          id,
		pageID:      pageID,
		tenantID:    tenantID,
		name:        name,
		duration:    duration,
		resourceIDs: slices.Clone(resourceIDs),
		staffIDs:    slices.Clone(staffIDs),
		createdAt:   createdAt.UTC(),
	}
}

func (s *Service) ID() uuid.UUID            { return s.id }
func (s *Service) PageID() uuid.UUID        { return s.pageID }
func (s *Service) TenantID() uuid.UUID      { return s.tenantID }
func (s *Service) Name() string             { return s.name }
func (s *Service) Duration() time.Duration  { return s.duration }
func (s *Service) ResourceIDs() []uuid.UUID { return slices.Clone(s.resourceIDs) }
func (s *Service) StaffIDs() []uuid.UUID    { return slices.Clone(s.staffIDs) }
func (s *Service) CreatedAt() time.Time     { return s.createdAt }

// Candidates expands the service into (resource[, staff]) pairs in service order.
// resourceID and staffID narrow the expansion when set.
func (s *Service) Candidates(resourceID, staffID *uuid.UUID) []availability.Candidate {
	var out []availability.Candidate
	for _, rid := range s.resourceIDs {
		if resourceID != nil && *resourceID != rid {
			continue
		}
		if len(s.staffIDs) == 0 {
			out = append(out, availability.Candidate{Members: []uuid.UUID{rid}, ResourceID: rid})
			continue
		}
		for _, sid := range s.staffIDs {
			if staffID != nil && *staffID != sid {
				continue
			}
			out = append(out, availability.Candidate{Members: []uuid.UUID{rid, sid}, ResourceID: rid, StaffID: &sid})
		}
	}
	return out
}

// MemberIDs lists every resource and staff id the service may allocate.
func (s *Service) MemberIDs() []uuid.UUID {
	out := slices.Clone(s.resourceIDs)
	return append(out, s.staffIDs...)
}

func distinct(ids []uuid.UUID) []uuid.UUID {
	seen := make(map[uuid.UUID]struct{}, len(ids))
	out := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
