package queries

import (
	"context"
	"time"

	"booking-core/internal/domain/availability"
	"booking-core/internal/domain/booking"
	"booking-core/internal/domain/page"
	"booking-core/internal/pkg/clock"
	"booking-core/internal/pkg/errs"
	"booking-core/internal/usecase/shared"

	"github.com/google/uuid"
)

const defaultWindow = 7 * 24 * time.Hour

type OccupancyReadStore interface {
	// ListOccupied returns active allocations on the resources overlapping [from, to), ordered by start.
	ListOccupied(ctx context.Context, tenantID uuid.UUID, resourceIDs []uuid.UUID, from, to time.Time) ([]booking.Allocation, error)
}

type PageReadStore interface {
	FindPageBySlug(ctx context.Context, slug string) (*page.BookingPage, error)
	FindService(ctx context.Context, pageID, id uuid.UUID) (*page.Service, error)
	ListServices(ctx context.Context, pageID uuid.UUID) ([]*page.Service, error)
}

type AvailabilitySettings struct {
	Granularity  time.Duration
	MaxHorizon   time.Duration
	DefaultHours availability.WorkingHours
}

type PageAvailabilityInput struct {
	ServiceID  uuid.UUID
	From       *time.Time
	To         *time.Time
	Day        *string
	ResourceID *uuid.UUID
	StaffID    *uuid.UUID
}

type ResourceAvailabilityInput struct {
	ResourceIDs []uuid.UUID
	// RequireAll asks for slots where every resource is free at once; otherwise each
	// resource is a candidate of its own.
	RequireAll  bool
	Duration    time.Duration
	From        time.Time
	To          time.Time
	Granularity time.Duration
	Timezone    string
}

//go:generate mockgen -source=availability.go -destination=../../testutil/mock/queries/availability.go -package=queriesmock -exclude_interfaces=OccupancyReadStore,PageReadStore
type AvailabilityQueries interface {
	PageAvailability(ctx context.Context, slug string, in PageAvailabilityInput) (*AvailabilityView, error)
	ResourceAvailability(ctx context.Context, tenantID uuid.UUID, in ResourceAvailabilityInput) (*AvailabilityView, error)
	// Occupied lists the intervals that currently block the resources, expired holds excluded.
	Occupied(ctx context.Context, tenantID uuid.UUID, resourceIDs []uuid.UUID, from, to time.Time) ([]booking.Allocation, error)
}

type availabilityQueriesImpl struct {
	occupancy OccupancyReadStore
	pages     PageReadStore
	settings  AvailabilitySettings
	clock     clock.Clock
}

func NewAvailabilityQueries(occupancy OccupancyReadStore, pages PageReadStore, settings AvailabilitySettings, clk clock.Clock) AvailabilityQueries {
	return &availabilityQueriesImpl{
		occupancy: occupancy,
		pages:     pages,
		settings:  settings,
		clock:     clk,
	}
}

func (q *availabilityQueriesImpl) PageAvailability(ctx context.Context, slug string, in PageAvailabilityInput) (*AvailabilityView, error) {
	p, svc, err := LoadPublishedService(ctx, q.pages, slug, in.ServiceID)
	if err != nil {
		return nil, err
	}

	now := q.clock.Now()
	from, to, err := resolveRange(p.Location(), now, in.From, in.To, in.Day, q.settings.MaxHorizon)
	if err != nil {
		return nil, err
	}

	candidates := svc.Candidates(in.ResourceID, in.StaffID)
	if len(candidates) == 0 {
		return nil, errs.Wrap(ErrInvalidQuery, "resource or staff is not offered by the service")
	}

	req := availability.Request{
		Candidates:  candidates,
		Duration:    svc.Duration(),
		From:        from,
		To:          to,
		Granularity: q.settings.Granularity,
		Location:    p.Location(),
		Hours:       p.WorkingHours(),
		NotBefore:   now,
	}
	return q.compute(ctx, p.TenantID(), svc.MemberIDs(), req)
}

func (q *availabilityQueriesImpl) ResourceAvailability(ctx context.Context, tenantID uuid.UUID, in ResourceAvailabilityInput) (*AvailabilityView, error) {
	if len(in.ResourceIDs) == 0 {
		return nil, errs.Wrap(ErrInvalidQuery, "resourceIds required")
	}
	loc := time.UTC
	if in.Timezone != "" {
		l, err := time.LoadLocation(in.Timezone)
		if err != nil {
			return nil, errs.Mark(err, ErrInvalidQuery)
		}
		loc = l
	}
	from, to := in.From, in.To
	from, to, err := resolveRange(loc, q.clock.Now(), &from, &to, nil, q.settings.MaxHorizon)
	if err != nil {
		return nil, err
	}

	var candidates []availability.Candidate
	if in.RequireAll {
		candidates = []availability.Candidate{{Members: in.ResourceIDs}}
	} else {
		for _, id := range in.ResourceIDs {
			candidates = append(candidates, availability.Candidate{Members: []uuid.UUID{id}, ResourceID: id})
		}
	}
	granularity := in.Granularity
	if granularity <= 0 {
		granularity = q.settings.Granularity
	}

	req := availability.Request{
		Candidates:  candidates,
		Duration:    in.Duration,
		From:        from,
		To:          to,
		Granularity: granularity,
		Location:    loc,
		Hours:       q.settings.DefaultHours,
		NotBefore:   q.clock.Now(),
	}
	return q.compute(ctx, tenantID, in.ResourceIDs, req)
}

func (q *availabilityQueriesImpl) Occupied(ctx context.Context, tenantID uuid.UUID, resourceIDs []uuid.UUID, from, to time.Time) ([]booking.Allocation, error) {
	if !from.Before(to) {
		return nil, ErrInvalidQuery
	}
	allocs, err := q.occupancy.ListOccupied(ctx, tenantID, resourceIDs, from, to)
	if err != nil {
		return nil, err
	}
	now := q.clock.Now()
	live := allocs[:0]
	for _, a := range allocs {
		if a.IsLiveAt(now) {
			live = append(live, a)
		}
	}
	return live, nil
}

func (q *availabilityQueriesImpl) compute(ctx context.Context, tenantID uuid.UUID, members []uuid.UUID, req availability.Request) (*AvailabilityView, error) {
	if err := req.Validate(); err != nil {
		return nil, errs.Mark(err, ErrInvalidQuery)
	}

	allocs, err := q.Occupied(ctx, tenantID, members, req.From, req.To)
	if err != nil {
		return nil, err
	}
	occ := make(availability.Occupancy, len(members))
	for _, a := range allocs {
		occ[a.ResourceID] = append(occ[a.ResourceID], a.Slot)
	}

	slots, err := availability.Compute(req, occ)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidQuery)
	}
	view := &AvailabilityView{
		Timezone:      req.Location.String(),
		AvailableDays: availability.AvailableDays(slots, req.Location),
		TimeSlots:     make([]SlotView, 0, len(slots)),
	}
	if view.AvailableDays == nil {
		view.AvailableDays = []string{}
	}
	for _, s := range slots {
		sv := SlotView{Start: s.Start, End: s.End, ResourceIDs: s.Candidate.Members, StaffID: s.Candidate.StaffID}
		if s.Candidate.ResourceID != uuid.Nil {
			id := s.Candidate.ResourceID
			sv.ResourceID = &id
		}
		view.TimeSlots = append(view.TimeSlots, sv)
	}
	return view, nil
}

// LoadPublishedService resolves a public page and one of its services. Unknown and
// unpublished pages are reported alike.
func LoadPublishedService(ctx context.Context, pages PageReadStore, slug string, serviceID uuid.UUID) (*page.BookingPage, *page.Service, error) {
	p, err := pages.FindPageBySlug(ctx, slug)
	if err != nil {
		if errs.Is(err, shared.ErrRecordNotFound) {
			return nil, nil, errs.Mark(err, ErrNotFound)
		}
		return nil, nil, err
	}
	if !p.IsPublished() {
		return nil, nil, ErrNotFound
	}
	svc, err := pages.FindService(ctx, p.ID(), serviceID)
	if err != nil {
		if errs.Is(err, shared.ErrRecordNotFound) {
			return nil, nil, errs.Mark(err, ErrNotFound)
		}
		return nil, nil, err
	}
	return p, svc, nil
}

func resolveRange(loc *time.Location, now time.Time, from, to *time.Time, day *string, horizon time.Duration) (time.Time, time.Time, error) {
	var start, end time.Time
	switch {
	case day != nil && *day != "":
		d, err := time.ParseInLocation(time.DateOnly, *day, loc)
		if err != nil {
			return time.Time{}, time.Time{}, errs.Mark(err, ErrInvalidQuery)
		}
		start = d
		end = time.Date(d.Year(), d.Month(), d.Day()+1, 0, 0, 0, 0, loc)
	default:
		start = now
		if from != nil && !from.IsZero() {
			start = *from
		}
		end = start.Add(defaultWindow)
		if to != nil && !to.IsZero() {
			end = *to
		}
	}
	if !start.Before(end) {
		return time.Time{}, time.Time{}, errs.Wrap(ErrInvalidQuery, "from must be before to")
	}
	if horizon > 0 && end.Sub(start) > horizon {
		end = start.Add(horizon)
	}
	return start, end, nil
}
