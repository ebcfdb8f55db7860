package commands

import (
	"context"

	"booking-core/internal/domain/availability"
	"booking-core/internal/domain/page"
	"booking-core/internal/domain/resource"
	"booking-core/internal/pkg/clock"
	"booking-core/internal/pkg/errs"
	"booking-core/internal/usecase/queries"
	"booking-core/internal/usecase/shared"

	"github.com/google/uuid"
)

type WindowInput struct {
	Start string
	End   string
}

type CreatePageInput struct {
	TenantID uuid.UUID
	Slug     string
	Title    string
	Timezone string
	// WorkingHours is keyed by weekday ("mon", "tuesday", ...). Nil selects the configured default.
	WorkingHours map[string][]WindowInput
	Published    bool
}

type AddServiceInput struct {
	TenantID        uuid.UUID
	PageID          uuid.UUID
	Name            string
	DurationMinutes int
	ResourceIDs     []uuid.UUID
	StaffIDs        []uuid.UUID
}

//go:generate mockgen -source=page.go -destination=../../testutil/mock/commands/page.go -package=commandsmock
type PageCommands interface {
	CreatePage(ctx context.Context, in CreatePageInput) (*queries.PageView, error)
	AddService(ctx context.Context, in AddServiceInput) (*queries.ServiceView, error)
}

type pageCommandsImpl struct {
	pages        shared.PageRegistry
	resources    shared.ResourceRegistry
	defaultHours availability.WorkingHours
	clock        clock.Clock
}

func NewPageCommands(pages shared.PageRegistry, resources shared.ResourceRegistry, defaultHours availability.WorkingHours, clk clock.Clock) PageCommands {
	return &pageCommandsImpl{
		pages:        pages,
		resources:    resources,
		defaultHours: defaultHours,
		clock:        clk,
	}
}

func (uc *pageCommandsImpl) CreatePage(ctx context.Context, in CreatePageInput) (*queries.PageView, error) {
	hours := uc.defaultHours
	if in.WorkingHours != nil {
		parsed, err := parseWorkingHours(in.WorkingHours)
		if err != nil {
			return nil, validation(err)
		}
		hours = parsed
	}

	p, err := page.NewBookingPage(in.TenantID, in.Slug, in.Title, in.Timezone, hours, in.Published, uc.clock.Now())
	if err != nil {
		return nil, validation(err)
	}
	if err := uc.pages.CreatePage(ctx, p); err != nil {
		return nil, classify(err, ErrNotFound)
	}
	return queries.NewPageView(p, nil), nil
}

func (uc *pageCommandsImpl) AddService(ctx context.Context, in AddServiceInput) (*queries.ServiceView, error) {
	p, err := uc.pages.FindPage(ctx, in.TenantID, in.PageID)
	if err != nil {
		return nil, classify(err, ErrNotFound)
	}

	svc, err := page.NewService(p, in.Name, in.DurationMinutes, in.ResourceIDs, in.StaffIDs, uc.clock.Now())
	if err != nil {
		return nil, validation(err)
	}
	if err := ensureBookable(ctx, uc.resources, in.TenantID, svc.MemberIDs()); err != nil {
		return nil, err
	}
	if len(svc.StaffIDs()) > 0 {
		staff, err := uc.resources.FindResources(ctx, in.TenantID, svc.StaffIDs())
		if err != nil {
			return nil, classify(err, ErrNotFound)
		}
		for _, r := range staff {
			if r.Type() != resource.TypeStaff {
				return nil, errs.Wrapf(ErrValidation, "resource %s is not staff", r.ID())
			}
		}
	}

	if err := uc.pages.CreateService(ctx, svc); err != nil {
		return nil, classify(err, ErrNotFound)
	}
	return queries.NewServiceView(svc), nil
}

func parseWorkingHours(in map[string][]WindowInput) (availability.WorkingHours, error) {
	wh := make(availability.WorkingHours, len(in))
	for key, windows := range in {
		day, err := availability.ParseWeekday(key)
		if err != nil {
			return nil, err
		}
		for _, w := range windows {
			win, err := availability.NewWindow(w.Start, w.End)
			if err != nil {
				return nil, err
			}
			wh[day] = append(wh[day], win)
		}
	}
	return wh, nil
}
