package commands

import (
	"context"
	"time"

	"booking-core/internal/pkg/clock"
	"booking-core/internal/pkg/errs"
	"booking-core/internal/usecase/queries"
	"booking-core/internal/usecase/shared"

	"github.com/google/uuid"
)

type PublicHoldInput struct {
	Slug      string
	ServiceID uuid.UUID
	StartAt   time.Time
	// ResourceID and StaffID pin the choice; otherwise the first available candidate wins.
	ResourceID *uuid.UUID
	StaffID    *uuid.UUID
	Notes      *string
}

type PublicConfirmInput struct {
	Slug   string
	HoldID uuid.UUID
	Name   string
	Email  string
	Notes  *string
}

//go:generate mockgen -source=public.go -destination=../../testutil/mock/commands/public.go -package=commandsmock
// PublicCommands serve the self-service booking page; the tenant comes from the page slug.
type PublicCommands interface {
	HoldSlot(ctx context.Context, in PublicHoldInput) (*queries.HoldView, error)
	Confirm(ctx context.Context, in PublicConfirmInput) (*queries.BookingView, error)
}

type publicCommandsImpl struct {
	pages    shared.PageRegistry
	holds    HoldCommands
	bookings BookingCommands
	clock    clock.Clock
}

func NewPublicCommands(pages shared.PageRegistry, holds HoldCommands, bookings BookingCommands, clk clock.Clock) PublicCommands {
	return &publicCommandsImpl{
		pages:    pages,
		holds:    holds,
		bookings: bookings,
		clock:    clk,
	}
}

func (uc *publicCommandsImpl) HoldSlot(ctx context.Context, in PublicHoldInput) (_ *queries.HoldView, err error) {
	ctx, span := startSpan(ctx, "PublicCommands.HoldSlot")
	defer func() { endSpan(span, err) }()

	p, svc, err := queries.LoadPublishedService(ctx, uc.pages, in.Slug, in.ServiceID)
	if err != nil {
		return nil, classify(err, ErrNotFound)
	}

	start := in.StartAt.UTC()
	end := start.Add(svc.Duration())
	if start.Before(uc.clock.Now()) {
		return nil, errs.Wrap(ErrValidation, "startAt is in the past")
	}
	if !p.WorkingHours().Contains(p.Location(), start, end) {
		return nil, errs.Wrap(ErrValidation, "slot is outside working hours")
	}

	candidates := svc.Candidates(in.ResourceID, in.StaffID)
	if len(candidates) == 0 {
		return nil, errs.Wrap(ErrValidation, "resource or staff is not offered by the service")
	}

	for _, c := range candidates {
		h, err := uc.holds.CreateHold(ctx, CreateHoldInput{
			TenantID:    p.TenantID(),
			ResourceIDs: c.Members,
			StartAt:     start,
			EndAt:       end,
			Notes:       in.Notes,
		})
		if errs.Is(err, ErrResourceUnavailable) {
			continue
		}
		return h, err
	}
	return nil, errs.Wrap(ErrResourceUnavailable, "no candidate is free for the requested slot")
}

func (uc *publicCommandsImpl) Confirm(ctx context.Context, in PublicConfirmInput) (_ *queries.BookingView, err error) {
	ctx, span := startSpan(ctx, "PublicCommands.Confirm")
	defer func() { endSpan(span, err) }()

	p, err := uc.pages.FindPageBySlug(ctx, in.Slug)
	if err != nil {
		return nil, classify(err, ErrNotFound)
	}
	if !p.IsPublished() {
		return nil, ErrNotFound
	}
	return uc.bookings.ConfirmFromHold(ctx, ConfirmFromHoldInput{
		TenantID:      p.TenantID(),
		HoldID:        in.HoldID,
		BookedByName:  in.Name,
		BookedByEmail: in.Email,
		Notes:         in.Notes,
	})
}
