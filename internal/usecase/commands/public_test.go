//go:build unit

package commands_test

import (
	"time"

	"booking-core/internal/pkg/errs"
	"booking-core/internal/usecase/commands"

	"github.com/google/uuid"
)

func (s *commandsTestSuite) setupPage() uuid.UUID {
	p, err := s.pages.CreatePage(s.ctx, commands.CreatePageInput{
		TenantID:  s.tenantID,
		Slug:      "acme-clinic",
		Title:     "Acme Clinic",
		Timezone:  "UTC",
		Published: true,
	})
	s.Require().NoError(err)

	svc, err := s.pages.AddService(s.ctx, commands.AddServiceInput{
		TenantID:        s.tenantID,
		PageID:          p.ID,
		Name:            "Consultation",
		DurationMinutes: 60,
		ResourceIDs:     []uuid.UUID{s.room1, s.room2},
	})
	s.Require().NoError(err)
	return svc.ID
}

func (s *commandsTestSuite) TestPublicHoldSlot() {
	serviceID := s.setupPage()
	hold := func(start time.Time) commands.PublicHoldInput {
		return commands.PublicHoldInput{Slug: "acme-clinic", ServiceID: serviceID, StartAt: start}
	}

	_, err := s.bookings.CreateDirect(s.ctx, s.directInput(at(10, 0), at(11, 0)))
	s.Require().NoError(err)

	h, err := s.public.HoldSlot(s.ctx, hold(at(10, 0)))
	s.Require().NoError(err)
	s.Equal([]uuid.UUID{s.room2}, h.ResourceIDs)
	s.Equal(at(11, 0), h.EndAt)

	_, err = s.public.HoldSlot(s.ctx, hold(at(10, 0)))
	s.True(errs.Is(err, commands.ErrResourceUnavailable))

	s.Run("pinned resource", func() {
		in := hold(at(12, 0))
		in.ResourceID = &s.room2
		h, err := s.public.HoldSlot(s.ctx, in)
		s.Require().NoError(err)
		s.Equal([]uuid.UUID{s.room2}, h.ResourceIDs)
	})

	s.Run("outside working hours", func() {
		_, err := s.public.HoldSlot(s.ctx, hold(at(16, 30)))
		s.True(errs.Is(err, commands.ErrValidation))
	})

	s.Run("closed day", func() {
		_, err := s.public.HoldSlot(s.ctx, hold(at(10, 0).AddDate(0, 0, 1)))
		s.True(errs.Is(err, commands.ErrValidation))
	})

	s.Run("in the past", func() {
		_, err := s.public.HoldSlot(s.ctx, hold(now.Add(-7*24*time.Hour)))
		s.True(errs.Is(err, commands.ErrValidation))
	})

	s.Run("unknown slug", func() {
		in := hold(at(13, 0))
		in.Slug = "nobody-here"
		_, err := s.public.HoldSlot(s.ctx, in)
		s.True(errs.Is(err, commands.ErrNotFound))
	})

	s.Run("confirm through the page", func() {
		b, err := s.public.Confirm(s.ctx, commands.PublicConfirmInput{
			Slug: "acme-clinic", HoldID: h.ID, Name: "Jane Doe", Email: "jane@example.com",
		})
		s.Require().NoError(err)
		s.Equal(h.ID, *b.HoldID)
		s.Equal(s.tenantID, b.TenantID)
	})
}

func (s *commandsTestSuite) TestPageCommands() {
	s.Run("duplicate slug", func() {
		s.setupPage()
		_, err := s.pages.CreatePage(s.ctx, commands.CreatePageInput{
			TenantID: uuid.New(), Slug: "acme-clinic", Title: "Other", Timezone: "UTC",
		})
		s.True(errs.Is(err, commands.ErrAlreadyExists))
	})

	s.Run("explicit working hours", func() {
		p, err := s.pages.CreatePage(s.ctx, commands.CreatePageInput{
			TenantID: s.tenantID, Slug: "night-shift", Title: "Night", Timezone: "Europe/Berlin",
			WorkingHours: map[string][]commands.WindowInput{"sat": {{Start: "20:00", End: "24:00"}}},
		})
		s.Require().NoError(err)
		s.Require().Contains(p.WorkingHours, "sat")
		s.Equal("20:00", p.WorkingHours["sat"][0].Start)
	})

	s.Run("bad working hours", func() {
		_, err := s.pages.CreatePage(s.ctx, commands.CreatePageInput{
			TenantID: s.tenantID, Slug: "broken", Title: "Broken", Timezone: "UTC",
			WorkingHours: map[string][]commands.WindowInput{"someday": {{Start: "09:00", End: "10:00"}}},
		})
		s.True(errs.Is(err, commands.ErrValidation))
	})

	s.Run("service staff must be staff", func() {
		p, err := s.pages.CreatePage(s.ctx, commands.CreatePageInput{
			TenantID: s.tenantID, Slug: "staffed", Title: "Staffed", Timezone: "UTC",
		})
		s.Require().NoError(err)
		_, err = s.pages.AddService(s.ctx, commands.AddServiceInput{
			TenantID: s.tenantID, PageID: p.ID, Name: "Consult", DurationMinutes: 30,
			ResourceIDs: []uuid.UUID{s.room1}, StaffIDs: []uuid.UUID{s.room2},
		})
		s.True(errs.Is(err, commands.ErrValidation))
	})

	s.Run("service on unknown page", func() {
		_, err := s.pages.AddService(s.ctx, commands.AddServiceInput{
			TenantID: s.tenantID, PageID: uuid.New(), Name: "Consult", DurationMinutes: 30,
			ResourceIDs: []uuid.UUID{s.room1},
		})
		s.True(errs.Is(err, commands.ErrNotFound))
	})
}
