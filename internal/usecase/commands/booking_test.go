//go:build unit

package commands_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"
	"time"

	"booking-core/internal/domain/availability"
	"booking-core/internal/domain/booking"
	"booking-core/internal/infra/memory"
	"booking-core/internal/pkg/clock"
	"booking-core/internal/pkg/errs"
	"booking-core/internal/pkg/ptr"
	"booking-core/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

var now = time.Date(2028, 6, 1, 9, 0, 0, 0, time.UTC)

// at is a time on Friday 2028-06-16.
func at(hour, minute int) time.Time {
	return time.Date(2028, 6, 16, hour, minute, 0, 0, time.UTC)
}

type commandsTestSuite struct {
	suite.Suite
	ctx       context.Context
	clock     *clock.MockClock
	store     *memory.Store
	resources commands.ResourceCommands
	holds     commands.HoldCommands
	bookings  commands.BookingCommands
	pages     commands.PageCommands
	public    commands.PublicCommands
	tenantID  uuid.UUID
	room1     uuid.UUID
	room2     uuid.UUID
}

func TestCommandsSuite(t *testing.T) {
	suite.Run(t, new(commandsTestSuite))
}

func (s *commandsTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.clock = clock.NewMockClock(now)
	s.store = memory.NewStore(s.clock)
	s.resources = commands.NewResourceCommands(s.store, s.clock)
	s.holds = commands.NewHoldCommands(s.store, s.store, booking.DefaultHoldPolicy(), s.clock)
	s.bookings = commands.NewBookingCommands(s.store, s.store, s.clock)
	s.pages = commands.NewPageCommands(s.store, s.store, availability.WorkingHours{
		time.Friday: {{Start: 9 * 60, End: 17 * 60}},
	}, s.clock)
	s.public = commands.NewPublicCommands(s.store, s.holds, s.bookings, s.clock)

	s.tenantID = uuid.New()
	s.room1 = s.register("Room 1")
	s.room2 = s.register("Room 2")
}

func (s *commandsTestSuite) register(name string) uuid.UUID {
	r, err := s.resources.Register(s.ctx, commands.RegisterResourceInput{
		TenantID: s.tenantID, Type: "room", Name: name, Capacity: 2,
	})
	s.Require().NoError(err)
	return r.ID
}

func (s *commandsTestSuite) holdInput(start, end time.Time, ttlSeconds int) commands.CreateHoldInput {
	return commands.CreateHoldInput{
		TenantID:    s.tenantID,
		ResourceIDs: []uuid.UUID{s.room1},
		StartAt:     start,
		EndAt:       end,
		TTLSeconds:  ttlSeconds,
	}
}

func (s *commandsTestSuite) directInput(start, end time.Time) commands.CreateDirectInput {
	return commands.CreateDirectInput{
		TenantID:      s.tenantID,
		ResourceIDs:   []uuid.UUID{s.room1},
		StartAt:       start,
		EndAt:         end,
		BookedByName:  "Jane Doe",
		BookedByEmail: "jane@example.com",
	}
}

func (s *commandsTestSuite) confirmInput(holdID uuid.UUID) commands.ConfirmFromHoldInput {
	return commands.ConfirmFromHoldInput{
		TenantID:      s.tenantID,
		HoldID:        holdID,
		BookedByName:  "Jane Doe",
		BookedByEmail: "jane@example.com",
	}
}

func (s *commandsTestSuite) TestHoldThenConfirm() {
	h, err := s.holds.CreateHold(s.ctx, commands.CreateHoldInput{
		TenantID:    s.tenantID,
		ResourceIDs: []uuid.UUID{s.room1},
		StartAt:     at(10, 0),
		EndAt:       at(11, 0),
		Notes:       ptr.To("window seat"),
	})
	s.Require().NoError(err)
	s.Equal("ACTIVE", h.Status)
	s.Equal(now.Add(10*time.Minute), h.ExpiresAt)

	b, err := s.bookings.Create(s.ctx, s.confirmInput(h.ID))
	s.Require().NoError(err)
	s.Equal("CONFIRMED", b.Status)
	s.Equal(h.ID, *b.HoldID)
	s.Equal("window seat", *b.Notes)
	s.Equal(1, b.Version)

	stored, err := s.store.FindHold(s.ctx, s.tenantID, h.ID)
	s.Require().NoError(err)
	s.Equal("CONSUMED", stored.Status)

	_, err = s.bookings.ConfirmFromHold(s.ctx, s.confirmInput(h.ID))
	s.True(errs.Is(err, commands.ErrHoldAlreadyConsumed))
}

func (s *commandsTestSuite) TestHoldExpiry() {
	h, err := s.holds.CreateHold(s.ctx, s.holdInput(at(10, 0), at(11, 0), 1))
	s.Require().NoError(err)

	_, err = s.holds.CreateHold(s.ctx, s.holdInput(at(10, 0), at(11, 0), 1))
	s.True(errs.Is(err, commands.ErrResourceUnavailable))

	s.clock.Add(2 * time.Second)

	_, err = s.bookings.ConfirmFromHold(s.ctx, s.confirmInput(h.ID))
	s.True(errs.Is(err, commands.ErrHoldExpired))

	// the lapsed hold no longer blocks, swept or not
	b, err := s.bookings.CreateDirect(s.ctx, s.directInput(at(10, 0), at(11, 0)))
	s.Require().NoError(err)
	s.Equal("CONFIRMED", b.Status)

	released, err := s.holds.ReleaseHold(s.ctx, s.tenantID, h.ID)
	s.Require().NoError(err)
	s.Equal("EXPIRED", released.Status)
}

func (s *commandsTestSuite) TestCreateValidation() {
	testCases := []struct {
		name  string
		input commands.CreateHoldInput
		errIs error
	}{
		{name: "end before start", input: s.holdInput(at(11, 0), at(10, 0), 0), errIs: commands.ErrValidation},
		{name: "ttl above maximum", input: s.holdInput(at(10, 0), at(11, 0), 3601), errIs: commands.ErrValidation},
		{name: "negative ttl", input: s.holdInput(at(10, 0), at(11, 0), -1), errIs: commands.ErrValidation},
		{
			name: "unknown resource",
			input: func() commands.CreateHoldInput {
				in := s.holdInput(at(10, 0), at(11, 0), 0)
				in.ResourceIDs = []uuid.UUID{uuid.New()}
				return in
			}(),
			errIs: commands.ErrValidation,
		},
		{
			name: "duplicate resource",
			input: func() commands.CreateHoldInput {
				in := s.holdInput(at(10, 0), at(11, 0), 0)
				in.ResourceIDs = []uuid.UUID{s.room1, s.room1}
				return in
			}(),
			errIs: commands.ErrValidation,
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			_, err := s.holds.CreateHold(s.ctx, tc.input)
			s.True(errs.Is(err, tc.errIs), "got %v", err)
		})
	}

	s.Run("inactive resource", func() {
		_, err := s.resources.Update(s.ctx, commands.UpdateResourceInput{
			TenantID: s.tenantID, ID: s.room2, IsActive: ptr.To(false),
		})
		s.Require().NoError(err)

		in := s.directInput(at(10, 0), at(11, 0))
		in.ResourceIDs = []uuid.UUID{s.room2}
		_, err = s.bookings.CreateDirect(s.ctx, in)
		s.True(errs.Is(err, commands.ErrValidation))
	})

	s.Run("invalid contact", func() {
		in := s.directInput(at(10, 0), at(11, 0))
		in.BookedByEmail = "not-an-email"
		_, err := s.bookings.CreateDirect(s.ctx, in)
		s.True(errs.Is(err, commands.ErrValidation))
	})
}

func (s *commandsTestSuite) TestRescheduleAndCancel() {
	a, err := s.bookings.CreateDirect(s.ctx, s.directInput(at(10, 0), at(11, 0)))
	s.Require().NoError(err)
	_, err = s.bookings.CreateDirect(s.ctx, s.directInput(at(12, 0), at(13, 0)))
	s.Require().NoError(err)

	_, err = s.bookings.Reschedule(s.ctx, commands.RescheduleInput{
		TenantID: s.tenantID, BookingID: a.ID, StartAt: at(11, 30), EndAt: at(12, 30),
	})
	s.True(errs.Is(err, commands.ErrResourceUnavailable))

	moved, err := s.bookings.Reschedule(s.ctx, commands.RescheduleInput{
		TenantID: s.tenantID, BookingID: a.ID, StartAt: at(14, 0), EndAt: at(15, 0), Notes: ptr.To("moved"),
	})
	s.Require().NoError(err)
	s.Equal(at(14, 0), moved.StartAt)
	s.Equal(2, moved.Version)
	s.Equal("moved", *moved.Notes)

	noted, err := s.bookings.UpdateNotes(s.ctx, s.tenantID, a.ID, "ground floor")
	s.Require().NoError(err)
	s.Equal(3, noted.Version)

	cancelled, err := s.bookings.Cancel(s.ctx, s.tenantID, a.ID, ptr.To("customer request"))
	s.Require().NoError(err)
	s.Equal("CANCELLED", cancelled.Status)
	s.Equal("customer request", *cancelled.CancelledReason)

	_, err = s.bookings.Cancel(s.ctx, s.tenantID, a.ID, nil)
	s.True(errs.Is(err, commands.ErrAlreadyCancelled))

	_, err = s.bookings.Reschedule(s.ctx, commands.RescheduleInput{
		TenantID: s.tenantID, BookingID: a.ID, StartAt: at(16, 0), EndAt: at(17, 0),
	})
	s.True(errs.Is(err, commands.ErrBookingNotReschedulable))

	// the cancelled interval is free again
	_, err = s.holds.CreateHold(s.ctx, s.holdInput(at(14, 0), at(15, 0), 0))
	s.NoError(err)
}

func (s *commandsTestSuite) TestNotFound() {
	_, err := s.bookings.Cancel(s.ctx, s.tenantID, uuid.New(), nil)
	s.True(errs.Is(err, commands.ErrBookingNotFound))

	_, err = s.bookings.ConfirmFromHold(s.ctx, s.confirmInput(uuid.New()))
	s.True(errs.Is(err, commands.ErrHoldNotFound))

	_, err = s.holds.ReleaseHold(s.ctx, s.tenantID, uuid.New())
	s.True(errs.Is(err, commands.ErrHoldNotFound))

	// another tenant's booking is invisible
	b, err := s.bookings.CreateDirect(s.ctx, s.directInput(at(10, 0), at(11, 0)))
	s.Require().NoError(err)
	_, err = s.bookings.Cancel(s.ctx, uuid.New(), b.ID, nil)
	s.True(errs.Is(err, commands.ErrBookingNotFound))
}

func (s *commandsTestSuite) TestReleaseHold() {
	h, err := s.holds.CreateHold(s.ctx, s.holdInput(at(10, 0), at(11, 0), 0))
	s.Require().NoError(err)

	released, err := s.holds.ReleaseHold(s.ctx, s.tenantID, h.ID)
	s.Require().NoError(err)
	s.Equal("RELEASED", released.Status)

	again, err := s.holds.ReleaseHold(s.ctx, s.tenantID, h.ID)
	s.Require().NoError(err)
	s.Equal("RELEASED", again.Status)

	_, err = s.holds.CreateHold(s.ctx, s.holdInput(at(10, 0), at(11, 0), 0))
	s.NoError(err)
}

func (s *commandsTestSuite) TestSweepExpiredHolds() {
	for i := range 5 {
		_, err := s.holds.CreateHold(s.ctx, s.holdInput(at(9+i, 0), at(10+i, 0), 1))
		s.Require().NoError(err)
	}
	s.clock.Add(time.Minute)

	// reporting is left to the sweeper worker
	var logs bytes.Buffer
	prev := slog.Default()
	slog.SetDefault(slog.New(slog.NewTextHandler(&logs, nil)))
	defer slog.SetDefault(prev)

	n, err := s.holds.SweepExpiredHolds(s.ctx, 2)
	s.Require().NoError(err)
	s.Equal(5, n)
	s.NotContains(logs.String(), "expired holds swept")

	_, err = s.holds.SweepExpiredHolds(s.ctx, 0)
	s.True(errs.Is(err, commands.ErrValidation))
}

func (s *commandsTestSuite) TestCreate_UnknownRequest() {
	_, err := s.bookings.Create(s.ctx, nil)
	s.True(errs.Is(err, commands.ErrValidation))
}
