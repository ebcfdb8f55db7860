//go:build unit

package booking_test

import (
	"strings"
	"testing"
	"time"

	"booking-core/internal/domain/booking"
	"booking-core/internal/pkg/ptr"
	"booking-core/internal/testutil/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func at(hour, minute int) time.Time {
	return time.Date(2028, 6, 16, hour, minute, 0, 0, time.UTC)
}

func slot(t *testing.T, start, end time.Time) booking.TimeSlot {
	t.Helper()
	s, err := booking.NewTimeSlot(start, end)
	require.NoError(t, err)
	return s
}

func TestTimeSlot_Overlaps(t *testing.T) {
	base := slot(t, at(10, 0), at(11, 0))

	testCases := []struct {
		name  string
		other booking.TimeSlot
		want  bool
	}{
		{name: "identical", other: slot(t, at(10, 0), at(11, 0)), want: true},
		{name: "partial overlap at the end", other: slot(t, at(10, 30), at(11, 30)), want: true},
		{name: "contained", other: slot(t, at(10, 15), at(10, 45)), want: true},
		{name: "containing", other: slot(t, at(9, 0), at(12, 0)), want: true},
		{name: "back to back after", other: slot(t, at(11, 0), at(12, 0)), want: false},
		{name: "back to back before", other: slot(t, at(9, 0), at(10, 0)), want: false},
		{name: "disjoint", other: slot(t, at(13, 0), at(14, 0)), want: false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, base.Overlaps(tc.other))
			assert.Equal(t, tc.want, tc.other.Overlaps(base), "overlap must be symmetric")
		})
	}
}

func TestTimeSlot_NormalizesToUTC(t *testing.T) {
	tokyo := time.FixedZone("JST", 9*60*60)
	s := slot(t, time.Date(2028, 6, 16, 19, 0, 0, 0, tokyo), time.Date(2028, 6, 16, 20, 0, 0, 0, tokyo))

	assert.Equal(t, at(10, 0), s.Start())
	assert.Equal(t, time.UTC, s.Start().Location())
	assert.Equal(t, "[2028-06-16T10:00:00Z,2028-06-16T11:00:00Z)", s.String())
}

func TestContactAndNote(t *testing.T) {
	t.Run("contact", func(t *testing.T) {
		c, err := booking.NewContact("  E2E Customer ", "customer@example.com")
		require.NoError(t, err)
		assert.Equal(t, "E2E Customer", c.Name())

		_, err = booking.NewContact(" ", "customer@example.com")
		assert.ErrorIs(t, err, booking.ErrInvalidName)
		_, err = booking.NewContact("E2E Customer", "not-an-email")
		assert.ErrorIs(t, err, booking.ErrInvalidEmail)
	})

	t.Run("note length", func(t *testing.T) {
		_, err := booking.NewNote(strings.Repeat("a", 2000))
		assert.NoError(t, err)
		_, err = booking.NewNote(strings.Repeat("a", 2001))
		assert.ErrorIs(t, err, booking.ErrNoteTooLong)
	})

	t.Run("empty note has no pointer", func(t *testing.T) {
		n, err := booking.NoteFromPtr(ptr.To("   "))
		require.NoError(t, err)
		assert.True(t, n.IsEmpty())
		assert.Nil(t, n.Ptr())
	})
}

func TestBookingFromHold(t *testing.T) {
	b := builder.NewBookingBuilder()
	h, err := b.BuildHold()
	require.NoError(t, err)
	contact, err := booking.NewContact(b.BookedByName, b.BookedByEmail)
	require.NoError(t, err)
	now := b.Now.Add(time.Minute)

	t.Run("carries the hold over", func(t *testing.T) {
		hold := h.Clone()
		actual, err := booking.NewBookingFromHold(hold, contact, nil, now)
		require.NoError(t, err)

		require.NotNil(t, actual.HoldID())
		assert.Equal(t, h.ID(), *actual.HoldID())
		assert.Equal(t, booking.StatusConfirmed, actual.Status())
		assert.True(t, h.TimeSlot().Equal(actual.TimeSlot()))
		assert.Equal(t, h.ResourceIDs(), actual.ResourceIDs())
		assert.Equal(t, "window seat", actual.Notes().String())
		assert.Equal(t, 1, actual.Version())
		assert.Equal(t, booking.HoldStatusConsumed, hold.Status())
	})

	t.Run("explicit notes win", func(t *testing.T) {
		n, err := booking.NewNote("aisle")
		require.NoError(t, err)
		actual, err := booking.NewBookingFromHold(h.Clone(), contact, &n, now)
		require.NoError(t, err)
		assert.Equal(t, "aisle", actual.Notes().String())
	})

	t.Run("expired hold", func(t *testing.T) {
		_, err := booking.NewBookingFromHold(h.Clone(), contact, nil, h.ExpiresAt())
		assert.ErrorIs(t, err, booking.ErrHoldExpired)
	})
}

func TestBookingLifecycle(t *testing.T) {
	newBooking := func(t *testing.T) *booking.Booking {
		t.Helper()
		b, err := builder.NewBookingBuilder().BuildDirect()
		require.NoError(t, err)
		return b
	}
	now := time.Date(2028, 6, 2, 9, 0, 0, 0, time.UTC)

	t.Run("reschedule keeps notes unless given", func(t *testing.T) {
		b := newBooking(t)
		target := slot(t, time.Date(2028, 7, 1, 10, 0, 0, 0, time.UTC), time.Date(2028, 7, 1, 11, 0, 0, 0, time.UTC))

		require.NoError(t, b.Reschedule(target, nil, now))
		assert.True(t, target.Equal(b.TimeSlot()))
		assert.Equal(t, "window seat", b.Notes().String())
		assert.Equal(t, 2, b.Version())
		assert.Equal(t, now, b.UpdatedAt())
	})

	t.Run("cancel", func(t *testing.T) {
		b := newBooking(t)

		require.NoError(t, b.Cancel(ptr.To("Changed plans"), now))
		assert.Equal(t, booking.StatusCancelled, b.Status())
		require.NotNil(t, b.CancelledReason())
		assert.Equal(t, "Changed plans", *b.CancelledReason())
		assert.Empty(t, b.Allocations())

		version := b.Version()
		assert.ErrorIs(t, b.Cancel(nil, now), booking.ErrAlreadyCancelled)
		assert.Equal(t, version, b.Version(), "a rejected cancel leaves the booking untouched")
	})

	t.Run("cancelled bookings cannot change", func(t *testing.T) {
		b := newBooking(t)
		require.NoError(t, b.Cancel(nil, now))
		assert.Nil(t, b.CancelledReason())

		target := slot(t, at(12, 0), at(13, 0))
		assert.ErrorIs(t, b.Reschedule(target, nil, now), booking.ErrBookingNotReschedulable)
		n, _ := booking.NewNote("late")
		assert.ErrorIs(t, b.UpdateNotes(n, now), booking.ErrBookingNotReschedulable)
	})
}

func TestBookingChanged(t *testing.T) {
	now := time.Date(2028, 6, 2, 9, 0, 0, 0, time.UTC)
	before, err := builder.NewBookingBuilder().BuildDirect()
	require.NoError(t, err)

	t.Run("unchanged", func(t *testing.T) {
		_, ok := booking.BookingChanged(before, before.Clone())
		assert.False(t, ok)
	})

	t.Run("rescheduled", func(t *testing.T) {
		after := before.Clone()
		require.NoError(t, after.Reschedule(slot(t, at(12, 0), at(13, 0)), nil, now))
		ev, ok := booking.BookingChanged(before, after)
		require.True(t, ok)
		assert.Equal(t, booking.EventBookingRescheduled, ev.Type)
		assert.Equal(t, before.TimeSlot().Start(), ev.Payload["previousStartAt"])
	})

	t.Run("notes updated", func(t *testing.T) {
		after := before.Clone()
		n, _ := booking.NewNote("late")
		require.NoError(t, after.UpdateNotes(n, now))
		ev, ok := booking.BookingChanged(before, after)
		require.True(t, ok)
		assert.Equal(t, booking.EventBookingNotesUpdated, ev.Type)
	})

	t.Run("cancelled", func(t *testing.T) {
		after := before.Clone()
		require.NoError(t, after.Cancel(ptr.To("Changed plans"), now))
		ev, ok := booking.BookingChanged(before, after)
		require.True(t, ok)
		assert.Equal(t, booking.EventBookingCancelled, ev.Type)
		assert.Equal(t, "Changed plans", ev.Payload["reason"])
		assert.Equal(t, before.ID(), ev.AggregateID)
	})
}
