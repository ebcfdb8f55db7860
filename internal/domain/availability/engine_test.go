//go:build unit

package availability_test

import (
	"testing"
	"time"

	"booking-core/internal/domain/availability"
	"booking-core/internal/domain/booking"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var monday = time.Date(2028, 6, 19, 0, 0, 0, 0, time.UTC)

func utc(hour, minute int) time.Time {
	return monday.Add(time.Duration(hour)*time.Hour + time.Duration(minute)*time.Minute)
}

func busy(t *testing.T, start, end time.Time) booking.TimeSlot {
	t.Helper()
	s, err := booking.NewTimeSlot(start, end)
	require.NoError(t, err)
	return s
}

func mondayMorning(candidates ...availability.Candidate) availability.Request {
	return availability.Request{
		Candidates:  candidates,
		Duration:    time.Hour,
		From:        monday,
		To:          monday.AddDate(0, 0, 1),
		Granularity: 30 * time.Minute,
		Location:    time.UTC,
		Hours: availability.WorkingHours{
			time.Monday: {{Start: 9 * 60, End: 12 * 60}},
		},
	}
}

func starts(slots []availability.Slot) []time.Time {
	out := make([]time.Time, 0, len(slots))
	for _, s := range slots {
		out = append(out, s.Start)
	}
	return out
}

func TestCompute(t *testing.T) {
	roomA := uuid.New()
	roomB := uuid.New()
	staff := uuid.New()

	testCases := []struct {
		name       string
		req        availability.Request
		occ        availability.Occupancy
		wantStarts []time.Time
	}{
		{
			name:       "free day yields every granular start",
			req:        mondayMorning(availability.Candidate{Members: []uuid.UUID{roomA}}),
			wantStarts: []time.Time{utc(9, 0), utc(9, 30), utc(10, 0), utc(10, 30), utc(11, 0)},
		},
		{
			name: "busy interval blocks overlapping slots only",
			req:  mondayMorning(availability.Candidate{Members: []uuid.UUID{roomA}}),
			occ: availability.Occupancy{
				roomA: {busy(t, utc(10, 0), utc(10, 30))},
			},
			wantStarts: []time.Time{utc(9, 0), utc(10, 30), utc(11, 0)},
		},
		{
			name: "overlapping busy intervals are merged",
			req:  mondayMorning(availability.Candidate{Members: []uuid.UUID{roomA}}),
			occ: availability.Occupancy{
				roomA: {busy(t, utc(9, 30), utc(10, 30)), busy(t, utc(9, 0), utc(10, 0))},
			},
			wantStarts: []time.Time{utc(10, 30), utc(11, 0)},
		},
		{
			name: "every member of a candidate must be free",
			req:  mondayMorning(availability.Candidate{Members: []uuid.UUID{roomA, staff}}),
			occ: availability.Occupancy{
				staff: {busy(t, utc(9, 0), utc(10, 0))},
			},
			wantStarts: []time.Time{utc(10, 0), utc(10, 30), utc(11, 0)},
		},
		{
			name: "not before drops earlier starts",
			req: func() availability.Request {
				r := mondayMorning(availability.Candidate{Members: []uuid.UUID{roomA}})
				r.NotBefore = utc(10, 15)
				return r
			}(),
			wantStarts: []time.Time{utc(10, 30), utc(11, 0)},
		},
		{
			name: "range end cuts the day short",
			req: func() availability.Request {
				r := mondayMorning(availability.Candidate{Members: []uuid.UUID{roomA}})
				r.To = utc(11, 0)
				return r
			}(),
			wantStarts: []time.Time{utc(9, 0), utc(9, 30), utc(10, 0)},
		},
		{
			name: "fully booked",
			req:  mondayMorning(availability.Candidate{Members: []uuid.UUID{roomA}}),
			occ: availability.Occupancy{
				roomA: {busy(t, utc(8, 0), utc(13, 0))},
			},
			wantStarts: []time.Time{},
		},
		{
			name: "second candidate fills in",
			req: mondayMorning(
				availability.Candidate{Members: []uuid.UUID{roomA}},
				availability.Candidate{Members: []uuid.UUID{roomB}},
			),
			occ: availability.Occupancy{
				roomA: {busy(t, utc(9, 0), utc(12, 0))},
			},
			wantStarts: []time.Time{utc(9, 0), utc(9, 30), utc(10, 0), utc(10, 30), utc(11, 0)},
		},
		{
			name: "every free candidate is an option",
			req: mondayMorning(
				availability.Candidate{Members: []uuid.UUID{roomA}},
				availability.Candidate{Members: []uuid.UUID{roomB}},
			),
			wantStarts: []time.Time{
				utc(9, 0), utc(9, 0), utc(9, 30), utc(9, 30), utc(10, 0),
				utc(10, 0), utc(10, 30), utc(10, 30), utc(11, 0), utc(11, 0),
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			slots, err := availability.Compute(tc.req, tc.occ)
			require.NoError(t, err)

			if diff := cmp.Diff(tc.wantStarts, starts(slots)); diff != "" {
				t.Errorf("slot starts mismatch (-want +got):\n%s", diff)
			}
			for _, s := range slots {
				assert.Equal(t, tc.req.Duration, s.End.Sub(s.Start))
			}
		})
	}

	t.Run("options follow candidate order per start", func(t *testing.T) {
		staffID := uuid.New()
		first := availability.Candidate{Members: []uuid.UUID{roomA}, ResourceID: roomA}
		second := availability.Candidate{Members: []uuid.UUID{roomB, staffID}, ResourceID: roomB, StaffID: &staffID}

		slots, err := availability.Compute(mondayMorning(first, second), availability.Occupancy{
			roomA: {busy(t, utc(9, 0), utc(10, 0))},
		})
		require.NoError(t, err)

		perStart := map[time.Time][]availability.Candidate{}
		for _, sl := range slots {
			perStart[sl.Start] = append(perStart[sl.Start], sl.Candidate)
		}
		assert.Equal(t, []availability.Candidate{second}, perStart[utc(9, 0)])
		assert.Equal(t, []availability.Candidate{second}, perStart[utc(9, 30)])
		assert.Equal(t, []availability.Candidate{first, second}, perStart[utc(10, 0)])
		assert.Equal(t, []availability.Candidate{first, second}, perStart[utc(11, 0)])
	})

	t.Run("shared member across candidates", func(t *testing.T) {
		staffID := uuid.New()
		slots, err := availability.Compute(mondayMorning(
			availability.Candidate{Members: []uuid.UUID{roomA, staffID}},
			availability.Candidate{Members: []uuid.UUID{roomB, staffID}},
		), availability.Occupancy{
			staffID: {busy(t, utc(9, 30), utc(10, 30))},
		})
		require.NoError(t, err)
		assert.Equal(t, []time.Time{utc(10, 30), utc(10, 30), utc(11, 0), utc(11, 0)}, starts(slots))
	})
}

func TestSlots_LocalTime(t *testing.T) {
	berlin, err := time.LoadLocation("Europe/Berlin")
	require.NoError(t, err)

	req := availability.Request{
		Candidates:  []availability.Candidate{{Members: []uuid.UUID{uuid.New()}}},
		Duration:    time.Hour,
		From:        time.Date(2028, 6, 19, 0, 0, 0, 0, berlin),
		To:          time.Date(2028, 6, 21, 0, 0, 0, 0, berlin),
		Granularity: time.Hour,
		Location:    berlin,
		Hours: availability.WorkingHours{
			time.Monday:  {{Start: 9 * 60, End: 10 * 60}},
			time.Tuesday: {{Start: 9 * 60, End: 10 * 60}},
		},
	}

	slots, err := availability.Compute(req, nil)
	require.NoError(t, err)
	require.Len(t, slots, 2)
	// CEST is UTC+2 in June
	assert.Equal(t, time.Date(2028, 6, 19, 7, 0, 0, 0, time.UTC), slots[0].Start)
	assert.Equal(t, []string{"2028-06-19", "2028-06-20"}, availability.AvailableDays(slots, berlin))
}

func TestAvailableDays_SeveralOptionsPerDay(t *testing.T) {
	slots, err := availability.Compute(mondayMorning(
		availability.Candidate{Members: []uuid.UUID{uuid.New()}},
		availability.Candidate{Members: []uuid.UUID{uuid.New()}},
	), nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"2028-06-19"}, availability.AvailableDays(slots, time.UTC))
}

func TestSlots_StopsEarly(t *testing.T) {
	req := mondayMorning(availability.Candidate{Members: []uuid.UUID{uuid.New()}})

	n := 0
	for range availability.Slots(req, nil) {
		n++
		if n == 2 {
			break
		}
	}
	assert.Equal(t, 2, n)
}

func TestRequest_Validate(t *testing.T) {
	valid := mondayMorning(availability.Candidate{Members: []uuid.UUID{uuid.New()}})

	testCases := []struct {
		name   string
		mutate func(r *availability.Request)
		errIs  error
	}{
		{name: "no candidates", mutate: func(r *availability.Request) { r.Candidates = nil }, errIs: availability.ErrNoCandidates},
		{name: "empty candidate", mutate: func(r *availability.Request) { r.Candidates = []availability.Candidate{{}} }, errIs: availability.ErrNoCandidates},
		{name: "zero duration", mutate: func(r *availability.Request) { r.Duration = 0 }, errIs: availability.ErrInvalidDuration},
		{name: "zero granularity", mutate: func(r *availability.Request) { r.Granularity = 0 }, errIs: availability.ErrInvalidGranularity},
		{name: "inverted range", mutate: func(r *availability.Request) { r.From, r.To = r.To, r.From }, errIs: availability.ErrInvalidRange},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			r := valid
			tc.mutate(&r)
			_, err := availability.Compute(r, nil)
			assert.ErrorIs(t, err, tc.errIs)
		})
	}
}
