package availability

import (
	"errors"
	"iter"
	"slices"
	"time"

	"booking-core/internal/domain/booking"

	"github.com/google/uuid"
)

var (
	ErrNoCandidates       = errors.New("at least one candidate is required")
	ErrInvalidDuration    = errors.New("duration must be positive")
	ErrInvalidGranularity = errors.New("granularity must be positive")
	ErrInvalidRange       = errors.New("from must be before to")
)

// Candidate is a set of resources that must all be free for a slot to qualify,
// typically a resource paired with a staff member. ResourceID and StaffID label the
// pair when the candidate came from one; a zero ResourceID marks an unlabelled bundle.
type Candidate struct {
	Members    []uuid.UUID
	ResourceID uuid.UUID
	StaffID    *uuid.UUID
}

type Request struct {
	Candidates  []Candidate
	Duration    time.Duration
	From        time.Time
	To          time.Time
	Granularity time.Duration
	Location    *time.Location
	Hours       WorkingHours
	// NotBefore drops slots that start earlier, usually now.
	NotBefore time.Time
}

func (r Request) Validate() error {
	if len(r.Candidates) == 0 {
		return ErrNoCandidates
	}
	for _, c := range r.Candidates {
		if len(c.Members) == 0 {
			return ErrNoCandidates
		}
	}
	if r.Duration <= 0 {
		return ErrInvalidDuration
	}
	if r.Granularity <= 0 {
		return ErrInvalidGranularity
	}
	if !r.From.Before(r.To) {
		return ErrInvalidRange
	}
	return nil
}

// Slot is a bookable interval for one candidate that is free for all of it.
type Slot struct {
	Start     time.Time
	End       time.Time
	Candidate Candidate
}

// Occupancy lists busy intervals per resource.
type Occupancy map[uuid.UUID][]booking.TimeSlot

// Slots enumerates bookable options lazily in start order. Every qualifying candidate
// is yielded for a start, in request order; picking one is left to the caller. The
// sequence is pure and may be iterated any number of times. Request must be valid.
func Slots(req Request, occ Occupancy) iter.Seq[Slot] {
	loc := req.Location
	if loc == nil {
		loc = time.UTC
	}
	busy := make(map[uuid.UUID][]booking.TimeSlot, len(occ))
	for id, intervals := range occ {
		busy[id] = mergeIntervals(intervals)
	}

	return func(yield func(Slot) bool) {
		cursors := make(map[uuid.UUID]int, len(busy))
		from := req.From.In(loc)
		to := req.To.In(loc)

		day := time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, loc)
		for day.Before(to) {
			for _, w := range req.Hours[day.Weekday()] {
				winStart := w.Start.on(day, loc)
				winEnd := w.End.on(day, loc)
				for start := winStart; !start.Add(req.Duration).After(winEnd); start = start.Add(req.Granularity) {
					end := start.Add(req.Duration)
					if start.Before(req.From) || start.Before(req.NotBefore) {
						continue
					}
					if end.After(req.To) {
						break
					}
					for _, c := range req.Candidates {
						if !allFree(c, busy, cursors, start, end) {
							continue
						}
						if !yield(Slot{Start: start.UTC(), End: end.UTC(), Candidate: c}) {
							return
						}
					}
				}
			}
			day = time.Date(day.Year(), day.Month(), day.Day()+1, 0, 0, 0, 0, loc)
		}
	}
}

// Compute materializes Slots.
func Compute(req Request, occ Occupancy) ([]Slot, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	return slices.Collect(Slots(req, occ)), nil
}

// AvailableDays lists the distinct local dates (YYYY-MM-DD) that have at least one slot.
func AvailableDays(slots []Slot, loc *time.Location) []string {
	if loc == nil {
		loc = time.UTC
	}
	var days []string
	for _, s := range slots {
		d := s.Start.In(loc).Format(time.DateOnly)
		if len(days) == 0 || days[len(days)-1] != d {
			days = append(days, d)
		}
	}
	return days
}

func allFree(c Candidate, busy map[uuid.UUID][]booking.TimeSlot, cursors map[uuid.UUID]int, start, end time.Time) bool {
	for _, id := range c.Members {
		if !isFree(busy[id], cursors, id, start, end) {
			return false
		}
	}
	return true
}

// isFree advances the resource's cursor past intervals ending at or before start.
// Slot starts never decrease within one iteration, so each busy list is walked once.
func isFree(intervals []booking.TimeSlot, cursors map[uuid.UUID]int, id uuid.UUID, start, end time.Time) bool {
	i := cursors[id]
	for i < len(intervals) && !intervals[i].End().After(start) {
		i++
	}
	cursors[id] = i
	return i == len(intervals) || !intervals[i].Start().Before(end)
}

func mergeIntervals(in []booking.TimeSlot) []booking.TimeSlot {
	if len(in) == 0 {
		return nil
	}
	sorted := slices.Clone(in)
	slices.SortFunc(sorted, func(a, b booking.TimeSlot) int { return a.Start().Compare(b.Start()) })

	out := []booking.TimeSlot{sorted[0]}
	for _, cur := range sorted[1:] {
		last := out[len(out)-1]
		if cur.Start().After(last.End()) {
			out = append(out, cur)
			continue
		}
		if cur.End().After(last.End()) {
			merged, _ := booking.NewTimeSlot(last.Start(), cur.End())
			out[len(out)-1] = merged
		}
	}
	return out
}
