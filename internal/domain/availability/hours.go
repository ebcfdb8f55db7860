package availability

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"
)

var (
	ErrInvalidClockTime = errors.New("clock time must be HH:MM between 00:00 and 24:00")
	ErrInvalidWindow    = errors.New("working window must start before it ends")
	ErrInvalidWeekday   = errors.New("unknown weekday")
)

// ClockTime is a wall-clock time of day in minutes after midnight.
type ClockTime int

const endOfDay ClockTime = 24 * 60

func ParseClockTime(s string) (ClockTime, error) {
	var h, m int
	if _, err := fmt.Sscanf(strings.TrimSpace(s), "%d:%d", &h, &m); err != nil {
		return 0, ErrInvalidClockTime
	}
	if h < 0 || m < 0 || m > 59 {
		return 0, ErrInvalidClockTime
	}
	ct := ClockTime(h*60 + m)
	if ct > endOfDay {
		return 0, ErrInvalidClockTime
	}
	return ct, nil
}

func (c ClockTime) String() string {
	return fmt.Sprintf("%02d:%02d", int(c)/60, int(c)%60)
}

// on returns the instant this clock time falls on for the local date of day.
func (c ClockTime) on(day time.Time, loc *time.Location) time.Time {
	y, m, d := day.Date()
	return time.Date(y, m, d, int(c)/60, int(c)%60, 0, 0, loc)
}

type Window struct {
	Start ClockTime
	End   ClockTime
}

func NewWindow(start, end string) (Window, error) {
	s, err := ParseClockTime(start)
	if err != nil {
		return Window{}, err
	}
	e, err := ParseClockTime(end)
	if err != nil {
		return Window{}, err
	}
	if s >= e {
		return Window{}, ErrInvalidWindow
	}
	return Window{Start: s, End: e}, nil
}

// WorkingHours maps a weekday to its bookable windows in local wall-clock time.
type WorkingHours map[time.Weekday][]Window

func DefaultWorkingHours(days []time.Weekday, w Window) WorkingHours {
	wh := make(WorkingHours, len(days))
	for _, d := range days {
		wh[d] = []Window{w}
	}
	return wh
}

// Normalize sorts each day's windows and rejects overlapping ones.
func (wh WorkingHours) Normalize() (WorkingHours, error) {
	out := make(WorkingHours, len(wh))
	for day, windows := range wh {
		ws := slices.Clone(windows)
		slices.SortFunc(ws, func(a, b Window) int { return int(a.Start - b.Start) })
		for i, w := range ws {
			if w.Start >= w.End {
				return nil, ErrInvalidWindow
			}
			if i > 0 && ws[i-1].End > w.Start {
				return nil, ErrInvalidWindow
			}
		}
		out[day] = ws
	}
	return out, nil
}

var weekdayNames = map[string]time.Weekday{
	"sun": time.Sunday,
	"mon": time.Monday,
	"tue": time.Tuesday,
	"wed": time.Wednesday,
	"thu": time.Thursday,
	"fri": time.Friday,
	"sat": time.Saturday,
}

func ParseWeekday(s string) (time.Weekday, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	if len(key) > 3 {
		key = key[:3]
	}
	d, ok := weekdayNames[key]
	if !ok {
		return 0, ErrInvalidWeekday
	}
	return d, nil
}

func WeekdayKey(d time.Weekday) string {
	return strings.ToLower(d.String()[:3])
}

// Contains reports whether [start, end) fits inside a single window of start's local day.
func (wh WorkingHours) Contains(loc *time.Location, start, end time.Time) bool {
	day := start.In(loc)
	for _, w := range wh[day.Weekday()] {
		if !start.Before(w.Start.on(day, loc)) && !end.After(w.End.on(day, loc)) {
			return true
		}
	}
	return false
}
