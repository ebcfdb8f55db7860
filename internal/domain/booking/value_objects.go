package booking

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"
	"unicode/utf8"
)

const maxNoteLength = 2000

var (
	ErrInvalidTimeSlot = errors.New("start time must be before end time")
	ErrInvalidEmail    = errors.New("invalid email format")
	ErrInvalidName     = errors.New("name is required")
	ErrNoteTooLong     = errors.New("notes must be at most 2000 characters")
)

// TimeSlot is the half-open interval [start, end), stored in UTC.
type TimeSlot struct {
	start time.Time
	end   time.Time
}

func NewTimeSlot(start, end time.Time) (TimeSlot, error) {
	if !start.Before(end) {
		return TimeSlot{}, ErrInvalidTimeSlot
	}

	return TimeSlot{
		start: start.UTC(),
		end:   end.UTC(),
	}, nil
}

// ReconstructTimeSlot skips validation for intervals already persisted.
func ReconstructTimeSlot(start, end time.Time) TimeSlot {
	return TimeSlot{start: start.UTC(), end: end.UTC()}
}

func (ts TimeSlot) Start() time.Time {
	return ts.start
}

func (ts TimeSlot) End() time.Time {
	return ts.end
}

func (ts TimeSlot) Duration() time.Duration {
	return ts.end.Sub(ts.start)
}

func (ts TimeSlot) IsZero() bool {
	return ts.start.IsZero() && ts.end.IsZero()
}

// Overlaps reports whether the two intervals share any instant.
// Touching intervals ([9,10) and [10,11)) do not overlap.
func (ts TimeSlot) Overlaps(other TimeSlot) bool {
	return ts.start.Before(other.end) && other.start.Before(ts.end)
}

func (ts TimeSlot) Equal(other TimeSlot) bool {
	return ts.start.Equal(other.start) && ts.end.Equal(other.end)
}

func (ts TimeSlot) ToTstzrange() string {
	return fmt.Sprintf("[%s,%s)", ts.start.Format(time.RFC3339), ts.end.Format(time.RFC3339))
}

func (ts TimeSlot) String() string {
	return ts.ToTstzrange()
}

type Note struct {
	value string
}

func NewNote(value string) (Note, error) {
	value = strings.TrimSpace(value)
	if utf8.RuneCountInString(value) > maxNoteLength {
		return Note{}, ErrNoteTooLong
	}
	return Note{value: value}, nil
}

// NoteFromPtr treats nil as an empty note.
func NoteFromPtr(value *string) (Note, error) {
	if value == nil {
		return Note{}, nil
	}
	return NewNote(*value)
}

func ReconstructNote(value *string) Note {
	if value == nil {
		return Note{}
	}
	return Note{value: *value}
}

func (n Note) String() string {
	return n.value
}

func (n Note) IsEmpty() bool {
	return n.value == ""
}

func (n Note) Ptr() *string {
	if n.value == "" {
		return nil
	}
	v := n.value
	return &v
}

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// Contact is the person a booking is made for.
type Contact struct {
	name  string
	email string
}

func NewContact(name, email string) (Contact, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Contact{}, ErrInvalidName
	}
	email = strings.TrimSpace(email)
	if !emailRegex.MatchString(email) {
		return Contact{}, ErrInvalidEmail
	}
	return Contact{name: name, email: email}, nil
}

func (c Contact) Name() string  { return c.name }
func (c Contact) Email() string { return c.email }
