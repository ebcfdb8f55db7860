package memory

import (
	"sort"
	"time"

	"booking-core/internal/domain/booking"

	"github.com/google/uuid"
)

type entry struct {
	slot      booking.TimeSlot
	kind      booking.AllocationKind
	ownerID   uuid.UUID
	expiresAt *time.Time
}

func (e entry) liveAt(now time.Time) bool {
	return e.kind != booking.AllocationHold || e.expiresAt == nil || now.Before(*e.expiresAt)
}

func (e entry) allocation(resourceID uuid.UUID) booking.Allocation {
	return booking.Allocation{
		ResourceID: resourceID,
		Slot:       e.slot,
		Kind:       e.kind,
		OwnerID:    e.ownerID,
		ExpiresAt:  e.expiresAt,
	}
}

// timeline holds one resource's allocations ordered by start. Entries never overlap each
// other, so they are ordered by end as well.
type timeline struct {
	entries []entry
}

// span returns the index range of entries overlapping slot.
func (t *timeline) span(slot booking.TimeSlot) (int, int) {
	lo := sort.Search(len(t.entries), func(i int) bool {
		return t.entries[i].slot.End().After(slot.Start())
	})
	hi := lo
	for hi < len(t.entries) && t.entries[hi].slot.Start().Before(slot.End()) {
		hi++
	}
	return lo, hi
}

// blocked reports whether a live entry not owned by ignore overlaps slot.
func (t *timeline) blocked(slot booking.TimeSlot, now time.Time, ignore uuid.UUID) bool {
	lo, hi := t.span(slot)
	for _, e := range t.entries[lo:hi] {
		if e.ownerID != ignore && e.liveAt(now) {
			return true
		}
	}
	return false
}

// insert places e, dropping the overlapping entries it replaces. Callers check blocked first.
func (t *timeline) insert(e entry) {
	lo, hi := t.span(e.slot)
	rest := append([]entry{e}, t.entries[hi:]...)
	t.entries = append(t.entries[:lo], rest...)
}

func (t *timeline) remove(ownerID uuid.UUID, slot booking.TimeSlot) bool {
	lo, hi := t.span(slot)
	for i := lo; i < hi; i++ {
		if t.entries[i].ownerID == ownerID {
			t.entries = append(t.entries[:i], t.entries[i+1:]...)
			return true
		}
	}
	return false
}

// relabel hands the entry of ownerID over to a booking without freeing the interval.
func (t *timeline) relabel(ownerID uuid.UUID, slot booking.TimeSlot, bookingID uuid.UUID) bool {
	lo, hi := t.span(slot)
	for i := lo; i < hi; i++ {
		if t.entries[i].ownerID == ownerID {
			t.entries[i] = entry{slot: slot, kind: booking.AllocationBooking, ownerID: bookingID}
			return true
		}
	}
	return false
}

func (t *timeline) has(ownerID uuid.UUID, slot booking.TimeSlot) bool {
	lo, hi := t.span(slot)
	for _, e := range t.entries[lo:hi] {
		if e.ownerID == ownerID {
			return true
		}
	}
	return false
}

func (t *timeline) within(slot booking.TimeSlot) []entry {
	lo, hi := t.span(slot)
	out := make([]entry, hi-lo)
	copy(out, t.entries[lo:hi])
	return out
}
