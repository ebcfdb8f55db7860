package booking

import (
	"time"

	"github.com/google/uuid"
)

type EventType string

const (
	EventHoldCreated         EventType = "hold.created"
	EventHoldReleased        EventType = "hold.released"
	EventHoldExpired         EventType = "hold.expired"
	EventBookingConfirmed    EventType = "booking.confirmed"
	EventBookingRescheduled  EventType = "booking.rescheduled"
	EventBookingNotesUpdated EventType = "booking.notes_updated"
	EventBookingCancelled    EventType = "booking.cancelled"
)

func (t EventType) String() string {
	return string(t)
}

// Event is an audit record of a ledger mutation, relayed to the message broker.
type Event struct {
	ID          uuid.UUID
	Type        EventType
	TenantID    uuid.UUID
	AggregateID uuid.UUID
	OccurredAt  time.Time
	Payload     map[string]any
}

func newEvent(t EventType, tenantID, aggregateID uuid.UUID, at time.Time, payload map[string]any) Event {
	return Event{
		ID:          uuid.New(),
		Type:        t,
		TenantID:    tenantID,
		AggregateID: aggregateID,
		OccurredAt:  at.UTC(),
		Payload:     payload,
	}
}

func holdPayload(h *Hold) map[string]any {
	return map[string]any{
		"holdId":      h.ID().String(),
		"resourceIds": idStrings(h.resourceIDs),
		"startAt":     h.slot.Start(),
		"endAt":       h.slot.End(),
		"status":      h.status.String(),
		"expiresAt":   h.expiresAt,
	}
}

func bookingPayload(b *Booking) map[string]any {
	p := map[string]any{
		"bookingId":   b.ID().String(),
		"resourceIds": idStrings(b.resourceIDs),
		"startAt":     b.slot.Start(),
		"endAt":       b.slot.End(),
		"status":      b.status.String(),
		"version":     b.version,
	}
	if b.holdID != nil {
		p["holdId"] = b.holdID.String()
	}
	return p
}

func HoldCreated(h *Hold) Event {
	return newEvent(EventHoldCreated, h.TenantID(), h.ID(), h.CreatedAt(), holdPayload(h))
}

// HoldTransition describes a hold that left ACTIVE. The second result is false when
// the hold did not change.
func HoldTransition(before HoldStatus, after *Hold) (Event, bool) {
	if before == after.Status() {
		return Event{}, false
	}
	switch after.Status() {
	case HoldStatusReleased:
		return newEvent(EventHoldReleased, after.TenantID(), after.ID(), after.UpdatedAt(), holdPayload(after)), true
	case HoldStatusExpired:
		return newEvent(EventHoldExpired, after.TenantID(), after.ID(), after.UpdatedAt(), holdPayload(after)), true
	default:
		return Event{}, false
	}
}

func BookingConfirmed(b *Booking) Event {
	return newEvent(EventBookingConfirmed, b.TenantID(), b.ID(), b.CreatedAt(), bookingPayload(b))
}

// BookingChanged derives the audit event for a mutation from the state before and after it.
func BookingChanged(before, after *Booking) (Event, bool) {
	if before.Version() == after.Version() {
		return Event{}, false
	}
	p := bookingPayload(after)
	switch {
	case before.Status() != after.Status() && after.IsCancelled():
		if after.CancelledReason() != nil {
			p["reason"] = *after.CancelledReason()
		}
		return newEvent(EventBookingCancelled, after.TenantID(), after.ID(), after.UpdatedAt(), p), true
	case !before.TimeSlot().Equal(after.TimeSlot()):
		p["previousStartAt"] = before.TimeSlot().Start()
		p["previousEndAt"] = before.TimeSlot().End()
		return newEvent(EventBookingRescheduled, after.TenantID(), after.ID(), after.UpdatedAt(), p), true
	default:
		return newEvent(EventBookingNotesUpdated, after.TenantID(), after.ID(), after.UpdatedAt(), p), true
	}
}

func idStrings(ids []uuid.UUID) []string {
	out := make([]string, len(ids))
	for i, id := range ids {
		out[i] = id.String()
	}
	return out
}
