package booking

import (
	"errors"
	"slices"
	"time"

	"github.com/google/uuid"
)

var (
	ErrNoResources         = errors.New("at least one resource is required")
	ErrDuplicateResource   = errors.New("resource ids must be distinct")
	ErrInvalidTTL          = errors.New("hold ttl out of bounds")
	ErrHoldExpired         = errors.New("hold is no longer active")
	ErrHoldAlreadyConsumed = errors.New("hold already consumed")
)

// HoldPolicy bounds the time-to-live a caller may request for a hold.
type HoldPolicy struct {
	MinTTL     time.Duration
	MaxTTL     time.Duration
	DefaultTTL time.Duration
}

func DefaultHoldPolicy() HoldPolicy {
	return HoldPolicy{
		MinTTL:     time.Second,
		MaxTTL:     time.Hour,
		DefaultTTL: 10 * time.Minute,
	}
}

// ResolveTTL maps a requested ttl in seconds to a duration. Zero selects the default.
func (p HoldPolicy) ResolveTTL(seconds int) (time.Duration, error) {
	if seconds == 0 {
		return p.DefaultTTL, nil
	}
	ttl := time.Duration(seconds) * time.Second
	if seconds < 0 || ttl < p.MinTTL || ttl > p.MaxTTL {
		return 0, ErrInvalidTTL
	}
	return ttl, nil
}

type Hold struct {
	id          uuid.UUID
	tenantID    uuid.UUID
	resourceIDs []uuid.UUID
	slot        TimeSlot
	status      HoldStatus
	expiresAt   time.Time
	notes       Note
	createdAt   time.Time
	updatedAt   time.Time
}

func NewHold(tenantID uuid.UUID, resourceIDs []uuid.UUID, slot TimeSlot, ttl time.Duration, notes Note, now time.Time) (*Hold, error) {
	ids, err := normalizeResourceIDs(resourceIDs)
	if err != nil {
		return nil, err
	}
	if slot.IsZero() {
		return nil, ErrInvalidTimeSlot
	}
	if ttl <= 0 {
		return nil, ErrInvalidTTL
	}

	now = now.UTC()
	return &Hold{
		id:          uuid.New(),
		tenantID:    tenantID,
		resourceIDs: ids,
		slot:        slot,
		status:      HoldStatusActive,
		expiresAt:   now.Add(ttl),
		notes:       notes,
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

func ReconstructHold(
	id, tenantID uuid.UUID,
	resourceIDs []uuid.UUID,
	slot TimeSlot,
	status HoldStatus,
	expiresAt time.Time,
	notes Note,
	createdAt, updatedAt time.Time,
) *Hold {
	return &Hold{
		id:          id,
		tenantID:    tenantID,
		resourceIDs: slices.Clone(resourceIDs),
		slot:        slot,
		status:      status,
		expiresAt:   expiresAt.UTC(),
		notes:       notes,
		createdAt:   createdAt.UTC(),
		updatedAt:   updatedAt.UTC(),
	}
}

func (h *Hold) ID() uuid.UUID              { return h.id }
func (h *Hold) TenantID() uuid.UUID        { return h.tenantID }
func (h *Hold) ResourceIDs() []uuid.UUID   { return slices.Clone(h.resourceIDs) }
func (h *Hold) TimeSlot() TimeSlot         { return h.slot }
func (h *Hold) Status() HoldStatus         { return h.status }
func (h *Hold) ExpiresAt() time.Time       { return h.expiresAt }
func (h *Hold) Notes() Note                { return h.notes }
func (h *Hold) CreatedAt() time.Time       { return h.createdAt }
func (h *Hold) UpdatedAt() time.Time       { return h.updatedAt }

// IsExpiredAt reports whether the hold's ttl has elapsed at t.
func (h *Hold) IsExpiredAt(t time.Time) bool {
	return !t.Before(h.expiresAt)
}

// EffectiveStatus is the status as of now: an ACTIVE hold past its expiry reads as EXPIRED
// whether or not the sweeper has visited it.
func (h *Hold) EffectiveStatus(now time.Time) HoldStatus {
	if h.status == HoldStatusActive && h.IsExpiredAt(now) {
		return HoldStatusExpired
	}
	return h.status
}

// Consume marks the hold as converted into a booking.
func (h *Hold) Consume(now time.Time) error {
	switch h.EffectiveStatus(now) {
	case HoldStatusActive:
	case HoldStatusConsumed:
		return ErrHoldAlreadyConsumed
	default:
		return ErrHoldExpired
	}
	h.status = HoldStatusConsumed
	h.updatedAt = now.UTC()
	return nil
}

// Release ends the hold early. It reports whether its allocation must be freed;
// releasing a terminal hold is a no-op.
func (h *Hold) Release(now time.Time) bool {
	switch h.EffectiveStatus(now) {
	case HoldStatusActive:
		h.status = HoldStatusReleased
	case HoldStatusExpired:
		if h.status != HoldStatusActive {
			return false
		}
		h.status = HoldStatusExpired
	default:
		return false
	}
	h.updatedAt = now.UTC()
	return true
}

// Expire moves an ACTIVE hold past its expiry to EXPIRED.
func (h *Hold) Expire(now time.Time) bool {
	if h.status != HoldStatusActive || !h.IsExpiredAt(now) {
		return false
	}
	h.status = HoldStatusExpired
	h.updatedAt = now.UTC()
	return true
}

func (h *Hold) Clone() *Hold {
	c := *h
	c.resourceIDs = slices.Clone(h.resourceIDs)
	return &c
}

func normalizeResourceIDs(ids []uuid.UUID) ([]uuid.UUID, error) {
	if len(ids) == 0 {
		return nil, ErrNoResources
	}
	seen := make(map[uuid.UUID]struct{}, len(ids))
	out := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if id == uuid.Nil {
			return nil, ErrNoResources
		}
		if _, dup := seen[id]; dup {
			return nil, ErrDuplicateResource
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out, nil
}
