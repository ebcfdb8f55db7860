package booking

import (
	"time"

	"github.com/google/uuid"
)

// Allocation is one resource's share of a hold or booking interval.
type Allocation struct {
	ResourceID uuid.UUID
	Slot       TimeSlot
	Kind       AllocationKind
	OwnerID    uuid.UUID
	// ExpiresAt is set for holds only.
	ExpiresAt *time.Time
}

// IsLiveAt reports whether the allocation still occupies its interval at now.
// Hold allocations stop counting once their ttl elapses.
func (a Allocation) IsLiveAt(now time.Time) bool {
	if a.Kind == AllocationHold && a.ExpiresAt != nil {
		return now.Before(*a.ExpiresAt)
	}
	return true
}

// Allocations lists the per-resource intervals an active hold occupies.
func (h *Hold) Allocations() []Allocation {
	if h.status != HoldStatusActive {
		return nil
	}
	exp := h.expiresAt
	out := make([]Allocation, 0, len(h.resourceIDs))
	for _, rid := range h.resourceIDs {
		out = append(out, Allocation{
			ResourceID: rid,
			Slot:       h.slot,
			Kind:       AllocationHold,
			OwnerID:    h.id,
			ExpiresAt:  &exp,
		})
	}
	return out
}
