package response

import (
	"time"

	"booking-core/internal/domain/booking"
	"booking-core/internal/usecase/queries"

	"github.com/google/uuid"
)

type ResourceResponse struct {
	ID        uuid.UUID `json:"id"`
	TenantID  uuid.UUID `json:"tenantId"`
	Type      string    `json:"type"`
	Name      string    `json:"name"`
	Capacity  int       `json:"capacity"`
	IsActive  bool      `json:"isActive"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type ResourceListResponse struct {
	Items []*ResourceResponse `json:"items"`
}

type OccupiedIntervalResponse struct {
	ResourceID uuid.UUID  `json:"resourceId"`
	StartAt    time.Time  `json:"startAt"`
	EndAt      time.Time  `json:"endAt"`
	Kind       string     `json:"kind"`
	OwnerID    uuid.UUID  `json:"ownerId"`
	ExpiresAt  *time.Time `json:"expiresAt,omitempty"`
}

type OccupancyResponse struct {
	Items []OccupiedIntervalResponse `json:"items"`
}

func FromResourceView(v *queries.ResourceView) *ResourceResponse {
	return convert[ResourceResponse](v)
}

func FromResourceViews(vs []*queries.ResourceView) ResourceListResponse {
	items := make([]*ResourceResponse, 0, len(vs))
	for _, v := range vs {
		items = append(items, FromResourceView(v))
	}
	return ResourceListResponse{Items: items}
}

func FromAllocations(allocs []booking.Allocation) OccupancyResponse {
	items := make([]OccupiedIntervalResponse, 0, len(allocs))
	for _, a := range allocs {
		items = append(items, OccupiedIntervalResponse{
			ResourceID: a.ResourceID,
			StartAt:    a.Slot.Start(),
			EndAt:      a.Slot.End(),
			Kind:       a.Kind.String(),
			OwnerID:    a.OwnerID,
			ExpiresAt:  a.ExpiresAt,
		})
	}
	return OccupancyResponse{Items: items}
}
