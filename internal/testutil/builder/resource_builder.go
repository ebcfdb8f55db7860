//go:build unit || e2e

package builder

import (
	"time"

	"booking-core/internal/domain/resource"
	reqdto "booking-core/internal/handler/dto/request"
	sqlc "booking-core/internal/infra/sqlc/generated"
	"booking-core/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type ResourceBuilder struct {
	TenantID  uuid.UUID
	Type      string
	Name      string
	Capacity  int
	IsActive  bool
	CreatedAt time.Time
}

func NewResourceBuilder() *ResourceBuilder {
	return &ResourceBuilder{
		TenantID:  uuid.New(),
		Type:      "ROOM",
		Name:      "R1",
		Capacity:  4,
		IsActive:  true,
		CreatedAt: time.Date(2028, 6, 1, 9, 0, 0, 0, time.UTC),
	}
}

func (r *ResourceBuilder) With(mutate func(*ResourceBuilder)) *ResourceBuilder {
	mutate(r)
	return r
}

// Build methods
func (r *ResourceBuilder) BuildDomain() (*resource.Resource, error) {
	return resource.NewResource(r.TenantID, resource.Type(r.Type), r.Name, r.Capacity, r.CreatedAt)
}

func (r *ResourceBuilder) BuildInfra() sqlc.Resources {
	return sqlc.Resources{
		ID:        uuid.New(),
		TenantID:  r.TenantID,
		Type:      r.Type,
		Name:      r.Name,
		Capacity:  int32(r.Capacity), // #nosec G115
		IsActive:  r.IsActive,
		CreatedAt: pgtype.Timestamptz{Time: r.CreatedAt, Valid: true},
		UpdatedAt: pgtype.Timestamptz{Time: r.CreatedAt, Valid: true},
	}
}

func (r *ResourceBuilder) BuildRegisterRequestDTO() reqdto.RegisterResourceRequest {
	return reqdto.RegisterResourceRequest{
		Type:     r.Type,
		Name:     r.Name,
		Capacity: r.Capacity,
	}
}

func (r *ResourceBuilder) BuildView() *queries.ResourceView {
	return &queries.ResourceView{
		ID:        uuid.New(),
		TenantID:  r.TenantID,
		Type:      r.Type,
		Name:      r.Name,
		Capacity:  r.Capacity,
		IsActive:  r.IsActive,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.CreatedAt,
	}
}
