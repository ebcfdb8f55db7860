package converter

import (
	"booking-core/internal/domain/resource"
	sqlc "booking-core/internal/infra/sqlc/generated"
	"booking-core/internal/pkg/pgconv"
)

func ResourceToInfra(r *resource.Resource) sqlc.CreateResourceParams {
	return sqlc.CreateResourceParams{
		ID:        r.ID(),
		TenantID:  r.TenantID(),
		Type:      r.Type().String(),
		Name:      r.Name(),
		Capacity:  int32(r.Capacity()), // #nosec G115 -- capacity is validated to a small range
		IsActive:  r.IsActive(),
		CreatedAt: pgconv.TimeToPgtype(r.CreatedAt()),
		UpdatedAt: pgconv.TimeToPgtype(r.UpdatedAt()),
	}
}

func ResourceUpdateToInfra(r *resource.Resource) sqlc.UpdateResourceParams {
	return sqlc.UpdateResourceParams{
		ID:        r.ID(),
		Name:      r.Name(),
		Capacity:  int32(r.Capacity()), // #nosec G115
		IsActive:  r.IsActive(),
		UpdatedAt: pgconv.TimeToPgtype(r.UpdatedAt()),
	}
}

func ResourceFromRow(row sqlc.Resources) *resource.Resource {
	return resource.ReconstructResource(
		row.ID,
		row.TenantID,
		resource.Type(row.Type),
		row.Name,
		int(row.Capacity),
		row.IsActive,
		pgconv.TimeFromPgtype(row.CreatedAt),
		pgconv.TimeFromPgtype(row.UpdatedAt),
	)
}

func ResourcesFromRows(rows []sqlc.Resources) []*resource.Resource {
	out := make([]*resource.Resource, 0, len(rows))
	for _, row := range rows {
		out = append(out, ResourceFromRow(row))
	}
	return out
}
