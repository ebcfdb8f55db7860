package readstore

import (
	"context"
	"time"

	"booking-core/internal/domain/booking"
	"booking-core/internal/infra"
	"booking-core/internal/infra/repository/converter"
	sqlc "booking-core/internal/infra/sqlc/generated"
	"booking-core/internal/pkg/pgconv"
	"booking-core/internal/usecase/queries"

	"github.com/google/uuid"
)

type OccupancyQueries interface {
	ListOccupied(ctx context.Context, db sqlc.DBTX, arg sqlc.ListOccupiedParams) ([]sqlc.ListOccupiedRow, error)
}

// OccupancyReadStore reads active allocation rows. Hold rows past their ttl may still be
// active here; callers filter with Allocation.IsLiveAt.
type OccupancyReadStore struct {
	queries OccupancyQueries
	db      sqlc.DBTX
}

var _ queries.OccupancyReadStore = (*OccupancyReadStore)(nil)

func NewOccupancyReadStore(queries *sqlc.Queries, db sqlc.DBTX) *OccupancyReadStore {
	return &OccupancyReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *OccupancyReadStore) ListOccupied(ctx context.Context, tenantID uuid.UUID, resourceIDs []uuid.UUID, from, to time.Time) ([]booking.Allocation, error) {
	if len(resourceIDs) == 0 {
		return nil, nil
	}
	rows, err := r.queries.ListOccupied(ctx, r.db, sqlc.ListOccupiedParams{
		TenantID:    tenantID,
		ResourceIds: resourceIDs,
		ToAt:        pgconv.TimeToPgtype(to),
		FromAt:      pgconv.TimeToPgtype(from),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list occupied intervals", err)
	}

	result := make([]booking.Allocation, len(rows))
	for i, row := range rows {
		result[i] = converter.AllocationFromRow(row)
	}
	return result, nil
}
