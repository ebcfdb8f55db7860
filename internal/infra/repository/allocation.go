package repository

import (
	"context"
	"time"

	"booking-core/internal/domain/booking"
	"booking-core/internal/infra"
	"booking-core/internal/infra/repository/converter"
	sqlc "booking-core/internal/infra/sqlc/generated"
	"booking-core/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type AllocationQueries interface {
	InsertAllocation(ctx context.Context, db sqlc.DBTX, arg sqlc.InsertAllocationParams) error
	RetireExpiredHoldAllocations(ctx context.Context, db sqlc.DBTX, arg sqlc.RetireExpiredHoldAllocationsParams) ([]uuid.UUID, error)
	DeactivateAllocationsByOwners(ctx context.Context, db sqlc.DBTX, ownerIds []uuid.UUID) (int64, error)
	RelabelHoldAllocations(ctx context.Context, db sqlc.DBTX, arg sqlc.RelabelHoldAllocationsParams) (int64, error)
}

type AllocationRepository struct {
	queries AllocationQueries
	db      sqlc.DBTX
}

func NewAllocationRepository(queries *sqlc.Queries, db sqlc.DBTX) *AllocationRepository {
	return &AllocationRepository{
		queries: queries,
		db:      db,
	}
}

// RetireExpired deactivates hold rows on ids whose ttl elapsed and that overlap slot,
// returning the owning hold ids (possibly repeated).
func (r *AllocationRepository) RetireExpired(ctx context.Context, tenantID uuid.UUID, ids []uuid.UUID, slot booking.TimeSlot, now time.Time) ([]uuid.UUID, error) {
	owners, err := r.queries.RetireExpiredHoldAllocations(ctx, r.db, sqlc.RetireExpiredHoldAllocationsParams{
		TenantID:    tenantID,
		ResourceIds: ids,
		Now:         pgconv.TimeToPgtype(now),
		StartAt:     pgconv.TimeToPgtype(slot.Start()),
		EndAt:       pgconv.TimeToPgtype(slot.End()),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to retire expired hold allocations", err)
	}
	return owners, nil
}

// Insert writes one row per allocation. An overlap with an active row fails with KindConflict.
func (r *AllocationRepository) Insert(ctx context.Context, tenantID uuid.UUID, allocs []booking.Allocation) error {
	for _, a := range allocs {
		if err := r.queries.InsertAllocation(ctx, r.db, converter.AllocationToInfra(tenantID, a)); err != nil {
			return infra.WrapRepoErr("failed to insert allocation", err)
		}
	}
	return nil
}

func (r *AllocationRepository) DeactivateByOwners(ctx context.Context, ownerIDs []uuid.UUID) (int64, error) {
	if len(ownerIDs) == 0 {
		return 0, nil
	}
	n, err := r.queries.DeactivateAllocationsByOwners(ctx, r.db, ownerIDs)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to deactivate allocations", err)
	}
	return n, nil
}

// RelabelHold transfers a hold's active rows to the booking and reports how many moved.
func (r *AllocationRepository) RelabelHold(ctx context.Context, holdID, bookingID uuid.UUID) (int64, error) {
	n, err := r.queries.RelabelHoldAllocations(ctx, r.db, sqlc.RelabelHoldAllocationsParams{
		BookingID: bookingID,
		HoldID:    holdID,
	})
	if err != nil {
		return 0, infra.WrapRepoErr("failed to relabel hold allocations", err)
	}
	return n, nil
}
