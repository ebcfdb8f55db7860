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

type HoldQueries interface {
	CreateHold(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateHoldParams) error
	GetHoldForUpdate(ctx context.Context, db sqlc.DBTX, arg sqlc.GetHoldForUpdateParams) (sqlc.Holds, error)
	UpdateHoldStatus(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateHoldStatusParams) error
	ListDueHoldIDsForUpdate(ctx context.Context, db sqlc.DBTX, arg sqlc.ListDueHoldIDsForUpdateParams) ([]uuid.UUID, error)
	ExpireHolds(ctx context.Context, db sqlc.DBTX, arg sqlc.ExpireHoldsParams) ([]sqlc.Holds, error)
}

type HoldRepository struct {
	queries HoldQueries
	db      sqlc.DBTX
}

func NewHoldRepository(queries *sqlc.Queries, db sqlc.DBTX) *HoldRepository {
	return &HoldRepository{
		queries: queries,
		db:      db,
	}
}

func (r *HoldRepository) Create(ctx context.Context, h *booking.Hold) error {
	if err := r.queries.CreateHold(ctx, r.db, converter.HoldToInfra(h)); err != nil {
		return infra.WrapRepoErr("failed to create hold", err)
	}
	return nil
}

func (r *HoldRepository) GetForUpdate(ctx context.Context, tenantID, id uuid.UUID) (*booking.Hold, error) {
	row, err := r.queries.GetHoldForUpdate(ctx, r.db, sqlc.GetHoldForUpdateParams{TenantID: tenantID, ID: id})
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("hold not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get hold", err)
	}
	return converter.HoldFromRow(row), nil
}

func (r *HoldRepository) UpdateStatus(ctx context.Context, h *booking.Hold) error {
	err := r.queries.UpdateHoldStatus(ctx, r.db, sqlc.UpdateHoldStatusParams{
		ID:        h.ID(),
		Status:    h.Status().String(),
		UpdatedAt: pgconv.TimeToPgtype(h.UpdatedAt()),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to update hold status", err)
	}
	return nil
}

// DueIDsForUpdate locks up to limit overdue ACTIVE holds, skipping rows other sweepers hold.
func (r *HoldRepository) DueIDsForUpdate(ctx context.Context, now time.Time, limit int) ([]uuid.UUID, error) {
	ids, err := r.queries.ListDueHoldIDsForUpdate(ctx, r.db, sqlc.ListDueHoldIDsForUpdateParams{
		Now:      pgconv.TimeToPgtype(now),
		RowLimit: int32(limit), // #nosec G115 -- batch sizes are small
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list due holds", err)
	}
	return ids, nil
}

// Expire marks the given holds EXPIRED if they are still ACTIVE and overdue.
func (r *HoldRepository) Expire(ctx context.Context, ids []uuid.UUID, now time.Time) ([]*booking.Hold, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	rows, err := r.queries.ExpireHolds(ctx, r.db, sqlc.ExpireHoldsParams{
		Now: pgconv.TimeToPgtype(now),
		Ids: ids,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to expire holds", err)
	}
	out := make([]*booking.Hold, 0, len(rows))
	for _, row := range rows {
		out = append(out, converter.HoldFromRow(row))
	}
	return out, nil
}
