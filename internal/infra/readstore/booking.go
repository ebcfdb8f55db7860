package readstore

import (
	"context"

	"booking-core/internal/infra"
	"booking-core/internal/infra/repository/converter"
	sqlc "booking-core/internal/infra/sqlc/generated"
	"booking-core/internal/pkg/pgconv"
	"booking-core/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type BookingViewQueries interface {
	GetBooking(ctx context.Context, db sqlc.DBTX, arg sqlc.GetBookingParams) (sqlc.Bookings, error)
	ListBookings(ctx context.Context, db sqlc.DBTX, arg sqlc.ListBookingsParams) ([]sqlc.Bookings, error)
	CountBookings(ctx context.Context, db sqlc.DBTX, arg sqlc.CountBookingsParams) (int64, error)
	GetHold(ctx context.Context, db sqlc.DBTX, arg sqlc.GetHoldParams) (sqlc.Holds, error)
}

type BookingReadStore struct {
	queries BookingViewQueries
	db      sqlc.DBTX
}

var _ queries.BookingReadStore = (*BookingReadStore)(nil)

func NewBookingReadStore(queries *sqlc.Queries, db sqlc.DBTX) *BookingReadStore {
	return &BookingReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *BookingReadStore) FindBooking(ctx context.Context, tenantID, id uuid.UUID) (*queries.BookingView, error) {
	row, err := r.queries.GetBooking(ctx, r.db, sqlc.GetBookingParams{TenantID: tenantID, ID: id})
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find booking by ID", err)
	}
	return queries.NewBookingView(converter.BookingFromRow(row)), nil
}

func (r *BookingReadStore) FindHold(ctx context.Context, tenantID, id uuid.UUID) (*queries.HoldView, error) {
	row, err := r.queries.GetHold(ctx, r.db, sqlc.GetHoldParams{TenantID: tenantID, ID: id})
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("hold not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find hold by ID", err)
	}
	return queries.NewHoldView(converter.HoldFromRow(row)), nil
}

func (r *BookingReadStore) ListBookings(ctx context.Context, tenantID uuid.UUID, f queries.BookingFilter, limit, offset int) ([]*queries.BookingView, int, error) {
	status := pgtype.Text{}
	if f.Status != nil {
		status = pgtype.Text{String: f.Status.String(), Valid: true}
	}
	resourceID := pgconv.UUIDPtrToPgtype(f.ResourceID)
	from := pgconv.TimePtrToPgtype(f.From)
	to := pgconv.TimePtrToPgtype(f.To)

	total, err := r.queries.CountBookings(ctx, r.db, sqlc.CountBookingsParams{
		TenantID:   tenantID,
		Status:     status,
		ResourceID: resourceID,
		FromAt:     from,
		ToAt:       to,
	})
	if err != nil {
		return nil, 0, infra.WrapRepoErr("failed to count bookings", err)
	}
	if int64(offset) >= total {
		return []*queries.BookingView{}, int(total), nil
	}

	rows, err := r.queries.ListBookings(ctx, r.db, sqlc.ListBookingsParams{
		TenantID:   tenantID,
		Status:     status,
		ResourceID: resourceID,
		FromAt:     from,
		ToAt:       to,
		RowLimit:   int32(limit),  // #nosec G115 -- page sizes are capped
		RowOffset:  int32(offset), // #nosec G115
	})
	if err != nil {
		return nil, 0, infra.WrapRepoErr("failed to list bookings", err)
	}

	result := make([]*queries.BookingView, len(rows))
	for i, row := range rows {
		result[i] = queries.NewBookingView(converter.BookingFromRow(row))
	}
	return result, int(total), nil
}
