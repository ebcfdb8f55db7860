package repository

import (
	"context"

	"booking-core/internal/domain/booking"
	"booking-core/internal/infra"
	"booking-core/internal/infra/repository/converter"
	sqlc "booking-core/internal/infra/sqlc/generated"
	"booking-core/internal/pkg/errs"
	"booking-core/internal/pkg/pgconv"

	"github.com/google/uuid"
)

var errStaleBooking = errs.New("booking version changed")

type BookingQueries interface {
	CreateBooking(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateBookingParams) error
	GetBookingForUpdate(ctx context.Context, db sqlc.DBTX, arg sqlc.GetBookingForUpdateParams) (sqlc.Bookings, error)
	UpdateBooking(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateBookingParams) (int64, error)
}

type BookingRepository struct {
	queries BookingQueries
	db      sqlc.DBTX
}

func NewBookingRepository(queries *sqlc.Queries, db sqlc.DBTX) *BookingRepository {
	return &BookingRepository{
		queries: queries,
		db:      db,
	}
}

func (r *BookingRepository) Create(ctx context.Context, b *booking.Booking) error {
	if err := r.queries.CreateBooking(ctx, r.db, converter.BookingToInfra(b)); err != nil {
		return infra.WrapRepoErr("failed to create booking", err)
	}
	return nil
}

func (r *BookingRepository) GetForUpdate(ctx context.Context, tenantID, id uuid.UUID) (*booking.Booking, error) {
	row, err := r.queries.GetBookingForUpdate(ctx, r.db, sqlc.GetBookingForUpdateParams{TenantID: tenantID, ID: id})
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get booking", err)
	}
	return converter.BookingFromRow(row), nil
}

// Update writes b only if the stored version still equals expectedVersion. A lost race is
// reported as transient so the unit of work retries from a fresh read.
func (r *BookingRepository) Update(ctx context.Context, b *booking.Booking, expectedVersion int) error {
	n, err := r.queries.UpdateBooking(ctx, r.db, converter.BookingUpdateToInfra(b, expectedVersion))
	if err != nil {
		return infra.WrapRepoErr("failed to update booking", err)
	}
	if n == 0 {
		return infra.WrapRepoErr("failed to update booking", errStaleBooking, infra.KindTransient)
	}
	return nil
}
