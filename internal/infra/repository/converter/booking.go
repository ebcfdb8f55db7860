package converter

import (
	"github.com/google/uuid"

	"booking-core/internal/domain/booking"
	sqlc "booking-core/internal/infra/sqlc/generated"
	"booking-core/internal/pkg/pgconv"
)

func HoldToInfra(h *booking.Hold) sqlc.CreateHoldParams {
	return sqlc.CreateHoldParams{
		ID:          h.ID(),
		TenantID:    h.TenantID(),
		ResourceIds: h.ResourceIDs(),
		StartAt:     pgconv.TimeToPgtype(h.TimeSlot().Start()),
		EndAt:       pgconv.TimeToPgtype(h.TimeSlot().End()),
		Status:      h.Status().String(),
		ExpiresAt:   pgconv.TimeToPgtype(h.ExpiresAt()),
		Notes:       pgconv.StringPtrToPgtype(h.Notes().Ptr()),
		CreatedAt:   pgconv.TimeToPgtype(h.CreatedAt()),
		UpdatedAt:   pgconv.TimeToPgtype(h.UpdatedAt()),
	}
}

func HoldFromRow(row sqlc.Holds) *booking.Hold {
	return booking.ReconstructHold(
		row.ID,
		row.TenantID,
		row.ResourceIds,
		booking.ReconstructTimeSlot(row.StartAt.Time, row.EndAt.Time),
		booking.HoldStatus(row.Status),
		pgconv.TimeFromPgtype(row.ExpiresAt),
		booking.ReconstructNote(pgconv.StringPtrFromPgtype(row.Notes)),
		pgconv.TimeFromPgtype(row.CreatedAt),
		pgconv.TimeFromPgtype(row.UpdatedAt),
	)
}

func BookingToInfra(b *booking.Booking) sqlc.CreateBookingParams {
	return sqlc.CreateBookingParams{
		ID:              b.ID(),
		TenantID:        b.TenantID(),
		HoldID:          pgconv.UUIDPtrToPgtype(b.HoldID()),
		ResourceIds:     b.ResourceIDs(),
		StartAt:         pgconv.TimeToPgtype(b.TimeSlot().Start()),
		EndAt:           pgconv.TimeToPgtype(b.TimeSlot().End()),
		Status:          b.Status().String(),
		BookedByName:    b.BookedBy().Name(),
		BookedByEmail:   b.BookedBy().Email(),
		Notes:           pgconv.StringPtrToPgtype(b.Notes().Ptr()),
		CancelledReason: pgconv.StringPtrToPgtype(b.CancelledReason()),
		Version:         int32(b.Version()), // #nosec G115 -- versions stay far below MaxInt32
		CreatedAt:       pgconv.TimeToPgtype(b.CreatedAt()),
		UpdatedAt:       pgconv.TimeToPgtype(b.UpdatedAt()),
	}
}

// BookingUpdateToInfra guards the write with the version the change was based on.
func BookingUpdateToInfra(b *booking.Booking, expectedVersion int) sqlc.UpdateBookingParams {
	return sqlc.UpdateBookingParams{
		StartAt:         pgconv.TimeToPgtype(b.TimeSlot().Start()),
		EndAt:           pgconv.TimeToPgtype(b.TimeSlot().End()),
		Status:          b.Status().String(),
		Notes:           pgconv.StringPtrToPgtype(b.Notes().Ptr()),
		CancelledReason: pgconv.StringPtrToPgtype(b.CancelledReason()),
		Version:         int32(b.Version()),     // #nosec G115
		UpdatedAt:       pgconv.TimeToPgtype(b.UpdatedAt()),
		ID:              b.ID(),
		ExpectedVersion: int32(expectedVersion), // #nosec G115
	}
}

func BookingFromRow(row sqlc.Bookings) *booking.Booking {
	return booking.ReconstructBooking(
		row.ID,
		row.TenantID,
		pgconv.UUIDPtrFromPgtype(row.HoldID),
		row.ResourceIds,
		booking.ReconstructTimeSlot(row.StartAt.Time, row.EndAt.Time),
		booking.Status(row.Status),
		booking.ReconstructContact(row.BookedByName, row.BookedByEmail),
		booking.ReconstructNote(pgconv.StringPtrFromPgtype(row.Notes)),
		pgconv.StringPtrFromPgtype(row.CancelledReason),
		int(row.Version),
		pgconv.TimeFromPgtype(row.CreatedAt),
		pgconv.TimeFromPgtype(row.UpdatedAt),
	)
}

func AllocationToInfra(tenantID uuid.UUID, a booking.Allocation) sqlc.InsertAllocationParams {
	return sqlc.InsertAllocationParams{
		TenantID:   tenantID,
		ResourceID: a.ResourceID,
		OwnerKind:  a.Kind.String(),
		OwnerID:    a.OwnerID,
		StartAt:    pgconv.TimeToPgtype(a.Slot.Start()),
		EndAt:      pgconv.TimeToPgtype(a.Slot.End()),
		ExpiresAt:  pgconv.TimePtrToPgtype(a.ExpiresAt),
	}
}

func AllocationFromRow(row sqlc.ListOccupiedRow) booking.Allocation {
	return booking.Allocation{
		ResourceID: row.ResourceID,
		Slot:       booking.ReconstructTimeSlot(row.StartAt.Time, row.EndAt.Time),
		Kind:       booking.AllocationKind(row.OwnerKind),
		OwnerID:    row.OwnerID,
		ExpiresAt:  pgconv.TimePtrFromPgtype(row.ExpiresAt),
	}
}
