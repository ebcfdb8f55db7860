package commands

import (
	"booking-core/internal/domain/availability"
	"booking-core/internal/domain/booking"
	"booking-core/internal/domain/page"
	"booking-core/internal/domain/resource"
	"booking-core/internal/pkg/errs"
	"booking-core/internal/usecase/queries"
	"booking-core/internal/usecase/shared"
)

var (
	ErrValidation              = errs.New("validation failed")
	ErrResourceUnavailable     = errs.New("resource unavailable")
	ErrHoldExpired             = errs.New("hold expired")
	ErrHoldAlreadyConsumed     = errs.New("hold already consumed")
	ErrHoldNotFound            = errs.New("hold not found")
	ErrBookingNotFound         = errs.New("booking not found")
	ErrBookingNotReschedulable = errs.New("booking not reschedulable")
	ErrAlreadyCancelled        = errs.New("booking already cancelled")
	ErrNotFound                = errs.New("not found")
	ErrAlreadyExists           = errs.New("already exists")
	ErrIdempotencyConflict     = errs.New("idempotency conflict")
	ErrServiceUnavailable      = errs.New("service unavailable")
)

var validationErrors = []error{
	booking.ErrInvalidTimeSlot,
	booking.ErrInvalidEmail,
	booking.ErrInvalidName,
	booking.ErrNoteTooLong,
	booking.ErrNoResources,
	booking.ErrDuplicateResource,
	booking.ErrInvalidTTL,
	resource.ErrEmptyResourceName,
	resource.ErrResourceNameTooLong,
	resource.ErrInvalidCapacity,
	resource.ErrInvalidType,
	page.ErrInvalidSlug,
	page.ErrEmptyTitle,
	page.ErrInvalidTimezone,
	page.ErrEmptyName,
	page.ErrInvalidDuration,
	page.ErrNoResources,
	availability.ErrInvalidClockTime,
	availability.ErrInvalidWindow,
	availability.ErrInvalidWeekday,
	queries.ErrInvalidQuery,
}

// classify marks err with the usecase error a caller can act on. notFound is the
// error reported when the addressed record does not exist.
func classify(err error, notFound error) error {
	switch {
	case err == nil:
		return nil
	case errs.Is(err, booking.ErrHoldExpired):
		return errs.Mark(err, ErrHoldExpired)
	case errs.Is(err, booking.ErrHoldAlreadyConsumed):
		return errs.Mark(err, ErrHoldAlreadyConsumed)
	case errs.Is(err, booking.ErrBookingNotReschedulable):
		return errs.Mark(err, ErrBookingNotReschedulable)
	case errs.Is(err, booking.ErrAlreadyCancelled):
		return errs.Mark(err, ErrAlreadyCancelled)
	case errs.Is(err, shared.ErrAllocationConflict):
		return errs.Mark(err, ErrResourceUnavailable)
	case errs.Is(err, shared.ErrRecordNotFound), errs.Is(err, queries.ErrNotFound):
		return errs.Mark(err, notFound)
	case errs.Is(err, shared.ErrDuplicateRecord):
		return errs.Mark(err, ErrAlreadyExists)
	case errs.Is(err, shared.ErrStorageUnavailable):
		return errs.Mark(err, ErrServiceUnavailable)
	}
	for _, v := range validationErrors {
		if errs.Is(err, v) {
			return errs.Mark(err, ErrValidation)
		}
	}
	return err
}

func validation(err error) error {
	return errs.Mark(err, ErrValidation)
}
