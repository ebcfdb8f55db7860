package infra

import (
	"errors"

	"booking-core/internal/pkg/errs"
	"booking-core/internal/pkg/pgconv"
	"booking-core/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgconn"
)

type RepositoryErrorKind string

type RepositoryError struct {
	Kind RepositoryErrorKind
	msg  string
	err  error // wrapped low-level error
}

func (e RepositoryError) Error() string {
	if e.err != nil {
		return string(e.Kind) + ": " + e.msg + ": " + e.err.Error()
	}
	return string(e.Kind) + ": " + e.msg
}

func (e RepositoryError) Unwrap() error {
	return e.err
}

// Infrastructure-specific error kinds
const (
	KindNotFound           RepositoryErrorKind = "NOT_FOUND"
	KindDBFailure          RepositoryErrorKind = "DB_FAILURE"
	KindDuplicateKey       RepositoryErrorKind = "DUPLICATE_KEY"
	KindForeignKeyViolated RepositoryErrorKind = "FOREIGN_KEY_VIOLATED"
	KindConflict           RepositoryErrorKind = "CONFLICT"
	KindTransient          RepositoryErrorKind = "TRANSIENT"
)

const (
	pgErrCodeUniqueViolation      = "23505"
	pgErrCodeForeignKeyViolation  = "23503"
	pgErrCodeExclusionViolation   = "23P01"
	pgErrCodeSerializationFailure = "40001"
	pgErrCodeDeadlockDetected     = "40P01"
)

// WrapRepoErr wraps err as a RepositoryError. Without an explicit kind the kind is derived
// from the Postgres error code. The matching port error is marked on the result so callers
// above infra can test for it with errors.Is.
func WrapRepoErr(msg string, err error, kind ...RepositoryErrorKind) error {
	k := ClassifyKind(err)
	if len(kind) > 0 {
		k = kind[0]
	}

	var wrapped error = RepositoryError{Kind: k, msg: msg, err: errs.Wrap(err, msg)}
	switch k {
	case KindNotFound:
		wrapped = errs.Mark(wrapped, shared.ErrRecordNotFound)
	case KindConflict:
		wrapped = errs.Mark(wrapped, shared.ErrAllocationConflict)
	case KindDuplicateKey:
		wrapped = errs.Mark(wrapped, shared.ErrDuplicateRecord)
	}
	return wrapped
}

func ClassifyKind(err error) RepositoryErrorKind {
	if pgconv.IsNoRows(err) {
		return KindNotFound
	}
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return KindDBFailure
	}
	switch pgErr.Code {
	case pgErrCodeUniqueViolation:
		return KindDuplicateKey
	case pgErrCodeForeignKeyViolation:
		return KindForeignKeyViolated
	case pgErrCodeExclusionViolation:
		return KindConflict
	case pgErrCodeSerializationFailure, pgErrCodeDeadlockDetected:
		return KindTransient
	default:
		return KindDBFailure
	}
}

// IsRetryable reports whether err is a serialization failure or deadlock worth retrying.
func IsRetryable(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgErrCodeSerializationFailure || pgErr.Code == pgErrCodeDeadlockDetected
	}
	return IsKind(err, KindTransient)
}

func IsKind(err error, kind RepositoryErrorKind) bool {
	var e RepositoryError
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}
