//go:build unit

package infra_test

import (
	"errors"
	"fmt"
	"testing"

	"booking-core/internal/infra"
	"booking-core/internal/pkg/errs"
	"booking-core/internal/usecase/shared"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestClassifyKind(t *testing.T) {
	testCases := []struct {
		name string
		err  error
		want infra.RepositoryErrorKind
	}{
		{name: "no rows", err: pgx.ErrNoRows, want: infra.KindNotFound},
		{name: "wrapped no rows", err: fmt.Errorf("scan: %w", pgx.ErrNoRows), want: infra.KindNotFound},
		{name: "unique violation", err: &pgconn.PgError{Code: "23505"}, want: infra.KindDuplicateKey},
		{name: "foreign key violation", err: &pgconn.PgError{Code: "23503"}, want: infra.KindForeignKeyViolated},
		{name: "exclusion violation", err: &pgconn.PgError{Code: "23P01"}, want: infra.KindConflict},
		{name: "serialization failure", err: &pgconn.PgError{Code: "40001"}, want: infra.KindTransient},
		{name: "deadlock", err: &pgconn.PgError{Code: "40P01"}, want: infra.KindTransient},
		{name: "other postgres error", err: &pgconn.PgError{Code: "42P01"}, want: infra.KindDBFailure},
		{name: "plain error", err: errors.New("connection reset"), want: infra.KindDBFailure},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, infra.ClassifyKind(tc.err))
		})
	}
}

func TestWrapRepoErr(t *testing.T) {
	t.Run("exclusion violation surfaces as an allocation conflict", func(t *testing.T) {
		err := infra.WrapRepoErr("failed to insert allocation", &pgconn.PgError{Code: "23P01"})
		assert.True(t, infra.IsKind(err, infra.KindConflict))
		assert.True(t, errs.Is(err, shared.ErrAllocationConflict))
		assert.False(t, errs.Is(err, shared.ErrRecordNotFound))
	})

	t.Run("explicit kind wins over the postgres code", func(t *testing.T) {
		err := infra.WrapRepoErr("hold not found", errors.New("zero rows updated"), infra.KindNotFound)
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
		assert.True(t, errs.Is(err, shared.ErrRecordNotFound))
	})

	t.Run("duplicate key", func(t *testing.T) {
		err := infra.WrapRepoErr("failed to create page", &pgconn.PgError{Code: "23505"})
		assert.True(t, errs.Is(err, shared.ErrDuplicateRecord))
		assert.Contains(t, err.Error(), "DUPLICATE_KEY: failed to create page")
	})

	t.Run("the driver error stays reachable", func(t *testing.T) {
		pgErr := &pgconn.PgError{Code: "40001"}
		err := infra.WrapRepoErr("failed to consume hold", pgErr)
		var got *pgconn.PgError
		assert.True(t, errors.As(err, &got))
		assert.True(t, infra.IsRetryable(err))
	})
}

func TestIsRetryable(t *testing.T) {
	assert.True(t, infra.IsRetryable(&pgconn.PgError{Code: "40P01"}))
	assert.False(t, infra.IsRetryable(&pgconn.PgError{Code: "23505"}))
	assert.False(t, infra.IsRetryable(errors.New("boom")))
	assert.True(t, infra.IsRetryable(infra.WrapRepoErr("retry", errors.New("boom"), infra.KindTransient)))
}
