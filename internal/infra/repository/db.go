package repository

import (
	"context"

	sqlc "booking-core/internal/infra/sqlc/generated"

	"github.com/jackc/pgx/v5"
)

// Beginner is a DBTX that can open a (sub)transaction. Both *pgxpool.Pool and pgx.Tx qualify.
type Beginner interface {
	sqlc.DBTX
	Begin(ctx context.Context) (pgx.Tx, error)
}
