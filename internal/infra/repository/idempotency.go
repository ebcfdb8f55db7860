package repository

import (
	"context"

	"booking-core/internal/infra"
	sqlc "booking-core/internal/infra/sqlc/generated"
	"booking-core/internal/pkg/clock"
	"booking-core/internal/pkg/errs"
	"booking-core/internal/pkg/pgconv"
	"booking-core/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

// a claim can vanish between the failed insert and the read when its owner abandons it
const idempotencyClaimAttempts = 3

type IdempotencyQueries interface {
	TryInsertIdempotencyKey(ctx context.Context, db sqlc.DBTX, arg sqlc.TryInsertIdempotencyKeyParams) (int64, error)
	GetIdempotencyKey(ctx context.Context, db sqlc.DBTX, arg sqlc.GetIdempotencyKeyParams) (sqlc.IdempotencyKeys, error)
	CompleteIdempotencyKey(ctx context.Context, db sqlc.DBTX, arg sqlc.CompleteIdempotencyKeyParams) (int64, error)
	DeleteProcessingIdempotencyKey(ctx context.Context, db sqlc.DBTX, arg sqlc.DeleteProcessingIdempotencyKeyParams) error
	DeleteExpiredIdempotencyKeys(ctx context.Context, db sqlc.DBTX, expiresAt pgtype.Timestamptz) (int64, error)
}

type IdempotencyRepository struct {
	queries IdempotencyQueries
	db      sqlc.DBTX
	clock   clock.Clock
}

var _ shared.IdempotencyStore = (*IdempotencyRepository)(nil)

func NewIdempotencyRepository(queries *sqlc.Queries, db sqlc.DBTX, clk clock.Clock) *IdempotencyRepository {
	return &IdempotencyRepository{
		queries: queries,
		db:      db,
		clock:   clk,
	}
}

func (r *IdempotencyRepository) Begin(ctx context.Context, rec shared.IdempotencyRecord) (*shared.IdempotencyRecord, error) {
	for range idempotencyClaimAttempts {
		n, err := r.queries.TryInsertIdempotencyKey(ctx, r.db, sqlc.TryInsertIdempotencyKeyParams{
			TenantID:    rec.TenantID,
			Key:         rec.Key,
			Endpoint:    rec.Endpoint,
			RequestHash: rec.RequestHash,
			ExpiresAt:   pgconv.TimeToPgtype(rec.ExpiresAt),
			Now:         pgconv.TimeToPgtype(r.clock.Now()),
		})
		if err != nil {
			return nil, infra.WrapRepoErr("failed to claim idempotency key", err)
		}
		if n == 1 {
			return nil, nil
		}

		row, err := r.queries.GetIdempotencyKey(ctx, r.db, sqlc.GetIdempotencyKeyParams{
			TenantID: rec.TenantID,
			Key:      rec.Key,
			Endpoint: rec.Endpoint,
		})
		if err != nil {
			if pgconv.IsNoRows(err) {
				continue
			}
			return nil, infra.WrapRepoErr("failed to get idempotency key", err)
		}
		return &shared.IdempotencyRecord{
			TenantID:    row.TenantID,
			Key:         row.Key,
			Endpoint:    row.Endpoint,
			RequestHash: row.RequestHash,
			Status:      row.Status,
			ResultID:    pgconv.UUIDPtrFromPgtype(row.ResultID),
			ExpiresAt:   pgconv.TimeFromPgtype(row.ExpiresAt),
		}, nil
	}
	return nil, errs.Mark(errs.Newf("idempotency key %q kept changing hands", rec.Key), shared.ErrStorageUnavailable)
}

func (r *IdempotencyRepository) Complete(ctx context.Context, tenantID uuid.UUID, key, endpoint string, resultID uuid.UUID) error {
	n, err := r.queries.CompleteIdempotencyKey(ctx, r.db, sqlc.CompleteIdempotencyKeyParams{
		ResultID: pgconv.UUIDToPgtype(resultID),
		TenantID: tenantID,
		Key:      key,
		Endpoint: endpoint,
	})
	if err != nil {
		return infra.WrapRepoErr("failed to complete idempotency key", err)
	}
	if n == 0 {
		return infra.WrapRepoErr("idempotency key not found", errs.Newf("key %q", key), infra.KindNotFound)
	}
	return nil
}

func (r *IdempotencyRepository) Abandon(ctx context.Context, tenantID uuid.UUID, key, endpoint string) error {
	err := r.queries.DeleteProcessingIdempotencyKey(ctx, r.db, sqlc.DeleteProcessingIdempotencyKeyParams{
		TenantID: tenantID,
		Key:      key,
		Endpoint: endpoint,
	})
	if err != nil {
		return infra.WrapRepoErr("failed to abandon idempotency key", err)
	}
	return nil
}

// DeleteExpired purges keys past their retention window.
func (r *IdempotencyRepository) DeleteExpired(ctx context.Context) (int64, error) {
	count, err := r.queries.DeleteExpiredIdempotencyKeys(ctx, r.db, pgconv.TimeToPgtype(r.clock.Now()))
	if err != nil {
		return 0, infra.WrapRepoErr("failed to delete expired idempotency keys", err)
	}
	return count, nil
}
