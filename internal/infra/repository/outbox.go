package repository

import (
	"context"
	"log/slog"

	"booking-core/internal/infra"
	sqlc "booking-core/internal/infra/sqlc/generated"
	"booking-core/internal/pkg/clock"
	"booking-core/internal/pkg/pgconv"
	"booking-core/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type OutboxQueries interface {
	InsertOutboxEvent(ctx context.Context, db sqlc.DBTX, arg sqlc.InsertOutboxEventParams) error
	ClaimOutboxEvents(ctx context.Context, db sqlc.DBTX, limit int32) ([]sqlc.ClaimOutboxEventsRow, error)
	MarkOutboxEventsPublished(ctx context.Context, db sqlc.DBTX, arg sqlc.MarkOutboxEventsPublishedParams) error
}

type OutboxRepository struct {
	queries OutboxQueries
	db      sqlc.DBTX
}

func NewOutboxRepository(queries *sqlc.Queries, db sqlc.DBTX) *OutboxRepository {
	return &OutboxRepository{
		queries: queries,
		db:      db,
	}
}

func (r *OutboxRepository) Append(ctx context.Context, msgs ...shared.OutboxMessage) error {
	for _, m := range msgs {
		err := r.queries.InsertOutboxEvent(ctx, r.db, sqlc.InsertOutboxEventParams{
			ID:          m.ID,
			EventType:   m.Type,
			TenantID:    m.TenantID,
			AggregateID: m.AggregateID,
			Payload:     m.Payload,
			OccurredAt:  pgconv.TimeToPgtype(m.OccurredAt),
		})
		if err != nil {
			return infra.WrapRepoErr("failed to append outbox event", err)
		}
	}
	return nil
}

// OutboxRelay drains outbox_events in seq order. Rows are claimed with SKIP LOCKED, so
// concurrent relays split the backlog instead of publishing twice.
type OutboxRelay struct {
	queries OutboxQueries
	db      Beginner
	clock   clock.Clock
}

var _ shared.OutboxStore = (*OutboxRelay)(nil)

func NewOutboxRelay(queries *sqlc.Queries, db Beginner, clk clock.Clock) *OutboxRelay {
	return &OutboxRelay{
		queries: queries,
		db:      db,
		clock:   clk,
	}
}

func (r *OutboxRelay) RelayBatch(ctx context.Context, limit int, publish func(ctx context.Context, msg shared.OutboxMessage) error) (int, error) {
	var (
		sent       int
		published  int
		publishErr error
	)
	err := pgx.BeginFunc(ctx, r.db, func(tx pgx.Tx) error {
		rows, err := r.queries.ClaimOutboxEvents(ctx, tx, int32(limit)) // #nosec G115
		if err != nil {
			return infra.WrapRepoErr("failed to claim outbox events", err)
		}

		ids := make([]uuid.UUID, 0, len(rows))
		for _, row := range rows {
			msg := shared.OutboxMessage{
				ID:          row.ID,
				Type:        row.EventType,
				TenantID:    row.TenantID,
				AggregateID: row.AggregateID,
				OccurredAt:  pgconv.TimeFromPgtype(row.OccurredAt),
				Payload:     row.Payload,
			}
			if publishErr = publish(ctx, msg); publishErr != nil {
				break
			}
			ids = append(ids, row.ID)
		}
		published = len(ids)
		if len(ids) == 0 {
			return nil
		}

		err = r.queries.MarkOutboxEventsPublished(ctx, tx, sqlc.MarkOutboxEventsPublishedParams{
			PublishedAt: pgconv.TimeToPgtype(r.clock.Now()),
			Ids:         ids,
		})
		if err != nil {
			return infra.WrapRepoErr("failed to mark outbox events published", err)
		}
		sent = len(ids)
		return nil
	})
	if err != nil {
		if published > 0 {
			// the broker already has these; they will be delivered again
			slog.Warn("outbox batch published but not marked", "count", published, "error", err.Error())
		}
		return 0, err
	}
	return sent, publishErr
}
