package shared

import (
	"context"
	"encoding/json"
	"time"

	"booking-core/internal/domain/booking"

	"github.com/google/uuid"
)

type OutboxMessage struct {
	ID          uuid.UUID       `json:"id"`
	Type        string          `json:"type"`
	TenantID    uuid.UUID       `json:"tenantId"`
	AggregateID uuid.UUID       `json:"aggregateId"`
	OccurredAt  time.Time       `json:"occurredAt"`
	Payload     json.RawMessage `json:"payload"`
}

func NewOutboxMessage(e booking.Event) (OutboxMessage, error) {
	payload, err := json.Marshal(e.Payload)
	if err != nil {
		return OutboxMessage{}, err
	}
	return OutboxMessage{
		ID:          e.ID,
		Type:        e.Type.String(),
		TenantID:    e.TenantID,
		AggregateID: e.AggregateID,
		OccurredAt:  e.OccurredAt,
		Payload:     payload,
	}, nil
}

type OutboxStore interface {
	// RelayBatch hands up to limit unpublished messages to publish in commit order and
	// marks the ones it accepted. It stops at the first publish error.
	RelayBatch(ctx context.Context, limit int, publish func(ctx context.Context, msg OutboxMessage) error) (int, error)
}

type EventPublisher interface {
	Publish(ctx context.Context, msg OutboxMessage) error
}
