package shared

import (
	"context"
	"time"

	"github.com/google/uuid"
)

const (
	IdempotencyProcessing = "processing"
	IdempotencyCompleted  = "completed"
)

type IdempotencyRecord struct {
	TenantID    uuid.UUID
	Key         string
	Endpoint    string
	RequestHash string
	Status      string
	ResultID    *uuid.UUID
	ExpiresAt   time.Time
}

type IdempotencyStore interface {
	// Begin claims (tenant, key, endpoint) for rec. When another live record holds the
	// claim it is returned and nothing is written.
	Begin(ctx context.Context, rec IdempotencyRecord) (*IdempotencyRecord, error)
	Complete(ctx context.Context, tenantID uuid.UUID, key, endpoint string, resultID uuid.UUID) error
	// Abandon drops a processing claim so the request can be retried.
	Abandon(ctx context.Context, tenantID uuid.UUID, key, endpoint string) error
}
