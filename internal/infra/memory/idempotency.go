package memory

import (
	"context"

	"booking-core/internal/pkg/errs"
	"booking-core/internal/usecase/shared"

	"github.com/google/uuid"
)

var _ shared.IdempotencyStore = (*Store)(nil)

func (s *Store) Begin(_ context.Context, rec shared.IdempotencyRecord) (*shared.IdempotencyRecord, error) {
	k := idempotencyKey{tenantID: rec.TenantID, key: rec.Key, endpoint: rec.Endpoint}
	s.idempotencyMu.Lock()
	defer s.idempotencyMu.Unlock()
	if existing, ok := s.idempotency[k]; ok && s.clock.Now().Before(existing.ExpiresAt) {
		return &existing, nil
	}
	s.idempotency[k] = rec
	return nil, nil
}

func (s *Store) Complete(_ context.Context, tenantID uuid.UUID, key, endpoint string, resultID uuid.UUID) error {
	k := idempotencyKey{tenantID: tenantID, key: key, endpoint: endpoint}
	s.idempotencyMu.Lock()
	defer s.idempotencyMu.Unlock()
	rec, ok := s.idempotency[k]
	if !ok {
		return errs.Wrapf(shared.ErrRecordNotFound, "idempotency key %q", key)
	}
	rec.Status = shared.IdempotencyCompleted
	rec.ResultID = &resultID
	s.idempotency[k] = rec
	return nil
}

func (s *Store) Abandon(_ context.Context, tenantID uuid.UUID, key, endpoint string) error {
	k := idempotencyKey{tenantID: tenantID, key: key, endpoint: endpoint}
	s.idempotencyMu.Lock()
	defer s.idempotencyMu.Unlock()
	if rec, ok := s.idempotency[k]; ok && rec.Status == shared.IdempotencyProcessing {
		delete(s.idempotency, k)
	}
	return nil
}

func (s *Store) DeleteExpired(_ context.Context) (int64, error) {
	now := s.clock.Now()
	s.idempotencyMu.Lock()
	defer s.idempotencyMu.Unlock()
	var n int64
	for k, rec := range s.idempotency {
		if !now.Before(rec.ExpiresAt) {
			delete(s.idempotency, k)
			n++
		}
	}
	return n, nil
}
