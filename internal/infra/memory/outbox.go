package memory

import (
	"context"

	"booking-core/internal/usecase/shared"
)

var _ shared.OutboxStore = (*Store)(nil)

func (s *Store) RelayBatch(ctx context.Context, limit int, publish func(ctx context.Context, msg shared.OutboxMessage) error) (int, error) {
	s.relayMu.Lock()
	defer s.relayMu.Unlock()

	s.outboxMu.Lock()
	n := min(limit, len(s.outbox))
	batch := make([]shared.OutboxMessage, n)
	copy(batch, s.outbox[:n])
	s.outboxMu.Unlock()

	sent := 0
	var err error
	for _, m := range batch {
		if err = publish(ctx, m); err != nil {
			break
		}
		sent++
	}

	// relays are serialized, so the published messages are still at the head
	s.outboxMu.Lock()
	s.outbox = s.outbox[sent:]
	s.outboxMu.Unlock()
	return sent, err
}

// Pending reports how many events await relay.
func (s *Store) Pending() int {
	s.outboxMu.Lock()
	defer s.outboxMu.Unlock()
	return len(s.outbox)
}
