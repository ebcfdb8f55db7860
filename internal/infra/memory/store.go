// Package memory keeps the ledger, registries and read models in process memory. It backs the
// memory storage driver and the concurrency tests.
package memory

import (
	"hash/fnv"
	"slices"
	"sync"

	"booking-core/internal/domain/booking"
	"booking-core/internal/domain/page"
	"booking-core/internal/domain/resource"
	"booking-core/internal/pkg/clock"
	"booking-core/internal/usecase/shared"

	"github.com/google/uuid"
)

const stripeCount = 256

type resourceKey struct {
	tenantID   uuid.UUID
	resourceID uuid.UUID
}

type idempotencyKey struct {
	tenantID uuid.UUID
	key      string
	endpoint string
}

// Store locks per resource: an operation takes the stripes of the resources it touches in
// ascending order, then the records lock for the brief commit.
type Store struct {
	clock   clock.Clock
	stripes [stripeCount]sync.Mutex

	timelinesMu sync.Mutex
	timelines   map[resourceKey]*timeline

	mu        sync.RWMutex
	holds     map[uuid.UUID]*booking.Hold
	bookings  map[uuid.UUID]*booking.Booking
	resources map[uuid.UUID]*resource.Resource
	pages     map[uuid.UUID]*page.BookingPage
	slugs     map[string]uuid.UUID
	services  map[uuid.UUID]*page.Service

	relayMu  sync.Mutex
	outboxMu sync.Mutex
	outbox   []shared.OutboxMessage

	idempotencyMu sync.Mutex
	idempotency   map[idempotencyKey]shared.IdempotencyRecord
}

func NewStore(clk clock.Clock) *Store {
	return &Store{
		clock:       clk,
		timelines:   make(map[resourceKey]*timeline),
		holds:       make(map[uuid.UUID]*booking.Hold),
		bookings:    make(map[uuid.UUID]*booking.Booking),
		resources:   make(map[uuid.UUID]*resource.Resource),
		pages:       make(map[uuid.UUID]*page.BookingPage),
		slugs:       make(map[string]uuid.UUID),
		services:    make(map[uuid.UUID]*page.Service),
		idempotency: make(map[idempotencyKey]shared.IdempotencyRecord),
	}
}

func stripeOf(tenantID, resourceID uuid.UUID) int {
	h := fnv.New32a()
	_, _ = h.Write(tenantID[:])
	_, _ = h.Write(resourceID[:])
	return int(h.Sum32() % stripeCount)
}

// lockResources locks the stripes covering ids and returns the matching unlock.
func (s *Store) lockResources(tenantID uuid.UUID, ids []uuid.UUID) func() {
	idx := make([]int, 0, len(ids))
	for _, id := range ids {
		idx = append(idx, stripeOf(tenantID, id))
	}
	slices.Sort(idx)
	idx = slices.Compact(idx)
	for _, i := range idx {
		s.stripes[i].Lock()
	}
	return func() {
		for j := len(idx) - 1; j >= 0; j-- {
			s.stripes[idx[j]].Unlock()
		}
	}
}

// timeline must be called with the resource's stripe held.
func (s *Store) timeline(tenantID, resourceID uuid.UUID) *timeline {
	k := resourceKey{tenantID: tenantID, resourceID: resourceID}
	s.timelinesMu.Lock()
	defer s.timelinesMu.Unlock()
	t, ok := s.timelines[k]
	if !ok {
		t = &timeline{}
		s.timelines[k] = t
	}
	return t
}

func outboxMessages(events ...booking.Event) ([]shared.OutboxMessage, error) {
	msgs := make([]shared.OutboxMessage, 0, len(events))
	for _, e := range events {
		m, err := shared.NewOutboxMessage(e)
		if err != nil {
			return nil, err
		}
		msgs = append(msgs, m)
	}
	return msgs, nil
}

func (s *Store) enqueue(msgs []shared.OutboxMessage) {
	s.outboxMu.Lock()
	s.outbox = append(s.outbox, msgs...)
	s.outboxMu.Unlock()
}
