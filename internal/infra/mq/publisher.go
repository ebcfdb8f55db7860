// Package mq delivers relayed outbox events to RabbitMQ.
package mq

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"booking-core/internal/pkg/errs"
	"booking-core/internal/usecase/shared"

	amqp "github.com/rabbitmq/amqp091-go"
	"go.opentelemetry.io/otel"
)

var errNotAcked = errs.New("broker did not ack message")

// Publisher sends each event to a topic exchange keyed by its type ("hold.created",
// "booking.cancelled", ...) and waits for the broker confirm before returning.
type Publisher struct {
	mu       sync.Mutex
	conn     *amqp.Connection
	ch       *amqp.Channel
	exchange string
}

var _ shared.EventPublisher = (*Publisher)(nil)

func NewPublisher(url, exchange string) (*Publisher, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("dial rabbitmq: %w", err)
	}
	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("open channel: %w", err)
	}
	if err := ch.ExchangeDeclare(exchange, "topic", true, false, false, false, nil); err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, fmt.Errorf("declare exchange: %w", err)
	}
	if err := ch.Confirm(false); err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, fmt.Errorf("enable publisher confirms: %w", err)
	}
	return &Publisher{conn: conn, ch: ch, exchange: exchange}, nil
}

func (p *Publisher) Publish(ctx context.Context, msg shared.OutboxMessage) error {
	headers := amqp.Table{"tenant_id": msg.TenantID.String()}
	otel.GetTextMapPropagator().Inject(ctx, tableCarrier(headers))

	// a channel is not safe for concurrent publishes
	p.mu.Lock()
	defer p.mu.Unlock()

	confirm, err := p.ch.PublishWithDeferredConfirmWithContext(ctx, p.exchange, msg.Type, false, false, amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		MessageId:    msg.ID.String(),
		Timestamp:    msg.OccurredAt,
		Type:         msg.Type,
		Headers:      headers,
		Body:         msg.Payload,
	})
	if err != nil {
		return errs.Wrapf(err, "publish %s", msg.Type)
	}
	acked, err := confirm.WaitContext(ctx)
	if err != nil {
		return errs.Wrapf(err, "await confirm for %s", msg.ID)
	}
	if !acked {
		return errs.Wrapf(errNotAcked, "event %s", msg.ID)
	}
	return nil
}

func (p *Publisher) Close() error {
	if p.ch != nil {
		_ = p.ch.Close()
	}
	if p.conn != nil {
		return p.conn.Close()
	}
	return nil
}

// LogPublisher stands in when no broker is configured.
type LogPublisher struct{}

var _ shared.EventPublisher = LogPublisher{}

func (LogPublisher) Publish(ctx context.Context, msg shared.OutboxMessage) error {
	slog.InfoContext(ctx, "domain event",
		"event_id", msg.ID.String(),
		"type", msg.Type,
		"tenant_id", msg.TenantID.String(),
		"aggregate_id", msg.AggregateID.String(),
		"occurred_at", msg.OccurredAt)
	return nil
}

// tableCarrier adapts amqp headers to the otel propagation carrier.
type tableCarrier amqp.Table

func (c tableCarrier) Get(key string) string {
	v, _ := c[key].(string)
	return v
}

func (c tableCarrier) Set(key, value string) {
	c[key] = value
}

func (c tableCarrier) Keys() []string {
	keys := make([]string, 0, len(c))
	for k := range c {
		keys = append(keys, k)
	}
	return keys
}
