// Package rabbitmq publishes order lifecycle events to a RabbitMQ broker.
// Events are announcements only; the database transaction that changed the
// order has already committed by the time a message is published.
package rabbitmq

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"dinein/internal/core/domain/model/order"

	amqp "github.com/rabbitmq/amqp091-go"
)

// QueueOrderStatusChanged is the durable queue order status events go to.
const QueueOrderStatusChanged = "order.status.changed"

// orderStatusChangedMessage is the wire format of one status event.
type orderStatusChangedMessage struct {
	OrderID      string    `json:"order_id"`
	OrderTableID string    `json:"order_table_id"`
	Status       string    `json:"status"`
	OccurredAt   time.Time `json:"occurred_at"`
}

// OrderEventPublisher publishes order status events over a shared channel.
type OrderEventPublisher struct {
	conn    *amqp.Connection
	channel *amqp.Channel
	logger  *slog.Logger
	mu      sync.Mutex
}

// NewOrderEventPublisher connects to the broker and declares the durable
// status queue. The returned publisher owns the connection; callers must
// Close it on shutdown.
func NewOrderEventPublisher(url string, logger *slog.Logger) (*OrderEventPublisher, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to RabbitMQ: %w", err)
	}

	channel, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to open channel: %w", err)
	}

	if _, err = channel.QueueDeclare(
		QueueOrderStatusChanged, // name
		true,                    // durable
		false,                   // delete when unused
		false,                   // exclusive
		false,                   // no-wait
		nil,                     // arguments
	); err != nil {
		channel.Close()
		conn.Close()
		return nil, fmt.Errorf("failed to declare queue %s: %w", QueueOrderStatusChanged, err)
	}

	return &OrderEventPublisher{
		conn:    conn,
		channel: channel,
		logger:  logger,
	}, nil
}

// PublishStatusChanged announces that the order reached a new status.
func (p *OrderEventPublisher) PublishStatusChanged(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	body, err := json.Marshal(orderStatusChangedMessage{
		OrderID:      aggregate.ID().String(),
		OrderTableID: aggregate.OrderTableID().String(),
		Status:       aggregate.Status().String(),
		OccurredAt:   time.Now().UTC(),
	})
	if err != nil {
		return fmt.Errorf("failed to encode status event: %w", err)
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	err = p.channel.PublishWithContext(
		ctx,
		"",                      // exchange
		QueueOrderStatusChanged, // routing key
		false,                   // mandatory
		false,                   // immediate
		amqp.Publishing{
			DeliveryMode: amqp.Persistent,
			ContentType:  "application/json",
			Body:         body,
			Timestamp:    time.Now(),
		},
	)
	if err != nil {
		return fmt.Errorf("failed to publish status event: %w", err)
	}

	p.logger.Info("order status event published",
		"order_id", aggregate.ID().String(),
		"status", aggregate.Status().String(),
	)
	return nil
}

// Close releases the channel and the underlying connection.
func (p *OrderEventPublisher) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.channel != nil {
		if err := p.channel.Close(); err != nil {
			return fmt.Errorf("failed to close channel: %w", err)
		}
		p.channel = nil
	}

	if p.conn != nil {
		if err := p.conn.Close(); err != nil {
			return fmt.Errorf("failed to close connection: %w", err)
		}
		p.conn = nil
	}

	return nil
}
