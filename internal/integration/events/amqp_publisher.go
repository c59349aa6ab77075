// Package events forwards document change events to external consumers.
package events

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/rabbitmq/amqp091-go"

	"github.com/budgetbook/backend/internal/application/adapter"
	"github.com/budgetbook/backend/internal/domain/document"
)

// changeMessage is the wire shape of one change event.
type changeMessage struct {
	Kind   string `json:"kind"`
	Action string `json:"action"`
	ID     string `json:"id,omitempty"`
}

// AMQPPublisher implements adapter.EventPublisher on a RabbitMQ topic
// exchange. Routing keys are "<kind>.<action>".
type AMQPPublisher struct {
	conn     *amqp091.Connection
	channel  *amqp091.Channel
	exchange string
}

// NewAMQPPublisher connects to the broker and declares the exchange.
func NewAMQPPublisher(url, exchange string) (*AMQPPublisher, error) {
	conn, err := amqp091.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("dial AMQP: %w", err)
	}

	channel, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("open channel: %w", err)
	}

	err = channel.ExchangeDeclare(
		exchange, // name
		"topic",  // type
		true,     // durable
		false,    // auto-deleted
		false,    // internal
		false,    // no-wait
		nil,      // arguments
	)
	if err != nil {
		channel.Close()
		conn.Close()
		return nil, fmt.Errorf("declare exchange: %w", err)
	}

	return &AMQPPublisher{
		conn:     conn,
		channel:  channel,
		exchange: exchange,
	}, nil
}

// Publish delivers one change event.
func (p *AMQPPublisher) Publish(ctx context.Context, event document.ChangeEvent) error {
	message := changeMessage{
		Kind:   string(event.Kind),
		Action: string(event.Action),
	}
	if event.ID != uuid.Nil {
		message.ID = event.ID.String()
	}
	body, err := json.Marshal(message)
	if err != nil {
		return fmt.Errorf("marshal change event: %w", err)
	}

	routingKey := fmt.Sprintf("%s.%s", event.Kind, event.Action)
	err = p.channel.PublishWithContext(ctx,
		p.exchange, // exchange
		routingKey, // routing key
		false,      // mandatory
		false,      // immediate
		amqp091.Publishing{
			ContentType:  "application/json",
			Body:         body,
			DeliveryMode: amqp091.Persistent,
			Timestamp:    time.Now(),
		},
	)
	if err != nil {
		return fmt.Errorf("publish change event: %w", err)
	}
	return nil
}

// Close releases the channel and connection.
func (p *AMQPPublisher) Close() error {
	if err := p.channel.Close(); err != nil {
		return err
	}
	return p.conn.Close()
}

// Forward drains document change events into the publisher until the
// context is canceled or the channel closes. Publish failures are logged
// and skipped: the broker is an observer, never a dependency of the engine.
func Forward(ctx context.Context, events <-chan document.ChangeEvent, publisher adapter.EventPublisher, logger *slog.Logger) {
	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-events:
			if !ok {
				return
			}
			if err := publisher.Publish(ctx, event); err != nil {
				logger.Warn("failed to publish change event",
					slog.String("kind", string(event.Kind)),
					slog.String("action", string(event.Action)),
					slog.String("error", err.Error()),
				)
			}
		}
	}
}
