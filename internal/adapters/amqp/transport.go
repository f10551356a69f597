// Package amqp delivers prompts and consumes inbound actor messages over
// RabbitMQ. Outbound prompts are published to a topic exchange keyed by
// "<role>.<chat id>"; inbound messages arrive on a single shared queue.
package amqp

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/example/kwonka/internal/models"
	"github.com/example/kwonka/internal/ports/secondary"
)

const (
	outExchange = "dialogue.out"
	inQueue     = "dialogue.in"
)

// inboundEnvelope is the wire shape of one actor message.
type inboundEnvelope struct {
	Role   string `json:"role"`
	ChatID int64  `json:"chat_id"`
	Text   string `json:"text"`
}

// Transport implements secondary.Transport and secondary.Receiver over a
// RabbitMQ connection.
type Transport struct {
	conn *amqp.Connection
	ch   *amqp.Channel
}

// Dial connects to the broker and declares the exchange and queue.
func Dial(url string) (*Transport, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to broker: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("failed to open channel: %w", err)
	}

	if err := ch.ExchangeDeclare(outExchange, "topic", true, false, false, false, nil); err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, fmt.Errorf("failed to declare exchange: %w", err)
	}
	if _, err := ch.QueueDeclare(inQueue, true, false, false, false, nil); err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, fmt.Errorf("failed to declare queue: %w", err)
	}

	return &Transport{conn: conn, ch: ch}, nil
}

// Close shuts the channel and connection down.
func (t *Transport) Close() {
	if t.ch != nil {
		_ = t.ch.Close()
	}
	if t.conn != nil {
		_ = t.conn.Close()
	}
}

// Send publishes a prompt to the actor's routing key.
func (t *Transport) Send(ctx context.Context, role models.Role, chatID int64, prompt models.Prompt) error {
	body, err := json.Marshal(prompt)
	if err != nil {
		return fmt.Errorf("failed to encode prompt: %w", err)
	}

	key := string(role) + "." + strconv.FormatInt(chatID, 10)
	err = t.ch.PublishWithContext(ctx, outExchange, key, false, false, amqp.Publishing{
		DeliveryMode: amqp.Persistent,
		ContentType:  "application/json",
		Timestamp:    time.Now().UTC(),
		Body:         body,
	})
	if err != nil {
		return fmt.Errorf("failed to publish prompt: %w", err)
	}
	return nil
}

// Receive consumes the inbound queue until ctx is cancelled. Messages that
// do not decode, or carry an unknown role, are rejected without requeue.
func (t *Transport) Receive(ctx context.Context) (<-chan secondary.Inbound, error) {
	if err := t.ch.Qos(16, 0, false); err != nil {
		return nil, fmt.Errorf("failed to set prefetch: %w", err)
	}

	deliveries, err := t.ch.Consume(inQueue, "", false, false, false, false, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to consume: %w", err)
	}

	out := make(chan secondary.Inbound)
	go func() {
		defer close(out)
		for {
			select {
			case <-ctx.Done():
				return
			case d, ok := <-deliveries:
				if !ok {
					return
				}

				var env inboundEnvelope
				if err := json.Unmarshal(d.Body, &env); err != nil {
					_ = d.Reject(false)
					continue
				}
				role := models.Role(env.Role)
				if role != models.RoleCustomer && role != models.RoleBarista && role != models.RoleAdmin {
					_ = d.Reject(false)
					continue
				}

				select {
				case out <- secondary.Inbound{Role: role, ChatID: env.ChatID, Text: env.Text}:
					_ = d.Ack(false)
				case <-ctx.Done():
					_ = d.Reject(true)
					return
				}
			}
		}
	}()

	return out, nil
}
