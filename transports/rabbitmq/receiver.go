// Package rabbitmq binds the TaskReceiver capability to a RabbitMQ broker.
// Send publishes to a declared queue and Receive polls one delivery; both
// swallow transport errors into the logger, since the TaskReceiver contract
// treats them as always succeeding.
package rabbitmq

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/taskline/taskline-go/queueing"
)

const defaultQueueName = "taskline"

// Receiver is an AMQP-backed TaskReceiver
type Receiver struct {
	conn        *amqp.Connection
	channel     *amqp.Channel
	queue       string
	logger      *slog.Logger
	sendTimeout time.Duration
}

var _ queueing.TaskReceiver = (*Receiver)(nil)

// ReceiverOption configures the receiver
type ReceiverOption func(*Receiver)

// WithQueueName sets the broker queue to declare and use
func WithQueueName(name string) ReceiverOption {
	return func(r *Receiver) {
		r.queue = name
	}
}

// WithLogger sets the logger
func WithLogger(logger *slog.Logger) ReceiverOption {
	return func(r *Receiver) {
		r.logger = logger
	}
}

// WithSendTimeout sets the per-publish timeout
func WithSendTimeout(timeout time.Duration) ReceiverOption {
	return func(r *Receiver) {
		r.sendTimeout = timeout
	}
}

func newReceiver(options ...ReceiverOption) *Receiver {
	r := &Receiver{
		queue:       defaultQueueName,
		logger:      slog.Default(),
		sendTimeout: 5 * time.Second,
	}
	for _, opt := range options {
		opt(r)
	}
	return r
}

// Dial connects to the broker, opens a channel, and declares the queue
func Dial(url string, options ...ReceiverOption) (*Receiver, error) {
	r := newReceiver(options...)

	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to broker: %w", err)
	}

	channel, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to create channel: %w", err)
	}

	_, err = channel.QueueDeclare(
		r.queue,
		true,  // durable
		false, // auto-delete
		false, // exclusive
		false, // no-wait
		nil,
	)
	if err != nil {
		channel.Close()
		conn.Close()
		return nil, fmt.Errorf("failed to declare queue %s: %w", r.queue, err)
	}

	r.conn = conn
	r.channel = channel
	return r, nil
}

// Send publishes the message to the declared queue
func (r *Receiver) Send(message string) {
	ctx, cancel := context.WithTimeout(context.Background(), r.sendTimeout)
	defer cancel()

	err := r.channel.PublishWithContext(
		ctx,
		"",      // default exchange
		r.queue, // routing key
		false,   // mandatory
		false,   // immediate
		publishing(message),
	)
	if err != nil {
		r.logger.Error("failed to publish message", "queue", r.queue, "error", err)
		return
	}
	r.logger.Debug("message published", "queue", r.queue)
}

// Receive polls one delivery from the queue and logs it
func (r *Receiver) Receive() {
	delivery, ok, err := r.channel.Get(r.queue, true)
	if err != nil {
		r.logger.Error("failed to poll queue", "queue", r.queue, "error", err)
		return
	}
	if !ok {
		r.logger.Debug("no message ready", "queue", r.queue)
		return
	}
	r.logger.Info("message received", "queue", r.queue, "body", string(delivery.Body))
}

// Close releases the channel and connection
func (r *Receiver) Close() error {
	if r.channel != nil {
		if err := r.channel.Close(); err != nil {
			return fmt.Errorf("failed to close channel: %w", err)
		}
	}
	if r.conn != nil {
		if err := r.conn.Close(); err != nil {
			return fmt.Errorf("failed to close connection: %w", err)
		}
	}
	return nil
}

func publishing(message string) amqp.Publishing {
	return amqp.Publishing{
		ContentType:  "text/plain",
		Body:         []byte(message),
		DeliveryMode: amqp.Persistent,
		Timestamp:    time.Now().UTC(),
	}
}
