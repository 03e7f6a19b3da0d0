package rabbitmq

import (
	"log/slog"
	"testing"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/assert"
)

func TestReceiverOptions(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		r := newReceiver()
		assert.Equal(t, defaultQueueName, r.queue)
		assert.Equal(t, 5*time.Second, r.sendTimeout)
		assert.NotNil(t, r.logger)
	})

	t.Run("applies options", func(t *testing.T) {
		logger := slog.Default()
		r := newReceiver(
			WithQueueName("orders"),
			WithSendTimeout(time.Second),
			WithLogger(logger),
		)
		assert.Equal(t, "orders", r.queue)
		assert.Equal(t, time.Second, r.sendTimeout)
		assert.Equal(t, logger, r.logger)
	})
}

func TestPublishing(t *testing.T) {
	msg := publishing("task abc enqueued")

	assert.Equal(t, "text/plain", msg.ContentType)
	assert.Equal(t, []byte("task abc enqueued"), msg.Body)
	assert.Equal(t, uint8(amqp.Persistent), msg.DeliveryMode)
	assert.False(t, msg.Timestamp.IsZero())
}

func TestCloseWithoutConnection(t *testing.T) {
	// A receiver that never dialed closes cleanly.
	r := newReceiver()
	assert.NoError(t, r.Close())
}
