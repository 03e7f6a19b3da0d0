package queueing

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogReceiver(t *testing.T) {
	t.Run("send and receive write to the logger", func(t *testing.T) {
		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		r := NewLogReceiver(logger)

		r.Send("task enqueued")
		r.Receive()

		out := buf.String()
		assert.Contains(t, out, "message sent")
		assert.Contains(t, out, "task enqueued")
		assert.Contains(t, out, "receive polled")
	})

	t.Run("nil logger falls back to default", func(t *testing.T) {
		r := NewLogReceiver(nil)
		assert.NotNil(t, r.logger)
	})
}

func TestBufferReceiver(t *testing.T) {
	t.Run("receive drains oldest first", func(t *testing.T) {
		r := NewBufferReceiver()
		r.Send("first")
		r.Send("second")

		r.Receive()
		require.Len(t, r.Delivered(), 1)
		assert.Equal(t, "first", r.Delivered()[0])
		require.Len(t, r.Pending(), 1)
		assert.Equal(t, "second", r.Pending()[0])
	})

	t.Run("receive on empty buffer is a no-op", func(t *testing.T) {
		r := NewBufferReceiver()
		r.Receive()
		assert.Empty(t, r.Delivered())
	})
}
