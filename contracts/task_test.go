package contracts

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewTask(t *testing.T) {
	t.Run("generates ID and timestamp", func(t *testing.T) {
		before := time.Now().UTC()
		task := NewTask("resize-image")
		after := time.Now().UTC()

		assert.NotEmpty(t, task.ID)
		assert.Equal(t, "resize-image", task.Payload)
		assert.False(t, task.CreatedAt.Before(before))
		assert.False(t, task.CreatedAt.After(after))
	})

	t.Run("generates unique IDs", func(t *testing.T) {
		t1 := NewTask("a")
		t2 := NewTask("a")
		assert.NotEqual(t, t1.ID, t2.ID)
	})

	t.Run("tasks are independent copies", func(t *testing.T) {
		original := NewTask("a")
		copied := original
		copied.Payload = "b"
		assert.Equal(t, "a", original.Payload)
	})
}

func TestBuildError(t *testing.T) {
	t.Run("names the missing field", func(t *testing.T) {
		err := NewBuildError("rate limiter")
		assert.EqualError(t, err, "incomplete configuration: rate limiter not set")
	})

	t.Run("matches ErrIncompleteConfiguration", func(t *testing.T) {
		err := NewBuildError("task receiver")
		assert.True(t, errors.Is(err, ErrIncompleteConfiguration))
	})

	t.Run("does not match ErrBuilderConsumed", func(t *testing.T) {
		err := NewBuildError("task receiver")
		assert.False(t, errors.Is(err, ErrBuilderConsumed))
	})
}
