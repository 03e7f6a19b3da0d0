package ratelimit

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestUnlimited(t *testing.T) {
	var rl RateLimiter = Unlimited{}
	for i := 0; i < 100; i++ {
		assert.True(t, rl.Allow())
	}
}

func TestTokenBucket(t *testing.T) {
	t.Run("starts full and drains", func(t *testing.T) {
		b := NewTokenBucket(3, time.Second)
		assert.True(t, b.Allow())
		assert.True(t, b.Allow())
		assert.True(t, b.Allow())
		assert.False(t, b.Allow())
	})

	t.Run("restores one token per interval", func(t *testing.T) {
		clock := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
		b := NewTokenBucket(2, time.Second)
		b.now = func() time.Time { return clock }
		b.last = clock

		assert.True(t, b.Allow())
		assert.True(t, b.Allow())
		assert.False(t, b.Allow())

		clock = clock.Add(time.Second)
		assert.True(t, b.Allow())
		assert.False(t, b.Allow())
	})

	t.Run("refill is capped at capacity", func(t *testing.T) {
		clock := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
		b := NewTokenBucket(2, time.Second)
		b.now = func() time.Time { return clock }
		b.last = clock

		clock = clock.Add(time.Hour)
		assert.True(t, b.Allow())
		assert.True(t, b.Allow())
		assert.False(t, b.Allow())
	})

	t.Run("capacity below one is clamped", func(t *testing.T) {
		b := NewTokenBucket(0, time.Second)
		assert.Equal(t, 1, b.Tokens())
	})

	t.Run("denial does not consume future tokens", func(t *testing.T) {
		clock := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
		b := NewTokenBucket(1, time.Second)
		b.now = func() time.Time { return clock }
		b.last = clock

		assert.True(t, b.Allow())
		assert.False(t, b.Allow())
		assert.False(t, b.Allow())

		clock = clock.Add(time.Second)
		assert.True(t, b.Allow())
	})
}
