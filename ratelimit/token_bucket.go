package ratelimit

import "time"

// TokenBucket is a refill-on-read token bucket. Each Allow consumes one
// token; one token is restored per refill interval elapsed, up to capacity.
// Not safe for concurrent use.
type TokenBucket struct {
	capacity int
	tokens   int
	refill   time.Duration
	last     time.Time
	now      func() time.Time
}

// NewTokenBucket creates a full bucket that restores one token per refill
// interval. Capacity below 1 is treated as 1.
func NewTokenBucket(capacity int, refill time.Duration) *TokenBucket {
	if capacity < 1 {
		capacity = 1
	}
	b := &TokenBucket{
		capacity: capacity,
		tokens:   capacity,
		refill:   refill,
		now:      time.Now,
	}
	b.last = b.now()
	return b
}

// Allow consumes a token if one is available. A non-positive refill
// interval disables refilling entirely.
func (b *TokenBucket) Allow() bool {
	if elapsed := b.now().Sub(b.last); b.refill > 0 && elapsed >= b.refill {
		restored := int(elapsed / b.refill)
		b.tokens += restored
		if b.tokens > b.capacity {
			b.tokens = b.capacity
		}
		b.last = b.last.Add(time.Duration(restored) * b.refill)
	}
	if b.tokens == 0 {
		return false
	}
	b.tokens--
	return true
}

// Tokens returns the number of tokens currently available
func (b *TokenBucket) Tokens() int {
	return b.tokens
}
