// Package ratelimit defines the rate limiting capability queues depend on,
// along with two ready-made implementations: Unlimited and TokenBucket.
package ratelimit

// RateLimiter makes permit decisions for queue admission
type RateLimiter interface {
	// Allow returns whether the caller may proceed. The decision is made
	// synchronously and the call is safe to repeat; a denial carries no
	// error at this contract level.
	Allow() bool
}

// Unlimited is a rate limiter that permits everything
type Unlimited struct{}

// Allow always returns true
func (Unlimited) Allow() bool {
	return true
}
