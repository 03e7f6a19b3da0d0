package queueing

import (
	"github.com/taskline/taskline-go/contracts"
	"github.com/taskline/taskline-go/ratelimit"
)

// Queue is the capability every queue variant satisfies. A queue owns one
// RateLimiter and one TaskReceiver, bound at build time for its lifetime,
// plus an ordered sequence of pending tasks.
type Queue interface {
	// Describe returns a string identifying the queue implementation.
	// Pure observer, no mutation.
	Describe() string

	// PushBack appends a task to the queue's pending sequence. It always
	// succeeds at this contract level; capacity handling, if any, is up
	// to the implementation.
	PushBack(task contracts.Task)
}

// Builder assembles the dependencies a queue variant needs and produces
// exactly one queue. Q is the variant produced; B is the concrete builder
// type itself, so chained setters keep their concrete return type. Each
// setter overwrites any previously set value.
//
// Build fails with contracts.ErrIncompleteConfiguration while a required
// dependency is missing; the builder may then be corrected and retried.
// After a successful Build the builder is consumed and further calls fail
// with contracts.ErrBuilderConsumed.
type Builder[Q Queue, B any] interface {
	WithRateLimiter(rl ratelimit.RateLimiter) B
	WithTaskReceiver(tr TaskReceiver) B
	Build() (Q, error)
}

// Assemble wires a rate limiter and receiver into any builder and
// finalizes it. The B Builder[Q, B] constraint is what lets this function
// trust that building B yields exactly a Q without naming either concrete
// type.
func Assemble[Q Queue, B Builder[Q, B]](b B, rl ratelimit.RateLimiter, tr TaskReceiver) (Q, error) {
	return b.WithRateLimiter(rl).WithTaskReceiver(tr).Build()
}
