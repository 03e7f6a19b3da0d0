package queueing

import (
	"fmt"
	"log/slog"

	"github.com/taskline/taskline-go/contracts"
	"github.com/taskline/taskline-go/ratelimit"
)

// WorkQueue is a plain FIFO task pipeline. Every accepted task is appended
// in arrival order; when the rate limiter permits, the receiver is notified
// of the enqueue.
type WorkQueue struct {
	name     string
	limiter  ratelimit.RateLimiter
	receiver TaskReceiver
	logger   *slog.Logger
	tasks    []contracts.Task
}

var _ Queue = (*WorkQueue)(nil)

// Describe returns the variant-identifying description
func (q *WorkQueue) Describe() string {
	return fmt.Sprintf("work-queue %s: %d pending", q.name, len(q.tasks))
}

// PushBack appends the task and notifies the receiver if the rate limiter
// permits. The task is kept either way; a denied permit only suppresses
// the notification.
func (q *WorkQueue) PushBack(task contracts.Task) {
	q.tasks = append(q.tasks, task)
	if !q.limiter.Allow() {
		q.logger.Debug("enqueue notification rate limited", "queue", q.name, "taskId", task.ID)
		return
	}
	q.receiver.Send(fmt.Sprintf("task %s enqueued on %s", task.ID, q.name))
}

// Name returns the queue name
func (q *WorkQueue) Name() string {
	return q.name
}

// Tasks returns the pending tasks in arrival order
func (q *WorkQueue) Tasks() []contracts.Task {
	return q.tasks
}

// WorkQueueBuilder assembles a WorkQueue. Rate limiter and task receiver
// are required; name and logger are optional.
type WorkQueueBuilder struct {
	name     string
	limiter  ratelimit.RateLimiter
	receiver TaskReceiver
	logger   *slog.Logger
	consumed bool
}

var _ Builder[*WorkQueue, *WorkQueueBuilder] = (*WorkQueueBuilder)(nil)

// NewWorkQueueBuilder creates a builder with no dependencies set
func NewWorkQueueBuilder() *WorkQueueBuilder {
	return &WorkQueueBuilder{
		name:   "default",
		logger: slog.Default(),
	}
}

// WithName sets the queue name
func (b *WorkQueueBuilder) WithName(name string) *WorkQueueBuilder {
	b.name = name
	return b
}

// WithRateLimiter sets the rate limiter, replacing any previous value
func (b *WorkQueueBuilder) WithRateLimiter(rl ratelimit.RateLimiter) *WorkQueueBuilder {
	b.limiter = rl
	return b
}

// WithTaskReceiver sets the task receiver, replacing any previous value
func (b *WorkQueueBuilder) WithTaskReceiver(tr TaskReceiver) *WorkQueueBuilder {
	b.receiver = tr
	return b
}

// WithLogger sets the logger
func (b *WorkQueueBuilder) WithLogger(logger *slog.Logger) *WorkQueueBuilder {
	b.logger = logger
	return b
}

// Build finalizes the builder and produces the queue. It fails while a
// required dependency is unset and consumes the builder on success.
func (b *WorkQueueBuilder) Build() (*WorkQueue, error) {
	if b.consumed {
		return nil, contracts.ErrBuilderConsumed
	}
	if b.limiter == nil {
		return nil, contracts.NewBuildError("rate limiter")
	}
	if b.receiver == nil {
		return nil, contracts.NewBuildError("task receiver")
	}
	b.consumed = true
	return &WorkQueue{
		name:     b.name,
		limiter:  b.limiter,
		receiver: b.receiver,
		logger:   b.logger,
	}, nil
}
