package queueing

import (
	"fmt"
	"log/slog"

	"github.com/taskline/taskline-go/contracts"
	"github.com/taskline/taskline-go/ratelimit"
)

// DefaultBatchSize is the flush threshold used when a BatchQueueBuilder is
// not given one.
const DefaultBatchSize = 10

// BatchQueue accumulates tasks and announces them to its receiver in
// batches. Tasks are kept in arrival order like WorkQueue; only the
// notification cadence differs.
type BatchQueue struct {
	name      string
	limiter   ratelimit.RateLimiter
	receiver  TaskReceiver
	logger    *slog.Logger
	batchSize int
	tasks     []contracts.Task
	unflushed int
}

var _ Queue = (*BatchQueue)(nil)

// Describe returns the variant-identifying description
func (q *BatchQueue) Describe() string {
	return fmt.Sprintf("batch-queue %s: %d pending, flushes every %d", q.name, len(q.tasks), q.batchSize)
}

// PushBack appends the task. Once a full batch has accumulated and the
// rate limiter permits, the receiver is notified and the batch counter
// resets; a denied permit leaves the batch ready for the next push.
func (q *BatchQueue) PushBack(task contracts.Task) {
	q.tasks = append(q.tasks, task)
	q.unflushed++
	if q.unflushed < q.batchSize {
		return
	}
	if !q.limiter.Allow() {
		q.logger.Debug("batch flush rate limited", "queue", q.name, "batched", q.unflushed)
		return
	}
	q.receiver.Send(fmt.Sprintf("batch of %d tasks ready on %s", q.unflushed, q.name))
	q.unflushed = 0
}

// Name returns the queue name
func (q *BatchQueue) Name() string {
	return q.name
}

// Tasks returns the pending tasks in arrival order
func (q *BatchQueue) Tasks() []contracts.Task {
	return q.tasks
}

// BatchQueueBuilder assembles a BatchQueue. Rate limiter and task receiver
// are required; batch size defaults to DefaultBatchSize.
type BatchQueueBuilder struct {
	name      string
	limiter   ratelimit.RateLimiter
	receiver  TaskReceiver
	logger    *slog.Logger
	batchSize int
	consumed  bool
}

var _ Builder[*BatchQueue, *BatchQueueBuilder] = (*BatchQueueBuilder)(nil)

// NewBatchQueueBuilder creates a builder with no dependencies set
func NewBatchQueueBuilder() *BatchQueueBuilder {
	return &BatchQueueBuilder{
		name:      "default",
		logger:    slog.Default(),
		batchSize: DefaultBatchSize,
	}
}

// WithName sets the queue name
func (b *BatchQueueBuilder) WithName(name string) *BatchQueueBuilder {
	b.name = name
	return b
}

// WithRateLimiter sets the rate limiter, replacing any previous value
func (b *BatchQueueBuilder) WithRateLimiter(rl ratelimit.RateLimiter) *BatchQueueBuilder {
	b.limiter = rl
	return b
}

// WithTaskReceiver sets the task receiver, replacing any previous value
func (b *BatchQueueBuilder) WithTaskReceiver(tr TaskReceiver) *BatchQueueBuilder {
	b.receiver = tr
	return b
}

// WithLogger sets the logger
func (b *BatchQueueBuilder) WithLogger(logger *slog.Logger) *BatchQueueBuilder {
	b.logger = logger
	return b
}

// WithBatchSize sets the flush threshold
func (b *BatchQueueBuilder) WithBatchSize(size int) *BatchQueueBuilder {
	b.batchSize = size
	return b
}

// Build finalizes the builder and produces the queue. It fails while a
// required dependency is unset or the batch size is invalid, and consumes
// the builder on success.
func (b *BatchQueueBuilder) Build() (*BatchQueue, error) {
	if b.consumed {
		return nil, contracts.ErrBuilderConsumed
	}
	if b.limiter == nil {
		return nil, contracts.NewBuildError("rate limiter")
	}
	if b.receiver == nil {
		return nil, contracts.NewBuildError("task receiver")
	}
	if b.batchSize < 1 {
		return nil, contracts.NewBuildError("batch size")
	}
	b.consumed = true
	return &BatchQueue{
		name:      b.name,
		limiter:   b.limiter,
		receiver:  b.receiver,
		logger:    b.logger,
		batchSize: b.batchSize,
	}, nil
}
