package queueing

import (
	"log/slog"

	"github.com/taskline/taskline-go/contracts"
)

// TaskManager owns a collection of queues without knowing their concrete
// variant. Instantiate it with a concrete type for a monomorphic
// collection, or with the Queue interface itself to mix variants:
//
//	mono := NewTaskManager[*WorkQueue]()
//	mixed := NewTaskManager[Queue]()
//
// Queues are kept in insertion order.
type TaskManager[Q Queue] struct {
	logger *slog.Logger
	queues []Q
}

// ManagerOption configures a TaskManager
type ManagerOption[Q Queue] func(*TaskManager[Q])

// WithManagerLogger sets the logger
func WithManagerLogger[Q Queue](logger *slog.Logger) ManagerOption[Q] {
	return func(m *TaskManager[Q]) {
		m.logger = logger
	}
}

// NewTaskManager creates an empty task manager
func NewTaskManager[Q Queue](options ...ManagerOption[Q]) *TaskManager[Q] {
	m := &TaskManager[Q]{
		logger: slog.Default(),
	}
	for _, opt := range options {
		opt(m)
	}
	return m
}

// AddQueue takes ownership of a queue
func (m *TaskManager[Q]) AddQueue(q Q) {
	m.queues = append(m.queues, q)
	m.logger.Debug("queue added", "total", len(m.queues))
}

// Len returns the number of owned queues
func (m *TaskManager[Q]) Len() int {
	return len(m.queues)
}

// DescribeAll collects each queue's description exactly once, in insertion
// order, logging as it goes. With no queues it does nothing and returns nil.
func (m *TaskManager[Q]) DescribeAll() []string {
	if len(m.queues) == 0 {
		return nil
	}
	descriptions := make([]string, 0, len(m.queues))
	for _, q := range m.queues {
		d := q.Describe()
		m.logger.Info("queue", "description", d)
		descriptions = append(descriptions, d)
	}
	return descriptions
}

// PushBackAll appends the task to every owned queue, in insertion order
func (m *TaskManager[Q]) PushBackAll(task contracts.Task) {
	for _, q := range m.queues {
		q.PushBack(task)
	}
}
