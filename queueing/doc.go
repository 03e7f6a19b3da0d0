// Package queueing provides the core queue assembly capabilities for the
// taskline library.
//
// This package implements the primary composition patterns:
//   - Queue: The capability every queue variant satisfies (Describe, PushBack)
//   - Builder: Generic assembly of a queue variant's dependencies
//   - Assemble: A factory generic over any variant/builder pair
//   - TaskReceiver: The transport-facing capability a queue notifies
//   - TaskManager: A variant-oblivious owner of queue collections
//
// The central design point is the link between a queue variant and its
// builder. Builder carries two type parameters: the queue variant Q it
// produces and the concrete builder type B itself. A variant declares the
// pair once with a compile-time assertion:
//
//	var _ Builder[*WorkQueue, *WorkQueueBuilder] = (*WorkQueueBuilder)(nil)
//
// and generic code can then require B Builder[Q, B] to say "a builder whose
// chained setters return itself and whose Build yields exactly Q" without
// ever naming a concrete type. Assemble is that generic code:
//
//	q, err := queueing.Assemble[*WorkQueue](
//		queueing.NewWorkQueueBuilder(),
//		ratelimit.Unlimited{},
//		queueing.NewLogReceiver(nil),
//	)
//
// Each built queue exclusively owns one RateLimiter and one TaskReceiver;
// the pair is fixed when Build succeeds and is never shared between queues.
// Execution is single-threaded and synchronous throughout.
package queueing
