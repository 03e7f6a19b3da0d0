// Package contracts defines the value types and errors shared across
// taskline packages.
//
// Task is the unit of work that flows through queues. It is an inert,
// copyable value: queues take ownership on PushBack and never hand it back
// through this package.
//
// BuildError and its sentinels describe builder finalization failures. Use
// errors.Is with ErrIncompleteConfiguration to detect a missing dependency
// regardless of which field was at fault.
package contracts
