package queueing

import "log/slog"

// TaskReceiver carries task notifications for exactly one queue. Both
// operations are treated as always succeeding at this layer; transport
// failures stay behind the implementation.
type TaskReceiver interface {
	// Send delivers a message toward the receiver's destination
	Send(message string)

	// Receive polls the receiver's source; the observable effect is
	// implementation-defined
	Receive()
}

// LogReceiver is a TaskReceiver that writes every operation to a logger.
// It is the default receiver when none is configured.
type LogReceiver struct {
	logger *slog.Logger
}

// NewLogReceiver creates a logging receiver. A nil logger falls back to
// slog.Default().
func NewLogReceiver(logger *slog.Logger) *LogReceiver {
	if logger == nil {
		logger = slog.Default()
	}
	return &LogReceiver{logger: logger}
}

// Send logs the outbound message
func (r *LogReceiver) Send(message string) {
	r.logger.Info("message sent", "message", message)
}

// Receive logs the poll
func (r *LogReceiver) Receive() {
	r.logger.Info("receive polled")
}

// BufferReceiver is an in-memory TaskReceiver. Send appends to the pending
// buffer; Receive delivers the oldest pending message. Useful in tests and
// anywhere no transport is wanted.
type BufferReceiver struct {
	pending   []string
	delivered []string
}

// NewBufferReceiver creates an empty buffer receiver
func NewBufferReceiver() *BufferReceiver {
	return &BufferReceiver{}
}

// Send buffers the message
func (r *BufferReceiver) Send(message string) {
	r.pending = append(r.pending, message)
}

// Receive moves the oldest pending message to the delivered list. It is a
// no-op when nothing is pending.
func (r *BufferReceiver) Receive() {
	if len(r.pending) == 0 {
		return
	}
	r.delivered = append(r.delivered, r.pending[0])
	r.pending = r.pending[1:]
}

// Pending returns the messages sent but not yet received
func (r *BufferReceiver) Pending() []string {
	return r.pending
}

// Delivered returns the messages consumed by Receive
func (r *BufferReceiver) Delivered() []string {
	return r.delivered
}
