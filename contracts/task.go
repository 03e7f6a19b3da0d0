package contracts

import (
	"time"

	"github.com/google/uuid"
)

// Task is a unit of work awaiting processing in a queue
type Task struct {
	ID        string    `json:"id"`
	Payload   string    `json:"payload"`
	CreatedAt time.Time `json:"createdAt"`
}

// NewTask creates a new task with generated ID and current timestamp
func NewTask(payload string) Task {
	return Task{
		ID:        uuid.New().String(),
		Payload:   payload,
		CreatedAt: time.Now().UTC(),
	}
}
