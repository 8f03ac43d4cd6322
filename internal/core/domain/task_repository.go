package domain

import (
	"context"
	"errors"
	"time"
)

var (
	ErrTaskNotFound = errors.New("task not found")
)

// TaskReader is the record-reader capability the report engine depends
// on. An empty userID means records from all users.
type TaskReader interface {
	// ListByDateRange retrieves tasks whose begin date falls inside
	// [from, to] inclusive.
	ListByDateRange(ctx context.Context, userID string, from, to time.Time) ([]*Task, error)
}

type TaskRepository interface {
	TaskReader

	// Create persists a new task.
	Create(ctx context.Context, task *Task) error

	// GetByID retrieves a task by its unique identifier.
	GetByID(ctx context.Context, id string) (*Task, error)

	// ListByUserID retrieves all tasks owned by a user.
	ListByUserID(ctx context.Context, userID string) ([]*Task, error)

	// Update modifies the state of an existing task.
	Update(ctx context.Context, task *Task) error

	// Delete permanently removes a task.
	Delete(ctx context.Context, id string) error
}
