package domain

import (
	"context"
	"errors"
	"time"
)

var (
	ErrGoalNotFound = errors.New("goal not found")
)

// GoalReader is the goal-side record-reader capability of the report
// engine. An empty userID means records from all users.
type GoalReader interface {
	// ListByDateRange retrieves goals whose start date falls inside
	// [from, to] inclusive.
	ListByDateRange(ctx context.Context, userID string, from, to time.Time) ([]*Goal, error)
}

type GoalRepository interface {
	GoalReader

	// Create persists a new goal.
	Create(ctx context.Context, goal *Goal) error

	// GetByID retrieves a goal by its unique identifier.
	GetByID(ctx context.Context, id string) (*Goal, error)

	// ListByUserID retrieves all goals owned by a user.
	ListByUserID(ctx context.Context, userID string) ([]*Goal, error)

	// Update modifies the state of an existing goal.
	Update(ctx context.Context, goal *Goal) error

	// Delete permanently removes a goal.
	Delete(ctx context.Context, id string) error

	// ListOpenEndedBefore retrieves goals whose deadline passed before
	// the cutoff but whose status is still open. Used by the expiry
	// sweep.
	ListOpenEndedBefore(ctx context.Context, cutoff time.Time) ([]*Goal, error)
}
