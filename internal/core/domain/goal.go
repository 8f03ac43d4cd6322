package domain

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrGoalNameEmpty     = errors.New("goal name cannot be empty")
	ErrGoalNameTooLong   = errors.New("goal name is too long (max 100 chars)")
	ErrGoalDescTooLong   = errors.New("goal description is too long (max 500 chars)")
	ErrGoalInvalidUserID = errors.New("invalid user id")
	ErrGoalInvalidDates  = errors.New("goal end date cannot be before start date")
)

type Goal struct {
	ID          string    `json:"id" db:"id"`
	UserID      string    `json:"user_id" db:"user_id"`
	Name        string    `json:"name" db:"name"`
	Description string    `json:"description,omitempty" db:"description"`
	Category    string    `json:"category,omitempty" db:"category"`
	Status      string    `json:"status" db:"status"`
	Type        string    `json:"type,omitempty" db:"type"`
	StartAt     time.Time `json:"start_at" db:"start_at"`
	EndAt       time.Time `json:"end_at" db:"end_at"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" db:"updated_at"`
}

func NewGoal(userID, name, description, category, goalType string, startAt, endAt time.Time) (*Goal, error) {
	if userID == "" {
		return nil, ErrGoalInvalidUserID
	}

	name = strings.TrimSpace(name)
	description = strings.TrimSpace(description)

	if err := validateGoalFields(name, description, startAt, endAt); err != nil {
		return nil, err
	}

	now := time.Now().UTC()

	return &Goal{
		ID:          uuid.NewString(),
		UserID:      userID,
		Name:        name,
		Description: description,
		Category:    strings.TrimSpace(category),
		Status:      GoalStatusNotStarted,
		Type:        strings.TrimSpace(goalType),
		StartAt:     startAt,
		EndAt:       endAt,
		CreatedAt:   now,
		UpdatedAt:   now,
	}, nil
}

func (g *Goal) Update(name, description, status, category, goalType string, startAt, endAt time.Time) error {
	name = strings.TrimSpace(name)
	description = strings.TrimSpace(description)

	if err := validateGoalFields(name, description, startAt, endAt); err != nil {
		return err
	}

	g.Name = name
	g.Description = description
	g.Category = strings.TrimSpace(category)
	g.Type = strings.TrimSpace(goalType)
	g.StartAt = startAt
	g.EndAt = endAt

	if status != "" {
		g.Status = status
	}

	g.UpdatedAt = time.Now().UTC()
	return nil
}

// Expire closes out a goal whose deadline passed while it was still
// open. Terminal statuses are left alone so a late sweep never rewrites
// history.
func (g *Goal) Expire() bool {
	switch GoalStatusBucket(g.Status) {
	case BucketInProgress, BucketNotStarted:
		g.Status = GoalStatusNotCompleted
		g.UpdatedAt = time.Now().UTC()
		return true
	}
	return false
}

// Bucket reports which status bucket this goal counts toward.
func (g *Goal) Bucket() StatusBucket {
	return GoalStatusBucket(g.Status)
}

// DefiningTime is the timestamp that places the goal into a report period.
func (g *Goal) DefiningTime() time.Time {
	return g.StartAt
}

func validateGoalFields(name, description string, startAt, endAt time.Time) error {
	if name == "" {
		return ErrGoalNameEmpty
	}
	if len(name) > MaxTitleLen {
		return ErrGoalNameTooLong
	}
	if len(description) > MaxDescLen {
		return ErrGoalDescTooLong
	}
	if !endAt.IsZero() && endAt.Before(startAt) {
		return ErrGoalInvalidDates
	}
	return nil
}
