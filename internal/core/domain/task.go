package domain

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrTaskTitleEmpty    = errors.New("task title cannot be empty")
	ErrTaskTitleTooLong  = errors.New("task title is too long (max 100 chars)")
	ErrTaskDescTooLong   = errors.New("task description is too long (max 500 chars)")
	ErrTaskInvalidUserID = errors.New("invalid user id")
	ErrTaskBeginRequired = errors.New("task begin date is required")
)

const (
	MaxTitleLen = 100
	MaxDescLen  = 500
)

type Task struct {
	ID          string     `json:"id" db:"id"`
	UserID      string     `json:"user_id" db:"user_id"`
	Title       string     `json:"title" db:"title"`
	Description string     `json:"description,omitempty" db:"description"`
	Status      string     `json:"status" db:"status"`
	Category    string     `json:"category,omitempty" db:"category"`
	Priority    string     `json:"priority,omitempty" db:"priority"`
	BeginAt     time.Time  `json:"begin_at" db:"begin_at"`
	CompletedAt *time.Time `json:"completed_at,omitempty" db:"completed_at"`
	CreatedAt   time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at" db:"updated_at"`
}

func NewTask(userID, title, description, category, priority string, beginAt time.Time) (*Task, error) {
	if userID == "" {
		return nil, ErrTaskInvalidUserID
	}

	title = strings.TrimSpace(title)
	description = strings.TrimSpace(description)

	if err := validateTaskFields(title, description, beginAt); err != nil {
		return nil, err
	}

	now := time.Now().UTC()

	return &Task{
		ID:          uuid.NewString(),
		UserID:      userID,
		Title:       title,
		Description: description,
		Status:      TaskStatusPending,
		Category:    strings.TrimSpace(category),
		Priority:    strings.TrimSpace(priority),
		BeginAt:     beginAt,
		CreatedAt:   now,
		UpdatedAt:   now,
	}, nil
}

func (t *Task) Update(title, description, status, category, priority string, beginAt time.Time) error {
	title = strings.TrimSpace(title)
	description = strings.TrimSpace(description)

	if err := validateTaskFields(title, description, beginAt); err != nil {
		return err
	}

	t.Title = title
	t.Description = description
	t.Category = strings.TrimSpace(category)
	t.Priority = strings.TrimSpace(priority)
	t.BeginAt = beginAt

	if status != "" {
		t.SetStatus(status)
	}

	t.UpdatedAt = time.Now().UTC()
	return nil
}

// SetStatus records the new label and keeps the completion timestamp in
// step with it: entering the completed bucket stamps CompletedAt,
// leaving it clears the stamp.
func (t *Task) SetStatus(status string) {
	t.Status = status

	if TaskStatusBucket(status) == BucketCompleted {
		if t.CompletedAt == nil {
			now := time.Now().UTC()
			t.CompletedAt = &now
		}
	} else {
		t.CompletedAt = nil
	}

	t.UpdatedAt = time.Now().UTC()
}

// Bucket reports which status bucket this task counts toward.
func (t *Task) Bucket() StatusBucket {
	return TaskStatusBucket(t.Status)
}

// DefiningTime is the timestamp that places the task into a report period.
func (t *Task) DefiningTime() time.Time {
	return t.BeginAt
}

func validateTaskFields(title, description string, beginAt time.Time) error {
	if title == "" {
		return ErrTaskTitleEmpty
	}
	if len(title) > MaxTitleLen {
		return ErrTaskTitleTooLong
	}
	if len(description) > MaxDescLen {
		return ErrTaskDescTooLong
	}
	if beginAt.IsZero() {
		return ErrTaskBeginRequired
	}
	return nil
}
