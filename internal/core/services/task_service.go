package services

import (
	"context"
	"time"

	"github.com/pvicentin/taskreports/internal/core/domain"
)

type TaskService struct {
	repo domain.TaskRepository
}

func NewTaskService(repo domain.TaskRepository) *TaskService {
	return &TaskService{
		repo: repo,
	}
}

type CreateTaskInput struct {
	UserID      string
	Title       string
	Description string
	Category    string
	Priority    string
	BeginAt     time.Time
}

type UpdateTaskInput struct {
	ID          string
	UserID      string
	Title       string
	Description string
	Status      string
	Category    string
	Priority    string
	BeginAt     time.Time
}

func (s *TaskService) Create(ctx context.Context, input CreateTaskInput) (*domain.Task, error) {
	task, err := domain.NewTask(input.UserID, input.Title, input.Description, input.Category, input.Priority, input.BeginAt)
	if err != nil {
		return nil, err
	}

	if err := s.repo.Create(ctx, task); err != nil {
		return nil, err
	}

	return task, nil
}

func (s *TaskService) ListByUserID(ctx context.Context, userID string) ([]*domain.Task, error) {
	return s.repo.ListByUserID(ctx, userID)
}

func (s *TaskService) Update(ctx context.Context, input UpdateTaskInput) (*domain.Task, error) {
	task, err := s.repo.GetByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}

	// Ownership mismatch is reported as not-found so the endpoint
	// does not leak other users' task ids.
	if task.UserID != input.UserID {
		return nil, domain.ErrTaskNotFound
	}

	title := mergeString(input.Title, task.Title)
	desc := mergeString(input.Description, task.Description)
	category := mergeString(input.Category, task.Category)
	priority := mergeString(input.Priority, task.Priority)

	beginAt := task.BeginAt
	if !input.BeginAt.IsZero() {
		beginAt = input.BeginAt
	}

	if err := task.Update(title, desc, input.Status, category, priority, beginAt); err != nil {
		return nil, err
	}

	if err := s.repo.Update(ctx, task); err != nil {
		return nil, err
	}

	return task, nil
}

func (s *TaskService) Delete(ctx context.Context, id, userID string) error {
	task, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if task.UserID != userID {
		return domain.ErrTaskNotFound
	}

	return s.repo.Delete(ctx, id)
}

func mergeString(newVal, oldVal string) string {
	if newVal == "" {
		return oldVal
	}
	return newVal
}
