package services

import (
	"context"
	"time"

	"github.com/pvicentin/taskreports/internal/core/domain"
)

type GoalService struct {
	repo domain.GoalRepository
}

func NewGoalService(repo domain.GoalRepository) *GoalService {
	return &GoalService{
		repo: repo,
	}
}

type CreateGoalInput struct {
	UserID      string
	Name        string
	Description string
	Category    string
	Type        string
	StartAt     time.Time
	EndAt       time.Time
}

type UpdateGoalInput struct {
	ID          string
	UserID      string
	Name        string
	Description string
	Status      string
	Category    string
	Type        string
	StartAt     time.Time
	EndAt       time.Time
}

func (s *GoalService) Create(ctx context.Context, input CreateGoalInput) (*domain.Goal, error) {
	goal, err := domain.NewGoal(input.UserID, input.Name, input.Description, input.Category, input.Type, input.StartAt, input.EndAt)
	if err != nil {
		return nil, err
	}

	if err := s.repo.Create(ctx, goal); err != nil {
		return nil, err
	}

	return goal, nil
}

func (s *GoalService) ListByUserID(ctx context.Context, userID string) ([]*domain.Goal, error) {
	return s.repo.ListByUserID(ctx, userID)
}

func (s *GoalService) Update(ctx context.Context, input UpdateGoalInput) (*domain.Goal, error) {
	goal, err := s.repo.GetByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}

	if goal.UserID != input.UserID {
		return nil, domain.ErrGoalNotFound
	}

	name := mergeString(input.Name, goal.Name)
	desc := mergeString(input.Description, goal.Description)
	category := mergeString(input.Category, goal.Category)
	goalType := mergeString(input.Type, goal.Type)

	startAt := goal.StartAt
	if !input.StartAt.IsZero() {
		startAt = input.StartAt
	}
	endAt := goal.EndAt
	if !input.EndAt.IsZero() {
		endAt = input.EndAt
	}

	if err := goal.Update(name, desc, input.Status, category, goalType, startAt, endAt); err != nil {
		return nil, err
	}

	if err := s.repo.Update(ctx, goal); err != nil {
		return nil, err
	}

	return goal, nil
}

func (s *GoalService) Delete(ctx context.Context, id, userID string) error {
	goal, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if goal.UserID != userID {
		return domain.ErrGoalNotFound
	}

	return s.repo.Delete(ctx, id)
}
