package repository

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/pvicentin/taskreports/internal/core/domain"
)

// In-memory implementations backing tests and local development. They
// honor the same range semantics as the postgres repositories,
// including deterministic ordering.

type InMemoryTaskRepository struct {
	store map[string]*domain.Task

	mu sync.RWMutex
}

func NewInMemoryTaskRepository() *InMemoryTaskRepository {
	return &InMemoryTaskRepository{
		store: make(map[string]*domain.Task),
	}
}

func (r *InMemoryTaskRepository) Create(ctx context.Context, task *domain.Task) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.store[task.ID] = task
	return nil
}

func (r *InMemoryTaskRepository) GetByID(ctx context.Context, id string) (*domain.Task, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	task, ok := r.store[id]
	if !ok {
		return nil, domain.ErrTaskNotFound
	}
	return task, nil
}

func (r *InMemoryTaskRepository) ListByUserID(ctx context.Context, userID string) ([]*domain.Task, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var tasks []*domain.Task
	for _, t := range r.store {
		if t.UserID == userID {
			tasks = append(tasks, t)
		}
	}

	sort.Slice(tasks, func(i, j int) bool {
		return tasks[i].BeginAt.After(tasks[j].BeginAt)
	})

	return tasks, nil
}

func (r *InMemoryTaskRepository) ListByDateRange(ctx context.Context, userID string, from, to time.Time) ([]*domain.Task, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	tasks := []*domain.Task{}
	for _, t := range r.store {
		if userID != "" && t.UserID != userID {
			continue
		}
		if t.BeginAt.Before(from) || t.BeginAt.After(to) {
			continue
		}
		tasks = append(tasks, t)
	}

	sort.Slice(tasks, func(i, j int) bool {
		if !tasks[i].BeginAt.Equal(tasks[j].BeginAt) {
			return tasks[i].BeginAt.Before(tasks[j].BeginAt)
		}
		return tasks[i].ID < tasks[j].ID
	})

	return tasks, nil
}

func (r *InMemoryTaskRepository) Update(ctx context.Context, task *domain.Task) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.store[task.ID]; !ok {
		return domain.ErrTaskNotFound
	}

	r.store[task.ID] = task
	return nil
}

func (r *InMemoryTaskRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.store[id]; !ok {
		return domain.ErrTaskNotFound
	}

	delete(r.store, id)
	return nil
}

type InMemoryUserRepository struct {
	store map[string]*domain.User

	mu sync.RWMutex
}

func NewInMemoryUserRepository() *InMemoryUserRepository {
	return &InMemoryUserRepository{
		store: make(map[string]*domain.User),
	}
}

func (r *InMemoryUserRepository) Create(ctx context.Context, user *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, u := range r.store {
		if u.Email == user.Email {
			return domain.ErrEmailAlreadyExists
		}
	}

	r.store[user.ID] = user
	return nil
}

func (r *InMemoryUserRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.store[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return user, nil
}

func (r *InMemoryUserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, u := range r.store {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

type InMemoryGoalRepository struct {
	store map[string]*domain.Goal

	mu sync.RWMutex
}

func NewInMemoryGoalRepository() *InMemoryGoalRepository {
	return &InMemoryGoalRepository{
		store: make(map[string]*domain.Goal),
	}
}

func (r *InMemoryGoalRepository) Create(ctx context.Context, goal *domain.Goal) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.store[goal.ID] = goal
	return nil
}

func (r *InMemoryGoalRepository) GetByID(ctx context.Context, id string) (*domain.Goal, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	goal, ok := r.store[id]
	if !ok {
		return nil, domain.ErrGoalNotFound
	}
	return goal, nil
}

func (r *InMemoryGoalRepository) ListByUserID(ctx context.Context, userID string) ([]*domain.Goal, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var goals []*domain.Goal
	for _, g := range r.store {
		if g.UserID == userID {
			goals = append(goals, g)
		}
	}

	sort.Slice(goals, func(i, j int) bool {
		return goals[i].StartAt.After(goals[j].StartAt)
	})

	return goals, nil
}

func (r *InMemoryGoalRepository) ListByDateRange(ctx context.Context, userID string, from, to time.Time) ([]*domain.Goal, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	goals := []*domain.Goal{}
	for _, g := range r.store {
		if userID != "" && g.UserID != userID {
			continue
		}
		if g.StartAt.Before(from) || g.StartAt.After(to) {
			continue
		}
		goals = append(goals, g)
	}

	sort.Slice(goals, func(i, j int) bool {
		if !goals[i].StartAt.Equal(goals[j].StartAt) {
			return goals[i].StartAt.Before(goals[j].StartAt)
		}
		return goals[i].ID < goals[j].ID
	})

	return goals, nil
}

func (r *InMemoryGoalRepository) ListOpenEndedBefore(ctx context.Context, cutoff time.Time) ([]*domain.Goal, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	goals := []*domain.Goal{}
	for _, g := range r.store {
		if !g.EndAt.Before(cutoff) {
			continue
		}
		switch domain.GoalStatusBucket(g.Status) {
		case domain.BucketInProgress, domain.BucketNotStarted:
			goals = append(goals, g)
		}
	}

	sort.Slice(goals, func(i, j int) bool {
		return goals[i].EndAt.Before(goals[j].EndAt)
	})

	return goals, nil
}

func (r *InMemoryGoalRepository) Update(ctx context.Context, goal *domain.Goal) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.store[goal.ID]; !ok {
		return domain.ErrGoalNotFound
	}

	r.store[goal.ID] = goal
	return nil
}

func (r *InMemoryGoalRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.store[id]; !ok {
		return domain.ErrGoalNotFound
	}

	delete(r.store, id)
	return nil
}
