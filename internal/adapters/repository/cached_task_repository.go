package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/pvicentin/taskreports/internal/core/domain"
)

var _ domain.TaskRepository = (*CachedTaskRepository)(nil)

// CachedTaskRepository caches the per-user task list in redis and
// invalidates it on every write. Range reads used by the report engine
// always pass through to the source, so reports are never stale.
type CachedTaskRepository struct {
	next  domain.TaskRepository
	cache *redis.Client
}

func NewCachedTaskRepository(next domain.TaskRepository, cache *redis.Client) *CachedTaskRepository {
	return &CachedTaskRepository{
		next:  next,
		cache: cache,
	}
}

func (r *CachedTaskRepository) cacheKey(userID string) string {
	return fmt.Sprintf("tasks:%s", userID)
}

func (r *CachedTaskRepository) invalidate(ctx context.Context, userID string) {
	if err := r.cache.Del(ctx, r.cacheKey(userID)).Err(); err != nil {
		log.Printf("[CACHE] Failed to invalidate for user %s: %v", userID, err)
	}
}

func (r *CachedTaskRepository) ListByUserID(ctx context.Context, userID string) ([]*domain.Task, error) {
	key := r.cacheKey(userID)

	val, err := r.cache.Get(ctx, key).Result()
	if err == nil {
		var tasks []*domain.Task
		if err := json.Unmarshal([]byte(val), &tasks); err == nil {
			return tasks, nil
		}

		log.Printf("[CACHE] Corrupted data for user %s, cleaning up key", userID)
		r.cache.Del(ctx, key)
	} else if err != redis.Nil {
		log.Printf("[CACHE] Redis read error: %v", err)
	}

	tasks, err := r.next.ListByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if data, err := json.Marshal(tasks); err == nil {
		if setErr := r.cache.Set(ctx, key, data, 30*time.Minute).Err(); setErr != nil {
			log.Printf("[CACHE] Redis set error: %v", setErr)
		}
	}

	return tasks, nil
}

func (r *CachedTaskRepository) GetByID(ctx context.Context, id string) (*domain.Task, error) {
	return r.next.GetByID(ctx, id)
}

func (r *CachedTaskRepository) ListByDateRange(ctx context.Context, userID string, from, to time.Time) ([]*domain.Task, error) {
	return r.next.ListByDateRange(ctx, userID, from, to)
}

func (r *CachedTaskRepository) Create(ctx context.Context, task *domain.Task) error {
	if err := r.next.Create(ctx, task); err != nil {
		return err
	}
	r.invalidate(ctx, task.UserID)
	return nil
}

func (r *CachedTaskRepository) Update(ctx context.Context, task *domain.Task) error {
	if err := r.next.Update(ctx, task); err != nil {
		return err
	}
	r.invalidate(ctx, task.UserID)
	return nil
}

func (r *CachedTaskRepository) Delete(ctx context.Context, id string) error {
	task, err := r.next.GetByID(ctx, id)
	if err == nil && task != nil {
		defer r.invalidate(ctx, task.UserID)
	}

	return r.next.Delete(ctx, id)
}
