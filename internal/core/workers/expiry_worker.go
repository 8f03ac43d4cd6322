package workers

import (
	"context"
	"log"
	"time"

	"github.com/pvicentin/taskreports/internal/core/domain"
)

type GoalRepository interface {
	ListOpenEndedBefore(ctx context.Context, cutoff time.Time) ([]*domain.Goal, error)
	Update(ctx context.Context, goal *domain.Goal) error
}

// ExpiryWorker periodically closes out goals whose deadline passed
// while they were still open, so reports reflect reality without
// manual status upkeep.
type ExpiryWorker struct {
	repo     GoalRepository
	interval time.Duration
	now      func() time.Time
}

func NewExpiryWorker(repo GoalRepository, interval time.Duration) *ExpiryWorker {
	return &ExpiryWorker{
		repo:     repo,
		interval: interval,
		now:      time.Now,
	}
}

func (w *ExpiryWorker) Start(ctx context.Context) {
	go func() {
		log.Println("Goal expiry worker started in background...")

		ticker := time.NewTicker(w.interval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				if n, err := w.Sweep(ctx); err != nil {
					log.Printf("Expiry sweep failed: %v", err)
				} else if n > 0 {
					log.Printf("Expiry sweep closed %d overdue goals", n)
				}
			case <-ctx.Done():
				log.Println("Goal expiry worker shutting down...")
				return
			}
		}
	}()
}

// Sweep runs one pass and returns how many goals were expired.
func (w *ExpiryWorker) Sweep(ctx context.Context) (int, error) {
	goals, err := w.repo.ListOpenEndedBefore(ctx, w.now().UTC())
	if err != nil {
		return 0, err
	}

	expired := 0
	for _, g := range goals {
		if !g.Expire() {
			continue
		}
		if err := w.repo.Update(ctx, g); err != nil {
			log.Printf("Worker failed to expire goal %s: %v", g.ID, err)
			continue
		}
		expired++
	}

	return expired, nil
}
