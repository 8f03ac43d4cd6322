package domain_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pvicentin/taskreports/internal/core/domain"
)

func TestNewGoal(t *testing.T) {
	startAt := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	endAt := startAt.AddDate(0, 1, 0)

	t.Run("Success: Creates a not-started goal", func(t *testing.T) {
		goal, err := domain.NewGoal("user-1", " Read books ", "", "Learning", "monthly", startAt, endAt)

		require.NoError(t, err)
		assert.NotEmpty(t, goal.ID)
		assert.Equal(t, "Read books", goal.Name)
		assert.Equal(t, domain.GoalStatusNotStarted, goal.Status)
		assert.Equal(t, domain.BucketNotStarted, goal.Bucket())
	})

	t.Run("Fail: End before start", func(t *testing.T) {
		_, err := domain.NewGoal("user-1", "ok", "", "", "", endAt, startAt)

		assert.ErrorIs(t, err, domain.ErrGoalInvalidDates)
	})

	t.Run("Fail: Empty name", func(t *testing.T) {
		_, err := domain.NewGoal("user-1", "  ", "", "", "", startAt, endAt)

		assert.ErrorIs(t, err, domain.ErrGoalNameEmpty)
	})

	t.Run("Fail: Missing user id", func(t *testing.T) {
		_, err := domain.NewGoal("", "ok", "", "", "", startAt, endAt)

		assert.ErrorIs(t, err, domain.ErrGoalInvalidUserID)
	})
}

func TestGoalExpire(t *testing.T) {
	startAt := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	endAt := startAt.AddDate(0, 1, 0)

	newGoal := func(t *testing.T, status string) *domain.Goal {
		t.Helper()
		goal, err := domain.NewGoal("user-1", "ok", "", "", "", startAt, endAt)
		require.NoError(t, err)
		goal.Status = status
		return goal
	}

	t.Run("Success: Open statuses become not completed", func(t *testing.T) {
		for _, status := range []string{domain.GoalStatusNotStarted, domain.GoalStatusInProgress} {
			goal := newGoal(t, status)

			changed := goal.Expire()

			assert.True(t, changed, "status %s must expire", status)
			assert.Equal(t, domain.GoalStatusNotCompleted, goal.Status)
		}
	})

	t.Run("Edge Case: Terminal statuses are untouched", func(t *testing.T) {
		for _, status := range []string{
			domain.GoalStatusCompleted,
			domain.GoalStatusPartiallyCompleted,
			domain.GoalStatusNotCompleted,
		} {
			goal := newGoal(t, status)

			changed := goal.Expire()

			assert.False(t, changed, "status %s must not expire", status)
			assert.Equal(t, status, goal.Status)
		}
	})

	t.Run("Edge Case: Expire is idempotent", func(t *testing.T) {
		goal := newGoal(t, domain.GoalStatusInProgress)

		assert.True(t, goal.Expire())
		assert.False(t, goal.Expire())
		assert.Equal(t, domain.GoalStatusNotCompleted, goal.Status)
	})
}

func TestGoalUpdate(t *testing.T) {
	startAt := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	endAt := startAt.AddDate(0, 1, 0)

	t.Run("Success: Rewrites fields and applies new status", func(t *testing.T) {
		goal, err := domain.NewGoal("user-1", "Before", "", "", "", startAt, endAt)
		require.NoError(t, err)

		err = goal.Update("After", "", domain.GoalStatusInProgress, "Health", "weekly", startAt, endAt)

		require.NoError(t, err)
		assert.Equal(t, "After", goal.Name)
		assert.Equal(t, domain.GoalStatusInProgress, goal.Status)
		assert.Equal(t, "Health", goal.Category)
	})

	t.Run("Fail: Date order is validated on update", func(t *testing.T) {
		goal, err := domain.NewGoal("user-1", "ok", "", "", "", startAt, endAt)
		require.NoError(t, err)

		err = goal.Update("ok", "", "", "", "", endAt, startAt)

		assert.ErrorIs(t, err, domain.ErrGoalInvalidDates)
	})
}
