package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pvicentin/taskreports/internal/adapters/handler/http/middleware"
	"github.com/pvicentin/taskreports/internal/adapters/repository"
	"github.com/pvicentin/taskreports/internal/core/domain"
	"github.com/pvicentin/taskreports/internal/core/services"
)

func setupGoalRouter(t *testing.T, repo *repository.InMemoryGoalRepository, userID string) *gin.Engine {
	t.Helper()

	gin.SetMode(gin.TestMode)
	router := gin.New()

	group := router.Group("/api/v1")
	group.Use(func(c *gin.Context) {
		c.Set(middleware.ContextUserIDKey, userID)
		c.Next()
	})

	NewGoalHandler(services.NewGoalService(repo)).RegisterRoutes(group)

	return router
}

func TestGoalHandler_Create(t *testing.T) {
	t.Run("Success: Creates and returns the goal", func(t *testing.T) {
		repo := repository.NewInMemoryGoalRepository()
		router := setupGoalRouter(t, repo, "user-1")

		payload := map[string]any{
			"name":     "Read 3 books",
			"category": "Learning",
			"start_at": "2024-05-01T00:00:00Z",
			"end_at":   "2024-05-31T00:00:00Z",
		}
		body, _ := json.Marshal(payload)

		req := httptest.NewRequest(http.MethodPost, "/api/v1/goals", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusCreated, w.Code)

		var created domain.Goal
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
		assert.Equal(t, "user-1", created.UserID)
		assert.Equal(t, domain.GoalStatusNotStarted, created.Status)
	})

	t.Run("Fail: End before start", func(t *testing.T) {
		router := setupGoalRouter(t, repository.NewInMemoryGoalRepository(), "user-1")

		payload := map[string]any{
			"name":     "Backwards",
			"start_at": "2024-05-31T00:00:00Z",
			"end_at":   "2024-05-01T00:00:00Z",
		}
		body, _ := json.Marshal(payload)

		req := httptest.NewRequest(http.MethodPost, "/api/v1/goals", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestGoalHandler_Update(t *testing.T) {
	startAt := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)

	t.Run("Success: Marks the goal completed", func(t *testing.T) {
		repo := repository.NewInMemoryGoalRepository()
		router := setupGoalRouter(t, repo, "user-1")

		goal, err := domain.NewGoal("user-1", "Run 50km", "", "Health", "", startAt, startAt.AddDate(0, 1, 0))
		require.NoError(t, err)
		require.NoError(t, repo.Create(context.Background(), goal))

		body, _ := json.Marshal(map[string]any{"status": "Completed"})
		req := httptest.NewRequest(http.MethodPut, "/api/v1/goals/"+goal.ID, bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)

		stored, err := repo.GetByID(context.Background(), goal.ID)
		require.NoError(t, err)
		assert.Equal(t, domain.GoalStatusCompleted, stored.Status)
	})

	t.Run("Fail: Unknown id yields 404", func(t *testing.T) {
		router := setupGoalRouter(t, repository.NewInMemoryGoalRepository(), "user-1")

		body, _ := json.Marshal(map[string]any{"name": "New"})
		req := httptest.NewRequest(http.MethodPut, "/api/v1/goals/missing", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestGoalHandler_Delete(t *testing.T) {
	startAt := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)

	repo := repository.NewInMemoryGoalRepository()
	router := setupGoalRouter(t, repo, "user-1")

	goal, err := domain.NewGoal("user-1", "Delete me", "", "", "", startAt, startAt.AddDate(0, 1, 0))
	require.NoError(t, err)
	require.NoError(t, repo.Create(context.Background(), goal))

	req := httptest.NewRequest(http.MethodDelete, "/api/v1/goals/"+goal.ID, nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
}
