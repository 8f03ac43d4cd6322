package middleware_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/pvicentin/taskreports/internal/adapters/handler/http/middleware"
	"github.com/pvicentin/taskreports/internal/core/domain"
	"github.com/pvicentin/taskreports/internal/core/services"
)

type mockUserRepo struct {
	mock.Mock
}

func (m *mockUserRepo) Create(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *mockUserRepo) GetByID(ctx context.Context, id string) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *mockUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func setupProtectedRouter(t *testing.T, tokens *services.TokenService) *gin.Engine {
	t.Helper()

	gin.SetMode(gin.TestMode)
	router := gin.New()

	router.GET("/protected", middleware.AuthMiddleware(tokens), func(c *gin.Context) {
		userID, ok := middleware.GetUserID(c)
		require.True(t, ok)
		c.JSON(http.StatusOK, gin.H{"user_id": userID})
	})

	return router
}

func TestAuthMiddleware(t *testing.T) {
	repo := new(mockUserRepo)
	repo.On("GetByID", mock.Anything, "user-1").Return(&domain.User{ID: "user-1"}, nil)

	tokens := services.NewTokenService("test-secret", "taskreports", time.Hour, repo)

	t.Run("Success: Valid bearer token passes through", func(t *testing.T) {
		router := setupProtectedRouter(t, tokens)

		token, err := tokens.GenerateToken("user-1")
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "user-1")
	})

	t.Run("Fail: Missing header", func(t *testing.T) {
		router := setupProtectedRouter(t, tokens)

		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("Fail: Wrong scheme", func(t *testing.T) {
		router := setupProtectedRouter(t, tokens)

		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Basic dXNlcjpwYXNz")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("Fail: Tampered token", func(t *testing.T) {
		router := setupProtectedRouter(t, tokens)

		token, err := tokens.GenerateToken("user-1")
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer "+token+"x")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("Fail: Token for a deleted user", func(t *testing.T) {
		ghostRepo := new(mockUserRepo)
		ghostRepo.On("GetByID", mock.Anything, "ghost").Return(nil, domain.ErrUserNotFound)

		ghostTokens := services.NewTokenService("test-secret", "taskreports", time.Hour, ghostRepo)
		router := setupProtectedRouter(t, ghostTokens)

		token, err := ghostTokens.GenerateToken("ghost")
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}
