package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"

	"github.com/pvicentin/taskreports/internal/adapters/cache"
	adapterHTTP "github.com/pvicentin/taskreports/internal/adapters/handler/http"
	"github.com/pvicentin/taskreports/internal/adapters/repository"
	"github.com/pvicentin/taskreports/internal/core/domain"
	"github.com/pvicentin/taskreports/internal/core/services"
	"github.com/pvicentin/taskreports/internal/core/workers"
)

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// taskRepoOrCached wraps the task repository with the redis cache when
// redis is available; the report read path stays uncached either way.
func taskRepoOrCached(repo domain.TaskRepository, rdb *redis.Client) domain.TaskRepository {
	if rdb == nil {
		return repo
	}
	return repository.NewCachedTaskRepository(repo, rdb)
}

func main() {
	startTime := time.Now()

	dbUser := os.Getenv("DB_USER")
	dbPass := os.Getenv("DB_PASSWORD")
	dbName := os.Getenv("DB_NAME")
	dbHost := envOr("DB_HOST", "localhost")
	dbPort := envOr("DB_PORT", "5432")
	serverPort := envOr("PORT", "8080")

	jwtSecret := envOr("JWT_SECRET", "dev-secret-change-me")
	jwtIssuer := envOr("JWT_ISSUER", "taskreports")

	dsn := fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		dbUser, dbPass, dbHost, dbPort, dbName)

	log.Println("Connecting to database...")

	db, err := sqlx.Connect("pgx", dsn)
	if err != nil {
		log.Fatalf("Critical: Failed to connect to database: %v", err)
	}
	defer db.Close()

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(25)
	db.SetConnMaxLifetime(5 * time.Minute)

	log.Println("Database connected successfully.")

	redisDB, _ := strconv.Atoi(envOr("REDIS_DB", "0"))
	rdb, err := cache.NewRedisClient(
		envOr("REDIS_HOST", "localhost"),
		envOr("REDIS_PORT", "6379"),
		os.Getenv("REDIS_PASSWORD"),
		redisDB,
	)
	if err != nil {
		log.Printf("Redis unavailable, continuing without cache and rate limiting: %v", err)
		rdb = nil
	}

	userRepo := repository.NewPostgresUserRepository(db)
	goalRepo := repository.NewPostgresGoalRepository(db)

	taskRepo := repository.NewPostgresTaskRepository(db)
	taskHandlerRepo := taskRepoOrCached(taskRepo, rdb)

	authService := services.NewAuthService(userRepo)
	tokenService := services.NewTokenService(jwtSecret, jwtIssuer, 24*time.Hour, userRepo)
	taskService := services.NewTaskService(taskHandlerRepo)
	goalService := services.NewGoalService(goalRepo)
	reportService := services.NewReportService(taskRepo, goalRepo)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	expiryWorker := workers.NewExpiryWorker(goalRepo, 1*time.Hour)
	expiryWorker.Start(ctx)

	router := adapterHTTP.NewRouter(adapterHTTP.RouterDependencies{
		AuthHandler:   adapterHTTP.NewAuthHandler(authService, tokenService),
		TaskHandler:   adapterHTTP.NewTaskHandler(taskService),
		GoalHandler:   adapterHTTP.NewGoalHandler(goalService),
		ReportHandler: adapterHTTP.NewReportHandler(reportService),
		TokenService:  tokenService,
		DB:            db,
		Redis:         rdb,
		StartTime:     startTime,
	})

	srv := &http.Server{
		Addr:         ":" + serverPort,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		log.Printf("Task Reports API running on http://localhost:%s", serverPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Critical server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Stop signal received. Shutting down...")
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatal("Forced shutdown error:", err)
	}

	log.Println("Server stopped gracefully.")
}
