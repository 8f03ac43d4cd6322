package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/pvicentin/taskreports/internal/core/domain"

	_ "github.com/jackc/pgx/v5/stdlib"
)

type PostgresTaskRepository struct {
	db *sqlx.DB
}

func NewPostgresTaskRepository(db *sqlx.DB) *PostgresTaskRepository {
	return &PostgresTaskRepository{db: db}
}

func (r *PostgresTaskRepository) Create(ctx context.Context, task *domain.Task) error {
	query := `
		INSERT INTO tasks (
			id, user_id, title, description, status,
			category, priority, begin_at, completed_at,
			created_at, updated_at
		) VALUES (
			:id, :user_id, :title, :description, :status,
			:category, :priority, :begin_at, :completed_at,
			:created_at, :updated_at
		)`

	_, err := r.db.NamedExecContext(ctx, query, task)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23503" {
			return errors.New("referenced user does not exist")
		}
		return fmt.Errorf("failed to insert task: %w", err)
	}
	return nil
}

func (r *PostgresTaskRepository) GetByID(ctx context.Context, id string) (*domain.Task, error) {
	var task domain.Task
	query := `SELECT * FROM tasks WHERE id = $1`

	err := r.db.GetContext(ctx, &task, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrTaskNotFound
		}
		return nil, fmt.Errorf("task query error: %w", err)
	}
	return &task, nil
}

func (r *PostgresTaskRepository) ListByUserID(ctx context.Context, userID string) ([]*domain.Task, error) {
	tasks := []*domain.Task{}

	query := `
		SELECT * FROM tasks
		WHERE user_id = $1
		ORDER BY begin_at DESC`

	if err := r.db.SelectContext(ctx, &tasks, query, userID); err != nil {
		return nil, fmt.Errorf("task list query error: %w", err)
	}
	return tasks, nil
}

// ListByDateRange is the record-reader path the report engine uses.
// An empty userID spans all users.
func (r *PostgresTaskRepository) ListByDateRange(ctx context.Context, userID string, from, to time.Time) ([]*domain.Task, error) {
	tasks := []*domain.Task{}

	query := `
		SELECT * FROM tasks
		WHERE begin_at >= $1 AND begin_at <= $2`
	args := []interface{}{from, to}

	if userID != "" {
		query += ` AND user_id = $3`
		args = append(args, userID)
	}
	query += ` ORDER BY begin_at ASC, id ASC`

	if err := r.db.SelectContext(ctx, &tasks, query, args...); err != nil {
		return nil, fmt.Errorf("task range query error: %w", err)
	}
	return tasks, nil
}

func (r *PostgresTaskRepository) Update(ctx context.Context, task *domain.Task) error {
	query := `
		UPDATE tasks SET
			title = :title,
			description = :description,
			status = :status,
			category = :category,
			priority = :priority,
			begin_at = :begin_at,
			completed_at = :completed_at,
			updated_at = :updated_at
		WHERE id = :id`

	result, err := r.db.NamedExecContext(ctx, query, task)
	if err != nil {
		return fmt.Errorf("task update failed: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.ErrTaskNotFound
	}
	return nil
}

func (r *PostgresTaskRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM tasks WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("task delete failed: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.ErrTaskNotFound
	}
	return nil
}
