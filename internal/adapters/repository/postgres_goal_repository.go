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
)

type PostgresGoalRepository struct {
	db *sqlx.DB
}

func NewPostgresGoalRepository(db *sqlx.DB) *PostgresGoalRepository {
	return &PostgresGoalRepository{db: db}
}

func (r *PostgresGoalRepository) Create(ctx context.Context, goal *domain.Goal) error {
	query := `
		INSERT INTO goals (
			id, user_id, name, description, category,
			status, type, start_at, end_at,
			created_at, updated_at
		) VALUES (
			:id, :user_id, :name, :description, :category,
			:status, :type, :start_at, :end_at,
			:created_at, :updated_at
		)`

	_, err := r.db.NamedExecContext(ctx, query, goal)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23503" {
			return errors.New("referenced user does not exist")
		}
		return fmt.Errorf("failed to insert goal: %w", err)
	}
	return nil
}

func (r *PostgresGoalRepository) GetByID(ctx context.Context, id string) (*domain.Goal, error) {
	var goal domain.Goal
	query := `SELECT * FROM goals WHERE id = $1`

	err := r.db.GetContext(ctx, &goal, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrGoalNotFound
		}
		return nil, fmt.Errorf("goal query error: %w", err)
	}
	return &goal, nil
}

func (r *PostgresGoalRepository) ListByUserID(ctx context.Context, userID string) ([]*domain.Goal, error) {
	goals := []*domain.Goal{}

	query := `
		SELECT * FROM goals
		WHERE user_id = $1
		ORDER BY start_at DESC`

	if err := r.db.SelectContext(ctx, &goals, query, userID); err != nil {
		return nil, fmt.Errorf("goal list query error: %w", err)
	}
	return goals, nil
}

// ListByDateRange is the record-reader path the report engine uses.
// An empty userID spans all users.
func (r *PostgresGoalRepository) ListByDateRange(ctx context.Context, userID string, from, to time.Time) ([]*domain.Goal, error) {
	goals := []*domain.Goal{}

	query := `
		SELECT * FROM goals
		WHERE start_at >= $1 AND start_at <= $2`
	args := []interface{}{from, to}

	if userID != "" {
		query += ` AND user_id = $3`
		args = append(args, userID)
	}
	query += ` ORDER BY start_at ASC, id ASC`

	if err := r.db.SelectContext(ctx, &goals, query, args...); err != nil {
		return nil, fmt.Errorf("goal range query error: %w", err)
	}
	return goals, nil
}

// ListOpenEndedBefore feeds the expiry worker: goals past their
// deadline whose status is still open.
func (r *PostgresGoalRepository) ListOpenEndedBefore(ctx context.Context, cutoff time.Time) ([]*domain.Goal, error) {
	goals := []*domain.Goal{}

	query := `
		SELECT * FROM goals
		WHERE end_at < $1
		  AND status IN ($2, $3)
		ORDER BY end_at ASC`

	err := r.db.SelectContext(ctx, &goals, query, cutoff, domain.GoalStatusInProgress, domain.GoalStatusNotStarted)
	if err != nil {
		return nil, fmt.Errorf("goal expiry query error: %w", err)
	}
	return goals, nil
}

func (r *PostgresGoalRepository) Update(ctx context.Context, goal *domain.Goal) error {
	query := `
		UPDATE goals SET
			name = :name,
			description = :description,
			category = :category,
			status = :status,
			type = :type,
			start_at = :start_at,
			end_at = :end_at,
			updated_at = :updated_at
		WHERE id = :id`

	result, err := r.db.NamedExecContext(ctx, query, goal)
	if err != nil {
		return fmt.Errorf("goal update failed: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.ErrGoalNotFound
	}
	return nil
}

func (r *PostgresGoalRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM goals WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("goal delete failed: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.ErrGoalNotFound
	}
	return nil
}
