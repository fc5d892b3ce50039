package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/mkarlen/fitlog/internal/domain"
)

// WorkoutRepository implements domain.WorkoutRepository using SQLite.
type WorkoutRepository struct {
	db *sql.DB
}

// NewWorkoutRepository creates a new SQLite-backed WorkoutRepository.
func NewWorkoutRepository(db *DB) *WorkoutRepository {
	return &WorkoutRepository{db: db.SqlDB}
}

// CreateBatch inserts all workouts inside a single transaction so one
// submission is all-or-nothing. An empty batch is a no-op.
func (r *WorkoutRepository) CreateBatch(ctx context.Context, workouts []*domain.Workout) error {
	if len(workouts) == 0 {
		return nil
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback()

	now := time.Now().UTC()
	for _, w := range workouts {
		result, err := tx.ExecContext(ctx,
			`INSERT INTO workouts (user_id, date, exercise_name, duration_min, calories, created_at)
			 VALUES (?, ?, ?, ?, ?, ?)`,
			w.UserID, w.Date, w.ExerciseName, w.DurationMin, w.Calories, now,
		)
		if err != nil {
			return fmt.Errorf("insert workout: %w", err)
		}

		id, err := result.LastInsertId()
		if err != nil {
			return fmt.Errorf("get last insert id: %w", err)
		}
		w.ID = id
		w.CreatedAt = now
	}

	return tx.Commit()
}

// ListByUser returns all workouts owned by the given user in insertion order.
func (r *WorkoutRepository) ListByUser(ctx context.Context, userID int64) ([]domain.Workout, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, user_id, date, exercise_name, duration_min, calories, created_at
		 FROM workouts WHERE user_id = ? ORDER BY id`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("query workouts: %w", err)
	}
	defer rows.Close()

	var workouts []domain.Workout
	for rows.Next() {
		var w domain.Workout
		if err := rows.Scan(&w.ID, &w.UserID, &w.Date, &w.ExerciseName, &w.DurationMin, &w.Calories, &w.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan workout: %w", err)
		}
		workouts = append(workouts, w)
	}
	return workouts, rows.Err()
}
