package domain

import (
	"context"
	"time"
)

// DateFormat is the calendar-date layout stored on workouts. Day granularity
// only; no time component.
const DateFormat = "02/01/2006"

// Workout is a single exercise event derived from one free-text submission.
// A submission may produce several workouts, one per exercise the estimation
// service identifies. Workouts are immutable after creation.
type Workout struct {
	ID           int64
	UserID       int64
	Date         string // DateFormat, server-local date at creation
	ExerciseName string
	DurationMin  float64
	Calories     float64
	CreatedAt    time.Time
}

// WorkoutRepository defines persistence operations for workouts.
type WorkoutRepository interface {
	// CreateBatch inserts all workouts inside a single transaction.
	// A failure partway leaves no rows behind.
	CreateBatch(ctx context.Context, workouts []*Workout) error
	// ListByUser returns the user's full history in insertion order.
	ListByUser(ctx context.Context, userID int64) ([]Workout, error)
}
