package service

import (
	"context"
	"fmt"
	"time"

	"github.com/mkarlen/fitlog/internal/domain"
)

// WorkoutService runs the ingestion pipeline: free text in, zero or more
// persisted workout records out. It also serves the owner-scoped history.
type WorkoutService struct {
	workouts  domain.WorkoutRepository
	estimator domain.ExerciseEstimator
	now       func() time.Time
}

// NewWorkoutService creates a new WorkoutService.
func NewWorkoutService(workouts domain.WorkoutRepository, estimator domain.ExerciseEstimator) *WorkoutService {
	return &WorkoutService{
		workouts:  workouts,
		estimator: estimator,
		now:       time.Now,
	}
}

// LogExercise translates a free-text exercise description into workout
// records owned by the given user. The physiological inputs for estimation
// come from the user's stored profile, not from the caller. All records from
// one submission are persisted in a single transaction; if the estimation
// call fails, nothing is written.
//
// The estimation service may identify zero exercises in the text; that is a
// success with an empty result, not an error.
func (s *WorkoutService) LogExercise(ctx context.Context, user *domain.User, exerciseText string) ([]*domain.Workout, error) {
	if exerciseText == "" {
		return nil, fmt.Errorf("%w: exercise description is required", domain.ErrInvalidInput)
	}

	estimates, err := s.estimator.Estimate(ctx, exerciseText, user.Profile())
	if err != nil {
		return nil, err
	}

	date := s.now().Format(domain.DateFormat)
	workouts := make([]*domain.Workout, 0, len(estimates))
	for _, e := range estimates {
		// Entries the service could not name are dropped; negative
		// figures are clamped to keep workout invariants.
		if e.Name == "" {
			continue
		}
		workouts = append(workouts, &domain.Workout{
			UserID:       user.ID,
			Date:         date,
			ExerciseName: e.Name,
			DurationMin:  max(e.DurationMin, 0),
			Calories:     max(e.Calories, 0),
		})
	}

	if err := s.workouts.CreateBatch(ctx, workouts); err != nil {
		return nil, fmt.Errorf("persist workouts: %w", err)
	}

	return workouts, nil
}

// ListByUser returns the user's full workout history in insertion order.
func (s *WorkoutService) ListByUser(ctx context.Context, userID int64) ([]domain.Workout, error) {
	return s.workouts.ListByUser(ctx, userID)
}
