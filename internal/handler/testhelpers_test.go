package handler_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/mkarlen/fitlog/internal/domain"
	"github.com/mkarlen/fitlog/internal/repository/sqlite"
	"github.com/mkarlen/fitlog/internal/service"
)

const testJWTSecret = "test-secret-key-for-handler-tests"

// fakeEstimator is an in-memory ExerciseEstimator for handler tests.
type fakeEstimator struct {
	estimates []domain.ExerciseEstimate
	err       error
}

func (f *fakeEstimator) Estimate(ctx context.Context, query string, profile domain.EstimationProfile) ([]domain.ExerciseEstimate, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.estimates, nil
}

func newTestServices(t *testing.T) (*service.AuthService, *service.WorkoutService, *service.ChartService, *fakeEstimator) {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test.db")
	db, err := sqlite.New(dbPath)
	if err != nil {
		t.Fatalf("New DB: %v", err)
	}
	if err := db.Migrate(context.Background()); err != nil {
		t.Fatalf("Migrate: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	estimator := &fakeEstimator{}
	// Use cost 4 for fast tests.
	auth := service.NewAuthService(db.Users(), testJWTSecret, 4)
	workouts := service.NewWorkoutService(db.Workouts(), estimator)
	charts := service.NewChartService(db.Workouts(), 160, 160)
	return auth, workouts, charts, estimator
}
