package domain

import "context"

// EstimationProfile carries the physiological inputs the estimation service
// needs to convert free text into duration and calorie figures.
type EstimationProfile struct {
	Gender   string
	WeightKg float64
	HeightCm float64
	Age      int
}

// ExerciseEstimate is one structured exercise entry returned by the
// estimation service.
type ExerciseEstimate struct {
	Name        string
	DurationMin float64
	Calories    float64
}

// ExerciseEstimator translates a free-text exercise description plus a
// physiological profile into zero or more structured estimates. The concrete
// implementation calls an external HTTP API; tests inject a fake.
type ExerciseEstimator interface {
	Estimate(ctx context.Context, query string, profile EstimationProfile) ([]ExerciseEstimate, error)
}
