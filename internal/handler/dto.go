package handler

import (
	"encoding/base64"
	"time"

	"github.com/mkarlen/fitlog/internal/domain"
	"github.com/mkarlen/fitlog/internal/service"
)

// UserDTO is the JSON representation of a user. The password hash never
// leaves the server.
type UserDTO struct {
	ID          int64   `json:"id"`
	Email       string  `json:"email"`
	DisplayName string  `json:"displayName"`
	Gender      string  `json:"gender"`
	HeightCm    float64 `json:"heightCm"`
	WeightKg    float64 `json:"weightKg"`
	Age         int     `json:"age"`
	CreatedAt   string  `json:"createdAt"`
}

func toUserDTO(u *domain.User) UserDTO {
	return UserDTO{
		ID:          u.ID,
		Email:       u.Email,
		DisplayName: u.DisplayName,
		Gender:      u.Gender,
		HeightCm:    u.HeightCm,
		WeightKg:    u.WeightKg,
		Age:         u.Age,
		CreatedAt:   u.CreatedAt.Format(time.RFC3339),
	}
}

// WorkoutDTO is the JSON representation of a workout.
type WorkoutDTO struct {
	ID           int64   `json:"id"`
	Date         string  `json:"date"`
	ExerciseName string  `json:"exerciseName"`
	DurationMin  float64 `json:"durationMin"`
	Calories     float64 `json:"calories"`
}

func toWorkoutDTO(w domain.Workout) WorkoutDTO {
	return WorkoutDTO{
		ID:           w.ID,
		Date:         w.Date,
		ExerciseName: w.ExerciseName,
		DurationMin:  w.DurationMin,
		Calories:     w.Calories,
	}
}

func toWorkoutDTOs(workouts []domain.Workout) []WorkoutDTO {
	dtos := make([]WorkoutDTO, len(workouts))
	for i, w := range workouts {
		dtos[i] = toWorkoutDTO(w)
	}
	return dtos
}

// CategoryDTO is one slice of the calorie breakdown.
type CategoryDTO struct {
	Name     string  `json:"name"`
	Calories float64 `json:"calories"`
	Percent  float64 `json:"percent"`
}

// SummaryDTO carries the per-exercise calorie totals and the donut chart as
// a base64-encoded PNG for inline embedding. An empty categories list means
// the user has no workouts yet.
type SummaryDTO struct {
	Categories []CategoryDTO `json:"categories"`
	Chart      string        `json:"chart"`
}

func toSummaryDTO(s *service.Summary) SummaryDTO {
	categories := make([]CategoryDTO, len(s.Categories))
	for i, c := range s.Categories {
		categories[i] = CategoryDTO{Name: c.Name, Calories: c.Calories, Percent: c.Percent}
	}
	return SummaryDTO{
		Categories: categories,
		Chart:      base64.StdEncoding.EncodeToString(s.ChartPNG),
	}
}
