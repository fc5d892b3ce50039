package domain

import (
	"context"
	"time"
)

// Gender values accepted at registration.
const (
	GenderMale   = "male"
	GenderFemale = "female"
)

// User represents a registered user of the application. The physiological
// attributes (gender, height, weight, age) feed the exercise estimation
// service and are fixed at registration.
type User struct {
	ID           int64
	Email        string
	DisplayName  string
	PasswordHash string
	Gender       string
	HeightCm     float64
	WeightKg     float64
	Age          int
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Profile returns the physiological attributes used for exercise estimation.
// Estimation inputs always come from the stored profile, never from the
// request, so callers cannot spoof them.
func (u *User) Profile() EstimationProfile {
	return EstimationProfile{
		Gender:   u.Gender,
		WeightKg: u.WeightKg,
		HeightCm: u.HeightCm,
		Age:      u.Age,
	}
}

// UserRepository defines persistence operations for users.
type UserRepository interface {
	Create(ctx context.Context, user *User) error
	GetByID(ctx context.Context, id int64) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
}
