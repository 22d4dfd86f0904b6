package domain

import (
	"context"
	"time"
)

// ExerciseProgress tracks one user's progress on one learning exercise.
// Rows are unique per (user, exercise) and written through upsert.
type ExerciseProgress struct {
	ID               string    `json:"id"`
	UserID           string    `json:"user_id"`
	ExerciseID       string    `json:"exercise_id"`
	Completed        bool      `json:"completed"`
	VideoWatched     bool      `json:"video_watched"`
	TimeSpentSeconds int       `json:"time_spent_seconds"`
	ViewCount        int       `json:"view_count"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// Clone returns a deep copy of the progress row.
func (p *ExerciseProgress) Clone() *ExerciseProgress {
	if p == nil {
		return nil
	}
	clone := *p
	return &clone
}

type UpsertProgressInput struct {
	UserID           string `json:"user_id"`
	ExerciseID       string `json:"exercise_id"`
	Completed        bool   `json:"completed"`
	VideoWatched     bool   `json:"video_watched"`
	TimeSpentSeconds int    `json:"time_spent_seconds"`
	ViewCount        int    `json:"view_count"`
}

func (i *UpsertProgressInput) Validate() error {
	if i.UserID == "" {
		return NewValidationError("user id is required")
	}
	if i.ExerciseID == "" {
		return NewValidationError("exercise id is required")
	}
	return nil
}

type ExerciseProgressRepository interface {
	// GetUserProgress returns every progress row for the user
	GetUserProgress(ctx context.Context, userID string) ([]*ExerciseProgress, error)

	// UpsertProgress creates or overwrites the (user, exercise) row
	UpsertProgress(ctx context.Context, input UpsertProgressInput) (*ExerciseProgress, error)
}
