package service

import (
	"context"

	"github.com/betacom-hq/backoffice/internal/domain"
	"github.com/betacom-hq/backoffice/pkg/logger"
)

// ExerciseService tracks learning-exercise progress per user.
type ExerciseService struct {
	repo   domain.ExerciseProgressRepository
	logger logger.Logger
}

// NewExerciseService creates a new ExerciseService
func NewExerciseService(repo domain.ExerciseProgressRepository, logger logger.Logger) *ExerciseService {
	return &ExerciseService{
		repo:   repo,
		logger: logger,
	}
}

// GetUserProgress returns every progress row for the user.
func (s *ExerciseService) GetUserProgress(ctx context.Context, userID string) ([]*domain.ExerciseProgress, error) {
	if userID == "" {
		return nil, domain.NewValidationError("user id is required")
	}
	return s.repo.GetUserProgress(ctx, userID)
}

// UpsertProgress creates or overwrites the (user, exercise) row.
func (s *ExerciseService) UpsertProgress(ctx context.Context, input domain.UpsertProgressInput) (*domain.ExerciseProgress, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}
	return s.repo.UpsertProgress(ctx, input)
}
