package repository

import (
	"context"
	"sort"

	"github.com/betacom-hq/backoffice/internal/domain"
)

// GetUserProgress returns every progress row for the user, ordered by
// exercise id.
func (s *MemoryStore) GetUserProgress(ctx context.Context, userID string) ([]*domain.ExerciseProgress, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows := make([]*domain.ExerciseProgress, 0)
	for _, p := range s.progress {
		if p.UserID == userID {
			rows = append(rows, p.Clone())
		}
	}
	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].ExerciseID < rows[j].ExerciseID
	})
	return rows, nil
}

// UpsertProgress creates or overwrites the (user, exercise) row.
func (s *MemoryStore) UpsertProgress(ctx context.Context, input domain.UpsertProgressInput) (*domain.ExerciseProgress, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	for _, p := range s.progress {
		if p.UserID == input.UserID && p.ExerciseID == input.ExerciseID {
			p.Completed = input.Completed
			p.VideoWatched = input.VideoWatched
			p.TimeSpentSeconds = input.TimeSpentSeconds
			p.ViewCount = input.ViewCount
			p.UpdatedAt = now
			return p.Clone(), nil
		}
	}

	row := &domain.ExerciseProgress{
		ID:               s.newID(),
		UserID:           input.UserID,
		ExerciseID:       input.ExerciseID,
		Completed:        input.Completed,
		VideoWatched:     input.VideoWatched,
		TimeSpentSeconds: input.TimeSpentSeconds,
		ViewCount:        input.ViewCount,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	s.progress = append(s.progress, row)
	return row.Clone(), nil
}
