package service

import (
	"context"
	"fmt"

	"github.com/betacom-hq/backoffice/internal/domain"
	"github.com/betacom-hq/backoffice/pkg/logger"
)

// UserService manages profiles: listing with filters, CRUD, and bulk
// creation. Manager references are validated at write time so the org
// chart stays acyclic.
type UserService struct {
	repo   domain.ProfileRepository
	logger logger.Logger
}

var _ domain.UserServiceInterface = (*UserService)(nil)

// NewUserService creates a new UserService
func NewUserService(repo domain.ProfileRepository, logger logger.Logger) *UserService {
	return &UserService{
		repo:   repo,
		logger: logger,
	}
}

// GetProfileByID returns the profile, or nil when it does not exist.
func (s *UserService) GetProfileByID(ctx context.Context, id string) (*domain.Profile, error) {
	return s.repo.GetProfileByID(ctx, id)
}

// ListUsers returns one page of the filtered user listing.
func (s *UserService) ListUsers(ctx context.Context, filter domain.ProfileFilter) (*domain.ProfileListResponse, error) {
	users, total, err := s.repo.ListProfiles(ctx, filter)
	if err != nil {
		s.logger.WithField("error", err.Error()).Error("Failed to list users")
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return &domain.ProfileListResponse{
		Users:      users,
		TotalCount: total,
	}, nil
}

// CreateUser validates the input, checks the manager reference, and
// creates the profile with its credential.
func (s *UserService) CreateUser(ctx context.Context, input domain.CreateUserInput) (*domain.Profile, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}
	if input.ManagerID != nil {
		if err := s.validateManagerChain(ctx, "", *input.ManagerID); err != nil {
			return nil, err
		}
	}

	profile, err := s.repo.CreateProfile(ctx, input)
	if err != nil {
		return nil, err
	}

	s.logger.WithField("user_id", profile.ID).WithField("email", profile.Email).Info("User created")
	return profile, nil
}

// UpdateUser applies a partial update. Returns nil when the profile does
// not exist.
func (s *UserService) UpdateUser(ctx context.Context, id string, input domain.UpdateUserInput) (*domain.Profile, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}
	if input.ManagerID != nil && !input.ClearManager {
		if err := s.validateManagerChain(ctx, id, *input.ManagerID); err != nil {
			return nil, err
		}
	}

	profile, err := s.repo.UpdateProfile(ctx, id, input)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, nil
	}

	s.logger.WithField("user_id", id).Info("User updated")
	return profile, nil
}

// DeleteUser removes the profile. Returns false when it does not exist.
func (s *UserService) DeleteUser(ctx context.Context, id string) (bool, error) {
	deleted, err := s.repo.DeleteProfile(ctx, id)
	if err != nil {
		return false, err
	}
	if deleted {
		s.logger.WithField("user_id", id).Info("User deleted")
	}
	return deleted, nil
}

// BulkCreateUsers creates users one by one, collecting per-item results.
// A failed item never aborts the batch.
func (s *UserService) BulkCreateUsers(ctx context.Context, inputs []domain.CreateUserInput) (*domain.BulkCreateResult, error) {
	result := &domain.BulkCreateResult{
		Results: make([]domain.BulkCreateItemResult, 0, len(inputs)),
	}
	for _, input := range inputs {
		item := domain.BulkCreateItemResult{Email: input.Email}
		profile, err := s.CreateUser(ctx, input)
		if err != nil {
			item.Error = err.Error()
		} else {
			item.UserID = profile.ID
			result.SuccessCount++
		}
		result.Results = append(result.Results, item)
	}

	s.logger.WithField("total", len(inputs)).WithField("succeeded", result.SuccessCount).Info("Bulk user creation finished")
	return result, nil
}

// validateManagerChain rejects a manager assignment that is missing,
// self-referential, or would close a reporting cycle. profileID is empty
// for a create, where no cycle through the new profile is possible yet
// but the manager must still exist.
func (s *UserService) validateManagerChain(ctx context.Context, profileID, managerID string) error {
	if managerID == profileID && profileID != "" {
		return domain.NewValidationError("a user cannot be their own manager")
	}

	seen := map[string]bool{}
	current := managerID
	for current != "" {
		if current == profileID {
			return domain.NewValidationError("manager assignment would create a reporting cycle")
		}
		if seen[current] {
			// A pre-existing cycle upstream; refuse to attach to it
			return domain.NewValidationError("manager chain contains a cycle")
		}
		seen[current] = true

		manager, err := s.repo.GetProfileByID(ctx, current)
		if err != nil {
			return fmt.Errorf("failed to resolve manager chain: %w", err)
		}
		if manager == nil {
			if current == managerID {
				return domain.NewValidationError("manager does not exist")
			}
			break
		}
		if manager.ManagerID == nil {
			break
		}
		current = *manager.ManagerID
	}
	return nil
}
