package service

import (
	"context"

	"github.com/betacom-hq/backoffice/internal/domain"
	"github.com/betacom-hq/backoffice/pkg/logger"
)

// RoleService manages the role catalog.
type RoleService struct {
	repo   domain.RoleRepository
	logger logger.Logger
}

// NewRoleService creates a new RoleService
func NewRoleService(repo domain.RoleRepository, logger logger.Logger) *RoleService {
	return &RoleService{
		repo:   repo,
		logger: logger,
	}
}

// ListRoles returns every role, alphabetical by name.
func (s *RoleService) ListRoles(ctx context.Context) ([]*domain.Role, error) {
	return s.repo.ListRoles(ctx)
}

// CreateRole validates and creates a role.
func (s *RoleService) CreateRole(ctx context.Context, input domain.CreateRoleInput) (*domain.Role, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	role, err := s.repo.CreateRole(ctx, input)
	if err != nil {
		return nil, err
	}

	s.logger.WithField("role_id", role.ID).WithField("name", string(role.Name)).Info("Role created")
	return role, nil
}

// UpdateRole applies a partial update. Returns nil when the role does not
// exist.
func (s *RoleService) UpdateRole(ctx context.Context, id string, input domain.UpdateRoleInput) (*domain.Role, error) {
	if input.Name != nil && *input.Name == "" {
		return nil, domain.NewValidationError("role name cannot be empty")
	}
	return s.repo.UpdateRole(ctx, id, input)
}

// DeleteRole removes the role. Returns false when it does not exist or
// when it is the last role.
func (s *RoleService) DeleteRole(ctx context.Context, id string) (bool, error) {
	deleted, err := s.repo.DeleteRole(ctx, id)
	if err != nil {
		return false, err
	}
	if !deleted {
		s.logger.WithField("role_id", id).Warn("Role deletion refused")
	}
	return deleted, nil
}
