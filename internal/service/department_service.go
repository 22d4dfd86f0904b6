package service

import (
	"context"

	"github.com/betacom-hq/backoffice/internal/domain"
	"github.com/betacom-hq/backoffice/pkg/logger"
)

// DepartmentService manages departments. Deleting a department detaches
// its members rather than deleting them.
type DepartmentService struct {
	repo   domain.DepartmentRepository
	logger logger.Logger
}

// NewDepartmentService creates a new DepartmentService
func NewDepartmentService(repo domain.DepartmentRepository, logger logger.Logger) *DepartmentService {
	return &DepartmentService{
		repo:   repo,
		logger: logger,
	}
}

// ListDepartments returns every department, alphabetical by name.
func (s *DepartmentService) ListDepartments(ctx context.Context) ([]*domain.Department, error) {
	return s.repo.ListDepartments(ctx)
}

// CreateDepartment creates a department.
func (s *DepartmentService) CreateDepartment(ctx context.Context, name string) (*domain.Department, error) {
	if name == "" {
		return nil, domain.NewValidationError("department name is required")
	}

	department, err := s.repo.CreateDepartment(ctx, name)
	if err != nil {
		return nil, err
	}

	s.logger.WithField("department_id", department.ID).WithField("name", name).Info("Department created")
	return department, nil
}

// UpdateDepartment renames the department. Returns nil when it does not
// exist.
func (s *DepartmentService) UpdateDepartment(ctx context.Context, id string, name string) (*domain.Department, error) {
	if name == "" {
		return nil, domain.NewValidationError("department name is required")
	}
	return s.repo.UpdateDepartment(ctx, id, name)
}

// DeleteDepartment removes the department and detaches its profiles and
// shops. Returns false when it does not exist.
func (s *DepartmentService) DeleteDepartment(ctx context.Context, id string) (bool, error) {
	deleted, err := s.repo.DeleteDepartment(ctx, id)
	if err != nil {
		return false, err
	}
	if deleted {
		s.logger.WithField("department_id", id).Info("Department deleted")
	}
	return deleted, nil
}
