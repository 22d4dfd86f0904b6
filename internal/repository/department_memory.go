package repository

import (
	"context"
	"sort"

	"github.com/betacom-hq/backoffice/internal/domain"
)

// ListDepartments returns every department, alphabetical by name.
func (s *MemoryStore) ListDepartments(ctx context.Context) ([]*domain.Department, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	departments := make([]*domain.Department, 0, len(s.departments))
	for _, d := range s.departments {
		departments = append(departments, d.Clone())
	}
	sort.SliceStable(departments, func(i, j int) bool {
		return departments[i].Name < departments[j].Name
	})
	return departments, nil
}

// GetDepartmentByID returns a copy of the department, or nil when it
// does not exist.
func (s *MemoryStore) GetDepartmentByID(ctx context.Context, id string) (*domain.Department, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.findDepartment(id).Clone(), nil
}

// CreateDepartment creates a new department.
func (s *MemoryStore) CreateDepartment(ctx context.Context, name string) (*domain.Department, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	department := &domain.Department{
		ID:        s.newID(),
		Name:      name,
		CreatedAt: now,
		UpdatedAt: now,
	}
	s.departments = append(s.departments, department)
	return department.Clone(), nil
}

// UpdateDepartment renames the department and bumps UpdatedAt.
func (s *MemoryStore) UpdateDepartment(ctx context.Context, id string, name string) (*domain.Department, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	department := s.findDepartment(id)
	if department == nil {
		return nil, nil
	}
	department.Name = name
	department.UpdatedAt = s.now()
	return department.Clone(), nil
}

// DeleteDepartment removes the department. Profiles and shops that
// pointed at it keep existing with the reference nulled by the sweep.
func (s *MemoryStore) DeleteDepartment(ctx context.Context, id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := -1
	for i, d := range s.departments {
		if d.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return false, nil
	}
	s.departments = append(s.departments[:idx], s.departments[idx+1:]...)

	s.integritySweep()
	return true, nil
}

func (s *MemoryStore) findDepartment(id string) *domain.Department {
	for _, d := range s.departments {
		if d.ID == id {
			return d
		}
	}
	return nil
}
