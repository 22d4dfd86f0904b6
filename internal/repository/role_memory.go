package repository

import (
	"context"
	"sort"

	"github.com/betacom-hq/backoffice/internal/domain"
)

// ListRoles returns every role, alphabetical by name.
func (s *MemoryStore) ListRoles(ctx context.Context) ([]*domain.Role, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	roles := make([]*domain.Role, 0, len(s.roles))
	for _, r := range s.roles {
		roles = append(roles, r.Clone())
	}
	sort.SliceStable(roles, func(i, j int) bool {
		return roles[i].Name < roles[j].Name
	})
	return roles, nil
}

// GetRoleByID returns a copy of the role, or nil when it does not exist.
func (s *MemoryStore) GetRoleByID(ctx context.Context, id string) (*domain.Role, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, r := range s.roles {
		if r.ID == id {
			return r.Clone(), nil
		}
	}
	return nil, nil
}

// CreateRole creates a new role.
func (s *MemoryStore) CreateRole(ctx context.Context, input domain.CreateRoleInput) (*domain.Role, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	role := &domain.Role{
		ID:          s.newID(),
		Name:        input.Name,
		Description: input.Description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	s.roles = append(s.roles, role)
	return role.Clone(), nil
}

// UpdateRole applies the non-nil fields of input and bumps UpdatedAt.
func (s *MemoryStore) UpdateRole(ctx context.Context, id string, input domain.UpdateRoleInput) (*domain.Role, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, r := range s.roles {
		if r.ID != id {
			continue
		}
		if input.Name != nil {
			r.Name = *input.Name
		}
		if input.Description != nil {
			r.Description = input.Description
		}
		r.UpdatedAt = s.now()
		return r.Clone(), nil
	}
	return nil, nil
}

// DeleteRole removes the role. Deletion is refused when it would empty
// the role set; at least one role must always exist.
func (s *MemoryStore) DeleteRole(ctx context.Context, id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := -1
	for i, r := range s.roles {
		if r.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return false, nil
	}
	if len(s.roles) == 1 {
		return false, nil
	}
	s.roles = append(s.roles[:idx], s.roles[idx+1:]...)
	return true, nil
}
