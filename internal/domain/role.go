package domain

import (
	"context"
	"time"
)

//go:generate mockgen -destination mocks/mock_role_repository.go -package mocks github.com/betacom-hq/backoffice/internal/domain RoleRepository

// RoleName identifies a role by value. Profiles reference roles by name,
// not by id. Names outside the enumerated set are accepted so synthetic
// roles can be added at runtime.
type RoleName string

const (
	RoleAdmin          RoleName = "admin"
	RoleLeader         RoleName = "leader"
	RoleDepartmentHead RoleName = "department_head"
	RoleSpecialist     RoleName = "specialist"
	RoleTrainee        RoleName = "trainee"

	// RoleDeleted is the soft-delete sentinel: profiles carrying it are
	// excluded from every listing.
	RoleDeleted RoleName = "deleted"
)

// Role represents a named role in the system
type Role struct {
	ID          string    `json:"id"`
	Name        RoleName  `json:"name"`
	Description *string   `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Clone returns a deep copy of the role.
func (r *Role) Clone() *Role {
	if r == nil {
		return nil
	}
	clone := *r
	if r.Description != nil {
		desc := *r.Description
		clone.Description = &desc
	}
	return &clone
}

type CreateRoleInput struct {
	Name        RoleName `json:"name"`
	Description *string  `json:"description,omitempty"`
}

func (i *CreateRoleInput) Validate() error {
	if i.Name == "" {
		return NewValidationError("role name is required")
	}
	return nil
}

type UpdateRoleInput struct {
	Name        *RoleName `json:"name,omitempty"`
	Description *string   `json:"description,omitempty"`
}

type RoleRepository interface {
	// ListRoles returns every role, sorted alphabetically by name
	ListRoles(ctx context.Context) ([]*Role, error)

	// GetRoleByID returns the role, or nil when it does not exist
	GetRoleByID(ctx context.Context, id string) (*Role, error)

	// CreateRole creates a new role
	CreateRole(ctx context.Context, input CreateRoleInput) (*Role, error)

	// UpdateRole applies the non-nil fields of input. Returns nil when
	// the role does not exist.
	UpdateRole(ctx context.Context, id string, input UpdateRoleInput) (*Role, error)

	// DeleteRole removes the role. Returns false when the role does not
	// exist or when deleting it would leave the role set empty.
	DeleteRole(ctx context.Context, id string) (bool, error)
}
