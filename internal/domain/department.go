package domain

import (
	"context"
	"time"
)

//go:generate mockgen -destination mocks/mock_department_repository.go -package mocks github.com/betacom-hq/backoffice/internal/domain DepartmentRepository

// Department groups profiles and shops. Deleting a department nulls the
// reference on its members instead of cascading to them.
type Department struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Clone returns a deep copy of the department.
func (d *Department) Clone() *Department {
	if d == nil {
		return nil
	}
	clone := *d
	return &clone
}

type DepartmentRepository interface {
	// ListDepartments returns every department, sorted alphabetically by name
	ListDepartments(ctx context.Context) ([]*Department, error)

	// GetDepartmentByID returns the department, or nil when it does not exist
	GetDepartmentByID(ctx context.Context, id string) (*Department, error)

	// CreateDepartment creates a new department
	CreateDepartment(ctx context.Context, name string) (*Department, error)

	// UpdateDepartment renames the department. Returns nil when it does
	// not exist.
	UpdateDepartment(ctx context.Context, id string, name string) (*Department, error)

	// DeleteDepartment removes the department and nulls the department
	// reference on profiles and shops that pointed at it. Returns false
	// when the department does not exist.
	DeleteDepartment(ctx context.Context, id string) (bool, error)
}
