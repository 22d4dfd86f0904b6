package domain

import (
	"context"
	"time"

	"github.com/asaskevich/govalidator"
)

//go:generate mockgen -destination mocks/mock_profile_repository.go -package mocks github.com/betacom-hq/backoffice/internal/domain ProfileRepository
//go:generate mockgen -destination mocks/mock_user_service.go -package mocks github.com/betacom-hq/backoffice/internal/domain UserServiceInterface

// Filter sentinels. "all" disables a filter; the "no-*" values match rows
// whose reference is null.
const (
	FilterAll       = "all"
	FilterNoTeam    = "no-team"
	FilterNoManager = "no-manager"
)

type WorkType string

const (
	WorkTypeFulltime WorkType = "fulltime"
	WorkTypeParttime WorkType = "parttime"
)

// Profile is a user's business record, distinct from the credential used
// to sign in. Email uniqueness is enforced at the credential layer only.
type Profile struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	FullName     string    `json:"full_name"`
	Phone        string    `json:"phone,omitempty"`
	Role         RoleName  `json:"role"`
	WorkType     WorkType  `json:"work_type"`
	DepartmentID *string   `json:"department_id,omitempty"`
	ManagerID    *string   `json:"manager_id,omitempty"`
	JoinDate     time.Time `json:"join_date"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Clone returns a deep copy of the profile.
func (p *Profile) Clone() *Profile {
	if p == nil {
		return nil
	}
	clone := *p
	if p.DepartmentID != nil {
		id := *p.DepartmentID
		clone.DepartmentID = &id
	}
	if p.ManagerID != nil {
		id := *p.ManagerID
		clone.ManagerID = &id
	}
	return &clone
}

// ProfileSummary is the shape a profile takes when embedded in another
// row (e.g. as a manager or a shop owner).
type ProfileSummary struct {
	ID       string `json:"id"`
	Email    string `json:"email"`
	FullName string `json:"full_name"`
}

// ProfileDetail is a profile with its department and manager references
// hydrated for display.
type ProfileDetail struct {
	Profile
	Department *Department     `json:"department,omitempty"`
	Manager    *ProfileSummary `json:"manager,omitempty"`
}

// ProfileFilter selects and pages user listings. Filters combine with
// logical AND; the zero value of a filter field means "all".
type ProfileFilter struct {
	// Search matches case-insensitively against full name and email
	Search string `json:"search,omitempty"`

	// Role filters by exact role value; "all" or empty disables it
	Role string `json:"role,omitempty"`

	// DepartmentID filters by department; "no-team" matches profiles
	// without a department
	DepartmentID string `json:"department_id,omitempty"`

	// ManagerID filters by manager; "no-manager" matches profiles
	// without a manager
	ManagerID string `json:"manager_id,omitempty"`

	Page     int `json:"page,omitempty"`
	PageSize int `json:"page_size,omitempty"`
}

// Normalize applies paging defaults and caps.
func (f *ProfileFilter) Normalize() {
	if f.Page < 1 {
		f.Page = 1
	}
	if f.PageSize <= 0 {
		f.PageSize = 10
	}
	if f.PageSize > 100 {
		f.PageSize = 100
	}
}

// ProfileListResponse is one page of a filtered user listing. TotalCount
// is computed on the filtered set before pagination.
type ProfileListResponse struct {
	Users      []*ProfileDetail `json:"users"`
	TotalCount int              `json:"total_count"`
}

type CreateUserInput struct {
	Email        string    `json:"email"`
	Password     string    `json:"password"`
	FullName     string    `json:"full_name"`
	Phone        string    `json:"phone,omitempty"`
	Role         RoleName  `json:"role"`
	WorkType     WorkType  `json:"work_type"`
	DepartmentID *string   `json:"department_id,omitempty"`
	ManagerID    *string   `json:"manager_id,omitempty"`
	JoinDate     time.Time `json:"join_date"`
}

func (i *CreateUserInput) Validate() error {
	if i.Email == "" {
		return NewValidationError("email is required")
	}
	if !govalidator.IsEmail(i.Email) {
		return NewValidationError("email is not valid")
	}
	if i.Password == "" {
		return NewValidationError("password is required")
	}
	if i.FullName == "" {
		return NewValidationError("full name is required")
	}
	if i.Role == "" {
		return NewValidationError("role is required")
	}
	if i.WorkType == "" {
		i.WorkType = WorkTypeFulltime
	}
	return nil
}

// UpdateUserInput carries a partial update; nil fields are left untouched.
// Email and password changes go through the credential layer, which
// re-checks uniqueness.
type UpdateUserInput struct {
	Email        *string   `json:"email,omitempty"`
	Password     *string   `json:"password,omitempty"`
	FullName     *string   `json:"full_name,omitempty"`
	Phone        *string   `json:"phone,omitempty"`
	Role         *RoleName `json:"role,omitempty"`
	WorkType     *WorkType `json:"work_type,omitempty"`
	DepartmentID *string   `json:"department_id,omitempty"`
	ManagerID    *string   `json:"manager_id,omitempty"`
	JoinDate     *time.Time `json:"join_date,omitempty"`

	// ClearDepartment / ClearManager distinguish "set to null" from
	// "leave untouched", which a nil pointer alone cannot express.
	ClearDepartment bool `json:"clear_department,omitempty"`
	ClearManager    bool `json:"clear_manager,omitempty"`
}

func (i *UpdateUserInput) Validate() error {
	if i.Email != nil && !govalidator.IsEmail(*i.Email) {
		return NewValidationError("email is not valid")
	}
	if i.FullName != nil && *i.FullName == "" {
		return NewValidationError("full name cannot be empty")
	}
	return nil
}

// BulkCreateItemResult reports the outcome for one input of a bulk create.
type BulkCreateItemResult struct {
	Email  string `json:"email"`
	UserID string `json:"user_id,omitempty"`
	Error  string `json:"error,omitempty"`
}

// BulkCreateResult reports the aggregate and per-item outcome of a bulk
// create. The batch never aborts on a per-item failure.
type BulkCreateResult struct {
	SuccessCount int                    `json:"success_count"`
	Results      []BulkCreateItemResult `json:"results"`
}

type ProfileRepository interface {
	// GetProfileByID returns the profile, or nil when it does not exist
	GetProfileByID(ctx context.Context, id string) (*Profile, error)

	// ListProfiles returns one page of the filtered listing, newest
	// first, with department and manager references hydrated, plus the
	// total count of the filtered set
	ListProfiles(ctx context.Context, filter ProfileFilter) ([]*ProfileDetail, int, error)

	// CreateProfile creates the profile and its credential atomically.
	// Fails with ErrDuplicateEmail when the email is already registered.
	CreateProfile(ctx context.Context, input CreateUserInput) (*Profile, error)

	// UpdateProfile applies a partial update. Returns nil when the
	// profile does not exist; fails with ErrDuplicateEmail when an email
	// change collides with another credential.
	UpdateProfile(ctx context.Context, id string, input UpdateUserInput) (*Profile, error)

	// DeleteProfile removes the profile and its credential, releases
	// shops it owned, and heals dangling report references. Returns
	// false when the profile does not exist.
	DeleteProfile(ctx context.Context, id string) (bool, error)
}

// UserServiceInterface defines the operations handlers need from the
// user service.
type UserServiceInterface interface {
	GetProfileByID(ctx context.Context, id string) (*Profile, error)
	ListUsers(ctx context.Context, filter ProfileFilter) (*ProfileListResponse, error)
	CreateUser(ctx context.Context, input CreateUserInput) (*Profile, error)
	UpdateUser(ctx context.Context, id string, input UpdateUserInput) (*Profile, error)
	DeleteUser(ctx context.Context, id string) (bool, error)
	BulkCreateUsers(ctx context.Context, inputs []CreateUserInput) (*BulkCreateResult, error)
}
