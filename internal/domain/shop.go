package domain

import (
	"context"
	"time"
)

//go:generate mockgen -destination mocks/mock_shop_repository.go -package mocks github.com/betacom-hq/backoffice/internal/domain ShopRepository

type ShopStatus string

const (
	ShopStatusNew       ShopStatus = "new"
	ShopStatusOperating ShopStatus = "operating"
	ShopStatusStopped   ShopStatus = "stopped"
)

// Shop is a managed storefront, optionally owned by a profile and
// attached to a department. Deleting a shop cascades to its revenue and
// report rows.
type Shop struct {
	ID           string     `json:"id"`
	Name         string     `json:"name"`
	Status       ShopStatus `json:"status"`
	ProfileID    *string    `json:"profile_id,omitempty"`
	DepartmentID *string    `json:"department_id,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

// Clone returns a deep copy of the shop.
func (s *Shop) Clone() *Shop {
	if s == nil {
		return nil
	}
	clone := *s
	if s.ProfileID != nil {
		id := *s.ProfileID
		clone.ProfileID = &id
	}
	if s.DepartmentID != nil {
		id := *s.DepartmentID
		clone.DepartmentID = &id
	}
	return &clone
}

// ShopDetail is a shop with its owner and department hydrated.
type ShopDetail struct {
	Shop
	Owner      *ProfileSummary `json:"owner,omitempty"`
	Department *Department     `json:"department,omitempty"`
}

// ShopFilter selects and pages shop listings. Results are sorted
// alphabetically by name.
type ShopFilter struct {
	// Search matches case-insensitively against the shop name
	Search string `json:"search,omitempty"`

	// Status filters by exact status; "all" or empty disables it
	Status string `json:"status,omitempty"`

	// DepartmentID filters by department; "no-team" matches shops
	// without a department
	DepartmentID string `json:"department_id,omitempty"`

	Page     int `json:"page,omitempty"`
	PageSize int `json:"page_size,omitempty"`
}

// Normalize applies paging defaults and caps.
func (f *ShopFilter) Normalize() {
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

type ShopListResponse struct {
	Shops      []*ShopDetail `json:"shops"`
	TotalCount int           `json:"total_count"`
}

type CreateShopInput struct {
	Name         string     `json:"name"`
	Status       ShopStatus `json:"status"`
	ProfileID    *string    `json:"profile_id,omitempty"`
	DepartmentID *string    `json:"department_id,omitempty"`
}

func (i *CreateShopInput) Validate() error {
	if i.Name == "" {
		return NewValidationError("shop name is required")
	}
	if i.Status == "" {
		i.Status = ShopStatusNew
	}
	switch i.Status {
	case ShopStatusNew, ShopStatusOperating, ShopStatusStopped:
	default:
		return NewValidationError("shop status must be new, operating or stopped")
	}
	return nil
}

type UpdateShopInput struct {
	Name         *string     `json:"name,omitempty"`
	Status       *ShopStatus `json:"status,omitempty"`
	ProfileID    *string     `json:"profile_id,omitempty"`
	DepartmentID *string     `json:"department_id,omitempty"`

	ClearProfile    bool `json:"clear_profile,omitempty"`
	ClearDepartment bool `json:"clear_department,omitempty"`
}

func (i *UpdateShopInput) Validate() error {
	if i.Name != nil && *i.Name == "" {
		return NewValidationError("shop name cannot be empty")
	}
	if i.Status != nil {
		switch *i.Status {
		case ShopStatusNew, ShopStatusOperating, ShopStatusStopped:
		default:
			return NewValidationError("shop status must be new, operating or stopped")
		}
	}
	return nil
}

type ShopRepository interface {
	// GetShopByID returns the shop, or nil when it does not exist
	GetShopByID(ctx context.Context, id string) (*Shop, error)

	// ListShops returns one page of the filtered listing, alphabetical
	// by name, with owner and department hydrated, plus the total count
	// of the filtered set
	ListShops(ctx context.Context, filter ShopFilter) ([]*ShopDetail, int, error)

	// CreateShop creates a new shop
	CreateShop(ctx context.Context, input CreateShopInput) (*Shop, error)

	// UpdateShop applies a partial update. Returns nil when the shop
	// does not exist.
	UpdateShop(ctx context.Context, id string, input UpdateShopInput) (*Shop, error)

	// DeleteShop removes the shop and every revenue and report row that
	// referenced it. Returns false when the shop does not exist.
	DeleteShop(ctx context.Context, id string) (bool, error)
}
