package repository

import (
	"context"
	"sort"
	"strings"

	"github.com/betacom-hq/backoffice/internal/domain"
)

// GetShopByID returns a copy of the shop, or nil when it does not exist.
func (s *MemoryStore) GetShopByID(ctx context.Context, id string) (*domain.Shop, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.findShop(id).Clone(), nil
}

// ListShops applies the filter, sorts alphabetically by name, pages, and
// hydrates owner and department references.
func (s *MemoryStore) ListShops(ctx context.Context, filter domain.ShopFilter) ([]*domain.ShopDetail, int, error) {
	filter.Normalize()

	s.mu.RLock()
	defer s.mu.RUnlock()

	search := strings.ToLower(filter.Search)

	filtered := make([]*domain.Shop, 0, len(s.shops))
	for _, sh := range s.shops {
		if filter.Status != "" && filter.Status != domain.FilterAll && string(sh.Status) != filter.Status {
			continue
		}
		if !matchReference(sh.DepartmentID, filter.DepartmentID, domain.FilterNoTeam) {
			continue
		}
		if search != "" && !strings.Contains(strings.ToLower(sh.Name), search) {
			continue
		}
		filtered = append(filtered, sh)
	}

	sort.SliceStable(filtered, func(i, j int) bool {
		return filtered[i].Name < filtered[j].Name
	})

	total := len(filtered)
	page := paginate(filtered, filter.Page, filter.PageSize)

	details := make([]*domain.ShopDetail, 0, len(page))
	for _, sh := range page {
		details = append(details, s.hydrateShop(sh))
	}
	return details, total, nil
}

// CreateShop creates a new shop.
func (s *MemoryStore) CreateShop(ctx context.Context, input domain.CreateShopInput) (*domain.Shop, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	shop := &domain.Shop{
		ID:           s.newID(),
		Name:         input.Name,
		Status:       input.Status,
		ProfileID:    input.ProfileID,
		DepartmentID: input.DepartmentID,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	s.shops = append(s.shops, shop)
	return shop.Clone(), nil
}

// UpdateShop applies the non-nil fields of input and bumps UpdatedAt.
func (s *MemoryStore) UpdateShop(ctx context.Context, id string, input domain.UpdateShopInput) (*domain.Shop, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	shop := s.findShop(id)
	if shop == nil {
		return nil, nil
	}
	if input.Name != nil {
		shop.Name = *input.Name
	}
	if input.Status != nil {
		shop.Status = *input.Status
	}
	if input.ClearProfile {
		shop.ProfileID = nil
	} else if input.ProfileID != nil {
		shop.ProfileID = input.ProfileID
	}
	if input.ClearDepartment {
		shop.DepartmentID = nil
	} else if input.DepartmentID != nil {
		shop.DepartmentID = input.DepartmentID
	}
	shop.UpdatedAt = s.now()
	return shop.Clone(), nil
}

// DeleteShop removes the shop; the sweep then removes every revenue and
// report row that referenced it.
func (s *MemoryStore) DeleteShop(ctx context.Context, id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := -1
	for i, sh := range s.shops {
		if sh.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return false, nil
	}
	s.shops = append(s.shops[:idx], s.shops[idx+1:]...)

	s.integritySweep()
	return true, nil
}

func (s *MemoryStore) findShop(id string) *domain.Shop {
	for _, sh := range s.shops {
		if sh.ID == id {
			return sh
		}
	}
	return nil
}

func (s *MemoryStore) hydrateShop(sh *domain.Shop) *domain.ShopDetail {
	detail := &domain.ShopDetail{Shop: *sh.Clone()}
	if sh.ProfileID != nil {
		if owner := s.findProfile(*sh.ProfileID); owner != nil {
			detail.Owner = &domain.ProfileSummary{
				ID:       owner.ID,
				Email:    owner.Email,
				FullName: owner.FullName,
			}
		}
	}
	if sh.DepartmentID != nil {
		detail.Department = s.findDepartment(*sh.DepartmentID).Clone()
	}
	return detail
}
