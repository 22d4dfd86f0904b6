package repository

import (
	"context"
	"sort"

	"github.com/betacom-hq/backoffice/internal/domain"
)

// ListBanners returns banners, optionally filtered by category, ordered
// by sort order then creation time.
func (s *MemoryStore) ListBanners(ctx context.Context, category string) ([]*domain.Banner, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	banners := make([]*domain.Banner, 0, len(s.banners))
	for _, b := range s.banners {
		if category != "" && category != domain.FilterAll && b.Category != category {
			continue
		}
		banners = append(banners, b.Clone())
	}
	sort.SliceStable(banners, func(i, j int) bool {
		if banners[i].SortOrder != banners[j].SortOrder {
			return banners[i].SortOrder < banners[j].SortOrder
		}
		return banners[i].CreatedAt.Before(banners[j].CreatedAt)
	})
	return banners, nil
}

// CreateBanner stores a new banner.
func (s *MemoryStore) CreateBanner(ctx context.Context, input domain.CreateBannerInput) (*domain.Banner, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	banner := &domain.Banner{
		ID:        s.newID(),
		Title:     input.Title,
		Category:  input.Category,
		ImageData: input.ImageData,
		SortOrder: input.SortOrder,
		CreatedAt: now,
		UpdatedAt: now,
	}
	s.banners = append(s.banners, banner)
	return banner.Clone(), nil
}

// DeleteBanner removes a banner.
func (s *MemoryStore) DeleteBanner(ctx context.Context, id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, b := range s.banners {
		if b.ID == id {
			s.banners = append(s.banners[:i], s.banners[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}
