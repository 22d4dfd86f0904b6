package service

import (
	"context"
	"strings"

	"github.com/betacom-hq/backoffice/internal/domain"
	"github.com/betacom-hq/backoffice/pkg/logger"
)

// BannerService manages marketing banners.
type BannerService struct {
	repo   domain.BannerRepository
	logger logger.Logger
}

// NewBannerService creates a new BannerService
func NewBannerService(repo domain.BannerRepository, logger logger.Logger) *BannerService {
	return &BannerService{
		repo:   repo,
		logger: logger,
	}
}

// ListBanners returns banners, optionally filtered by category.
func (s *BannerService) ListBanners(ctx context.Context, category string) ([]*domain.Banner, error) {
	return s.repo.ListBanners(ctx, category)
}

// CreateBanner validates and stores a banner. The image must be an
// inline data URL.
func (s *BannerService) CreateBanner(ctx context.Context, input domain.CreateBannerInput) (*domain.Banner, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}
	if !strings.HasPrefix(input.ImageData, "data:") {
		return nil, domain.NewValidationError("banner image must be a data URL")
	}

	banner, err := s.repo.CreateBanner(ctx, input)
	if err != nil {
		return nil, err
	}

	s.logger.WithField("banner_id", banner.ID).WithField("title", banner.Title).Info("Banner created")
	return banner, nil
}

// DeleteBanner removes a banner. Returns false when it does not exist.
func (s *BannerService) DeleteBanner(ctx context.Context, id string) (bool, error) {
	return s.repo.DeleteBanner(ctx, id)
}
