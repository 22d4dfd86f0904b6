package service

import (
	"context"
	"fmt"

	"github.com/betacom-hq/backoffice/internal/domain"
	"github.com/betacom-hq/backoffice/pkg/logger"
)

// ShopService manages the shop roster.
type ShopService struct {
	repo   domain.ShopRepository
	logger logger.Logger
}

// NewShopService creates a new ShopService
func NewShopService(repo domain.ShopRepository, logger logger.Logger) *ShopService {
	return &ShopService{
		repo:   repo,
		logger: logger,
	}
}

// GetShopByID returns the shop, or nil when it does not exist.
func (s *ShopService) GetShopByID(ctx context.Context, id string) (*domain.Shop, error) {
	return s.repo.GetShopByID(ctx, id)
}

// ListShops returns one page of the filtered shop listing.
func (s *ShopService) ListShops(ctx context.Context, filter domain.ShopFilter) (*domain.ShopListResponse, error) {
	shops, total, err := s.repo.ListShops(ctx, filter)
	if err != nil {
		s.logger.WithField("error", err.Error()).Error("Failed to list shops")
		return nil, fmt.Errorf("failed to list shops: %w", err)
	}
	return &domain.ShopListResponse{
		Shops:      shops,
		TotalCount: total,
	}, nil
}

// CreateShop validates and creates a shop.
func (s *ShopService) CreateShop(ctx context.Context, input domain.CreateShopInput) (*domain.Shop, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	shop, err := s.repo.CreateShop(ctx, input)
	if err != nil {
		return nil, err
	}

	s.logger.WithField("shop_id", shop.ID).WithField("name", shop.Name).Info("Shop created")
	return shop, nil
}

// UpdateShop applies a partial update. Returns nil when the shop does not
// exist.
func (s *ShopService) UpdateShop(ctx context.Context, id string, input domain.UpdateShopInput) (*domain.Shop, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}
	return s.repo.UpdateShop(ctx, id, input)
}

// DeleteShop removes the shop together with its revenue and report rows.
// Returns false when it does not exist.
func (s *ShopService) DeleteShop(ctx context.Context, id string) (bool, error) {
	deleted, err := s.repo.DeleteShop(ctx, id)
	if err != nil {
		return false, err
	}
	if deleted {
		s.logger.WithField("shop_id", id).Info("Shop deleted with its report and revenue rows")
	}
	return deleted, nil
}
