package service

import (
	"context"

	"github.com/betacom-hq/backoffice/internal/domain"
	"github.com/betacom-hq/backoffice/pkg/logger"
)

// ReportService serves daily report rows, monthly goal upserts, monthly
// aggregates, and uploaded revenue records.
type ReportService struct {
	repo   domain.ReportRepository
	logger logger.Logger
}

// NewReportService creates a new ReportService
func NewReportService(repo domain.ReportRepository, logger logger.Logger) *ReportService {
	return &ReportService{
		repo:   repo,
		logger: logger,
	}
}

// GetReportsForMonth returns the shop's report rows for the month.
func (s *ReportService) GetReportsForMonth(ctx context.Context, shopID string, month domain.Month) ([]*domain.ComprehensiveReport, error) {
	if shopID == "" {
		return nil, domain.NewValidationError("shop id is required")
	}
	if _, _, err := month.Bounds(); err != nil {
		return nil, err
	}
	return s.repo.GetReportsForMonth(ctx, shopID, month)
}

// ListAllReports returns every report row, ordered by date.
func (s *ReportService) ListAllReports(ctx context.Context) ([]*domain.ComprehensiveReport, error) {
	return s.repo.ListAllReports(ctx)
}

// ListReportsWithShopDetails returns every report row with its shop
// hydrated.
func (s *ReportService) ListReportsWithShopDetails(ctx context.Context) ([]*domain.ReportWithShop, error) {
	return s.repo.ListReportsWithShopDetails(ctx)
}

// UpsertMonthlyGoals sets the monthly goals for a shop and returns the
// touched rows. Repeating the same input touches the same rows and never
// creates duplicates.
func (s *ReportService) UpsertMonthlyGoals(ctx context.Context, input domain.UpsertGoalsInput) ([]*domain.ComprehensiveReport, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	reports, err := s.repo.UpsertMonthlyGoals(ctx, input)
	if err != nil {
		return nil, err
	}

	s.logger.WithField("shop_id", input.ShopID).WithField("month", string(input.Month)).Info("Monthly goals upserted")
	return reports, nil
}

// GetMonthlyPerformance aggregates report rows per shop for the month.
func (s *ReportService) GetMonthlyPerformance(ctx context.Context, month domain.Month) ([]*domain.MonthlyPerformance, error) {
	return s.repo.GetMonthlyPerformance(ctx, month)
}

// ListShopRevenue returns revenue records matching the filter.
func (s *ReportService) ListShopRevenue(ctx context.Context, filter domain.RevenueFilter) ([]*domain.ShopRevenueRecord, error) {
	if filter.Month != "" {
		if _, _, err := filter.Month.Bounds(); err != nil {
			return nil, err
		}
	}
	return s.repo.ListShopRevenue(ctx, filter)
}

// AddRevenueRecord stores one uploaded daily revenue figure.
func (s *ReportService) AddRevenueRecord(ctx context.Context, input domain.AddRevenueInput) (*domain.ShopRevenueRecord, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	record, err := s.repo.AddRevenueRecord(ctx, input)
	if err != nil {
		return nil, err
	}

	s.logger.WithField("shop_id", input.ShopID).WithField("revenue", input.Revenue).Info("Revenue record added")
	return record, nil
}
