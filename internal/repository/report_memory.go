package repository

import (
	"context"
	"sort"

	"github.com/betacom-hq/backoffice/internal/domain"
)

// GetReportsForMonth returns the shop's report rows dated within the
// month, ordered by date.
func (s *MemoryStore) GetReportsForMonth(ctx context.Context, shopID string, month domain.Month) ([]*domain.ComprehensiveReport, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	reports := make([]*domain.ComprehensiveReport, 0)
	for _, r := range s.reports {
		if r.ShopID != nil && *r.ShopID == shopID && month.Contains(r.ReportDate) {
			reports = append(reports, r.Clone())
		}
	}
	sortReportsByDate(reports)
	return reports, nil
}

// ListAllReports returns every report row, ordered by date.
func (s *MemoryStore) ListAllReports(ctx context.Context) ([]*domain.ComprehensiveReport, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	reports := make([]*domain.ComprehensiveReport, 0, len(s.reports))
	for _, r := range s.reports {
		reports = append(reports, r.Clone())
	}
	sortReportsByDate(reports)
	return reports, nil
}

// ListReportsWithShopDetails returns every report row with its shop
// hydrated, ordered by date.
func (s *MemoryStore) ListReportsWithShopDetails(ctx context.Context) ([]*domain.ReportWithShop, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	reports := make([]*domain.ReportWithShop, 0, len(s.reports))
	for _, r := range s.reports {
		withShop := &domain.ReportWithShop{ComprehensiveReport: *r.Clone()}
		if r.ShopID != nil {
			withShop.Shop = s.findShop(*r.ShopID).Clone()
		}
		reports = append(reports, withShop)
	}
	sort.SliceStable(reports, func(i, j int) bool {
		return reports[i].ReportDate.Before(reports[j].ReportDate)
	})
	return reports, nil
}

// UpsertMonthlyGoals sets the monthly goals for a shop. Existing rows
// within the month get their goal fields overwritten (absent values keep
// the old ones); a shop with no rows for the month gets one zero-valued
// report dated the first of the month carrying the goals. This lets the
// monthly target be set before any daily data arrives.
func (s *MemoryStore) UpsertMonthlyGoals(ctx context.Context, input domain.UpsertGoalsInput) ([]*domain.ComprehensiveReport, error) {
	start, _, err := input.Month.Bounds()
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()

	touched := make([]*domain.ComprehensiveReport, 0)
	for _, r := range s.reports {
		if r.ShopID == nil || *r.ShopID != input.ShopID || !input.Month.Contains(r.ReportDate) {
			continue
		}
		if input.FeasibleGoal != nil {
			r.FeasibleGoal = *input.FeasibleGoal
		}
		if input.BreakthroughGoal != nil {
			r.BreakthroughGoal = *input.BreakthroughGoal
		}
		r.UpdatedAt = now
		touched = append(touched, r.Clone())
	}
	if len(touched) > 0 {
		sortReportsByDate(touched)
		return touched, nil
	}

	report := &domain.ComprehensiveReport{
		ID:         s.newID(),
		ShopID:     strPtr(input.ShopID),
		ReportDate: start,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if input.FeasibleGoal != nil {
		report.FeasibleGoal = *input.FeasibleGoal
	}
	if input.BreakthroughGoal != nil {
		report.BreakthroughGoal = *input.BreakthroughGoal
	}
	s.reports = append(s.reports, report)
	return []*domain.ComprehensiveReport{report.Clone()}, nil
}

// GetMonthlyPerformance aggregates the month's report rows per shop.
// Every shop appears, zero-valued when it has no rows, so dashboards see
// the complete roster.
func (s *MemoryStore) GetMonthlyPerformance(ctx context.Context, month domain.Month) ([]*domain.MonthlyPerformance, error) {
	if _, _, err := month.Bounds(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	byShop := make(map[string]*domain.MonthlyPerformance, len(s.shops))
	ordered := make([]*domain.MonthlyPerformance, 0, len(s.shops))
	for _, sh := range s.shops {
		perf := &domain.MonthlyPerformance{ShopID: sh.ID, ShopName: sh.Name}
		byShop[sh.ID] = perf
		ordered = append(ordered, perf)
	}

	for _, r := range s.reports {
		if r.ShopID == nil || !month.Contains(r.ReportDate) {
			continue
		}
		perf, ok := byShop[*r.ShopID]
		if !ok {
			continue
		}
		perf.Revenue += r.Revenue
		perf.Orders += r.Orders
		perf.Visits += r.Visits
		perf.Buyers += r.Buyers
		// Goals are uniform across the month's rows by construction of
		// the upsert; carry the latest row's values.
		perf.FeasibleGoal = r.FeasibleGoal
		perf.BreakthroughGoal = r.BreakthroughGoal
	}

	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].ShopName < ordered[j].ShopName
	})
	return ordered, nil
}

// ListShopRevenue returns revenue records matching the filter, ordered
// by date.
func (s *MemoryStore) ListShopRevenue(ctx context.Context, filter domain.RevenueFilter) ([]*domain.ShopRevenueRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	records := make([]*domain.ShopRevenueRecord, 0)
	for _, r := range s.revenues {
		if filter.ShopID != "" && r.ShopID != filter.ShopID {
			continue
		}
		if filter.Month != "" && !filter.Month.Contains(r.RecordDate) {
			continue
		}
		records = append(records, r.Clone())
	}
	sort.SliceStable(records, func(i, j int) bool {
		return records[i].RecordDate.Before(records[j].RecordDate)
	})
	return records, nil
}

// AddRevenueRecord stores one uploaded daily revenue figure.
func (s *MemoryStore) AddRevenueRecord(ctx context.Context, input domain.AddRevenueInput) (*domain.ShopRevenueRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	record := &domain.ShopRevenueRecord{
		ID:         s.newID(),
		ShopID:     input.ShopID,
		RecordDate: input.RecordDate,
		Revenue:    input.Revenue,
		UploadedBy: input.UploadedBy,
		CreatedAt:  s.now(),
	}
	s.revenues = append(s.revenues, record)
	return record.Clone(), nil
}

func sortReportsByDate(reports []*domain.ComprehensiveReport) {
	sort.SliceStable(reports, func(i, j int) bool {
		return reports[i].ReportDate.Before(reports[j].ReportDate)
	})
}
