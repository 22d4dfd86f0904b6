package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/betacom-hq/backoffice/internal/domain"
)

func seedShop(t *testing.T, store *MemoryStore, name string) *domain.Shop {
	t.Helper()
	shop, err := store.CreateShop(context.Background(), domain.CreateShopInput{
		Name:   name,
		Status: domain.ShopStatusOperating,
	})
	require.NoError(t, err)
	return shop
}

func seedReport(t *testing.T, store *MemoryStore, shopID string, date time.Time, revenue float64, orders int) {
	t.Helper()
	store.mu.Lock()
	defer store.mu.Unlock()
	store.reports = append(store.reports, &domain.ComprehensiveReport{
		ID:         store.newID(),
		ShopID:     &shopID,
		ReportDate: date,
		Revenue:    revenue,
		Orders:     orders,
		Visits:     orders * 10,
		Buyers:     orders - 1,
		CreatedAt:  date,
		UpdatedAt:  date,
	})
}

func TestGetReportsForMonth(t *testing.T) {
	store := newTestStore()
	ctx := context.Background()

	shop := seedShop(t, store, "Shop")
	other := seedShop(t, store, "Other")

	seedReport(t, store, shop.ID, time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC), 100, 1)
	seedReport(t, store, shop.ID, time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC), 200, 2)
	seedReport(t, store, shop.ID, time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC), 300, 3)
	seedReport(t, store, other.ID, time.Date(2025, 6, 5, 0, 0, 0, 0, time.UTC), 400, 4)

	reports, err := store.GetReportsForMonth(ctx, shop.ID, "2025-06")
	require.NoError(t, err)
	require.Len(t, reports, 2)
	// Date order, and only the requested shop's rows
	assert.Equal(t, 2, reports[0].ReportDate.Day())
	assert.Equal(t, 10, reports[1].ReportDate.Day())

	_, err = store.GetReportsForMonth(ctx, shop.ID, "June 2025")
	assert.NoError(t, err) // month filtering simply matches nothing
}

func TestUpsertMonthlyGoals_Idempotent(t *testing.T) {
	store := newTestStore()
	ctx := context.Background()

	shop := seedShop(t, store, "Shop")
	goal := 100.0

	first, err := store.UpsertMonthlyGoals(ctx, domain.UpsertGoalsInput{
		ShopID: shop.ID, Month: "2025-06", FeasibleGoal: &goal,
	})
	require.NoError(t, err)
	require.Len(t, first, 1)
	assert.Equal(t, 100.0, first[0].FeasibleGoal)
	assert.Equal(t, time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC), first[0].ReportDate)

	second, err := store.UpsertMonthlyGoals(ctx, domain.UpsertGoalsInput{
		ShopID: shop.ID, Month: "2025-06", FeasibleGoal: &goal,
	})
	require.NoError(t, err)
	require.Len(t, second, 1)
	assert.Equal(t, first[0].ID, second[0].ID, "second upsert must update, not duplicate")
	assert.Equal(t, 100.0, second[0].FeasibleGoal)

	all, err := store.ListAllReports(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestUpsertMonthlyGoals_OverwritesExistingRows(t *testing.T) {
	store := newTestStore()
	ctx := context.Background()

	shop := seedShop(t, store, "Shop")
	seedReport(t, store, shop.ID, time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC), 100, 1)
	seedReport(t, store, shop.ID, time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC), 200, 2)

	feasible, breakthrough := 50_000_000.0, 80_000_000.0
	touched, err := store.UpsertMonthlyGoals(ctx, domain.UpsertGoalsInput{
		ShopID: shop.ID, Month: "2025-06",
		FeasibleGoal: &feasible, BreakthroughGoal: &breakthrough,
	})
	require.NoError(t, err)
	require.Len(t, touched, 2)
	for _, r := range touched {
		assert.Equal(t, feasible, r.FeasibleGoal)
		assert.Equal(t, breakthrough, r.BreakthroughGoal)
	}
	// Daily figures survive the goal overwrite
	assert.Equal(t, 100.0, touched[0].Revenue)
	assert.Equal(t, 200.0, touched[1].Revenue)
}

func TestUpsertMonthlyGoals_BadMonth(t *testing.T) {
	store := newTestStore()

	goal := 1.0
	_, err := store.UpsertMonthlyGoals(context.Background(), domain.UpsertGoalsInput{
		ShopID: "s", Month: "2025/06", FeasibleGoal: &goal,
	})
	assert.Error(t, err)
}

func TestGetMonthlyPerformance(t *testing.T) {
	store := newTestStore()
	ctx := context.Background()

	busy := seedShop(t, store, "Busy")
	seedShop(t, store, "Idle")

	seedReport(t, store, busy.ID, time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC), 100, 2)
	seedReport(t, store, busy.ID, time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC), 250, 3)
	seedReport(t, store, busy.ID, time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC), 999, 9)

	perf, err := store.GetMonthlyPerformance(ctx, "2025-06")
	require.NoError(t, err)
	require.Len(t, perf, 2, "every shop appears, even with no data")

	assert.Equal(t, "Busy", perf[0].ShopName)
	assert.Equal(t, 350.0, perf[0].Revenue)
	assert.Equal(t, 5, perf[0].Orders)

	assert.Equal(t, "Idle", perf[1].ShopName)
	assert.Zero(t, perf[1].Revenue)
	assert.Zero(t, perf[1].Orders)

	_, err = store.GetMonthlyPerformance(ctx, "not-a-month")
	assert.Error(t, err)
}

func TestListShopRevenue_Filters(t *testing.T) {
	store := newTestStore()
	ctx := context.Background()

	owner := seedUsers(t, store, userInput("owner@betacom.vn", "Owner", domain.RoleSpecialist))[0]
	shop := seedShop(t, store, "Shop")
	other := seedShop(t, store, "Other")

	dates := []time.Time{
		time.Date(2025, 6, 3, 0, 0, 0, 0, time.UTC),
		time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC),
	}
	for _, d := range dates {
		_, err := store.AddRevenueRecord(ctx, domain.AddRevenueInput{
			ShopID: shop.ID, RecordDate: d, Revenue: 1000, UploadedBy: owner.ID,
		})
		require.NoError(t, err)
	}
	_, err := store.AddRevenueRecord(ctx, domain.AddRevenueInput{
		ShopID: other.ID, RecordDate: dates[0], Revenue: 2000, UploadedBy: owner.ID,
	})
	require.NoError(t, err)

	records, err := store.ListShopRevenue(ctx, domain.RevenueFilter{ShopID: shop.ID, Month: "2025-06"})
	require.NoError(t, err)
	require.Len(t, records, 2)
	// Date order
	assert.Equal(t, 1, records[0].RecordDate.Day())
	assert.Equal(t, 3, records[1].RecordDate.Day())

	all, err := store.ListShopRevenue(ctx, domain.RevenueFilter{})
	require.NoError(t, err)
	assert.Len(t, all, 4)
}
