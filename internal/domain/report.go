package domain

import (
	"context"
	"fmt"
	"time"
)

//go:generate mockgen -destination mocks/mock_report_repository.go -package mocks github.com/betacom-hq/backoffice/internal/domain ReportRepository

// ComprehensiveReport is a daily performance snapshot for a shop: one row
// per (shop, date). After creation only the two monthly goal fields are
// mutable, via UpsertMonthlyGoals.
type ComprehensiveReport struct {
	ID               string    `json:"id"`
	ShopID           *string   `json:"shop_id,omitempty"`
	ReportDate       time.Time `json:"report_date"`
	Revenue          float64   `json:"revenue"`
	Orders           int       `json:"orders"`
	Visits           int       `json:"visits"`
	Buyers           int       `json:"buyers"`
	CancelledOrders  int       `json:"cancelled_orders"`
	ReturnedOrders   int       `json:"returned_orders"`
	FeasibleGoal     float64   `json:"feasible_goal"`
	BreakthroughGoal float64   `json:"breakthrough_goal"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// Clone returns a deep copy of the report.
func (r *ComprehensiveReport) Clone() *ComprehensiveReport {
	if r == nil {
		return nil
	}
	clone := *r
	if r.ShopID != nil {
		id := *r.ShopID
		clone.ShopID = &id
	}
	return &clone
}

// ReportWithShop is a report with its shop hydrated. Shop is nil when the
// report's shop reference is null.
type ReportWithShop struct {
	ComprehensiveReport
	Shop *Shop `json:"shop,omitempty"`
}

// ShopRevenueRecord is one uploaded daily revenue figure for a shop.
type ShopRevenueRecord struct {
	ID         string    `json:"id"`
	ShopID     string    `json:"shop_id"`
	RecordDate time.Time `json:"record_date"`
	Revenue    float64   `json:"revenue"`
	UploadedBy string    `json:"uploaded_by"`
	CreatedAt  time.Time `json:"created_at"`
}

// Clone returns a deep copy of the revenue record.
func (r *ShopRevenueRecord) Clone() *ShopRevenueRecord {
	if r == nil {
		return nil
	}
	clone := *r
	return &clone
}

// Month is a calendar month in "YYYY-MM" form.
type Month string

// Bounds returns the first day of the month and the first day of the
// following month.
func (m Month) Bounds() (time.Time, time.Time, error) {
	start, err := time.Parse("2006-01", string(m))
	if err != nil {
		return time.Time{}, time.Time{}, NewValidationError(fmt.Sprintf("invalid month %q, expected YYYY-MM", string(m)))
	}
	return start, start.AddDate(0, 1, 0), nil
}

// Contains reports whether t falls within the month.
func (m Month) Contains(t time.Time) bool {
	start, end, err := m.Bounds()
	if err != nil {
		return false
	}
	return !t.Before(start) && t.Before(end)
}

// UpsertGoalsInput sets the monthly goals for a shop. When the shop has
// report rows within the month their goal fields are overwritten; when it
// has none, a zero-valued report dated the first of the month is created
// carrying the goals. Nil goal values fall back to the existing ones.
type UpsertGoalsInput struct {
	ShopID           string   `json:"shop_id"`
	Month            Month    `json:"month"`
	FeasibleGoal     *float64 `json:"feasible_goal,omitempty"`
	BreakthroughGoal *float64 `json:"breakthrough_goal,omitempty"`
}

func (i *UpsertGoalsInput) Validate() error {
	if i.ShopID == "" {
		return NewValidationError("shop id is required")
	}
	if _, _, err := i.Month.Bounds(); err != nil {
		return err
	}
	return nil
}

// MonthlyPerformance aggregates one shop's report rows for a month.
type MonthlyPerformance struct {
	ShopID           string  `json:"shop_id"`
	ShopName         string  `json:"shop_name"`
	Revenue          float64 `json:"revenue"`
	Orders           int     `json:"orders"`
	Visits           int     `json:"visits"`
	Buyers           int     `json:"buyers"`
	FeasibleGoal     float64 `json:"feasible_goal"`
	BreakthroughGoal float64 `json:"breakthrough_goal"`
}

// AddRevenueInput records one uploaded daily revenue figure.
type AddRevenueInput struct {
	ShopID     string    `json:"shop_id"`
	RecordDate time.Time `json:"record_date"`
	Revenue    float64   `json:"revenue"`
	UploadedBy string    `json:"uploaded_by"`
}

func (i *AddRevenueInput) Validate() error {
	if i.ShopID == "" {
		return NewValidationError("shop id is required")
	}
	if i.RecordDate.IsZero() {
		return NewValidationError("record date is required")
	}
	if i.Revenue < 0 {
		return NewValidationError("revenue cannot be negative")
	}
	return nil
}

// RevenueFilter selects revenue records. Zero values disable a criterion.
type RevenueFilter struct {
	ShopID string `json:"shop_id,omitempty"`
	Month  Month  `json:"month,omitempty"`
}

type ReportRepository interface {
	// GetReportsForMonth returns the shop's report rows dated within the
	// month, ordered by date
	GetReportsForMonth(ctx context.Context, shopID string, month Month) ([]*ComprehensiveReport, error)

	// ListAllReports returns every report row, ordered by date
	ListAllReports(ctx context.Context) ([]*ComprehensiveReport, error)

	// ListReportsWithShopDetails returns every report row with its shop
	// hydrated, ordered by date
	ListReportsWithShopDetails(ctx context.Context) ([]*ReportWithShop, error)

	// UpsertMonthlyGoals applies the goal upsert and returns the touched
	// rows. Idempotent for identical inputs.
	UpsertMonthlyGoals(ctx context.Context, input UpsertGoalsInput) ([]*ComprehensiveReport, error)

	// GetMonthlyPerformance aggregates report rows per shop for the month
	GetMonthlyPerformance(ctx context.Context, month Month) ([]*MonthlyPerformance, error)

	// ListShopRevenue returns revenue records matching the filter,
	// ordered by date
	ListShopRevenue(ctx context.Context, filter RevenueFilter) ([]*ShopRevenueRecord, error)

	// AddRevenueRecord stores one uploaded daily revenue figure
	AddRevenueRecord(ctx context.Context, input AddRevenueInput) (*ShopRevenueRecord, error)
}
