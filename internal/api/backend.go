// Package api exposes every backend operation from a single object. The
// Backend struct is the seam the rest of the application integrates
// against; swapping it for a networked client would not change callers.
package api

import (
	"context"

	"github.com/betacom-hq/backoffice/internal/domain"
	"github.com/betacom-hq/backoffice/internal/service"
)

// Backend is the flat facade over the service layer. It adds no business
// logic of its own; every method delegates to its service and returns
// the same deep-cloned shapes the services return.
type Backend struct {
	Auth *service.AuthService

	users       domain.UserServiceInterface
	roles       *service.RoleService
	departments *service.DepartmentService
	shops       *service.ShopService
	reports     *service.ReportService
	exercises   *service.ExerciseService
	banners     *service.BannerService
}

// BackendServices carries the services NewBackend assembles.
type BackendServices struct {
	Auth        *service.AuthService
	Users       domain.UserServiceInterface
	Roles       *service.RoleService
	Departments *service.DepartmentService
	Shops       *service.ShopService
	Reports     *service.ReportService
	Exercises   *service.ExerciseService
	Banners     *service.BannerService
}

// NewBackend creates the facade.
func NewBackend(services BackendServices) *Backend {
	return &Backend{
		Auth:        services.Auth,
		users:       services.Users,
		roles:       services.Roles,
		departments: services.Departments,
		shops:       services.Shops,
		reports:     services.Reports,
		exercises:   services.Exercises,
		banners:     services.Banners,
	}
}

// Users

func (b *Backend) GetProfileByID(ctx context.Context, id string) (*domain.Profile, error) {
	return b.users.GetProfileByID(ctx, id)
}

func (b *Backend) ListUsers(ctx context.Context, filter domain.ProfileFilter) (*domain.ProfileListResponse, error) {
	return b.users.ListUsers(ctx, filter)
}

func (b *Backend) CreateUser(ctx context.Context, input domain.CreateUserInput) (*domain.Profile, error) {
	return b.users.CreateUser(ctx, input)
}

func (b *Backend) UpdateUser(ctx context.Context, id string, input domain.UpdateUserInput) (*domain.Profile, error) {
	return b.users.UpdateUser(ctx, id, input)
}

func (b *Backend) DeleteUser(ctx context.Context, id string) (bool, error) {
	return b.users.DeleteUser(ctx, id)
}

func (b *Backend) BulkCreateUsers(ctx context.Context, inputs []domain.CreateUserInput) (*domain.BulkCreateResult, error) {
	return b.users.BulkCreateUsers(ctx, inputs)
}

// Roles

func (b *Backend) ListRoles(ctx context.Context) ([]*domain.Role, error) {
	return b.roles.ListRoles(ctx)
}

func (b *Backend) CreateRole(ctx context.Context, input domain.CreateRoleInput) (*domain.Role, error) {
	return b.roles.CreateRole(ctx, input)
}

func (b *Backend) UpdateRole(ctx context.Context, id string, input domain.UpdateRoleInput) (*domain.Role, error) {
	return b.roles.UpdateRole(ctx, id, input)
}

func (b *Backend) DeleteRole(ctx context.Context, id string) (bool, error) {
	return b.roles.DeleteRole(ctx, id)
}

// Departments

func (b *Backend) ListDepartments(ctx context.Context) ([]*domain.Department, error) {
	return b.departments.ListDepartments(ctx)
}

func (b *Backend) CreateDepartment(ctx context.Context, name string) (*domain.Department, error) {
	return b.departments.CreateDepartment(ctx, name)
}

func (b *Backend) UpdateDepartment(ctx context.Context, id string, name string) (*domain.Department, error) {
	return b.departments.UpdateDepartment(ctx, id, name)
}

func (b *Backend) DeleteDepartment(ctx context.Context, id string) (bool, error) {
	return b.departments.DeleteDepartment(ctx, id)
}

// Shops

func (b *Backend) GetShopByID(ctx context.Context, id string) (*domain.Shop, error) {
	return b.shops.GetShopByID(ctx, id)
}

func (b *Backend) ListShops(ctx context.Context, filter domain.ShopFilter) (*domain.ShopListResponse, error) {
	return b.shops.ListShops(ctx, filter)
}

func (b *Backend) CreateShop(ctx context.Context, input domain.CreateShopInput) (*domain.Shop, error) {
	return b.shops.CreateShop(ctx, input)
}

func (b *Backend) UpdateShop(ctx context.Context, id string, input domain.UpdateShopInput) (*domain.Shop, error) {
	return b.shops.UpdateShop(ctx, id, input)
}

func (b *Backend) DeleteShop(ctx context.Context, id string) (bool, error) {
	return b.shops.DeleteShop(ctx, id)
}

// Reports and revenue

func (b *Backend) GetReportsForMonth(ctx context.Context, shopID string, month domain.Month) ([]*domain.ComprehensiveReport, error) {
	return b.reports.GetReportsForMonth(ctx, shopID, month)
}

func (b *Backend) ListAllComprehensiveReports(ctx context.Context) ([]*domain.ComprehensiveReport, error) {
	return b.reports.ListAllReports(ctx)
}

func (b *Backend) ListReportsWithShopDetails(ctx context.Context) ([]*domain.ReportWithShop, error) {
	return b.reports.ListReportsWithShopDetails(ctx)
}

func (b *Backend) UpsertComprehensiveReport(ctx context.Context, input domain.UpsertGoalsInput) ([]*domain.ComprehensiveReport, error) {
	return b.reports.UpsertMonthlyGoals(ctx, input)
}

func (b *Backend) GetMonthlyPerformance(ctx context.Context, month domain.Month) ([]*domain.MonthlyPerformance, error) {
	return b.reports.GetMonthlyPerformance(ctx, month)
}

func (b *Backend) ListShopRevenue(ctx context.Context, filter domain.RevenueFilter) ([]*domain.ShopRevenueRecord, error) {
	return b.reports.ListShopRevenue(ctx, filter)
}

func (b *Backend) AddRevenueRecord(ctx context.Context, input domain.AddRevenueInput) (*domain.ShopRevenueRecord, error) {
	return b.reports.AddRevenueRecord(ctx, input)
}

// Exercises

func (b *Backend) GetUserExerciseProgress(ctx context.Context, userID string) ([]*domain.ExerciseProgress, error) {
	return b.exercises.GetUserProgress(ctx, userID)
}

func (b *Backend) UpsertExerciseProgress(ctx context.Context, input domain.UpsertProgressInput) (*domain.ExerciseProgress, error) {
	return b.exercises.UpsertProgress(ctx, input)
}

// Banners

func (b *Backend) ListBanners(ctx context.Context, category string) ([]*domain.Banner, error) {
	return b.banners.ListBanners(ctx, category)
}

func (b *Backend) CreateBanner(ctx context.Context, input domain.CreateBannerInput) (*domain.Banner, error) {
	return b.banners.CreateBanner(ctx, input)
}

func (b *Backend) DeleteBanner(ctx context.Context, id string) (bool, error) {
	return b.banners.DeleteBanner(ctx, id)
}
