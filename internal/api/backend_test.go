package api

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/betacom-hq/backoffice/internal/domain"
	"github.com/betacom-hq/backoffice/internal/repository"
	"github.com/betacom-hq/backoffice/internal/service"
	"github.com/betacom-hq/backoffice/pkg/kv"
	"github.com/betacom-hq/backoffice/pkg/logger"
)

func newBackend(t *testing.T) *Backend {
	t.Helper()

	store := repository.NewMemoryStore()
	store.SeedDemoData()
	log := logger.NewTestLogger(t)

	return NewBackend(BackendServices{
		Auth: service.NewAuthService(service.AuthServiceConfig{
			CredentialRepo: store,
			ProfileRepo:    store,
			Storage:        kv.NewMemoryStore(),
			Logger:         log,
			Secret:         "test-secret",
		}),
		Users:       service.NewUserService(store, log),
		Roles:       service.NewRoleService(store, log),
		Departments: service.NewDepartmentService(store, log),
		Shops:       service.NewShopService(store, log),
		Reports:     service.NewReportService(store, log),
		Exercises:   service.NewExerciseService(store, log),
		Banners:     service.NewBannerService(store, log),
	})
}

// The facade exposes every operation from one object; this walks the
// main read paths against the seeded data set.
func TestBackend_SeededReadPaths(t *testing.T) {
	backend := newBackend(t)
	ctx := context.Background()

	users, err := backend.ListUsers(ctx, domain.ProfileFilter{PageSize: 100})
	require.NoError(t, err)
	assert.NotZero(t, users.TotalCount)

	roles, err := backend.ListRoles(ctx)
	require.NoError(t, err)
	assert.Len(t, roles, 6)

	departments, err := backend.ListDepartments(ctx)
	require.NoError(t, err)
	assert.NotEmpty(t, departments)

	shops, err := backend.ListShops(ctx, domain.ShopFilter{PageSize: 100})
	require.NoError(t, err)
	assert.NotZero(t, shops.TotalCount)

	reports, err := backend.ListReportsWithShopDetails(ctx)
	require.NoError(t, err)
	require.NotEmpty(t, reports)
	assert.NotNil(t, reports[0].Shop)

	month := domain.Month(time.Now().UTC().Format("2006-01"))
	performance, err := backend.GetMonthlyPerformance(ctx, month)
	require.NoError(t, err)
	assert.Len(t, performance, shops.TotalCount)

	banners, err := backend.ListBanners(ctx, "all")
	require.NoError(t, err)
	assert.NotEmpty(t, banners)
}

func TestBackend_UserLifecycle(t *testing.T) {
	backend := newBackend(t)
	ctx := context.Background()

	created, err := backend.CreateUser(ctx, domain.CreateUserInput{
		Email:    "lifecycle@betacom.vn",
		Password: "password123",
		FullName: "Lifecycle User",
		Role:     domain.RoleSpecialist,
	})
	require.NoError(t, err)

	name := "Renamed User"
	updated, err := backend.UpdateUser(ctx, created.ID, domain.UpdateUserInput{FullName: &name})
	require.NoError(t, err)
	assert.Equal(t, name, updated.FullName)

	// The new credential signs in
	resp, err := backend.Auth.SignInWithPassword(ctx, domain.SignInInput{
		Email: "lifecycle@betacom.vn", Password: "password123",
	})
	require.NoError(t, err)
	assert.Equal(t, created.ID, resp.User.ID)

	deleted, err := backend.DeleteUser(ctx, created.ID)
	require.NoError(t, err)
	assert.True(t, deleted)

	// And cannot sign in once deleted
	_, err = backend.Auth.SignInWithPassword(ctx, domain.SignInInput{
		Email: "lifecycle@betacom.vn", Password: "password123",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestBackend_ShopCascadeThroughFacade(t *testing.T) {
	backend := newBackend(t)
	ctx := context.Background()

	shop, err := backend.CreateShop(ctx, domain.CreateShopInput{
		Name: "Facade Shop", Status: domain.ShopStatusOperating,
	})
	require.NoError(t, err)

	goal := 100.0
	_, err = backend.UpsertComprehensiveReport(ctx, domain.UpsertGoalsInput{
		ShopID: shop.ID, Month: "2025-06", FeasibleGoal: &goal,
	})
	require.NoError(t, err)

	deleted, err := backend.DeleteShop(ctx, shop.ID)
	require.NoError(t, err)
	assert.True(t, deleted)

	reports, err := backend.GetReportsForMonth(ctx, shop.ID, "2025-06")
	require.NoError(t, err)
	assert.Empty(t, reports)
}
