package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/betacom-hq/backoffice/internal/domain"
	"github.com/betacom-hq/backoffice/internal/repository"
	"github.com/betacom-hq/backoffice/pkg/logger"
)

func newUserService(t *testing.T) (*UserService, *repository.MemoryStore) {
	t.Helper()
	store := repository.NewMemoryStore()
	return NewUserService(store, logger.NewTestLogger(t)), store
}

func createUser(t *testing.T, svc *UserService, email, name string, managerID *string) *domain.Profile {
	t.Helper()
	profile, err := svc.CreateUser(context.Background(), domain.CreateUserInput{
		Email:     email,
		Password:  "password123",
		FullName:  name,
		Role:      domain.RoleSpecialist,
		ManagerID: managerID,
	})
	require.NoError(t, err)
	return profile
}

func TestCreateUser(t *testing.T) {
	ctx := context.Background()

	t.Run("rejects invalid input", func(t *testing.T) {
		svc, _ := newUserService(t)

		_, err := svc.CreateUser(ctx, domain.CreateUserInput{
			Email: "not-an-email", Password: "x", FullName: "X", Role: domain.RoleTrainee,
		})
		var validationErr domain.ValidationError
		assert.ErrorAs(t, err, &validationErr)
	})

	t.Run("rejects a manager that does not exist", func(t *testing.T) {
		svc, _ := newUserService(t)

		missing := "no-such-profile"
		_, err := svc.CreateUser(ctx, domain.CreateUserInput{
			Email: "a@betacom.vn", Password: "x", FullName: "A",
			Role: domain.RoleSpecialist, ManagerID: &missing,
		})
		var validationErr domain.ValidationError
		assert.ErrorAs(t, err, &validationErr)
	})

	t.Run("work type defaults to fulltime", func(t *testing.T) {
		svc, _ := newUserService(t)

		profile := createUser(t, svc, "a@betacom.vn", "A", nil)
		assert.Equal(t, domain.WorkTypeFulltime, profile.WorkType)
	})
}

func TestUpdateUser_ManagerCycles(t *testing.T) {
	ctx := context.Background()
	svc, _ := newUserService(t)

	// a <- b <- c: a manages b, b manages c
	a := createUser(t, svc, "a@betacom.vn", "A", nil)
	b := createUser(t, svc, "b@betacom.vn", "B", &a.ID)
	c := createUser(t, svc, "c@betacom.vn", "C", &b.ID)

	t.Run("self-management is rejected", func(t *testing.T) {
		_, err := svc.UpdateUser(ctx, a.ID, domain.UpdateUserInput{ManagerID: &a.ID})
		var validationErr domain.ValidationError
		assert.ErrorAs(t, err, &validationErr)
	})

	t.Run("closing a reporting cycle is rejected", func(t *testing.T) {
		_, err := svc.UpdateUser(ctx, a.ID, domain.UpdateUserInput{ManagerID: &c.ID})
		var validationErr domain.ValidationError
		require.ErrorAs(t, err, &validationErr)
		assert.Contains(t, err.Error(), "cycle")

		// The chain is unchanged
		got, err := svc.GetProfileByID(ctx, a.ID)
		require.NoError(t, err)
		assert.Nil(t, got.ManagerID)
	})

	t.Run("reassigning within the tree is fine", func(t *testing.T) {
		_, err := svc.UpdateUser(ctx, c.ID, domain.UpdateUserInput{ManagerID: &a.ID})
		assert.NoError(t, err)
	})

	t.Run("clearing the manager skips chain validation", func(t *testing.T) {
		_, err := svc.UpdateUser(ctx, b.ID, domain.UpdateUserInput{ClearManager: true})
		require.NoError(t, err)

		got, err := svc.GetProfileByID(ctx, b.ID)
		require.NoError(t, err)
		assert.Nil(t, got.ManagerID)
	})
}

func TestUpdateUser_NotFound(t *testing.T) {
	svc, _ := newUserService(t)

	name := "X"
	profile, err := svc.UpdateUser(context.Background(), "missing", domain.UpdateUserInput{FullName: &name})
	require.NoError(t, err)
	assert.Nil(t, profile)
}

func TestListUsers_WrapsRepositoryPage(t *testing.T) {
	ctx := context.Background()
	svc, _ := newUserService(t)

	for _, email := range []string{"a@betacom.vn", "b@betacom.vn", "c@betacom.vn"} {
		createUser(t, svc, email, "User", nil)
	}

	resp, err := svc.ListUsers(ctx, domain.ProfileFilter{PageSize: 2})
	require.NoError(t, err)
	assert.Equal(t, 3, resp.TotalCount)
	assert.Len(t, resp.Users, 2)
}

func TestBulkCreateUsers(t *testing.T) {
	ctx := context.Background()
	svc, _ := newUserService(t)

	createUser(t, svc, "taken@betacom.vn", "Taken", nil)

	inputs := []domain.CreateUserInput{
		{Email: "new1@betacom.vn", Password: "x", FullName: "New One", Role: domain.RoleSpecialist},
		{Email: "taken@betacom.vn", Password: "x", FullName: "Collides", Role: domain.RoleSpecialist},
		{Email: "bad-email", Password: "x", FullName: "Bad", Role: domain.RoleSpecialist},
		{Email: "new2@betacom.vn", Password: "x", FullName: "New Two", Role: domain.RoleSpecialist},
	}

	result, err := svc.BulkCreateUsers(ctx, inputs)
	require.NoError(t, err)

	assert.Equal(t, 2, result.SuccessCount)
	require.Len(t, result.Results, 4)

	assert.NotEmpty(t, result.Results[0].UserID)
	assert.Empty(t, result.Results[0].Error)

	assert.Empty(t, result.Results[1].UserID)
	assert.Contains(t, result.Results[1].Error, "already exists")

	assert.Contains(t, result.Results[2].Error, "not valid")

	// The failure in the middle did not abort the tail of the batch
	assert.NotEmpty(t, result.Results[3].UserID)
}

func TestDeleteUser(t *testing.T) {
	ctx := context.Background()
	svc, _ := newUserService(t)

	profile := createUser(t, svc, "gone@betacom.vn", "Gone", nil)

	deleted, err := svc.DeleteUser(ctx, profile.ID)
	require.NoError(t, err)
	assert.True(t, deleted)

	deleted, err = svc.DeleteUser(ctx, profile.ID)
	require.NoError(t, err)
	assert.False(t, deleted)
}
