package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestProfileFilter_Normalize(t *testing.T) {
	tests := []struct {
		name         string
		filter       ProfileFilter
		wantPage     int
		wantPageSize int
	}{
		{"zero value", ProfileFilter{}, 1, 10},
		{"negative page", ProfileFilter{Page: -3, PageSize: 25}, 1, 25},
		{"oversized page size", ProfileFilter{Page: 2, PageSize: 500}, 2, 100},
		{"already valid", ProfileFilter{Page: 4, PageSize: 50}, 4, 50},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.filter.Normalize()
			assert.Equal(t, tt.wantPage, tt.filter.Page)
			assert.Equal(t, tt.wantPageSize, tt.filter.PageSize)
		})
	}
}

func TestCreateUserInput_Validate(t *testing.T) {
	valid := CreateUserInput{
		Email:    "someone@betacom.vn",
		Password: "secret",
		FullName: "Someone",
		Role:     RoleSpecialist,
	}
	assert.NoError(t, valid.Validate())
	// Work type defaults to fulltime
	assert.Equal(t, WorkTypeFulltime, valid.WorkType)

	tests := []struct {
		name  string
		input CreateUserInput
	}{
		{"missing email", CreateUserInput{Password: "x", FullName: "A", Role: RoleTrainee}},
		{"invalid email", CreateUserInput{Email: "not-an-email", Password: "x", FullName: "A", Role: RoleTrainee}},
		{"missing password", CreateUserInput{Email: "a@b.vn", FullName: "A", Role: RoleTrainee}},
		{"missing full name", CreateUserInput{Email: "a@b.vn", Password: "x", Role: RoleTrainee}},
		{"missing role", CreateUserInput{Email: "a@b.vn", Password: "x", FullName: "A"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Error(t, tt.input.Validate())
		})
	}
}

func TestProfile_Clone(t *testing.T) {
	dept := "dept1"
	manager := "mgr1"
	profile := &Profile{
		ID:           "p1",
		Email:        "p1@betacom.vn",
		DepartmentID: &dept,
		ManagerID:    &manager,
		JoinDate:     time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
	}

	clone := profile.Clone()
	*clone.DepartmentID = "changed"
	*clone.ManagerID = "changed"
	clone.Email = "changed@betacom.vn"

	assert.Equal(t, "dept1", *profile.DepartmentID)
	assert.Equal(t, "mgr1", *profile.ManagerID)
	assert.Equal(t, "p1@betacom.vn", profile.Email)
}

func TestSession_Expired(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	past := &Session{ExpiresAt: now.Add(-time.Second).Unix()}
	assert.True(t, past.Expired(now))

	exact := &Session{ExpiresAt: now.Unix()}
	assert.True(t, exact.Expired(now))

	future := &Session{ExpiresAt: now.Add(time.Hour).Unix()}
	assert.False(t, future.Expired(now))
}
