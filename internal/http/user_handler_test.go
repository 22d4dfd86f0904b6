package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"

	"github.com/betacom-hq/backoffice/internal/domain"
	"github.com/betacom-hq/backoffice/internal/domain/mocks"
	"github.com/betacom-hq/backoffice/pkg/logger"
)

func setupUserHandler(t *testing.T) (*mocks.MockUserServiceInterface, *http.ServeMux) {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	service := mocks.NewMockUserServiceInterface(ctrl)
	handler := NewUserHandler(service, logger.NewTestLogger(t))
	mux := http.NewServeMux()
	handler.RegisterRoutes(mux)
	return service, mux
}

func TestUserHandler_List(t *testing.T) {
	t.Run("passes query filters through and returns the page", func(t *testing.T) {
		service, mux := setupUserHandler(t)

		service.EXPECT().
			ListUsers(gomock.Any(), domain.ProfileFilter{
				Search: "an", Role: "specialist", DepartmentID: "dep-1",
				Page: 2, PageSize: 5,
			}).
			Return(&domain.ProfileListResponse{
				Users:      []*domain.ProfileDetail{{Profile: domain.Profile{ID: "u1", Email: "a@betacom.vn"}}},
				TotalCount: 11,
			}, nil)

		req := httptest.NewRequest(http.MethodGet,
			"/api/users.list?search=an&role=specialist&department_id=dep-1&page=2&page_size=5", nil)
		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		body := rec.Body.String()
		assert.Equal(t, int64(11), gjson.Get(body, "total_count").Int())
		assert.Equal(t, "a@betacom.vn", gjson.Get(body, "users.0.email").String())
	})

	t.Run("rejects non-GET", func(t *testing.T) {
		_, mux := setupUserHandler(t)

		req := httptest.NewRequest(http.MethodPost, "/api/users.list", nil)
		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	})
}

func TestUserHandler_Get(t *testing.T) {
	t.Run("missing id", func(t *testing.T) {
		_, mux := setupUserHandler(t)

		req := httptest.NewRequest(http.MethodGet, "/api/users.get", nil)
		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("not found", func(t *testing.T) {
		service, mux := setupUserHandler(t)
		service.EXPECT().GetProfileByID(gomock.Any(), "missing").Return(nil, nil)

		req := httptest.NewRequest(http.MethodGet, "/api/users.get?id=missing", nil)
		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Contains(t, gjson.Get(rec.Body.String(), "error").String(), "not found")
	})

	t.Run("found", func(t *testing.T) {
		service, mux := setupUserHandler(t)
		service.EXPECT().GetProfileByID(gomock.Any(), "u1").
			Return(&domain.Profile{ID: "u1", Email: "a@betacom.vn", FullName: "A"}, nil)

		req := httptest.NewRequest(http.MethodGet, "/api/users.get?id=u1", nil)
		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "a@betacom.vn", gjson.Get(rec.Body.String(), "user.email").String())
	})
}

func TestUserHandler_Create(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		service, mux := setupUserHandler(t)
		service.EXPECT().CreateUser(gomock.Any(), gomock.Any()).
			Return(&domain.Profile{ID: "u1", Email: "new@betacom.vn"}, nil)

		body, _ := json.Marshal(domain.CreateUserInput{
			Email: "new@betacom.vn", Password: "x", FullName: "New", Role: domain.RoleSpecialist,
		})
		req := httptest.NewRequest(http.MethodPost, "/api/users.create", bytes.NewReader(body))
		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, req)

		require.Equal(t, http.StatusCreated, rec.Code)
		assert.Equal(t, "u1", gjson.Get(rec.Body.String(), "user.id").String())
	})

	t.Run("validation failure maps to 400", func(t *testing.T) {
		service, mux := setupUserHandler(t)
		service.EXPECT().CreateUser(gomock.Any(), gomock.Any()).
			Return(nil, domain.NewValidationError("email is not valid"))

		req := httptest.NewRequest(http.MethodPost, "/api/users.create", bytes.NewReader([]byte(`{}`)))
		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "email is not valid", gjson.Get(rec.Body.String(), "error").String())
	})

	t.Run("duplicate email maps to 409", func(t *testing.T) {
		service, mux := setupUserHandler(t)
		service.EXPECT().CreateUser(gomock.Any(), gomock.Any()).
			Return(nil, &domain.ErrDuplicateEmail{Email: "dup@betacom.vn"})

		req := httptest.NewRequest(http.MethodPost, "/api/users.create", bytes.NewReader([]byte(`{}`)))
		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusConflict, rec.Code)
		assert.Contains(t, gjson.Get(rec.Body.String(), "error").String(), "dup@betacom.vn")
	})

	t.Run("malformed body", func(t *testing.T) {
		_, mux := setupUserHandler(t)

		req := httptest.NewRequest(http.MethodPost, "/api/users.create", bytes.NewReader([]byte(`{`)))
		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestUserHandler_Update(t *testing.T) {
	t.Run("not found maps to 404", func(t *testing.T) {
		service, mux := setupUserHandler(t)
		service.EXPECT().UpdateUser(gomock.Any(), "missing", gomock.Any()).Return(nil, nil)

		req := httptest.NewRequest(http.MethodPost, "/api/users.update",
			bytes.NewReader([]byte(`{"id":"missing","full_name":"X"}`)))
		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("applies the partial update", func(t *testing.T) {
		service, mux := setupUserHandler(t)
		service.EXPECT().UpdateUser(gomock.Any(), "u1", gomock.Any()).
			DoAndReturn(func(_ interface{}, id string, input domain.UpdateUserInput) (*domain.Profile, error) {
				require.NotNil(t, input.FullName)
				assert.Equal(t, "Renamed", *input.FullName)
				return &domain.Profile{ID: id, FullName: *input.FullName}, nil
			})

		req := httptest.NewRequest(http.MethodPost, "/api/users.update",
			bytes.NewReader([]byte(`{"id":"u1","full_name":"Renamed"}`)))
		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "Renamed", gjson.Get(rec.Body.String(), "user.full_name").String())
	})
}

func TestUserHandler_Delete(t *testing.T) {
	service, mux := setupUserHandler(t)
	service.EXPECT().DeleteUser(gomock.Any(), "u1").Return(true, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/users.delete",
		bytes.NewReader([]byte(`{"id":"u1"}`)))
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, gjson.Get(rec.Body.String(), "success").Bool())
}

func TestUserHandler_BulkCreate(t *testing.T) {
	t.Run("empty batch is rejected", func(t *testing.T) {
		_, mux := setupUserHandler(t)

		req := httptest.NewRequest(http.MethodPost, "/api/users.bulkCreate",
			bytes.NewReader([]byte(`{"users":[]}`)))
		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("returns per-item results", func(t *testing.T) {
		service, mux := setupUserHandler(t)
		service.EXPECT().BulkCreateUsers(gomock.Any(), gomock.Len(2)).
			Return(&domain.BulkCreateResult{
				SuccessCount: 1,
				Results: []domain.BulkCreateItemResult{
					{Email: "ok@betacom.vn", UserID: "u1"},
					{Email: "dup@betacom.vn", Error: "a user with email dup@betacom.vn already exists"},
				},
			}, nil)

		req := httptest.NewRequest(http.MethodPost, "/api/users.bulkCreate",
			bytes.NewReader([]byte(`{"users":[{"email":"ok@betacom.vn"},{"email":"dup@betacom.vn"}]}`)))
		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		body := rec.Body.String()
		assert.Equal(t, int64(1), gjson.Get(body, "success_count").Int())
		assert.Equal(t, "u1", gjson.Get(body, "results.0.user_id").String())
		assert.Contains(t, gjson.Get(body, "results.1.error").String(), "already exists")
	})
}
