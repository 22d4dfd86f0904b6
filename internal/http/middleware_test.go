package http

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/betacom-hq/backoffice/pkg/logger"
)

type stubVerifier struct {
	userID string
	err    error
}

func (v *stubVerifier) VerifyAccessToken(token string) (string, error) {
	return v.userID, v.err
}

func TestRequireAuth(t *testing.T) {
	var seenUserID string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seenUserID = r.Header.Get("X-User-ID")
		w.WriteHeader(http.StatusOK)
	})

	t.Run("GET passes without a token", func(t *testing.T) {
		handler := RequireAuth(&stubVerifier{}, logger.NewTestLogger(t), next)

		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/users.list", nil))
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("auth endpoints pass without a token", func(t *testing.T) {
		handler := RequireAuth(&stubVerifier{}, logger.NewTestLogger(t), next)

		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/auth.signIn", nil))
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("mutating route without a token is rejected", func(t *testing.T) {
		handler := RequireAuth(&stubVerifier{}, logger.NewTestLogger(t), next)

		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/users.create", nil))
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("invalid token is rejected", func(t *testing.T) {
		handler := RequireAuth(&stubVerifier{err: errors.New("expired")}, logger.NewTestLogger(t), next)

		req := httptest.NewRequest(http.MethodPost, "/api/users.create", nil)
		req.Header.Set("Authorization", "Bearer bad-token")
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("valid token passes and tags the request", func(t *testing.T) {
		handler := RequireAuth(&stubVerifier{userID: "u1"}, logger.NewTestLogger(t), next)

		req := httptest.NewRequest(http.MethodPost, "/api/users.create", nil)
		req.Header.Set("Authorization", "Bearer good-token")
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "u1", seenUserID)
	})
}
