package app

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"

	"github.com/betacom-hq/backoffice/config"
	"github.com/betacom-hq/backoffice/pkg/logger"
)

func testConfig() *config.Config {
	return &config.Config{
		Server:       config.ServerConfig{Port: 0, Host: "127.0.0.1"},
		Session:      config.SessionConfig{Secret: "test-secret", ExpirySeconds: 3600},
		Environment:  "test",
		LogLevel:     "error",
		SeedDemoData: true,
		Version:      "test",
	}
}

func newTestApp(t *testing.T) *App {
	t.Helper()
	a := NewApp(testConfig(), WithLogger(logger.NewTestLogger(t)))
	require.NoError(t, a.Initialize())
	return a
}

func TestApp_HealthEndpoint(t *testing.T) {
	a := newTestApp(t)

	rec := httptest.NewRecorder()
	a.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", gjson.Get(rec.Body.String(), "status").String())
}

func TestApp_EndToEndFlow(t *testing.T) {
	a := newTestApp(t)
	handler := a.Handler()

	// Seeded data is visible without a token
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/shops.list", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotZero(t, gjson.Get(rec.Body.String(), "total_count").Int())

	// Writes require a bearer token
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/departments.create",
		bytes.NewReader([]byte(`{"name":"Unauthorized"}`))))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	// Sign in to get one
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/auth.signIn",
		bytes.NewReader([]byte(`{"email":"admin@betacom.vn","password":"admin123"}`))))
	require.Equal(t, http.StatusOK, rec.Code)
	token := gjson.Get(rec.Body.String(), "session.access_token").String()
	require.NotEmpty(t, token)

	// The same write succeeds with the token
	req := httptest.NewRequest(http.MethodPost, "/api/departments.create",
		bytes.NewReader([]byte(`{"name":"Authorized"}`)))
	req.Header.Set("Authorization", "Bearer "+token)
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "Authorized", gjson.Get(rec.Body.String(), "department.name").String())
}

func TestApp_SeedingCanBeDisabled(t *testing.T) {
	cfg := testConfig()
	cfg.SeedDemoData = false
	a := NewApp(cfg, WithLogger(logger.NewTestLogger(t)))
	require.NoError(t, a.Initialize())

	rec := httptest.NewRecorder()
	a.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/users.list", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Zero(t, gjson.Get(rec.Body.String(), "total_count").Int())
}
