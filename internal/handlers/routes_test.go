package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fintrackhq/fintrack/internal/config"
)

// Protected routes must be registered under their documented paths: an
// unauthenticated request reaches the auth middleware and gets a 401, never
// a 404. No database access happens before the token check.
func TestRouterRegistersDocumentedPaths(t *testing.T) {
	cfg, err := config.Load()
	require.NoError(t, err)

	router := NewRouter(nil, cfg, testLogger())

	tests := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/api/auth/user"},
		{http.MethodGet, "/api/accounts"},
		{http.MethodPost, "/api/accounts"},
		{http.MethodGet, "/api/cards"},
		{http.MethodGet, "/api/transactions"},
		{http.MethodGet, "/api/admin/users"},
		{http.MethodPost, "/api/admin/block-user"},
		{http.MethodGet, "/api/admin/blocked-users"},
		{http.MethodGet, "/api/admin/logs"},
	}

	for _, tc := range tests {
		t.Run(tc.method+" "+tc.path, func(t *testing.T) {
			req := httptest.NewRequest(tc.method, tc.path, nil)
			rec := httptest.NewRecorder()

			router.ServeHTTP(rec, req)

			assert.Equal(t, http.StatusUnauthorized, rec.Code)
		})
	}
}

func TestRouterServesPublicRoutes(t *testing.T) {
	cfg, err := config.Load()
	require.NoError(t, err)

	router := NewRouter(nil, cfg, testLogger())

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Welcome to the FinTrack API")
}
