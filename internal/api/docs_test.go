package api

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetSwagger(t *testing.T) {
	doc, err := GetSwagger()
	require.NoError(t, err, "embedded OpenAPI document must load and validate")
	require.NotNil(t, doc)

	assert.Equal(t, "FinTrack API", doc.Info.Title)

	for _, path := range []string{
		"/api/auth/register",
		"/api/auth/login",
		"/api/auth/user",
		"/api/accounts",
		"/api/transactions",
		"/api/admin/block-user",
		"/api/admin/blocked-users",
		"/api/admin/logs",
	} {
		assert.NotNil(t, doc.Paths.Find(path), "missing path %s", path)
	}
}

func TestDocsRoutes(t *testing.T) {
	mux := http.NewServeMux()
	RegisterDocsRoutes(mux)

	t.Run("swagger ui", func(t *testing.T) {
		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/docs", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "swagger-ui")
	})

	t.Run("openapi json", func(t *testing.T) {
		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/docs/openapi", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
		assert.Contains(t, rec.Body.String(), "FinTrack API")
	})
}
