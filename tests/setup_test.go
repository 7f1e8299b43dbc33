//nolint:errcheck // unchecked errors are acceptable in test files
package tests

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/fintrackhq/fintrack/internal/audit"
	"github.com/fintrackhq/fintrack/internal/config"
	"github.com/fintrackhq/fintrack/internal/db"
	"github.com/fintrackhq/fintrack/internal/handlers"
	"github.com/fintrackhq/fintrack/internal/repository"
	"github.com/fintrackhq/fintrack/internal/service"
)

// TestServer wraps the HTTP test server and database for integration tests.
type TestServer struct {
	Server   *httptest.Server
	Database *db.DB
	Config   *config.Config
	t        *testing.T
}

// SetupTest creates a new test server with a clean database state.
func SetupTest(t *testing.T) *TestServer {
	t.Helper()

	cfg, err := config.Load()
	require.NoError(t, err, "failed to load config")

	// Provision a known admin for the admin surface tests
	cfg.Admin.Username = "root"
	cfg.Admin.Email = "root@example.com"
	cfg.Admin.Password = "root-password"

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	database, err := db.Connect(context.Background(), &cfg.Database, logger)
	if err != nil {
		t.Skipf("test database unavailable: %v", err)
	}

	require.NoError(t, database.Migrate(), "failed to run migrations")
	resetTestData(t, database)

	tokens := service.NewTokenManager(&cfg.Auth)
	recorder := audit.NewRecorder(repository.NewLogRepository(database), logger)
	adminService := service.NewAdminService(database, tokens, recorder)
	require.NoError(t, adminService.EnsureBootstrapAdmin(context.Background(), &cfg.Admin))

	router := handlers.NewRouter(database, cfg, logger)
	server := httptest.NewServer(router)

	return &TestServer{
		Server:   server,
		Database: database,
		Config:   cfg,
		t:        t,
	}
}

// Close shuts down the test server and database connection.
func (ts *TestServer) Close() {
	ts.Server.Close()
	_ = ts.Database.Close()
}

// URL returns the full URL for a given path.
func (ts *TestServer) URL(path string) string {
	return ts.Server.URL + path
}

func resetTestData(t *testing.T, database *db.DB) {
	t.Helper()

	_, err := database.ExecContext(context.Background(), `
		TRUNCATE TABLE transactions CASCADE;
		TRUNCATE TABLE cards CASCADE;
		TRUNCATE TABLE accounts CASCADE;
		TRUNCATE TABLE users CASCADE;
		TRUNCATE TABLE blocked_users CASCADE;
		TRUNCATE TABLE admins CASCADE;
		TRUNCATE TABLE logs CASCADE;
	`)
	require.NoError(t, err, "failed to reset test data")
}

// DoJSON sends a JSON request with an optional bearer token and returns the
// decoded response body.
func (ts *TestServer) DoJSON(t *testing.T, method, path, token string, body any) (int, map[string]any) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		reader = bytes.NewReader(jsonBody)
	}

	req, err := http.NewRequest(method, ts.URL(path), reader)
	require.NoError(t, err)

	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var decoded map[string]any
	raw, _ := io.ReadAll(resp.Body)
	if len(raw) > 0 {
		_ = json.Unmarshal(raw, &decoded)
	}
	return resp.StatusCode, decoded
}

// DoJSONList is DoJSON for endpoints that return a JSON array.
func (ts *TestServer) DoJSONList(t *testing.T, method, path, token string) (int, []map[string]any) {
	t.Helper()

	req, err := http.NewRequest(method, ts.URL(path), nil)
	require.NoError(t, err)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var decoded []map[string]any
	_ = json.NewDecoder(resp.Body).Decode(&decoded)
	return resp.StatusCode, decoded
}

// RegisterUser registers a user and returns its bearer token.
func (ts *TestServer) RegisterUser(t *testing.T, username, email, password string) string {
	t.Helper()

	status, body := ts.DoJSON(t, http.MethodPost, "/api/auth/register", "", map[string]any{
		"username": username,
		"email":    email,
		"password": password,
	})
	require.Equal(t, http.StatusCreated, status, "registration failed: %v", body)

	token, _ := body["token"].(string)
	require.NotEmpty(t, token)
	return token
}

// AdminLogin logs in as the provisioned bootstrap admin.
func (ts *TestServer) AdminLogin(t *testing.T) string {
	t.Helper()

	status, body := ts.DoJSON(t, http.MethodPost, "/api/admin/login", "", map[string]any{
		"username": ts.Config.Admin.Username,
		"password": ts.Config.Admin.Password,
	})
	require.Equal(t, http.StatusOK, status, "admin login failed: %v", body)

	token, _ := body["token"].(string)
	require.NotEmpty(t, token)
	return token
}

// CreateAccount creates an account and returns its id.
func (ts *TestServer) CreateAccount(t *testing.T, token, name string) string {
	t.Helper()

	status, body := ts.DoJSON(t, http.MethodPost, "/api/accounts", token, map[string]any{
		"name": name,
		"type": "checking",
	})
	require.Equal(t, http.StatusCreated, status, "account creation failed: %v", body)

	id, _ := body["id"].(string)
	require.NotEmpty(t, id)
	return id
}
