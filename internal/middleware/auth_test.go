package middleware

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/fintrackhq/fintrack/internal/config"
	"github.com/fintrackhq/fintrack/internal/models"
	"github.com/fintrackhq/fintrack/internal/repository/mocks"
	"github.com/fintrackhq/fintrack/internal/service"
)

func testTokens() *service.TokenManager {
	return service.NewTokenManager(&config.AuthConfig{
		JWTSecret:        "test-secret",
		TokenExpiry:      time.Hour,
		AdminTokenExpiry: time.Hour,
	})
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestAuth(t *testing.T) {
	t.Run("valid token resolves the user", func(t *testing.T) {
		tokens := testTokens()
		userID := uuid.New()
		user := &models.User{ID: userID, Username: "alice"}

		mockUsers := mocks.NewMockUserRepository(t)
		mockUsers.On("FindByID", mock.Anything, userID).Return(user, nil)

		token, err := tokens.IssueUserToken(userID)
		require.NoError(t, err)

		var seen *models.User
		handler := Auth(tokens, mockUsers, testLogger())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			seen = UserFrom(r.Context())
			w.WriteHeader(http.StatusOK)
		}))

		req := httptest.NewRequest(http.MethodGet, "/api/accounts", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		require.NotNil(t, seen)
		assert.Equal(t, "alice", seen.Username)
	})

	t.Run("missing header is rejected", func(t *testing.T) {
		mockUsers := mocks.NewMockUserRepository(t)

		handler := Auth(testTokens(), mockUsers, testLogger())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			t.Fatal("handler should not run")
		}))

		req := httptest.NewRequest(http.MethodGet, "/api/accounts", nil)
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.JSONEq(t, `{"error":"Authentication required","details":"No token provided"}`, rec.Body.String())
	})

	t.Run("garbage token is rejected", func(t *testing.T) {
		mockUsers := mocks.NewMockUserRepository(t)

		handler := Auth(testTokens(), mockUsers, testLogger())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			t.Fatal("handler should not run")
		}))

		req := httptest.NewRequest(http.MethodGet, "/api/accounts", nil)
		req.Header.Set("Authorization", "Bearer nonsense")
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("token for a deleted user is rejected", func(t *testing.T) {
		tokens := testTokens()
		userID := uuid.New()

		mockUsers := mocks.NewMockUserRepository(t)
		mockUsers.On("FindByID", mock.Anything, userID).Return(nil, models.ErrNotFound)

		token, err := tokens.IssueUserToken(userID)
		require.NoError(t, err)

		handler := Auth(tokens, mockUsers, testLogger())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			t.Fatal("handler should not run")
		}))

		req := httptest.NewRequest(http.MethodGet, "/api/accounts", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("admin token does not pass user auth", func(t *testing.T) {
		tokens := testTokens()
		mockUsers := mocks.NewMockUserRepository(t)

		token, err := tokens.IssueAdminToken(uuid.New())
		require.NoError(t, err)

		handler := Auth(tokens, mockUsers, testLogger())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			t.Fatal("handler should not run")
		}))

		req := httptest.NewRequest(http.MethodGet, "/api/accounts", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}
