package handlers

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/fintrackhq/fintrack/internal/models"
	"github.com/fintrackhq/fintrack/internal/service"
	"github.com/fintrackhq/fintrack/internal/service/mocks"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestRegister(t *testing.T) {
	t.Run("success returns 201 with token", func(t *testing.T) {
		mockAuth := mocks.NewMockAuthenticator(t)
		handler := NewHandler(mockAuth, nil, nil, nil, testLogger())

		userID := uuid.New()
		mockAuth.On("Register", mock.Anything, mock.AnythingOfType("service.RegisterInput"), mock.Anything, mock.Anything).
			Return(&service.AuthResult{
				Token: "signed-token",
				User:  models.PublicUser{ID: userID, Username: "alice", Email: "alice@example.com"},
			}, nil)

		body := `{"username":"alice","email":"alice@example.com","password":"secret1"}`
		req := httptest.NewRequest(http.MethodPost, "/api/auth/register", strings.NewReader(body))
		rec := httptest.NewRecorder()

		handler.Register(rec, req)

		assert.Equal(t, http.StatusCreated, rec.Code)

		var result service.AuthResult
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
		assert.Equal(t, "signed-token", result.Token)
		assert.Equal(t, "alice", result.User.Username)
	})

	t.Run("blocked identity returns 403", func(t *testing.T) {
		mockAuth := mocks.NewMockAuthenticator(t)
		handler := NewHandler(mockAuth, nil, nil, nil, testLogger())

		mockAuth.On("Register", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
			Return(nil, &service.ServiceError{
				Code:    service.ErrCodeBlocked,
				Message: "Account creation not allowed",
			})

		body := `{"username":"banned","email":"banned@example.com","password":"secret1"}`
		req := httptest.NewRequest(http.MethodPost, "/api/auth/register", strings.NewReader(body))
		rec := httptest.NewRecorder()

		handler.Register(rec, req)

		assert.Equal(t, http.StatusForbidden, rec.Code)
		assert.Contains(t, rec.Body.String(), "Account creation not allowed")
	})

	t.Run("duplicate user returns 400 naming the field", func(t *testing.T) {
		mockAuth := mocks.NewMockAuthenticator(t)
		handler := NewHandler(mockAuth, nil, nil, nil, testLogger())

		mockAuth.On("Register", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
			Return(nil, &service.ServiceError{
				Code:    service.ErrCodeDuplicateUser,
				Message: "User already exists",
				Details: "username",
			})

		body := `{"username":"alice","email":"alice@example.com","password":"secret1"}`
		req := httptest.NewRequest(http.MethodPost, "/api/auth/register", strings.NewReader(body))
		rec := httptest.NewRecorder()

		handler.Register(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), `"details":"username"`)
	})

	t.Run("malformed body returns 400", func(t *testing.T) {
		mockAuth := mocks.NewMockAuthenticator(t)
		handler := NewHandler(mockAuth, nil, nil, nil, testLogger())

		req := httptest.NewRequest(http.MethodPost, "/api/auth/register", strings.NewReader("{not json"))
		rec := httptest.NewRecorder()

		handler.Register(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		mockAuth.AssertNotCalled(t, "Register", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("forwarded client address reaches the service", func(t *testing.T) {
		mockAuth := mocks.NewMockAuthenticator(t)
		handler := NewHandler(mockAuth, nil, nil, nil, testLogger())

		mockAuth.On("Register", mock.Anything, mock.Anything, "203.0.113.7", "test-agent").
			Return(&service.AuthResult{Token: "t"}, nil)

		body := `{"username":"alice","email":"alice@example.com","password":"secret1"}`
		req := httptest.NewRequest(http.MethodPost, "/api/auth/register", strings.NewReader(body))
		req.Header.Set("X-Forwarded-For", "203.0.113.7, 10.0.0.1")
		req.Header.Set("User-Agent", "test-agent")
		rec := httptest.NewRecorder()

		handler.Register(rec, req)

		assert.Equal(t, http.StatusCreated, rec.Code)
	})
}

func TestLogin(t *testing.T) {
	t.Run("success returns 200", func(t *testing.T) {
		mockAuth := mocks.NewMockAuthenticator(t)
		handler := NewHandler(mockAuth, nil, nil, nil, testLogger())

		mockAuth.On("Login", mock.Anything, "alice", "secret1").
			Return(&service.AuthResult{Token: "signed-token"}, nil)

		body := `{"username":"alice","password":"secret1"}`
		req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(body))
		rec := httptest.NewRecorder()

		handler.Login(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("wrong credentials return 401", func(t *testing.T) {
		mockAuth := mocks.NewMockAuthenticator(t)
		handler := NewHandler(mockAuth, nil, nil, nil, testLogger())

		mockAuth.On("Login", mock.Anything, "alice", "wrong").
			Return(nil, &service.ServiceError{
				Code:    service.ErrCodeInvalidCredentials,
				Message: "Invalid credentials",
			})

		body := `{"username":"alice","password":"wrong"}`
		req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(body))
		rec := httptest.NewRecorder()

		handler.Login(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Contains(t, rec.Body.String(), "Invalid credentials")
	})

	t.Run("blocked account returns 403", func(t *testing.T) {
		mockAuth := mocks.NewMockAuthenticator(t)
		handler := NewHandler(mockAuth, nil, nil, nil, testLogger())

		mockAuth.On("Login", mock.Anything, "banned", "secret1").
			Return(nil, &service.ServiceError{
				Code:    service.ErrCodeBlocked,
				Message: "Account blocked",
			})

		body := `{"username":"banned","password":"secret1"}`
		req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(body))
		rec := httptest.NewRecorder()

		handler.Login(rec, req)

		assert.Equal(t, http.StatusForbidden, rec.Code)
	})
}
