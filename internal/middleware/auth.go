// Package middleware provides HTTP middleware components for the finance API.
package middleware

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"github.com/fintrackhq/fintrack/internal/models"
	"github.com/fintrackhq/fintrack/internal/repository"
	"github.com/fintrackhq/fintrack/internal/service"
)

type contextKey string

const (
	userContextKey  contextKey = "authenticated-user"
	adminContextKey contextKey = "authenticated-admin"
)

// UserFrom returns the authenticated user stored by Auth, or nil.
func UserFrom(ctx context.Context) *models.User {
	user, _ := ctx.Value(userContextKey).(*models.User)
	return user
}

// WithUser returns a context carrying the authenticated user.
func WithUser(ctx context.Context, user *models.User) context.Context {
	return context.WithValue(ctx, userContextKey, user)
}

// AdminFrom returns the authenticated admin stored by AdminAuth, or nil.
func AdminFrom(ctx context.Context) *models.Admin {
	admin, _ := ctx.Value(adminContextKey).(*models.Admin)
	return admin
}

// WithAdmin returns a context carrying the authenticated admin.
func WithAdmin(ctx context.Context, admin *models.Admin) context.Context {
	return context.WithValue(ctx, adminContextKey, admin)
}

// Auth creates middleware that verifies a user bearer token and resolves it
// to a live user before the handler runs.
func Auth(tokens *service.TokenManager, users repository.UserRepository, logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, ok := bearerToken(r)
			if !ok {
				writeAuthError(w, "Authentication required", "No token provided")
				return
			}

			claims, err := tokens.VerifyUserToken(token)
			if err != nil {
				logger.Debug("token verification failed", "error", err)
				writeAuthError(w, "Authentication failed", "Invalid token")
				return
			}

			user, err := users.FindByID(r.Context(), claims.UserID)
			if err != nil {
				writeAuthError(w, "Authentication failed", "User not found")
				return
			}

			next.ServeHTTP(w, r.WithContext(WithUser(r.Context(), user)))
		})
	}
}

// AdminAuth creates middleware that verifies an admin bearer token and
// resolves it to a live admin before the handler runs.
func AdminAuth(tokens *service.TokenManager, admins service.Administrator, logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, ok := bearerToken(r)
			if !ok {
				writeAuthError(w, "Authentication required", "No token provided")
				return
			}

			claims, err := tokens.VerifyAdminToken(token)
			if err != nil {
				logger.Debug("admin token verification failed", "error", err)
				writeAuthError(w, "Authentication failed", "Invalid token")
				return
			}

			admin, err := admins.FindAdmin(r.Context(), claims.AdminID)
			if err != nil {
				writeAuthError(w, "Authentication failed", "Admin not found")
				return
			}

			next.ServeHTTP(w, r.WithContext(WithAdmin(r.Context(), admin)))
		})
	}
}

func bearerToken(r *http.Request) (string, bool) {
	header := r.Header.Get("Authorization")
	if header == "" {
		return "", false
	}
	token := strings.TrimPrefix(header, "Bearer ")
	if token == header || token == "" {
		return "", false
	}
	return token, true
}

func writeAuthError(w http.ResponseWriter, message, details string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	_ = json.NewEncoder(w).Encode(map[string]string{ //nolint:errcheck
		"error":   message,
		"details": details,
	})
}
