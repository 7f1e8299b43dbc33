package handlers

import (
	"log/slog"
	"net/http"

	"github.com/fintrackhq/fintrack/internal/api"
	"github.com/fintrackhq/fintrack/internal/audit"
	"github.com/fintrackhq/fintrack/internal/config"
	"github.com/fintrackhq/fintrack/internal/db"
	"github.com/fintrackhq/fintrack/internal/middleware"
	"github.com/fintrackhq/fintrack/internal/repository"
	"github.com/fintrackhq/fintrack/internal/service"
)

// NewRouter creates and configures the HTTP router with all routes and middleware.
func NewRouter(
	database *db.DB,
	cfg *config.Config,
	logger *slog.Logger,
) http.Handler {
	tokens := service.NewTokenManager(&cfg.Auth)
	recorder := audit.NewRecorder(repository.NewLogRepository(database), logger)
	matcher := service.NewBlocklistMatcher(
		repository.NewBlocklistRepository(database),
		service.DefaultBlockRules(),
	)

	authService := service.NewAuthService(database, tokens, matcher, recorder)
	ledgerService := service.NewLedgerService(database)
	adminService := service.NewAdminService(database, tokens, recorder)

	handler := NewHandler(authService, ledgerService, adminService, database, logger)

	mux := http.NewServeMux()
	api.RegisterDocsRoutes(mux)

	mux.HandleFunc("GET /{$}", handler.Welcome)
	mux.HandleFunc("GET /health", handler.Health)

	mux.HandleFunc("POST /api/auth/register", handler.Register)
	mux.HandleFunc("POST /api/auth/login", handler.Login)
	mux.HandleFunc("POST /api/admin/login", handler.AdminLogin)

	userAuth := middleware.Auth(tokens, repository.NewUserRepository(database), logger)
	mux.Handle("GET /api/auth/user", userAuth(http.HandlerFunc(handler.CurrentUser)))

	mux.Handle("GET /api/accounts", userAuth(http.HandlerFunc(handler.ListAccounts)))
	mux.Handle("POST /api/accounts", userAuth(http.HandlerFunc(handler.CreateAccount)))
	mux.Handle("PUT /api/accounts/{id}", userAuth(http.HandlerFunc(handler.UpdateAccount)))
	mux.Handle("DELETE /api/accounts/{id}", userAuth(http.HandlerFunc(handler.DeleteAccount)))

	mux.Handle("GET /api/cards", userAuth(http.HandlerFunc(handler.ListCards)))
	mux.Handle("POST /api/cards", userAuth(http.HandlerFunc(handler.CreateCard)))
	mux.Handle("DELETE /api/cards/{id}", userAuth(http.HandlerFunc(handler.DeleteCard)))

	mux.Handle("GET /api/transactions", userAuth(http.HandlerFunc(handler.ListTransactions)))
	mux.Handle("POST /api/transactions", userAuth(http.HandlerFunc(handler.CreateTransaction)))
	mux.Handle("DELETE /api/transactions/{id}", userAuth(http.HandlerFunc(handler.DeleteTransaction)))

	adminAuth := middleware.AdminAuth(tokens, adminService, logger)
	mux.Handle("GET /api/admin/me", adminAuth(http.HandlerFunc(handler.AdminProfile)))
	mux.Handle("GET /api/admin/users", adminAuth(http.HandlerFunc(handler.AdminListUsers)))
	mux.Handle("DELETE /api/admin/users/{id}", adminAuth(http.HandlerFunc(handler.AdminDeleteUser)))
	mux.Handle("GET /api/admin/blocked-users", adminAuth(http.HandlerFunc(handler.AdminListBlockedUsers)))
	mux.Handle("POST /api/admin/block-user", adminAuth(http.HandlerFunc(handler.AdminBlockUser)))
	mux.Handle("DELETE /api/admin/blocked-users/{id}", adminAuth(http.HandlerFunc(handler.AdminUnblockUser)))
	mux.Handle("GET /api/admin/logs", adminAuth(http.HandlerFunc(handler.AdminQueryLogs)))

	var finalHandler http.Handler = mux
	finalHandler = middleware.RequestLog(logger)(finalHandler)
	finalHandler = middleware.CORS()(finalHandler)

	return finalHandler
}
