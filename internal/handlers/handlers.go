// Package handlers implements HTTP handlers for the finance API.
package handlers

import (
	"log/slog"

	"github.com/fintrackhq/fintrack/internal/service"
)

// Handler carries the service dependencies for all endpoints
type Handler struct {
	authService   service.Authenticator
	ledgerService service.Ledger
	adminService  service.Administrator
	healthChecker service.HealthChecker
	logger        *slog.Logger
}

// NewHandler creates a new Handler with injected service dependencies.
func NewHandler(
	authService service.Authenticator,
	ledgerService service.Ledger,
	adminService service.Administrator,
	healthChecker service.HealthChecker,
	logger *slog.Logger,
) *Handler {
	return &Handler{
		authService:   authService,
		ledgerService: ledgerService,
		adminService:  adminService,
		healthChecker: healthChecker,
		logger:        logger,
	}
}
