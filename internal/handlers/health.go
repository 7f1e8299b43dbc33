package handlers

import (
	"context"
	"net/http"
	"time"
)

// Welcome handles GET /
func (h *Handler) Welcome(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, map[string]string{
		"message": "Welcome to the FinTrack API",
		"docs":    "/docs",
	})
}

// Health handles GET /health
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	pingCtx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	if err := h.healthChecker.PingContext(pingCtx); err != nil {
		h.logger.Error("health check failed: database unreachable", "error", err)
		h.writeJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "unhealthy"})
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]string{"status": "healthy"})
}
