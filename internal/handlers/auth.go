package handlers

import (
	"net/http"

	"github.com/fintrackhq/fintrack/internal/middleware"
	"github.com/fintrackhq/fintrack/internal/service"
)

// Register handles POST /api/auth/register
func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	var input service.RegisterInput
	if !h.decodeBody(w, r, &input) {
		return
	}

	result, err := h.authService.Register(r.Context(), input, clientIP(r), r.UserAgent())
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusCreated, result)
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Login handles POST /api/auth/login
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if !h.decodeBody(w, r, &req) {
		return
	}

	result, err := h.authService.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusOK, result)
}

// CurrentUser handles GET /api/auth/user
func (h *Handler) CurrentUser(w http.ResponseWriter, r *http.Request) {
	user := middleware.UserFrom(r.Context())

	profile, err := h.authService.CurrentUser(r.Context(), user.ID)
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusOK, profile)
}
