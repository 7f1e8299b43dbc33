package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/fintrackhq/fintrack/internal/middleware"
	"github.com/fintrackhq/fintrack/internal/models"
	"github.com/fintrackhq/fintrack/internal/service"
)

type adminLoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// AdminLogin handles POST /api/admin/login
func (h *Handler) AdminLogin(w http.ResponseWriter, r *http.Request) {
	var req adminLoginRequest
	if !h.decodeBody(w, r, &req) {
		return
	}

	result, err := h.adminService.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusOK, result)
}

// AdminProfile handles GET /api/admin/me
func (h *Handler) AdminProfile(w http.ResponseWriter, r *http.Request) {
	admin := middleware.AdminFrom(r.Context())
	h.writeJSON(w, http.StatusOK, admin.Public())
}

// AdminListUsers handles GET /api/admin/users
func (h *Handler) AdminListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.adminService.ListUsers(r.Context())
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusOK, users)
}

// AdminDeleteUser handles DELETE /api/admin/users/{id}
func (h *Handler) AdminDeleteUser(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.pathID(w, r, "User")
	if !ok {
		return
	}

	if err := h.adminService.DeleteUser(r.Context(), userID); err != nil {
		h.writeServiceError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]string{"message": "User deleted successfully"})
}

// AdminBlockUser handles POST /api/admin/block-user
func (h *Handler) AdminBlockUser(w http.ResponseWriter, r *http.Request) {
	var input service.BlockUserInput
	if !h.decodeBody(w, r, &input) {
		return
	}

	if _, err := h.adminService.BlockUser(r.Context(), input, clientIP(r), r.UserAgent()); err != nil {
		h.writeServiceError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]string{"message": "User blocked successfully"})
}

// AdminListBlockedUsers handles GET /api/admin/blocked-users
func (h *Handler) AdminListBlockedUsers(w http.ResponseWriter, r *http.Request) {
	blocked, err := h.adminService.ListBlockedUsers(r.Context())
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusOK, blocked)
}

// AdminUnblockUser handles DELETE /api/admin/blocked-users/{id}
func (h *Handler) AdminUnblockUser(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r, "Blocked user")
	if !ok {
		return
	}

	if err := h.adminService.UnblockUser(r.Context(), id); err != nil {
		h.writeServiceError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]string{"message": "User unblocked successfully"})
}

// AdminQueryLogs handles GET /api/admin/logs
func (h *Handler) AdminQueryLogs(w http.ResponseWriter, r *http.Request) {
	filter, err := logFilterFromQuery(r)
	if err != nil {
		h.writeError(w, http.StatusBadRequest, "Invalid query parameters", err.Error())
		return
	}

	logs, err := h.adminService.QueryLogs(r.Context(), filter)
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusOK, logs)
}

func logFilterFromQuery(r *http.Request) (models.LogFilter, error) {
	q := r.URL.Query()

	filter := models.LogFilter{
		Type:     models.LogType(q.Get("type")),
		Category: models.LogCategory(q.Get("category")),
	}

	if raw := q.Get("startDate"); raw != "" {
		t, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return filter, err
		}
		filter.Start = &t
	}

	if raw := q.Get("endDate"); raw != "" {
		t, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return filter, err
		}
		filter.End = &t
	}

	if raw := q.Get("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil {
			return filter, err
		}
		filter.Limit = limit
	}

	return filter, nil
}
