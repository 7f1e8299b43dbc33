package handlers

import (
	"encoding/json"
	"errors"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/fintrackhq/fintrack/internal/service"
)

// errorResponse is the structured error body returned for expected failures
type errorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logger.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) writeError(w http.ResponseWriter, status int, message, details string) {
	h.writeJSON(w, status, errorResponse{Error: message, Details: details})
}

// writeServiceError maps a service error to its HTTP status. Unexpected
// errors become a generic 500 with diagnostic fields.
func (h *Handler) writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	var svcErr *service.ServiceError
	if !errors.As(err, &svcErr) || svcErr.Code == service.ErrCodeInternalError {
		h.logger.Error("unexpected error",
			"error", err,
			"path", r.URL.Path,
			"method", r.Method,
		)
		h.writeJSON(w, http.StatusInternalServerError, map[string]any{
			"error":     "Internal Server Error",
			"message":   "an unexpected error occurred",
			"path":      r.URL.Path,
			"method":    r.Method,
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		})
		return
	}

	h.writeError(w, statusForCode(svcErr.Code), svcErr.Message, svcErr.Details)
}

func statusForCode(code string) int {
	switch code {
	case service.ErrCodeUserNotFound,
		service.ErrCodeAccountNotFound,
		service.ErrCodeCardNotFound,
		service.ErrCodeTransactionNotFound,
		service.ErrCodeBlockedNotFound:
		return http.StatusNotFound
	case service.ErrCodeInvalidCredentials:
		return http.StatusUnauthorized
	case service.ErrCodeBlocked:
		return http.StatusForbidden
	case service.ErrCodeInvalidAmount,
		service.ErrCodeValidation,
		service.ErrCodeMissingFields,
		service.ErrCodeDuplicateUser,
		service.ErrCodeAlreadyBlocked:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// decodeBody parses a JSON request body into v
func (h *Handler) decodeBody(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		h.writeError(w, http.StatusBadRequest, "Invalid request body", err.Error())
		return false
	}
	return true
}

// pathID parses the {id} path segment as a UUID
func (h *Handler) pathID(w http.ResponseWriter, r *http.Request, resource string) (uuid.UUID, bool) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		h.writeError(w, http.StatusNotFound, resource+" not found", "")
		return uuid.Nil, false
	}
	return id, true
}

// clientIP extracts the originating client address, honoring proxies
func clientIP(r *http.Request) string {
	if forwarded := r.Header.Get("X-Forwarded-For"); forwarded != "" {
		if i := strings.IndexByte(forwarded, ','); i >= 0 {
			return strings.TrimSpace(forwarded[:i])
		}
		return strings.TrimSpace(forwarded)
	}

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
