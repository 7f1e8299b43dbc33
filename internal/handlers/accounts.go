package handlers

import (
	"net/http"

	"github.com/fintrackhq/fintrack/internal/middleware"
	"github.com/fintrackhq/fintrack/internal/service"
)

// ListAccounts handles GET /api/accounts
func (h *Handler) ListAccounts(w http.ResponseWriter, r *http.Request) {
	user := middleware.UserFrom(r.Context())

	accounts, err := h.ledgerService.ListAccounts(r.Context(), user.ID)
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusOK, accounts)
}

// CreateAccount handles POST /api/accounts
func (h *Handler) CreateAccount(w http.ResponseWriter, r *http.Request) {
	user := middleware.UserFrom(r.Context())

	var input service.CreateAccountInput
	if !h.decodeBody(w, r, &input) {
		return
	}

	account, err := h.ledgerService.CreateAccount(r.Context(), user.ID, input)
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusCreated, account)
}

// UpdateAccount handles PUT /api/accounts/{id}
func (h *Handler) UpdateAccount(w http.ResponseWriter, r *http.Request) {
	user := middleware.UserFrom(r.Context())

	accountID, ok := h.pathID(w, r, "Account")
	if !ok {
		return
	}

	var input service.UpdateAccountInput
	if !h.decodeBody(w, r, &input) {
		return
	}

	account, err := h.ledgerService.UpdateAccount(r.Context(), user.ID, accountID, input)
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusOK, account)
}

// DeleteAccount handles DELETE /api/accounts/{id}
func (h *Handler) DeleteAccount(w http.ResponseWriter, r *http.Request) {
	user := middleware.UserFrom(r.Context())

	accountID, ok := h.pathID(w, r, "Account")
	if !ok {
		return
	}

	if err := h.ledgerService.DeleteAccount(r.Context(), user.ID, accountID); err != nil {
		h.writeServiceError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]string{"message": "Account deleted successfully"})
}
