package handlers

import (
	"net/http"

	"github.com/fintrackhq/fintrack/internal/middleware"
	"github.com/fintrackhq/fintrack/internal/service"
)

// ListTransactions handles GET /api/transactions
func (h *Handler) ListTransactions(w http.ResponseWriter, r *http.Request) {
	user := middleware.UserFrom(r.Context())

	txns, err := h.ledgerService.ListTransactions(r.Context(), user.ID)
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusOK, txns)
}

// CreateTransaction handles POST /api/transactions
func (h *Handler) CreateTransaction(w http.ResponseWriter, r *http.Request) {
	user := middleware.UserFrom(r.Context())

	var input service.CreateTransactionInput
	if !h.decodeBody(w, r, &input) {
		return
	}

	txn, err := h.ledgerService.CreateTransaction(r.Context(), user.ID, input)
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusCreated, txn)
}

// DeleteTransaction handles DELETE /api/transactions/{id}
func (h *Handler) DeleteTransaction(w http.ResponseWriter, r *http.Request) {
	user := middleware.UserFrom(r.Context())

	txnID, ok := h.pathID(w, r, "Transaction")
	if !ok {
		return
	}

	if err := h.ledgerService.DeleteTransaction(r.Context(), user.ID, txnID); err != nil {
		h.writeServiceError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]string{"message": "Transaction deleted successfully"})
}
