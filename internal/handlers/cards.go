package handlers

import (
	"net/http"

	"github.com/fintrackhq/fintrack/internal/middleware"
	"github.com/fintrackhq/fintrack/internal/service"
)

// ListCards handles GET /api/cards
func (h *Handler) ListCards(w http.ResponseWriter, r *http.Request) {
	user := middleware.UserFrom(r.Context())

	cards, err := h.ledgerService.ListCards(r.Context(), user.ID)
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusOK, cards)
}

// CreateCard handles POST /api/cards
func (h *Handler) CreateCard(w http.ResponseWriter, r *http.Request) {
	user := middleware.UserFrom(r.Context())

	var input service.CreateCardInput
	if !h.decodeBody(w, r, &input) {
		return
	}

	card, err := h.ledgerService.CreateCard(r.Context(), user.ID, input)
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusCreated, card)
}

// DeleteCard handles DELETE /api/cards/{id}
func (h *Handler) DeleteCard(w http.ResponseWriter, r *http.Request) {
	user := middleware.UserFrom(r.Context())

	cardID, ok := h.pathID(w, r, "Card")
	if !ok {
		return
	}

	if err := h.ledgerService.DeleteCard(r.Context(), user.ID, cardID); err != nil {
		h.writeServiceError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]string{"message": "Card deleted successfully"})
}
