package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"lumina-storefront/internal/models"
)

type CartHandler struct {
	sessions sessionStore
}

func NewCartHandler(sessions sessionStore) *CartHandler {
	return &CartHandler{sessions: sessions}
}

func (h *CartHandler) Get(w http.ResponseWriter, r *http.Request) {
	s, ok := loadSession(w, r, h.sessions)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, s.Cart())
}

func (h *CartHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	s, ok := loadSession(w, r, h.sessions)
	if !ok {
		return
	}

	var req models.AddToCartRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR", "Invalid request body", r))
		return
	}
	if strings.TrimSpace(req.ProductID) == "" {
		writeJSON(w, http.StatusBadRequest, validationResp("product_id is required", map[string]string{"product_id": "required"}, r))
		return
	}

	view, err := s.AddToCart(r.Context(), req.ProductID)
	if err != nil {
		writeProductLookupError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, view)
}

// UpdateItem applies a quantity delta; unknown ids leave the cart unchanged.
func (h *CartHandler) UpdateItem(w http.ResponseWriter, r *http.Request) {
	s, ok := loadSession(w, r, h.sessions)
	if !ok {
		return
	}

	var req models.UpdateQuantityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR", "Invalid request body", r))
		return
	}

	writeJSON(w, http.StatusOK, s.UpdateQuantity(r.Context(), chi.URLParam(r, "id"), req.Delta))
}

func (h *CartHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	s, ok := loadSession(w, r, h.sessions)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, s.RemoveItem(r.Context(), chi.URLParam(r, "id")))
}
