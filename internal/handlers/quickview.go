package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"lumina-storefront/internal/models"
)

type QuickViewHandler struct {
	sessions sessionStore
}

func NewQuickViewHandler(sessions sessionStore) *QuickViewHandler {
	return &QuickViewHandler{sessions: sessions}
}

func (h *QuickViewHandler) Get(w http.ResponseWriter, r *http.Request) {
	s, ok := loadSession(w, r, h.sessions)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, s.QuickView())
}

func (h *QuickViewHandler) Open(w http.ResponseWriter, r *http.Request) {
	s, ok := loadSession(w, r, h.sessions)
	if !ok {
		return
	}

	var req models.QuickViewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR", "Invalid request body", r))
		return
	}
	if strings.TrimSpace(req.ProductID) == "" {
		writeJSON(w, http.StatusBadRequest, validationResp("product_id is required", map[string]string{"product_id": "required"}, r))
		return
	}

	qv, err := s.OpenQuickView(r.Context(), req.ProductID)
	if err != nil {
		writeProductLookupError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, qv)
}

func (h *QuickViewHandler) Close(w http.ResponseWriter, r *http.Request) {
	s, ok := loadSession(w, r, h.sessions)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, s.CloseQuickView(r.Context()))
}

// Confirm adds the open product to the cart and closes the quick view.
func (h *QuickViewHandler) Confirm(w http.ResponseWriter, r *http.Request) {
	s, ok := loadSession(w, r, h.sessions)
	if !ok {
		return
	}

	resp, confirmed := s.ConfirmQuickView(r.Context())
	if !confirmed {
		writeJSON(w, http.StatusConflict, errorResp("NO_QUICK_VIEW", "No product is open in quick view", r))
		return
	}
	writeJSON(w, http.StatusOK, resp)
}
