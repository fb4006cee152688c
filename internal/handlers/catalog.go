package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"lumina-storefront/internal/models"
	"lumina-storefront/internal/session"
)

type catalogReader interface {
	session.Catalog
	Categories() []string
}

type CatalogHandler struct {
	catalog catalogReader
}

func NewCatalogHandler(catalog catalogReader) *CatalogHandler {
	return &CatalogHandler{catalog: catalog}
}

func (h *CatalogHandler) Categories(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"categories": h.catalog.Categories(),
	})
}

// ListProducts filters by the optional ?category= query, defaulting to All.
func (h *CatalogHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	category := r.URL.Query().Get("category")
	if category == "" {
		category = models.CategoryAll
	}
	if !h.catalog.IsCategory(category) {
		writeJSON(w, http.StatusBadRequest, validationResp("Unknown category", map[string]string{"category": "unknown"}, r))
		return
	}

	products := session.FilterProducts(h.catalog.List(), category)
	writeJSON(w, http.StatusOK, models.CategoryResponse{
		Category: category,
		Products: session.RenderProductCards(products),
	})
}

func (h *CatalogHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	p, err := h.catalog.GetByID(chi.URLParam(r, "id"))
	if err != nil {
		writeProductLookupError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, session.RenderProductCard(*p))
}
