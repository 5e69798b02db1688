package handler

import (
	"net/http"

	"brainybunch/internal/catalog"
)

// CatalogHandler serves the question category list so lobby UIs can render
// the category picker before a game starts.
type CatalogHandler struct {
	catalog catalog.Catalog
}

// NewCatalogHandler creates a new catalog handler
func NewCatalogHandler(c catalog.Catalog) *CatalogHandler {
	return &CatalogHandler{catalog: c}
}

// Categories handles GET /v1/categories
func (h *CatalogHandler) Categories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.catalog.Categories(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"categories": categories,
	})
}
