package handler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"github.com/vasiliy-maslov/storefront/internal/catalog"
)

// CatalogHandler handles HTTP requests for the product catalog.
type CatalogHandler struct {
	catalog *catalog.Catalog
}

func NewCatalogHandler(c *catalog.Catalog) *CatalogHandler {
	return &CatalogHandler{catalog: c}
}

// ListProducts returns the catalog, optionally filtered by ?category= and
// ?q=.
func (h *CatalogHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	var products []catalog.Product

	if category := r.URL.Query().Get("category"); category != "" {
		products = h.catalog.ByCategory(category)
	} else {
		products = h.catalog.All()
	}

	if q := r.URL.Query().Get("q"); q != "" {
		filtered := products[:0:0]
		matches := make(map[string]bool)
		for _, p := range h.catalog.Search(q) {
			matches[p.ID] = true
		}
		for _, p := range products {
			if matches[p.ID] {
				filtered = append(filtered, p)
			}
		}
		products = filtered
	}

	if products == nil {
		products = []catalog.Product{}
	}

	writeJSON(w, http.StatusOK, products)
}

// GetProduct returns one product by id.
func (h *CatalogHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		http.Error(w, "id is required", http.StatusBadRequest)
		return
	}

	p, ok := h.catalog.ByID(id)
	if !ok {
		http.Error(w, "product not found", http.StatusNotFound)
		return
	}

	writeJSON(w, http.StatusOK, p)
}

// ListCategories returns the distinct category names.
func (h *CatalogHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	categories := h.catalog.Categories()
	if categories == nil {
		categories = []string{}
	}
	writeJSON(w, http.StatusOK, categories)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Info().Msgf("Failed to encode response: %v", err)
	}
}
