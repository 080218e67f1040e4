package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/vasiliy-maslov/storefront/internal/builder"
	"github.com/vasiliy-maslov/storefront/internal/cart"
	"github.com/vasiliy-maslov/storefront/internal/catalog"
)

// BuilderHandler handles HTTP requests for the build-a-PC flow.
type BuilderHandler struct {
	cart    *cart.Store
	catalog *catalog.Catalog
}

func NewBuilderHandler(cartStore *cart.Store, c *catalog.Catalog) *BuilderHandler {
	return &BuilderHandler{cart: cartStore, catalog: c}
}

// buildRequest maps slot names to chosen product ids.
type buildRequest struct {
	Slots map[builder.Slot]string `json:"slots"`
}

func (h *BuilderHandler) resolve(req buildRequest) (builder.Build, error) {
	b := make(builder.Build, len(req.Slots))
	for slot, productID := range req.Slots {
		p, ok := h.catalog.ByID(productID)
		if !ok {
			return nil, fmt.Errorf("unknown product %q for slot %q", productID, slot)
		}
		b[slot] = p
	}
	return b, nil
}

// ListSlots returns the component structure of a build.
func (h *BuilderHandler) ListSlots(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, builder.Slots)
}

// Check reports the compatibility of a build.
func (h *BuilderHandler) Check(w http.ResponseWriter, r *http.Request) {
	var req buildRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	b, err := h.resolve(req)
	if err != nil {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}

	writeJSON(w, http.StatusOK, builder.Check(b))
}

// AddToCart adds a compatible build to the cart.
func (h *BuilderHandler) AddToCart(w http.ResponseWriter, r *http.Request) {
	var req buildRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	b, err := h.resolve(req)
	if err != nil {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}

	if err := builder.AddToCart(b, h.cart); err != nil {
		if errors.Is(err, builder.ErrIncompatibleBuild) {
			http.Error(w, err.Error(), http.StatusConflict)
			return
		}
		http.Error(w, "failed to add build to cart", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, builder.Check(b))
}
