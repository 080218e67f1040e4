package handler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/vasiliy-maslov/storefront/internal/cart"
	"github.com/vasiliy-maslov/storefront/internal/catalog"
)

// CartHandler handles HTTP requests for the shopping cart.
type CartHandler struct {
	cart    *cart.Store
	catalog *catalog.Catalog
}

func NewCartHandler(cartStore *cart.Store, c *catalog.Catalog) *CartHandler {
	return &CartHandler{cart: cartStore, catalog: c}
}

// cartView is the outbound snapshot the cart screens render from.
type cartView struct {
	Items      []cart.Line `json:"items"`
	TotalPrice float64     `json:"totalPrice"`
	ItemCount  int         `json:"itemCount"`
}

func (h *CartHandler) view() cartView {
	lines := h.cart.Lines()
	if lines == nil {
		lines = []cart.Line{}
	}
	return cartView{
		Items:      lines,
		TotalPrice: h.cart.Subtotal(),
		ItemCount:  h.cart.ItemCount(),
	}
}

// GetCart returns the current cart snapshot.
func (h *CartHandler) GetCart(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.view())
}

type addItemRequest struct {
	ProductID string `json:"productId"`
}

// AddItem adds a catalog product to the cart. A line already at its stock
// ceiling yields 409 so the client can show a stock-limit notice.
func (h *CartHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	var req addItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if req.ProductID == "" {
		http.Error(w, "productId is required", http.StatusBadRequest)
		return
	}

	p, ok := h.catalog.ByID(req.ProductID)
	if !ok {
		http.Error(w, "product not found", http.StatusNotFound)
		return
	}

	if !h.cart.Add(p) {
		http.Error(w, "stock limit reached", http.StatusConflict)
		return
	}

	writeJSON(w, http.StatusOK, h.view())
}

// IncreaseItem bumps a line's quantity by one, bounded by stock.
func (h *CartHandler) IncreaseItem(w http.ResponseWriter, r *http.Request) {
	h.adjust(w, r, h.cart.Increase)
}

// DecreaseItem lowers a line's quantity by one, never below one.
func (h *CartHandler) DecreaseItem(w http.ResponseWriter, r *http.Request) {
	h.adjust(w, r, h.cart.Decrease)
}

func (h *CartHandler) adjust(w http.ResponseWriter, r *http.Request, op func(string) bool) {
	id := chi.URLParam(r, "id")
	if id == "" {
		http.Error(w, "id is required", http.StatusBadRequest)
		return
	}

	// Quantity already at its bound (or unknown id) is a silent no-op;
	// the client re-renders from the returned snapshot either way.
	op(id)

	writeJSON(w, http.StatusOK, h.view())
}

// RemoveItem deletes a line from the cart.
func (h *CartHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		http.Error(w, "id is required", http.StatusBadRequest)
		return
	}

	h.cart.Remove(id)

	writeJSON(w, http.StatusOK, h.view())
}

// ClearCart empties the cart.
func (h *CartHandler) ClearCart(w http.ResponseWriter, r *http.Request) {
	h.cart.Clear()
	writeJSON(w, http.StatusOK, h.view())
}

type buyNowRequest struct {
	ProductID string `json:"productId"`
}

// BuyNow replaces the cart with a single line for the given product, the
// fast path from a product page straight to checkout.
func (h *CartHandler) BuyNow(w http.ResponseWriter, r *http.Request) {
	var req buyNowRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if req.ProductID == "" {
		http.Error(w, "productId is required", http.StatusBadRequest)
		return
	}

	p, ok := h.catalog.ByID(req.ProductID)
	if !ok {
		http.Error(w, "product not found", http.StatusNotFound)
		return
	}

	h.cart.BuyNow(p)

	writeJSON(w, http.StatusOK, h.view())
}
