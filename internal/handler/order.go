package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"github.com/vasiliy-maslov/storefront/internal/checkout"
	"github.com/vasiliy-maslov/storefront/internal/order"
)

// OrderHandler handles HTTP requests for placed orders and checkout.
type OrderHandler struct {
	orders   *order.Store
	checkout *checkout.Service
}

func NewOrderHandler(orderStore *order.Store, checkoutSvc *checkout.Service) *OrderHandler {
	return &OrderHandler{orders: orderStore, checkout: checkoutSvc}
}

type checkoutRequest struct {
	ShippingAddress order.ShippingAddress `json:"shippingAddress"`
	PaymentMethod   string                `json:"paymentMethod"`
}

// Checkout places an order from the current cart content.
func (h *OrderHandler) Checkout(w http.ResponseWriter, r *http.Request) {
	var req checkoutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	o, err := h.checkout.PlaceOrder(h.checkout.CartRequest(req.ShippingAddress, req.PaymentMethod))
	if err != nil {
		if errors.Is(err, checkout.ErrInvalidRequest) || errors.Is(err, order.ErrEmptyOrder) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		log.Info().Msgf("Failed to place order: %v", err)
		http.Error(w, "failed to place order", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusCreated, o)
}

// ListOrders returns the order log, newest first.
func (h *OrderHandler) ListOrders(w http.ResponseWriter, r *http.Request) {
	orders := h.orders.Orders()
	if orders == nil {
		orders = []order.Order{}
	}
	writeJSON(w, http.StatusOK, orders)
}

// GetOrder returns one order by id.
func (h *OrderHandler) GetOrder(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		http.Error(w, "id is required", http.StatusBadRequest)
		return
	}

	o, ok := h.orders.Get(id)
	if !ok {
		http.Error(w, "order not found", http.StatusNotFound)
		return
	}

	writeJSON(w, http.StatusOK, o)
}

type updateStatusRequest struct {
	Status order.Status `json:"status"`
}

// UpdateStatus moves an order forward: payment confirmation, receipt
// confirmation, review submission.
func (h *OrderHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		http.Error(w, "id is required", http.StatusBadRequest)
		return
	}

	var req updateStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if !req.Status.Valid() {
		http.Error(w, "unknown status", http.StatusBadRequest)
		return
	}

	if _, ok := h.orders.Get(id); !ok {
		http.Error(w, "order not found", http.StatusNotFound)
		return
	}

	if !h.orders.UpdateStatus(id, req.Status) {
		http.Error(w, "order cannot move to this status", http.StatusConflict)
		return
	}

	o, _ := h.orders.Get(id)
	writeJSON(w, http.StatusOK, o)
}

// Cancel cancels an order that is still awaiting payment. The store's
// bool is what decides between a confirmation and an error notice.
func (h *OrderHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		http.Error(w, "id is required", http.StatusBadRequest)
		return
	}

	if _, ok := h.orders.Get(id); !ok {
		http.Error(w, "order not found", http.StatusNotFound)
		return
	}

	if !h.orders.Cancel(id) {
		http.Error(w, "order can no longer be cancelled", http.StatusConflict)
		return
	}

	o, _ := h.orders.Get(id)
	writeJSON(w, http.StatusOK, o)
}
