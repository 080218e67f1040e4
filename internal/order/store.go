package order

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/gofrs/uuid"
	"github.com/rs/zerolog/log"
)

var ErrEmptyOrder = errors.New("order must contain at least one item")

// PlaceInput carries everything the caller computed at checkout. The
// store trusts these amounts; validation happens before this call.
type PlaceInput struct {
	Items           []Item
	ShippingAddress ShippingAddress
	PaymentMethod   string
	Subtotal        float64
	ShippingFee     float64
	Total           float64
}

// Store owns the authoritative order log. Every mutation is serialized
// through one mutex and saved to the repository before the lock is
// released; save failures are logged and swallowed — persistence is
// best-effort and never fails a mutation whose in-memory state is already
// applied.
type Store struct {
	mu     sync.Mutex
	repo   Repository
	orders []Order
}

// NewStore loads the persisted order log once. An absent or unreadable
// log starts the store empty.
func NewStore(repo Repository) *Store {
	s := &Store{repo: repo}

	orders, err := repo.Load()
	if err != nil {
		log.Warn().Err(err).Msg("order: failed to load persisted log, starting empty")
		return s
	}
	s.orders = orders

	log.Info().Int("orders", len(orders)).Msg("Order log loaded")
	return s
}

// Place creates an order from the checkout input. Every order starts at
// To Pay regardless of payment method: for COD this is the confirmation
// step, for GCash the payment screen follows.
func (s *Store) Place(input PlaceInput) (Order, error) {
	if len(input.Items) == 0 {
		log.Warn().Msg("order: attempt to place an order with no items")
		return Order{}, ErrEmptyOrder
	}

	id, err := uuid.NewV7()
	if err != nil {
		return Order{}, fmt.Errorf("order: failed to generate id: %w", err)
	}

	items := make([]Item, len(input.Items))
	copy(items, input.Items)

	o := Order{
		ID:              "order_" + id.String(),
		Items:           items,
		ShippingAddress: input.ShippingAddress,
		PaymentMethod:   input.PaymentMethod,
		Subtotal:        input.Subtotal,
		ShippingFee:     input.ShippingFee,
		Total:           input.Total,
		Status:          StatusToPay,
		OrderDate:       time.Now().UTC(),
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.orders = append([]Order{o}, s.orders...)
	s.persistLocked()

	log.Info().Str("order_id", o.ID).Str("payment_method", o.PaymentMethod).Float64("total", o.Total).Msg("Order placed")

	return o, nil
}

// Orders returns a copy of the order log, newest first.
func (s *Store) Orders() []Order {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Order, len(s.orders))
	copy(out, s.orders)
	return out
}

// Get looks up one order by id.
func (s *Store) Get(id string) (Order, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, o := range s.orders {
		if o.ID == id {
			return o, true
		}
	}
	return Order{}, false
}

// UpdateStatus moves the order to next. Forward transitions are the
// caller's responsibility; the store only refuses to move an order out of
// a terminal status. It reports whether the order changed.
func (s *Store) UpdateStatus(id string, next Status) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.orders {
		if s.orders[i].ID != id {
			continue
		}
		if s.orders[i].Status.Terminal() {
			log.Warn().Str("order_id", id).Stringer("current_status", s.orders[i].Status).Stringer("new_status", next).Msg("order: refusing to move a terminal order")
			return false
		}
		if s.orders[i].Status == next {
			return false
		}

		old := s.orders[i].Status
		s.orders[i].Status = next
		s.persistLocked()

		log.Info().Str("order_id", id).Stringer("old_status", old).Stringer("new_status", next).Msg("Order status updated")
		return true
	}
	return false
}

// Cancel moves the order to Cancelled if its current status allows it.
// The returned bool is what the caller uses to decide between a
// confirmation and an error notice, so it must stay accurate: false means
// not found or not cancellable.
func (s *Store) Cancel(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.orders {
		if s.orders[i].ID != id {
			continue
		}
		if !CancellableStatuses[s.orders[i].Status] {
			log.Warn().Str("order_id", id).Stringer("status", s.orders[i].Status).Msg("order: cancellation refused")
			return false
		}

		s.orders[i].Status = StatusCancelled
		s.persistLocked()

		log.Info().Str("order_id", id).Msg("Order cancelled")
		return true
	}
	return false
}

// persistLocked saves the whole log. Callers hold s.mu.
func (s *Store) persistLocked() {
	if err := s.repo.Save(s.orders); err != nil {
		log.Error().Err(err).Msg("order: failed to persist log")
	}
}
