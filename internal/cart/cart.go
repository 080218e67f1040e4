package cart

import (
	"sync"

	"github.com/rs/zerolog/log"
	"github.com/vasiliy-maslov/storefront/internal/catalog"
)

// Line is one product-and-quantity pairing in the cart. The product is a
// snapshot taken when the line was created, not a live reference.
type Line struct {
	Product  catalog.Product `json:"product"`
	Quantity int             `json:"quantity"`
}

// Store holds the pre-checkout selection. At most one line exists per
// product id, and every quantity stays within 1..stock. All methods are
// safe for concurrent use; mutations are serialized through one mutex so
// the last-applied mutation always wins.
type Store struct {
	mu    sync.Mutex
	lines []Line
}

func NewStore() *Store {
	return &Store{}
}

// Add puts a product into the cart, or bumps the quantity of its existing
// line while below the stock ceiling. It reports whether the cart changed;
// false means the line is already at the product's stock limit.
func (s *Store) Add(p catalog.Product) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.lines {
		if s.lines[i].Product.ID != p.ID {
			continue
		}
		if s.lines[i].Quantity >= p.Stock {
			log.Debug().Str("product_id", p.ID).Int("stock", p.Stock).Msg("cart: stock limit reached, not adding")
			return false
		}
		s.lines[i].Quantity++
		return true
	}

	s.lines = append(s.lines, Line{Product: p, Quantity: 1})
	return true
}

// Increase bumps the quantity of the line for id by one, up to the
// product's stock. Unknown ids and lines at the stock ceiling are no-ops.
func (s *Store) Increase(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.lines {
		if s.lines[i].Product.ID != id {
			continue
		}
		if s.lines[i].Quantity >= s.lines[i].Product.Stock {
			return false
		}
		s.lines[i].Quantity++
		return true
	}
	return false
}

// Decrease lowers the quantity of the line for id by one. A line at
// quantity 1 stays at 1: dropping to zero only happens through Remove.
func (s *Store) Decrease(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.lines {
		if s.lines[i].Product.ID != id {
			continue
		}
		if s.lines[i].Quantity <= 1 {
			return false
		}
		s.lines[i].Quantity--
		return true
	}
	return false
}

// Remove deletes the line for id, if present.
func (s *Store) Remove(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.lines {
		if s.lines[i].Product.ID == id {
			s.lines = append(s.lines[:i], s.lines[i+1:]...)
			return true
		}
	}
	return false
}

// Clear empties the cart unconditionally.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lines = nil
}

// SetItems replaces the whole line set. Used by the build-a-PC bulk flow;
// the caller has already validated quantities against stock.
func (s *Store) SetItems(lines []Line) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lines = make([]Line, len(lines))
	copy(s.lines, lines)
}

// BuyNow replaces the cart content with a single line of quantity 1,
// bypassing the normal add flow.
func (s *Store) BuyNow(p catalog.Product) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lines = []Line{{Product: p, Quantity: 1}}
}

// Lines returns a copy of the cart content in insertion order.
func (s *Store) Lines() []Line {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Line, len(s.lines))
	copy(out, s.lines)
	return out
}

// Subtotal is the sum of price*quantity over all lines, recomputed on
// every call.
func (s *Store) Subtotal() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	var total float64
	for _, l := range s.lines {
		total += l.Product.Price * float64(l.Quantity)
	}
	return total
}

// ItemCount is the total number of units across all lines.
func (s *Store) ItemCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	var n int
	for _, l := range s.lines {
		n += l.Quantity
	}
	return n
}
