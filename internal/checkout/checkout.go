package checkout

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog/log"

	"github.com/vasiliy-maslov/storefront/internal/cart"
	"github.com/vasiliy-maslov/storefront/internal/order"
)

// ShippingFee is charged flat on every non-empty order.
const ShippingFee = 50.00

var ErrInvalidRequest = errors.New("invalid checkout request")

// Request is what arrives from the checkout screen. The order store
// trusts its input, so everything is checked here first.
type Request struct {
	Items           []order.Item          `json:"items" validate:"required,min=1,dive"`
	ShippingAddress order.ShippingAddress `json:"shippingAddress" validate:"required"`
	PaymentMethod   string                `json:"paymentMethod" validate:"required,oneof=cod gcash"`
}

// Service validates checkout requests, computes the frozen amounts, places
// the order and clears the cart.
type Service struct {
	cart     *cart.Store
	orders   *order.Store
	validate *validator.Validate
}

func NewService(cartStore *cart.Store, orderStore *order.Store) *Service {
	return &Service{
		cart:     cartStore,
		orders:   orderStore,
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
}

// PlaceOrder runs the full checkout: validate, compute amounts, place,
// clear the cart. The cart is cleared only after the order is in the log.
func (s *Service) PlaceOrder(req Request) (order.Order, error) {
	if err := s.validate.Struct(req); err != nil {
		log.Warn().Err(err).Msg("checkout: rejected invalid request")
		return order.Order{}, fmt.Errorf("%w: %s", ErrInvalidRequest, err)
	}

	var subtotal float64
	for _, it := range req.Items {
		subtotal += it.Price * float64(it.Quantity)
	}

	fee := 0.00
	if subtotal > 0 {
		fee = ShippingFee
	}

	o, err := s.orders.Place(order.PlaceInput{
		Items:           req.Items,
		ShippingAddress: req.ShippingAddress,
		PaymentMethod:   req.PaymentMethod,
		Subtotal:        subtotal,
		ShippingFee:     fee,
		Total:           subtotal + fee,
	})
	if err != nil {
		return order.Order{}, fmt.Errorf("checkout: failed to place order: %w", err)
	}

	s.cart.Clear()

	return o, nil
}

// CartRequest snapshots the live cart into a checkout request for the
// given address and payment method.
func (s *Service) CartRequest(addr order.ShippingAddress, paymentMethod string) Request {
	lines := s.cart.Lines()
	items := make([]order.Item, 0, len(lines))
	for _, l := range lines {
		image := ""
		if len(l.Product.Images) > 0 {
			image = l.Product.Images[0]
		}
		items = append(items, order.Item{
			ProductID: l.Product.ID,
			Name:      l.Product.Name,
			Price:     l.Product.Price,
			Image:     image,
			Quantity:  l.Quantity,
		})
	}
	return Request{
		Items:           items,
		ShippingAddress: addr,
		PaymentMethod:   paymentMethod,
	}
}
