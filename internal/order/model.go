package order

import "time"

type Status string

const (
	StatusToPay     Status = "To Pay"
	StatusToShip    Status = "To Ship"
	StatusToReceive Status = "To Receive"
	StatusToReview  Status = "To Review"
	StatusCompleted Status = "Completed"
	StatusCancelled Status = "Cancelled"
)

func (s Status) String() string {
	return string(s)
}

// Terminal reports whether an order in this status can never move again.
func (s Status) Terminal() bool {
	return s == StatusCompleted || s == StatusCancelled
}

// Valid reports whether s is one of the known statuses.
func (s Status) Valid() bool {
	switch s {
	case StatusToPay, StatusToShip, StatusToReceive, StatusToReview, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// CancellableStatuses is the set of statuses a user may cancel from.
// Cancellation is strictly limited to orders awaiting payment confirmation;
// anything already being processed stays.
var CancellableStatuses = map[Status]bool{
	StatusToPay: true,
}

// Payment methods offered at checkout.
const (
	PaymentCOD   = "cod"
	PaymentGCash = "gcash"
)

type ShippingAddress struct {
	FullName string `json:"fullName" validate:"required"`
	Address  string `json:"address" validate:"required"`
	City     string `json:"city" validate:"required"`
	Phone    string `json:"phone" validate:"required"`
}

// Item is a product snapshot frozen into an order at placement time.
type Item struct {
	ProductID string  `json:"productId" validate:"required"`
	Name      string  `json:"name"`
	Price     float64 `json:"price" validate:"gte=0"`
	Image     string  `json:"image,omitempty"`
	Quantity  int     `json:"quantity" validate:"gt=0"`
}

// Order is a placed order. Amounts are computed once at placement and
// never recomputed; the JSON field names are the persisted layout and
// must not change.
type Order struct {
	ID              string          `json:"id"`
	Items           []Item          `json:"items"`
	ShippingAddress ShippingAddress `json:"shippingAddress"`
	PaymentMethod   string          `json:"paymentMethod"`
	Subtotal        float64         `json:"subtotal"`
	ShippingFee     float64         `json:"shippingFee"`
	Total           float64         `json:"total"`
	Status          Status          `json:"status"`
	OrderDate       time.Time       `json:"orderDate"`
}
