package order

import "errors"

var (
	// ErrInvalidID indicates a negative order identifier.
	ErrInvalidID = errors.New("order id must not be negative")
	// ErrInvalidAmount indicates a non-positive quantity of goods.
	ErrInvalidAmount = errors.New("order amount must be positive")
)

// Order is an immutable order descriptor.
type Order struct {
	id     int
	amount int
}

// New validates and builds an order.
func New(id, amount int) (*Order, error) {
	if id < 0 {
		return nil, ErrInvalidID
	}
	if amount <= 0 {
		return nil, ErrInvalidAmount
	}
	return &Order{id: id, amount: amount}, nil
}

// ID returns the order identifier.
func (o *Order) ID() int { return o.id }

// Amount returns the quantity of goods.
func (o *Order) Amount() int { return o.amount }
