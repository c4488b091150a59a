package payments

import (
	"errors"
	"fmt"

	"github.com/congo-pay/paylink/internal/digest"
	"github.com/congo-pay/paylink/internal/order"
)

var (
	// ErrMissingOrder is returned when a link is requested for a nil order.
	ErrMissingOrder = errors.New("order is required")
	// ErrInvalidPrice indicates a non-positive unit price.
	ErrInvalidPrice = errors.New("unit price must be positive")
	// ErrMissingKey indicates an empty secret key.
	ErrMissingKey = errors.New("secret key is required")
	// ErrMissingHashSystem indicates no digest strategy was supplied.
	ErrMissingHashSystem = errors.New("digest strategy is required")
)

// System produces a provider-specific payment link for an order.
type System interface {
	PayingLink(o *order.Order) (string, error)
}

// Basic links carry the order id, amount and digest of id ++ amount.
type Basic struct {
	hasher digest.Strategy
}

// NewBasic constructs a Basic provider.
func NewBasic(hasher digest.Strategy) (*Basic, error) {
	if hasher == nil {
		return nil, ErrMissingHashSystem
	}
	return &Basic{hasher: hasher}, nil
}

// PayingLink formats pay.system1.ru/order?id=&amount=&hash=.
func (s *Basic) PayingLink(o *order.Order) (string, error) {
	if o == nil {
		return "", ErrMissingOrder
	}
	hash, err := hashOf(s.hasher, fmt.Sprintf("%d%d", o.ID(), o.Amount()))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("pay.system1.ru/order?id=%d&amount=%d&hash=%s", o.ID(), o.Amount(), hash), nil
}

// Priced links additionally carry the total price, amount × unit price.
type Priced struct {
	unitPrice int
	hasher    digest.Strategy
}

// NewPriced constructs a Priced provider.
func NewPriced(unitPrice int, hasher digest.Strategy) (*Priced, error) {
	if unitPrice <= 0 {
		return nil, ErrInvalidPrice
	}
	if hasher == nil {
		return nil, ErrMissingHashSystem
	}
	return &Priced{unitPrice: unitPrice, hasher: hasher}, nil
}

// PayingLink formats order.system2.ru/pay?id=&amount=&price=&hash=.
func (s *Priced) PayingLink(o *order.Order) (string, error) {
	if o == nil {
		return "", ErrMissingOrder
	}
	hash, err := hashOf(s.hasher, fmt.Sprintf("%d%d", o.ID(), o.Amount()))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("order.system2.ru/pay?id=%d&amount=%d&price=%d&hash=%s",
		o.ID(), o.Amount(), totalPrice(o, s.unitPrice), hash), nil
}

// Signed links carry the price and the secret key; the digest covers
// amount ++ id ++ key.
type Signed struct {
	unitPrice int
	secretKey string
	hasher    digest.Strategy
}

// NewSigned constructs a Signed provider.
func NewSigned(unitPrice int, secretKey string, hasher digest.Strategy) (*Signed, error) {
	if unitPrice <= 0 {
		return nil, ErrInvalidPrice
	}
	if secretKey == "" {
		return nil, ErrMissingKey
	}
	if hasher == nil {
		return nil, ErrMissingHashSystem
	}
	return &Signed{unitPrice: unitPrice, secretKey: secretKey, hasher: hasher}, nil
}

// PayingLink formats system3.com/pay?id=&amount=&price=&key=&hash=.
func (s *Signed) PayingLink(o *order.Order) (string, error) {
	if o == nil {
		return "", ErrMissingOrder
	}
	hash, err := hashOf(s.hasher, fmt.Sprintf("%d%d%s", o.Amount(), o.ID(), s.secretKey))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("system3.com/pay?id=%d&amount=%d&price=%d&key=%s&hash=%s",
		o.ID(), o.Amount(), totalPrice(o, s.unitPrice), s.secretKey, hash), nil
}

func totalPrice(o *order.Order, unitPrice int) int {
	return o.Amount() * unitPrice
}

func hashOf(hasher digest.Strategy, input string) (string, error) {
	hash, err := hasher.Digest(input)
	if err != nil {
		return "", fmt.Errorf("digest order: %w", err)
	}
	return hash, nil
}
