package checkout

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	domcart "example.com/bookstore-storefront/internal/domain/cart"
	cartuc "example.com/bookstore-storefront/internal/usecase/cart"
)

var ErrEmptyCart = errors.New("cart is empty")

const (
	freeShippingThreshold = 50.00
	flatShippingFee       = 5.00
)

// Order is the simulated purchase acknowledgment. The remote order endpoint
// exists on the API client but this flow never calls it; checkout succeeds
// locally and clears the cart.
type Order struct {
	ID        string
	Status    string
	Lines     []domcart.Line
	Subtotal  float64
	Shipping  float64
	Total     float64
	CreatedAt time.Time
}

type Service struct {
	cart *cartuc.Service
}

func NewService(cart *cartuc.Service) *Service {
	return &Service{cart: cart}
}

// Checkout turns the current cart into a confirmed order: shipping is free
// from the threshold up, a flat fee below it. The cart is cleared afterwards.
func (s *Service) Checkout(ctx context.Context) (*Order, error) {
	lines := s.cart.Items()
	if len(lines) == 0 {
		return nil, ErrEmptyCart
	}

	subtotal := s.cart.Total()
	shipping := flatShippingFee
	if subtotal >= freeShippingThreshold {
		shipping = 0
	}

	order := &Order{
		ID:        uuid.NewString(),
		Status:    "confirmed",
		Lines:     lines,
		Subtotal:  subtotal,
		Shipping:  shipping,
		Total:     subtotal + shipping,
		CreatedAt: time.Now(),
	}

	s.cart.Clear()
	return order, nil
}
