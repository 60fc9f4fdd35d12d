package service

import (
	"context"
	"fmt"

	"github.com/brewverse/pos/internal/enum"
)

// Session holds one barista's working state: the open cart plus the service
// and packaging choices applied at checkout. Defaults are dine-in with
// standard packaging.
type Session struct {
	Cart  *Cart
	Queue *OrderQueue

	serviceType   string
	packagingType string
}

// NewSession creates a Session with defaults applied.
func NewSession(cart *Cart, queue *OrderQueue) *Session {
	return &Session{
		Cart:          cart,
		Queue:         queue,
		serviceType:   enum.ServiceTypeDineIn,
		packagingType: enum.PackagingStandard,
	}
}

// ServiceType returns the current service type.
func (s *Session) ServiceType() string {
	return s.serviceType
}

// PackagingType returns the current packaging choice.
func (s *Session) PackagingType() string {
	return s.packagingType
}

// SetServiceType switches between dine-in and take-out.
func (s *Session) SetServiceType(serviceType string) error {
	switch serviceType {
	case enum.ServiceTypeDineIn, enum.ServiceTypeTakeOut:
		s.serviceType = serviceType
		return nil
	default:
		return fmt.Errorf("%w: unknown service type %q", ErrValidation, serviceType)
	}
}

// SetPackaging selects the take-out packaging. It is recorded regardless of
// the current service type; dine-in checkouts ignore it.
func (s *Session) SetPackaging(packagingType string) error {
	switch packagingType {
	case enum.PackagingStandard, enum.PackagingPremium:
		s.packagingType = packagingType
		return nil
	default:
		return fmt.Errorf("%w: unknown packaging type %q", ErrValidation, packagingType)
	}
}

// Checkout places the cart as a new order on the queue. The cart is cleared
// only when the order is accepted; any failure leaves it intact for
// correction.
func (s *Session) Checkout(ctx context.Context) (*Order, error) {
	order, err := s.Queue.Enqueue(ctx, s.Cart.Lines(), s.serviceType, s.packagingType)
	if err != nil {
		return nil, err
	}
	s.Cart.Clear()
	return order, nil
}
