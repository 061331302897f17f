package services

import (
	"context"
	"math/rand"
	"time"

	"github.com/dmitrijs2005/premiumgate/internal/catalog"
	"github.com/dmitrijs2005/premiumgate/internal/clock"
)

// DefaultCheckoutDelay is the simulated payment round-trip.
const DefaultCheckoutDelay = 900 * time.Millisecond

// CheckoutProvider takes payment for one item. A nil error means the payment
// went through. Implementations must return promptly once ctx is done.
type CheckoutProvider interface {
	Checkout(ctx context.Context, item catalog.PremiumItem) error
}

// FaultFunc decides whether a simulated checkout fails.
type FaultFunc func(item catalog.PremiumItem) error

// RandomFault fails a checkout with ErrSimulatedFault with probability rate.
// A rate <= 0 returns nil (never fails).
func RandomFault(rate float64) FaultFunc {
	if rate <= 0 {
		return nil
	}
	return func(catalog.PremiumItem) error {
		if rand.Float64() < rate {
			return ErrSimulatedFault
		}
		return nil
	}
}

// SimulatedCheckout stands in for a payment provider: it waits for the
// configured delay on its clock and then succeeds unless fault says otherwise.
type SimulatedCheckout struct {
	clock clock.Clock
	delay time.Duration
	fault FaultFunc
}

func NewSimulatedCheckout(c clock.Clock, delay time.Duration, fault FaultFunc) *SimulatedCheckout {
	if delay < 0 {
		delay = 0
	}
	return &SimulatedCheckout{clock: c, delay: delay, fault: fault}
}

func (s *SimulatedCheckout) Checkout(ctx context.Context, item catalog.PremiumItem) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-s.clock.After(s.delay):
	}
	if s.fault != nil {
		return s.fault(item)
	}
	return nil
}
