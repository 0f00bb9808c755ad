// Package payment exposes the payment processor behind a narrow interface;
// the simulated gateway stands in for a real PSP.
package payment

import (
	"errors"
	"time"
)

type Gateway interface {
	Charge(amount float64) error
}

var ErrInvalidAmount = errors.New("invalid charge amount")

// SimulatedGateway waits for the configured delay and approves every
// charge. There is no cancellation: once invoked, the charge completes.
type SimulatedGateway struct {
	Delay time.Duration
}

func (g SimulatedGateway) Charge(amount float64) error {
	if amount < 0 {
		return ErrInvalidAmount
	}
	time.Sleep(g.Delay)
	return nil
}
