package services

import "errors"

var (
	// ErrRejected marks a silently refused validation failure (missing
	// required field); callers surface nothing beyond the action not
	// completing.
	ErrRejected = errors.New("rejected: missing required fields")

	// ErrAuthRequired gates the checkout flow on a logged-in identity.
	ErrAuthRequired = errors.New("authentication required")

	// ErrEmptyCart blocks checkout states that must not be reachable with
	// an empty cart.
	ErrEmptyCart = errors.New("cart is empty")

	// ErrNoDelivery refuses order creation without a delivery selection.
	ErrNoDelivery = errors.New("no delivery point selected")

	// ErrBadTransition rejects a checkout step change whose precondition
	// does not hold.
	ErrBadTransition = errors.New("invalid checkout transition")
)
