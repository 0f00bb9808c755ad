package services

import (
	"pixlumia/internal/domain"
	"pixlumia/internal/stores"
)

// CheckoutService runs the per-session checkout state machine:
// cart → delivery → payment → (order placed, back to cart). No state past
// cart is reachable with an empty cart, and delivery requires a logged-in
// identity.
type CheckoutService struct {
	Cart   *CartService
	Auth   *AuthService
	Orders *OrderService
	Flow   *stores.CheckoutStore
}

func NewCheckoutService(cart *CartService, auth *AuthService, orders *OrderService, flow *stores.CheckoutStore) *CheckoutService {
	return &CheckoutService{Cart: cart, Auth: auth, Orders: orders, Flow: flow}
}

func (s *CheckoutService) State(sid string) domain.CheckoutState {
	return s.Flow.State(sid)
}

// BeginDelivery moves the flow to the delivery step. Callers without an
// identity get ErrAuthRequired (redirect to authentication); an empty cart
// gets ErrEmptyCart. Moving back here from payment is allowed.
func (s *CheckoutService) BeginDelivery(sid string) (domain.CheckoutState, error) {
	if s.Auth.Current(sid) == nil {
		return s.Flow.State(sid), ErrAuthRequired
	}
	if len(s.Cart.Items(sid)) == 0 {
		return s.Flow.State(sid), ErrEmptyCart
	}
	st := s.Flow.State(sid)
	st.Step = domain.StepDelivery
	return st, s.Flow.Save(sid, st)
}

// SelectRelay records the chosen pickup point; only meaningful once the
// flow has left the cart step.
func (s *CheckoutService) SelectRelay(sid string, p domain.RelayPoint) (domain.CheckoutState, error) {
	st := s.Flow.State(sid)
	if st.Step == domain.StepCart {
		return st, ErrBadTransition
	}
	st.Relay = &p
	return st, s.Flow.Save(sid, st)
}

// BeginPayment moves from delivery to payment; it requires a selected
// relay point.
func (s *CheckoutService) BeginPayment(sid string) (domain.CheckoutState, error) {
	st := s.Flow.State(sid)
	if st.Step == domain.StepCart {
		return st, ErrBadTransition
	}
	if st.Relay == nil {
		return st, ErrNoDelivery
	}
	st.Step = domain.StepPayment
	return st, s.Flow.Save(sid, st)
}

// Pay completes the flow: the order is placed with the selected relay and
// the flow resets to the cart step with the selection dropped.
func (s *CheckoutService) Pay(sid string) (domain.Order, error) {
	st := s.Flow.State(sid)
	if st.Step != domain.StepPayment {
		return domain.Order{}, ErrBadTransition
	}
	order, err := s.Orders.Place(sid, st.Relay)
	if err != nil {
		return domain.Order{}, err
	}
	_ = s.Flow.Save(sid, domain.CheckoutState{Step: domain.StepCart})
	return order, nil
}

// Reset returns the flow to the cart step, keeping the cart itself intact.
func (s *CheckoutService) Reset(sid string) error {
	return s.Flow.Save(sid, domain.CheckoutState{Step: domain.StepCart})
}
