package stores

import (
	"pixlumia/internal/domain"
	"pixlumia/internal/store"
)

// CheckoutStore owns the per-session checkout flow state. A missing blob
// means the flow sits at the cart step with no relay selected.
type CheckoutStore struct{ kv store.KV }

func NewCheckoutStore(kv store.KV) *CheckoutStore { return &CheckoutStore{kv: kv} }

func (s *CheckoutStore) State(sid string) domain.CheckoutState {
	st := loadJSON(s.kv, keyCheckout+sid, func() domain.CheckoutState {
		return domain.CheckoutState{Step: domain.StepCart}
	})
	if st.Step == "" {
		st.Step = domain.StepCart
	}
	return st
}

func (s *CheckoutStore) Save(sid string, st domain.CheckoutState) error {
	return saveJSON(s.kv, keyCheckout+sid, st)
}
