package stores

import (
	"pixlumia/internal/domain"
	"pixlumia/internal/store"
)

// OrderStore owns the per-session order history blob, most recent first.
// Orders are only ever prepended, never deleted.
type OrderStore struct{ kv store.KV }

func NewOrderStore(kv store.KV) *OrderStore { return &OrderStore{kv: kv} }

func (s *OrderStore) List(sid string) []domain.Order {
	return loadJSON(s.kv, keyOrders+sid, func() []domain.Order { return []domain.Order{} })
}

func (s *OrderStore) Save(sid string, orders []domain.Order) error {
	return saveJSON(s.kv, keyOrders+sid, orders)
}
