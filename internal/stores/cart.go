package stores

import (
	"pixlumia/internal/domain"
	"pixlumia/internal/store"
)

// CartStore owns the per-session cart blob.
type CartStore struct{ kv store.KV }

func NewCartStore(kv store.KV) *CartStore { return &CartStore{kv: kv} }

func (s *CartStore) Items(sid string) []domain.CartItem {
	return loadJSON(s.kv, keyCart+sid, func() []domain.CartItem { return []domain.CartItem{} })
}

func (s *CartStore) Save(sid string, items []domain.CartItem) error {
	return saveJSON(s.kv, keyCart+sid, items)
}

func (s *CartStore) Clear(sid string) error {
	return s.kv.Remove(keyCart + sid)
}
