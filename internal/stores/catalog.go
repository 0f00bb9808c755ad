package stores

import (
	"pixlumia/internal/domain"
	"pixlumia/internal/store"
)

// CatalogStore owns the per-session product catalog blob. An absent or
// corrupt blob falls back to the seed catalog.
type CatalogStore struct{ kv store.KV }

func NewCatalogStore(kv store.KV) *CatalogStore { return &CatalogStore{kv: kv} }

func (s *CatalogStore) Products(sid string) []domain.Product {
	return loadJSON(s.kv, keyProducts+sid, SeedCatalog)
}

func (s *CatalogStore) Save(sid string, products []domain.Product) error {
	return saveJSON(s.kv, keyProducts+sid, products)
}
