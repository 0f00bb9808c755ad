package stores

import "pixlumia/internal/store"

// AdminStore tracks which sessions have unlocked the admin surface.
type AdminStore struct{ kv store.KV }

func NewAdminStore(kv store.KV) *AdminStore { return &AdminStore{kv: kv} }

func (s *AdminStore) Unlock(sid string) error {
	return s.kv.Set(keyAdmin+sid, "1")
}

func (s *AdminStore) Unlocked(sid string) bool {
	v, ok, err := s.kv.Get(keyAdmin + sid)
	return err == nil && ok && v == "1"
}

func (s *AdminStore) Lock(sid string) error {
	return s.kv.Remove(keyAdmin + sid)
}
