package stores

import (
	"pixlumia/internal/domain"
	"pixlumia/internal/store"
)

// IdentityStore owns the per-session user blob. No user is a valid state.
type IdentityStore struct{ kv store.KV }

func NewIdentityStore(kv store.KV) *IdentityStore { return &IdentityStore{kv: kv} }

func (s *IdentityStore) Current(sid string) *domain.User {
	return loadJSON(s.kv, keyUser+sid, func() *domain.User { return nil })
}

func (s *IdentityStore) Save(sid string, u *domain.User) error {
	if u == nil {
		return s.kv.Remove(keyUser + sid)
	}
	return saveJSON(s.kv, keyUser+sid, u)
}
