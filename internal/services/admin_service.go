package services

import (
	"golang.org/x/crypto/bcrypt"

	"pixlumia/internal/stores"
)

// AdminService gates the catalog-editing surface behind a shared secret.
// The secret is held only as a bcrypt hash; a correct entry unlocks the
// surface for the session. This is a placeholder, not a security boundary.
type AdminService struct {
	Sessions *stores.AdminStore
	hash     []byte
}

func NewAdminService(sessions *stores.AdminStore, secret string) *AdminService {
	hash, err := bcrypt.GenerateFromPassword([]byte(secret), bcrypt.DefaultCost)
	if err != nil {
		// bcrypt only fails on oversized input; refuse all secrets then.
		hash = nil
	}
	return &AdminService{Sessions: sessions, hash: hash}
}

func (s *AdminService) Verify(secret string) bool {
	if len(s.hash) == 0 {
		return false
	}
	return bcrypt.CompareHashAndPassword(s.hash, []byte(secret)) == nil
}

func (s *AdminService) Unlock(sid string) error { return s.Sessions.Unlock(sid) }

func (s *AdminService) Unlocked(sid string) bool { return s.Sessions.Unlocked(sid) }

func (s *AdminService) Lock(sid string) error { return s.Sessions.Lock(sid) }
