package services

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"pixlumia/internal/domain"
	"pixlumia/internal/stores"
)

// AuthService owns the per-session identity. There is no credential store:
// any submitted login succeeds and synthesizes a user record from the form
// fields.
type AuthService struct {
	Users *stores.IdentityStore
}

func NewAuthService(users *stores.IdentityStore) *AuthService {
	return &AuthService{Users: users}
}

type LoginForm struct {
	Email     string `json:"email"`
	Password  string `json:"password"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Phone     string `json:"phone"`
	Address   string `json:"address"`
	ZipCode   string `json:"zipCode"`
	City      string `json:"city"`
}

// Login always succeeds; the password is accepted unchecked and discarded.
func (s *AuthService) Login(sid string, f LoginForm) (*domain.User, error) {
	first := strings.TrimSpace(f.FirstName)
	if first == "" {
		first = "Client"
	}
	last := strings.TrimSpace(f.LastName)
	if last == "" {
		last = "Pixlumia"
	}

	u := &domain.User{
		ID:        strings.ReplaceAll(uuid.NewString(), "-", "")[:9],
		Email:     f.Email,
		FirstName: first,
		LastName:  last,
		Avatar:    fmt.Sprintf("https://i.pravatar.cc/150?u=%s", f.Email),
		Phone:     f.Phone,
		Address:   f.Address,
		ZipCode:   f.ZipCode,
		City:      f.City,
	}
	if err := s.Users.Save(sid, u); err != nil {
		return nil, err
	}
	return u, nil
}

// UserPatch carries a partial update; nil fields are left untouched.
type UserPatch struct {
	FirstName *string `json:"firstName"`
	LastName  *string `json:"lastName"`
	Avatar    *string `json:"avatar"`
	Phone     *string `json:"phone"`
	Address   *string `json:"address"`
	ZipCode   *string `json:"zipCode"`
	City      *string `json:"city"`
}

// Update shallow-merges the patch into the current user. With nobody
// logged in it is a no-op and returns nil.
func (s *AuthService) Update(sid string, p UserPatch) (*domain.User, error) {
	u := s.Users.Current(sid)
	if u == nil {
		return nil, nil
	}
	apply := func(dst *string, src *string) {
		if src != nil {
			*dst = *src
		}
	}
	apply(&u.FirstName, p.FirstName)
	apply(&u.LastName, p.LastName)
	apply(&u.Avatar, p.Avatar)
	apply(&u.Phone, p.Phone)
	apply(&u.Address, p.Address)
	apply(&u.ZipCode, p.ZipCode)
	apply(&u.City, p.City)

	if err := s.Users.Save(sid, u); err != nil {
		return nil, err
	}
	return u, nil
}

func (s *AuthService) Current(sid string) *domain.User {
	return s.Users.Current(sid)
}

// Logout clears the stored user entirely.
func (s *AuthService) Logout(sid string) error {
	return s.Users.Save(sid, nil)
}
