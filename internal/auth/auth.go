// Package auth implements account registration, login, and the single
// local session.
package auth

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/mesh-intelligence/bookshop/internal/sqlite"
	"github.com/mesh-intelligence/bookshop/pkg/types"
)

// MinPasswordLength is the minimum accepted password length.
const MinPasswordLength = 6

// Service handles accounts and the session record. At most one session
// exists at a time; logging in replaces any prior session.
type Service struct {
	users *sqlite.Users
	kv    *sqlite.KV
}

// NewService creates an auth service over the given store.
func NewService(store *sqlite.Store) *Service {
	return &Service{users: store.Users(), kv: store.KV()}
}

// Register creates a new account. It validates the fields, rejects an
// already-registered email with ErrDuplicateKey, and does NOT log the
// new account in; the caller must Login separately.
func (s *Service) Register(name, email, password string) (types.User, error) {
	if err := validateRegistration(name, email, password); err != nil {
		return types.User{}, err
	}

	user := types.User{
		Email:    email,
		Name:     name,
		Password: password,
	}
	stored, err := s.users.Add(user)
	if err != nil {
		return types.User{}, fmt.Errorf("registering %s: %w", email, err)
	}
	return stored, nil
}

// Login checks credentials and establishes the session. Both an unknown
// email and a wrong password return ErrInvalidCredentials; callers
// cannot distinguish the two.
func (s *Service) Login(email, password string) (types.User, error) {
	user, err := s.users.Get(email)
	if err != nil {
		if errors.Is(err, types.ErrNotFound) {
			return types.User{}, types.ErrInvalidCredentials
		}
		return types.User{}, err
	}
	if user.Password != password {
		return types.User{}, types.ErrInvalidCredentials
	}

	if err := s.putSession(user); err != nil {
		return types.User{}, err
	}
	return user, nil
}

// Logout clears the session. Logging out with no session is a no-op.
func (s *Service) Logout() error {
	return s.kv.Delete(types.SessionKey)
}

// CurrentUser returns the session user. The boolean reports whether a
// session exists; an anonymous state is not an error.
func (s *Service) CurrentUser() (types.User, bool, error) {
	raw, ok, err := s.kv.Get(types.SessionKey)
	if err != nil || !ok {
		return types.User{}, false, err
	}

	var user types.User
	if err := json.Unmarshal([]byte(raw), &user); err != nil {
		return types.User{}, false, fmt.Errorf("decoding session record: %w", err)
	}
	return user, true, nil
}

// RefreshSession rewrites the session record for the given user, if and
// only if that user is the session user. Profile updates call this so
// the session never goes stale.
func (s *Service) RefreshSession(user types.User) error {
	current, ok, err := s.CurrentUser()
	if err != nil {
		return err
	}
	if !ok || current.Email != user.Email {
		return nil
	}
	return s.putSession(user)
}

func (s *Service) putSession(user types.User) error {
	raw, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("encoding session record: %w", err)
	}
	return s.kv.Put(types.SessionKey, string(raw))
}

// validateRegistration checks registration input. Every failure wraps
// ErrValidation.
func validateRegistration(name, email, password string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("name must not be blank: %w", types.ErrValidation)
	}
	if !validEmail(email) {
		return fmt.Errorf("malformed email %q: %w", email, types.ErrValidation)
	}
	if len(password) < MinPasswordLength {
		return fmt.Errorf("password must be at least %d characters: %w",
			MinPasswordLength, types.ErrValidation)
	}
	return nil
}

// validEmail performs the minimal shape check: something before and
// after a single-ish @, with a dot in the domain.
func validEmail(email string) bool {
	at := strings.Index(email, "@")
	if at <= 0 || at == len(email)-1 {
		return false
	}
	domain := email[at+1:]
	return strings.Contains(domain, ".") && !strings.ContainsAny(email, " \t")
}
