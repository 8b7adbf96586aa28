// Package auth implements local signup/login over the credential store.
// Accounts live in the user's own home directory and gate nothing but
// the local UI, so passwords are stored and compared as plaintext.
package auth

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/pricepeek/pricepeek/internal/store"
	"github.com/pricepeek/pricepeek/pkg/domain"
)

// Validation limits for signup.
const (
	MinUsernameLen = 3
	MinPasswordLen = 6
)

// Auth failures. Each one maps to a single status line in the UI.
var (
	ErrUsernameTooShort   = fmt.Errorf("username must be at least %d characters", MinUsernameLen)
	ErrPasswordTooShort   = fmt.Errorf("password must be at least %d characters", MinPasswordLen)
	ErrEmailRequired      = errors.New("email is required")
	ErrEmailTaken         = errors.New("an account with that email already exists")
	ErrInvalidCredentials = errors.New("invalid email or password")
)

// Service runs the auth flow against a Store.
type Service struct {
	store store.Store
}

// NewService creates an auth service over the given store.
func NewService(s store.Store) *Service {
	return &Service{store: s}
}

// SignUp registers a new account and signs it in. Nothing is written
// when validation fails or the email is already taken.
func (s *Service) SignUp(username, email, password string) (domain.Session, error) {
	username = strings.TrimSpace(username)
	email = domain.NormalizeEmail(email)

	if len(username) < MinUsernameLen {
		return domain.Session{}, ErrUsernameTooShort
	}
	if len(password) < MinPasswordLen {
		return domain.Session{}, ErrPasswordTooShort
	}
	if email == "" {
		return domain.Session{}, ErrEmailRequired
	}

	accounts := s.store.Accounts()
	for _, a := range accounts {
		if domain.NormalizeEmail(a.Email) == email {
			return domain.Session{}, ErrEmailTaken
		}
	}

	account := domain.Account{
		ID:        uuid.New(),
		Username:  username,
		Email:     email,
		Password:  password,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.store.SaveAccounts(append(accounts, account)); err != nil {
		return domain.Session{}, fmt.Errorf("auth.SignUp: %w", err)
	}

	session := domain.SessionFor(account)
	if err := s.store.SetSession(session); err != nil {
		return domain.Session{}, fmt.Errorf("auth.SignUp: %w", err)
	}
	return session, nil
}

// LogIn signs in an existing account. The email match is
// case-insensitive; the password match is exact. The stored session is
// left untouched on failure.
func (s *Service) LogIn(email, password string) (domain.Session, error) {
	email = domain.NormalizeEmail(email)

	for _, a := range s.store.Accounts() {
		if domain.NormalizeEmail(a.Email) == email && a.Password == password {
			session := domain.SessionFor(a)
			if err := s.store.SetSession(session); err != nil {
				return domain.Session{}, fmt.Errorf("auth.LogIn: %w", err)
			}
			return session, nil
		}
	}
	return domain.Session{}, ErrInvalidCredentials
}

// LogOut clears the active session.
func (s *Service) LogOut() error {
	if err := s.store.ClearSession(); err != nil {
		return fmt.Errorf("auth.LogOut: %w", err)
	}
	return nil
}

// Current returns the active session, if any.
func (s *Service) Current() (domain.Session, bool) {
	return s.store.Session()
}
