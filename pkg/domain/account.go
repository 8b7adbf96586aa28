package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Account is a registered identity. Email is the identity key and is
// lowercased before an Account is ever constructed or looked up.
type Account struct {
	ID        uuid.UUID `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	Password  string    `json:"password"`
	CreatedAt time.Time `json:"created_at"`
}

// Session marks the single active login. It carries everything the UI
// needs about the signed-in user and deliberately omits the password.
type Session struct {
	Username string `json:"username"`
	Email    string `json:"email"`
}

// NormalizeEmail trims surrounding whitespace and lowercases an email
// so lookups are case-insensitive.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// SessionFor derives the Session for an account.
func SessionFor(a Account) Session {
	return Session{Username: a.Username, Email: a.Email}
}
