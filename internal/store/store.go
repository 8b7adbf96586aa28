// Package store persists registered accounts and the active session as
// two JSON key-value entries. Reads never fail: missing or malformed
// data degrades to "no accounts" / "no session" so a corrupted data dir
// only costs the user their local state, never a crash.
package store

import "github.com/pricepeek/pricepeek/pkg/domain"

// Storage keys. These are the on-disk names of the two entries.
const (
	KeyAccounts = "pps_users"
	KeySession  = "pps_current_user"
)

// Store is the credential/session repository. The store does not
// enforce account uniqueness; callers check before writing. Writes
// replace the whole value for a key, never merge.
type Store interface {
	// Accounts returns every registered account. Missing or malformed
	// data yields an empty slice.
	Accounts() []domain.Account

	// SaveAccounts replaces the entire persisted collection.
	SaveAccounts(accounts []domain.Account) error

	// Session returns the active session, or false when none exists.
	Session() (domain.Session, bool)

	// SetSession overwrites the single session slot.
	SetSession(s domain.Session) error

	// ClearSession removes the session marker. Clearing an absent
	// session is not an error.
	ClearSession() error
}
