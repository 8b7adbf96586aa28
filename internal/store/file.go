package store

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pricepeek/pricepeek/pkg/domain"
)

// FileStore keeps each key in its own JSON file under a data directory,
// typically ~/.pricepeek. Credential files are written 0600.
type FileStore struct {
	dir string
}

// NewFileStore creates the data directory if needed and returns a store
// over it.
func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0700); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}
	return &FileStore{dir: dir}, nil
}

func (f *FileStore) path(key string) string {
	return filepath.Join(f.dir, key+".json")
}

// Accounts returns all registered accounts. A missing file, an
// unreadable file, or undecodable JSON all read as an empty collection.
func (f *FileStore) Accounts() []domain.Account {
	data, err := os.ReadFile(f.path(KeyAccounts))
	if err != nil {
		return []domain.Account{}
	}
	var accounts []domain.Account
	if err := json.Unmarshal(data, &accounts); err != nil || accounts == nil {
		return []domain.Account{}
	}
	return accounts
}

// SaveAccounts replaces the persisted collection.
func (f *FileStore) SaveAccounts(accounts []domain.Account) error {
	if accounts == nil {
		accounts = []domain.Account{}
	}
	data, err := json.Marshal(accounts)
	if err != nil {
		return fmt.Errorf("encode accounts: %w", err)
	}
	if err := os.WriteFile(f.path(KeyAccounts), data, 0600); err != nil {
		return fmt.Errorf("write accounts: %w", err)
	}
	return nil
}

// Session returns the active session. Absence, a stored literal null,
// and malformed data are all "no session".
func (f *FileStore) Session() (domain.Session, bool) {
	data, err := os.ReadFile(f.path(KeySession))
	if err != nil {
		return domain.Session{}, false
	}
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		return domain.Session{}, false
	}
	var s domain.Session
	if err := json.Unmarshal(data, &s); err != nil {
		return domain.Session{}, false
	}
	if s.Email == "" {
		return domain.Session{}, false
	}
	return s, true
}

// SetSession overwrites the session slot.
func (f *FileStore) SetSession(s domain.Session) error {
	data, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}
	if err := os.WriteFile(f.path(KeySession), data, 0600); err != nil {
		return fmt.Errorf("write session: %w", err)
	}
	return nil
}

// ClearSession removes the session file.
func (f *FileStore) ClearSession() error {
	if err := os.Remove(f.path(KeySession)); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove session: %w", err)
	}
	return nil
}
