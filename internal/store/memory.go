package store

import "github.com/pricepeek/pricepeek/pkg/domain"

// MemStore is an in-memory Store used by tests and anywhere persistence
// is unwanted.
type MemStore struct {
	accounts   []domain.Account
	session    domain.Session
	hasSession bool
}

// NewMemStore returns an empty in-memory store.
func NewMemStore() *MemStore {
	return &MemStore{}
}

func (m *MemStore) Accounts() []domain.Account {
	out := make([]domain.Account, len(m.accounts))
	copy(out, m.accounts)
	return out
}

func (m *MemStore) SaveAccounts(accounts []domain.Account) error {
	m.accounts = make([]domain.Account, len(accounts))
	copy(m.accounts, accounts)
	return nil
}

func (m *MemStore) Session() (domain.Session, bool) {
	return m.session, m.hasSession
}

func (m *MemStore) SetSession(s domain.Session) error {
	m.session = s
	m.hasSession = true
	return nil
}

func (m *MemStore) ClearSession() error {
	m.session = domain.Session{}
	m.hasSession = false
	return nil
}
