package store

import (
	"testing"

	"github.com/pricepeek/pricepeek/pkg/domain"
)

func TestMemStoreAccountsCopy(t *testing.T) {
	m := NewMemStore()
	if err := m.SaveAccounts([]domain.Account{{Username: "ash", Email: "ash@poke.center"}}); err != nil {
		t.Fatal(err)
	}

	got := m.Accounts()
	got[0].Username = "mutated"

	again := m.Accounts()
	if again[0].Username != "ash" {
		t.Error("Accounts() should return a copy, not the backing slice")
	}
}

func TestMemStoreSessionSlot(t *testing.T) {
	m := NewMemStore()
	if _, ok := m.Session(); ok {
		t.Fatal("fresh store should have no session")
	}

	if err := m.SetSession(domain.Session{Username: "ash", Email: "ash@poke.center"}); err != nil {
		t.Fatal(err)
	}
	if err := m.SetSession(domain.Session{Username: "misty", Email: "misty@cerulean.gym"}); err != nil {
		t.Fatal(err)
	}
	s, ok := m.Session()
	if !ok || s.Username != "misty" {
		t.Errorf("Session() = %+v ok=%v, want misty's session", s, ok)
	}

	if err := m.ClearSession(); err != nil {
		t.Fatal(err)
	}
	if _, ok := m.Session(); ok {
		t.Error("session present after ClearSession")
	}
}
