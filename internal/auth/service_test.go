package auth

import (
	"errors"
	"testing"

	"github.com/pricepeek/pricepeek/internal/store"
)

func newTestService() (*Service, *store.MemStore) {
	m := store.NewMemStore()
	return NewService(m), m
}

func TestSignUpValidation(t *testing.T) {
	tests := []struct {
		name     string
		username string
		email    string
		password string
		wantErr  error
	}{
		{"username too short", "ab", "ash@poke.center", "pikachu123", ErrUsernameTooShort},
		{"username whitespace only", "   ", "ash@poke.center", "pikachu123", ErrUsernameTooShort},
		{"password too short", "ash", "ash@poke.center", "pika", ErrPasswordTooShort},
		{"empty email", "ash", "", "pikachu123", ErrEmailRequired},
		{"all empty", "", "", "", ErrUsernameTooShort},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, m := newTestService()
			_, err := svc.SignUp(tt.username, tt.email, tt.password)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("SignUp error = %v, want %v", err, tt.wantErr)
			}
			if got := m.Accounts(); len(got) != 0 {
				t.Errorf("invalid signup wrote %d accounts, want 0", len(got))
			}
			if _, ok := m.Session(); ok {
				t.Error("invalid signup created a session")
			}
		})
	}
}

func TestSignUpSuccess(t *testing.T) {
	svc, m := newTestService()

	session, err := svc.SignUp("ash", "Ash@Poke.Center", "pikachu123")
	if err != nil {
		t.Fatalf("SignUp: %v", err)
	}
	if session.Username != "ash" || session.Email != "ash@poke.center" {
		t.Errorf("session = %+v, want normalized identity", session)
	}

	accounts := m.Accounts()
	if len(accounts) != 1 {
		t.Fatalf("got %d accounts, want 1", len(accounts))
	}
	a := accounts[0]
	if a.Email != "ash@poke.center" {
		t.Errorf("stored email = %q, want lowercased", a.Email)
	}
	if a.ID.String() == "00000000-0000-0000-0000-000000000000" {
		t.Error("account should get a generated ID")
	}
	if a.CreatedAt.IsZero() {
		t.Error("account should get a creation timestamp")
	}

	stored, ok := m.Session()
	if !ok || stored != session {
		t.Errorf("stored session = %+v ok=%v, want %+v", stored, ok, session)
	}
}

func TestSignUpDuplicateEmail(t *testing.T) {
	svc, m := newTestService()
	if _, err := svc.SignUp("ash", "ash@poke.center", "pikachu123"); err != nil {
		t.Fatal(err)
	}

	// Case variation must still collide.
	_, err := svc.SignUp("asher", "ASH@POKE.CENTER", "different66")
	if !errors.Is(err, ErrEmailTaken) {
		t.Fatalf("SignUp error = %v, want ErrEmailTaken", err)
	}
	if got := m.Accounts(); len(got) != 1 {
		t.Errorf("duplicate signup grew the collection to %d", len(got))
	}
}

func TestLogIn(t *testing.T) {
	svc, m := newTestService()
	if _, err := svc.SignUp("ash", "ash@poke.center", "pikachu123"); err != nil {
		t.Fatal(err)
	}
	if err := svc.LogOut(); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name     string
		email    string
		password string
		wantOK   bool
	}{
		{"correct pair", "ash@poke.center", "pikachu123", true},
		{"email case-insensitive", "ASH@Poke.Center", "pikachu123", true},
		{"wrong password", "ash@poke.center", "raichu123", false},
		{"password case matters", "ash@poke.center", "PIKACHU123", false},
		{"unknown email", "gary@pallet.town", "pikachu123", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := m.ClearSession(); err != nil {
				t.Fatal(err)
			}
			session, err := svc.LogIn(tt.email, tt.password)
			if tt.wantOK {
				if err != nil {
					t.Fatalf("LogIn: %v", err)
				}
				if session.Username != "ash" || session.Email != "ash@poke.center" {
					t.Errorf("session = %+v", session)
				}
				if _, ok := m.Session(); !ok {
					t.Error("login did not persist the session")
				}
				return
			}
			if !errors.Is(err, ErrInvalidCredentials) {
				t.Fatalf("LogIn error = %v, want ErrInvalidCredentials", err)
			}
			if _, ok := m.Session(); ok {
				t.Error("failed login set a session")
			}
		})
	}
}

func TestLogInLeavesExistingSessionOnFailure(t *testing.T) {
	svc, m := newTestService()
	if _, err := svc.SignUp("ash", "ash@poke.center", "pikachu123"); err != nil {
		t.Fatal(err)
	}

	if _, err := svc.LogIn("ash@poke.center", "wrongwrong"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
	s, ok := m.Session()
	if !ok || s.Username != "ash" {
		t.Errorf("failed login disturbed the session: %+v ok=%v", s, ok)
	}
}

func TestLogOut(t *testing.T) {
	svc, m := newTestService()
	if _, err := svc.SignUp("ash", "ash@poke.center", "pikachu123"); err != nil {
		t.Fatal(err)
	}

	if err := svc.LogOut(); err != nil {
		t.Fatalf("LogOut: %v", err)
	}
	if _, ok := m.Session(); ok {
		t.Error("session survived logout")
	}
	if _, ok := svc.Current(); ok {
		t.Error("Current() reports a session after logout")
	}
	// Logging out while signed out is fine.
	if err := svc.LogOut(); err != nil {
		t.Errorf("second LogOut: %v", err)
	}
}

func TestCurrent(t *testing.T) {
	svc, _ := newTestService()
	if _, ok := svc.Current(); ok {
		t.Fatal("fresh service should have no session")
	}
	want, err := svc.SignUp("ash", "ash@poke.center", "pikachu123")
	if err != nil {
		t.Fatal(err)
	}
	got, ok := svc.Current()
	if !ok || got != want {
		t.Errorf("Current() = %+v ok=%v, want %+v", got, ok, want)
	}
}
