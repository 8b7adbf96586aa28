package tui

import (
	"strings"
	"testing"
)

func TestEditRuneAddCharacters(t *testing.T) {
	tests := []struct {
		name  string
		start string
		key   string
		want  string
	}{
		{"append to empty", "", "p", "p"},
		{"append letter", "pika", "c", "pikac"},
		{"append digit", "abc", "1", "abc1"},
		{"append space", "mr", " ", "mr "},
		{"named space key", "mr", "space", "mr "},
		{"append special", "abc", "@", "abc@"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := editRune(tc.start, tc.key)
			if got != tc.want {
				t.Errorf("editRune(%q, %q) = %q, want %q", tc.start, tc.key, got, tc.want)
			}
		})
	}
}

func TestEditRuneBackspace(t *testing.T) {
	tests := []struct {
		name  string
		start string
		want  string
	}{
		{"single char", "a", ""},
		{"longer string", "pikachu", "pikach"},
		{"empty does nothing", "", ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := editRune(tc.start, "backspace")
			if got != tc.want {
				t.Errorf("editRune(%q, 'backspace') = %q, want %q", tc.start, got, tc.want)
			}
		})
	}
}

func TestEditRuneBackspaceMultibyte(t *testing.T) {
	// Backspace removes a full rune, not one byte.
	got := editRune("pokémon", "backspace")
	if got != "pokémo" {
		t.Errorf("editRune(multi-byte, backspace) = %q, want %q", got, "pokémo")
	}
	got = editRune("poké", "backspace")
	if got != "pok" {
		t.Errorf("editRune ending in multi-byte rune = %q, want %q", got, "pok")
	}
}

func TestEditRuneIgnoresNamedKeys(t *testing.T) {
	for _, key := range []string{"enter", "esc", "tab", "ctrl+c", "shift+tab"} {
		if got := editRune("abc", key); got != "abc" {
			t.Errorf("editRune(%q, %q) = %q, want unchanged", "abc", key, got)
		}
	}
}

func TestEditRuneClampsLength(t *testing.T) {
	long := strings.Repeat("a", maxInputLen)
	if got := editRune(long, "b"); got != long {
		t.Error("input beyond maxInputLen should be dropped")
	}
}

func TestMaskRunes(t *testing.T) {
	if got := maskRunes("secret"); got != "••••••" {
		t.Errorf("maskRunes = %q", got)
	}
	if got := maskRunes(""); got != "" {
		t.Errorf("maskRunes empty = %q", got)
	}
}

func TestTruncateToHeight(t *testing.T) {
	s := "one\ntwo\nthree\nfour\n"
	got := truncateToHeight(s, 2)
	if got != "one\ntwo\n" {
		t.Errorf("truncateToHeight = %q", got)
	}
	if got := truncateToHeight(s, 0); got != s {
		t.Error("maxLines <= 0 should return input unchanged")
	}
	if got := truncateToHeight("short", 10); got != "short" {
		t.Error("input shorter than maxLines should be unchanged")
	}
}
