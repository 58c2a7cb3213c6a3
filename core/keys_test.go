package core

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestKeyRegistryScopeMatch(t *testing.T) {
	reg := NewKeyRegistry([]KeyBinding{
		{Keys: []string{"s"}, Action: "save", Scopes: []string{"screen:sheet"}},
		{Keys: []string{"q"}, Action: "quit", Scopes: []string{"*"}},
	})
	if !reg.IsAction(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'s'}}, "save", "screen:sheet") {
		t.Fatalf("expected s in screen:sheet")
	}
	if reg.IsAction(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'s'}}, "save", "screen:home") {
		t.Fatalf("did not expect s in screen:home")
	}
	if !reg.IsAction(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}}, "quit", "screen:home") {
		t.Fatalf("expected q to match wildcard scope")
	}
}

func TestKeyRegistryEmptyScopesApplyEverywhere(t *testing.T) {
	reg := NewKeyRegistry(nil)
	reg.Register(KeyBinding{Keys: []string{"?"}, Action: "help"})
	if !reg.IsAction(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'?'}}, "help", "screen:anything") {
		t.Fatalf("binding with no scopes should apply everywhere")
	}
}

func TestBindingsForScopeKeepsOrder(t *testing.T) {
	reg := NewKeyRegistry([]KeyBinding{
		{Keys: []string{"a"}, Action: "first", Scopes: []string{"screen:home"}},
		{Keys: []string{"b"}, Action: "second", Scopes: []string{"screen:sheet"}},
		{Keys: []string{"c"}, Action: "third", Scopes: []string{"screen:home"}},
	})
	got := reg.BindingsForScope("screen:home")
	if len(got) != 2 {
		t.Fatalf("expected 2 bindings, got %d", len(got))
	}
	if got[0].Action != "first" || got[1].Action != "third" {
		t.Fatalf("bindings out of order: %v", got)
	}
}
