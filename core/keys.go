package core

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// KeyBinding maps one or more key chords to a named action within a set of
// scopes. An empty scope list means the binding applies everywhere.
type KeyBinding struct {
	Keys        []string
	Action      string
	Description string
	Scopes      []string
}

// KeyRegistry resolves key presses to actions per scope and feeds the
// footer hint line.
type KeyRegistry struct {
	bindings []KeyBinding
}

func NewKeyRegistry(bindings []KeyBinding) *KeyRegistry {
	r := &KeyRegistry{}
	r.bindings = append(r.bindings, bindings...)
	return r
}

func (r *KeyRegistry) Register(b KeyBinding) {
	r.bindings = append(r.bindings, b)
}

// BindingsForScope returns the bindings visible in scope, in registration
// order.
func (r *KeyRegistry) BindingsForScope(scope string) []KeyBinding {
	out := make([]KeyBinding, 0, len(r.bindings))
	for _, b := range r.bindings {
		if b.appliesTo(scope) {
			out = append(out, b)
		}
	}
	return out
}

// IsAction reports whether msg triggers action in scope.
func (r *KeyRegistry) IsAction(msg tea.KeyMsg, action, scope string) bool {
	pressed := strings.ToLower(msg.String())
	for _, b := range r.bindings {
		if b.Action != action || !b.appliesTo(scope) {
			continue
		}
		for _, k := range b.Keys {
			if strings.ToLower(strings.TrimSpace(k)) == pressed {
				return true
			}
		}
	}
	return false
}

func (b KeyBinding) appliesTo(scope string) bool {
	if len(b.Scopes) == 0 {
		return true
	}
	for _, s := range b.Scopes {
		if s == "*" || s == scope {
			return true
		}
	}
	return false
}
