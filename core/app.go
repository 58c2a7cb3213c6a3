package core

import (
	tea "github.com/charmbracelet/bubbletea"
)

// Screen is one interactive surface. Update returns the replacement screen,
// a command, and whether the screen should be popped.
type Screen interface {
	Update(msg tea.Msg) (Screen, tea.Cmd, bool)
	View(width, height int) string
	Scope() string
	Title() string
}

// Initializer lets a screen schedule work when the app starts or when the
// screen is pushed.
type Initializer interface {
	InitScreen() tea.Cmd
}

// OverlayRenderer lets a screen take over its own compositing onto the base
// view, for surfaces that position themselves (the score sheet tracks its
// dismiss offset).
type OverlayRenderer interface {
	RenderOverlay(base string, width, height int) string
}

// Model is the root bubbletea model: a permanent home screen plus a stack
// of overlay screens.
type Model struct {
	width     int
	height    int
	home      Screen
	screens   ScreenStack
	keys      *KeyRegistry
	status    string
	statusErr bool
	quitting  bool

	flash     *Flasher
	flashSeen int
}

// NewModel returns a root model over home.
func NewModel(home Screen, keys *KeyRegistry) Model {
	return Model{
		home:   home,
		keys:   keys,
		status: "Ready",
		width:  100,
		height: 32,
	}
}

// WithFlash attaches the feedback flasher the screens emit pulses through.
func (m Model) WithFlash(f *Flasher) Model {
	m.flash = f
	return m
}

func (m Model) Init() tea.Cmd {
	if init, ok := m.home.(Initializer); ok {
		return init.InitScreen()
	}
	return nil
}

// SetStatus replaces the status line.
func (m *Model) SetStatus(msg string) {
	m.status = msg
	m.statusErr = false
}

// SetError surfaces err on the status line; nil clears it.
func (m *Model) SetError(err error) {
	if err == nil {
		m.status = ""
		m.statusErr = false
		return
	}
	m.status = err.Error()
	m.statusErr = true
}

// ActiveScope returns the key scope of the foreground surface.
func (m Model) ActiveScope() string {
	if top := m.screens.Top(); top != nil {
		return top.Scope()
	}
	return m.home.Scope()
}

// PushScreen places s on top of the stack.
func (m *Model) PushScreen(s Screen) {
	m.screens.Push(s)
}
