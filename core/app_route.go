package core

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// flashExpiredMsg forces a repaint once a feedback accent has faded.
type flashExpiredMsg struct{}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.dispatch(msg)
	if tick := next.flashTick(); tick != nil {
		return next, tea.Batch(cmd, tick)
	}
	return next, cmd
}

// flashTick schedules one expiry repaint per emitted pulse.
func (m *Model) flashTick() tea.Cmd {
	if m.flash == nil {
		return nil
	}
	seq := m.flash.Seq()
	if seq == m.flashSeen {
		return nil
	}
	m.flashSeen = seq
	return tea.Tick(flashDuration+FrameInterval, func(time.Time) tea.Msg {
		return flashExpiredMsg{}
	})
}

func (m Model) dispatch(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case flashExpiredMsg:
		return m, nil
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		// Screens see resizes too; the sheet sizes its travel from them.
		cmd := m.routeForeground(msg)
		return m, cmd
	case StatusMsg:
		m.status = msg.Text
		m.statusErr = msg.IsErr
		return m, nil
	case PushScreenMsg:
		m.screens.Push(msg.Screen)
		if init, ok := msg.Screen.(Initializer); ok {
			return m, init.InitScreen()
		}
		return m, nil
	case PopScreenMsg:
		m.screens.Pop()
		return m, nil
	case SheetClosedMsg:
		// The sheet pops itself; the home screen hears about the cycle.
		cmd := m.routeHome(msg)
		return m, cmd
	case MatchRecordedMsg:
		cmd := m.routeHome(msg)
		return m, cmd
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			m.quitting = true
			return m, tea.Quit
		}
		if top := m.screens.Top(); top != nil {
			return m, m.routeTop(msg)
		}
		if m.keys.IsAction(msg, "quit", m.ActiveScope()) {
			m.quitting = true
			return m, tea.Quit
		}
		return m, m.routeHome(msg)
	}

	// Everything else (mouse, frame ticks, screen-specific messages) goes
	// to the foreground surface.
	return m, m.routeForeground(msg)
}

// routeForeground delivers msg to the top screen when one is open, else to
// the home screen.
func (m *Model) routeForeground(msg tea.Msg) tea.Cmd {
	if m.screens.Top() != nil {
		return m.routeTop(msg)
	}
	return m.routeHome(msg)
}

func (m *Model) routeTop(msg tea.Msg) tea.Cmd {
	top := m.screens.Top()
	if top == nil {
		return nil
	}
	next, cmd, pop := top.Update(msg)
	if pop {
		m.screens.Pop()
		return cmd
	}
	if next != nil {
		m.screens.Replace(next)
	}
	return cmd
}

func (m *Model) routeHome(msg tea.Msg) tea.Cmd {
	next, cmd, _ := m.home.Update(msg)
	if next != nil {
		m.home = next
	}
	return cmd
}
