package core

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/matchpad/core/score"
)

// FrameInterval is the animation tick period while any motion is running.
const FrameInterval = 33 * time.Millisecond

type StatusMsg struct {
	Text  string
	IsErr bool
}

type PushScreenMsg struct {
	Screen Screen
}

type PopScreenMsg struct{}

// FrameMsg drives animators and the frame scheduler. Screens that animate
// request the next frame with FrameCmd while unsettled.
type FrameMsg struct {
	At time.Time
}

// SheetClosedMsg is emitted exactly once per sheet dismissal cycle,
// covering swipe dismiss, cancel, and save.
type SheetClosedMsg struct {
	Cancelled bool
	Saved     bool
}

// MatchRecordedMsg carries a committed match: every nonzero game in play
// order, presentation ids stripped.
type MatchRecordedMsg struct {
	TeamA     string
	TeamB     string
	MatchType string
	Target    int
	Games     []score.GamePair
}

func StatusCmd(text string) tea.Cmd {
	return func() tea.Msg { return StatusMsg{Text: text} }
}

func ErrorCmd(err error) tea.Cmd {
	return func() tea.Msg {
		if err == nil {
			return StatusMsg{}
		}
		return StatusMsg{Text: err.Error(), IsErr: true}
	}
}

// FrameCmd schedules the next animation frame.
func FrameCmd() tea.Cmd {
	return tea.Tick(FrameInterval, func(t time.Time) tea.Msg {
		return FrameMsg{At: t}
	})
}
