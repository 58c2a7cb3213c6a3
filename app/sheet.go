package app

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/matchpad/core"
	"github.com/jask/matchpad/core/gesture"
	"github.com/jask/matchpad/core/haptics"
	"github.com/jask/matchpad/core/score"
)

// Pointer travel is reported in terminal cells; gesture thresholds are in
// abstract units. One row of vertical travel weighs more than one column.
const (
	unitsPerRow = 40.0
	unitsPerCol = 10.0
)

// repeater slots, one per score control
const (
	repeatIncA = iota
	repeatDecA
	repeatIncB
	repeatDecB
	repeatCount
)

// sheetControl identifies the interactive region under the pointer.
type sheetControl int

const (
	controlNone sheetControl = iota
	controlIncA
	controlDecA
	controlIncB
	controlDecB
	controlAdd
	controlSave
	controlChip // with chip index
	controlBody // draggable sheet surface
	controlBackdrop
)

// dragKind tracks which gesture a press turned into.
type dragKind int

const (
	dragNone dragKind = iota
	dragPending // pressed on a chip or the body, direction not yet decided
	dragSwipe
	dragSheet
	dragHold // holding a score control
)

type sheetScreen struct {
	labels   MatchLabels
	session  *score.Session
	haptics  haptics.Emitter

	sched   *gesture.FrameScheduler
	dismiss *gesture.Dismiss
	repeats [repeatCount]*gesture.Repeater
	swipes  map[string]*gesture.Swipe

	width  int
	height int

	ticking   bool
	lastFrame time.Time

	drag        dragKind
	dragChip    int
	pressedCtl  sheetControl
	pressX      int
	pressY      int
	lastX       int
	lastY       int
	lastMove    time.Time
	velRow      float64 // units/s, positive downward
	velCol      float64 // units/s, negative leftward

	saving      bool
	savePayload []score.GamePair
	closeReason *gesture.DismissReason
}

// MatchLabels carries display-only strings through to the recorded match;
// none of them participate in validation.
type MatchLabels struct {
	TeamA     string
	TeamB     string
	Subtitle  string
	MatchType string
}

func newSheetScreen(session *score.Session, labels MatchLabels, fb haptics.Emitter) *sheetScreen {
	s := &sheetScreen{
		labels:  labels,
		session: session,
		haptics: fb,
		sched:   gesture.NewFrameScheduler(),
		swipes:  map[string]*gesture.Swipe{},
		width:   100,
		height:  30,
	}
	s.dismiss = gesture.NewDismiss(func(reason gesture.DismissReason) {
		r := reason
		s.closeReason = &r
	})
	actions := [repeatCount]func(){
		repeatIncA: session.IncrementA,
		repeatDecA: session.DecrementA,
		repeatIncB: session.IncrementB,
		repeatDecB: session.DecrementB,
	}
	for i, action := range actions {
		act := action
		s.repeats[i] = gesture.NewRepeater(s.sched, gesture.DefaultInitialDelay, gesture.DefaultFastInterval, func() {
			act()
			s.haptics.Emit(haptics.Light)
		})
		s.repeats[i].OnAccelerate(func() { s.haptics.Emit(haptics.Medium) })
	}
	return s
}

func (s *sheetScreen) Title() string { return "Score Sheet" }
func (s *sheetScreen) Scope() string { return "screen:sheet" }

func (s *sheetScreen) InitScreen() tea.Cmd {
	s.dismiss.Open(s.sheetTravel())
	return s.requestFrame()
}

// sheetTravel is the dismiss gesture's full travel in units.
func (s *sheetScreen) sheetTravel() float64 {
	rows := s.sheetRows()
	if rows < 1 {
		rows = 1
	}
	return float64(rows) * unitsPerRow
}

func (s *sheetScreen) Update(msg tea.Msg) (core.Screen, tea.Cmd, bool) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		s.width, s.height = msg.Width, msg.Height
		return s, nil, false
	case core.FrameMsg:
		return s.handleFrame(msg)
	case tea.MouseMsg:
		return s.handleMouse(msg)
	case tea.KeyMsg:
		return s.handleKey(msg)
	}
	return s, nil, false
}

func (s *sheetScreen) handleFrame(msg core.FrameMsg) (core.Screen, tea.Cmd, bool) {
	dt := core.FrameInterval
	if !s.lastFrame.IsZero() {
		dt = msg.At.Sub(s.lastFrame)
		if dt <= 0 || dt > 250*time.Millisecond {
			dt = core.FrameInterval
		}
	}
	s.lastFrame = msg.At

	s.sched.Advance(dt)
	s.dismiss.Step(dt)
	for _, id := range s.chipIDs() {
		if sw, ok := s.swipes[id]; ok {
			sw.Step(dt)
		}
	}

	if s.closeReason != nil {
		return s.finishClose()
	}
	if s.needsFrames() {
		return s, core.FrameCmd(), false
	}
	s.ticking = false
	return s, nil, false
}

func (s *sheetScreen) needsFrames() bool {
	if !s.dismiss.Settled() || s.dismiss.Phase() == gesture.PhaseOpening {
		return true
	}
	for _, sw := range s.swipes {
		if !sw.Settled() {
			return true
		}
	}
	for _, r := range s.repeats {
		if r.Pressing() {
			return true
		}
	}
	return false
}

func (s *sheetScreen) requestFrame() tea.Cmd {
	if s.ticking {
		return nil
	}
	s.ticking = true
	s.lastFrame = time.Time{}
	return core.FrameCmd()
}

// finishClose runs once the dismiss controller has committed; it converts
// the close into outward messages and pops the screen.
func (s *sheetScreen) finishClose() (core.Screen, tea.Cmd, bool) {
	reason := *s.closeReason
	s.closeReason = nil
	s.teardown()

	switch reason {
	case gesture.DismissedByCancel:
		s.session.Reset()
		return s, func() tea.Msg { return core.SheetClosedMsg{Cancelled: true} }, true
	case gesture.DismissedBySave:
		payload := s.savePayload
		s.savePayload = nil
		labels := s.labels
		target := s.session.Target()
		s.session.Reset()
		s.haptics.Emit(haptics.Success)
		return s, tea.Batch(
			func() tea.Msg {
				return core.MatchRecordedMsg{
					TeamA:     labels.TeamA,
					TeamB:     labels.TeamB,
					MatchType: labels.MatchType,
					Target:    target,
					Games:     payload,
				}
			},
			func() tea.Msg { return core.SheetClosedMsg{Saved: true} },
		), true
	default:
		// Non-destructive dismiss keeps the session for the next open.
		return s, func() tea.Msg { return core.SheetClosedMsg{} }, true
	}
}

// teardown clears every per-sheet controller so no timer outlives the
// screen.
func (s *sheetScreen) teardown() {
	for _, r := range s.repeats {
		r.Close()
	}
	s.drag = dragNone
	s.saving = false
}

func (s *sheetScreen) chipIDs() []string {
	games := s.session.Games()
	ids := make([]string, len(games))
	for i, g := range games {
		ids[i] = g.ID
	}
	return ids
}

// swipeFor lazily builds the per-chip swipe controller. Controllers are
// keyed by game id so they survive reordering-by-removal of other chips.
func (s *sheetScreen) swipeFor(id string) *gesture.Swipe {
	if sw, ok := s.swipes[id]; ok {
		return sw
	}
	sw := gesture.NewSwipe(
		func() bool { return s.session.Removable(s.indexOf(id)) },
		func() { s.removeChip(id) },
	)
	s.swipes[id] = sw
	return sw
}

func (s *sheetScreen) indexOf(id string) int {
	for i, g := range s.session.Games() {
		if g.ID == id {
			return i
		}
	}
	return -1
}

func (s *sheetScreen) removeChip(id string) {
	if i := s.indexOf(id); i >= 0 {
		s.session.RemoveGame(i)
	}
	delete(s.swipes, id)
	s.haptics.Emit(haptics.Success)
}

// ---- keyboard ----

func (s *sheetScreen) handleKey(msg tea.KeyMsg) (core.Screen, tea.Cmd, bool) {
	switch msg.String() {
	case ".":
		s.session.IncrementA()
		s.haptics.Emit(haptics.Light)
		return s, nil, false
	case ",":
		s.session.DecrementA()
		s.haptics.Emit(haptics.Light)
		return s, nil, false
	case "m":
		s.session.IncrementB()
		s.haptics.Emit(haptics.Light)
		return s, nil, false
	case "n":
		s.session.DecrementB()
		s.haptics.Emit(haptics.Light)
		return s, nil, false
	case "left":
		s.session.SelectGame(s.session.CurrentIndex() - 1)
		s.haptics.Emit(haptics.Light)
		return s, nil, false
	case "right":
		s.session.SelectGame(s.session.CurrentIndex() + 1)
		s.haptics.Emit(haptics.Light)
		return s, nil, false
	case "a":
		if s.session.AddGame() {
			s.haptics.Emit(haptics.Medium)
		}
		return s, nil, false
	case "x":
		return s.deleteCurrentChip()
	case "t":
		if s.session.Policy().Selectable() {
			s.session.Policy().Cycle()
			return s, core.StatusCmd(fmt.Sprintf("Playing to %d", s.session.Target())), false
		}
		return s, nil, false
	case "s":
		return s.pressSave()
	case "esc":
		s.dismiss.Close()
		return s, s.requestFrame(), false
	case "q":
		s.dismiss.Cancel()
		return s, s.requestFrame(), false
	}
	return s, nil, false
}

func (s *sheetScreen) deleteCurrentChip() (core.Screen, tea.Cmd, bool) {
	id := s.session.Current().ID
	if s.swipeFor(id).Delete() {
		return s, s.requestFrame(), false
	}
	return s, core.StatusCmd("Only scored games can be removed"), false
}

func (s *sheetScreen) pressSave() (core.Screen, tea.Cmd, bool) {
	s.haptics.Emit(haptics.Medium)
	if s.saving {
		return s, nil, false
	}
	if !s.session.Savable() {
		return s, core.StatusCmd("Finish the game before saving"), false
	}
	s.saving = true
	s.savePayload = s.session.Recorded()
	s.dismiss.CloseForSave()
	return s, s.requestFrame(), false
}

// ---- mouse ----

func (s *sheetScreen) handleMouse(msg tea.MouseMsg) (core.Screen, tea.Cmd, bool) {
	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return s, nil, false
		}
		return s.pressAt(msg.X, msg.Y)
	case tea.MouseActionMotion:
		return s.moveTo(msg.X, msg.Y)
	case tea.MouseActionRelease:
		return s.releaseAt(msg.X, msg.Y)
	}
	return s, nil, false
}

func (s *sheetScreen) pressAt(x, y int) (core.Screen, tea.Cmd, bool) {
	ctl, chip := s.controlAt(x, y)
	// A new press supersedes any repeater still holding from a lost release.
	for _, r := range s.repeats {
		if r.Pressing() {
			r.PressEnd()
		}
	}
	s.pressedCtl = ctl
	s.pressX, s.pressY = x, y
	s.lastX, s.lastY = x, y
	s.lastMove = time.Now()
	s.velRow, s.velCol = 0, 0

	switch ctl {
	case controlIncA:
		s.repeats[repeatIncA].PressStart()
		s.drag = dragHold
	case controlDecA:
		s.repeats[repeatDecA].PressStart()
		s.drag = dragHold
	case controlIncB:
		s.repeats[repeatIncB].PressStart()
		s.drag = dragHold
	case controlDecB:
		s.repeats[repeatDecB].PressStart()
		s.drag = dragHold
	case controlAdd:
		if s.session.AddGame() {
			s.haptics.Emit(haptics.Medium)
		}
		s.drag = dragNone
	case controlSave:
		s.drag = dragNone
		return s.pressSave()
	case controlChip:
		s.drag = dragPending
		s.dragChip = chip
	case controlBody:
		s.drag = dragPending
		s.dragChip = -1
	case controlBackdrop:
		// Tap outside the sheet dismisses, keeping session data.
		s.dismiss.Close()
		s.drag = dragNone
	default:
		s.drag = dragNone
	}
	if s.drag != dragNone || ctl == controlBackdrop {
		return s, s.requestFrame(), false
	}
	return s, nil, false
}

func (s *sheetScreen) moveTo(x, y int) (core.Screen, tea.Cmd, bool) {
	if s.drag == dragNone || s.drag == dragHold {
		return s, nil, false
	}
	now := time.Now()
	if dtSec := now.Sub(s.lastMove).Seconds(); dtSec > 0 {
		s.velRow = float64(y-s.lastY) * unitsPerRow / dtSec
		s.velCol = float64(x-s.lastX) * unitsPerCol / dtSec
	}
	s.lastX, s.lastY = x, y
	s.lastMove = now

	dxCells := x - s.pressX
	dyCells := y - s.pressY

	if s.drag == dragPending {
		// Direction decides the gesture: horizontal travel on a chip is a
		// swipe, vertical travel anywhere on the sheet is a dismiss drag.
		if s.dragChip >= 0 && abs(dxCells) > abs(dyCells) && dxCells < 0 {
			s.drag = dragSwipe
			s.swipeFor(s.chipIDAt(s.dragChip)).DragStart()
		} else if abs(dyCells) > 0 {
			s.drag = dragSheet
			s.dismiss.DragStart()
		} else {
			return s, nil, false
		}
	}

	switch s.drag {
	case dragSwipe:
		s.swipeFor(s.chipIDAt(s.dragChip)).Drag(float64(dxCells) * unitsPerCol)
	case dragSheet:
		s.dismiss.Drag(float64(dyCells) * unitsPerRow)
	}
	return s, s.requestFrame(), false
}

// repeaterFor maps a score control to its repeater slot.
func (s *sheetScreen) repeaterFor(ctl sheetControl) *gesture.Repeater {
	switch ctl {
	case controlIncA:
		return s.repeats[repeatIncA]
	case controlDecA:
		return s.repeats[repeatDecA]
	case controlIncB:
		return s.repeats[repeatIncB]
	case controlDecB:
		return s.repeats[repeatDecB]
	}
	return nil
}

func (s *sheetScreen) releaseAt(x, y int) (core.Screen, tea.Cmd, bool) {
	drag, ctl := s.drag, s.pressedCtl
	s.drag = dragNone
	s.pressedCtl = controlNone
	// The release belongs to the control that took the press.
	if r := s.repeaterFor(ctl); r != nil && r.Pressing() {
		r.PressEnd()
	}

	switch drag {
	case dragSwipe:
		sw := s.swipeFor(s.chipIDAt(s.dragChip))
		sw.Release(s.velCol)
		return s, s.requestFrame(), false
	case dragSheet:
		s.dismiss.Release(s.velRow)
		return s, s.requestFrame(), false
	case dragPending:
		// No travel: a plain tap. Tapping a chip selects it.
		if s.dragChip >= 0 {
			s.session.SelectGame(s.dragChip)
			s.haptics.Emit(haptics.Light)
		}
		return s, nil, false
	}
	return s, nil, false
}

func (s *sheetScreen) chipIDAt(i int) string {
	games := s.session.Games()
	if i < 0 || i >= len(games) {
		return ""
	}
	return games[i].ID
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
