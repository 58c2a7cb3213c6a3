package app

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/matchpad/core"
	"github.com/jask/matchpad/core/haptics"
	"github.com/jask/matchpad/core/wizard"
)

// wizardScreen walks a finished match in after the fact: pick the game
// count, call each game win or loss, optionally key exact scores, confirm.
type wizardScreen struct {
	labels  MatchLabels
	ctl     *wizard.Controller
	haptics haptics.Emitter

	ours          textinput.Model
	theirs        textinput.Model
	focusedTheirs bool
}

func newWizardScreen(labels MatchLabels, target int, fb haptics.Emitter) *wizardScreen {
	ours := textinput.New()
	ours.Placeholder = "us"
	ours.CharLimit = 3
	ours.Width = 4
	theirs := textinput.New()
	theirs.Placeholder = "them"
	theirs.CharLimit = 3
	theirs.Width = 4
	return &wizardScreen{
		labels:  labels,
		ctl:     wizard.New(target),
		haptics: fb,
		ours:    ours,
		theirs:  theirs,
	}
}

func (w *wizardScreen) Title() string { return "Quick Entry" }
func (w *wizardScreen) Scope() string { return "screen:wizard" }

func (w *wizardScreen) Update(msg tea.Msg) (core.Screen, tea.Cmd, bool) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return w, nil, false
	}
	if key.String() == "q" && w.ctl.Step() != wizard.StepDetails {
		return w, core.StatusCmd("Entry discarded"), true
	}
	switch w.ctl.Step() {
	case wizard.StepCount:
		return w.updateCount(key)
	case wizard.StepResults:
		return w.updateResults(key)
	case wizard.StepDetails:
		return w.updateDetails(key)
	case wizard.StepDone:
		return w.updateDone(key)
	}
	return w, nil, false
}

func (w *wizardScreen) updateCount(key tea.KeyMsg) (core.Screen, tea.Cmd, bool) {
	s := key.String()
	if len(s) == 1 && s[0] >= '1' && s[0] <= '0'+wizard.MaxGames {
		w.ctl.SelectCount(int(s[0] - '0'))
		w.haptics.Emit(haptics.Light)
	}
	return w, nil, false
}

func (w *wizardScreen) updateResults(key tea.KeyMsg) (core.Screen, tea.Cmd, bool) {
	switch key.String() {
	case "w":
		w.ctl.RecordResult(wizard.Win)
		w.haptics.Emit(haptics.Light)
	case "l":
		w.ctl.RecordResult(wizard.Loss)
		w.haptics.Emit(haptics.Light)
	case "d":
		w.ctl.EnterDetails()
		w.resetInputs()
		return w, textinput.Blink, false
	case "b", "esc":
		w.ctl.Back()
	}
	return w, nil, false
}

func (w *wizardScreen) updateDetails(key tea.KeyMsg) (core.Screen, tea.Cmd, bool) {
	switch key.String() {
	case "enter":
		w.ctl.SaveDetails(w.ours.Value(), w.theirs.Value())
		w.haptics.Emit(haptics.Light)
		return w, nil, false
	case "esc":
		w.ctl.SkipDetails()
		return w, nil, false
	case "tab", "shift+tab":
		w.focusedTheirs = !w.focusedTheirs
		w.applyFocus()
		return w, textinput.Blink, false
	}
	var cmd tea.Cmd
	if w.focusedTheirs {
		w.theirs, cmd = w.theirs.Update(key)
	} else {
		w.ours, cmd = w.ours.Update(key)
	}
	return w, cmd, false
}

func (w *wizardScreen) updateDone(key tea.KeyMsg) (core.Screen, tea.Cmd, bool) {
	switch key.String() {
	case "enter", "s":
		pairs := w.ctl.Pairs()
		if len(pairs) == 0 {
			return w, core.StatusCmd("Nothing to record"), false
		}
		labels := w.labels
		target := w.ctl.Target()
		w.haptics.Emit(haptics.Success)
		return w, tea.Batch(
			func() tea.Msg {
				return core.MatchRecordedMsg{
					TeamA:     labels.TeamA,
					TeamB:     labels.TeamB,
					MatchType: labels.MatchType,
					Target:    target,
					Games:     pairs,
				}
			},
		), true
	case "b", "esc":
		w.ctl.Back()
	}
	return w, nil, false
}

func (w *wizardScreen) resetInputs() {
	w.ours.SetValue("")
	w.theirs.SetValue("")
	w.focusedTheirs = false
	w.applyFocus()
}

func (w *wizardScreen) applyFocus() {
	if w.focusedTheirs {
		w.ours.Blur()
		w.theirs.Focus()
	} else {
		w.theirs.Blur()
		w.ours.Focus()
	}
}

func (w *wizardScreen) View(width, height int) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(w.labels.TeamA + " vs " + w.labels.TeamB))
	b.WriteString("  ")
	b.WriteString(metaStyle.Render(fmt.Sprintf("to %d", w.ctl.Target())))
	b.WriteString("\n\n")

	switch w.ctl.Step() {
	case wizard.StepCount:
		b.WriteString("How many games were played?\n\n")
		b.WriteString(hintStyle.Render(fmt.Sprintf("press 1-%d   q discard", wizard.MaxGames)))
	case wizard.StepResults:
		b.WriteString(w.renderSlots())
		b.WriteString("\n")
		b.WriteString(fmt.Sprintf("Game %d: did you win?\n\n", w.ctl.CurrentGame()+1))
		b.WriteString(hintStyle.Render("w win   l loss   d exact score   b back   q discard"))
	case wizard.StepDetails:
		b.WriteString(w.renderSlots())
		b.WriteString("\n")
		b.WriteString(fmt.Sprintf("Game %d exact score\n\n", w.ctl.CurrentGame()+1))
		b.WriteString("  " + w.ours.View() + "  -  " + w.theirs.View() + "\n\n")
		b.WriteString(hintStyle.Render("enter save   esc skip   tab switch"))
	case wizard.StepDone:
		b.WriteString(w.renderSlots())
		b.WriteString("\n")
		b.WriteString(fmt.Sprintf("Done: %d-%d in games.\n\n", w.ctl.Wins(), w.ctl.Losses()))
		b.WriteString(hintStyle.Render("enter record   b back   q discard"))
	}
	return b.String()
}

func (w *wizardScreen) renderSlots() string {
	var parts []string
	for i := 0; i < w.ctl.Count(); i++ {
		slot := w.ctl.Slot(i)
		cell := "·"
		switch slot.Result {
		case wizard.Win:
			cell = fmt.Sprintf("W %d-%d", slot.Ours, slot.Theirs)
		case wizard.Loss:
			cell = fmt.Sprintf("L %d-%d", slot.Ours, slot.Theirs)
		}
		if i == w.ctl.CurrentGame() && w.ctl.Step() != wizard.StepDone {
			cell = selectedStyle.Render(" " + cell + " ")
		} else {
			cell = chipStyle.Render(" " + cell + " ")
		}
		parts = append(parts, cell)
	}
	return strings.Join(parts, " ") + "\n"
}
