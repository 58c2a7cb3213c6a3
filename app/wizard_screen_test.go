package app

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/matchpad/core"
	"github.com/jask/matchpad/core/haptics"
	"github.com/jask/matchpad/core/score"
	"github.com/jask/matchpad/core/wizard"
)

func newTestWizard() (*wizardScreen, *haptics.Recorder) {
	rec := &haptics.Recorder{}
	return newWizardScreen(MatchLabels{TeamA: "Us", TeamB: "Them", MatchType: "squash"}, 11, rec), rec
}

func wizKey(w *wizardScreen, k string) (tea.Cmd, bool) {
	var msg tea.KeyMsg
	switch k {
	case "esc":
		msg = tea.KeyMsg{Type: tea.KeyEsc}
	case "enter":
		msg = tea.KeyMsg{Type: tea.KeyEnter}
	case "tab":
		msg = tea.KeyMsg{Type: tea.KeyTab}
	default:
		msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
	}
	_, cmd, pop := w.Update(msg)
	return cmd, pop
}

func typeInto(w *wizardScreen, text string) {
	for _, r := range text {
		w.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
}

func TestWizardWalkToRecord(t *testing.T) {
	w, rec := newTestWizard()
	wizKey(w, "3")
	wizKey(w, "w")
	wizKey(w, "l")
	wizKey(w, "w")
	if w.ctl.Step() != wizard.StepDone {
		t.Fatalf("expected done after three results")
	}

	cmd, pop := wizKey(w, "enter")
	if !pop {
		t.Fatalf("recording should close the wizard")
	}
	msgs := drainCmd(cmd)
	var recorded *core.MatchRecordedMsg
	for _, m := range msgs {
		if mm, ok := m.(core.MatchRecordedMsg); ok {
			recorded = &mm
		}
	}
	if recorded == nil {
		t.Fatalf("expected a recorded match, got %v", msgs)
	}
	want := []score.GamePair{{TeamA: 11, TeamB: 0}, {TeamA: 0, TeamB: 11}, {TeamA: 11, TeamB: 0}}
	if len(recorded.Games) != len(want) {
		t.Fatalf("expected %d games, got %d", len(want), len(recorded.Games))
	}
	for i, g := range recorded.Games {
		if g != want[i] {
			t.Fatalf("game %d: expected %v, got %v", i, want[i], g)
		}
	}
	if recorded.MatchType != "squash" || recorded.Target != 11 {
		t.Fatalf("labels not carried: %+v", recorded)
	}
	if rec.Count(haptics.Success) != 1 {
		t.Fatalf("recording should pulse success once")
	}
}

func TestWizardDetailsOverrideScores(t *testing.T) {
	w, _ := newTestWizard()
	wizKey(w, "1")
	wizKey(w, "d")
	if w.ctl.Step() != wizard.StepDetails {
		t.Fatalf("expected details step")
	}
	typeInto(w, "12")
	wizKey(w, "tab")
	typeInto(w, "10")
	wizKey(w, "enter")
	if w.ctl.Step() != wizard.StepResults {
		t.Fatalf("saving details should return to results")
	}
	wizKey(w, "w")

	pairs := w.ctl.Pairs()
	if len(pairs) != 1 || pairs[0] != (score.GamePair{TeamA: 12, TeamB: 10}) {
		t.Fatalf("expected detail scores 12-10, got %v", pairs)
	}
}

func TestWizardDetailsSkipKeepsDefaults(t *testing.T) {
	w, _ := newTestWizard()
	wizKey(w, "1")
	wizKey(w, "d")
	typeInto(w, "7")
	wizKey(w, "esc")
	wizKey(w, "l")

	pairs := w.ctl.Pairs()
	if len(pairs) != 1 || pairs[0] != (score.GamePair{TeamA: 0, TeamB: 11}) {
		t.Fatalf("skip should fall back to default loss scores, got %v", pairs)
	}
}

func TestWizardDiscard(t *testing.T) {
	w, _ := newTestWizard()
	wizKey(w, "2")
	wizKey(w, "w")
	_, pop := wizKey(w, "q")
	if !pop {
		t.Fatalf("q should discard and close")
	}
}

func TestWizardQTypesIntoDetails(t *testing.T) {
	w, _ := newTestWizard()
	wizKey(w, "1")
	wizKey(w, "d")
	_, pop := wizKey(w, "q")
	if pop {
		t.Fatalf("q inside the details inputs must not discard the wizard")
	}
	if w.ctl.Step() != wizard.StepDetails {
		t.Fatalf("expected to remain in details")
	}
}

func TestWizardBackFromDone(t *testing.T) {
	w, _ := newTestWizard()
	wizKey(w, "2")
	wizKey(w, "w")
	wizKey(w, "w")
	if w.ctl.Step() != wizard.StepDone {
		t.Fatalf("expected done")
	}
	wizKey(w, "b")
	if w.ctl.Step() != wizard.StepResults || w.ctl.CurrentGame() != 1 {
		t.Fatalf("back from done should return to the last game")
	}
	wizKey(w, "l")
	if w.ctl.Wins() != 1 || w.ctl.Losses() != 1 {
		t.Fatalf("re-deciding should replace the result")
	}
}
