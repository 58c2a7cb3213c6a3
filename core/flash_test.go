package core

import (
	"testing"
	"time"

	"github.com/jask/matchpad/core/haptics"
)

func TestFlasherActiveWindow(t *testing.T) {
	f := NewFlasher()
	if _, ok := f.Active(time.Now()); ok {
		t.Fatalf("fresh flasher should have no active pulse")
	}

	f.Emitter().Emit(haptics.Success)
	p, ok := f.Active(time.Now())
	if !ok || p != haptics.Success {
		t.Fatalf("expected a fresh success pulse, got %v %v", p, ok)
	}
	if _, ok := f.Active(time.Now().Add(time.Second)); ok {
		t.Fatalf("pulse should have faded after a second")
	}
}

func TestFlasherKeepsLatestPulse(t *testing.T) {
	f := NewFlasher()
	em := f.Emitter()
	em.Emit(haptics.Light)
	em.Emit(haptics.Medium)
	if p, _ := f.Active(time.Now()); p != haptics.Medium {
		t.Fatalf("expected the latest pulse, got %v", p)
	}
	if f.Seq() != 2 {
		t.Fatalf("expected two emissions counted, got %d", f.Seq())
	}
}

func TestModelSchedulesFlashRepaint(t *testing.T) {
	flash := NewFlasher()
	model := NewModel(&fakeHome{}, NewKeyRegistry(nil)).WithFlash(flash)

	flash.Emitter().Emit(haptics.Light)
	next, cmd := model.Update(StatusMsg{Text: "hi"})
	if cmd == nil {
		t.Fatalf("expected an expiry repaint to be scheduled after a pulse")
	}
	model = next.(Model)

	// same pulse must not schedule again
	next, cmd = model.Update(StatusMsg{Text: "again"})
	if cmd != nil {
		t.Fatalf("one pulse should schedule exactly one repaint")
	}
	model = next.(Model)

	flash.Emitter().Emit(haptics.Medium)
	if _, cmd = model.Update(flashExpiredMsg{}); cmd == nil {
		t.Fatalf("a new pulse should schedule another repaint")
	}
}
