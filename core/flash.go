package core

import (
	"sync"
	"time"

	"github.com/jask/matchpad/core/haptics"
)

// flashDuration is how long a pulse keeps the status bar accented.
const flashDuration = 250 * time.Millisecond

// Flasher renders haptic pulses as a brief status bar accent. Screens emit
// through Emitter; the root model reads the latest pulse while painting and
// schedules a repaint for when the accent expires. Emission can happen from
// command goroutines, hence the mutex.
type Flasher struct {
	mu    sync.Mutex
	pulse haptics.Pulse
	at    time.Time
	seq   int
}

func NewFlasher() *Flasher { return &Flasher{} }

// Emitter returns the feedback emitter screens are built with.
func (f *Flasher) Emitter() haptics.Emitter {
	return haptics.Func(func(p haptics.Pulse) {
		f.mu.Lock()
		f.pulse, f.at = p, time.Now()
		f.seq++
		f.mu.Unlock()
	})
}

// Active returns the pulse to accent with, if one is still fresh at now.
func (f *Flasher) Active(now time.Time) (haptics.Pulse, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.at.IsZero() || now.Sub(f.at) > flashDuration {
		return 0, false
	}
	return f.pulse, true
}

// Seq counts emissions, letting the model notice pulses it has not yet
// scheduled an expiry repaint for.
func (f *Flasher) Seq() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.seq
}
