// Package haptics carries feedback-intent signals from the interaction core
// to whatever surface renders them. Emission is fire-and-forget: nothing in
// the core depends on an emitter for correctness.
package haptics

// Pulse is a discrete named feedback event.
type Pulse int

const (
	// Light marks small confirmations: chip taps, accelerated ticks,
	// wizard pill selection.
	Light Pulse = iota
	// Medium marks mode changes: acceleration threshold reached, add-game,
	// save press.
	Medium
	// Success marks committed destructive or terminal actions: delete
	// commit, save success.
	Success
)

func (p Pulse) String() string {
	switch p {
	case Light:
		return "light"
	case Medium:
		return "medium"
	case Success:
		return "success"
	}
	return "unknown"
}

// Emitter receives feedback intents.
type Emitter interface {
	Emit(p Pulse)
}

// Discard is an Emitter that drops every pulse.
type Discard struct{}

func (Discard) Emit(Pulse) {}

// Recorder is an Emitter that keeps every pulse in order, for tests.
type Recorder struct {
	Pulses []Pulse
}

func (r *Recorder) Emit(p Pulse) {
	r.Pulses = append(r.Pulses, p)
}

// Count returns how many times p was emitted.
func (r *Recorder) Count(p Pulse) int {
	n := 0
	for _, got := range r.Pulses {
		if got == p {
			n++
		}
	}
	return n
}

// Func adapts a function to an Emitter.
type Func func(p Pulse)

func (f Func) Emit(p Pulse) { f(p) }
