package gesture

import "time"

// Repeat timing defaults. The first firing lands on the press itself; the
// stream only opens up after InitialDelay of sustained pressure.
const (
	DefaultInitialDelay = 450 * time.Millisecond
	DefaultFastInterval = 55 * time.Millisecond
)

// Repeater turns a single action into press-and-hold repeat fire: one firing
// on press-start, then after initialDelay a steady firing every fastInterval
// until press-end. Releasing cancels both timers immediately; a firing
// scheduled but not yet due never lands.
type Repeater struct {
	sched        Scheduler
	fire         func()
	onAccelerate func()

	initialDelay time.Duration
	fastInterval time.Duration

	pressing  bool
	delayTok  Token
	repeatTok Token
	hasDelay  bool
	hasRepeat bool
}

// NewRepeater wraps fire with hold-to-repeat behavior on sched.
func NewRepeater(sched Scheduler, initialDelay, fastInterval time.Duration, fire func()) *Repeater {
	if initialDelay <= 0 {
		initialDelay = DefaultInitialDelay
	}
	if fastInterval <= 0 {
		fastInterval = DefaultFastInterval
	}
	return &Repeater{
		sched:        sched,
		fire:         fire,
		initialDelay: initialDelay,
		fastInterval: fastInterval,
	}
}

// OnAccelerate sets a hook invoked once per hold, the moment the repeat
// stream opens up.
func (r *Repeater) OnAccelerate(fn func()) { r.onAccelerate = fn }

// Pressing reports whether a press is currently held.
func (r *Repeater) Pressing() bool { return r.pressing }

// PressStart begins a hold: fires immediately and arms the delay timer.
// A press arriving while another is somehow still active supersedes it.
func (r *Repeater) PressStart() {
	r.clearTimers()
	r.pressing = true
	r.fire()
	r.delayTok = r.sched.Schedule(r.initialDelay, r.beginRepeat)
	r.hasDelay = true
}

// PressEnd ends the hold and cancels any pending firings.
func (r *Repeater) PressEnd() {
	r.pressing = false
	r.clearTimers()
}

// Close tears the repeater down; no timer outlives it.
func (r *Repeater) Close() {
	r.PressEnd()
}

func (r *Repeater) beginRepeat() {
	r.hasDelay = false
	if !r.pressing {
		return
	}
	if r.onAccelerate != nil {
		r.onAccelerate()
	}
	r.armRepeat()
}

func (r *Repeater) armRepeat() {
	r.repeatTok = r.sched.Schedule(r.fastInterval, r.repeatTick)
	r.hasRepeat = true
}

func (r *Repeater) repeatTick() {
	r.hasRepeat = false
	if !r.pressing {
		return
	}
	r.fire()
	r.armRepeat()
}

func (r *Repeater) clearTimers() {
	if r.hasDelay {
		r.sched.Cancel(r.delayTok)
		r.hasDelay = false
	}
	if r.hasRepeat {
		r.sched.Cancel(r.repeatTok)
		r.hasRepeat = false
	}
}
