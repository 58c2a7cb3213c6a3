package gesture

import (
	"math"
	"time"
)

// Spring is a damped spring over one scalar. The value is always the single
// authoritative current position: dragging pins it directly, Retarget
// redirects an in-flight animation without restarting it.
type Spring struct {
	value     float64
	velocity  float64
	target    float64
	stiffness float64
	damping   float64
	mass      float64
	settled   bool
}

// Spring settle tolerances, in offset units and units/s.
const (
	springRestDelta    = 0.5
	springRestVelocity = 5.0
)

// NewSpring returns a settled spring at value zero.
func NewSpring(stiffness, damping, mass float64) *Spring {
	if mass <= 0 {
		mass = 1
	}
	return &Spring{stiffness: stiffness, damping: damping, mass: mass, settled: true}
}

// Value returns the current position.
func (sp *Spring) Value() float64 { return sp.value }

// Settled reports whether the spring has reached its target and stopped.
func (sp *Spring) Settled() bool { return sp.settled }

// Pin jumps the spring to v with no motion, keeping the target at v.
func (sp *Spring) Pin(v float64) {
	sp.value = v
	sp.target = v
	sp.velocity = 0
	sp.settled = true
}

// Retarget redirects the spring toward target, preserving current position
// and velocity.
func (sp *Spring) Retarget(target float64) {
	sp.target = target
	sp.settled = sp.atRest()
}

// SetVelocity seeds the spring with an initial velocity, for handing a
// release gesture's momentum to the settle animation.
func (sp *Spring) SetVelocity(v float64) {
	sp.velocity = v
	sp.settled = sp.atRest()
}

// Step advances the simulation by dt using semi-implicit Euler.
func (sp *Spring) Step(dt time.Duration) {
	if sp.settled {
		return
	}
	secs := dt.Seconds()
	if secs <= 0 {
		return
	}
	// Sub-step to keep the integration stable on long frames.
	const maxStep = 1.0 / 120
	for secs > 0 {
		h := math.Min(secs, maxStep)
		secs -= h
		displacement := sp.value - sp.target
		accel := (-sp.stiffness*displacement - sp.damping*sp.velocity) / sp.mass
		sp.velocity += accel * h
		sp.value += sp.velocity * h
	}
	if sp.atRest() {
		sp.value = sp.target
		sp.velocity = 0
		sp.settled = true
	}
}

func (sp *Spring) atRest() bool {
	return math.Abs(sp.value-sp.target) < springRestDelta &&
		math.Abs(sp.velocity) < springRestVelocity
}

// Timed is a fixed-duration interpolation with ease-out, for the committed
// close/slide animations where the destination is certain.
type Timed struct {
	from     float64
	to       float64
	elapsed  time.Duration
	duration time.Duration
	running  bool
}

// Start begins a run from from to to over duration. A non-positive duration
// completes immediately.
func (tm *Timed) Start(from, to float64, duration time.Duration) {
	tm.from = from
	tm.to = to
	tm.elapsed = 0
	tm.duration = duration
	tm.running = duration > 0
	if !tm.running {
		tm.from = to
	}
}

// Value returns the eased current position.
func (tm *Timed) Value() float64 {
	if !tm.running {
		return tm.to
	}
	t := float64(tm.elapsed) / float64(tm.duration)
	if t >= 1 {
		return tm.to
	}
	// easeOutQuad
	t = 1 - (1-t)*(1-t)
	return tm.from + (tm.to-tm.from)*t
}

// Settled reports whether the run has finished (or never started).
func (tm *Timed) Settled() bool {
	return !tm.running || tm.elapsed >= tm.duration
}

// Step advances the run by dt.
func (tm *Timed) Step(dt time.Duration) {
	if !tm.running {
		return
	}
	tm.elapsed += dt
	if tm.elapsed >= tm.duration {
		tm.elapsed = tm.duration
		tm.running = false
	}
}
