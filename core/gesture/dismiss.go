package gesture

import "time"

// Sheet dismiss thresholds and motion tuning. Offsets are in sheet units
// with 0 fully open and the sheet height fully dismissed; velocities are
// units/s, positive downward.
const (
	DismissThreshold = 150.0
	DismissVelocity  = 500.0

	openStiffness = 300.0
	openDamping   = 25.0
	openMass      = 0.8

	CloseDuration   = 200 * time.Millisecond
	OpacityDuration = 250 * time.Millisecond
)

// DismissPhase is the sheet lifecycle state.
type DismissPhase int

const (
	PhaseClosed DismissPhase = iota
	PhaseOpening
	PhaseOpen
	PhaseDragging
	PhaseClosing
)

// DismissReason distinguishes how a close was committed.
type DismissReason int

const (
	// DismissedBySwipe is a non-destructive gesture dismissal; session data
	// is retained.
	DismissedBySwipe DismissReason = iota
	// DismissedByCancel is the explicit cancel action; the session is reset
	// before the close notification.
	DismissedByCancel
	// DismissedBySave closes after a successful save commit.
	DismissedBySave
)

// Dismiss is the whole-sheet vertical drag state machine. One commit of
// close per dismissal cycle: once Closing begins, further releases, drags
// and close requests are ignored until the sheet reopens.
type Dismiss struct {
	phase    DismissPhase
	height   float64
	offset   *Spring
	slide    Timed
	fadeIn   Timed
	dragBase float64
	reason   DismissReason
	notified bool
	onClose  func(reason DismissReason)
}

// NewDismiss returns a closed sheet controller. onClose fires exactly once
// per dismissal cycle, after the closing animation settles.
func NewDismiss(onClose func(reason DismissReason)) *Dismiss {
	d := &Dismiss{
		offset:  NewSpring(openStiffness, openDamping, openMass),
		onClose: onClose,
	}
	return d
}

// Phase returns the current lifecycle phase.
func (d *Dismiss) Phase() DismissPhase { return d.phase }

// Offset returns the sheet's vertical offset, 0 when fully open.
func (d *Dismiss) Offset() float64 {
	if d.phase == PhaseClosing {
		return d.slide.Value()
	}
	return d.offset.Value()
}

// Opacity returns the backdrop opacity in [0,1]. It animates on a fixed
// clock while opening and tracks the offset continuously otherwise.
func (d *Dismiss) Opacity() float64 {
	if d.phase == PhaseClosed {
		return 0
	}
	if d.phase == PhaseOpening && !d.fadeIn.Settled() {
		return d.fadeIn.Value()
	}
	if d.height <= 0 {
		return 1
	}
	frac := d.Offset() / d.height
	if frac < 0 {
		frac = 0
	}
	if frac > 1 {
		frac = 1
	}
	return 1 - frac
}

// Open starts a dismissal cycle: the sheet springs from fully dismissed to
// fully open and the backdrop fades in. Reopening mid-close is ignored
// until the cycle completes.
func (d *Dismiss) Open(height float64) {
	if d.phase != PhaseClosed {
		return
	}
	if height <= 0 {
		height = 1
	}
	d.height = height
	d.notified = false
	d.phase = PhaseOpening
	d.offset.Pin(height)
	d.offset.Retarget(0)
	d.fadeIn.Start(0, 1, OpacityDuration)
}

// DragStart opens a drag from the sheet's current offset, superseding any
// settle animation in flight.
func (d *Dismiss) DragStart() {
	if d.phase != PhaseOpen && d.phase != PhaseOpening {
		return
	}
	d.dragBase = d.offset.Value()
	d.offset.Pin(d.dragBase)
	d.phase = PhaseDragging
}

// Drag applies a pointer translation relative to the drag start. Only
// non-negative offsets are permitted: dragging up never overshoots past
// fully open.
func (d *Dismiss) Drag(dy float64) {
	if d.phase != PhaseDragging {
		return
	}
	y := d.dragBase + dy
	if y < 0 {
		y = 0
	}
	d.offset.Pin(y)
}

// Release ends the drag. Past the distance threshold or with enough
// downward velocity the sheet commits to closing; otherwise it springs back
// to fully open. A release outside a drag is ignored, so a duplicate
// release event cannot commit a second close.
func (d *Dismiss) Release(velocity float64) {
	if d.phase != PhaseDragging {
		return
	}
	if d.offset.Value() > DismissThreshold || velocity > DismissVelocity {
		d.beginClose(DismissedBySwipe)
		return
	}
	d.phase = PhaseOpening
	d.offset.SetVelocity(velocity)
	d.offset.Retarget(0)
}

// Close commits a non-destructive close outside the drag gesture (the
// keyboard dismiss path). Session data is retained, as with a swipe.
func (d *Dismiss) Close() {
	if d.phase == PhaseClosed || d.phase == PhaseClosing {
		return
	}
	d.beginClose(DismissedBySwipe)
}

// Cancel commits a destructive close: same closing animation, but the
// reason tells the owner to reset the session before notifying.
func (d *Dismiss) Cancel() {
	if d.phase == PhaseClosed || d.phase == PhaseClosing {
		return
	}
	d.beginClose(DismissedByCancel)
}

// CloseForSave commits the closing animation on behalf of a successful
// save.
func (d *Dismiss) CloseForSave() {
	if d.phase == PhaseClosed || d.phase == PhaseClosing {
		return
	}
	d.beginClose(DismissedBySave)
}

func (d *Dismiss) beginClose(reason DismissReason) {
	d.phase = PhaseClosing
	d.reason = reason
	d.slide.Start(d.offset.Value(), d.height, CloseDuration)
}

// Step advances the sheet's motion. The close notification fires when the
// closing animation settles, exactly once per cycle.
func (d *Dismiss) Step(dt time.Duration) {
	switch d.phase {
	case PhaseOpening:
		d.fadeIn.Step(dt)
		d.offset.Step(dt)
		if d.offset.Settled() && d.fadeIn.Settled() {
			d.phase = PhaseOpen
		}
	case PhaseClosing:
		d.slide.Step(dt)
		if d.slide.Settled() && !d.notified {
			d.notified = true
			d.phase = PhaseClosed
			d.offset.Pin(d.height)
			if d.onClose != nil {
				d.onClose(d.reason)
			}
		}
	}
}

// Settled reports whether any animation is still running.
func (d *Dismiss) Settled() bool {
	switch d.phase {
	case PhaseOpening:
		return false
	case PhaseClosing:
		return d.slide.Settled()
	default:
		return true
	}
}
