package score

import "slices"

// TargetPolicy decides what the game target is and whether the player may
// change it mid-session. A fixed policy holds one value; a selectable policy
// cycles through a small option set.
type TargetPolicy struct {
	options []int
	index   int
}

// FixedTarget returns a policy locked to n.
func FixedTarget(n int) TargetPolicy {
	if n < 1 {
		n = 11
	}
	return TargetPolicy{options: []int{n}}
}

// SelectableTarget returns a policy over options with def selected. Unknown
// or empty inputs fall back to a fixed 11.
func SelectableTarget(options []int, def int) TargetPolicy {
	opts := make([]int, 0, len(options))
	for _, o := range options {
		if o >= 1 {
			opts = append(opts, o)
		}
	}
	if len(opts) == 0 {
		return FixedTarget(11)
	}
	idx := slices.Index(opts, def)
	if idx < 0 {
		idx = 0
	}
	return TargetPolicy{options: opts, index: idx}
}

// Target returns the currently selected target.
func (p TargetPolicy) Target() int {
	if len(p.options) == 0 {
		return 11
	}
	return p.options[p.index]
}

// Selectable reports whether more than one target is on offer.
func (p TargetPolicy) Selectable() bool { return len(p.options) > 1 }

// Options returns a copy of the option set.
func (p TargetPolicy) Options() []int { return slices.Clone(p.options) }

// Cycle advances to the next option; a no-op on fixed policies.
func (p *TargetPolicy) Cycle() {
	if len(p.options) < 2 {
		return
	}
	p.index = (p.index + 1) % len(p.options)
}

// Select picks n when it is in the option set; otherwise a no-op.
func (p *TargetPolicy) Select(n int) {
	if idx := slices.Index(p.options, n); idx >= 0 {
		p.index = idx
	}
}
