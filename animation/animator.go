package animation

import (
	"fmt"
	"math"
)

// InitialState is the state every animator starts in unless told otherwise.
const InitialState = "Idle"

// Frame is a resolved display index for the active state.
type Frame struct {
	State string
	Index int
}

// Animator is the per-entity playback state. It must only be mutated by the
// goroutine updating its owning entity.
type Animator struct {
	catalog *Catalog
	state   string
	frame   int
	// rel is the frame position counted from the active definition's start.
	rel   int
	timer float64
	// restart makes the next expiry resolve the first frame instead of
	// stepping past it.
	restart bool
}

// NewAnimator creates an animator in InitialState.
func NewAnimator(catalog *Catalog) *Animator {
	return NewAnimatorAt(catalog, InitialState)
}

// NewAnimatorAt creates an animator in the given state. The timer starts at
// zero so the first Advance resolves a frame immediately.
func NewAnimatorAt(catalog *Catalog, initial string) *Animator {
	a := &Animator{catalog: catalog, state: initial}
	if def, ok := catalog.Get(initial); ok {
		a.frame = def.Start
	}
	return a
}

func (a *Animator) Catalog() *Catalog { return a.catalog }
func (a *Animator) State() string     { return a.state }
func (a *Animator) Frame() int        { return a.frame }
func (a *Animator) Timer() float64    { return a.timer }

// Done reports whether a non-looping animation is holding its last frame.
func (a *Animator) Done() bool {
	def, ok := a.catalog.Get(a.state)
	if !ok || def.Looping {
		return false
	}
	return a.rel == def.NumFrames()-1
}

// Advance moves the animator forward by elapsed seconds. It returns the new
// display frame and true when the frame timer expired this tick, or false
// when the caller should keep showing what it already shows.
//
// The timer is reset to the full frame duration on expiry; a large elapsed
// value never skips frames.
func (a *Animator) Advance(elapsed float64) (Frame, bool, error) {
	def, ok := a.catalog.Get(a.state)
	if !ok {
		return Frame{}, false, fmt.Errorf("%w: %q", ErrUnknownState, a.state)
	}
	if elapsed < 0 || math.IsNaN(elapsed) {
		elapsed = 0
	}

	a.timer -= elapsed
	if a.timer > 0 {
		return Frame{}, false, nil
	}
	a.timer = def.FrameDuration

	n := def.NumFrames()
	next := 0
	if a.restart {
		a.restart = false
	} else {
		next = (a.rel + 1) % n
		if next == 0 && !def.Looping {
			next = n - 1
		}
	}
	a.rel = next
	a.frame = def.Start + next
	return Frame{State: a.state, Index: a.frame}, true, nil
}

// Select switches to the desired state. It returns false without touching
// anything when desired is already active, and ErrUnknownState when the
// catalog has no such state. On a switch the frame goes back to the new
// definition's start and the next Advance resolves it regardless of the
// time left on the old timer.
func (a *Animator) Select(desired string) (bool, error) {
	if desired == a.state {
		return false, nil
	}
	def, ok := a.catalog.Get(desired)
	if !ok {
		return false, fmt.Errorf("%w: %q", ErrUnknownState, desired)
	}
	a.state = desired
	a.frame = def.Start
	a.rel = 0
	a.timer = 0
	a.restart = true
	return true, nil
}

// Rebind replaces the catalog between ticks. The current state must exist in
// the new catalog. The relative frame survives when it still fits the new
// range, otherwise playback restarts from the first frame.
func (a *Animator) Rebind(catalog *Catalog) error {
	def, ok := catalog.Get(a.state)
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownState, a.state)
	}
	a.catalog = catalog
	if a.rel >= def.NumFrames() {
		a.rel = 0
		a.restart = true
	}
	a.frame = def.Start + a.rel
	a.timer = 0
	return nil
}
