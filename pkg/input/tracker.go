// Package input turns raw pointer and wheel activity into engine state:
// pointer repulsion, scroll velocity and dragging.
package input

import (
	"math"

	"github.com/opd-ai/go-antigravity/pkg/config"
	"github.com/opd-ai/go-antigravity/pkg/engine"
	"github.com/opd-ai/go-antigravity/pkg/physics"
)

// Tracker collects pointer and wheel activity between frames and pushes it
// into an engine once per frame with Apply.
type Tracker struct {
	position    physics.Vector2D
	active      bool
	strength    float64
	sensitivity float64

	wheel    physics.Vector2D
	scrolled bool
}

// NewTracker creates a tracker using the pointer strength and wheel
// sensitivity from cfg.
func NewTracker(cfg config.InputConfig) *Tracker {
	return &Tracker{
		strength:    cfg.PointerStrength,
		sensitivity: cfg.ScrollSensitivity,
	}
}

// MoveTo records the pointer position and marks it active.
func (t *Tracker) MoveTo(x, y float64) {
	t.position = physics.Vector2D{X: x, Y: y}
	t.active = true
}

// Leave marks the pointer as outside the world, disabling repulsion.
func (t *Tracker) Leave() {
	t.active = false
}

// SetStrength changes the repulsion strength multiplier. Negative and
// non-finite values become zero.
func (t *Tracker) SetStrength(strength float64) {
	if strength < 0 || math.IsNaN(strength) || math.IsInf(strength, 0) {
		strength = 0
	}
	t.strength = strength
}

// Strength returns the repulsion strength multiplier.
func (t *Tracker) Strength() float64 {
	return t.strength
}

// Scroll accumulates a wheel delta until the next Apply.
func (t *Tracker) Scroll(dx, dy float64) {
	if dx == 0 && dy == 0 {
		return
	}
	t.wheel = t.wheel.Add(physics.Vector2D{X: dx, Y: dy})
	t.scrolled = true
}

// Pointer returns the last pointer position and whether it is active.
func (t *Tracker) Pointer() (physics.Vector2D, bool) {
	return t.position, t.active
}

// Apply pushes the pointer and any accumulated wheel movement into e.
// Without new wheel input the engine's scroll velocity keeps decaying.
func (t *Tracker) Apply(e *engine.Engine) {
	if t.active {
		p := t.position
		e.SetPointerInfo(&p, t.strength)
	} else {
		e.SetPointerInfo(nil, 0)
	}

	if t.scrolled {
		e.SetScrollInfo(t.wheel.Scale(t.sensitivity))
		t.wheel = physics.Vector2D{}
		t.scrolled = false
	}
}
