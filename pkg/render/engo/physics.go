// pkg/render/engo/physics.go
package engo

import (
	"github.com/EngoEngine/ecs"

	"github.com/opd-ai/go-antigravity/pkg/engine"
	"github.com/opd-ai/go-antigravity/pkg/input"
	"github.com/opd-ai/go-antigravity/pkg/render"
)

const (
	// ReferenceFPS is the frame rate a step of 1.0 corresponds to.
	ReferenceFPS = 60
	// MaxStep caps the normalized step after a stall.
	MaxStep = 3
)

// PhysicsSystem advances the engine once per Engo frame and mirrors the
// bodies into a renderer.
type PhysicsSystem struct {
	engine   *engine.Engine
	tracker  *input.Tracker
	renderer render.Renderer
}

// NewPhysicsSystem creates a system driving e. tracker and renderer may be nil.
func NewPhysicsSystem(e *engine.Engine, tracker *input.Tracker, renderer render.Renderer) *PhysicsSystem {
	return &PhysicsSystem{
		engine:   e,
		tracker:  tracker,
		renderer: renderer,
	}
}

// Remove satisfies the ecs.System interface
func (ps *PhysicsSystem) Remove(basic ecs.BasicEntity) {
	// Bodies are owned by the engine
}

// Update pushes input, steps the engine and redraws.
func (ps *PhysicsSystem) Update(dt float32) {
	if ps.tracker != nil {
		ps.tracker.Apply(ps.engine)
	}
	ps.engine.Update(NormalizeStep(dt))
	if ps.renderer != nil {
		render.Frame(ps.renderer, ps.engine.Bodies())
	}
}

// NormalizeStep converts an Engo frame time in seconds into engine steps,
// where one step is one frame at ReferenceFPS.
func NormalizeStep(dt float32) float64 {
	step := float64(dt) * ReferenceFPS
	if step > MaxStep {
		return MaxStep
	}
	return step
}
