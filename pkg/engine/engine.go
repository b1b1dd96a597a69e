// Package engine runs the per-frame simulation: forces, integration,
// collision detection and resolution, and the world boundary.
//
// An Engine is driven from a single goroutine. Setters are expected to be
// called between Update calls, never concurrently with them.
package engine

import (
	"context"
	"fmt"
	"math"

	"github.com/opd-ai/go-antigravity/pkg/config"
	"github.com/opd-ai/go-antigravity/pkg/event"
	"github.com/opd-ai/go-antigravity/pkg/logging"
	"github.com/opd-ai/go-antigravity/pkg/physics"
)

// Bounds is the size of the world. Bodies are kept inside [0, Width] x [0, Height].
type Bounds struct {
	Width  float64
	Height float64
}

// TickStats summarises the work done by the last Update.
type TickStats struct {
	Tick       uint64
	Candidates int
	Contacts   int
	WallHits   int
}

// Engine owns the simulated bodies and the external modifiers that feed the
// force generators.
type Engine struct {
	bodies []*physics.Body
	bounds Bounds

	pointer         *physics.Vector2D
	pointerStrength float64
	scroll          physics.Vector2D
	gravityCoef     float64
	frictionCoef    float64

	params     config.PhysicsConfig
	maxBodies  int
	resolver   physics.Resolver
	broadPhase physics.BroadPhase

	bus       *event.Bus
	logger    *logging.Logger
	sessionID string
	ctx       context.Context

	tick  uint64
	stats TickStats
}

// New creates an engine from cfg and registers cfg.Elements in order.
func New(cfg *config.Config, opts ...Option) (*Engine, error) {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, logging.WrapError(err, "invalid engine config")
	}

	e := &Engine{
		bounds:       Bounds{Width: cfg.World.Width, Height: cfg.World.Height},
		gravityCoef:  cfg.Physics.GravityCoefficient,
		frictionCoef: cfg.Physics.FrictionCoefficient,
		params:       cfg.Physics,
		maxBodies:    cfg.Limits.MaxBodies,
		resolver: physics.Resolver{
			Slop:              cfg.Physics.Slop,
			CorrectionPercent: cfg.Physics.CorrectionPercent,
		},
		broadPhase: NewBroadPhase(cfg.BroadPhase),
		bus:        event.NewEventBus(),
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.logger == nil {
		e.logger = logging.NewLogger()
	}
	e.ctx = logging.WithSessionID(context.Background(), e.sessionID)

	for i, el := range cfg.Elements {
		body, err := BodyFromElement(el, cfg.Physics.DefaultBounce)
		if err != nil {
			return nil, logging.WrapError(err, "element %d (%s)", i, el.Label)
		}
		if _, err := e.AddBody(body); err != nil {
			return nil, logging.WrapError(err, "element %d (%s)", i, el.Label)
		}
	}

	e.logger.Info(e.ctx, "engine created",
		"width", e.bounds.Width,
		"height", e.bounds.Height,
		"bodies", len(e.bodies),
		"broad_phase", fmt.Sprintf("%T", e.broadPhase),
	)
	return e, nil
}

// NewBroadPhase builds the strategy named by cfg.Kind. Unknown kinds fall
// back to brute force.
func NewBroadPhase(cfg config.BroadPhaseConfig) physics.BroadPhase {
	switch cfg.Kind {
	case config.BroadPhaseQuadTree:
		return physics.QuadTreeBroadPhase{Capacity: cfg.QuadCapacity}
	case config.BroadPhaseSpatialHash:
		return physics.SpatialHash{CellSize: cfg.CellSize}
	default:
		return physics.BruteForce{}
	}
}

// BodyFromElement builds a body from a config element. Elements without an
// explicit bounce get defaultBounce.
func BodyFromElement(el config.ElementConfig, defaultBounce float64) (*physics.Body, error) {
	var (
		body *physics.Body
		err  error
	)
	if el.Static {
		body, err = physics.NewStaticBody(el.X, el.Y, el.Width, el.Height)
		if err == nil {
			body.Mass = math.Max(el.Mass, 0)
		}
	} else {
		body, err = physics.NewBody(el.X, el.Y, el.Width, el.Height, el.Mass)
	}
	if err != nil {
		return nil, err
	}

	body.Label = el.Label
	body.Bounce = defaultBounce
	if el.Bounce != nil {
		body.Bounce = *el.Bounce
	}
	return body, body.Validate()
}

// EventBus returns the bus engine events are published on.
func (e *Engine) EventBus() *event.Bus {
	return e.bus
}

// Logger returns the engine logger and the context carrying its session id.
func (e *Engine) Logger() (*logging.Logger, context.Context) {
	return e.logger, e.ctx
}

// AddBody registers b. Invalid, duplicate or excess bodies are rejected here
// so a tick never meets a malformed body.
func (e *Engine) AddBody(b *physics.Body) (*physics.Body, error) {
	if b == nil {
		return nil, ErrNilBody
	}
	if err := b.Validate(); err != nil {
		e.logger.Warn(e.ctx, "body rejected", "body_id", b.ID, "label", b.Label, "error", err.Error())
		return nil, err
	}
	for _, existing := range e.bodies {
		if existing == b || existing.ID == b.ID {
			return nil, fmt.Errorf("%v: %w", b, ErrDuplicateBody)
		}
	}
	if e.maxBodies > 0 && len(e.bodies) >= e.maxBodies {
		e.logger.Warn(e.ctx, "body rejected", "body_id", b.ID, "label", b.Label, "max_bodies", e.maxBodies)
		return nil, fmt.Errorf("%v: %w (max %d)", b, ErrTooManyBodies, e.maxBodies)
	}

	b.AABB = physics.NewAABB(b.Position.X, b.Position.Y, b.Width, b.Height)
	e.bodies = append(e.bodies, b)

	e.logger.Debug(e.ctx, "body added", "body_id", b.ID, "label", b.Label, "static", b.Static)
	e.publish(event.BodyAdded, func() event.Event { return event.NewBodyEvent(event.BodyAdded, e, b) })
	return b, nil
}

// RemoveBody unregisters b. It reports whether b was registered.
func (e *Engine) RemoveBody(b *physics.Body) bool {
	if b == nil {
		return false
	}
	return e.RemoveBodyByID(b.ID)
}

// RemoveBodyByID unregisters the body with the given id, keeping the order
// of the remaining bodies.
func (e *Engine) RemoveBodyByID(id physics.BodyID) bool {
	for i, b := range e.bodies {
		if b.ID != id {
			continue
		}
		copy(e.bodies[i:], e.bodies[i+1:])
		e.bodies[len(e.bodies)-1] = nil
		e.bodies = e.bodies[:len(e.bodies)-1]

		e.logger.Debug(e.ctx, "body removed", "body_id", b.ID, "label", b.Label)
		e.publish(event.BodyRemoved, func() event.Event { return event.NewBodyEvent(event.BodyRemoved, e, b) })
		return true
	}
	return false
}

// Body returns the registered body with the given id.
func (e *Engine) Body(id physics.BodyID) (*physics.Body, bool) {
	for _, b := range e.bodies {
		if b.ID == id {
			return b, true
		}
	}
	return nil, false
}

// Bodies returns the registered bodies in insertion order. The slice is a
// copy; the bodies are not.
func (e *Engine) Bodies() []*physics.Body {
	out := make([]*physics.Body, len(e.bodies))
	copy(out, e.bodies)
	return out
}

// Len returns the number of registered bodies.
func (e *Engine) Len() int {
	return len(e.bodies)
}

// SetBounds resizes the world. Bodies are pulled back inside on the next tick.
func (e *Engine) SetBounds(width, height float64) {
	if !(width > 0) || !(height > 0) {
		e.logger.Warn(e.ctx, "ignoring invalid bounds", "width", width, "height", height)
		return
	}
	e.bounds = Bounds{Width: width, Height: height}
	e.publish(event.BoundsChanged, func() event.Event { return event.NewBoundsEvent(e, width, height) })
}

// Bounds returns the current world size.
func (e *Engine) Bounds() Bounds {
	return e.bounds
}

// SetPointerInfo sets the pointer used for repulsion. A nil position disables
// repulsion until the next call. A negative or non-finite strength is treated
// as zero.
func (e *Engine) SetPointerInfo(position *physics.Vector2D, strength float64) {
	if position == nil || !position.IsFinite() {
		e.pointer = nil
		return
	}
	p := *position
	e.pointer = &p
	e.pointerStrength = clampNonNegative(strength)
}

// SetScrollInfo replaces the scroll velocity. The engine decays it every tick.
func (e *Engine) SetScrollInfo(velocity physics.Vector2D) {
	if !velocity.IsFinite() {
		return
	}
	e.scroll = velocity
}

// ScrollVelocity returns the current, decayed scroll velocity.
func (e *Engine) ScrollVelocity() physics.Vector2D {
	return e.scroll
}

// SetModifiers sets the gravity and friction multipliers. Negative and
// non-finite values are clamped to zero.
func (e *Engine) SetModifiers(gravityCoefficient, frictionCoefficient float64) {
	g, f := clampNonNegative(gravityCoefficient), clampNonNegative(frictionCoefficient)
	if g != gravityCoefficient || f != frictionCoefficient {
		e.logger.Warn(e.ctx, "clamping invalid modifiers",
			"gravity_coefficient", gravityCoefficient,
			"friction_coefficient", frictionCoefficient,
		)
	}
	e.gravityCoef = g
	e.frictionCoef = f
}

// Modifiers returns the gravity and friction multipliers.
func (e *Engine) Modifiers() (gravityCoefficient, frictionCoefficient float64) {
	return e.gravityCoef, e.frictionCoef
}

// SetBroadPhase swaps the pair-finding strategy.
func (e *Engine) SetBroadPhase(bp physics.BroadPhase) {
	if bp != nil {
		e.broadPhase = bp
	}
}

// Params returns the physics tunables the engine was built with.
func (e *Engine) Params() config.PhysicsConfig {
	return e.params
}

// TotalKineticEnergy returns the sum of 0.5*m*|v|^2 over all bodies.
func (e *Engine) TotalKineticEnergy() float64 {
	total := 0.0
	for _, b := range e.bodies {
		total += b.KineticEnergy()
	}
	return total
}

// Tick returns the number of completed updates.
func (e *Engine) Tick() uint64 {
	return e.tick
}

// LastTickStats returns counters for the most recent Update.
func (e *Engine) LastTickStats() TickStats {
	return e.stats
}

// Reset removes every body and clears pointer and scroll state.
func (e *Engine) Reset() {
	for i := range e.bodies {
		e.bodies[i] = nil
	}
	e.bodies = e.bodies[:0]
	e.pointer = nil
	e.scroll = physics.Vector2D{}
	e.logger.Info(e.ctx, "engine reset", "tick", e.tick)
}

func (e *Engine) publish(t event.Type, build func() event.Event) {
	if e.bus.HasSubscribers(t) {
		e.bus.Publish(build())
	}
}

func clampNonNegative(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return 0
	}
	return v
}
