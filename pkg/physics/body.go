package physics

import (
	"fmt"
	"math"
	"sync/atomic"
)

// DefaultBounce is the restitution given to new bodies.
const DefaultBounce = 0.6

// BodyID is a unique identifier for a body
type BodyID uint64

var nextBodyID atomic.Uint64

func newBodyID() BodyID {
	return BodyID(nextBodyID.Add(1))
}

// Body is an axis-aligned rectangle with translation-only dynamics.
// Position is the top-left corner.
type Body struct {
	ID    BodyID
	Label string

	Position     Vector2D
	Velocity     Vector2D
	Acceleration Vector2D

	Mass   float64
	Bounce float64
	Width  float64
	Height float64

	// Static bodies never move. Dragged bodies are held by the input layer and
	// ignore forces, impulses and integration until released.
	Static  bool
	Dragged bool

	AABB AABB
}

// NewBody creates a dynamic body with its top-left corner at (x, y).
func NewBody(x, y, width, height, mass float64) (*Body, error) {
	return newBody(x, y, width, height, mass, false)
}

// NewStaticBody creates an immovable body. Its mass may be zero.
func NewStaticBody(x, y, width, height float64) (*Body, error) {
	return newBody(x, y, width, height, 0, true)
}

func newBody(x, y, width, height, mass float64, static bool) (*Body, error) {
	b := &Body{
		ID:       newBodyID(),
		Position: Vector2D{X: x, Y: y},
		Mass:     mass,
		Bounce:   DefaultBounce,
		Width:    width,
		Height:   height,
		Static:   static,
	}
	if err := b.Validate(); err != nil {
		return nil, err
	}
	b.AABB = NewAABB(x, y, width, height)
	return b, nil
}

// Validate checks the body for values that would poison the simulation.
func (b *Body) Validate() error {
	if !b.Position.IsFinite() || !b.Velocity.IsFinite() || !isFinite(b.Mass) {
		return fmt.Errorf("body %d: %w", b.ID, ErrNonFinite)
	}
	if !(b.Width > 0) || !(b.Height > 0) || !isFinite(b.Width) || !isFinite(b.Height) {
		return fmt.Errorf("body %d: %w (got %gx%g)", b.ID, ErrInvalidSize, b.Width, b.Height)
	}
	if !b.Static && b.Mass <= 0 {
		return fmt.Errorf("body %d: %w (got %g)", b.ID, ErrInvalidMass, b.Mass)
	}
	if b.Mass < 0 {
		return fmt.Errorf("body %d: %w (got %g)", b.ID, ErrInvalidMass, b.Mass)
	}
	if b.Bounce < 0 || b.Bounce > 1 || math.IsNaN(b.Bounce) {
		return fmt.Errorf("body %d: %w (got %g)", b.ID, ErrInvalidBounce, b.Bounce)
	}
	return nil
}

// InvMass returns 1/Mass, or 0 for static, dragged or massless bodies.
func (b *Body) InvMass() float64 {
	if b.Static || b.Dragged || b.Mass <= 0 {
		return 0
	}
	return 1 / b.Mass
}

// Immovable reports whether the body currently ignores physics.
func (b *Body) Immovable() bool {
	return b.Static || b.Dragged
}

// ApplyForce accumulates f/m into the acceleration.
func (b *Body) ApplyForce(f Vector2D) {
	if b.Immovable() {
		return
	}
	b.Acceleration = b.Acceleration.Add(f.Scale(b.InvMass()))
}

// ApplyImpulse changes the velocity by j/m immediately.
func (b *Body) ApplyImpulse(j Vector2D) {
	if b.Immovable() {
		return
	}
	b.Velocity = b.Velocity.Add(j.Scale(b.InvMass()))
}

// Update integrates one step with semi-implicit Euler. dt is a normalized step
// where 1.0 is one reference frame; damping is applied as damping^dt so the
// same tuning holds for fractional steps.
func (b *Body) Update(dt, damping, maxSpeed float64) {
	if b.Immovable() {
		b.Acceleration = Vector2D{}
		return
	}

	if dt == 1 {
		b.Velocity = b.Velocity.Scale(damping)
	} else {
		b.Velocity = b.Velocity.Scale(math.Pow(damping, dt))
	}
	b.Velocity = b.Velocity.Limit(maxSpeed)

	b.Velocity = b.Velocity.Add(b.Acceleration.Scale(dt))
	b.Position = b.Position.Add(b.Velocity.Scale(dt))
	b.AABB.Update(b.Position.X, b.Position.Y)

	b.Acceleration = Vector2D{}
}

// SetPosition teleports the body and resyncs its AABB.
func (b *Body) SetPosition(x, y float64) {
	b.Position = Vector2D{X: x, Y: y}
	b.AABB.Update(x, y)
}

// Center returns the middle of the body's rectangle.
func (b *Body) Center() Vector2D {
	return Vector2D{X: b.Position.X + b.Width/2, Y: b.Position.Y + b.Height/2}
}

// HalfExtents returns half the width and height.
func (b *Body) HalfExtents() Vector2D {
	return Vector2D{X: b.Width / 2, Y: b.Height / 2}
}

// KineticEnergy returns 0.5*m*|v|^2.
func (b *Body) KineticEnergy() float64 {
	return 0.5 * b.Mass * b.Velocity.LengthSquared()
}

func (b *Body) String() string {
	if b.Label != "" {
		return fmt.Sprintf("body %d (%s)", b.ID, b.Label)
	}
	return fmt.Sprintf("body %d", b.ID)
}
