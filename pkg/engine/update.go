package engine

import (
	"math"

	"github.com/opd-ai/go-antigravity/pkg/event"
	"github.com/opd-ai/go-antigravity/pkg/physics"
)

// Update advances the world by dt, where 1.0 is one reference frame.
// Non-positive or non-finite steps are ignored.
func (e *Engine) Update(dt float64) {
	if !(dt > 0) || math.IsInf(dt, 0) {
		return
	}

	e.stats = TickStats{Tick: e.tick + 1}

	e.applyForces()
	e.decayScroll()
	e.integrate(dt)
	e.resolveCollisions()
	e.clampToBounds()

	e.tick++
}

func (e *Engine) applyForces() {
	p := e.params
	gravity := physics.Vector2D{}
	if p.GravityEnabled && e.gravityCoef > 0 {
		gravity = p.Gravity.Scale(e.gravityCoef)
	}

	for _, b := range e.bodies {
		if b.Immovable() {
			continue
		}
		if !gravity.IsZero() {
			physics.ApplyGravity(b, gravity)
		}
		if e.pointer != nil {
			physics.ApplyRepulsion(b, *e.pointer, p.RepulsionRadius, p.RepulsionForce, e.pointerStrength)
		}
		if !e.scroll.IsZero() {
			physics.ApplyScroll(b, e.scroll, p.ScrollScale)
		}
	}
}

func (e *Engine) decayScroll() {
	e.scroll = e.scroll.Scale(e.params.ScrollDecay)
	if math.Abs(e.scroll.X) < e.params.ScrollSnap {
		e.scroll.X = 0
	}
	if math.Abs(e.scroll.Y) < e.params.ScrollSnap {
		e.scroll.Y = 0
	}
}

// effectiveDamping scales the velocity loss per frame by the friction
// coefficient. A coefficient of zero removes damping entirely.
func (e *Engine) effectiveDamping() float64 {
	d := 1 - (1-e.params.Damping)*e.frictionCoef
	return math.Min(math.Max(d, 0), 1)
}

func (e *Engine) integrate(dt float64) {
	damping := e.effectiveDamping()
	for _, b := range e.bodies {
		b.Update(dt, damping, e.params.MaxSpeed)
	}
}

// resolveCollisions runs a single pass over the candidate pairs in ascending
// (i, j) order. Each manifold is resolved as soon as it is found, so later
// pairs see the corrected positions of earlier ones.
func (e *Engine) resolveCollisions() {
	pairs := e.broadPhase.Pairs(e.bodies)
	e.stats.Candidates = len(pairs)

	notify := e.bus.HasSubscribers(event.BodyCollision)
	for _, pair := range pairs {
		m, ok := physics.CheckAABB(e.bodies[pair.I], e.bodies[pair.J])
		if !ok {
			continue
		}
		e.stats.Contacts++
		res := e.resolver.Resolve(m)
		if notify {
			e.bus.Publish(event.NewCollisionEvent(e, m, res.Impulse))
		}
	}
}

func (e *Engine) clampToBounds() {
	notify := e.bus.HasSubscribers(event.BodyHitWall)
	bounce := e.params.WallBounce

	for _, b := range e.bodies {
		if b.Immovable() {
			continue
		}
		x, vx, hitX := clampAxis(b.Position.X, b.Velocity.X, b.Width, e.bounds.Width, bounce)
		y, vy, hitY := clampAxis(b.Position.Y, b.Velocity.Y, b.Height, e.bounds.Height, bounce)
		if !hitX && !hitY {
			continue
		}

		if hitX {
			e.stats.WallHits++
			if notify {
				e.bus.Publish(event.NewWallHitEvent(e, b.ID, event.AxisX, math.Abs(b.Velocity.X)))
			}
		}
		if hitY {
			e.stats.WallHits++
			if notify {
				e.bus.Publish(event.NewWallHitEvent(e, b.ID, event.AxisY, math.Abs(b.Velocity.Y)))
			}
		}
		b.Velocity = physics.Vector2D{X: vx, Y: vy}
		b.SetPosition(x, y)
	}
}

// clampAxis keeps [pos, pos+size] inside [0, limit]. A body larger than the
// world is pinned at 0.
func clampAxis(pos, vel, size, limit, bounce float64) (float64, float64, bool) {
	maxPos := math.Max(limit-size, 0)
	switch {
	case pos < 0:
		return 0, -vel * bounce, true
	case pos > maxPos:
		return maxPos, -vel * bounce, true
	default:
		return pos, vel, false
	}
}
