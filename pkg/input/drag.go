package input

import (
	"github.com/opd-ai/go-antigravity/pkg/config"
	"github.com/opd-ai/go-antigravity/pkg/engine"
	"github.com/opd-ai/go-antigravity/pkg/event"
	"github.com/opd-ai/go-antigravity/pkg/physics"
)

// DragController lets the pointer pick up, move and release one body at a
// time. A held body is immovable to the engine until it is released.
type DragController struct {
	engine *engine.Engine

	throwEnabled bool
	throwScale   float64

	body   *physics.Body
	offset physics.Vector2D
	last   physics.Vector2D
	delta  physics.Vector2D
}

// NewDragController creates a controller for bodies registered with e.
func NewDragController(e *engine.Engine, cfg config.InputConfig) *DragController {
	return &DragController{
		engine:       e,
		throwEnabled: cfg.ThrowEnabled,
		throwScale:   cfg.ThrowScale,
	}
}

// PickBody returns the topmost movable body under p. Later bodies are drawn
// above earlier ones.
func PickBody(bodies []*physics.Body, p physics.Vector2D) *physics.Body {
	for i := len(bodies) - 1; i >= 0; i-- {
		b := bodies[i]
		if !b.Static && b.AABB.Contains(p) {
			return b
		}
	}
	return nil
}

// Begin grabs the topmost body under p. It reports false when nothing was
// grabbed or a drag is already in progress.
func (d *DragController) Begin(p physics.Vector2D) (*physics.Body, bool) {
	if d.body != nil {
		return nil, false
	}
	b := PickBody(d.engine.Bodies(), p)
	if b == nil {
		return nil, false
	}
	d.grab(b, p)
	return b, true
}

// BeginBody grabs b at pointer position p.
func (d *DragController) BeginBody(b *physics.Body, p physics.Vector2D) bool {
	if d.body != nil || b == nil || b.Static {
		return false
	}
	d.grab(b, p)
	return true
}

func (d *DragController) grab(b *physics.Body, p physics.Vector2D) {
	b.Dragged = true
	b.Velocity = physics.Vector2D{}
	b.Acceleration = physics.Vector2D{}

	d.body = b
	d.offset = p.Sub(b.Position)
	d.last = p
	d.delta = physics.Vector2D{}

	logger, ctx := d.engine.Logger()
	logger.Debug(ctx, "drag started", "body_id", b.ID, "label", b.Label)
	d.publish(event.BodyDragStarted, b)
}

// Move places the held body under p, keeping the grab offset.
func (d *DragController) Move(p physics.Vector2D) {
	if d.body == nil || !p.IsFinite() {
		return
	}
	d.delta = p.Sub(d.last)
	d.last = p
	pos := p.Sub(d.offset)
	d.body.SetPosition(pos.X, pos.Y)
}

// End releases the held body. Its velocity stays zero unless throwing is
// enabled, in which case it leaves with the last pointer delta.
func (d *DragController) End() *physics.Body {
	b := d.body
	if b == nil {
		return nil
	}
	b.Dragged = false
	b.Velocity = physics.Vector2D{}
	if d.throwEnabled {
		b.Velocity = d.delta.Scale(d.throwScale).Limit(d.engine.Params().MaxSpeed)
	}

	d.body = nil
	d.delta = physics.Vector2D{}

	logger, ctx := d.engine.Logger()
	logger.Debug(ctx, "drag ended", "body_id", b.ID, "label", b.Label, "vx", b.Velocity.X, "vy", b.Velocity.Y)
	d.publish(event.BodyDragEnded, b)
	return b
}

// Held returns the body being dragged, or nil.
func (d *DragController) Held() *physics.Body {
	return d.body
}

func (d *DragController) publish(t event.Type, b *physics.Body) {
	bus := d.engine.EventBus()
	if bus.HasSubscribers(t) {
		bus.Publish(event.NewBodyEvent(t, d, b))
	}
}
