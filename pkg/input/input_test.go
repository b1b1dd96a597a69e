package input

import (
	"math"
	"testing"

	"github.com/opd-ai/go-antigravity/pkg/config"
	"github.com/opd-ai/go-antigravity/pkg/engine"
	"github.com/opd-ai/go-antigravity/pkg/event"
	"github.com/opd-ai/go-antigravity/pkg/logging"
	"github.com/opd-ai/go-antigravity/pkg/physics"
)

func newWorld(t *testing.T, mutate func(*config.Config)) *engine.Engine {
	t.Helper()
	cfg := config.DefaultConfig()
	cfg.World = config.WorldConfig{Width: 400, Height: 300}
	cfg.Physics.GravityEnabled = false
	cfg.Physics.Damping = 1
	cfg.Elements = nil
	if mutate != nil {
		mutate(cfg)
	}
	e, err := engine.New(cfg, engine.WithLogger(logging.Discard()))
	if err != nil {
		t.Fatalf("engine.New: %v", err)
	}
	return e
}

func add(t *testing.T, e *engine.Engine, x, y, w, h float64, static bool) *physics.Body {
	t.Helper()
	var (
		b   *physics.Body
		err error
	)
	if static {
		b, err = physics.NewStaticBody(x, y, w, h)
	} else {
		b, err = physics.NewBody(x, y, w, h, 1)
	}
	if err != nil {
		t.Fatalf("new body: %v", err)
	}
	if _, err := e.AddBody(b); err != nil {
		t.Fatalf("AddBody: %v", err)
	}
	return b
}

func TestTracker_Apply(t *testing.T) {
	e := newWorld(t, nil)
	b := add(t, e, 100, 100, 20, 20, false)
	tr := NewTracker(config.InputConfig{PointerStrength: 1, ScrollSensitivity: 0.5})

	// Inactive pointer: no repulsion.
	tr.Apply(e)
	e.Update(1)
	if !b.Velocity.IsZero() {
		t.Fatalf("body moved without an active pointer: %v", b.Velocity)
	}

	tr.MoveTo(90, 110)
	if p, ok := tr.Pointer(); !ok || p != (physics.Vector2D{X: 90, Y: 110}) {
		t.Fatalf("Pointer() = %v, %v", p, ok)
	}
	tr.Apply(e)
	e.Update(1)
	if b.Velocity.X <= 0 {
		t.Errorf("expected repulsion to +X, got %v", b.Velocity)
	}

	tr.Leave()
	tr.Apply(e)
	v := b.Velocity
	e.Update(1)
	if b.Velocity != v {
		t.Errorf("repulsion still active after Leave: %v -> %v", v, b.Velocity)
	}
}

func TestTracker_ScrollAccumulates(t *testing.T) {
	e := newWorld(t, nil)
	tr := NewTracker(config.InputConfig{ScrollSensitivity: 0.5})

	tr.Scroll(0, 4)
	tr.Scroll(0, 6)
	tr.Scroll(0, 0)
	tr.Apply(e)
	if got := e.ScrollVelocity(); got != (physics.Vector2D{Y: 5}) {
		t.Fatalf("scroll velocity = %v, want (0, 5)", got)
	}

	// No new wheel input: the engine keeps decaying its own value.
	e.Update(1)
	tr.Apply(e)
	if got := e.ScrollVelocity(); math.Abs(got.Y-4) > 1e-9 {
		t.Errorf("scroll velocity = %v, want (0, 4)", got)
	}
}

func TestTracker_SetStrength(t *testing.T) {
	tr := NewTracker(config.InputConfig{PointerStrength: 1})
	tests := []struct {
		in, want float64
	}{
		{2, 2},
		{0, 0},
		{-1, 0},
		{math.NaN(), 0},
		{math.Inf(1), 0},
	}
	for _, tc := range tests {
		tr.SetStrength(tc.in)
		if tr.Strength() != tc.want {
			t.Errorf("SetStrength(%g): got %g, want %g", tc.in, tr.Strength(), tc.want)
		}
	}
}

func TestPickBody(t *testing.T) {
	e := newWorld(t, nil)
	bottom := add(t, e, 0, 0, 100, 100, false)
	top := add(t, e, 50, 50, 100, 100, false)
	add(t, e, 200, 200, 50, 50, true)

	tests := []struct {
		name string
		p    physics.Vector2D
		want *physics.Body
	}{
		{"overlap picks later body", physics.Vector2D{X: 75, Y: 75}, top},
		{"only bottom", physics.Vector2D{X: 10, Y: 10}, bottom},
		{"static ignored", physics.Vector2D{X: 210, Y: 210}, nil},
		{"empty space", physics.Vector2D{X: 390, Y: 10}, nil},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := PickBody(e.Bodies(), tc.p); got != tc.want {
				t.Errorf("PickBody(%v) = %v, want %v", tc.p, got, tc.want)
			}
		})
	}
}

func TestDragController_Contract(t *testing.T) {
	e := newWorld(t, func(c *config.Config) { c.Physics.GravityEnabled = true })
	b := add(t, e, 100, 100, 40, 20, false)
	b.Velocity = physics.Vector2D{X: 3, Y: -2}

	var started, ended int
	e.EventBus().Subscribe(event.BodyDragStarted, func(event.Event) { started++ })
	e.EventBus().Subscribe(event.BodyDragEnded, func(event.Event) { ended++ })

	d := NewDragController(e, config.InputConfig{})
	got, ok := d.Begin(physics.Vector2D{X: 110, Y: 105})
	if !ok || got != b {
		t.Fatalf("Begin did not grab the body: %v %v", got, ok)
	}
	if !b.Dragged || !b.Velocity.IsZero() {
		t.Fatalf("grabbed body should be dragged with zero velocity: %+v", b)
	}
	if _, ok := d.Begin(physics.Vector2D{X: 110, Y: 105}); ok {
		t.Error("second Begin should fail while a drag is active")
	}

	d.Move(physics.Vector2D{X: 160, Y: 205})
	if b.Position != (physics.Vector2D{X: 150, Y: 200}) {
		t.Errorf("position %v, want (150, 200)", b.Position)
	}
	if b.AABB.MinX != 150 || b.AABB.MinY != 200 {
		t.Errorf("AABB not synced: %+v", b.AABB)
	}

	// Held bodies ignore gravity and integration.
	e.Update(1)
	if b.Position != (physics.Vector2D{X: 150, Y: 200}) {
		t.Errorf("dragged body moved during Update: %v", b.Position)
	}

	if released := d.End(); released != b {
		t.Fatalf("End returned %v", released)
	}
	if b.Dragged || !b.Velocity.IsZero() {
		t.Errorf("released body should be free with zero velocity: %+v", b)
	}
	if d.Held() != nil {
		t.Error("controller still holds a body")
	}
	if d.End() != nil {
		t.Error("End without a drag should return nil")
	}
	if started != 1 || ended != 1 {
		t.Errorf("drag events started=%d ended=%d, want 1 and 1", started, ended)
	}
}

func TestDragController_Throw(t *testing.T) {
	tests := []struct {
		name  string
		scale float64
		move  physics.Vector2D
		want  physics.Vector2D
	}{
		{"scaled delta", 0.5, physics.Vector2D{X: 8, Y: -4}, physics.Vector2D{X: 4, Y: -2}},
		{"limited to max speed", 1, physics.Vector2D{X: 300}, physics.Vector2D{X: 15}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			e := newWorld(t, nil)
			b := add(t, e, 100, 100, 20, 20, false)
			d := NewDragController(e, config.InputConfig{ThrowEnabled: true, ThrowScale: tc.scale})

			start := physics.Vector2D{X: 105, Y: 105}
			if !d.BeginBody(b, start) {
				t.Fatal("BeginBody failed")
			}
			d.Move(start.Add(tc.move))
			d.End()

			if math.Abs(b.Velocity.X-tc.want.X) > 1e-9 || math.Abs(b.Velocity.Y-tc.want.Y) > 1e-9 {
				t.Errorf("release velocity %v, want %v", b.Velocity, tc.want)
			}
		})
	}
}

func TestDragController_BeginBodyRejectsStatic(t *testing.T) {
	e := newWorld(t, nil)
	wall := add(t, e, 0, 0, 50, 50, true)
	d := NewDragController(e, config.InputConfig{})
	if d.BeginBody(wall, physics.Vector2D{X: 1, Y: 1}) {
		t.Error("static bodies must not be draggable")
	}
	if d.BeginBody(nil, physics.Vector2D{}) {
		t.Error("nil body must not be draggable")
	}
}
