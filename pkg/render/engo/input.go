// pkg/render/engo/input.go
package engo

import (
	"github.com/EngoEngine/ecs"
	"github.com/EngoEngine/engo"

	"github.com/opd-ai/go-antigravity/pkg/engine"
	"github.com/opd-ai/go-antigravity/pkg/input"
	"github.com/opd-ai/go-antigravity/pkg/physics"
)

// Button names registered by SetupInputBindings
const (
	ButtonGravity  = "gravity"
	ButtonFriction = "friction"
	ButtonStronger = "stronger"
	ButtonWeaker   = "weaker"
	ButtonRespawn  = "respawn"
)

// strengthStep is how much one key press changes the pointer strength.
const strengthStep = 0.25

// MouseState is one frame of mouse input.
type MouseState struct {
	X, Y             float32
	ScrollX, ScrollY float32
	Action           engo.Action
	Button           engo.MouseButton
}

// InputSystem feeds Engo mouse and keyboard input into the tracker, the drag
// controller and the engine modifiers.
type InputSystem struct {
	engine  *engine.Engine
	tracker *input.Tracker
	drag    *input.DragController

	gravityOn  bool
	frictionOn bool

	// OnRespawn is called when the respawn key is pressed.
	OnRespawn func()
}

// NewInputSystem creates a new input system
func NewInputSystem(e *engine.Engine, tracker *input.Tracker, drag *input.DragController) *InputSystem {
	g, f := e.Modifiers()
	return &InputSystem{
		engine:     e,
		tracker:    tracker,
		drag:       drag,
		gravityOn:  g > 0,
		frictionOn: f > 0,
	}
}

// Remove satisfies the ecs.System interface
func (is *InputSystem) Remove(basic ecs.BasicEntity) {
	// Not used for input system
}

// Update reads the Engo input state for this frame.
func (is *InputSystem) Update(dt float32) {
	m := engo.Input.Mouse
	is.HandleMouse(MouseState{
		X:       m.X,
		Y:       m.Y,
		ScrollX: m.ScrollX,
		ScrollY: m.ScrollY,
		Action:  m.Action,
		Button:  m.Button,
	})

	is.handleKeys(
		engo.Input.Button(ButtonGravity).JustPressed(),
		engo.Input.Button(ButtonFriction).JustPressed(),
		engo.Input.Button(ButtonStronger).JustPressed(),
		engo.Input.Button(ButtonWeaker).JustPressed(),
		engo.Input.Button(ButtonRespawn).JustPressed(),
	)
}

// HandleMouse applies one frame of mouse input. The pointer is inactive while
// it is outside the world.
func (is *InputSystem) HandleMouse(m MouseState) {
	p := physics.Vector2D{X: float64(m.X), Y: float64(m.Y)}
	bounds := is.engine.Bounds()
	if p.X >= 0 && p.Y >= 0 && p.X < bounds.Width && p.Y < bounds.Height {
		is.tracker.MoveTo(p.X, p.Y)
	} else {
		is.tracker.Leave()
	}

	if m.ScrollX != 0 || m.ScrollY != 0 {
		is.tracker.Scroll(float64(m.ScrollX), float64(m.ScrollY))
	}

	switch {
	case m.Action == engo.Press && m.Button == engo.MouseButtonLeft:
		is.drag.Begin(p)
	case m.Action == engo.Release && m.Button == engo.MouseButtonLeft:
		is.drag.Move(p)
		is.drag.End()
	default:
		is.drag.Move(p)
	}
}

func (is *InputSystem) handleKeys(gravity, friction, stronger, weaker, respawn bool) {
	if gravity {
		is.gravityOn = !is.gravityOn
	}
	if friction {
		is.frictionOn = !is.frictionOn
	}
	if gravity || friction {
		is.engine.SetModifiers(onOff(is.gravityOn), onOff(is.frictionOn))
	}

	if stronger {
		is.tracker.SetStrength(is.tracker.Strength() + strengthStep)
	}
	if weaker {
		is.tracker.SetStrength(is.tracker.Strength() - strengthStep)
	}

	if respawn && is.OnRespawn != nil {
		is.drag.End()
		is.OnRespawn()
	}
}

func onOff(on bool) float64 {
	if on {
		return 1
	}
	return 0
}

// SetupInputBindings sets up the key bindings for the playground
func SetupInputBindings() {
	engo.Input.RegisterButton(ButtonGravity, engo.KeyG)
	engo.Input.RegisterButton(ButtonFriction, engo.KeyF)
	engo.Input.RegisterButton(ButtonStronger, engo.KeyArrowUp)
	engo.Input.RegisterButton(ButtonWeaker, engo.KeyArrowDown)
	engo.Input.RegisterButton(ButtonRespawn, engo.KeyR)
}
