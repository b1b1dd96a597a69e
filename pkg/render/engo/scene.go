// pkg/render/engo/scene.go
package engo

import (
	"context"

	"github.com/EngoEngine/ecs"
	"github.com/EngoEngine/engo"
	"github.com/EngoEngine/engo/common"

	"github.com/opd-ai/go-antigravity/pkg/config"
	"github.com/opd-ai/go-antigravity/pkg/engine"
	"github.com/opd-ai/go-antigravity/pkg/input"
	"github.com/opd-ai/go-antigravity/pkg/logging"
)

// SceneType is the Engo scene name of the playground.
const SceneType = "AntiGravityScene"

// Scene is the windowed playground: the configured elements float in the
// window, flee the pointer, follow the wheel and can be dragged around.
type Scene struct {
	world   *ecs.World
	cfg     *config.Config
	engine  *engine.Engine
	palette Palette

	tracker  *input.Tracker
	drag     *input.DragController
	renderer *BodyRenderer
	input    *InputSystem
	physics  *PhysicsSystem
	hud      *HUDSystem

	logger *logging.Logger
	ctx    context.Context
}

// NewScene creates a scene driving e. cfg supplies the input settings and the
// elements restored on respawn.
func NewScene(cfg *config.Config, e *engine.Engine) *Scene {
	logger, ctx := e.Logger()
	return &Scene{
		world:   &ecs.World{},
		cfg:     cfg,
		engine:  e,
		palette: DefaultPalette(),
		tracker: input.NewTracker(cfg.Input),
		drag:    input.NewDragController(e, cfg.Input),
		logger:  logger,
		ctx:     ctx,
	}
}

// Type returns the scene type (required by Engo)
func (scene *Scene) Type() string {
	return SceneType
}

// Preload is called before the scene starts (required by Engo)
func (scene *Scene) Preload() {
	if err := LoadHUDFont(); err != nil {
		scene.logger.Error(scene.ctx, "failed to load HUD font", err)
	}
}

// Setup is called when the scene starts (required by Engo)
func (scene *Scene) Setup(u engo.Updater) {
	w, ok := u.(*ecs.World)
	if !ok {
		w = &ecs.World{}
	}
	scene.world = w

	common.SetBackground(scene.palette.Background)
	SetupInputBindings()

	renderSystem := &common.RenderSystem{}
	scene.world.AddSystem(renderSystem)

	scene.renderer = NewBodyRenderer(renderSystem, scene.palette)

	scene.input = NewInputSystem(scene.engine, scene.tracker, scene.drag)
	scene.input.OnRespawn = scene.Respawn
	scene.world.AddSystem(scene.input)

	scene.physics = NewPhysicsSystem(scene.engine, scene.tracker, scene.renderer)
	scene.world.AddSystem(scene.physics)

	scene.hud = NewHUDSystem(scene.engine, scene.tracker)
	if err := scene.hud.Attach(renderSystem, scene.palette.Text); err != nil {
		scene.logger.Error(scene.ctx, "HUD disabled", err)
	}
	scene.world.AddSystem(scene.hud)

	engo.Mailbox.Listen(engo.WindowResizeMessage{}.Type(), func(msg engo.Message) {
		resize, ok := msg.(engo.WindowResizeMessage)
		if !ok {
			return
		}
		scene.Resize(float64(resize.NewWidth), float64(resize.NewHeight))
	})

	scene.logger.Info(scene.ctx, "scene ready", "bodies", scene.engine.Len())
}

// Resize moves the world walls to the new window size.
func (scene *Scene) Resize(width, height float64) {
	scene.engine.SetBounds(width, height)
}

// Respawn replaces every body with the configured elements.
func (scene *Scene) Respawn() {
	scene.engine.Reset()
	for i, el := range scene.cfg.Elements {
		body, err := engine.BodyFromElement(el, scene.cfg.Physics.DefaultBounce)
		if err == nil {
			_, err = scene.engine.AddBody(body)
		}
		if err != nil {
			scene.logger.Error(scene.ctx, "respawn skipped element", err, "index", i, "label", el.Label)
		}
	}
	scene.logger.Info(scene.ctx, "respawned", "bodies", scene.engine.Len())
}

// Exit is called when the scene is exiting (required by Engo)
func (scene *Scene) Exit() {
	scene.drag.End()
	scene.logger.Info(scene.ctx, "scene exit", "tick", scene.engine.Tick())
}
