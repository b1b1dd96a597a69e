// pkg/render/engo/hud.go
package engo

import (
	"bytes"
	"fmt"
	"image/color"

	"github.com/EngoEngine/ecs"
	"github.com/EngoEngine/engo"
	"github.com/EngoEngine/engo/common"
	"golang.org/x/image/font/gofont/gomono"

	"github.com/opd-ai/go-antigravity/pkg/engine"
	"github.com/opd-ai/go-antigravity/pkg/input"
)

// HUDFontURL is the resource name the HUD font is registered under.
const HUDFontURL = "gomono.ttf"

// LoadHUDFont registers the embedded Go Mono font with Engo's file loader.
// Call it from a scene's Preload.
func LoadHUDFont() error {
	return engo.Files.LoadReaderData(HUDFontURL, bytes.NewReader(gomono.TTF))
}

// HUDSystem draws a one-line status readout in the top-left corner.
type HUDSystem struct {
	engine  *engine.Engine
	tracker *input.Tracker

	font *common.Font
	text hudEntity
	last string
}

type hudEntity struct {
	ecs.BasicEntity
	common.RenderComponent
	common.SpaceComponent
}

// NewHUDSystem creates a new HUD system
func NewHUDSystem(e *engine.Engine, tracker *input.Tracker) *HUDSystem {
	return &HUDSystem{
		engine:  e,
		tracker: tracker,
	}
}

// Attach creates the font and adds the text entity to rs. The font must have
// been loaded with LoadHUDFont.
func (hud *HUDSystem) Attach(rs renderSystem, textColor color.Color) error {
	hud.font = &common.Font{
		URL:  HUDFontURL,
		FG:   textColor,
		Size: 14,
	}
	if err := hud.font.CreatePreloaded(); err != nil {
		return fmt.Errorf("creating HUD font: %w", err)
	}

	hud.text = hudEntity{BasicEntity: ecs.NewBasic()}
	hud.text.RenderComponent = common.RenderComponent{
		Drawable: common.Text{Font: hud.font, Text: hud.StatusLine()},
	}
	hud.text.SetZIndex(10)
	hud.text.SpaceComponent = common.SpaceComponent{Position: engo.Point{X: 8, Y: 8}}
	rs.Add(&hud.text.BasicEntity, &hud.text.RenderComponent, &hud.text.SpaceComponent)
	return nil
}

// Remove satisfies the ecs.System interface
func (hud *HUDSystem) Remove(basic ecs.BasicEntity) {
	// Not used for HUD system
}

// Update refreshes the status text when it changes.
func (hud *HUDSystem) Update(dt float32) {
	if hud.font == nil {
		return
	}
	line := hud.StatusLine()
	if line == hud.last {
		return
	}
	hud.last = line
	hud.text.Drawable = common.Text{Font: hud.font, Text: line}
}

// StatusLine formats the engine state shown by the HUD.
func (hud *HUDSystem) StatusLine() string {
	g, f := hud.engine.Modifiers()
	strength := 0.0
	if hud.tracker != nil {
		strength = hud.tracker.Strength()
	}
	return fmt.Sprintf("bodies %d  energy %.2f  gravity %s  friction %s  push %.2f",
		hud.engine.Len(),
		hud.engine.TotalKineticEnergy(),
		onOffLabel(g > 0),
		onOffLabel(f > 0),
		strength,
	)
}

func onOffLabel(on bool) string {
	if on {
		return "on"
	}
	return "off"
}
