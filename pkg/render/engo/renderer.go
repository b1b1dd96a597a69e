// pkg/render/engo/renderer.go
package engo

import (
	"github.com/EngoEngine/ecs"
	"github.com/EngoEngine/engo"
	"github.com/EngoEngine/engo/common"

	"github.com/opd-ai/go-antigravity/pkg/physics"
	"github.com/opd-ai/go-antigravity/pkg/render"
)

// renderSystem is the subset of common.RenderSystem the renderer drives.
type renderSystem interface {
	Add(basic *ecs.BasicEntity, render *common.RenderComponent, space *common.SpaceComponent)
	Remove(basic ecs.BasicEntity)
}

type bodyEntity struct {
	ecs.BasicEntity
	common.RenderComponent
	common.SpaceComponent

	seen bool
}

// BodyRenderer implements render.Renderer by keeping one Engo entity per body
// in sync with the body's rectangle. Engo's RenderSystem does the drawing.
type BodyRenderer struct {
	system   renderSystem
	palette  Palette
	entities map[physics.BodyID]*bodyEntity
}

// NewBodyRenderer creates a renderer feeding rs.
func NewBodyRenderer(rs renderSystem, palette Palette) *BodyRenderer {
	return &BodyRenderer{
		system:   rs,
		palette:  palette,
		entities: make(map[physics.BodyID]*bodyEntity),
	}
}

// Clear implements render.Renderer. Entities not rendered again before
// Present are removed.
func (r *BodyRenderer) Clear() {
	for _, e := range r.entities {
		e.seen = false
	}
}

// RenderBody implements render.Renderer
func (r *BodyRenderer) RenderBody(b *physics.Body) {
	if b == nil {
		return
	}
	e := r.getOrCreate(b)
	e.seen = true

	e.SpaceComponent.Position = engo.Point{X: float32(b.Position.X), Y: float32(b.Position.Y)}
	e.SpaceComponent.Width = float32(b.Width)
	e.SpaceComponent.Height = float32(b.Height)
	e.RenderComponent.Drawable = r.palette.Drawable(b)
	e.RenderComponent.Color = r.palette.Fill(b)
}

// Present implements render.Renderer
func (r *BodyRenderer) Present() {
	for id, e := range r.entities {
		if !e.seen {
			r.system.Remove(e.BasicEntity)
			delete(r.entities, id)
		}
	}
}

// Len returns the number of live entities.
func (r *BodyRenderer) Len() int {
	return len(r.entities)
}

func (r *BodyRenderer) getOrCreate(b *physics.Body) *bodyEntity {
	if e, exists := r.entities[b.ID]; exists {
		return e
	}

	e := &bodyEntity{BasicEntity: ecs.NewBasic()}
	e.RenderComponent = common.RenderComponent{
		Drawable: r.palette.Drawable(b),
		Color:    r.palette.Fill(b),
	}
	e.SpaceComponent = common.SpaceComponent{
		Position: engo.Point{X: float32(b.Position.X), Y: float32(b.Position.Y)},
		Width:    float32(b.Width),
		Height:   float32(b.Height),
	}
	r.system.Add(&e.BasicEntity, &e.RenderComponent, &e.SpaceComponent)
	r.entities[b.ID] = e
	return e
}

var _ render.Renderer = (*BodyRenderer)(nil)
