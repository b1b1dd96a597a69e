// pkg/render/renderer.go
package render

import (
	"context"

	"github.com/opd-ai/go-antigravity/pkg/logging"
	"github.com/opd-ai/go-antigravity/pkg/physics"
)

// Renderer draws one frame of bodies.
type Renderer interface {
	Clear()
	RenderBody(body *physics.Body)
	Present()
}

// Frame clears r, draws bodies in order and presents the result.
func Frame(r Renderer, bodies []*physics.Body) {
	r.Clear()
	for _, b := range bodies {
		r.RenderBody(b)
	}
	r.Present()
}

// NullRenderer is a Renderer that only logs what it is asked to draw.
type NullRenderer struct {
	logger *logging.Logger
	bodies int
}

// NewNullRenderer creates a new NullRenderer with structured logging.
func NewNullRenderer() *NullRenderer {
	return NewNullRendererWithLogger(logging.NewLogger())
}

// NewNullRendererWithLogger creates a NullRenderer that logs to l.
func NewNullRendererWithLogger(l *logging.Logger) *NullRenderer {
	if l == nil {
		l = logging.Discard()
	}
	return &NullRenderer{logger: l}
}

// Clear implements Renderer.
func (d *NullRenderer) Clear() {
	d.bodies = 0
	d.logger.Debug(context.Background(), "Clear called")
}

// Present implements Renderer.
func (d *NullRenderer) Present() {
	d.logger.Debug(context.Background(), "Present called", "bodies", d.bodies)
}

// RenderBody implements Renderer.
func (d *NullRenderer) RenderBody(body *physics.Body) {
	ctx := context.Background()
	if body == nil {
		d.logger.Debug(ctx, "RenderBody called with nil body")
		return
	}
	d.bodies++
	d.logger.Debug(ctx, "RenderBody called",
		"body_id", body.ID,
		"label", body.Label,
		"x", body.Position.X,
		"y", body.Position.Y,
	)
}

var _ Renderer = (*NullRenderer)(nil)
