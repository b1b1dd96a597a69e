// pkg/render/engo/palette.go
package engo

import (
	"image/color"

	"github.com/EngoEngine/engo/common"

	"github.com/opd-ai/go-antigravity/pkg/physics"
)

// Palette picks the look of each body.
type Palette struct {
	Dynamic    []color.Color
	Static     color.Color
	Border     color.Color
	HeldBorder color.Color
	Background color.Color
	Text       color.Color
}

// DefaultPalette returns the playground colors.
func DefaultPalette() Palette {
	return Palette{
		Dynamic: []color.Color{
			color.RGBA{66, 133, 244, 255}, // blue
			color.RGBA{219, 68, 55, 255},  // red
			color.RGBA{244, 180, 0, 255},  // yellow
			color.RGBA{15, 157, 88, 255},  // green
		},
		Static:     color.RGBA{189, 189, 189, 255},
		Border:     color.RGBA{60, 64, 67, 255},
		HeldBorder: color.RGBA{0, 0, 0, 255},
		Background: color.White,
		Text:       color.RGBA{60, 64, 67, 255},
	}
}

// Fill returns the fill color of b.
func (p Palette) Fill(b *physics.Body) color.Color {
	if b.Static || len(p.Dynamic) == 0 {
		return p.Static
	}
	return p.Dynamic[int(b.ID%physics.BodyID(len(p.Dynamic)))]
}

// Drawable returns the rectangle used for b. Held bodies get a thicker border.
func (p Palette) Drawable(b *physics.Body) common.Rectangle {
	if b.Dragged {
		return common.Rectangle{BorderWidth: 3, BorderColor: p.HeldBorder}
	}
	return common.Rectangle{BorderWidth: 1, BorderColor: p.Border}
}
