package render

import (
	"bufio"
	"io"
	"math"
	"strings"
	"unicode"

	"github.com/opd-ai/go-antigravity/pkg/physics"
)

const clearScreen = "\033[H\033[2J"

// TerminalRenderer draws bodies as filled character blocks on a fixed grid
// that covers the whole world.
type TerminalRenderer struct {
	out    io.Writer
	width  int
	height int
	buffer [][]rune

	// cell size in world units
	scaleX float64
	scaleY float64

	// ClearScreen emits an ANSI clear before every frame.
	ClearScreen bool
}

// NewTerminalRenderer creates a renderer of width x height cells mapping a
// world of worldWidth x worldHeight onto it.
func NewTerminalRenderer(out io.Writer, width, height int, worldWidth, worldHeight float64) *TerminalRenderer {
	width = max(width, 1)
	height = max(height, 1)
	buffer := make([][]rune, height)
	for i := range buffer {
		buffer[i] = make([]rune, width)
	}

	r := &TerminalRenderer{
		out:    out,
		width:  width,
		height: height,
		buffer: buffer,
	}
	r.SetWorldSize(worldWidth, worldHeight)
	r.Clear()
	return r
}

// SetWorldSize rescales the grid after a world resize.
func (r *TerminalRenderer) SetWorldSize(worldWidth, worldHeight float64) {
	if !(worldWidth > 0) || !(worldHeight > 0) {
		return
	}
	r.scaleX = worldWidth / float64(r.width)
	r.scaleY = worldHeight / float64(r.height)
}

// worldToCell converts world coordinates to a cell index
func (r *TerminalRenderer) worldToCell(x, y float64) (int, int) {
	return int(math.Floor(x / r.scaleX)), int(math.Floor(y / r.scaleY))
}

// Clear implements Renderer
func (r *TerminalRenderer) Clear() {
	for y := range r.buffer {
		for x := range r.buffer[y] {
			r.buffer[y][x] = ' '
		}
	}
}

// RenderBody implements Renderer. Static bodies are drawn with '#', held
// bodies with '@' and the rest with the first letter of their label.
func (r *TerminalRenderer) RenderBody(body *physics.Body) {
	if body == nil || !body.Position.IsFinite() {
		return
	}
	symbol := bodySymbol(body)

	minX, minY := r.worldToCell(body.AABB.MinX, body.AABB.MinY)
	maxX, maxY := r.worldToCell(body.AABB.MaxX, body.AABB.MaxY)
	// A body always covers at least the cell its corner is in.
	maxX = max(maxX, minX+1)
	maxY = max(maxY, minY+1)

	for y := max(minY, 0); y < min(maxY, r.height); y++ {
		for x := max(minX, 0); x < min(maxX, r.width); x++ {
			r.buffer[y][x] = symbol
		}
	}
}

func bodySymbol(body *physics.Body) rune {
	switch {
	case body.Static:
		return '#'
	case body.Dragged:
		return '@'
	}
	for _, c := range body.Label {
		if unicode.IsLetter(c) || unicode.IsDigit(c) {
			return c
		}
	}
	return '*'
}

// Present implements Renderer
func (r *TerminalRenderer) Present() {
	w := bufio.NewWriter(r.out)
	if r.ClearScreen {
		w.WriteString(clearScreen)
	}

	border := "+" + strings.Repeat("-", r.width) + "+\n"
	w.WriteString(border)
	for y := range r.buffer {
		w.WriteByte('|')
		w.WriteString(string(r.buffer[y]))
		w.WriteString("|\n")
	}
	w.WriteString(border)
	w.Flush()
}

// String returns the current buffer without borders.
func (r *TerminalRenderer) String() string {
	var sb strings.Builder
	for y := range r.buffer {
		sb.WriteString(string(r.buffer[y]))
		sb.WriteByte('\n')
	}
	return sb.String()
}

var _ Renderer = (*TerminalRenderer)(nil)
