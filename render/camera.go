// Package render draws the world onto a tcell screen.
package render

import (
	"math"

	"seehuhn.de/go/geom/vec"

	"github.com/lixenwraith/shipwright/parameter"
)

// Camera maps terminal cells to world coordinates
// World y grows upward, terminal rows grow downward
type Camera struct {
	Center vec.Vec2

	UnitsPerColumn float64
	UnitsPerRow    float64

	// Viewport size in cells
	Width  int
	Height int
}

// NewCamera returns a camera centered on the world origin
func NewCamera(width, height int) *Camera {
	return &Camera{
		UnitsPerColumn: parameter.CameraUnitsPerColumn,
		UnitsPerRow:    parameter.CameraUnitsPerRow,
		Width:          width,
		Height:         height,
	}
}

// Resize updates the viewport, keeping the center
func (c *Camera) Resize(width, height int) {
	c.Width = width
	c.Height = height
}

// CellToWorld returns the world position at the center of a cell
func (c *Camera) CellToWorld(col, row int) vec.Vec2 {
	return vec.Vec2{
		X: c.Center.X + (float64(col)+0.5-float64(c.Width)/2)*c.UnitsPerColumn,
		Y: c.Center.Y - (float64(row)+0.5-float64(c.Height)/2)*c.UnitsPerRow,
	}
}

// WorldToCell returns the cell containing p and whether it is on screen
func (c *Camera) WorldToCell(p vec.Vec2) (col, row int, visible bool) {
	col = int(math.Floor((p.X-c.Center.X)/c.UnitsPerColumn + float64(c.Width)/2))
	row = int(math.Floor((c.Center.Y-p.Y)/c.UnitsPerRow + float64(c.Height)/2))
	visible = col >= 0 && col < c.Width && row >= 0 && row < c.Height
	return col, row, visible
}

// Bounds returns the world-space corners of the viewport
func (c *Camera) Bounds() (lo, hi vec.Vec2) {
	halfW := float64(c.Width) / 2 * c.UnitsPerColumn
	halfH := float64(c.Height) / 2 * c.UnitsPerRow
	lo = vec.Vec2{X: c.Center.X - halfW, Y: c.Center.Y - halfH}
	hi = vec.Vec2{X: c.Center.X + halfW, Y: c.Center.Y + halfH}
	return lo, hi
}
