package renderer

import (
	"math"

	"github.com/gdamore/tcell/v2"
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/vec"

	"github.com/lixenwraith/shipwright/engine"
	"github.com/lixenwraith/shipwright/render"
	"github.com/lixenwraith/shipwright/vmath"
)

// maxGridDots bounds the dots drawn per frame on very fine grids
const maxGridDots = 20000

// GridRenderer dots the ship-local snap grid while building
type GridRenderer struct {
	world *engine.World
}

func NewGridRenderer(world *engine.World) *GridRenderer {
	return &GridRenderer{world: world}
}

func (r *GridRenderer) IsVisible(ctx render.RenderContext) bool {
	return ctx.Building() && ctx.GridCell > 0
}

func (r *GridRenderer) Render(ctx render.RenderContext, scr tcell.Screen) {
	xf := localShipTransform(r.world)
	lo, hi := localBounds(&ctx.Camera, xf)
	cell := ctx.GridCell

	x0, x1 := math.Ceil(lo.X/cell), math.Floor(hi.X/cell)
	y0, y1 := math.Ceil(lo.Y/cell), math.Floor(hi.Y/cell)
	if (x1-x0+1)*(y1-y0+1) > maxGridDots {
		return
	}
	for gx := x0; gx <= x1; gx++ {
		for gy := y0; gy <= y1; gy++ {
			p := vmath.Apply(xf, vec.Vec2{X: gx * cell, Y: gy * cell})
			render.DrawPoint(scr, &ctx.Camera, p, '·', render.StyleGrid)
		}
	}
}

// localBounds returns the ship-local box covering the viewport
func localBounds(cam *render.Camera, xf matrix.Matrix) (lo, hi vec.Vec2) {
	wlo, whi := cam.Bounds()
	corners := [4]vec.Vec2{
		vmath.ToLocal(xf, wlo),
		vmath.ToLocal(xf, whi),
		vmath.ToLocal(xf, vec.Vec2{X: wlo.X, Y: whi.Y}),
		vmath.ToLocal(xf, vec.Vec2{X: whi.X, Y: wlo.Y}),
	}
	lo, hi = corners[0], corners[0]
	for _, c := range corners[1:] {
		lo.X, lo.Y = math.Min(lo.X, c.X), math.Min(lo.Y, c.Y)
		hi.X, hi.Y = math.Max(hi.X, c.X), math.Max(hi.Y, c.Y)
	}
	return lo, hi
}
