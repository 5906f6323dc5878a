package renderer

import (
	"github.com/gdamore/tcell/v2"
	"seehuhn.de/go/geom/matrix"

	"github.com/lixenwraith/shipwright/engine"
	"github.com/lixenwraith/shipwright/render"
	"github.com/lixenwraith/shipwright/vmath"
)

// HullRenderer draws every ship outline in world space
type HullRenderer struct {
	world *engine.World
}

func NewHullRenderer(world *engine.World) *HullRenderer {
	return &HullRenderer{world: world}
}

func (r *HullRenderer) Render(ctx render.RenderContext, scr tcell.Screen) {
	w := r.world
	for _, ship := range w.Components.Outline.GetAllEntities() {
		oc, ok := w.Components.Outline.GetComponent(ship)
		if !ok || oc.Outline == nil {
			continue
		}
		xf := matrix.Identity
		if tc, ok := w.Components.Transform.GetComponent(ship); ok {
			xf = tc.Matrix
		}
		for _, seg := range oc.Outline.Segments() {
			render.DrawLine(scr, &ctx.Camera, vmath.Apply(xf, seg.A), vmath.Apply(xf, seg.B), render.StyleHull)
		}
	}
}

// localShipTransform returns the local ship transform or identity when there is no single ship
func localShipTransform(w *engine.World) matrix.Matrix {
	res := engine.Single(w.Components.LocalShip)
	if res.Status != engine.SingleFound {
		return matrix.Identity
	}
	if tc, ok := w.Components.Transform.GetComponent(res.Entity); ok {
		return tc.Matrix
	}
	return matrix.Identity
}
