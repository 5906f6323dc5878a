package renderer

import (
	"github.com/gdamore/tcell/v2"
	"seehuhn.de/go/geom/matrix"

	"github.com/lixenwraith/shipwright/engine"
	"github.com/lixenwraith/shipwright/render"
	"github.com/lixenwraith/shipwright/vmath"
)

// EngineRenderer marks mounted engines
type EngineRenderer struct {
	world *engine.World
}

func NewEngineRenderer(world *engine.World) *EngineRenderer {
	return &EngineRenderer{world: world}
}

func (r *EngineRenderer) Render(ctx render.RenderContext, scr tcell.Screen) {
	w := r.world
	for _, e := range w.Components.Engine.GetAllEntities() {
		ec, ok := w.Components.Engine.GetComponent(e)
		if !ok {
			continue
		}
		xf := matrix.Identity
		if tc, ok := w.Components.Transform.GetComponent(ec.Ship); ok {
			xf = tc.Matrix
		}
		render.DrawPoint(scr, &ctx.Camera, vmath.Apply(xf, ec.Position), 'E', render.StyleEngine)
	}
}
