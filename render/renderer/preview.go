package renderer

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/shipwright/core"
	"github.com/lixenwraith/shipwright/engine"
	"github.com/lixenwraith/shipwright/render"
	"github.com/lixenwraith/shipwright/vmath"
)

// PreviewRenderer draws the wall tool's rubber band, its anchor and the snapped cursor
type PreviewRenderer struct {
	world *engine.World
}

func NewPreviewRenderer(world *engine.World) *PreviewRenderer {
	return &PreviewRenderer{world: world}
}

func (r *PreviewRenderer) IsVisible(ctx render.RenderContext) bool {
	return ctx.Building() && ctx.Mode.Tool != core.ToolNone
}

func (r *PreviewRenderer) Render(ctx render.RenderContext, scr tcell.Screen) {
	res := r.world.Resources
	xf := localShipTransform(r.world)
	cam := &ctx.Camera

	pending := &res.Build.Pending
	if seg, ok := pending.Preview(); ok {
		render.DrawLine(scr, cam, vmath.Apply(xf, seg.A), vmath.Apply(xf, seg.B), render.StylePreview)
	}
	if anchor, ok := pending.Anchor(); ok {
		render.DrawPoint(scr, cam, vmath.Apply(xf, anchor), 'o', render.StyleAnchor)
	}

	if cursor, ok := res.Cursor.Project(); ok {
		snapped := vmath.SnapVec(vmath.ToLocal(xf, cursor), ctx.GridCell)
		render.DrawPoint(scr, cam, vmath.Apply(xf, snapped), 'x', render.StyleAnchor)
	}
}
