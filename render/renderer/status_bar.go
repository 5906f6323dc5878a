package renderer

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/shipwright/core"
	"github.com/lixenwraith/shipwright/engine"
	"github.com/lixenwraith/shipwright/render"
)

const (
	titleText = "SHIPWRIGHT"
	startHint = "Enter: start   q: quit"
)

// StatusBarRenderer draws the mode line and the start menu
type StatusBarRenderer struct {
	world *engine.World
}

func NewStatusBarRenderer(world *engine.World) *StatusBarRenderer {
	return &StatusBarRenderer{world: world}
}

func (r *StatusBarRenderer) Render(ctx render.RenderContext, scr tcell.Screen) {
	if ctx.Height == 0 {
		return
	}
	if ctx.Mode.App == core.AppStartMenu {
		mid := ctx.Height / 2
		render.DrawText(scr, (ctx.Width-len(titleText))/2, mid-1, titleText, render.StyleStatus.Bold(true))
		render.DrawText(scr, (ctx.Width-len(startHint))/2, mid+1, startHint, render.StyleStatusDim)
	}

	row := ctx.Height - 1
	x := render.DrawText(scr, 0, row, " "+modeLabel(ctx.Mode)+" ", render.StyleStatus.Reverse(true))
	render.DrawText(scr, x+1, row, r.details(ctx), render.StyleStatusDim)
}

func (r *StatusBarRenderer) details(ctx render.RenderContext) string {
	switch {
	case ctx.Mode.App == core.AppStartMenu:
		return ""
	case !ctx.Building():
		return "f: build"
	}

	w := r.world
	vertices := 0
	if res := engine.Single(w.Components.LocalShip); res.Status == engine.SingleFound {
		if oc, ok := w.Components.Outline.GetComponent(res.Entity); ok && oc.Outline != nil {
			vertices = len(oc.Outline.Vertices())
		}
	}
	return fmt.Sprintf("grid %g  vertices %d  engines %d  |  0 none  1 wall  2 engine  f fly",
		ctx.GridCell, vertices, w.Components.Engine.CountEntities())
}

func modeLabel(m core.ModeContext) string {
	switch {
	case m.App == core.AppStartMenu:
		return "MENU"
	case m.Play == core.PlayFlying:
		return "FLYING"
	case m.Tool == core.ToolWall:
		return "BUILD:WALL"
	case m.Tool == core.ToolEngine:
		return "BUILD:ENGINE"
	}
	return "BUILD"
}
