package render

import (
	"github.com/lixenwraith/shipwright/core"
	"github.com/lixenwraith/shipwright/engine"
)

// RenderContext provides frame state for renderers, passed by value
type RenderContext struct {
	Frame    int64
	Mode     core.ModeContext
	GridCell float64

	Camera Camera

	// Screen dimensions; the camera viewport excludes the status rows
	Width  int
	Height int
}

// NewRenderContext snapshots frame state; caller holds the world lock
func NewRenderContext(w *engine.World, cam *Camera, width, height int) RenderContext {
	return RenderContext{
		Frame:    w.Resources.Time.FrameNumber,
		Mode:     w.Resources.Mode.Current,
		GridCell: w.Resources.Config.GridCell,
		Camera:   *cam,
		Width:    width,
		Height:   height,
	}
}

// Building reports whether build overlays should be drawn
func (c RenderContext) Building() bool {
	return c.Mode.App == core.AppGame && c.Mode.Play == core.PlayBuilding
}
