// Package renderer holds the concrete renderers for ships, build overlays and the status bar.
package renderer

import (
	"github.com/lixenwraith/shipwright/engine"
	"github.com/lixenwraith/shipwright/render"
)

// RegisterAll wires the standard renderers into o
func RegisterAll(o *render.Orchestrator, w *engine.World) {
	o.Register(NewGridRenderer(w), render.PriorityGrid)
	o.Register(NewHullRenderer(w), render.PriorityHull)
	o.Register(NewEngineRenderer(w), render.PriorityEngine)
	o.Register(NewPreviewRenderer(w), render.PriorityPreview)
	o.Register(NewStatusBarRenderer(w), render.PriorityUI)
}
