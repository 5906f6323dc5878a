package system

import (
	"log/slog"

	"github.com/lixenwraith/shipwright/component"
	"github.com/lixenwraith/shipwright/core"
	"github.com/lixenwraith/shipwright/engine"
	"github.com/lixenwraith/shipwright/event"
	"github.com/lixenwraith/shipwright/input"
	"github.com/lixenwraith/shipwright/parameter"
	"github.com/lixenwraith/shipwright/vmath"
)

// EngineToolSystem mounts an engine at the snapped cursor on each press
type EngineToolSystem struct {
	world *engine.World
}

func NewEngineToolSystem(world *engine.World) *EngineToolSystem {
	return &EngineToolSystem{world: world}
}

// Name returns system's name
func (s *EngineToolSystem) Name() string {
	return "engine_tool"
}

func (s *EngineToolSystem) Priority() int {
	return parameter.PriorityEngineTool
}

func (s *EngineToolSystem) Update() {
	w := s.world
	res := w.Resources
	if res.Mode.Current.Tool != core.ToolEngine || !res.Input.Edges.Has(input.ActionPrimary) {
		return
	}

	cursor, ok := res.Cursor.Project()
	if !ok {
		return
	}

	ship := engine.MustSingle(w.Components.LocalShip, "local ship")
	point := vmath.SnapVec(vmath.ToLocal(shipTransform(w, ship), cursor), res.Config.GridCell)

	eng := w.CreateEntity()
	w.Components.Engine.SetComponent(eng, component.EngineComponent{Ship: ship, Position: point})

	w.PushEvent(event.EventEnginePlaced, &event.EnginePlacedPayload{Ship: ship, Engine: eng, Position: point})
	w.Logger.Info("engine placed", slog.Uint64("ship", uint64(ship)), slog.Float64("x", point.X), slog.Float64("y", point.Y))
}
