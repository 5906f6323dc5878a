package system

import (
	"log/slog"

	"github.com/lixenwraith/shipwright/core"
	"github.com/lixenwraith/shipwright/engine"
	"github.com/lixenwraith/shipwright/event"
	"github.com/lixenwraith/shipwright/hull"
	"github.com/lixenwraith/shipwright/input"
	"github.com/lixenwraith/shipwright/parameter"
	"github.com/lixenwraith/shipwright/vmath"
)

// WallToolSystem builds walls from two clicks while the wall tool is active
// First press anchors a vertex; second press merges [anchor, cursor] into the ship outline
type WallToolSystem struct {
	world *engine.World
}

func NewWallToolSystem(world *engine.World) *WallToolSystem {
	return &WallToolSystem{world: world}
}

// Name returns system's name
func (s *WallToolSystem) Name() string {
	return "wall_tool"
}

func (s *WallToolSystem) Priority() int {
	return parameter.PriorityWallTool
}

func (s *WallToolSystem) Update() {
	w := s.world
	res := w.Resources
	if res.Mode.Current.Tool != core.ToolWall {
		return
	}

	cursor, ok := res.Cursor.Project()
	if !ok {
		return
	}

	ship := engine.MustSingle(w.Components.LocalShip, "local ship")
	point := vmath.SnapVec(vmath.ToLocal(shipTransform(w, ship), cursor), res.Config.GridCell)
	pending := &res.Build.Pending

	if res.Input.Edges.Has(input.ActionPrimary) {
		if pending.HasAnchor() {
			seg, _ := hull.Commit(pending, shipOutline(w, ship), point)
			w.PushEvent(event.EventWallCommitted, &event.WallPayload{Ship: ship, A: seg.A, B: seg.B})
			w.Logger.Info("wall committed",
				slog.Uint64("ship", uint64(ship)),
				slog.Float64("ax", seg.A.X), slog.Float64("ay", seg.A.Y),
				slog.Float64("bx", seg.B.X), slog.Float64("by", seg.B.Y),
			)
		} else {
			pending.SetAnchor(point)
			w.PushEvent(event.EventAnchorPlaced, &event.WallPayload{Ship: ship, A: point, B: point})
			w.Logger.Debug("anchor placed", slog.Float64("x", point.X), slog.Float64("y", point.Y))
		}
	}

	pending.UpdatePreview(point)
}
