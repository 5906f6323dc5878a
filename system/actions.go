package system

import (
	"log/slog"

	"github.com/lixenwraith/shipwright/engine"
	"github.com/lixenwraith/shipwright/event"
	"github.com/lixenwraith/shipwright/mode"
)

// ModeActions returns the hook implementations referenced by the mode tree
func ModeActions(ship ShipSettings) mode.Actions {
	return mode.Actions{
		mode.ActionSpawnShip: func(w *engine.World, _ any) {
			SpawnLocalShip(w, ship)
		},
		mode.ActionResetBuildTool: func(w *engine.World, _ any) {
			w.Resources.Build.Pending.Clear()
		},
		mode.ActionDiscardAnchor: discardAnchor,
	}
}

// discardAnchor drops an unfinished wall without merging it
func discardAnchor(w *engine.World, _ any) {
	pending := &w.Resources.Build.Pending
	anchor, _ := pending.Anchor()
	if !pending.Clear() {
		return
	}

	payload := &event.WallPayload{A: anchor, B: anchor}
	if res := engine.Single(w.Components.LocalShip); res.Status == engine.SingleFound {
		payload.Ship = res.Entity
	}
	w.PushEvent(event.EventAnchorDiscarded, payload)
	w.Logger.Debug("anchor discarded", slog.Float64("x", anchor.X), slog.Float64("y", anchor.Y))
}
