package system

import (
	"log/slog"

	"github.com/google/uuid"
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"

	"github.com/lixenwraith/shipwright/component"
	"github.com/lixenwraith/shipwright/core"
	"github.com/lixenwraith/shipwright/engine"
	"github.com/lixenwraith/shipwright/event"
	"github.com/lixenwraith/shipwright/hull"
	"github.com/lixenwraith/shipwright/parameter"
)

// ShipSettings configures the local ship created on entering the game
type ShipSettings struct {
	Name string

	// ID is assigned on spawn when nil
	ID uuid.UUID

	// Hull seeds the outline; nil uses the default square hull
	Hull *path.Data

	// Transform places the ship in world space; zero means identity
	Transform matrix.Matrix
}

// SpawnLocalShip creates the locally controlled ship with its outline and starter engine
// Returns the existing ship if one is already present
func SpawnLocalShip(w *engine.World, settings ShipSettings) core.Entity {
	if res := engine.Single(w.Components.LocalShip); res.Status == engine.SingleFound {
		return res.Entity
	}

	id := settings.ID
	if id == uuid.Nil {
		id = uuid.New()
	}
	name := settings.Name
	if name == "" {
		name = parameter.DefaultShipName
	}
	initial := settings.Hull
	if initial == nil {
		initial = hull.SquareHull(parameter.ShipHullHalfExtent)
	}
	xf := settings.Transform
	if xf == (matrix.Matrix{}) {
		xf = matrix.Identity
	}

	ship := w.CreateEntity()
	w.Components.Ship.SetComponent(ship, component.ShipComponent{ID: id, Name: name})
	w.Components.LocalShip.SetComponent(ship, component.LocalShipComponent{})
	w.Components.Transform.SetComponent(ship, component.TransformComponent{Matrix: xf})
	w.Components.Outline.SetComponent(ship, component.OutlineComponent{Outline: hull.NewOutline(initial)})

	eng := w.CreateEntity()
	w.Components.Engine.SetComponent(eng, component.EngineComponent{
		Ship:     ship,
		Position: vec.Vec2{X: 0, Y: parameter.ShipEngineOffsetY},
	})

	w.PushEvent(event.EventShipSpawned, &event.ShipSpawnedPayload{Ship: ship, ID: id})
	w.Logger.Info("ship spawned", slog.Uint64("entity", uint64(ship)), slog.String("id", id.String()), slog.String("name", name))
	return ship
}

// shipTransform returns the ship's world transform, identity when absent
func shipTransform(w *engine.World, ship core.Entity) matrix.Matrix {
	if xf, ok := w.Components.Transform.GetComponent(ship); ok {
		return xf.Matrix
	}
	return matrix.Identity
}

// shipOutline returns the ship's outline; a ship without one is a wiring bug
func shipOutline(w *engine.World, ship core.Entity) *hull.Outline {
	oc, ok := w.Components.Outline.GetComponent(ship)
	if !ok || oc.Outline == nil {
		panic("system: local ship has no outline")
	}
	return oc.Outline
}

// LocalShipOutline returns the local ship's outline if the ship exists
func LocalShipOutline(w *engine.World) (*hull.Outline, bool) {
	res := engine.Single(w.Components.LocalShip)
	if res.Status != engine.SingleFound {
		return nil, false
	}
	oc, ok := w.Components.Outline.GetComponent(res.Entity)
	return oc.Outline, ok && oc.Outline != nil
}
