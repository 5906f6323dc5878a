package event

import (
	"github.com/google/uuid"
	"seehuhn.de/go/geom/vec"

	"github.com/lixenwraith/shipwright/core"
)

// ModeChangedPayload carries the settled mode context before and after a frame
type ModeChangedPayload struct {
	Prev core.ModeContext
	Next core.ModeContext
}

// WallPayload describes a wall tool action in ship-local coordinates
// For EventAnchorPlaced and EventAnchorDiscarded only A is meaningful
type WallPayload struct {
	Ship core.Entity
	A, B vec.Vec2
}

// EnginePlacedPayload identifies a placed engine
type EnginePlacedPayload struct {
	Ship     core.Entity
	Engine   core.Entity
	Position vec.Vec2
}

// ShipSpawnedPayload identifies the spawned ship
type ShipSpawnedPayload struct {
	Ship core.Entity
	ID   uuid.UUID
}
