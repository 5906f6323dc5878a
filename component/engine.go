package component

import (
	"seehuhn.de/go/geom/vec"

	"github.com/lixenwraith/shipwright/core"
)

// EngineComponent is a thruster mounted on a ship
type EngineComponent struct {
	// Ship is the owning ship entity
	Ship core.Entity
	// Position in the ship's local space, grid-aligned
	Position vec.Vec2
}
