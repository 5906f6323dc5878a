package component

import (
	"github.com/google/uuid"
	"seehuhn.de/go/geom/matrix"

	"github.com/lixenwraith/shipwright/hull"
)

// ShipComponent identifies a buildable ship
type ShipComponent struct {
	ID   uuid.UUID
	Name string
}

// LocalShipComponent tags the ship controlled by this process (singleton)
type LocalShipComponent struct{}

// TransformComponent places an entity in world space
type TransformComponent struct {
	Matrix matrix.Matrix
}

// OutlineComponent owns a ship's persistent hull geometry
// The pointer is shared; geometry changes go through hull.Outline
type OutlineComponent struct {
	Outline *hull.Outline
}
