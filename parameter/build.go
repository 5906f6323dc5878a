package parameter

// Build mode geometry, in ship-local world units
const (
	// DefaultGridCell is the wall tool's snapping step
	DefaultGridCell = 20.0

	// ShipHullHalfExtent is half the side of the square hull a fresh ship spawns with
	ShipHullHalfExtent = 5.0

	// ShipEngineOffsetY places the starter engine on the hull's lower edge
	ShipEngineOffsetY = -5.0

	// DefaultShipName labels the locally controlled ship
	DefaultShipName = "player"
)
