package event

// EventType represents the type of game event
type EventType int

const (
	// EventModeChanged reports a change of any mode layer
	// Trigger: ModeSystem | Payload: *ModeChangedPayload
	EventModeChanged EventType = iota + 1

	// EventBuildEntered fires when play mode becomes Building
	// Trigger: mode FSM on_enter | Payload: nil
	EventBuildEntered

	// EventBuildExited fires when play mode leaves Building
	// Trigger: mode FSM on_exit | Payload: nil
	EventBuildExited

	// EventAnchorPlaced records the first vertex of a pending wall
	// Trigger: WallToolSystem | Payload: *WallPayload
	EventAnchorPlaced

	// EventAnchorDiscarded reports a pending anchor dropped on tool exit
	// Trigger: mode FSM on_exit of WallTool | Payload: *WallPayload
	EventAnchorDiscarded

	// EventWallCommitted reports a segment merged into a ship outline
	// Trigger: WallToolSystem | Payload: *WallPayload
	EventWallCommitted

	// EventEnginePlaced reports a new engine attached to a ship
	// Trigger: EngineToolSystem | Payload: *EnginePlacedPayload
	EventEnginePlaced

	// EventShipSpawned reports creation of the local ship
	// Trigger: mode FSM on_enter of Game | Payload: *ShipSpawnedPayload
	EventShipSpawned
)

// GameEvent is a generic event container
type GameEvent struct {
	Type    EventType
	Payload any
	Frame   int64
}
