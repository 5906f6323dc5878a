package engine

import "github.com/lixenwraith/shipwright/event"

// System is a per-frame unit of game logic
type System interface {
	// Name returns system's name for logging
	Name() string

	// Priority orders systems within a frame; lower values run first
	Priority() int

	// Update runs once per frame under the world update lock
	Update()
}

// EventHandler processes specific event types
// Systems implement this interface to receive routed events
type EventHandler interface {
	// HandleEvent processes a single event
	// Called synchronously during dispatch, under the world update lock
	HandleEvent(ev event.GameEvent)

	// EventTypes returns the event types this handler processes
	EventTypes() []event.EventType
}
