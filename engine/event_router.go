package engine

import (
	"github.com/lixenwraith/shipwright/event"
	"github.com/lixenwraith/shipwright/parameter"
)

// EventRouter dispatches events to registered handlers
//
// Architecture:
//   - Single-threaded dispatch, always under the world update lock
//   - Multiple handlers can register for the same event type
//   - Handlers are invoked in registration order
//
// Usage:
//  1. Create router: NewEventRouter(queue)
//  2. Register handlers: router.Register(system)
//  3. Each tick: router.DispatchAll() before and after world.UpdateLocked()
type EventRouter struct {
	handlers map[event.EventType][]EventHandler
	queue    *event.EventQueue
}

// NewEventRouter creates a router attached to the given queue
func NewEventRouter(queue *event.EventQueue) *EventRouter {
	return &EventRouter{
		handlers: make(map[event.EventType][]EventHandler),
		queue:    queue,
	}
}

// Register adds a handler for its declared event types
func (r *EventRouter) Register(handler EventHandler) {
	for _, t := range handler.EventTypes() {
		r.handlers[t] = append(r.handlers[t], handler)
	}
}

// DispatchAll consumes pending events and routes them to handlers in FIFO order
// Events pushed by handlers are drained in further rounds, bounded by EventDispatchRounds;
// anything left waits for the next frame. Returns the number of events dispatched
func (r *EventRouter) DispatchAll() int {
	n := 0
	for round := 0; round < parameter.EventDispatchRounds; round++ {
		events := r.queue.Consume()
		if len(events) == 0 {
			break
		}
		for _, ev := range events {
			for _, h := range r.handlers[ev.Type] {
				h.HandleEvent(ev)
			}
		}
		n += len(events)
	}
	return n
}

// HasHandlers returns true if any handlers are registered for the given type
func (r *EventRouter) HasHandlers(t event.EventType) bool {
	return len(r.handlers[t]) > 0
}

// HandlerCount returns the number of handlers registered for the given type
func (r *EventRouter) HandlerCount(t event.EventType) int {
	return len(r.handlers[t])
}
