package engine

import (
	"log/slog"

	"github.com/lixenwraith/shipwright/input"
)

// GameContext owns the world, the event router, and the frame sequence
type GameContext struct {
	World  *World
	Router *EventRouter
	Logger *slog.Logger
}

// NewGameContext wires a router to the world's event queue
// A nil logger discards output
func NewGameContext(world *World, logger *slog.Logger) *GameContext {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	world.Logger = logger
	return &GameContext{
		World:  world,
		Router: NewEventRouter(world.Resources.Event.Queue),
		Logger: logger,
	}
}

// AddSystem registers a system with the world and, if it handles events, with the router
func (ctx *GameContext) AddSystem(s System) {
	ctx.World.AddSystem(s)
	if h, ok := s.(EventHandler); ok {
		ctx.Router.Register(h)
	}
}

// AddHandler registers an event-only consumer that has no per-frame update
func (ctx *GameContext) AddHandler(h EventHandler) {
	ctx.Router.Register(h)
}

// Tick advances one frame:
// bump frame, publish edges, dispatch queued events, run systems, dispatch events they emitted, clear edges
// The whole frame runs under the world update lock, so every system observes
// the post-merge state of systems before it
func (ctx *GameContext) Tick(edges input.ActionSet) {
	w := ctx.World
	w.RunSafe(func() {
		frame := w.frameSource.Add(1)
		w.Resources.Time.FrameNumber = frame
		w.Resources.Input.Edges = edges

		ctx.Router.DispatchAll()
		w.UpdateLocked()
		ctx.Router.DispatchAll()

		w.Resources.Input.Edges = 0
	})
}

// FrameNumber returns the number of completed or in-progress ticks
func (ctx *GameContext) FrameNumber() int64 {
	return ctx.World.FrameNumber()
}
