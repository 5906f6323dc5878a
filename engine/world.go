package engine

import (
	"log/slog"
	"sort"
	"sync"
	"sync/atomic"

	"github.com/lixenwraith/shipwright/core"
	"github.com/lixenwraith/shipwright/event"
)

// World contains all entities, their components, and the singleton resources
type World struct {
	mu           sync.RWMutex
	nextEntityID core.Entity

	Resources  Resource
	Components ComponentStore
	Logger     *slog.Logger

	// Direct pointers for PushEvent
	eventQueue  *event.EventQueue
	frameSource *atomic.Int64

	systems     []System
	updateMutex sync.Mutex
}

// NewWorld creates a world with every component store and resource initialized
func NewWorld() *World {
	q := event.NewEventQueue()
	w := &World{
		nextEntityID: 1,
		Resources:    newResource(q),
		Components:   newComponentStore(),
		Logger:       slog.New(slog.DiscardHandler),
		eventQueue:   q,
		frameSource:  &atomic.Int64{},
	}
	return w
}

// CreateEntity reserves a new entity ID
func (w *World) CreateEntity() core.Entity {
	w.mu.Lock()
	defer w.mu.Unlock()

	id := w.nextEntityID
	w.nextEntityID++
	return id
}

// DestroyEntity removes all components associated with an entity
func (w *World) DestroyEntity(e core.Entity) {
	for _, s := range w.Components.all() {
		s.RemoveEntity(e)
	}
}

// Clear removes all entities and components from the world
func (w *World) Clear() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.nextEntityID = 1
	for _, s := range w.Components.all() {
		s.ClearAllComponents()
	}
}

// AddSystem adds a system to the world, keeping systems sorted by priority
// Systems of equal priority run in insertion order
func (w *World) AddSystem(system System) {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.systems = append(w.systems, system)
	sort.SliceStable(w.systems, func(i, j int) bool {
		return w.systems[i].Priority() < w.systems[j].Priority()
	})
}

// Systems returns a copy of all registered systems in run order
func (w *World) Systems() []System {
	w.mu.RLock()
	defer w.mu.RUnlock()
	result := make([]System, len(w.systems))
	copy(result, w.systems)
	return result
}

// RunSafe executes a function while holding the world's update lock
func (w *World) RunSafe(fn func()) {
	w.updateMutex.Lock()
	defer w.updateMutex.Unlock()
	fn()
}

// Update runs all systems sequentially
func (w *World) Update() {
	w.RunSafe(w.UpdateLocked)
}

// UpdateLocked runs all systems assuming the caller already holds the update lock
func (w *World) UpdateLocked() {
	for _, system := range w.Systems() {
		system.Update()
	}
}

// FrameNumber returns the current frame index
func (w *World) FrameNumber() int64 {
	return w.frameSource.Load()
}

// PushEvent emits a game event stamped with the current frame
func (w *World) PushEvent(eventType event.EventType, payload any) {
	w.eventQueue.Push(event.GameEvent{
		Type:    eventType,
		Payload: payload,
		Frame:   w.frameSource.Load(),
	})
}
