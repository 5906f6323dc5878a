package engine

import (
	"seehuhn.de/go/geom/vec"

	"github.com/lixenwraith/shipwright/core"
	"github.com/lixenwraith/shipwright/event"
	"github.com/lixenwraith/shipwright/hull"
	"github.com/lixenwraith/shipwright/input"
	"github.com/lixenwraith/shipwright/parameter"
	"github.com/lixenwraith/shipwright/status"
)

// Resource holds singleton game resources, initialized during world creation, accessed via World.Resources
type Resource struct {
	Time   *TimeResource
	Config *ConfigResource
	Mode   *ModeResource
	Input  *InputResource
	Cursor *CursorResource
	Build  *BuildToolResource
	Event  *EventQueueResource

	// Telemetry
	Status *status.Registry

	// Bridged from front-end services; Player may be nil
	Audio *AudioResource
}

// TimeResource carries the frame counter for systems
type TimeResource struct {
	FrameNumber int64
}

// ConfigResource holds build settings read by systems
type ConfigResource struct {
	// GridCell is the snapping step in ship-local units
	GridCell float64
}

// ModeResource holds the settled mode context of the current frame
// Written only by ModeSystem
type ModeResource struct {
	Current core.ModeContext
}

// InputResource holds the action edges of the current frame
// Published by GameContext.Tick before systems run, cleared after
type InputResource struct {
	Edges input.ActionSet
}

// CursorProjector maps the pointer to a world-space position
// ok is false when the pointer has no world position (outside the viewport)
type CursorProjector interface {
	Project() (pos vec.Vec2, ok bool)
}

// CursorResource wraps the active projector; a nil Projector never projects
type CursorResource struct {
	Projector CursorProjector
}

// Project returns the projected world position, absorbing a missing projector
func (c *CursorResource) Project() (vec.Vec2, bool) {
	if c == nil || c.Projector == nil {
		return vec.Vec2{}, false
	}
	return c.Projector.Project()
}

// BuildToolResource holds the wall tool's pending state
type BuildToolResource struct {
	Pending hull.PendingPath
}

// EventQueueResource wraps the event queue for systems access
type EventQueueResource struct {
	Queue *event.EventQueue
}

// AudioPlayer defines the minimal audio interface used by game systems
type AudioPlayer interface {
	Play(core.SoundType) bool
	ToggleMute() bool
	IsMuted() bool
}

// AudioResource wraps the audio player interface
type AudioResource struct {
	Player AudioPlayer
}

func newResource(q *event.EventQueue) Resource {
	return Resource{
		Time:   &TimeResource{},
		Config: &ConfigResource{GridCell: parameter.DefaultGridCell},
		Mode:   &ModeResource{},
		Input:  &InputResource{},
		Cursor: &CursorResource{},
		Build:  &BuildToolResource{},
		Event:  &EventQueueResource{Queue: q},
		Status: status.NewRegistry(),
		Audio:  &AudioResource{},
	}
}
