package system

import (
	"github.com/lixenwraith/shipwright/core"
	"github.com/lixenwraith/shipwright/engine"
	"github.com/lixenwraith/shipwright/event"
)

// AudioSystem turns build events into feedback sounds
// Decouples game systems from direct audio access
type AudioSystem struct {
	world *engine.World
}

// NewAudioSystem creates an audio system; it is silent while no player is bridged
func NewAudioSystem(world *engine.World) *AudioSystem {
	return &AudioSystem{world: world}
}

// Name returns system's name
func (s *AudioSystem) Name() string {
	return "audio"
}

// EventTypes returns the event types AudioSystem handles
func (s *AudioSystem) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventAnchorPlaced,
		event.EventWallCommitted,
		event.EventAnchorDiscarded,
		event.EventEnginePlaced,
		event.EventBuildEntered,
		event.EventBuildExited,
	}
}

// HandleEvent plays the cue for ev
func (s *AudioSystem) HandleEvent(ev event.GameEvent) {
	player := s.player()
	if player == nil {
		return
	}
	if sound, ok := soundFor(ev.Type); ok {
		player.Play(sound)
	}
}

func (s *AudioSystem) player() engine.AudioPlayer {
	if s.world.Resources.Audio == nil {
		return nil
	}
	return s.world.Resources.Audio.Player
}

func soundFor(t event.EventType) (core.SoundType, bool) {
	switch t {
	case event.EventAnchorPlaced:
		return core.SoundAnchor, true
	case event.EventWallCommitted:
		return core.SoundCommit, true
	case event.EventAnchorDiscarded:
		return core.SoundDiscard, true
	case event.EventEnginePlaced:
		return core.SoundEngine, true
	case event.EventBuildEntered, event.EventBuildExited:
		return core.SoundMode, true
	}
	return 0, false
}
