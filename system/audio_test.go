package system

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lixenwraith/shipwright/core"
	"github.com/lixenwraith/shipwright/input"
)

type recordingPlayer struct {
	played []core.SoundType
	muted  bool
}

func (p *recordingPlayer) Play(s core.SoundType) bool {
	if p.muted {
		return false
	}
	p.played = append(p.played, s)
	return true
}

func (p *recordingPlayer) ToggleMute() bool {
	p.muted = !p.muted
	return !p.muted
}

func (p *recordingPlayer) IsMuted() bool { return p.muted }

func TestAudioCuesFollowBuildEvents(t *testing.T) {
	h := newHarness(t, 20, ShipSettings{})
	player := &recordingPlayer{}
	h.world.Resources.Audio.Player = player

	h.enterWallTool()
	player.played = nil

	h.press(0, 0)
	h.press(40, 0)
	h.press(20, 20)
	h.tick(input.ActionDeselectTool)
	h.tick(input.ActionToggleBuildMode)

	assert.Equal(t, []core.SoundType{
		core.SoundAnchor,
		core.SoundCommit,
		core.SoundAnchor,
		core.SoundDiscard,
		core.SoundMode,
	}, player.played)
}

func TestAudioSilentWithoutPlayer(t *testing.T) {
	h := newHarness(t, 20, ShipSettings{})
	h.world.Resources.Audio.Player = nil
	assert.NotPanics(t, func() {
		h.enterWallTool()
		h.press(0, 0)
	})
}
