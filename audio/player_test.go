package audio

import (
	"testing"
	"time"

	"github.com/gopxl/beep"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/shipwright/core"
	"github.com/lixenwraith/shipwright/parameter"
)

func drain(t *testing.T, s beep.Streamer) [][2]float64 {
	t.Helper()
	var out [][2]float64
	buf := make([][2]float64, 512)
	for {
		n, ok := s.Stream(buf)
		out = append(out, buf[:n]...)
		if !ok {
			break
		}
		require.Less(t, len(out), 1<<20, "stream never ends")
	}
	return out
}

func TestToneLength(t *testing.T) {
	rate := beep.SampleRate(44100)
	s, err := newTone(440, 10*time.Millisecond, rate)
	require.NoError(t, err)
	samples := drain(t, s)
	assert.Len(t, samples, rate.N(10*time.Millisecond))
	for _, v := range samples {
		assert.LessOrEqual(t, v[0], 1.0)
		assert.GreaterOrEqual(t, v[0], -1.0)
	}
}

func TestFadeStartsSilent(t *testing.T) {
	rate := beep.SampleRate(44100)
	d := 20 * time.Millisecond
	tone, err := newTone(440, d, rate)
	require.NoError(t, err)
	s := newFade(tone, d, 5*time.Millisecond, 5*time.Millisecond, rate)
	samples := drain(t, s)
	require.NotEmpty(t, samples)
	assert.Equal(t, 0.0, samples[0][0])
	assert.InDelta(t, 0.0, samples[len(samples)-1][0], 0.01)
}

func TestCueForEverySound(t *testing.T) {
	rate := beep.SampleRate(parameter.AudioSampleRate)
	for st := core.SoundType(0); st < core.SoundTypeCount; st++ {
		s, err := Cue(st, rate, parameter.CueVolume)
		require.NoError(t, err, "sound %d", st)
		samples := drain(t, s)
		assert.GreaterOrEqual(t, len(samples), rate.N(parameter.CueDuration))
	}
	_, err := Cue(core.SoundTypeCount, rate, 1)
	assert.Error(t, err)
}

func TestCommitCueIsLonger(t *testing.T) {
	rate := beep.SampleRate(parameter.AudioSampleRate)
	a, err := Cue(core.SoundAnchor, rate, 1)
	require.NoError(t, err)
	c, err := Cue(core.SoundCommit, rate, 1)
	require.NoError(t, err)
	anchor, commit := drain(t, a), drain(t, c)
	assert.Greater(t, len(commit), len(anchor))
}

func TestPlayerNotStarted(t *testing.T) {
	p := NewPlayer(DefaultConfig())
	assert.False(t, p.Play(core.SoundAnchor))
	assert.Zero(t, p.Played())
	p.Close()
}

func TestPlayerMute(t *testing.T) {
	p := NewPlayer(DefaultConfig())
	assert.False(t, p.IsMuted())
	assert.False(t, p.ToggleMute())
	assert.True(t, p.IsMuted())
	assert.True(t, p.ToggleMute())

	disabled := NewPlayer(Config{Enabled: false})
	assert.True(t, disabled.IsMuted())
}
