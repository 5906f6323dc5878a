package audio

import (
	"fmt"
	"time"

	"github.com/gopxl/beep"

	"github.com/lixenwraith/shipwright/core"
	"github.com/lixenwraith/shipwright/parameter"
)

const cueEdge = 8 * time.Millisecond

var cueFrequency = [core.SoundTypeCount]float64{
	core.SoundAnchor:  parameter.CueAnchorHz,
	core.SoundCommit:  parameter.CueCommitHz,
	core.SoundDiscard: parameter.CueDiscardHz,
	core.SoundEngine:  parameter.CueEngineHz,
	core.SoundMode:    parameter.CueModeHz,
}

// Cue builds a fresh streamer for one sound
func Cue(st core.SoundType, rate beep.SampleRate, volume float64) (beep.Streamer, error) {
	if st < 0 || st >= core.SoundTypeCount {
		return nil, fmt.Errorf("audio: unknown sound %d", st)
	}
	d := parameter.CueDuration
	s, err := blip(cueFrequency[st], d, rate)
	if err != nil {
		return nil, err
	}

	// commit gets a rising second blip
	if st == core.SoundCommit {
		hi, err := blip(cueFrequency[st]*1.5, d/2, rate)
		if err != nil {
			return nil, err
		}
		s = beep.Seq(s, hi)
	}
	return withVolume(s, volume), nil
}

func blip(freq float64, d time.Duration, rate beep.SampleRate) (beep.Streamer, error) {
	t, err := newTone(freq, d, rate)
	if err != nil {
		return nil, err
	}
	return newFade(t, d, cueEdge, cueEdge, rate), nil
}
