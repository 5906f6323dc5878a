package parameter

import "time"

// Audio Hardware Settings
const (
	AudioSampleRate = 44100

	// AudioBufferDuration determines speaker latency
	AudioBufferDuration = 50 * time.Millisecond
)

// Cue tones, one short sine blip per build feedback sound
const (
	CueDuration = 70 * time.Millisecond
	CueVolume   = 0.25

	CueAnchorHz  = 660.0
	CueCommitHz  = 880.0
	CueDiscardHz = 330.0
	CueEngineHz  = 440.0
	CueModeHz    = 550.0
)
