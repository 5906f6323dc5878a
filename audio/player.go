package audio

import (
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/shipwright/core"
	"github.com/lixenwraith/shipwright/parameter"
)

// Config holds playback settings
type Config struct {
	Enabled    bool
	SampleRate int
	Volume     float64
}

// DefaultConfig returns enabled playback at the standard rate
func DefaultConfig() Config {
	return Config{
		Enabled:    true,
		SampleRate: parameter.AudioSampleRate,
		Volume:     parameter.CueVolume,
	}
}

// Player mixes cues into a single speaker stream
// Play is safe from any goroutine; it never blocks on the device
type Player struct {
	cfg   Config
	rate  beep.SampleRate
	mixer *beep.Mixer

	mu      sync.Mutex
	started atomic.Bool
	muted   atomic.Bool
	played  atomic.Uint64
}

// NewPlayer creates a stopped player; disabled configs start muted
func NewPlayer(cfg Config) *Player {
	if cfg.SampleRate <= 0 {
		cfg.SampleRate = parameter.AudioSampleRate
	}
	p := &Player{
		cfg:   cfg,
		rate:  beep.SampleRate(cfg.SampleRate),
		mixer: &beep.Mixer{},
	}
	p.muted.Store(!cfg.Enabled)
	return p
}

// Start opens the speaker and attaches the mixer
func (p *Player) Start() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.started.Load() {
		return nil
	}
	if err := speaker.Init(p.rate, p.rate.N(parameter.AudioBufferDuration)); err != nil {
		return fmt.Errorf("audio: speaker init: %w", err)
	}
	speaker.Play(p.mixer)
	p.started.Store(true)
	return nil
}

// Close stops playback and releases the device
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.started.CompareAndSwap(true, false) {
		return
	}
	speaker.Clear()
	speaker.Close()
}

// Play queues a cue, returns false when it was not queued
func (p *Player) Play(st core.SoundType) bool {
	if !p.started.Load() || p.muted.Load() {
		return false
	}
	s, err := Cue(st, p.rate, p.cfg.Volume)
	if err != nil {
		return false
	}
	speaker.Lock()
	p.mixer.Add(s)
	speaker.Unlock()
	p.played.Add(1)
	return true
}

// ToggleMute toggles mute state, returns true if now enabled
func (p *Player) ToggleMute() bool {
	newMute := !p.muted.Load()
	p.muted.Store(newMute)
	return !newMute
}

// IsMuted returns current mute state
func (p *Player) IsMuted() bool {
	return p.muted.Load()
}

// Played returns the number of cues queued since start
func (p *Player) Played() uint64 {
	return p.played.Load()
}
