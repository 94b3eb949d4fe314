// @focus: #sys { audio }
package audio

import (
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/vi-pong/parameter"
)

// Engine plays cues through the system speaker via a beep mixer
type Engine struct {
	config Config
	rate   beep.SampleRate
	mixer  *beep.Mixer

	running atomic.Bool
	muted   atomic.Bool

	mu sync.Mutex
}

// DefaultConfig returns an enabled engine config at the default rate and volume
func DefaultConfig() Config {
	return Config{
		Enabled:    true,
		Volume:     parameter.AudioVolume,
		SampleRate: parameter.AudioSampleRate,
	}
}

// NewEngine creates an engine, the speaker is not touched until Start
func NewEngine(cfg Config) *Engine {
	if cfg.SampleRate <= 0 {
		cfg.SampleRate = parameter.AudioSampleRate
	}
	if cfg.Volume < 0 {
		cfg.Volume = 0
	}
	if cfg.Volume > 1 {
		cfg.Volume = 1
	}
	e := &Engine{
		config: cfg,
		rate:   beep.SampleRate(cfg.SampleRate),
		mixer:  &beep.Mixer{},
	}
	e.muted.Store(!cfg.Enabled)
	return e
}

// Start initializes the speaker and attaches the mixer
func (e *Engine) Start() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.running.Load() {
		return fmt.Errorf("audio engine already running")
	}
	if err := speaker.Init(e.rate, e.rate.N(parameter.AudioBufferLength)); err != nil {
		return fmt.Errorf("speaker init: %w", err)
	}
	speaker.Play(e.mixer)
	e.running.Store(true)
	return nil
}

// Stop silences and releases the speaker
func (e *Engine) Stop() {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.running.Load() {
		return
	}
	speaker.Clear()
	speaker.Close()
	e.running.Store(false)
}

// Play queues a cue on the mixer, a no-op while stopped or muted
func (e *Engine) Play(c Cue) {
	if !e.running.Load() || e.muted.Load() {
		return
	}
	s := CueStreamer(c, e.rate, e.config.Volume)
	if s == nil {
		return
	}
	speaker.Lock()
	e.mixer.Add(s)
	speaker.Unlock()
}

// SetMuted toggles output without stopping the speaker
func (e *Engine) SetMuted(muted bool) {
	e.muted.Store(muted)
}

// IsMuted reports the mute state
func (e *Engine) IsMuted() bool {
	return e.muted.Load()
}

// IsRunning reports whether the speaker is attached
func (e *Engine) IsRunning() bool {
	return e.running.Load()
}
