package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"

	"github.com/lixenwraith/vi-pong/parameter"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
)

// oscillator generates a fixed-length raw wave
type oscillator struct {
	freq     float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
}

// NewOscillator creates a new oscillator for wave generation
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     freq,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case WaveSaw:
			val = 2.0 * (o.phase - 0.5)
		}

		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies linear attack and release to a stream
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	totalSamples   int
}

// NewEnvelope wraps s with attack/release shaping over duration
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return &envelope{
		streamer:       s,
		attackSamples:  rate.N(attack),
		releaseSamples: rate.N(release),
		totalSamples:   rate.N(duration),
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	for i := 0; i < n; i++ {
		if e.position >= e.totalSamples {
			return i, i > 0
		}

		vol := 1.0
		if e.position < e.attackSamples && e.attackSamples > 0 {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		releaseStart := e.totalSamples - e.releaseSamples
		if e.position >= releaseStart && e.releaseSamples > 0 {
			vol = float64(e.totalSamples-e.position) / float64(e.releaseSamples)
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}

	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume scales a stream linearly, math.Log2(0) is -Inf so zero volume maps to silent
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// CreateBounceSound generates a short sine blip for wall bounces
func CreateBounceSound(rate beep.SampleRate, vol float64) beep.Streamer {
	sine, err := generators.SineTone(rate, parameter.BounceSoundFreq)
	if err != nil {
		// Frequency above Nyquist for this rate, fall back to the local oscillator
		sine = NewOscillator(parameter.BounceSoundFreq, parameter.BounceSoundLength, WaveSine, rate)
	}
	tone := beep.Take(rate.N(parameter.BounceSoundLength), sine)
	shaped := NewEnvelope(tone, parameter.BounceSoundLength, parameter.BounceSoundAttack, parameter.BounceSoundRelease, rate)
	return newVolume(shaped, vol)
}

// CreateGoalSound generates a low saw buzz for balls reaching a Score wall
func CreateGoalSound(rate beep.SampleRate, vol float64) beep.Streamer {
	osc := NewOscillator(parameter.GoalSoundFreq, parameter.GoalSoundLength, WaveSaw, rate)
	shaped := NewEnvelope(osc, parameter.GoalSoundLength, parameter.GoalSoundAttack, parameter.GoalSoundRelease, rate)
	return newVolume(shaped, vol)
}

// CueStreamer returns a fresh streamer for the cue, nil for an unknown cue
func CueStreamer(c Cue, rate beep.SampleRate, vol float64) beep.Streamer {
	switch c {
	case CueBounce:
		return CreateBounceSound(rate, vol)
	case CueGoal:
		return CreateGoalSound(rate, vol)
	default:
		return nil
	}
}
