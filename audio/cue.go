// Package audio plays short synthesized cues through the beep speaker.
package audio

// Cue identifies a sound effect
type Cue uint8

const (
	CueBounce Cue = iota
	CueGoal
)

func (c Cue) String() string {
	switch c {
	case CueBounce:
		return "bounce"
	case CueGoal:
		return "goal"
	default:
		return "unknown"
	}
}

// Player plays cues without blocking the caller
type Player interface {
	Play(c Cue)
}

// Config controls the speaker engine
type Config struct {
	Enabled    bool
	Volume     float64 // 0..1
	SampleRate int
}
