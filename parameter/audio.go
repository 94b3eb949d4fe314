package parameter

import "time"

// Audio
const (
	AudioSampleRate   = 44100
	AudioBufferLength = 100 * time.Millisecond
	AudioVolume       = 0.5

	BounceSoundFreq    = 660.0
	BounceSoundLength  = 40 * time.Millisecond
	BounceSoundAttack  = 2 * time.Millisecond
	BounceSoundRelease = 25 * time.Millisecond

	GoalSoundFreq    = 110.0
	GoalSoundLength  = 180 * time.Millisecond
	GoalSoundAttack  = 5 * time.Millisecond
	GoalSoundRelease = 120 * time.Millisecond
)
