package system

import (
	"time"

	"github.com/lixenwraith/vi-pong/audio"
	"github.com/lixenwraith/vi-pong/component"
	"github.com/lixenwraith/vi-pong/engine"
	"github.com/lixenwraith/vi-pong/parameter"
)

// AudioSystem turns the frame's bounce events into sound cues
type AudioSystem struct {
	player audio.Player
}

// NewAudioSystem creates the system, a nil player makes it silent
func NewAudioSystem(player audio.Player) *AudioSystem {
	return &AudioSystem{player: player}
}

func (s *AudioSystem) Name() string {
	return "audio"
}

func (s *AudioSystem) Priority() int {
	return parameter.PriorityAudio
}

func (s *AudioSystem) Update(world *engine.World, _ time.Duration) {
	if s.player == nil {
		return
	}
	for _, ev := range world.Resource.Events.Events() {
		if ev.Collider == component.ColliderScore {
			s.player.Play(audio.CueGoal)
		} else {
			s.player.Play(audio.CueBounce)
		}
	}
}
