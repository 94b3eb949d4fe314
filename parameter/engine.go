package parameter

import "time"

// Game Loop & Engine Timing
const (
	// FrameUpdateInterval is the default rendering frame interval (~60 FPS)
	FrameUpdateInterval = 16 * time.Millisecond

	// MaxDeltaTime caps the elapsed time fed to integrators after a stall
	MaxDeltaTime = 200 * time.Millisecond

	// EventQueueSize is the initial capacity of the bounce event queue
	EventQueueSize = 16
)

// System Priorities (lower runs first)
const (
	PriorityPaddle    = 10
	PriorityClamp     = 15
	PriorityBall      = 20
	PriorityCollision = 30
	PriorityScore     = 40
	PriorityAudio     = 90
)
