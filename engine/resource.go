package engine

import (
	"time"

	"github.com/lixenwraith/vi-pong/input"
)

// Resource holds singleton world state shared by systems, accessed via World.Resource
type Resource struct {
	Time   *TimeResource
	Input  InputSource
	Rules  *RulesResource
	Roles  *RoleIndex
	Events *EventQueue
}

// NewResource returns resources with an idle input source and all rule deviations off
func NewResource() *Resource {
	return &Resource{
		Time:   &TimeResource{},
		Input:  idleInput{},
		Rules:  &RulesResource{},
		Roles:  NewRoleIndex(),
		Events: NewEventQueue(),
	}
}

// TimeResource wraps time data for systems, refreshed by GameContext at the start of a tick
type TimeResource struct {
	// RealTime is the wall-clock time of the tick
	RealTime time.Time

	// Elapsed is the raw real time since the previous tick, before clamping
	Elapsed time.Duration

	// FrameNumber is the tick count, starting at 1
	FrameNumber int64
}

// Update modifies TimeResource fields in-place
func (tr *TimeResource) Update(realTime time.Time, elapsed time.Duration, frameNumber int64) {
	tr.RealTime = realTime
	tr.Elapsed = elapsed
	tr.FrameNumber = frameNumber
}

// InputSource reports the held state of logical actions
type InputSource interface {
	Held(a input.Action) bool
}

type idleInput struct{}

func (idleInput) Held(input.Action) bool { return false }

// RulesResource toggles behaviors that deviate from the classic toy rules
// All false reproduces the documented behavior, defects included
type RulesResource struct {
	// ClampPaddles keeps paddles between the top and bottom walls
	ClampPaddles bool

	// ScoreOnGoal credits the opposing paddle when the ball reaches a Score wall
	ScoreOnGoal bool

	// DeepestWallOnly answers only the most penetrated wall when the ball overlaps several in one frame
	DeepestWallOnly bool
}
