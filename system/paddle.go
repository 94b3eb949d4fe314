package system

import (
	"fmt"
	"time"

	"github.com/lixenwraith/vi-pong/component"
	"github.com/lixenwraith/vi-pong/engine"
	"github.com/lixenwraith/vi-pong/input"
	"github.com/lixenwraith/vi-pong/parameter"
)

type paddleBinding struct {
	action input.Action
	role   component.PaddleRole
	dir    float64
}

// Checked in this order each gated tick
var paddleBindings = []paddleBinding{
	{input.ActionP1Up, component.PlayerOne, 1},
	{input.ActionP1Down, component.PlayerOne, -1},
	{input.ActionP2Up, component.PlayerTwo, 1},
	{input.ActionP2Down, component.PlayerTwo, -1},
}

// PaddleSystem translates held keys into paddle position changes
// Moves are direct position edits on a fixed interval, so paddle speed follows the gate rate and not frame time
type PaddleSystem struct {
	gate   IntervalGate
	step   float64
	misses missLog
}

// NewPaddleSystem creates a paddle system with the default interval and step
func NewPaddleSystem(ctx *engine.GameContext) *PaddleSystem {
	s := &PaddleSystem{
		gate:   NewIntervalGate(parameter.PaddleInputInterval),
		step:   parameter.PaddleStep,
		misses: newMissLog(ctx.Logger, "paddle"),
	}
	s.Init()
	return s
}

// Init resets session state
func (s *PaddleSystem) Init() {
	s.gate.Reset()
	s.misses.reset()
}

func (s *PaddleSystem) Name() string {
	return "paddle"
}

func (s *PaddleSystem) Priority() int {
	return parameter.PriorityPaddle
}

func (s *PaddleSystem) Update(world *engine.World, dt time.Duration) {
	if !s.gate.Tick(dt) {
		return
	}

	res := world.Resource
	transforms := world.Components.Transform

	for _, b := range paddleBindings {
		if !res.Input.Held(b.action) {
			continue
		}

		e, err := res.Roles.Paddle(b.role)
		if err != nil {
			s.misses.report(b.role.String(), err)
			continue
		}
		tr, ok := transforms.Get(e)
		if !ok {
			s.misses.report(b.role.String(), fmt.Errorf("%w: %s has no transform", engine.ErrPaddleNotFound, b.role))
			continue
		}

		tr.Translation.Y += b.dir * s.step
		transforms.Set(e, tr)
	}
}
