package system

import (
	"time"

	"go.uber.org/zap"

	"github.com/lixenwraith/vi-pong/component"
	"github.com/lixenwraith/vi-pong/engine"
	"github.com/lixenwraith/vi-pong/parameter"
)

// ScoreSystem credits a goal when the ball starts touching a Score wall
// Runs only with RulesResource.ScoreOnGoal, otherwise scores stay at zero
type ScoreSystem struct {
	logger *zap.Logger
	misses missLog
}

func NewScoreSystem(ctx *engine.GameContext) *ScoreSystem {
	return &ScoreSystem{
		logger: ctx.Logger.With(zap.String("system", "score")),
		misses: newMissLog(ctx.Logger, "score"),
	}
}

func (s *ScoreSystem) Name() string {
	return "score"
}

func (s *ScoreSystem) Priority() int {
	return parameter.PriorityScore
}

// Scorer returns the paddle credited for a goal on the given wall
func Scorer(role component.WallRole) (component.PaddleRole, bool) {
	switch role {
	case component.WallLeft:
		return component.PlayerTwo, true
	case component.WallRight:
		return component.PlayerOne, true
	default:
		return 0, false
	}
}

func (s *ScoreSystem) Update(world *engine.World, _ time.Duration) {
	res := world.Resource
	if !res.Rules.ScoreOnGoal {
		return
	}

	scores := world.Components.Score
	for _, ev := range res.Events.Events() {
		if ev.Collider != component.ColliderScore {
			continue
		}
		role, ok := Scorer(ev.Role)
		if !ok {
			continue
		}
		e, err := res.Roles.Paddle(role)
		if err != nil {
			s.misses.report(role.String(), err)
			continue
		}
		sc, ok := scores.Get(e)
		if !ok {
			continue
		}
		sc.Points++
		scores.Set(e, sc)

		s.logger.Info("goal",
			zap.Stringer("scorer", role),
			zap.Stringer("wall", ev.Role),
			zap.Uint32("points", sc.Points),
			zap.Int64("frame", ev.Frame),
		)
	}
}
