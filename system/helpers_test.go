package system

import (
	"testing"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/lixenwraith/vi-pong/engine"
	"github.com/lixenwraith/vi-pong/input"
	"github.com/lixenwraith/vi-pong/scene"
	"github.com/lixenwraith/vi-pong/vmath"
)

// heldKeys is an input source with a fixed set of held actions
type heldKeys map[input.Action]bool

func (h heldKeys) Held(a input.Action) bool { return h[a] }

// newTestContext builds a context with the full scene on a mock clock and returns the captured logs
func newTestContext(t *testing.T) (*engine.GameContext, *scene.Scene, *observer.ObservedLogs) {
	t.Helper()
	core, logs := observer.New(zapcore.DebugLevel)
	ctx := engine.NewGameContext(engine.NewMockTimeProvider(time.Unix(0, 0)), zap.New(core))
	sc := scene.Setup(ctx.World)
	return ctx, sc, logs
}

func placeBall(t *testing.T, ctx *engine.GameContext, sc *scene.Scene, x, y float64) {
	t.Helper()
	tr, ok := ctx.World.Components.Transform.Get(sc.Ball)
	if !ok {
		t.Fatal("ball has no transform")
	}
	tr.Translation = vmath.Vec3F{X: x, Y: y}
	ctx.World.Components.Transform.Set(sc.Ball, tr)
}

func ballState(ctx *engine.GameContext, sc *scene.Scene) (pos, vel vmath.Vec3F) {
	tr, _ := ctx.World.Components.Transform.Get(sc.Ball)
	b, _ := ctx.World.Components.Ball.Get(sc.Ball)
	return tr.Translation, b.Velocity
}
