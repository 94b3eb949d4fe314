package engine

import (
	"errors"
	"testing"
	"time"

	"github.com/lixenwraith/vi-pong/component"
	"github.com/lixenwraith/vi-pong/core"
	"github.com/lixenwraith/vi-pong/input"
	"github.com/lixenwraith/vi-pong/vmath"
)

func TestStoreInsertionOrder(t *testing.T) {
	s := NewStore[component.NameComponent]()
	s.Set(3, component.NameComponent{Name: "c"})
	s.Set(1, component.NameComponent{Name: "a"})
	s.Set(2, component.NameComponent{Name: "b"})
	s.Set(1, component.NameComponent{Name: "a2"}) // update keeps position

	want := []core.Entity{3, 1, 2}
	got := s.All()
	if len(got) != len(want) {
		t.Fatalf("Expected %d entities, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Expected entity %d at %d, got %d", want[i], i, got[i])
		}
	}
	if v, _ := s.Get(1); v.Name != "a2" {
		t.Errorf("Expected updated value a2, got %q", v.Name)
	}

	s.Remove(1)
	got = s.All()
	if len(got) != 2 || got[0] != 3 || got[1] != 2 {
		t.Errorf("Expected [3 2] after remove, got %v", got)
	}
	if s.Has(1) {
		t.Error("Expected entity 1 to be removed")
	}

	// All returns a copy
	got[0] = 42
	if s.All()[0] != 3 {
		t.Error("Expected All to return a copy")
	}

	s.Clear()
	if s.Count() != 0 {
		t.Errorf("Expected empty store after Clear, got %d", s.Count())
	}
}

func TestWorldEntityLifecycle(t *testing.T) {
	w := NewWorld()

	e1 := w.CreateEntity()
	e2 := w.CreateEntity()
	if e1 == 0 || e2 == e1 {
		t.Fatalf("Expected distinct non-zero ids, got %d and %d", e1, e2)
	}

	w.Components.Transform.Set(e1, component.NewTransform(vmath.Vec3F{X: 1}))
	w.Components.Name.Set(e1, component.NameComponent{Name: "x"})
	if !w.Alive(e1) {
		t.Error("Expected e1 alive")
	}
	if w.Alive(e2) {
		t.Error("Expected e2 without components not alive")
	}

	w.DestroyEntity(e1)
	if w.Alive(e1) || w.Components.Name.Has(e1) {
		t.Error("Expected all components of e1 removed")
	}
}

// recordingSystem appends its name to a shared log on every update
type recordingSystem struct {
	name     string
	priority int
	log      *[]string
	lastDt   time.Duration
}

func (s *recordingSystem) Name() string  { return s.name }
func (s *recordingSystem) Priority() int { return s.priority }
func (s *recordingSystem) Update(_ *World, dt time.Duration) {
	*s.log = append(*s.log, s.name)
	s.lastDt = dt
}

func TestWorldSystemOrder(t *testing.T) {
	w := NewWorld()
	var log []string

	w.AddSystem(&recordingSystem{name: "audio", priority: 90, log: &log})
	w.AddSystem(&recordingSystem{name: "ball", priority: 20, log: &log})
	w.AddSystem(&recordingSystem{name: "paddle", priority: 10, log: &log})
	w.AddSystem(&recordingSystem{name: "ball2", priority: 20, log: &log})

	w.Update(time.Millisecond)

	want := []string{"paddle", "ball", "ball2", "audio"}
	if len(log) != len(want) {
		t.Fatalf("Expected %v, got %v", want, log)
	}
	for i := range want {
		if log[i] != want[i] {
			t.Errorf("Expected %s at %d, got %s", want[i], i, log[i])
		}
	}
}

func TestRoleIndex(t *testing.T) {
	r := NewRoleIndex()

	if _, err := r.Paddle(component.PlayerOne); !errors.Is(err, ErrPaddleNotFound) {
		t.Errorf("Expected ErrPaddleNotFound for unbound role, got %v", err)
	}
	if _, err := r.Wall(component.WallLeft); !errors.Is(err, ErrWallRoleMissing) {
		t.Errorf("Expected ErrWallRoleMissing for unbound role, got %v", err)
	}
	if _, err := r.Paddle(component.PaddleRoleCount); !errors.Is(err, ErrPaddleNotFound) {
		t.Errorf("Expected ErrPaddleNotFound for out-of-range role, got %v", err)
	}

	r.SetPaddle(component.PlayerTwo, 5)
	r.SetWall(component.WallRight, 9)
	r.SetWall(component.WallRoleCount, 10) // ignored

	if e, err := r.Paddle(component.PlayerTwo); err != nil || e != 5 {
		t.Errorf("Expected paddle 5, got %d (%v)", e, err)
	}
	if e, err := r.Wall(component.WallRight); err != nil || e != 9 {
		t.Errorf("Expected wall 9, got %d (%v)", e, err)
	}

	if _, err := r.Ball(); !errors.Is(err, ErrBallNotFound) {
		t.Errorf("Expected ErrBallNotFound for unbound ball, got %v", err)
	}
	r.SetBall(2)
	if e, err := r.Ball(); err != nil || e != 2 {
		t.Errorf("Expected ball 2, got %d (%v)", e, err)
	}
}

func TestGameContextTick(t *testing.T) {
	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	mock := NewMockTimeProvider(start)
	ctx := NewGameContext(mock, nil)

	var log []string
	sys := &recordingSystem{name: "probe", log: &log}
	ctx.World.AddSystem(sys)

	if dt := ctx.Tick(); dt != 0 {
		t.Errorf("Expected zero elapsed on first tick, got %v", dt)
	}

	mock.Advance(16 * time.Millisecond)
	if dt := ctx.Tick(); dt != 16*time.Millisecond {
		t.Errorf("Expected 16ms elapsed, got %v", dt)
	}
	if sys.lastDt != 16*time.Millisecond {
		t.Errorf("Expected systems to receive 16ms, got %v", sys.lastDt)
	}

	tr := ctx.World.Resource.Time
	if tr.FrameNumber != 2 || ctx.FrameNumber() != 2 {
		t.Errorf("Expected frame 2, got %d", tr.FrameNumber)
	}
	if !tr.RealTime.Equal(start.Add(16 * time.Millisecond)) {
		t.Errorf("Expected RealTime to follow the clock, got %v", tr.RealTime)
	}

	// Clock going backwards yields zero elapsed
	mock.SetTime(start)
	if dt := ctx.Tick(); dt != 0 {
		t.Errorf("Expected zero elapsed for backwards clock, got %v", dt)
	}

	// Long stall passes through unclamped, clamping belongs to the integrator
	mock.Advance(5 * time.Second)
	if dt := ctx.Tick(); dt != 5*time.Second {
		t.Errorf("Expected 5s elapsed, got %v", dt)
	}
	if len(log) != 4 {
		t.Errorf("Expected 4 system runs, got %d", len(log))
	}
}

func TestGameContextResetsEvents(t *testing.T) {
	ctx := NewGameContext(NewMockTimeProvider(time.Unix(0, 0)), nil)
	ctx.World.Resource.Events.Push(BounceEvent{Frame: 1})

	ctx.Tick()
	if ctx.World.Resource.Events.Len() != 0 {
		t.Errorf("Expected events reset at tick start, got %d", ctx.World.Resource.Events.Len())
	}
}

func TestIdleInput(t *testing.T) {
	res := NewResource()
	for a := input.ActionNone; a < input.ActionCount; a++ {
		if res.Input.Held(a) {
			t.Errorf("Expected idle input to hold nothing, got %s held", a)
		}
	}
}
