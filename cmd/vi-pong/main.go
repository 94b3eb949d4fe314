package main

import (
	"flag"
	"fmt"
	"os"
	"runtime/debug"
	"time"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/lixenwraith/vi-pong/audio"
	"github.com/lixenwraith/vi-pong/config"
	"github.com/lixenwraith/vi-pong/engine"
	"github.com/lixenwraith/vi-pong/input"
	"github.com/lixenwraith/vi-pong/logging"
	"github.com/lixenwraith/vi-pong/render"
	"github.com/lixenwraith/vi-pong/scene"
	"github.com/lixenwraith/vi-pong/system"
)

var (
	configFlag = flag.String("config", "", "Path to a YAML config file")
	debugFlag  = flag.Bool("debug", false, "Enable file logging")
)

func main() {
	flag.Parse()

	cfg, err := config.Load(*configFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}
	if *debugFlag {
		cfg.Log.Enabled = true
	}

	if !term.IsTerminal(int(os.Stdin.Fd())) || !term.IsTerminal(int(os.Stdout.Fd())) {
		fmt.Fprintln(os.Stderr, "vi-pong needs an interactive terminal")
		os.Exit(1)
	}

	keys, err := cfg.KeyTable()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Invalid key bindings: %v\n", err)
		os.Exit(1)
	}

	logger, closeLog, err := logging.Setup(logging.Options{
		Enabled:     cfg.Log.Enabled,
		Level:       cfg.Log.Level,
		Dir:         cfg.Log.Dir,
		Development: cfg.Log.Development,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to set up logging: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()
	logger, _ = logging.WithSession(logger)

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize terminal: %v\n", err)
		os.Exit(1)
	}

	// Focus reports let held keys drop when the terminal loses focus
	screen.EnableFocus()

	// Panic Recovery: restore the terminal before printing the crash
	defer func() {
		if r := recover(); r != nil {
			screen.Fini()
			logger.Error("crash", zap.Any("panic", r))
			fmt.Fprintf(os.Stderr, "\n\x1b[31mVI-PONG CRASHED: %v\x1b[0m\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()
	// Normal exit terminal cleanup
	defer screen.Fini()

	logger.Info("session start",
		zap.Int("frame_rate", cfg.FrameRate),
		zap.Duration("hold_window", cfg.HoldWindow),
		zap.Bool("clamp_paddles", cfg.Rules.ClampPaddles),
		zap.Bool("score_on_goal", cfg.Rules.ScoreOnGoal),
		zap.Bool("deepest_wall_only", cfg.Rules.DeepestWallOnly),
	)

	var player audio.Player
	if cfg.Audio.Enabled {
		audioEngine := audio.NewEngine(cfg.AudioEngineConfig())
		if err := audioEngine.Start(); err == nil {
			player = audioEngine
			defer audioEngine.Stop()
		} else {
			logger.Warn("audio start failed, continuing without audio", zap.Error(err))
		}
	}

	clock := engine.NewMonotonicTimeProvider()
	ctx := engine.NewGameContext(clock, logger)
	world := ctx.World

	cfg.ApplyRules(world.Resource.Rules)
	inputState := input.NewState(clock, cfg.HoldWindow)
	world.Resource.Input = inputState

	scene.Setup(world)
	if err := scene.Validate(world); err != nil {
		logger.Error("scene invalid", zap.Error(err))
	}

	world.AddSystem(system.NewPaddleSystem(ctx))
	world.AddSystem(system.NewClampSystem(ctx))
	world.AddSystem(system.NewBallSystem(ctx))
	world.AddSystem(system.NewCollisionSystem(ctx))
	world.AddSystem(system.NewScoreSystem(ctx))
	world.AddSystem(system.NewAudioSystem(player))

	renderer := render.NewRenderer(screen)

	eventChan := make(chan tcell.Event, 256)
	// Input polling uses raw goroutine as it interacts directly with terminal
	go func() {
		defer func() {
			if r := recover(); r != nil {
				screen.Fini()
				fmt.Fprintf(os.Stderr, "\r\n\x1b[31mEVENT POLLER CRASHED: %v\x1b[0m\r\n", r)
				fmt.Fprintf(os.Stderr, "Stack Trace:\r\n%s\r\n", debug.Stack())
				os.Exit(1)
			}
		}()

		for {
			ev := screen.PollEvent()
			// nil after Fini
			if ev == nil {
				return
			}
			eventChan <- ev
		}
	}()

	frameTicker := time.NewTicker(cfg.FrameInterval())
	defer frameTicker.Stop()

	for {
		select {
		case ev := <-eventChan:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if a, ok := inputState.HandleKey(ev, keys); ok && a == input.ActionQuit {
					logger.Info("session end",
						zap.Int64("frames", ctx.FrameNumber()),
						zap.String("score", render.ScoreLine(world)),
					)
					return
				}
			case *tcell.EventFocus:
				// No key release arrives once focus is gone
				if !ev.Focused {
					inputState.ReleaseAll()
				}
			case *tcell.EventResize:
				screen.Sync()
			}

		case <-frameTicker.C:
			ctx.Tick()
			renderer.Render(world)
		}
	}
}
