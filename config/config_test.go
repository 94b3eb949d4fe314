package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/vi-pong/engine"
	"github.com/lixenwraith/vi-pong/input"
)

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())

	assert.Equal(t, 62, cfg.FrameRate)
	assert.Equal(t, 150*time.Millisecond, cfg.HoldWindow)
	assert.False(t, cfg.Log.Enabled)
	assert.True(t, cfg.Audio.Enabled)
	assert.Equal(t, RulesConfig{}, cfg.Rules, "all deviations off by default")
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)

	cfg, err = Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "vi-pong.yaml")
	doc := `
frame_rate: 30
hold_window: 80ms
log:
  enabled: true
  level: debug
audio:
  volume: 0.25
keys:
  p1_up: [e]
rules:
  clamp_paddles: true
  score_on_goal: true
`
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 30, cfg.FrameRate)
	assert.Equal(t, 80*time.Millisecond, cfg.HoldWindow)
	assert.True(t, cfg.Log.Enabled)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "logs", cfg.Log.Dir, "omitted fields keep defaults")
	assert.True(t, cfg.Audio.Enabled)
	assert.Equal(t, 0.25, cfg.Audio.Volume)
	assert.True(t, cfg.Rules.ClampPaddles)
	assert.True(t, cfg.Rules.ScoreOnGoal)
	assert.False(t, cfg.Rules.DeepestWallOnly)
	assert.Equal(t, time.Second/30, cfg.FrameInterval())

	kt, err := cfg.KeyTable()
	require.NoError(t, err)
	a, ok := kt.Lookup(tcell.NewEventKey(tcell.KeyRune, 'e', tcell.ModNone))
	require.True(t, ok)
	assert.Equal(t, input.ActionP1Up, a)
	_, ok = kt.Lookup(tcell.NewEventKey(tcell.KeyRune, 'w', tcell.ModNone))
	assert.False(t, ok, "replaced binding no longer resolves")
	a, ok = kt.Lookup(tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone))
	require.True(t, ok)
	assert.Equal(t, input.ActionP2Up, a, "untouched actions keep defaults")
}

func TestLoadRejectsInvalid(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"Malformed yaml", "frame_rate: [1,"},
		{"Zero frame rate", "frame_rate: 0"},
		{"Negative hold", "hold_window: -5ms"},
		{"Loud volume", "audio: {volume: 2}"},
		{"Unknown action", "keys: {jump: [space]}"},
		{"Unknown key", "keys: {p1_up: [warp]}"},
		{"Conflicting keys", "keys: {p1_up: [up]}"},
		{"Unknown log level", "log: {level: loud}"},
		{"Quit unbound", "keys: {quit: []}"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "bad.yaml")
			require.NoError(t, os.WriteFile(path, []byte(tt.doc), 0o644))

			_, err := Load(path)
			require.Error(t, err)
			assert.Contains(t, err.Error(), path)
		})
	}
}

func TestApplyRules(t *testing.T) {
	cfg := Default()
	cfg.Rules = RulesConfig{ClampPaddles: true, DeepestWallOnly: true}

	var r engine.RulesResource
	cfg.ApplyRules(&r)
	assert.Equal(t, engine.RulesResource{ClampPaddles: true, DeepestWallOnly: true}, r)
}

func TestAudioEngineConfig(t *testing.T) {
	cfg := Default()
	cfg.Audio = AudioConfig{Enabled: false, Volume: 0.1}

	ac := cfg.AudioEngineConfig()
	assert.False(t, ac.Enabled)
	assert.Equal(t, 0.1, ac.Volume)
	assert.Positive(t, ac.SampleRate)
}

func TestValidateLogLevel(t *testing.T) {
	for _, level := range []string{"", "debug", "info", "warn", "error"} {
		cfg := Default()
		cfg.Log.Level = level
		assert.NoError(t, cfg.Validate(), level)
	}

	cfg := Default()
	cfg.Log.Level = "verbose"
	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "log.level")
}

func TestValidateQuitBinding(t *testing.T) {
	cfg := Default()
	delete(cfg.Keys, "quit")
	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "quit")

	cfg = Default()
	cfg.Keys["quit"] = []string{"q"}
	assert.NoError(t, cfg.Validate())
}
