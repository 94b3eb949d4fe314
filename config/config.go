// Package config loads the host settings and the rule deviations from YAML.
package config

import (
	"os"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"

	"github.com/lixenwraith/vi-pong/audio"
	"github.com/lixenwraith/vi-pong/engine"
	"github.com/lixenwraith/vi-pong/input"
	"github.com/lixenwraith/vi-pong/parameter"
)

// Config is the complete host configuration
type Config struct {
	FrameRate  int           `yaml:"frame_rate"`
	HoldWindow time.Duration `yaml:"hold_window"`

	Log   LogConfig           `yaml:"log"`
	Audio AudioConfig         `yaml:"audio"`
	Keys  map[string][]string `yaml:"keys"`
	Rules RulesConfig         `yaml:"rules"`
}

// LogConfig selects file logging
type LogConfig struct {
	Enabled     bool   `yaml:"enabled"`
	Level       string `yaml:"level"`
	Dir         string `yaml:"dir"`
	Development bool   `yaml:"development"`
}

// AudioConfig controls sound cues
type AudioConfig struct {
	Enabled bool    `yaml:"enabled"`
	Volume  float64 `yaml:"volume"`
}

// RulesConfig enables deviations from the classic toy behavior, all off by default
type RulesConfig struct {
	ClampPaddles    bool `yaml:"clamp_paddles"`
	ScoreOnGoal     bool `yaml:"score_on_goal"`
	DeepestWallOnly bool `yaml:"deepest_wall_only"`
}

// Default returns the built-in configuration
func Default() Config {
	keys := make(map[string][]string)
	for a, names := range input.DefaultKeyNames() {
		keys[a.String()] = append([]string(nil), names...)
	}
	return Config{
		FrameRate:  int(time.Second / parameter.FrameUpdateInterval),
		HoldWindow: parameter.KeyHoldWindow,
		Log: LogConfig{
			Level: "info",
			Dir:   "logs",
		},
		Audio: AudioConfig{
			Enabled: true,
			Volume:  parameter.AudioVolume,
		},
		Keys: keys,
	}
}

// Load reads path over the defaults, an empty path or a missing file yields the defaults
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, errors.Wrapf(err, "read config %s", path)
	}

	if err := Parse(data, &cfg); err != nil {
		return cfg, errors.Wrapf(err, "config %s", path)
	}
	return cfg, nil
}

// Parse decodes YAML into cfg, keeping fields the document omits, then validates
func Parse(data []byte, cfg *Config) error {
	// Keys present in the document replace the default list for that action only
	defaults := cfg.Keys
	cfg.Keys = nil
	if err := yaml.Unmarshal(data, cfg); err != nil {
		cfg.Keys = defaults
		return errors.Wrap(err, "decode yaml")
	}
	merged := make(map[string][]string, len(defaults))
	for k, v := range defaults {
		merged[k] = v
	}
	for k, v := range cfg.Keys {
		merged[k] = v
	}
	cfg.Keys = merged

	return cfg.Validate()
}

// Validate checks ranges and key names
func (c *Config) Validate() error {
	if c.FrameRate <= 0 || c.FrameRate > 1000 {
		return errors.Errorf("frame_rate %d out of range 1..1000", c.FrameRate)
	}
	if c.HoldWindow <= 0 {
		return errors.Errorf("hold_window must be positive, got %s", c.HoldWindow)
	}
	if c.Audio.Volume < 0 || c.Audio.Volume > 1 {
		return errors.Errorf("audio.volume %v out of range 0..1", c.Audio.Volume)
	}
	if _, err := zapcore.ParseLevel(c.Log.Level); err != nil {
		return errors.Errorf("log.level %q is not a zap level", c.Log.Level)
	}
	if len(c.Keys[input.ActionQuit.String()]) == 0 {
		return errors.New("keys: quit must have at least one key")
	}
	if _, err := c.KeyTable(); err != nil {
		return err
	}
	return nil
}

// FrameInterval converts the frame rate to a ticker interval
func (c *Config) FrameInterval() time.Duration {
	return time.Second / time.Duration(c.FrameRate)
}

// KeyTable builds the input table from the configured key names
func (c *Config) KeyTable() (*input.KeyTable, error) {
	names := make(map[input.Action][]string, len(c.Keys))
	for name, keys := range c.Keys {
		a, ok := input.ActionByName(name)
		if !ok {
			return nil, errors.Errorf("keys: unknown action %q", name)
		}
		names[a] = keys
	}
	kt, err := input.NewKeyTable(names)
	if err != nil {
		return nil, errors.Wrap(err, "keys")
	}
	return kt, nil
}

// ApplyRules copies the rule switches into the world's rules resource
func (c *Config) ApplyRules(r *engine.RulesResource) {
	r.ClampPaddles = c.Rules.ClampPaddles
	r.ScoreOnGoal = c.Rules.ScoreOnGoal
	r.DeepestWallOnly = c.Rules.DeepestWallOnly
}

// AudioEngineConfig converts to the audio package config
func (c *Config) AudioEngineConfig() audio.Config {
	ac := audio.DefaultConfig()
	ac.Enabled = c.Audio.Enabled
	ac.Volume = c.Audio.Volume
	return ac
}
