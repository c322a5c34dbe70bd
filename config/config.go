package config

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/lixenwraith/festive-catch/constants"
)

// Config is the user-editable runtime configuration
type Config struct {
	SavePath string      `yaml:"save_path"`
	Audio    AudioConfig `yaml:"audio"`
	Game     GameConfig  `yaml:"game"`
	Bonus    BonusConfig `yaml:"bonus"`
}

// AudioConfig controls sound output
type AudioConfig struct {
	Enabled      bool    `yaml:"enabled"`
	MasterVolume float64 `yaml:"master_volume"`
	SampleRate   int     `yaml:"sample_rate"`
}

// GameConfig tunes the session
type GameConfig struct {
	InitialLives  int           `yaml:"initial_lives"`
	FrameInterval time.Duration `yaml:"frame_interval"`
	Seed          uint64        `yaml:"seed"` // 0 seeds from the clock
}

// BonusConfig tunes the side activities
type BonusConfig struct {
	DailySpins int `yaml:"daily_spins"`
}

// Default returns the built-in configuration
func Default() *Config {
	return &Config{
		SavePath: DefaultSavePath(),
		Audio: AudioConfig{
			Enabled:      true,
			MasterVolume: 0.3,
			SampleRate:   48000,
		},
		Game: GameConfig{
			InitialLives:  constants.InitialLives,
			FrameInterval: constants.FrameUpdateInterval,
		},
		Bonus: BonusConfig{
			DailySpins: constants.DefaultDailySpins,
		},
	}
}

// DefaultSavePath places the save file under the user config dir, or the working dir if none
func DefaultSavePath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "festive-catch-save.toml"
	}
	return filepath.Join(dir, "festive-catch", "save.toml")
}

// Load overlays the YAML file at path onto Default and validates the result
// An empty path returns the defaults
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "read config %s", path)
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && err != io.EOF {
		return nil, errors.Wrapf(err, "parse config %s", path)
	}

	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrapf(err, "config %s", path)
	}
	return cfg, nil
}

// Validate clamps soft values and rejects ones the game cannot run with
func (c *Config) Validate() error {
	if c.Audio.MasterVolume < 0 {
		c.Audio.MasterVolume = 0
	}
	if c.Audio.MasterVolume > 1 {
		c.Audio.MasterVolume = 1
	}
	if c.Audio.SampleRate < 8000 || c.Audio.SampleRate > 192000 {
		return errors.Errorf("audio.sample_rate %d outside [8000, 192000]", c.Audio.SampleRate)
	}
	if c.Game.InitialLives < 1 || c.Game.InitialLives > constants.MaxLives {
		return errors.Errorf("game.initial_lives %d outside [1, %d]", c.Game.InitialLives, constants.MaxLives)
	}
	if c.Game.FrameInterval < time.Millisecond || c.Game.FrameInterval > time.Second {
		return errors.Errorf("game.frame_interval %s outside [1ms, 1s]", c.Game.FrameInterval)
	}
	if c.Bonus.DailySpins < 0 {
		return errors.Errorf("bonus.daily_spins %d is negative", c.Bonus.DailySpins)
	}
	return nil
}

// Write stores c as YAML at path, creating parent directories
func (c *Config) Write(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return errors.Wrap(err, "encode config")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return errors.Wrap(err, "create config dir")
	}
	return errors.Wrapf(os.WriteFile(path, data, 0o644), "write config %s", path)
}
