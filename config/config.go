package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/BurntSushi/toml"

	"github.com/lixenwraith/side-fighter/parameter"
)

// Environment overrides
const (
	EnvConfigPath   = "SIDE_FIGHTER_CONFIG"
	EnvAudioEnabled = "SIDE_FIGHTER_AUDIO_ENABLED"
	EnvLogLevel     = "SIDE_FIGHTER_LOG_LEVEL"
	EnvMasterVolume = "SIDE_FIGHTER_MASTER_VOLUME" // 0-100
	DefaultPath     = "side-fighter.toml"
)

type Config struct {
	Stage   StageConfig   `toml:"stage"`
	Player  PlayerConfig  `toml:"player"`
	Alien   AlienConfig   `toml:"alien"`
	Effects EffectsConfig `toml:"effects"`
	Audio   AudioConfig   `toml:"audio"`
	Input   InputConfig   `toml:"input"`
	Logging LoggingConfig `toml:"logging"`
	Seed    uint64        `toml:"seed"` // 0 = clock seeded
}

type StageConfig struct {
	Width           int `toml:"width"`
	Height          int `toml:"height"`
	FPS             int `toml:"fps"`
	ResetDelayTicks int `toml:"reset_delay_ticks"`
	MaxStars        int `toml:"max_stars"`
	ListCapacity    int `toml:"list_capacity"`
}

type PlayerConfig struct {
	Speed       float64 `toml:"speed"`
	BulletSpeed float64 `toml:"bullet_speed"`
	ReloadTicks int     `toml:"reload_ticks"`
	Health      int     `toml:"health"`
	StartX      float64 `toml:"start_x"`
	StartY      float64 `toml:"start_y"`
}

type AlienConfig struct {
	Health           int     `toml:"health"`
	BulletSpeed      float64 `toml:"bullet_speed"`
	BulletSpeedRange int     `toml:"bullet_speed_range"`
	HeavyBulletSpeed float64 `toml:"heavy_bullet_speed"`
	SpawnMinTicks    int     `toml:"spawn_min_ticks"`
	SpawnRangeTicks  int     `toml:"spawn_range_ticks"`
	ReloadRangeTicks int     `toml:"reload_range_ticks"`
}

type EffectsConfig struct {
	ExplosionParticles int     `toml:"explosion_particles"`
	DebrisLifeTicks    int     `toml:"debris_life_ticks"`
	Gravity            float64 `toml:"gravity"`
}

type AudioConfig struct {
	Enabled      bool    `toml:"enabled"`
	MasterVolume float64 `toml:"master_volume"` // 0.0-1.0
	SampleRate   int     `toml:"sample_rate"`
}

type InputConfig struct {
	// HoldTicks keeps a key down after its last press event
	// Terminals report presses and auto-repeat, never releases
	HoldTicks int `toml:"hold_ticks"`
}

type LoggingConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"` // "json" or "console"
	File   string `toml:"file"`   // empty disables logging
}

// Default returns the stock tuning
func Default() *Config {
	return &Config{
		Stage: StageConfig{
			Width:           parameter.ScreenWidth,
			Height:          parameter.ScreenHeight,
			FPS:             parameter.FPS,
			ResetDelayTicks: parameter.StageResetDelayTicks,
			MaxStars:        parameter.MaxStars,
			ListCapacity:    parameter.ListCapacity,
		},
		Player: PlayerConfig{
			Speed:       parameter.PlayerSpeed,
			BulletSpeed: parameter.PlayerBulletSpeed,
			ReloadTicks: parameter.PlayerReloadTicks,
			Health:      parameter.PlayerHealth,
			StartX:      parameter.PlayerStartX,
			StartY:      parameter.PlayerStartY,
		},
		Alien: AlienConfig{
			Health:           parameter.EnemyHealth,
			BulletSpeed:      parameter.AlienBulletSpeed,
			BulletSpeedRange: parameter.AlienBulletSpeedRange,
			HeavyBulletSpeed: parameter.AlienHeavyBulletSpeed,
			SpawnMinTicks:    parameter.EnemySpawnMinTicks,
			SpawnRangeTicks:  parameter.EnemySpawnRangeTicks,
			ReloadRangeTicks: parameter.AlienReloadRangeTicks,
		},
		Effects: EffectsConfig{
			ExplosionParticles: parameter.ExplosionParticles,
			DebrisLifeTicks:    parameter.DebrisLifeTicks,
			Gravity:            parameter.DebrisGravity,
		},
		Audio: AudioConfig{
			Enabled:      true,
			MasterVolume: 0.5,
			SampleRate:   44100,
		},
		Input: InputConfig{
			HoldTicks: 6,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

// Load reads a TOML file over the defaults
// A missing file is not an error, defaults are returned as-is
func Load(path string) (*Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// ApplyEnv overrides fields from the environment, malformed values are ignored
func (c *Config) ApplyEnv() {
	if enabled := os.Getenv(EnvAudioEnabled); enabled != "" {
		if val, err := strconv.ParseBool(enabled); err == nil {
			c.Audio.Enabled = val
		}
	}
	// Load master volume (0-100 converted to 0.0-1.0)
	if volume := os.Getenv(EnvMasterVolume); volume != "" {
		if val, err := strconv.Atoi(volume); err == nil {
			c.Audio.MasterVolume = min(max(float64(val)/100.0, 0), 1)
		}
	}
	if level := os.Getenv(EnvLogLevel); level != "" {
		c.Logging.Level = level
	}
}

// ErrInvalid wraps every validation failure
var ErrInvalid = errors.New("invalid config")

// Validate rejects values the simulation cannot run with
func (c *Config) Validate() error {
	switch {
	case c.Stage.Width <= 0 || c.Stage.Height <= 0:
		return fmt.Errorf("%w: stage size %dx%d", ErrInvalid, c.Stage.Width, c.Stage.Height)
	case c.Stage.FPS <= 0:
		return fmt.Errorf("%w: fps %d", ErrInvalid, c.Stage.FPS)
	case c.Stage.ListCapacity < 1:
		return fmt.Errorf("%w: list capacity %d", ErrInvalid, c.Stage.ListCapacity)
	case c.Stage.MaxStars < 0:
		return fmt.Errorf("%w: max stars %d", ErrInvalid, c.Stage.MaxStars)
	case c.Player.Health <= 0 || c.Alien.Health <= 0:
		return fmt.Errorf("%w: health must be positive", ErrInvalid)
	case c.Player.ReloadTicks < 0:
		return fmt.Errorf("%w: reload ticks %d", ErrInvalid, c.Player.ReloadTicks)
	case c.Audio.MasterVolume < 0 || c.Audio.MasterVolume > 1:
		return fmt.Errorf("%w: master volume %.2f", ErrInvalid, c.Audio.MasterVolume)
	}
	return nil
}
