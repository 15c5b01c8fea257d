package config

import (
	"os"
	"path/filepath"
	"slices"
	"time"

	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/ice-orion/smooth-sheets/internal/sheet"
)

type Config struct {
	// Sheet geometry (detents are fractions of content height)
	Sheet SheetConfig `koanf:"sheet"`

	// Physics tuning for flings and settling
	Physics PhysicsConfig `koanf:"physics"`

	// Programmatic animation settings
	Animation AnimationConfig `koanf:"animation"`

	// Position persistence across runs
	State StateConfig `koanf:"state"`
}

// SheetConfig holds the resting geometry of the sheet.
type SheetConfig struct {
	Detents       []float64 `koanf:"detents"`        // snap positions as fractions of content height (default: [0, 0.5, 1])
	MinDetent     float64   `koanf:"min_detent"`     // lower bound fraction (default: 0)
	MaxDetent     float64   `koanf:"max_detent"`     // upper bound fraction (default: 1)
	InitialDetent float64   `koanf:"initial_detent"` // starting position fraction (default: 0.5)
}

// PhysicsConfig holds spring and friction tuning.
type PhysicsConfig struct {
	SpringFrequency      float64 `koanf:"spring_frequency"`       // angular frequency in Hz (default: 6.0)
	SpringDamping        float64 `koanf:"spring_damping"`         // damping ratio, 1.0 = critical (default: 1.0)
	FrictionTimeConstant float64 `koanf:"friction_time_constant"` // deceleration time constant in seconds (default: 0.325)
	RestDistance         float64 `koanf:"rest_distance"`          // distance under which motion declines (default: 0.5)
	RestVelocity         float64 `koanf:"rest_velocity"`          // velocity under which motion declines (default: 1.0)
}

// AnimationConfig holds settings for programmatic moves.
type AnimationConfig struct {
	DurationMS int    `koanf:"duration_ms"` // animation length in milliseconds (1-10000, default: 300)
	Curve      string `koanf:"curve"`       // "linear", "ease-in", "ease-out", "ease-out-cubic", or "ease-in-out"
}

// StateConfig controls position persistence.
type StateConfig struct {
	Persist *bool  `koanf:"persist"` // save the resting position across runs (default: true)
	Path    string `koanf:"path"`    // database path override (default: XDG data dir)
}

func Load() (*Config, error) {
	k := koanf.New(".")

	// Try config files in order of priority (last wins)
	configPaths := getConfigPaths()

	for _, path := range configPaths {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
				return nil, err
			}
		}
	}

	cfg := &Config{}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, err
	}

	// Expand ~ in state path override
	if cfg.State.Path != "" {
		cfg.State.Path = expandPath(cfg.State.Path)
	}

	return cfg, nil
}

func getConfigPaths() []string {
	paths := []string{}

	// 1. ~/.config/smooth-sheets/config.toml
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".config", "smooth-sheets", "config.toml"))
	}

	// 2. ./config.toml (pwd, highest priority)
	paths = append(paths, "config.toml")

	return paths
}

func expandPath(path string) string {
	if path != "" && path[0] == '~' {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[1:])
		}
	}
	return path
}

// PersistEnabled returns true unless persistence was explicitly disabled.
func (c *Config) PersistEnabled() bool {
	return c.State.Persist == nil || *c.State.Persist
}

// GetSheetConfig returns the sheet configuration with defaults applied.
func (c *Config) GetSheetConfig() SheetConfig {
	cfg := c.Sheet

	// Apply defaults, dropping detents outside [0, 1]. Detents are kept
	// in ascending order regardless of how the file lists them.
	valid := make([]float64, 0, len(cfg.Detents))
	for _, d := range cfg.Detents {
		if d >= 0 && d <= 1 {
			valid = append(valid, d)
		}
	}
	slices.Sort(valid)
	cfg.Detents = valid
	if len(cfg.Detents) == 0 {
		cfg.Detents = []float64{0, 0.5, 1}
	}
	if cfg.MinDetent < 0 || cfg.MinDetent > 1 {
		cfg.MinDetent = 0
	}
	if cfg.MaxDetent <= cfg.MinDetent || cfg.MaxDetent > 1 {
		cfg.MaxDetent = 1
	}
	if cfg.InitialDetent <= 0 || cfg.InitialDetent > 1 {
		cfg.InitialDetent = 0.5
	}

	return cfg
}

// GetPhysicsConfig returns the physics configuration with defaults applied.
func (c *Config) GetPhysicsConfig() PhysicsConfig {
	cfg := c.Physics

	if cfg.SpringFrequency <= 0 {
		cfg.SpringFrequency = 6.0
	}
	if cfg.SpringDamping <= 0 {
		cfg.SpringDamping = 1.0
	}
	if cfg.FrictionTimeConstant <= 0 {
		cfg.FrictionTimeConstant = 0.325
	}
	if cfg.RestDistance <= 0 {
		cfg.RestDistance = 0.5
	}
	if cfg.RestVelocity <= 0 {
		cfg.RestVelocity = 1.0
	}

	return cfg
}

// GetAnimationConfig returns the animation configuration with defaults applied.
func (c *Config) GetAnimationConfig() AnimationConfig {
	cfg := c.Animation

	if cfg.DurationMS <= 0 || cfg.DurationMS > 10000 {
		cfg.DurationMS = 300
	}
	switch cfg.Curve {
	case "linear", "ease-in", "ease-out", "ease-out-cubic", "ease-in-out":
	default:
		cfg.Curve = "ease-in-out"
	}

	return cfg
}

// DetentExtents converts the configured detent fractions to extents.
func (sc SheetConfig) DetentExtents() []sheet.Extent {
	extents := make([]sheet.Extent, len(sc.Detents))
	for i, d := range sc.Detents {
		extents[i] = sheet.Proportional(d)
	}
	return extents
}

// MinExtent returns the lower bound as an extent.
func (sc SheetConfig) MinExtent() sheet.Extent {
	return sheet.Proportional(sc.MinDetent)
}

// MaxExtent returns the upper bound as an extent.
func (sc SheetConfig) MaxExtent() sheet.Extent {
	return sheet.Proportional(sc.MaxDetent)
}

// InitialExtent returns the starting position as an extent.
func (sc SheetConfig) InitialExtent() sheet.Extent {
	return sheet.Proportional(sc.InitialDetent)
}

// Duration returns the animation length as a time.Duration.
func (ac AnimationConfig) Duration() time.Duration {
	return time.Duration(ac.DurationMS) * time.Millisecond
}

// Easing returns the configured animation curve.
func (ac AnimationConfig) Easing() sheet.Curve {
	switch ac.Curve {
	case "linear":
		return sheet.Linear
	case "ease-in":
		return sheet.EaseIn
	case "ease-out":
		return sheet.EaseOut
	case "ease-out-cubic":
		return sheet.EaseOutCubic
	default:
		return sheet.EaseInOut
	}
}
