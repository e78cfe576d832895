// Package config provides YAML-based configuration loading for the game's
// handling and rule settings.
package config

import (
	"fmt"
	"time"

	"github.com/vovakirdan/tui-tetra/internal/engine"
)

// Config is the full user-tunable configuration file.
type Config struct {
	Game     GameSettings     `yaml:"game"`
	Handling HandlingSettings `yaml:"handling"`
}

// GameSettings selects the rule variants of a game.
type GameSettings struct {
	// RotationSystem is one of "ocular", "classic" or "super".
	RotationSystem string `yaml:"rotation_system"`
	// Generator is one of "recency", "bag", "uniform" or "total-relative".
	Generator string `yaml:"generator"`
	// BagMultiplicity is how many of each shape a bag holds; only used by
	// the bag generator.
	BagMultiplicity int `yaml:"bag_multiplicity"`
	PreviewCount    int `yaml:"preview_count"`
}

// HandlingSettings are the timing tunables. Durations are spelled out in
// the unit of their field name so the YAML stays plain numbers.
type HandlingSettings struct {
	DelayedAutoShiftMs int     `yaml:"delayed_auto_shift_ms"`
	AutoRepeatRateMs   int     `yaml:"auto_repeat_rate_ms"`
	SoftDropFactor     float64 `yaml:"soft_drop_factor"`
	HardDropDelayUs    int     `yaml:"hard_drop_delay_us"`
	GroundTimeMaxMs    int     `yaml:"ground_time_max_ms"`
	LineClearDelayMs   int     `yaml:"line_clear_delay_ms"`
	AppearanceDelayMs  int     `yaml:"appearance_delay_ms"`
	NoSoftDropLock     bool    `yaml:"no_soft_drop_lock"`
}

// ParseRotationSystem maps a config name onto the engine's rotation system.
func ParseRotationSystem(name string) (engine.RotationSystem, error) {
	switch name {
	case "", "ocular":
		return engine.RotationOcular, nil
	case "classic":
		return engine.RotationClassic, nil
	case "super":
		return engine.RotationSuper, nil
	default:
		return 0, fmt.Errorf("config: unknown rotation system %q", name)
	}
}

// NewGenerator builds the piece generator the settings name.
func (s GameSettings) NewGenerator() (*engine.Generator, error) {
	switch s.Generator {
	case "", "recency":
		return engine.NewRecency(), nil
	case "bag":
		multiplicity := s.BagMultiplicity
		if multiplicity == 0 {
			multiplicity = 1
		}
		return engine.NewBag(multiplicity), nil
	case "uniform":
		return engine.NewUniform(), nil
	case "total-relative":
		return engine.NewTotalRelative(), nil
	default:
		return nil, fmt.Errorf("config: unknown generator %q", s.Generator)
	}
}

// ToEngine converts the file configuration into an engine GameConfig with
// the given RNG seed.
func (c Config) ToEngine(seed int64) (engine.GameConfig, error) {
	rs, err := ParseRotationSystem(c.Game.RotationSystem)
	if err != nil {
		return engine.GameConfig{}, err
	}
	gen, err := c.Game.NewGenerator()
	if err != nil {
		return engine.GameConfig{}, err
	}
	cfg := engine.GameConfig{
		RotationSystem:   rs,
		Generator:        gen,
		PreviewCount:     c.Game.PreviewCount,
		DelayedAutoShift: time.Duration(c.Handling.DelayedAutoShiftMs) * time.Millisecond,
		AutoRepeatRate:   time.Duration(c.Handling.AutoRepeatRateMs) * time.Millisecond,
		SoftDropFactor:   c.Handling.SoftDropFactor,
		HardDropDelay:    time.Duration(c.Handling.HardDropDelayUs) * time.Microsecond,
		GroundTimeMax:    time.Duration(c.Handling.GroundTimeMaxMs) * time.Millisecond,
		LineClearDelay:   time.Duration(c.Handling.LineClearDelayMs) * time.Millisecond,
		AppearanceDelay:  time.Duration(c.Handling.AppearanceDelayMs) * time.Millisecond,
		NoSoftDropLock:   c.Handling.NoSoftDropLock,
		Seed:             seed,
	}
	if err := cfg.Validate(); err != nil {
		return engine.GameConfig{}, err
	}
	return cfg, nil
}
