package config

import (
	_ "embed"
)

//go:embed defaults/tetra.yaml
var defaultYAML []byte

// Default returns the standard configuration, matching the embedded YAML.
func Default() Config {
	return Config{
		Game: GameSettings{
			RotationSystem:  "ocular",
			Generator:       "recency",
			BagMultiplicity: 1,
			PreviewCount:    1,
		},
		Handling: HandlingSettings{
			DelayedAutoShiftMs: 167,
			AutoRepeatRateMs:   33,
			SoftDropFactor:     15.0,
			HardDropDelayUs:    100,
			GroundTimeMaxMs:    2250,
			LineClearDelayMs:   200,
			AppearanceDelayMs:  50,
		},
	}
}

// DefaultYAML returns the embedded default configuration file, for users
// who want a starting point to edit.
func DefaultYAML() []byte {
	return defaultYAML
}
