package engine

import (
	"fmt"
	"time"
)

// GameConfig holds the user-facing configuration mostly concerning
// time-sensitive handling mechanics. It is fixed for the duration of a game
// except through the trusted modifier surface.
type GameConfig struct {
	// RotationSystem resolves rotation attempts against the board.
	RotationSystem RotationSystem
	// Generator produces the infinite piece sequence.
	Generator *Generator
	// PreviewCount is how many upcoming pieces are kept visible in the
	// state's preview queue.
	PreviewCount int
	// DelayedAutoShift is how long a held move button waits before
	// auto-repeat begins.
	DelayedAutoShift time.Duration
	// AutoRepeatRate is the interval between auto-repeated moves once DAS
	// has elapsed.
	AutoRepeatRate time.Duration
	// SoftDropFactor is how much faster than gravity a piece falls while
	// soft drop is held.
	SoftDropFactor float64
	// HardDropDelay is how long after a hard drop lands until the piece
	// lock is attempted.
	HardDropDelay time.Duration
	// GroundTimeMax caps the total time a piece may touch ground across a
	// placement before it locks regardless of move resets.
	GroundTimeMax time.Duration
	// LineClearDelay is the pause between a clearing lock and the rows
	// actually being removed.
	LineClearDelay time.Duration
	// AppearanceDelay is the additional wait before the next piece spawns.
	AppearanceDelay time.Duration
	// NoSoftDropLock disables the immediate lock a grounded soft drop
	// normally causes.
	NoSoftDropLock bool
	// Seed drives the game's RNG. 0 means derive from the current time,
	// which is the only point the engine ever consults a clock.
	Seed int64
}

// DefaultConfig returns the standard handling configuration.
func DefaultConfig() GameConfig {
	return GameConfig{
		RotationSystem:   RotationOcular,
		Generator:        NewRecency(),
		PreviewCount:     1,
		DelayedAutoShift: 167 * time.Millisecond,
		AutoRepeatRate:   33 * time.Millisecond,
		SoftDropFactor:   15.0,
		HardDropDelay:    100 * time.Microsecond,
		GroundTimeMax:    2250 * time.Millisecond,
		LineClearDelay:   200 * time.Millisecond,
		AppearanceDelay:  50 * time.Millisecond,
	}
}

// Validate checks the configuration for values the engine cannot run with.
func (c *GameConfig) Validate() error {
	if c.Generator == nil {
		return fmt.Errorf("engine: config has no piece generator")
	}
	if c.PreviewCount < 0 {
		return fmt.Errorf("engine: negative preview count %d", c.PreviewCount)
	}
	if c.SoftDropFactor <= 0 {
		return fmt.Errorf("engine: soft drop factor must be positive, got %g", c.SoftDropFactor)
	}
	for _, d := range []struct {
		name string
		val  time.Duration
	}{
		{"delayed auto shift", c.DelayedAutoShift},
		{"auto repeat rate", c.AutoRepeatRate},
		{"hard drop delay", c.HardDropDelay},
		{"ground time max", c.GroundTimeMax},
		{"line clear delay", c.LineClearDelay},
		{"appearance delay", c.AppearanceDelay},
	} {
		if d.val < 0 {
			return fmt.Errorf("engine: negative %s %v", d.name, d.val)
		}
	}
	return nil
}

// levelAt20G is the level at which gravity reaches 20G and pieces fall to
// the floor instantly.
const levelAt20G = 19

// dropDelay is the gravity interval for a level. A positive softDropFactor
// divides the delay while soft drop is held.
func dropDelay(level int, softDropFactor float64) time.Duration {
	var delay time.Duration
	switch level {
	case 1:
		delay = 1_000_000_000
	case 2:
		delay = 793_000_000
	case 3:
		delay = 617_796_000
	case 4:
		delay = 472_729_139
	case 5:
		delay = 355_196_928
	case 6:
		delay = 262_003_550
	case 7:
		delay = 189_677_245
	case 8:
		delay = 134_734_731
	case 9:
		delay = 93_882_249
	case 10:
		delay = 64_151_585
	case 11:
		delay = 42_976_258
	case 12:
		delay = 28_217_678
	case 13:
		delay = 18_153_329
	case 14:
		delay = 11_439_342
	case 15:
		delay = 7_058_616
	case 16:
		delay = 4_263_557
	case 17:
		delay = 2_520_084
	case 18:
		delay = 1_457_139
	case 19:
		delay = 823_907
	default:
		delay = 0 // 20G and beyond
	}
	if softDropFactor > 0 {
		delay = time.Duration(float64(delay) / softDropFactor)
	}
	return delay
}

// lockDelay is how long a grounded piece may rest before a lock attempt,
// shrinking at the levels past 20G.
func lockDelay(level int) time.Duration {
	switch {
	case level <= 19:
		return 500 * time.Millisecond
	case level == 20:
		return 450 * time.Millisecond
	case level == 21:
		return 400 * time.Millisecond
	case level == 22:
		return 350 * time.Millisecond
	case level == 23:
		return 300 * time.Millisecond
	case level == 24:
		return 250 * time.Millisecond
	case level == 25:
		return 200 * time.Millisecond
	case level == 26:
		return 195 * time.Millisecond
	case level == 27:
		return 184 * time.Millisecond
	case level == 28:
		return 167 * time.Millisecond
	case level == 29:
		return 151 * time.Millisecond
	default:
		return 150 * time.Millisecond
	}
}
