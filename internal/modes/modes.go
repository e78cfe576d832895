// Package modes registers the playable gamemodes. Importing it for side
// effects populates the registry with the standard presets and the puzzle
// mode.
package modes

import (
	"github.com/vovakirdan/tui-tetra/internal/engine"
	"github.com/vovakirdan/tui-tetra/internal/registry"
)

func init() {
	registry.Register(registry.ModeInfo{
		ID:          "marathon",
		Title:       "Marathon",
		Description: "Clear lines and climb the levels; win at level 20.",
	}, preset(engine.ModeMarathon, false))

	registry.Register(registry.ModeInfo{
		ID:          "sprint",
		Title:       "40-Lines",
		Description: "Clear 40 lines as fast as possible.",
	}, leveled(engine.ModeSprint))

	registry.Register(registry.ModeInfo{
		ID:          "ultra",
		Title:       "Time Trial",
		Description: "Score as much as possible in three minutes.",
	}, leveled(engine.ModeUltra))

	registry.Register(registry.ModeInfo{
		ID:          "master",
		Title:       "Master",
		Description: "300 lines at instant gravity.",
	}, preset(engine.ModeMaster, false))

	registry.Register(registry.ModeInfo{
		ID:          "zen",
		Title:       "Endless",
		Description: "No limits, no pressure.",
	}, preset(engine.ModeZen, true))

	registry.Register(registry.ModeInfo{
		ID:          "puzzle",
		Title:       "Puzzle",
		Description: "Spin your way through handcrafted clearing stages.",
	}, newPuzzleGame)
}

// preset wraps a fixed gamemode constructor into a factory. Modes with a
// prescribed start level ignore the option unless adjustable is set.
func preset(mode func() engine.GameMode, adjustable bool) registry.Factory {
	return func(opts registry.Options) (*engine.Game, error) {
		m := mode()
		if adjustable && opts.StartLevel > 0 {
			m.StartLevel = opts.StartLevel
		}
		return engine.NewWithConfig(m, opts.Config)
	}
}

// leveled wraps a constructor parameterized on the start level.
func leveled(mode func(startLevel int) engine.GameMode) registry.Factory {
	return func(opts registry.Options) (*engine.Game, error) {
		level := opts.StartLevel
		if level <= 0 {
			level = 1
		}
		return engine.NewWithConfig(mode(level), opts.Config)
	}
}
