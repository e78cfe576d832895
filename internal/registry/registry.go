// Package registry provides a global registry for gamemode factories.
// Modes register themselves in init() functions, allowing the platform
// to discover and start games without hardcoded dependencies.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/tui-tetra/internal/engine"
)

// ModeInfo contains metadata about a registered gamemode.
type ModeInfo struct {
	ID          string
	Title       string
	Description string
}

// Options carries the per-run knobs a factory may honor. Factories decide
// what applies: a sprint mode uses the start level, the puzzle mode does
// not.
type Options struct {
	// StartLevel is the starting gravity level, 0 meaning the mode's
	// default.
	StartLevel int
	// Config is the handling configuration the game runs with.
	Config engine.GameConfig
}

// Factory creates a ready-to-play game for its mode.
type Factory func(opts Options) (*engine.Game, error)

type entry struct {
	info    ModeInfo
	factory Factory
}

var (
	modes = make(map[string]entry)
	mu    sync.RWMutex
)

// Register adds a gamemode factory to the registry.
// Typically called from a mode package's init() function.
// Panics if a mode with the same ID is already registered.
func Register(info ModeInfo, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := modes[info.ID]; exists {
		panic(fmt.Sprintf("registry: mode %q already registered", info.ID))
	}
	modes[info.ID] = entry{info: info, factory: f}
}

// List returns information about all registered modes, sorted by ID.
func List() []ModeInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]ModeInfo, 0, len(modes))
	for _, e := range modes {
		result = append(result, e.info)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})
	return result
}

// Create starts a new game of the mode with the given ID.
// Returns an error if the mode ID is not registered.
func Create(id string, opts Options) (*engine.Game, error) {
	mu.RLock()
	e, ok := modes[id]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("registry: unknown mode %q", id)
	}
	return e.factory(opts)
}

// Exists checks if a mode with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := modes[id]
	return ok
}
