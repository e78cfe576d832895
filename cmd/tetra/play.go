package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-tetra/internal/config"
	"github.com/vovakirdan/tui-tetra/internal/platform/tui"
	"github.com/vovakirdan/tui-tetra/internal/registry"
	"github.com/vovakirdan/tui-tetra/internal/storage"
)

var (
	flagConfig    string
	flagLevel     int
	flagRotation  string
	flagGenerator string
)

var playCmd = &cobra.Command{
	Use:   "play <mode>",
	Short: "Play a gamemode",
	Long: `Start playing the specified gamemode.

Controls:
  Left/Right  - Move piece
  Z / X / S   - Rotate left / right / 180
  Down        - Soft drop
  Space       - Hard drop
  Enter       - Sonic drop
  P           - Pause
  R           - Restart (after game over)
  Q/Ctrl+C    - Quit

Examples:
  tetra play marathon
  tetra play sprint --level 5
  tetra play master --rotation super
  tetra play marathon --generator bag
  tetra play marathon --config ./my-tetra.yaml`,
	Args: cobra.ExactArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	playCmd.Flags().IntVar(&flagLevel, "level", 0, "Starting level (modes that allow it)")
	playCmd.Flags().StringVar(&flagRotation, "rotation", "", "Rotation system: ocular, classic, super")
	playCmd.Flags().StringVar(&flagGenerator, "generator", "", "Piece generator: recency, bag, uniform, total-relative")
}

// buildOptions loads the config file, applies flag overrides, and converts
// it into per-game options.
func buildOptions() (registry.Options, error) {
	settings, err := config.Load(flagConfig)
	if err != nil {
		return registry.Options{}, err
	}
	if flagRotation != "" {
		settings.Game.RotationSystem = flagRotation
	}
	if flagGenerator != "" {
		settings.Game.Generator = flagGenerator
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	engineCfg, err := settings.ToEngine(seed)
	if err != nil {
		return registry.Options{}, err
	}

	return registry.Options{
		StartLevel: flagLevel,
		Config:     engineCfg,
	}, nil
}

// terminalSize returns the current terminal dimensions, with fallbacks.
func terminalSize() (width, height int) {
	width, height = 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}
	return width, height
}

func runPlay(cmd *cobra.Command, args []string) {
	modeID := args[0]

	if !registry.Exists(modeID) {
		fmt.Fprintf(os.Stderr, "Error: unknown gamemode %q\n", modeID)
		fmt.Fprintln(os.Stderr, "Run 'tetra list' to see available gamemodes.")
		os.Exit(1)
	}

	opts, err := buildOptions()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	game, err := registry.Create(modeID, opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	var info registry.ModeInfo
	for _, m := range registry.List() {
		if m.ID == modeID {
			info = m
			break
		}
	}

	// Open results storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open results database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	width, height := terminalSize()
	rt := tui.Runtime{Width: width, Height: height, TickRate: flagFPS}

	runErr := tui.Run(info, opts, game, store, rt)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
