// tetra is a terminal game of falling tetrominos.
//
// Usage:
//
//	tetra list              - List available gamemodes
//	tetra play <mode>       - Play a gamemode
//	tetra menu              - Start menu to pick gamemodes interactively
//	tetra serve             - Start SSH server for remote play
//	tetra scores [mode]     - Show results for a gamemode
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--db <path>     - Set database path (default: ~/.tetra/scores.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import modes to register them
	_ "github.com/vovakirdan/tui-tetra/internal/modes"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "tetra",
	Short: "Tetra - Stack falling tetrominos in your terminal",
	Long: `Tetra is a terminal game of falling tetrominos with several
gamemodes, playable locally or served over SSH.

Available commands:
  list     - Show all available gamemodes
  play     - Play a specific gamemode directly
  menu     - Interactive gamemode picker menu
  serve    - Start SSH server for remote play
  scores   - View results and statistics

Examples:
  tetra list
  tetra play marathon
  tetra play sprint --level 5
  tetra menu
  tetra serve --ssh :2222
  tetra scores sprint --fastest`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.tetra/scores.db", "Path to results database")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}
