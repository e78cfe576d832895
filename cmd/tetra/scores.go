package main

import (
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-tetra/internal/registry"
	"github.com/vovakirdan/tui-tetra/internal/storage"
)

var flagFastest bool

var scoresCmd = &cobra.Command{
	Use:   "scores [mode]",
	Short: "Show results for a gamemode",
	Long: `Display the top 10 results for the specified gamemode, or a
per-mode statistics overview when no mode is given.

Examples:
  tetra scores
  tetra scores marathon
  tetra scores sprint --fastest`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagFastest, "fastest", false, "Rank wins by completion time instead of score")
}

func runScores(cmd *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening results database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if len(args) == 0 {
		printOverview(store)
		return
	}

	modeID := args[0]
	if !registry.Exists(modeID) {
		fmt.Fprintf(os.Stderr, "Error: unknown gamemode %q\n", modeID)
		fmt.Fprintln(os.Stderr, "Run 'tetra list' to see available gamemodes.")
		os.Exit(1)
	}

	var (
		results []storage.Result
		title   string
	)
	if flagFastest {
		results, err = store.FastestWins(modeID, 10)
		title = "Fastest Wins"
	} else {
		results, err = store.TopResults(modeID, 10)
		title = "Top Results"
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving results: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("%s - %s\n", title, modeID)
	fmt.Println()

	if len(results) == 0 {
		fmt.Println("No results recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'tetra play %s' to set the first result!\n", modeID)
		return
	}

	// Print header
	fmt.Printf("  %-4s  %-10s  %-6s  %-6s  %-6s  %-4s  %s\n", "Rank", "Score", "Lines", "Level", "Time", "Won", "Date")
	fmt.Printf("  %-4s  %-10s  %-6s  %-6s  %-6s  %-4s  %s\n", "----", "-----", "-----", "-----", "----", "---", "----")

	// Print results
	for i, r := range results {
		won := ""
		if r.Won {
			won = "yes"
		}
		timeStr := fmt.Sprintf("%02d:%02d", r.Duration/60, r.Duration%60)
		dateStr := r.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-10d  %-6d  %-6d  %-6s  %-4s  %s\n", i+1, r.Score, r.Lines, r.Level, timeStr, won, dateStr)
	}

	fmt.Println()
	highScore, err := store.HighScore(modeID)
	if err == nil && highScore > 0 {
		fmt.Printf("Best: %d\n", highScore)
	}
}

// printOverview shows aggregate statistics for every mode with results.
func printOverview(store *storage.Store) {
	stats, err := store.AllStats()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving statistics: %v\n", err)
		os.Exit(1)
	}

	if len(stats) == 0 {
		fmt.Println("No results recorded yet.")
		return
	}

	ids := make([]string, 0, len(stats))
	for id := range stats {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	fmt.Println("Results overview:")
	fmt.Println()
	fmt.Printf("  %-10s  %-6s  %-5s  %-10s  %-6s  %s\n", "Mode", "Games", "Wins", "Best", "Lines", "Last Played")
	fmt.Printf("  %-10s  %-6s  %-5s  %-10s  %-6s  %s\n", "----", "-----", "----", "----", "-----", "-----------")

	for _, id := range ids {
		s := stats[id]
		fmt.Printf("  %-10s  %-6d  %-5d  %-10d  %-6d  %s\n",
			id, s.GamesCount, s.WinsCount, s.HighScore, s.MostLines,
			s.LastPlayed.Format("2006-01-02 15:04"))
	}
}
