package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-tetra/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available gamemodes",
	Long:  `Shows a list of all registered gamemodes.`,
	Run:   runList,
}

func runList(cmd *cobra.Command, args []string) {
	modes := registry.List()

	if len(modes) == 0 {
		fmt.Println("No gamemodes available.")
		return
	}

	fmt.Println("Available gamemodes:")
	fmt.Println()

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	for _, m := range modes {
		if len(m.ID) > maxIDLen {
			maxIDLen = len(m.ID)
		}
	}

	// Print header
	fmt.Printf("  %-*s  %-10s  %s\n", maxIDLen, "ID", "Title", "Description")
	fmt.Printf("  %-*s  %-10s  %s\n", maxIDLen, "--", "-----", "-----------")

	// Print modes
	for _, m := range modes {
		fmt.Printf("  %-*s  %-10s  %s\n", maxIDLen, m.ID, m.Title, m.Description)
	}

	fmt.Println()
	fmt.Println("Run 'tetra play <id>' to play a gamemode.")
}
