package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/hexpop/internal/bubble"
)

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "List the campaign levels",
	Long:  `Shows the campaign levels with their layouts and twists.`,
	Run:   runLevels,
}

func runLevels(cmd *cobra.Command, args []string) {
	fmt.Println("Campaign levels:")
	fmt.Println()

	// Calculate name column width
	maxNameLen := 4 // "Name" header
	for _, lvl := range bubble.Levels {
		if len(lvl.Name) > maxNameLen {
			maxNameLen = len(lvl.Name)
		}
	}

	// Print header
	fmt.Printf("  %2s  %-*s  %-6s  %-11s  %s\n", "#", maxNameLen, "Name", "Colors", "Layout", "Twists")
	fmt.Printf("  %2s  %-*s  %-6s  %-11s  %s\n", "--", maxNameLen, "----", "------", "------", "------")

	// Print levels
	for _, lvl := range bubble.Levels {
		fmt.Printf("  %2d  %-*s  %-6d  %-11s  %s\n",
			lvl.ID, maxNameLen, lvl.Name, lvl.Colors, lvl.Pattern, levelTwists(lvl))
	}

	fmt.Println()
	fmt.Println("Run 'hexpop play --level <#>' to start from a specific level.")
}

// levelTwists summarizes a level's extra rules for display.
func levelTwists(lvl bubble.Level) string {
	twists := ""
	add := func(s string) {
		if twists != "" {
			twists += ", "
		}
		twists += s
	}

	if lvl.DoubleLayer {
		add("double layer")
	}
	if lvl.Obstacles > 0 {
		add(fmt.Sprintf("%d stones", lvl.Obstacles))
	}
	if lvl.TimeLimit > 0 {
		add(fmt.Sprintf("%.0fs timer", lvl.TimeLimit))
	}
	if lvl.ReducedGuide {
		add("short guide")
	}
	if twists == "" {
		twists = "-"
	}
	return twists
}
