package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/hexpop/internal/registry"
	"github.com/vovakirdan/hexpop/internal/storage"
)

var scoresCmd = &cobra.Command{
	Use:   "scores [mode]",
	Short: "Show high scores and recent rounds",
	Long: `Display the top 10 high scores for the given mode (default campaign),
followed by the most recent rounds.

Examples:
  hexpop scores
  hexpop scores endless`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func runScores(cmd *cobra.Command, args []string) {
	gameID := "hexpop"
	if len(args) > 0 {
		switch args[0] {
		case "campaign", "hexpop":
			gameID = "hexpop"
		case "endless", "hexpop_endless":
			gameID = "hexpop_endless"
		default:
			fmt.Fprintf(os.Stderr, "Error: unknown mode %q (want campaign or endless)\n", args[0])
			os.Exit(1)
		}
	}

	// Get mode title
	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}
	title := game.Title()

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	// Get top scores
	scores, err := store.TopScores(gameID, 10)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		os.Exit(1)
	}

	// Display scores
	fmt.Printf("High Scores - %s\n", title)
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Println("Play 'hexpop play' to set the first high score!")
		return
	}

	// Print header
	fmt.Printf("  %-4s  %-10s  %s\n", "Rank", "Score", "Date")
	fmt.Printf("  %-4s  %-10s  %s\n", "----", "-----", "----")

	// Print scores
	for i, entry := range scores {
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-10d  %s\n", i+1, entry.Score, dateStr)
	}

	// Show high score
	fmt.Println()
	highScore, err := store.HighScore(gameID)
	if err == nil {
		fmt.Printf("Best: %d\n", highScore)
	}

	// Show recent rounds
	rounds, err := store.RecentRounds(10)
	if err != nil || len(rounds) == 0 {
		return
	}

	fmt.Println()
	fmt.Println("Recent rounds:")
	fmt.Printf("  %-7s  %-18s  %-10s  %-5s  %s\n", "Outcome", "Level", "Score", "Combo", "Duration")
	for _, r := range rounds {
		level := fmt.Sprintf("%d. %s", r.LevelID, r.LevelName)
		fmt.Printf("  %-7s  %-18s  %-10d  x%-4d  %dm%02ds\n",
			r.Outcome, level, r.Score, r.MaxCombo, r.Duration/60, r.Duration%60)
	}
}
