// hexpop is a terminal bubble-shooter: pop matching clusters before the
// ceiling pushes the field into your launcher.
//
// Usage:
//
//	hexpop play [mode]       - Play campaign or endless mode
//	hexpop menu              - Start interactive mode picker
//	hexpop levels            - List the campaign levels
//	hexpop serve             - Start SSH server for remote play
//	hexpop scores [mode]     - Show high scores and recent rounds
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--db <path>     - Set database path (default: ~/.hexpop/scores.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import game modes to register them
	_ "github.com/vovakirdan/hexpop/internal/games/hexpop"
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
	Use:   "hexpop",
	Short: "Hexpop - Pop bubble clusters in your terminal",
	Long: `Hexpop is a terminal bubble-shooter. Aim the launcher, fire bubbles
into the descending field, and pop clusters of three or more before the
ceiling reaches your launcher.

Available commands:
  play     - Play campaign or endless mode directly
  menu     - Interactive mode picker menu
  levels   - List the campaign levels
  serve    - Start SSH server for remote play
  scores   - View high scores and recent rounds

Examples:
  hexpop play
  hexpop play endless
  hexpop play --level 5
  hexpop menu
  hexpop serve --ssh :2222
  hexpop scores`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.hexpop/scores.db", "Path to scores database")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(levelsCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}
