package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/hexpop/internal/bubble"
	"github.com/vovakirdan/hexpop/internal/core"
	"github.com/vovakirdan/hexpop/internal/games/hexpop"
	"github.com/vovakirdan/hexpop/internal/platform/tui"
	"github.com/vovakirdan/hexpop/internal/registry"
	"github.com/vovakirdan/hexpop/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
	flagLevel      int
)

var playCmd = &cobra.Command{
	Use:   "play [mode]",
	Short: "Play campaign or endless mode",
	Long: `Start playing. With no arguments a mode selector is shown;
pass "campaign" or "endless" to skip it.

Controls:
  A/D, Left/Right  - Rotate the launcher
  Space/W/Up       - Shoot
  P/Esc            - Pause
  R                - Restart (after game over)
  Q/Ctrl+C         - Quit

Difficulty options:
  easy   - Extra lives, slower descent
  normal - Default settings
  hard   - Fewer lives, faster descent
  fixed  - No endless-mode speed progression

Examples:
  hexpop play
  hexpop play campaign
  hexpop play endless --difficulty hard
  hexpop play --level 5
  hexpop play --config ./my-hexpop.yaml`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	playCmd.Flags().IntVar(&flagLevel, "level", 0, "Campaign level to start from (1-based)")
}

func runPlay(cmd *cobra.Command, args []string) {
	// Get terminal size early for the mode selector
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	// Create runtime config
	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	hexpop.SetConfigPath(flagConfig)
	hexpop.SetDifficultyPreset(flagDifficulty)

	gameID := ""
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

	if flagLevel != 0 {
		if flagLevel < 1 || flagLevel > bubble.LevelCount() {
			fmt.Fprintf(os.Stderr, "Error: level must be between 1 and %d\n", bubble.LevelCount())
			os.Exit(1)
		}
		hexpop.SetStartLevel(flagLevel)
		if gameID == "" {
			gameID = "hexpop"
		}
	}

	// No explicit mode: show the mode/level selector
	if gameID == "" {
		selection, updatedCfg, selErr := tui.RunHexpopModeSelector(cfg)
		if selErr != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", selErr)
			os.Exit(1)
		}
		cfg = updatedCfg

		// User pressed back or quit
		if selection == nil {
			return
		}

		gameID = "hexpop"
		if selection.Mode == tui.HexpopModeEndless {
			gameID = "hexpop_endless"
		}
		if selection.Level > 0 {
			hexpop.SetStartLevel(selection.Level)
		}
	}

	// Create game instance
	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	// Run the game
	runErr := tui.Run(game, store, cfg)

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
