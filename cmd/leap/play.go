package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/leap-arcade/internal/games/leap"
	"github.com/vovakirdan/leap-arcade/internal/platform/tui"
	"github.com/vovakirdan/leap-arcade/internal/registry"
	"github.com/vovakirdan/leap-arcade/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
	flagInput      string
)

var playCmd = &cobra.Command{
	Use:   "play <game>",
	Short: "Play a course type",
	Long: `Start playing the specified course type.

Controls (keyboard mode):
  Left/J/A or left click    - Hop one segment
  Right/K/D or right click  - Hop two segments
Controls (touch mode):
  Click the left half       - Hop one segment
  Click the right half      - Hop two segments
Always:
  Enter/Space or click      - Start a run
  P/Esc                     - Pause
  B                         - Back to menu
  Ctrl+S                    - Save a screenshot
  Q/Ctrl+C                  - Quit

Difficulty options:
  easy   - Start at lowest jump speed, progresses to max
  normal - Start at 30% difficulty, progresses to max
  hard   - Start at 70% difficulty, progresses to max
  fixed  - No progression, stays at config's initial level

Examples:
  leap play leap
  leap play leap_sprint --difficulty hard
  leap play leap --input touch
  leap play leap --config ./my-leap.yaml --seed 42`,
	Args: cobra.ExactArgs(1),
	Run:  runPlay,
}

func init() {
	for _, c := range []*cobra.Command{playCmd, menuCmd} {
		c.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
		c.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
		c.Flags().StringVar(&flagInput, "input", "", "Input mode: auto, keyboard, touch (default from config)")
	}
}

// configureGames applies command line settings to games created afterwards.
func configureGames(logger *log.Logger) {
	leap.SetConfigPath(flagConfig)
	leap.SetDifficultyPreset(flagDifficulty)
	leap.SetInputMode(flagInput)
	leap.SetLogger(logger)
}

func runPlay(cmd *cobra.Command, args []string) {
	gameID := args[0]

	// Check if game exists
	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'leap list' to see available games.")
		os.Exit(1)
	}

	logger, closer := interactiveLogger()
	defer closer.Close()
	configureGames(logger)

	cfg := runtimeConfig()

	// Create game instance
	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	// Open run storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open runs database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	// Run the game
	_, runErr := tui.Run(game, store, cfg, logger)

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
