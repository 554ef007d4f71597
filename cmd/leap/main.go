// leap is a terminal arcade about crossing a road of blocks and gaps,
// one or two segments per jump.
//
// Usage:
//
//	leap list              - List available courses
//	leap play <game>       - Play a course type
//	leap menu              - Start menu to pick interactively
//	leap serve             - Start SSH server for remote play
//	leap scores <game>     - Show best runs for a course type
//	leap road              - Print the road a seed generates
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible roads
//	--db <path>           - Set database path (default: ~/.arcade/leap.db)
//	--log-level <level>   - debug, info, warn, error
//	--log-file <path>     - Log file for interactive sessions
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/leap-arcade/internal/core"
	// Import games to register them
	_ "github.com/vovakirdan/leap-arcade/internal/games/leap"
	"github.com/vovakirdan/leap-arcade/internal/logging"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagLogLevel string
	flagLogFile  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "leap",
	Short: "Leap - jump the gaps in your terminal",
	Long: `Leap is a terminal arcade game. Every road starts on a block and
alternates blocks with single gaps. Hop one segment or two, and reach
the end without falling.

Available commands:
  list     - Show all course types
  play     - Play a course type directly
  menu     - Interactive picker menu
  serve    - Start SSH server for remote play
  scores   - View best runs
  road     - Print the road generated by a seed

Examples:
  leap list
  leap play leap
  leap menu
  leap serve --ssh :2222
  leap scores leap_sprint
  leap road --seed 42 --length 30`,
	SilenceUsage: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.arcade/leap.db", "Path to runs database")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", logging.DefaultFile, "Log file used while a game owns the terminal")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(roadCmd)
}

// interactiveLogger logs to the rotating file, since the terminal is taken
// by the game. Falls back to a discarding logger when the file is unusable.
func interactiveLogger() (*log.Logger, io.Closer) {
	logger, closer, err := logging.New(logging.Options{
		Level:  flagLogLevel,
		File:   flagLogFile,
		Prefix: "leap",
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: logging disabled: %v\n", err)
		return log.New(io.Discard), io.NopCloser(nil)
	}
	return logger, closer
}

// consoleLogger logs to stderr.
func consoleLogger(prefix string) (*log.Logger, error) {
	logger, _, err := logging.New(logging.Options{
		Level:  flagLogLevel,
		Prefix: prefix,
	})
	return logger, err
}

// runtimeConfig sizes the screen from the terminal, with 80x24 as fallback.
func runtimeConfig() core.RuntimeConfig {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}
