package main

import (
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/leap-arcade/internal/registry"
	"github.com/vovakirdan/leap-arcade/internal/storage"
)

var (
	flagScoresLimit int
	flagScoresAll   bool
	flagScoresClear bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [game]",
	Short: "Show best runs for a course type",
	Long: `Display the best runs and totals for the specified course type.
Runs rank by segments reached, then completion, then time.
Without a game, shows totals for every game played.

Examples:
  leap scores
  leap scores leap
  leap scores leap_sprint --limit 25
  leap scores leap --all
  leap scores leap --clear`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of runs to show")
	scoresCmd.Flags().BoolVar(&flagScoresAll, "all", false, "Show every recorded run")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete all recorded runs for the game")
}

func runScores(cmd *cobra.Command, args []string) {
	if len(args) == 0 {
		runScoresOverview()
		return
	}
	gameID := args[0]

	// Check if game exists
	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'leap list' to see available games.")
		os.Exit(1)
	}
	title := registry.Title(gameID)

	// Open run storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening runs database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagScoresClear {
		if err := store.ClearRuns(gameID); err != nil {
			fmt.Fprintf(os.Stderr, "Error clearing runs: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Cleared all runs for %s.\n", title)
		return
	}

	var runs []storage.RunRecord
	if flagScoresAll {
		runs, err = store.AllRuns(gameID)
	} else {
		runs, err = store.TopRuns(gameID, flagScoresLimit)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving runs: %v\n", err)
		os.Exit(1)
	}

	// Display runs
	fmt.Printf("Best Runs - %s\n", title)
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'leap play %s' to set the first record!\n", gameID)
		return
	}

	// Print header
	fmt.Printf("  %-4s  %-5s  %-4s  %-7s  %-16s  %s\n", "Rank", "Steps", "Done", "Time", "Course", "Date")
	fmt.Printf("  %-4s  %-5s  %-4s  %-7s  %-16s  %s\n", "----", "-----", "----", "----", "------", "----")

	for i, r := range runs {
		done := ""
		if r.Completed {
			done = "yes"
		}
		fmt.Printf("  %-4d  %-5d  %-4s  %-7s  %-16s  %s\n",
			i+1, r.Score, done,
			fmt.Sprintf("%.1fs", r.Elapsed.Seconds()),
			r.Course,
			r.CreatedAt.Format("2006-01-02 15:04"),
		)
	}

	// Show totals
	stats, err := store.GetGameStats(gameID)
	if err != nil {
		return
	}
	fmt.Println()
	fmt.Printf("Runs: %d  Completed: %d  Best: %d  Average: %.1f  Jumps: %d\n",
		stats.RunsCount, stats.Completed, stats.HighScore, stats.AvgScore, stats.TotalJumps)
	if !stats.LastPlayed.IsZero() {
		fmt.Printf("Last played: %s\n", stats.LastPlayed.Format("2006-01-02 15:04"))
	}
}

// runScoresOverview prints one line of totals per game that has runs.
func runScoresOverview() {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening runs database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	all, err := store.GetAllGamesStats()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving stats: %v\n", err)
		os.Exit(1)
	}

	if len(all) == 0 {
		fmt.Println("No runs recorded yet.")
		return
	}

	ids := make([]string, 0, len(all))
	for id := range all {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	fmt.Printf("  %-14s  %-5s  %-9s  %-5s  %-7s  %s\n", "Game", "Runs", "Completed", "Best", "Average", "Last played")
	fmt.Printf("  %-14s  %-5s  %-9s  %-5s  %-7s  %s\n", "----", "----", "---------", "----", "-------", "-----------")
	for _, id := range ids {
		s := all[id]
		fmt.Printf("  %-14s  %-5d  %-9d  %-5d  %-7.1f  %s\n",
			registry.Title(id), s.RunsCount, s.Completed, s.HighScore, s.AvgScore,
			s.LastPlayed.Format("2006-01-02 15:04"))
	}
}
