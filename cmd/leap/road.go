package main

import (
	"fmt"
	"math/rand"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/leap-arcade/internal/config"
	"github.com/vovakirdan/leap-arcade/internal/games/leap"
	"github.com/vovakirdan/leap-arcade/internal/storage"
)

var flagRoadLength int

var roadCmd = &cobra.Command{
	Use:   "road",
	Short: "Print the road a seed generates",
	Long: `Generate a road without playing it and print its layout and course code.
'#' is a block, '_' is a gap. The same --seed and --length always print
the same road. Without --length it is the first road 'leap play leap'
builds with the same --seed, --config and --difficulty.

Examples:
  leap road --seed 42
  leap road --seed 42 --difficulty hard
  leap road --seed 42 --length 80
  leap road --config ./my-leap.yaml`,
	Args: cobra.NoArgs,
	Run:  runRoad,
}

func init() {
	roadCmd.Flags().IntVar(&flagRoadLength, "length", 0, "Road length (default from config)")
	roadCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	roadCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
}

func runRoad(_ *cobra.Command, _ []string) {
	logger, err := consoleLogger("leap-road")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	cfg, err := config.LoadLeap(flagConfig)
	if err != nil {
		logger.Warn("using default config", "err", err)
		cfg = config.DefaultLeapConfig()
	}
	if preset := config.ParsePreset(flagDifficulty); preset != "" {
		config.ApplyLeapPreset(&cfg, preset)
	}

	length := flagRoadLength
	if length == 0 {
		length = cfg.Road.Length
	}
	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	gen := leap.NewRoadGenerator(rand.New(rand.NewSource(seed)), nil, cfg.Road.UnitSize, logger)
	road, err := gen.Generate(length)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Println(road.String())
	fmt.Println()
	fmt.Printf("Seed:    %d\n", seed)
	fmt.Printf("Length:  %d (%d blocks, %d gaps)\n", road.Len(), road.SolidCount(), road.GapCount())
	fmt.Printf("Gaps at: %s\n", gapList(road.Segments()))
	fmt.Printf("Course:  %s\n", road.Fingerprint())

	// Best run on this exact layout, if the database has one
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Debug("runs database unavailable", "err", err)
		return
	}
	defer store.Close()

	best, err := store.CourseBest(road.Fingerprint())
	if err != nil {
		logger.Warn("course lookup failed", "err", err)
		return
	}
	if best == nil {
		fmt.Println("Record:  none yet")
		return
	}
	status := "reached"
	if best.Completed {
		status = "completed"
	}
	fmt.Printf("Record:  %d steps, %s in %.1fs (%s)\n", best.Score, status, best.Elapsed.Seconds(), best.GameID)
}

// gapList formats the indices of the empty segments, e.g. "3, 7, 8".
func gapList(segs []leap.Segment) string {
	var gaps []string
	for i, s := range segs {
		if s == leap.Empty {
			gaps = append(gaps, strconv.Itoa(i))
		}
	}
	if len(gaps) == 0 {
		return "none"
	}
	return strings.Join(gaps, ", ")
}
