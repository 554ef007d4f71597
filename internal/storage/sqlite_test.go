package storage

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/vovakirdan/leap-arcade/internal/core"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Check that the file was created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	runs := []RunRecord{
		{GameID: "leap", Score: 12, Course: "aaaa", Jumps: 9, Elapsed: 3 * time.Second},
		{GameID: "leap", Score: 4, Course: "bbbb", Jumps: 3, Elapsed: time.Second},
		{GameID: "leap", Score: 30, Completed: true, Course: "cccc", Jumps: 20, Elapsed: 9500 * time.Millisecond},
		{GameID: "leap_sprint", Score: 15, Completed: true, Course: "dddd", Jumps: 10},
	}
	for _, r := range runs {
		if _, err := store.SaveRun(r); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	top, err := store.TopRuns("leap", 10)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(top) != 3 {
		t.Fatalf("Expected 3 runs, got %d", len(top))
	}
	if top[0].Score != 30 || top[1].Score != 12 || top[2].Score != 4 {
		t.Errorf("Runs not in expected order: %+v", top)
	}

	best := top[0]
	if !best.Completed || best.Course != "cccc" || best.Jumps != 20 {
		t.Errorf("Fields not round-tripped: %+v", best)
	}
	if best.Elapsed != 9500*time.Millisecond {
		t.Errorf("Expected elapsed 9.5s, got %v", best.Elapsed)
	}
	if best.CreatedAt.IsZero() {
		t.Error("Expected created_at to be set")
	}

	sprint, _ := store.TopRuns("leap_sprint", 10)
	if len(sprint) != 1 {
		t.Errorf("Expected 1 sprint run, got %d", len(sprint))
	}
}

func TestStoreRankingTieBreak(t *testing.T) {
	store := openTestStore(t)

	store.SaveRun(RunRecord{GameID: "leap", Score: 10, Elapsed: 5 * time.Second})
	store.SaveRun(RunRecord{GameID: "leap", Score: 10, Completed: true, Elapsed: 8 * time.Second})
	store.SaveRun(RunRecord{GameID: "leap", Score: 10, Completed: true, Elapsed: 4 * time.Second})

	top, err := store.TopRuns("leap", 3)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if !top[0].Completed || top[0].Elapsed != 4*time.Second {
		t.Errorf("Expected fastest completed run first, got %+v", top[0])
	}
	if top[2].Completed {
		t.Errorf("Expected unfinished run last, got %+v", top[2])
	}
}

func TestStoreTopRunsLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 5; i++ {
		store.SaveRun(RunRecord{GameID: "test", Score: (i + 1) * 10})
	}

	// Request only top 3
	top, err := store.TopRuns("test", 3)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}

	if len(top) != 3 {
		t.Errorf("Expected 3 runs with limit, got %d", len(top))
	}
	if top[0].Score != 50 || top[1].Score != 40 || top[2].Score != 30 {
		t.Errorf("Runs not in expected order: %v", top)
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	// No runs yet
	high, err := store.HighScore("leap")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score of 0 for empty game, got %d", high)
	}

	store.SaveRun(RunRecord{GameID: "leap", Score: 10})
	store.SaveRun(RunRecord{GameID: "leap", Score: 30})
	store.SaveRun(RunRecord{GameID: "leap", Score: 20})

	high, err = store.HighScore("leap")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 30 {
		t.Errorf("Expected high score of 30, got %d", high)
	}
}

func TestStoreCourseBest(t *testing.T) {
	store := openTestStore(t)

	best, err := store.CourseBest("missing")
	if err != nil {
		t.Fatalf("CourseBest() failed: %v", err)
	}
	if best != nil {
		t.Errorf("Expected nil for unknown course, got %+v", best)
	}

	store.SaveRun(RunRecord{GameID: "leap", Score: 5, Course: "abc"})
	store.SaveRun(RunRecord{GameID: "leap", Score: 9, Course: "abc"})
	store.SaveRun(RunRecord{GameID: "leap", Score: 40, Course: "other"})

	best, err = store.CourseBest("abc")
	if err != nil {
		t.Fatalf("CourseBest() failed: %v", err)
	}
	if best == nil || best.Score != 9 {
		t.Errorf("Expected best score 9 on course abc, got %+v", best)
	}
}

func TestStoreClearRuns(t *testing.T) {
	store := openTestStore(t)

	store.SaveRun(RunRecord{GameID: "leap", Score: 10})
	store.SaveRun(RunRecord{GameID: "leap", Score: 20})
	store.SaveRun(RunRecord{GameID: "leap_sprint", Score: 15})

	// Clear only leap runs
	if err := store.ClearRuns("leap"); err != nil {
		t.Fatalf("ClearRuns() failed: %v", err)
	}

	leap, _ := store.TopRuns("leap", 10)
	if len(leap) != 0 {
		t.Errorf("Expected 0 leap runs after clear, got %d", len(leap))
	}

	sprint, _ := store.TopRuns("leap_sprint", 10)
	if len(sprint) != 1 {
		t.Errorf("Sprint runs should not be affected by clearing leap")
	}
}

func TestStoreAllRuns(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 20; i++ {
		store.SaveRun(RunRecord{GameID: "test", Score: i})
	}

	runs, err := store.AllRuns("test")
	if err != nil {
		t.Fatalf("AllRuns() failed: %v", err)
	}

	if len(runs) != 20 {
		t.Errorf("Expected 20 runs, got %d", len(runs))
	}
}

func TestStoreGameStats(t *testing.T) {
	store := openTestStore(t)

	empty, err := store.GetGameStats("leap")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if empty.RunsCount != 0 || !empty.LastPlayed.IsZero() {
		t.Errorf("Expected empty stats, got %+v", empty)
	}

	store.SaveRun(RunRecord{GameID: "leap", Score: 10, Jumps: 7})
	store.SaveRun(RunRecord{GameID: "leap", Score: 20, Completed: true, Jumps: 14})
	store.SaveRun(RunRecord{GameID: "leap_sprint", Score: 15, Completed: true, Jumps: 9})

	stats, err := store.GetGameStats("leap")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if stats.RunsCount != 2 || stats.Completed != 1 || stats.HighScore != 20 || stats.TotalJumps != 21 {
		t.Errorf("Unexpected stats: %+v", stats)
	}
	if stats.AvgScore != 15 {
		t.Errorf("Expected average 15, got %v", stats.AvgScore)
	}

	all, err := store.GetAllGamesStats()
	if err != nil {
		t.Fatalf("GetAllGamesStats() failed: %v", err)
	}
	if len(all) != 2 || all["leap_sprint"].HighScore != 15 {
		t.Errorf("Unexpected all-games stats: %v", all)
	}
}

func TestStoreNestedPath(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	// Verify nested directories were created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}

func TestNewRunRecord(t *testing.T) {
	r := NewRunRecord("leap", core.RunSummary{
		Score:     7,
		Completed: true,
		Course:    "00ff",
		Jumps:     5,
		Elapsed:   2.5,
	})

	if r.GameID != "leap" || r.Score != 7 || !r.Completed || r.Course != "00ff" || r.Jumps != 5 {
		t.Errorf("Unexpected record: %+v", r)
	}
	if r.Elapsed != 2500*time.Millisecond {
		t.Errorf("Expected 2.5s, got %v", r.Elapsed)
	}
}
