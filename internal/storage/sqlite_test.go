package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/vovakirdan/tui-raiders/internal/core"
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

	for _, score := range []int{100, 50, 200} {
		if _, err := store.SaveScore("raiders", score); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}
	if _, err := store.SaveScore("raiders_random", 500); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}

	scores, err := store.TopScores("raiders", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores, got %d", len(scores))
	}

	// Should be sorted descending
	if scores[0].Score != 200 || scores[1].Score != 100 || scores[2].Score != 50 {
		t.Errorf("Scores not in expected order: %v", scores)
	}
	if scores[0].CreatedAt.IsZero() {
		t.Error("CreatedAt should be parsed")
	}

	random, err := store.TopScores("raiders_random", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(random) != 1 {
		t.Errorf("Expected 1 random score, got %d", len(random))
	}
}

func TestStoreTopScoresLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 5; i++ {
		store.SaveScore("test", (i+1)*100)
	}

	scores, err := store.TopScores("test", 3)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores with limit, got %d", len(scores))
	}
	if scores[0].Score != 500 || scores[1].Score != 400 || scores[2].Score != 300 {
		t.Errorf("Scores not in expected order: %v", scores)
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore("raiders")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score of 0 for empty game, got %d", high)
	}

	store.SaveScore("raiders", 100)
	store.SaveScore("raiders", 300)
	store.SaveScore("raiders", 200)

	high, err = store.HighScore("raiders")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 300 {
		t.Errorf("Expected high score of 300, got %d", high)
	}
}

func TestStoreClearScores(t *testing.T) {
	store := openTestStore(t)

	store.SaveScore("raiders", 100)
	store.SaveLevelResult(core.LevelResult{GameID: "raiders", LevelID: "a", Score: 11, Turns: 4})
	store.SaveScore("raiders_random", 300)

	if err := store.ClearScores("raiders"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	if scores, _ := store.TopScores("raiders", 10); len(scores) != 0 {
		t.Errorf("Expected 0 scores after clear, got %d", len(scores))
	}
	if bests, _ := store.BestLevels("raiders"); len(bests) != 0 {
		t.Errorf("Expected level results to be cleared, got %v", bests)
	}
	if scores, _ := store.TopScores("raiders_random", 10); len(scores) != 1 {
		t.Error("Other games should not be affected by clearing")
	}
}

func TestStoreAllScores(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 20; i++ {
		store.SaveScore("test", i*10)
	}

	scores, err := store.AllScores("test")
	if err != nil {
		t.Fatalf("AllScores() failed: %v", err)
	}
	if len(scores) != 20 {
		t.Errorf("Expected 20 scores, got %d", len(scores))
	}
}

func TestStoreLevelResults(t *testing.T) {
	store := openTestStore(t)

	results := []core.LevelResult{
		{GameID: "raiders", LevelID: "01", Score: 11, Turns: 30},
		{GameID: "raiders", LevelID: "01", Score: 11, Turns: 12},
		{GameID: "raiders", LevelID: "01", Score: 5, Turns: 8},
		{GameID: "raiders", LevelID: "02", Score: 21, Turns: 40},
		{GameID: "raiders_random", LevelID: "01", Score: 99, Turns: 1},
	}
	for _, r := range results {
		if _, err := store.SaveLevelResult(r); err != nil {
			t.Fatalf("SaveLevelResult() failed: %v", err)
		}
	}

	entries, err := store.LevelResults("raiders", "01", 2)
	if err != nil {
		t.Fatalf("LevelResults() failed: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("Expected 2 entries, got %d", len(entries))
	}
	if entries[0].Score != 11 || entries[0].Turns != 12 {
		t.Errorf("ties should prefer fewer turns: %+v", entries[0])
	}

	bests, err := store.BestLevels("raiders")
	if err != nil {
		t.Fatalf("BestLevels() failed: %v", err)
	}
	if len(bests) != 2 {
		t.Fatalf("Expected 2 levels, got %v", bests)
	}
	first := bests[0]
	if first.LevelID != "01" || first.BestScore != 11 || first.BestTurns != 8 || first.Clears != 3 {
		t.Errorf("level 01 best = %+v", first)
	}
	if bests[1].LevelID != "02" || bests[1].BestScore != 21 {
		t.Errorf("level 02 best = %+v", bests[1])
	}
}

func TestStoreGameStats(t *testing.T) {
	store := openTestStore(t)

	stats, err := store.GetGameStats("raiders")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if stats.GamesCount != 0 || !stats.LastPlayed.IsZero() {
		t.Errorf("empty stats = %+v", stats)
	}

	store.SaveScore("raiders", 10)
	store.SaveScore("raiders", 30)
	store.SaveLevelResult(core.LevelResult{GameID: "raiders", LevelID: "01", Score: 10, Turns: 5})

	stats, err = store.GetGameStats("raiders")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if stats.GamesCount != 2 || stats.HighScore != 30 || stats.AvgScore != 20 || stats.TotalScore != 40 {
		t.Errorf("stats = %+v", stats)
	}
	if stats.LevelClears != 1 {
		t.Errorf("LevelClears = %d, want 1", stats.LevelClears)
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
