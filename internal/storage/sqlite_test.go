package storage

import (
	"os"
	"path/filepath"
	"testing"
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
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}

	if err := store.Close(); err != nil {
		t.Errorf("Close() failed: %v", err)
	}
}

func TestStoreNestedPath(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}

func TestStoreSaveAndTopScores(t *testing.T) {
	store := openTestStore(t)

	for _, s := range []int{100, 500, 250} {
		id, err := store.SaveScore("platformer", s)
		if err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
		if id <= 0 {
			t.Errorf("SaveScore() id = %d, expected positive", id)
		}
	}
	store.SaveScore("other", 900)

	scores, err := store.TopScores("platformer", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("TopScores() returned %d entries, expected 3", len(scores))
	}
	want := []int{500, 250, 100}
	for i, e := range scores {
		if e.Score != want[i] {
			t.Errorf("scores[%d] = %d, expected %d", i, e.Score, want[i])
		}
		if e.GameID != "platformer" {
			t.Errorf("scores[%d].GameID = %q, expected platformer", i, e.GameID)
		}
		if e.CreatedAt.IsZero() {
			t.Errorf("scores[%d].CreatedAt is zero", i)
		}
	}
}

func TestStoreTopScoresLimit(t *testing.T) {
	store := openTestStore(t)

	for i := range 5 {
		store.SaveScore("platformer", (i+1)*100)
	}

	scores, err := store.TopScores("platformer", 3)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores with limit, got %d", len(scores))
	}
	if scores[0].Score != 500 || scores[1].Score != 400 || scores[2].Score != 300 {
		t.Errorf("Scores not in expected order: %v", scores)
	}

	all, _ := store.TopScores("platformer", 0)
	if len(all) != 5 {
		t.Errorf("TopScores(0) returned %d entries, expected default limit to cover 5", len(all))
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore("platformer")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("HighScore() = %d for empty game, expected 0", high)
	}

	store.SaveScore("platformer", 100)
	store.SaveScore("platformer", 300)
	store.SaveScore("platformer", 200)

	high, err = store.HighScore("platformer")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 300 {
		t.Errorf("HighScore() = %d, expected 300", high)
	}
}

func TestStoreClearScores(t *testing.T) {
	store := openTestStore(t)

	store.SaveScore("platformer", 100)
	store.SaveScore("platformer", 200)
	store.SaveScore("other", 300)

	if err := store.ClearScores("platformer"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	if scores, _ := store.TopScores("platformer", 10); len(scores) != 0 {
		t.Errorf("Expected 0 scores after clear, got %d", len(scores))
	}
	if scores, _ := store.TopScores("other", 10); len(scores) != 1 {
		t.Errorf("Other game scores should not be affected by clear")
	}
}

func TestStoreBestLevelResults(t *testing.T) {
	store := openTestStore(t)

	results := []struct {
		level   string
		won     bool
		coins   int
		seconds float64
	}{
		{"01-first-steps", true, 3, 12.5},
		{"01-first-steps", true, 3, 9.25},
		{"01-first-steps", false, 1, 2.0},
		{"02-stepping-stones", false, 0, 1.0},
		{"03-ember-hall", true, 5, 30},
	}
	for _, r := range results {
		if _, err := store.SaveLevelResult(r.level, r.won, r.coins, r.seconds); err != nil {
			t.Fatalf("SaveLevelResult() failed: %v", err)
		}
	}

	best, err := store.BestLevelResults()
	if err != nil {
		t.Fatalf("BestLevelResults() failed: %v", err)
	}
	if len(best) != 2 {
		t.Fatalf("BestLevelResults() returned %d entries, expected 2", len(best))
	}
	if best[0].LevelID != "01-first-steps" || best[0].Seconds != 9.25 {
		t.Errorf("best[0] = %+v, expected 01-first-steps in 9.25s", best[0])
	}
	if !best[0].Won {
		t.Error("best[0].Won = false, expected true")
	}
	if best[1].LevelID != "03-ember-hall" || best[1].Coins != 5 {
		t.Errorf("best[1] = %+v, expected 03-ember-hall with 5 coins", best[1])
	}
}

func TestStoreLevelStats(t *testing.T) {
	store := openTestStore(t)

	store.SaveLevelResult("01-first-steps", false, 0, 1)
	store.SaveLevelResult("01-first-steps", false, 1, 2)
	store.SaveLevelResult("01-first-steps", true, 3, 10)

	stats, err := store.GetLevelStats("01-first-steps")
	if err != nil {
		t.Fatalf("GetLevelStats() failed: %v", err)
	}
	if stats.Attempts != 3 || stats.Wins != 1 {
		t.Errorf("GetLevelStats() = %+v, expected 3 attempts and 1 win", stats)
	}

	empty, err := store.GetLevelStats("missing")
	if err != nil {
		t.Fatalf("GetLevelStats() failed: %v", err)
	}
	if empty.Attempts != 0 || empty.Wins != 0 {
		t.Errorf("GetLevelStats(missing) = %+v, expected zeros", empty)
	}
}

func TestStoreGameStats(t *testing.T) {
	store := openTestStore(t)

	stats, err := store.GetGameStats("platformer")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if stats.GamesCount != 0 || !stats.LastPlayed.IsZero() {
		t.Errorf("GetGameStats() on empty store = %+v", stats)
	}

	store.SaveScore("platformer", 100)
	store.SaveScore("platformer", 300)

	stats, err = store.GetGameStats("platformer")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if stats.GamesCount != 2 {
		t.Errorf("GamesCount = %d, expected 2", stats.GamesCount)
	}
	if stats.HighScore != 300 {
		t.Errorf("HighScore = %d, expected 300", stats.HighScore)
	}
	if stats.AvgScore != 200 {
		t.Errorf("AvgScore = %v, expected 200", stats.AvgScore)
	}
	if stats.TotalScore != 400 {
		t.Errorf("TotalScore = %d, expected 400", stats.TotalScore)
	}
	if stats.LastPlayed.IsZero() {
		t.Error("LastPlayed is zero after saving scores")
	}
}
