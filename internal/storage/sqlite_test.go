package storage

import (
	"os"
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test.db")
	store, err := Open(dbPath)
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

	// Save some scores
	for _, score := range []int{100, 50, 200} {
		if _, err := store.SaveScore("vanguard", score); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}

	// Different game
	if _, err := store.SaveScore("vanguard_classic", 500); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}

	scores, err := store.TopScores("vanguard", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}

	if len(scores) != 3 {
		t.Errorf("Expected 3 scores, got %d", len(scores))
	}

	// Should be sorted descending
	want := []int{200, 100, 50}
	for i, w := range want {
		if scores[i].Score != w {
			t.Errorf("Expected score %d at rank %d, got %d", w, i, scores[i].Score)
		}
	}

	classicScores, err := store.TopScores("vanguard_classic", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(classicScores) != 1 {
		t.Errorf("Expected 1 classic score, got %d", len(classicScores))
	}
}

func TestStoreTopScoresLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 5; i++ {
		if _, err := store.SaveScore("vanguard", i*10); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}

	scores, err := store.TopScores("vanguard", 3)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Errorf("Expected 3 scores with limit 3, got %d", len(scores))
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	// No scores yet
	high, err := store.HighScore("vanguard")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score 0 with no records, got %d", high)
	}

	store.SaveScore("vanguard", 42)
	store.SaveScore("vanguard", 17)

	high, err = store.HighScore("vanguard")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 42 {
		t.Errorf("Expected high score 42, got %d", high)
	}
}

func TestStoreClearScores(t *testing.T) {
	store := openTestStore(t)

	store.SaveScore("vanguard", 10)
	store.SaveScore("vanguard_classic", 20)

	if err := store.ClearScores("vanguard"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	scores, _ := store.TopScores("vanguard", 10)
	if len(scores) != 0 {
		t.Errorf("Expected no vanguard scores after clear, got %d", len(scores))
	}

	classic, _ := store.TopScores("vanguard_classic", 10)
	if len(classic) != 1 {
		t.Error("Clearing one game should not touch another")
	}
}

func TestStoreSaveAndListRuns(t *testing.T) {
	store := openTestStore(t)

	runs := []RunEntry{
		{GameID: "vanguard", Score: 12, Level: 1, Duration: 145},
		{GameID: "vanguard", Score: 40, Level: 3, Duration: 410},
	}
	for _, r := range runs {
		if _, err := store.SaveRun(r); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	got, err := store.RecentRuns("vanguard", 10)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("Expected 2 runs, got %d", len(got))
	}
	for _, r := range got {
		if r.GameID != "vanguard" {
			t.Errorf("Unexpected game id %q", r.GameID)
		}
		if r.Score == 0 && r.Level == 0 {
			t.Error("Run fields should round-trip")
		}
	}
}

func TestStoreGameStats(t *testing.T) {
	store := openTestStore(t)

	store.SaveScore("vanguard", 10)
	store.SaveScore("vanguard", 30)
	store.SaveRun(RunEntry{GameID: "vanguard", Score: 30, Level: 2, Duration: 250})

	stats, err := store.GetGameStats("vanguard")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}

	if stats.GamesCount != 2 {
		t.Errorf("Expected 2 games, got %d", stats.GamesCount)
	}
	if stats.HighScore != 30 {
		t.Errorf("Expected high score 30, got %d", stats.HighScore)
	}
	if stats.AvgScore != 20 {
		t.Errorf("Expected avg score 20, got %f", stats.AvgScore)
	}
	if stats.BestLevel != 2 {
		t.Errorf("Expected best level 2, got %d", stats.BestLevel)
	}
}
