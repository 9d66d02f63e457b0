package storage

import (
	"os"
	"path/filepath"
	"testing"
)

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
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Save some scores
	for _, score := range []int{100, 50, 200} {
		if _, err := store.SaveScore("bomber", score); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}

	// Retrieve top scores
	scores, err := store.TopScores("bomber", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}

	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores, got %d", len(scores))
	}

	// Should be sorted descending
	if scores[0].Score != 200 || scores[1].Score != 100 || scores[2].Score != 50 {
		t.Errorf("Scores not sorted: %d, %d, %d", scores[0].Score, scores[1].Score, scores[2].Score)
	}

	// High score
	high, err := store.HighScore("bomber")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 200 {
		t.Errorf("HighScore() = %d, want 200", high)
	}
}

func TestStoreTopScoresLimit(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	for i := 0; i < 20; i++ {
		if _, err := store.SaveScore("bomber", i*10); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}

	scores, err := store.TopScores("bomber", 5)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 5 {
		t.Errorf("Expected 5 scores, got %d", len(scores))
	}
	if scores[0].Score != 190 {
		t.Errorf("Top score = %d, want 190", scores[0].Score)
	}
}

func TestStoreHighScoreEmpty(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	high, err := store.HighScore("bomber")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("HighScore() on empty table = %d, want 0", high)
	}
}

func TestStoreClearScores(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := store.SaveScore("bomber", 100); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}
	if err := store.ClearScores("bomber"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	scores, err := store.TopScores("bomber", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 0 {
		t.Errorf("Expected no scores after clear, got %d", len(scores))
	}
}

func TestStoreRuns(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	runs := []RunRecord{
		{GameID: "bomber", Outcome: "won", Score: 325, EnemiesDefeated: 9, BombsPlanted: 14, DurationSecs: 210},
		{GameID: "bomber", Outcome: "blown_up", Score: 50, EnemiesDefeated: 2, BombsPlanted: 6, DurationSecs: 80},
		{GameID: "bomber", Outcome: "stepped_on_trap", Score: 0, EnemiesDefeated: 0, BombsPlanted: 1, DurationSecs: 15},
	}
	for _, run := range runs {
		if _, err := store.SaveRun(run); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	got, err := store.RecentRuns("bomber", 10)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("Expected 3 runs, got %d", len(got))
	}

	// Most recent first
	if got[0].Outcome != "stepped_on_trap" {
		t.Errorf("First run outcome = %q, want %q", got[0].Outcome, "stepped_on_trap")
	}
	for _, run := range got {
		if run.GameID != "bomber" {
			t.Errorf("Run game ID = %q, want %q", run.GameID, "bomber")
		}
		if run.ID == 0 {
			t.Error("Run ID not assigned")
		}
	}

	wins, err := store.WinCount("bomber")
	if err != nil {
		t.Fatalf("WinCount() failed: %v", err)
	}
	if wins != 1 {
		t.Errorf("WinCount() = %d, want 1", wins)
	}
}

func TestStoreSeparateGames(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := store.SaveScore("bomber", 100); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}
	if _, err := store.SaveScore("other", 500); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}

	scores, err := store.TopScores("bomber", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 1 || scores[0].Score != 100 {
		t.Errorf("Scores leaked across games: %+v", scores)
	}
}
