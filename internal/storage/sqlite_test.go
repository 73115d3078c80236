package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
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

func save(t *testing.T, store *Store, e ScoreEntry) {
	t.Helper()
	if e.GameID == "" {
		e.GameID = "scroller"
	}
	if _, err := store.SaveScore(e); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}
}

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	save(t, store, ScoreEntry{Score: 100, Level: 2})
	save(t, store, ScoreEntry{Score: 50, Level: 1})
	save(t, store, ScoreEntry{Score: 200, Level: 3})
	save(t, store, ScoreEntry{Score: 500, Level: 4, Preset: "hard"})

	scores, err := store.TopScores("scroller", "normal", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("Expected 3 normal scores, got %d", len(scores))
	}
	if scores[0].Score != 200 || scores[1].Score != 100 || scores[2].Score != 50 {
		t.Errorf("Scores not in expected order: %v", scores)
	}
	if scores[0].Level != 3 {
		t.Errorf("Expected level 3 on the best run, got %d", scores[0].Level)
	}

	all, err := store.TopScores("scroller", "", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(all) != 4 || all[0].Preset != "hard" {
		t.Errorf("Expected hard run on top of the combined board, got %v", all)
	}
}

func TestStoreSaveFillsDefaults(t *testing.T) {
	store := openTestStore(t)

	save(t, store, ScoreEntry{Score: 10})

	scores, err := store.TopScores("scroller", "", 100)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 1 {
		t.Fatalf("Expected 1 score, got %d", len(scores))
	}
	got := scores[0]
	if _, err := uuid.Parse(got.RunID); err != nil {
		t.Errorf("RunID %q is not a UUID: %v", got.RunID, err)
	}
	if got.Preset != "normal" {
		t.Errorf("Expected default preset normal, got %q", got.Preset)
	}
	if got.Level != 1 {
		t.Errorf("Expected level clamped to 1, got %d", got.Level)
	}
	if got.CreatedAt.IsZero() {
		t.Error("CreatedAt was not populated")
	}
}

func TestStoreSaveRejectsMissingGame(t *testing.T) {
	store := openTestStore(t)

	if _, err := store.SaveScore(ScoreEntry{Score: 10}); err == nil {
		t.Error("Expected error for score without game id")
	}
}

func TestStoreDuplicateRunID(t *testing.T) {
	store := openTestStore(t)

	runID := uuid.NewString()
	save(t, store, ScoreEntry{RunID: runID, Score: 10})
	if _, err := store.SaveScore(ScoreEntry{GameID: "scroller", RunID: runID, Score: 20}); err == nil {
		t.Error("Expected error when saving the same run twice")
	}
}

func TestStoreScoreByRun(t *testing.T) {
	store := openTestStore(t)

	runID := uuid.NewString()
	save(t, store, ScoreEntry{RunID: runID, Score: 420, Level: 5, Preset: "easy"})

	got, err := store.ScoreByRun(runID)
	if err != nil {
		t.Fatalf("ScoreByRun() failed: %v", err)
	}
	if got == nil || got.Score != 420 || got.Level != 5 || got.Preset != "easy" {
		t.Errorf("Unexpected run: %+v", got)
	}

	missing, err := store.ScoreByRun(uuid.NewString())
	if err != nil {
		t.Fatalf("ScoreByRun() failed: %v", err)
	}
	if missing != nil {
		t.Errorf("Expected nil for unknown run, got %+v", missing)
	}
}

func TestStoreTopScoresLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 5; i++ {
		save(t, store, ScoreEntry{Score: (i + 1) * 100})
	}

	scores, err := store.TopScores("scroller", "normal", 3)
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

func TestStoreTiesBrokenByLevel(t *testing.T) {
	store := openTestStore(t)

	save(t, store, ScoreEntry{Score: 300, Level: 2})
	save(t, store, ScoreEntry{Score: 300, Level: 4})

	scores, err := store.TopScores("scroller", "normal", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if scores[0].Level != 4 {
		t.Errorf("Expected deeper run first on tie, got level %d", scores[0].Level)
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore("scroller", "normal")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score of 0 for empty board, got %d", high)
	}

	save(t, store, ScoreEntry{Score: 100})
	save(t, store, ScoreEntry{Score: 300})
	save(t, store, ScoreEntry{Score: 900, Preset: "easy"})

	high, err = store.HighScore("scroller", "normal")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 300 {
		t.Errorf("Expected normal high score of 300, got %d", high)
	}

	high, _ = store.HighScore("scroller", "")
	if high != 900 {
		t.Errorf("Expected overall high score of 900, got %d", high)
	}
}

func TestStoreClearScores(t *testing.T) {
	store := openTestStore(t)

	save(t, store, ScoreEntry{Score: 100})
	save(t, store, ScoreEntry{Score: 200})
	save(t, store, ScoreEntry{GameID: "other", Score: 300})

	if err := store.ClearScores("scroller"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	scores, _ := store.TopScores("scroller", "", 100)
	if len(scores) != 0 {
		t.Errorf("Expected 0 scores after clear, got %d", len(scores))
	}

	other, _ := store.TopScores("other", "", 100)
	if len(other) != 1 {
		t.Errorf("Other game scores should not be affected by clearing")
	}
}

func TestStoreStats(t *testing.T) {
	store := openTestStore(t)

	save(t, store, ScoreEntry{Score: 100, Level: 1})
	save(t, store, ScoreEntry{Score: 300, Level: 3})
	save(t, store, ScoreEntry{Score: 50, Level: 1, Preset: "hard"})

	stats, err := store.Stats("scroller")
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if len(stats) != 2 {
		t.Fatalf("Expected stats for 2 presets, got %d", len(stats))
	}

	normal := stats["normal"]
	if normal == nil {
		t.Fatal("Missing normal preset stats")
	}
	if normal.RunsCount != 2 || normal.HighScore != 300 || normal.BestLevel != 3 {
		t.Errorf("Unexpected normal stats: %+v", normal)
	}
	if normal.AvgScore != 200 {
		t.Errorf("Expected average 200, got %v", normal.AvgScore)
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

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}
