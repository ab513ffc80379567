package storage

import (
	"os"
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "runs.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenCreatesFile(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "nested", "dir", "runs.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("database file was not created")
	}
}

func TestStoreSaveAndTopRuns(t *testing.T) {
	store := openTestStore(t)

	runs := []Run{
		{GameID: "breaklab", Score: 100, Outcome: OutcomeGameOver, Ticks: 900},
		{GameID: "breaklab", Score: 50, Outcome: OutcomeQuit},
		{GameID: "breaklab", Score: 400, LabMode: true, Outcome: OutcomeCleared, Ticks: 5000},
		{GameID: "other", Score: 999, Outcome: OutcomeGameOver},
	}
	for _, r := range runs {
		if _, err := store.SaveRun(r); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	top, err := store.TopRuns("breaklab", 10)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(top) != 3 {
		t.Fatalf("expected 3 runs, got %d", len(top))
	}

	wantScores := []int{400, 100, 50}
	for i, want := range wantScores {
		if top[i].Score != want {
			t.Errorf("run %d score = %d, want %d", i, top[i].Score, want)
		}
	}
	if !top[0].LabMode || top[0].Outcome != OutcomeCleared || top[0].Ticks != 5000 {
		t.Errorf("top run fields not round-tripped: %+v", top[0])
	}
	if top[1].LabMode {
		t.Error("second run should not be a lab run")
	}
}

func TestStoreTopRunsLimit(t *testing.T) {
	store := openTestStore(t)

	for i := range 15 {
		if _, err := store.SaveRun(Run{GameID: "breaklab", Score: i * 10, Outcome: OutcomeGameOver}); err != nil {
			t.Fatal(err)
		}
	}

	top, err := store.TopRuns("breaklab", 5)
	if err != nil {
		t.Fatal(err)
	}
	if len(top) != 5 {
		t.Errorf("expected 5 runs, got %d", len(top))
	}

	def, err := store.TopRuns("breaklab", 0)
	if err != nil {
		t.Fatal(err)
	}
	if len(def) != 10 {
		t.Errorf("default limit should be 10, got %d", len(def))
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	hs, err := store.HighScore("breaklab")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if hs != 0 {
		t.Errorf("expected 0 for empty store, got %d", hs)
	}

	for _, score := range []int{120, 340, 75} {
		if _, err := store.SaveRun(Run{GameID: "breaklab", Score: score, Outcome: OutcomeGameOver}); err != nil {
			t.Fatal(err)
		}
	}

	hs, err = store.HighScore("breaklab")
	if err != nil {
		t.Fatal(err)
	}
	if hs != 340 {
		t.Errorf("high score = %d, want 340", hs)
	}
}

func TestStoreClearRuns(t *testing.T) {
	store := openTestStore(t)

	store.SaveRun(Run{GameID: "breaklab", Score: 10, Outcome: OutcomeQuit})
	store.SaveRun(Run{GameID: "other", Score: 20, Outcome: OutcomeQuit})

	if err := store.ClearRuns("breaklab"); err != nil {
		t.Fatalf("ClearRuns() failed: %v", err)
	}

	top, _ := store.TopRuns("breaklab", 10)
	if len(top) != 0 {
		t.Errorf("expected no runs after clear, got %d", len(top))
	}
	other, _ := store.TopRuns("other", 10)
	if len(other) != 1 {
		t.Errorf("clear must not touch other games, got %d runs", len(other))
	}
}
