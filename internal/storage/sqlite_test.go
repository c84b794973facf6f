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
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}

	if err := store.Close(); err != nil {
		t.Errorf("Close() failed: %v", err)
	}

	// Reopening runs the migration again on an existing schema.
	store, err = Open(dbPath)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	store.Close()
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	runs := []Run{
		{World: "cloud", Difficulty: "normal", Levels: 3, LevelsCompleted: 1, Score: 100},
		{World: "cloud", Difficulty: "normal", Levels: 3, LevelsCompleted: 3, Score: 200, Won: true, Seed: 42, Ticks: 9000},
		{World: "cloud", Difficulty: "hard", Levels: 3, Score: 50},
		{World: "city", Difficulty: "normal", Levels: 1, Score: 150},
	}
	for _, r := range runs {
		id, err := store.SaveRun(r)
		if err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
		if id <= 0 {
			t.Errorf("Expected positive ID, got %d", id)
		}
	}

	all, err := store.TopRuns("cloud", "", 10)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("Expected 3 cloud runs, got %d", len(all))
	}
	if all[0].Score != 200 || all[1].Score != 100 || all[2].Score != 50 {
		t.Errorf("Runs not sorted by score: %v", all)
	}

	best := all[0]
	if !best.Won || best.Seed != 42 || best.Ticks != 9000 || best.LevelsCompleted != 3 {
		t.Errorf("Run fields not round-tripped: %+v", best)
	}
	if best.CreatedAt.IsZero() {
		t.Error("Expected created_at to be set")
	}

	normal, err := store.TopRuns("cloud", "normal", 10)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(normal) != 2 {
		t.Errorf("Expected 2 normal runs, got %d", len(normal))
	}
}

func TestStoreTopRunsLimit(t *testing.T) {
	store := openTestStore(t)

	for i := range 5 {
		store.SaveRun(Run{World: "canyon", Difficulty: "easy", Score: (i + 1) * 100})
	}

	runs, err := store.TopRuns("canyon", "easy", 3)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(runs) != 3 {
		t.Fatalf("Expected 3 runs with limit, got %d", len(runs))
	}
	if runs[0].Score != 500 || runs[1].Score != 400 || runs[2].Score != 300 {
		t.Errorf("Runs not in expected order: %v", runs)
	}

	// Non-positive limit falls back to 10.
	runs, _ = store.TopRuns("canyon", "easy", 0)
	if len(runs) != 5 {
		t.Errorf("Expected 5 runs with default limit, got %d", len(runs))
	}
}

func TestStoreBestScore(t *testing.T) {
	store := openTestStore(t)

	best, err := store.BestScore("city", "normal")
	if err != nil {
		t.Fatalf("BestScore() failed: %v", err)
	}
	if best != 0 {
		t.Errorf("Expected 0 for empty world, got %d", best)
	}

	store.SaveRun(Run{World: "city", Difficulty: "normal", Score: 100})
	store.SaveRun(Run{World: "city", Difficulty: "normal", Score: 300})
	store.SaveRun(Run{World: "city", Difficulty: "hard", Score: 900})

	tests := []struct {
		difficulty string
		want       int
	}{
		{"normal", 300},
		{"hard", 900},
		{"", 900},
		{"easy", 0},
	}
	for _, tt := range tests {
		got, err := store.BestScore("city", tt.difficulty)
		if err != nil {
			t.Fatalf("BestScore(%q) failed: %v", tt.difficulty, err)
		}
		if got != tt.want {
			t.Errorf("BestScore(%q) = %d, want %d", tt.difficulty, got, tt.want)
		}
	}
}

func TestStoreRunByID(t *testing.T) {
	store := openTestStore(t)

	id, err := store.SaveRun(Run{World: "cloud", Difficulty: "easy", Score: 77, EnemiesDefeated: 4, ObstaclesPassed: 9})
	if err != nil {
		t.Fatal(err)
	}

	r, err := store.RunByID(id)
	if err != nil {
		t.Fatalf("RunByID() failed: %v", err)
	}
	if r == nil || r.Score != 77 || r.EnemiesDefeated != 4 || r.ObstaclesPassed != 9 {
		t.Errorf("RunByID() = %+v", r)
	}

	missing, err := store.RunByID(id + 100)
	if err != nil {
		t.Fatalf("RunByID() on missing row failed: %v", err)
	}
	if missing != nil {
		t.Errorf("Expected nil for missing run, got %+v", missing)
	}
}

func TestStoreClearRuns(t *testing.T) {
	store := openTestStore(t)

	store.SaveRun(Run{World: "cloud", Difficulty: "normal", Score: 100})
	store.SaveRun(Run{World: "cloud", Difficulty: "normal", Score: 200})
	store.SaveRun(Run{World: "city", Difficulty: "normal", Score: 300})

	if err := store.ClearRuns("cloud"); err != nil {
		t.Fatalf("ClearRuns() failed: %v", err)
	}

	cloud, _ := store.TopRuns("cloud", "", 10)
	if len(cloud) != 0 {
		t.Errorf("Expected 0 cloud runs after clear, got %d", len(cloud))
	}

	city, _ := store.TopRuns("city", "", 10)
	if len(city) != 1 {
		t.Errorf("City runs should not be affected by clearing cloud")
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
