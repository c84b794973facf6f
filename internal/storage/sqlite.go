// Package storage keeps the history of finished runs in SQLite.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// DefaultPath is where the run history lives unless --db says otherwise.
const DefaultPath = "~/.skyrunner/runs.db"

// Store manages the SQLite database connection for run history.
type Store struct {
	db *sql.DB
}

// Run is one finished run.
type Run struct {
	ID              int64
	World           string
	Difficulty      string
	Levels          int
	LevelsCompleted int
	Score           int
	EnemiesDefeated int
	ObstaclesPassed int
	Ticks           uint64
	Seed            int64
	Won             bool
	CreatedAt       time.Time
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS runs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			world TEXT NOT NULL,
			difficulty TEXT NOT NULL,
			levels INTEGER NOT NULL DEFAULT 1,
			levels_completed INTEGER NOT NULL DEFAULT 0,
			score INTEGER NOT NULL,
			enemies_defeated INTEGER NOT NULL DEFAULT 0,
			obstacles_passed INTEGER NOT NULL DEFAULT 0,
			ticks INTEGER NOT NULL DEFAULT 0,
			seed INTEGER NOT NULL DEFAULT 0,
			won INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_runs_world ON runs(world);
		CREATE INDEX IF NOT EXISTS idx_runs_top ON runs(world, difficulty, score DESC);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveRun records a finished run and returns its ID.
func (s *Store) SaveRun(r Run) (int64, error) {
	won := 0
	if r.Won {
		won = 1
	}
	result, err := s.db.Exec(
		`INSERT INTO runs
		 (world, difficulty, levels, levels_completed, score, enemies_defeated, obstacles_passed, ticks, seed, won)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		r.World, r.Difficulty, r.Levels, r.LevelsCompleted, r.Score,
		r.EnemiesDefeated, r.ObstaclesPassed, int64(r.Ticks), r.Seed, won, //#nosec G115 -- tick counts fit in int64
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save run: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

const runColumns = `id, world, difficulty, levels, levels_completed, score,
	enemies_defeated, obstacles_passed, ticks, seed, won, created_at`

// TopRuns retrieves the best N runs for a world, highest score first.
// An empty difficulty matches every tier.
func (s *Store) TopRuns(world, difficulty string, limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT `+runColumns+`
		 FROM runs
		 WHERE world = ? AND (? = '' OR difficulty = ?)
		 ORDER BY score DESC, id ASC
		 LIMIT ?`,
		world, difficulty, difficulty, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		r, err := scanRun(rows)
		if err != nil {
			return nil, err
		}
		runs = append(runs, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return runs, nil
}

// RunByID retrieves a single run. Returns nil if it does not exist.
func (s *Store) RunByID(id int64) (*Run, error) {
	row := s.db.QueryRow(`SELECT `+runColumns+` FROM runs WHERE id = ?`, id)
	r, err := scanRun(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &r, nil
}

// BestScore returns the highest score for a world and difficulty.
// Returns 0 if no runs exist.
func (s *Store) BestScore(world, difficulty string) (int, error) {
	var score sql.NullInt64
	err := s.db.QueryRow(
		"SELECT MAX(score) FROM runs WHERE world = ? AND (? = '' OR difficulty = ?)",
		world, difficulty, difficulty,
	).Scan(&score)

	if err != nil {
		return 0, fmt.Errorf("storage: cannot query best score: %w", err)
	}

	if !score.Valid {
		return 0, nil
	}

	return int(score.Int64), nil
}

// ClearRuns deletes all runs for a world.
func (s *Store) ClearRuns(world string) error {
	_, err := s.db.Exec("DELETE FROM runs WHERE world = ?", world)
	if err != nil {
		return fmt.Errorf("storage: cannot clear runs: %w", err)
	}
	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanRun(sc scanner) (Run, error) {
	var (
		r         Run
		ticks     int64
		won       int
		createdAt any
	)
	err := sc.Scan(&r.ID, &r.World, &r.Difficulty, &r.Levels, &r.LevelsCompleted, &r.Score,
		&r.EnemiesDefeated, &r.ObstaclesPassed, &ticks, &r.Seed, &won, &createdAt)
	if errors.Is(err, sql.ErrNoRows) {
		return Run{}, err
	}
	if err != nil {
		return Run{}, fmt.Errorf("storage: cannot scan row: %w", err)
	}
	r.Ticks = uint64(ticks) //#nosec G115 -- stored from a uint64
	r.Won = won != 0

	// Parse the datetime - handle both time.Time and string
	switch v := createdAt.(type) {
	case time.Time:
		r.CreatedAt = v
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", v); err == nil {
			r.CreatedAt = parsed
		}
	}
	return r, nil
}
