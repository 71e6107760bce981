// Package storage provides SQLite-based persistence for match recordings.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
//
// Only inputs are stored: seed, constants, and intents. Scores are derived by
// re-simulating a recording and never written to disk.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// ErrNotFound is returned when a recording ID is unknown.
var ErrNotFound = errors.New("storage: recording not found")

// Store manages the SQLite database connection.
type Store struct {
	db *sql.DB
}

// Recording is everything needed to re-simulate a match.
type Recording struct {
	ID         string // UUID, assigned by SaveRecording when empty
	Frontend   string // Frontend ID that produced the inputs
	Seed       int64
	ConfigYAML string // Game constants as YAML
	InputsYAML string // Run-length encoded intents as YAML
	Ticks      int
	CreatedAt  time.Time
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
		CREATE TABLE IF NOT EXISTS recordings (
			id TEXT PRIMARY KEY,
			frontend TEXT NOT NULL,
			seed INTEGER NOT NULL,
			config_yaml TEXT NOT NULL,
			inputs_yaml TEXT NOT NULL,
			ticks INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_recordings_created ON recordings(created_at DESC);
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

// SaveRecording stores rec and returns its ID.
// A new UUID is generated when rec.ID is empty.
func (s *Store) SaveRecording(rec Recording) (string, error) {
	if rec.ID == "" {
		rec.ID = uuid.NewString()
	}

	_, err := s.db.Exec(
		`INSERT INTO recordings (id, frontend, seed, config_yaml, inputs_yaml, ticks)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		rec.ID, rec.Frontend, rec.Seed, rec.ConfigYAML, rec.InputsYAML, rec.Ticks,
	)
	if err != nil {
		return "", fmt.Errorf("storage: cannot save recording: %w", err)
	}

	return rec.ID, nil
}

// Recording retrieves a recording by ID.
// Returns ErrNotFound if no recording has that ID.
func (s *Store) Recording(id string) (*Recording, error) {
	var rec Recording
	var createdAt any

	err := s.db.QueryRow(
		`SELECT id, frontend, seed, config_yaml, inputs_yaml, ticks, created_at
		 FROM recordings
		 WHERE id = ?`,
		id,
	).Scan(
		&rec.ID,
		&rec.Frontend,
		&rec.Seed,
		&rec.ConfigYAML,
		&rec.InputsYAML,
		&rec.Ticks,
		&createdAt,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query recording: %w", err)
	}

	rec.CreatedAt = parseTime(createdAt)
	return &rec, nil
}

// RecentRecordings lists the most recent recordings without their input logs.
func (s *Store) RecentRecordings(limit int) ([]Recording, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT id, frontend, seed, ticks, created_at
		 FROM recordings
		 ORDER BY created_at DESC, rowid DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query recordings: %w", err)
	}
	defer rows.Close()

	var recs []Recording
	for rows.Next() {
		var rec Recording
		var createdAt any
		if err := rows.Scan(&rec.ID, &rec.Frontend, &rec.Seed, &rec.Ticks, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		rec.CreatedAt = parseTime(createdAt)
		recs = append(recs, rec)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return recs, nil
}

// DeleteRecording removes a recording.
// Returns ErrNotFound if no recording has that ID.
func (s *Store) DeleteRecording(id string) error {
	result, err := s.db.Exec("DELETE FROM recordings WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("storage: cannot delete recording: %w", err)
	}

	n, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("storage: cannot get affected rows: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	return nil
}

// parseTime handles both time.Time and string datetimes from the driver.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
