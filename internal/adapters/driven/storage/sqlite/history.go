package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/custodia-labs/rephrase-cli/internal/core/domain"
	"github.com/custodia-labs/rephrase-cli/internal/core/ports/driven"
)

// Ensure HistoryStore implements the interface.
var _ driven.HistoryStore = (*HistoryStore)(nil)

// DefaultListLimit applies when the caller passes no limit.
const DefaultListLimit = 20

const schema = `
CREATE TABLE IF NOT EXISTS history (
	id TEXT PRIMARY KEY,
	created_at TEXT NOT NULL,
	original TEXT NOT NULL,
	transformed TEXT NOT NULL,
	intensity REAL NOT NULL,
	applied_transforms TEXT NOT NULL,
	metrics TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_history_created_at ON history(created_at DESC);
`

// HistoryStore persists transform runs to a local SQLite database.
type HistoryStore struct {
	db   *sql.DB
	path string
}

// NewHistoryStore creates a store at the specified data directory.
// If dataDir is empty, defaults to ~/.rephrase/data/history.db.
func NewHistoryStore(dataDir string) (*HistoryStore, error) {
	if dataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		dataDir = filepath.Join(home, ".rephrase", "data")
	}

	if err := os.MkdirAll(dataDir, 0700); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	dbPath := filepath.Join(dataDir, "history.db")

	// WAL mode for better concurrency
	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return &HistoryStore{db: db, path: dbPath}, nil
}

// Save records a completed run.
func (s *HistoryStore) Save(ctx context.Context, entry domain.HistoryEntry) error {
	applied, err := json.Marshal(entry.AppliedTransforms)
	if err != nil {
		return fmt.Errorf("marshal applied transforms: %w", err)
	}
	metrics, err := json.Marshal(entry.Metrics)
	if err != nil {
		return fmt.Errorf("marshal metrics: %w", err)
	}

	_, err = s.db.ExecContext(ctx,
		`INSERT INTO history (id, created_at, original, transformed, intensity, applied_transforms, metrics)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		entry.ID,
		entry.CreatedAt.UTC().Format(time.RFC3339Nano),
		entry.Original,
		entry.Transformed,
		entry.Intensity,
		string(applied),
		string(metrics),
	)
	if err != nil {
		return fmt.Errorf("insert history entry: %w", err)
	}
	return nil
}

// List returns the most recent entries, newest first.
func (s *HistoryStore) List(ctx context.Context, limit int) ([]domain.HistoryEntry, error) {
	if limit <= 0 {
		limit = DefaultListLimit
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT id, created_at, original, transformed, intensity, applied_transforms, metrics
		 FROM history ORDER BY created_at DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("query history: %w", err)
	}
	defer rows.Close()

	var entries []domain.HistoryEntry
	for rows.Next() {
		entry, err := scanEntry(rows.Scan)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}
	return entries, rows.Err()
}

// Get returns a single entry by ID.
func (s *HistoryStore) Get(ctx context.Context, id string) (*domain.HistoryEntry, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, created_at, original, transformed, intensity, applied_transforms, metrics
		 FROM history WHERE id = ?`, id)

	entry, err := scanEntry(row.Scan)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

// Close closes the database connection.
func (s *HistoryStore) Close() error {
	return s.db.Close()
}

// Path returns the database file path.
func (s *HistoryStore) Path() string {
	return s.path
}

// scanEntry decodes one row through the given scan function.
func scanEntry(scan func(dest ...any) error) (domain.HistoryEntry, error) {
	var entry domain.HistoryEntry
	var createdAt, applied, metrics string

	if err := scan(&entry.ID, &createdAt, &entry.Original, &entry.Transformed,
		&entry.Intensity, &applied, &metrics); err != nil {
		return domain.HistoryEntry{}, err
	}

	ts, err := time.Parse(time.RFC3339Nano, createdAt)
	if err != nil {
		return domain.HistoryEntry{}, fmt.Errorf("parse created_at: %w", err)
	}
	entry.CreatedAt = ts

	if err := json.Unmarshal([]byte(applied), &entry.AppliedTransforms); err != nil {
		return domain.HistoryEntry{}, fmt.Errorf("unmarshal applied transforms: %w", err)
	}
	if err := json.Unmarshal([]byte(metrics), &entry.Metrics); err != nil {
		return domain.HistoryEntry{}, fmt.Errorf("unmarshal metrics: %w", err)
	}
	return entry, nil
}
