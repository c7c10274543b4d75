package driven

import (
	"context"

	"github.com/custodia-labs/rephrase-cli/internal/core/domain"
)

// HistoryStore persists completed transformation runs.
// This is an optional service used by the driving layer only; the core
// pipeline never reads history.
type HistoryStore interface {
	// Save records a completed run.
	Save(ctx context.Context, entry domain.HistoryEntry) error

	// List returns the most recent entries, newest first.
	List(ctx context.Context, limit int) ([]domain.HistoryEntry, error)

	// Get returns a single entry by ID.
	// Returns domain.ErrNotFound when no such entry exists.
	Get(ctx context.Context, id string) (*domain.HistoryEntry, error)

	// Close releases resources.
	Close() error
}
