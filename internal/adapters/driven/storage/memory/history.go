// Package memory provides an in-memory history store, used in tests
// and when persistence is disabled.
package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/custodia-labs/rephrase-cli/internal/core/domain"
	"github.com/custodia-labs/rephrase-cli/internal/core/ports/driven"
)

var _ driven.HistoryStore = (*HistoryStore)(nil)

// HistoryStore keeps entries in memory. Safe for concurrent use.
type HistoryStore struct {
	mu      sync.RWMutex
	entries map[string]domain.HistoryEntry
}

// NewHistoryStore creates an empty in-memory store.
func NewHistoryStore() *HistoryStore {
	return &HistoryStore{
		entries: make(map[string]domain.HistoryEntry),
	}
}

// Save records a completed run.
func (s *HistoryStore) Save(_ context.Context, entry domain.HistoryEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[entry.ID] = entry
	return nil
}

// List returns the most recent entries, newest first.
func (s *HistoryStore) List(_ context.Context, limit int) ([]domain.HistoryEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entries := make([]domain.HistoryEntry, 0, len(s.entries))
	for _, entry := range s.entries {
		entries = append(entries, entry)
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].CreatedAt.After(entries[j].CreatedAt)
	})

	if limit > 0 && len(entries) > limit {
		entries = entries[:limit]
	}
	return entries, nil
}

// Get returns a single entry by ID.
func (s *HistoryStore) Get(_ context.Context, id string) (*domain.HistoryEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entry, ok := s.entries[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &entry, nil
}

// Close releases resources.
func (s *HistoryStore) Close() error {
	return nil
}
