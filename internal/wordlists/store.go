// Package wordlists supplies the word pools the transformers draw from:
// connector variants, discourse markers, transition phrases and
// parenthetical asides. Built-in defaults can be extended through a
// TOML override file, optionally hot-reloaded on change.
package wordlists

import (
	"fmt"
	"os"
	"sync/atomic"

	"github.com/fsnotify/fsnotify"
	"github.com/pelletier/go-toml/v2"

	"github.com/custodia-labs/rephrase-cli/internal/core/ports/driven"
	"github.com/custodia-labs/rephrase-cli/internal/logger"
)

// Ensure Store implements the interface.
var _ driven.WordlistProvider = (*Store)(nil)

// fileFormat is the override file schema.
// Entries merge over the defaults key by key.
type fileFormat struct {
	ConnectorVariants map[string][]string `toml:"connector_variants"`
	DiscourseMarkers  []string            `toml:"discourse_markers"`
	Transitions       []string            `toml:"transitions"`
	Parentheticals    []string            `toml:"parentheticals"`
	RareSynonyms      map[string][]string `toml:"rare_synonyms"`
}

// Store provides the current word pools.
// Reloads publish a fresh immutable Wordlists value; readers always see
// a complete snapshot and never need a lock.
type Store struct {
	current atomic.Pointer[driven.Wordlists]
	path    string
	watcher *fsnotify.Watcher
}

// NewStore creates a store with the built-in defaults.
// If overridePath is non-empty and the file exists, it is merged on top.
func NewStore(overridePath string) (*Store, error) {
	s := &Store{path: overridePath}
	s.current.Store(Defaults())

	if overridePath != "" {
		if err := s.Reload(); err != nil && !os.IsNotExist(err) {
			return nil, err
		}
	}

	return s, nil
}

// Lists returns the current pools. The returned value is read-only.
func (s *Store) Lists() *driven.Wordlists {
	return s.current.Load()
}

// Reload re-reads the override file and publishes a fresh snapshot.
func (s *Store) Reload() error {
	if s.path == "" {
		return nil
	}

	data, err := os.ReadFile(s.path)
	if err != nil {
		return err
	}

	var overrides fileFormat
	if err := toml.Unmarshal(data, &overrides); err != nil {
		return fmt.Errorf("parsing wordlist file %s: %w", s.path, err)
	}

	s.current.Store(merge(Defaults(), overrides))
	logger.Debug("Wordlists reloaded from %s", s.path)
	return nil
}

// Watch reloads the override file whenever it changes.
// It blocks until the done channel closes. Errors during reload are
// logged and the previous snapshot stays in effect.
func (s *Store) Watch(done <-chan struct{}) error {
	if s.path == "" {
		return nil
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating wordlist watcher: %w", err)
	}
	defer watcher.Close()
	s.watcher = watcher

	if err := watcher.Add(s.path); err != nil {
		return fmt.Errorf("watching %s: %w", s.path, err)
	}

	for {
		select {
		case <-done:
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) {
				if err := s.Reload(); err != nil {
					logger.Warn("Wordlist reload failed: %v", err)
				}
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Warn("Wordlist watcher error: %v", err)
		}
	}
}

// merge layers overrides on top of base, key by key.
func merge(base *driven.Wordlists, overrides fileFormat) *driven.Wordlists {
	merged := &driven.Wordlists{
		ConnectorVariants: make(map[string][]string, len(base.ConnectorVariants)),
		DiscourseMarkers:  base.DiscourseMarkers,
		Transitions:       base.Transitions,
		Parentheticals:    base.Parentheticals,
		RareSynonyms:      make(map[string][]string, len(base.RareSynonyms)),
	}

	for k, v := range base.ConnectorVariants {
		merged.ConnectorVariants[k] = v
	}
	for k, v := range overrides.ConnectorVariants {
		merged.ConnectorVariants[k] = v
	}

	for k, v := range base.RareSynonyms {
		merged.RareSynonyms[k] = v
	}
	for k, v := range overrides.RareSynonyms {
		merged.RareSynonyms[k] = v
	}

	if len(overrides.DiscourseMarkers) > 0 {
		merged.DiscourseMarkers = overrides.DiscourseMarkers
	}
	if len(overrides.Transitions) > 0 {
		merged.Transitions = overrides.Transitions
	}
	if len(overrides.Parentheticals) > 0 {
		merged.Parentheticals = overrides.Parentheticals
	}

	return merged
}
