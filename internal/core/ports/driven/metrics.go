package driven

import "github.com/custodia-labs/rephrase-cli/internal/core/domain"

// MetricsEngine computes statistical snapshots of text.
// Compute is pure and deterministic: the same text always yields
// identical values, and snapshots are never cached or mutated.
type MetricsEngine interface {
	// Compute builds a fresh snapshot. Empty input is rejected with
	// domain.ErrInvalidInput; input with no recognisable sentence is a
	// degenerate zero-count snapshot, not an error.
	Compute(text string) (domain.TextMetrics, error)
}
