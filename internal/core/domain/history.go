package domain

import "time"

// HistoryEntry records one completed transformation for later review.
// History lives entirely in the driving layer; the core pipeline itself
// holds no state between requests.
type HistoryEntry struct {
	// ID is the unique identifier for the entry.
	ID string

	// CreatedAt is when the transformation ran.
	CreatedAt time.Time

	// Original is the input text.
	Original string

	// Transformed is the pipeline output.
	Transformed string

	// Intensity is the requested transform intensity.
	Intensity float64

	// AppliedTransforms lists the transforms that changed the text.
	AppliedTransforms []string

	// Metrics is the before/after comparison for the run.
	Metrics MetricsReport
}
