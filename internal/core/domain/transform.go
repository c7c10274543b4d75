package domain

import (
	"fmt"
	"unicode/utf8"
)

// Text length bounds for a transform request, counted in runes.
const (
	MinTextLength = 1
	MaxTextLength = 10000
)

// Transform names in fixed pipeline order.
const (
	TransformStructure  = "structure"
	TransformVocabulary = "vocabulary"
	TransformNoise      = "noise"
)

// PipelineOrder is the fixed order transformers run in.
// Option flags select a subset; the order never changes.
var PipelineOrder = []string{TransformStructure, TransformVocabulary, TransformNoise}

// TransformOptions selects which transformers run.
// Any subset, including none, is valid.
type TransformOptions struct {
	// Structure enables sentence splitting, merging and reordering.
	Structure bool `json:"structure"`

	// Vocabulary enables connector variation and synonym substitution.
	Vocabulary bool `json:"vocabulary"`

	// Noise enables sentence-length perturbation and transition insertion.
	Noise bool `json:"noise"`
}

// Enabled reports whether the named transform is switched on.
func (o TransformOptions) Enabled(name string) bool {
	switch name {
	case TransformStructure:
		return o.Structure
	case TransformVocabulary:
		return o.Vocabulary
	case TransformNoise:
		return o.Noise
	default:
		return false
	}
}

// Any reports whether at least one transform is enabled.
func (o TransformOptions) Any() bool {
	return o.Structure || o.Vocabulary || o.Noise
}

// TransformRequest is a single text rewriting request.
// Requests are stateless; nothing persists in the core between calls.
type TransformRequest struct {
	// Text is the input to rewrite, 1-10,000 characters.
	Text string `json:"text"`

	// Options selects the transformers to apply.
	Options TransformOptions `json:"options"`

	// Intensity controls the magnitude of every enabled transform,
	// in [0.0, 1.0]. Higher intensity never decreases the expected
	// perturbation magnitude.
	Intensity float64 `json:"intensity"`
}

// Validate checks text length and intensity range.
// All failures wrap ErrInvalidInput.
func (r TransformRequest) Validate() error {
	n := utf8.RuneCountInString(r.Text)
	if n < MinTextLength {
		return fmt.Errorf("%w: text is empty", ErrInvalidInput)
	}
	if n > MaxTextLength {
		return fmt.Errorf("%w: text is %d characters, maximum is %d", ErrInvalidInput, n, MaxTextLength)
	}
	if r.Intensity < 0.0 || r.Intensity > 1.0 {
		return fmt.Errorf("%w: intensity %v outside [0.0, 1.0]", ErrInvalidInput, r.Intensity)
	}
	return nil
}

// MetricsReport is the before/after comparison on the wire.
// Field names match the response payload consumed by existing callers
// and must not change.
type MetricsReport struct {
	OriginalSentenceCount     int     `json:"original_sentence_count"`
	TransformedSentenceCount  int     `json:"transformed_sentence_count"`
	OriginalAvgLength         float64 `json:"original_avg_length"`
	TransformedAvgLength      float64 `json:"transformed_avg_length"`
	OriginalLengthStd         float64 `json:"original_length_std"`
	TransformedLengthStd      float64 `json:"transformed_length_std"`
	VocabularyDiversityChange float64 `json:"vocabulary_diversity_change"`
}

// CompareMetrics builds the wire report from two snapshots.
func CompareMetrics(before, after TextMetrics) MetricsReport {
	return MetricsReport{
		OriginalSentenceCount:     before.SentenceCount,
		TransformedSentenceCount:  after.SentenceCount,
		OriginalAvgLength:         before.AvgSentenceLength,
		TransformedAvgLength:      after.AvgSentenceLength,
		OriginalLengthStd:         before.LengthStd,
		TransformedLengthStd:      after.LengthStd,
		VocabularyDiversityChange: after.VocabularyDiversity - before.VocabularyDiversity,
	}
}

// TransformResult is the outcome of a transform request.
type TransformResult struct {
	// Original is the input text, unmodified.
	Original string `json:"original"`

	// Transformed is the pipeline output. Equals Original when all
	// options are disabled.
	Transformed string `json:"transformed"`

	// Metrics compares the before and after snapshots.
	Metrics MetricsReport `json:"metrics"`

	// AppliedTransforms lists the transforms that actually changed the
	// text, in pipeline order. A requested transformer that no-opped
	// (e.g. on text too short to restructure) is not listed.
	AppliedTransforms []string `json:"applied_transforms"`
}

// Health reports the liveness of the core and its collaborators.
type Health struct {
	// OracleReachable is true when a synonym oracle is configured.
	// This is a configuration check only; it never runs a generation call.
	OracleReachable bool `json:"oracleReachable"`
}
