// Package metrics computes statistical snapshots of text.
package metrics

import (
	"math"
	"strings"

	"github.com/custodia-labs/rephrase-cli/internal/core/domain"
	"github.com/custodia-labs/rephrase-cli/internal/core/ports/driven"
	"github.com/custodia-labs/rephrase-cli/internal/nlp/segment"
)

// Ensure Engine implements the interface.
var _ driven.MetricsEngine = (*Engine)(nil)

// Engine computes sentence-length statistics and vocabulary diversity.
// Compute is a pure function: the same text always yields the same
// snapshot, and nothing is cached between calls.
type Engine struct {
	seg driven.Segmenter
}

// New creates a metrics engine using the given segmentation strategy.
func New(seg driven.Segmenter) *Engine {
	return &Engine{seg: seg}
}

// Compute builds a snapshot for text.
// Empty or whitespace-only input is rejected with domain.ErrInvalidInput.
// Input that segments into zero sentences (e.g. bare punctuation) is a
// degenerate snapshot with zero counts, not an error.
func (e *Engine) Compute(text string) (domain.TextMetrics, error) {
	if strings.TrimSpace(text) == "" {
		return domain.TextMetrics{}, domain.ErrInvalidInput
	}

	sentences := e.seg.Sentences(text)
	words := e.seg.Words(text)

	lengths := make([]int, len(sentences))
	for i, s := range sentences {
		lengths[i] = len(e.seg.Words(s))
	}

	m := domain.TextMetrics{
		SentenceCount:   len(sentences),
		WordCount:       len(words),
		SentenceLengths: lengths,
	}

	if len(lengths) > 0 {
		m.AvgSentenceLength = mean(lengths)
		m.LengthStd = std(lengths)
	}

	if len(words) > 0 {
		m.VocabularyDiversity = typeTokenRatio(words)
		m.Burstiness = burstiness(words)
	}

	return m, nil
}

// typeTokenRatio is distinct normalised word forms over total tokens.
func typeTokenRatio(words []string) float64 {
	distinct := make(map[string]struct{}, len(words))
	for _, w := range words {
		distinct[segment.Normalise(w)] = struct{}{}
	}
	return float64(len(distinct)) / float64(len(words))
}

// burstiness is (sigma - mu) / (sigma + mu) over word frequencies.
// Values near 1 mean clustered word usage, near -1 evenly spread.
func burstiness(words []string) float64 {
	counts := make(map[string]int, len(words))
	for _, w := range words {
		counts[segment.Normalise(w)]++
	}
	if len(counts) < 2 {
		return 0
	}

	freqs := make([]int, 0, len(counts))
	for _, c := range counts {
		freqs = append(freqs, c)
	}

	mu := mean(freqs)
	sigma := std(freqs)
	if mu+sigma == 0 {
		return 0
	}
	return (sigma - mu) / (sigma + mu)
}

func mean(values []int) float64 {
	if len(values) == 0 {
		return 0
	}
	sum := 0
	for _, v := range values {
		sum += v
	}
	return float64(sum) / float64(len(values))
}

// std is the population standard deviation.
// Fewer than two values yields 0, matching the single-sentence edge case.
func std(values []int) float64 {
	if len(values) < 2 {
		return 0
	}
	mu := mean(values)
	var sum float64
	for _, v := range values {
		d := float64(v) - mu
		sum += d * d
	}
	return math.Sqrt(sum / float64(len(values)))
}
