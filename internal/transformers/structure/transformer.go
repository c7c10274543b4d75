// Package structure resegments and reorders text at the sentence level
// to break n-gram continuity: long sentences split at a coordinating
// boundary, short ones merge with their neighbour, and fronted
// adverbials swap behind the main clause.
package structure

import (
	"context"
	"math/rand/v2"
	"strings"

	"github.com/custodia-labs/rephrase-cli/internal/core/domain"
	"github.com/custodia-labs/rephrase-cli/internal/core/ports/driven"
	"github.com/custodia-labs/rephrase-cli/internal/nlp/clause"
	"github.com/custodia-labs/rephrase-cli/internal/nlp/segment"
)

// DefaultSplitThreshold is the word count above which a sentence is a
// split candidate.
const DefaultSplitThreshold = 20

// DefaultMergeThreshold is the word count below which a sentence is a
// merge candidate.
const DefaultMergeThreshold = 6

// Ensure Transformer implements the interface.
var _ driven.Transformer = (*Transformer)(nil)

// Transformer applies structural resegmentation.
type Transformer struct {
	seg            driven.Segmenter
	splitThreshold int
	mergeThreshold int
}

// Option configures the structure transformer.
type Option func(*Transformer)

// WithSplitThreshold sets the split candidate threshold in words.
func WithSplitThreshold(n int) Option {
	return func(t *Transformer) {
		if n > 0 {
			t.splitThreshold = n
		}
	}
}

// WithMergeThreshold sets the merge candidate threshold in words.
func WithMergeThreshold(n int) Option {
	return func(t *Transformer) {
		if n > 0 {
			t.mergeThreshold = n
		}
	}
}

// New creates a structure transformer with the given options.
func New(seg driven.Segmenter, opts ...Option) *Transformer {
	t := &Transformer{
		seg:            seg,
		splitThreshold: DefaultSplitThreshold,
		mergeThreshold: DefaultMergeThreshold,
	}
	for _, opt := range opts {
		opt(t)
	}
	if t.mergeThreshold >= t.splitThreshold {
		t.mergeThreshold = t.splitThreshold / 3
	}
	return t
}

// Name returns the transform name.
func (t *Transformer) Name() string {
	return domain.TransformStructure
}

// Transform resegments text with probability proportional to intensity.
// Paragraph breaks are preserved. No-op at zero intensity; a paragraph
// with fewer than two sentences is left alone unless its single
// sentence is long enough to split.
func (t *Transformer) Transform(_ context.Context, text string, intensity float64, rng *rand.Rand) (driven.TransformOutput, error) {
	if intensity <= 0 {
		return driven.TransformOutput{Text: text, Changed: false}, nil
	}

	paragraphs := segment.Paragraphs(text)
	rebuilt := make([]string, 0, len(paragraphs))
	changed := false

	for _, para := range paragraphs {
		out, didChange := t.transformParagraph(para, intensity, rng)
		rebuilt = append(rebuilt, out)
		changed = changed || didChange
	}

	result := strings.Join(rebuilt, "\n\n")
	if !changed || result == text {
		return driven.TransformOutput{Text: text, Changed: false}, nil
	}
	return driven.TransformOutput{Text: result, Changed: true}, nil
}

func (t *Transformer) transformParagraph(para string, intensity float64, rng *rand.Rand) (string, bool) {
	sentences := t.seg.Sentences(para)
	if len(sentences) == 0 {
		return para, false
	}

	var resegmented []string
	changed := false

	if len(sentences) < 2 {
		// A lone sentence cannot merge but may still split when long
		// enough, and its fronted constituents stay movable.
		s := sentences[0]
		if t.wordCount(s) > t.splitThreshold && rng.Float64() < intensity {
			if first, second, ok := clause.Split(s); ok {
				resegmented = []string{first, second}
				changed = true
			}
		}
		if resegmented == nil {
			resegmented = sentences
		}
	} else {
		resegmented, changed = t.resegment(sentences, intensity, rng)
	}

	reordered, didReorder := t.reorder(resegmented, intensity, rng)

	return strings.Join(reordered, " "), changed || didReorder
}

// resegment walks the sentences once, splitting long ones and merging
// short ones with their successor.
func (t *Transformer) resegment(sentences []string, intensity float64, rng *rand.Rand) ([]string, bool) {
	result := make([]string, 0, len(sentences))
	changed := false

	for i := 0; i < len(sentences); i++ {
		s := sentences[i]
		wc := t.wordCount(s)

		if wc > t.splitThreshold && rng.Float64() < intensity {
			if first, second, ok := clause.Split(s); ok {
				result = append(result, first, second)
				changed = true
				continue
			}
		}

		if wc < t.mergeThreshold && i+1 < len(sentences) && rng.Float64() < intensity {
			result = append(result, clause.Merge(s, sentences[i+1]))
			changed = true
			i++
			continue
		}

		result = append(result, s)
	}

	return result, changed
}

// reorder reworks movable fronted constituents: a comma-set adverbial
// swaps behind the main clause, a bare fronted connector gets set off
// with a comma.
func (t *Transformer) reorder(sentences []string, intensity float64, rng *rand.Rand) ([]string, bool) {
	changed := false
	result := make([]string, len(sentences))

	for i, s := range sentences {
		if rng.Float64() >= intensity {
			result[i] = s
			continue
		}
		if swapped, ok := clause.SwapFronted(s); ok {
			result[i] = swapped
			changed = true
			continue
		}
		if setOff, ok := clause.SetOffFronted(s); ok {
			result[i] = setOff
			changed = true
			continue
		}
		result[i] = s
	}

	return result, changed
}

func (t *Transformer) wordCount(s string) int {
	return len(t.seg.Words(s))
}
