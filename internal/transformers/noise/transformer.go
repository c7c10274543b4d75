// Package noise perturbs the sentence-length distribution and inserts
// low-predictability discourse elements, pushing perplexity and
// burstiness toward the ranges typical of human writing.
package noise

import (
	"context"
	"math/rand/v2"
	"sort"
	"strings"

	"github.com/custodia-labs/rephrase-cli/internal/core/domain"
	"github.com/custodia-labs/rephrase-cli/internal/core/ports/driven"
	"github.com/custodia-labs/rephrase-cli/internal/nlp/clause"
	"github.com/custodia-labs/rephrase-cli/internal/nlp/segment"
)

// DefaultRepeatWindow is how many insertions must pass before a
// transition phrase may repeat.
const DefaultRepeatWindow = 3

// shortenThreshold is the word count at or above which a selected
// sentence is shortened by extracting a clause; anything below is
// padded instead.
const shortenThreshold = 15

// rareGate is the intensity above which rare-synonym substitution runs.
const rareGate = 0.5

// Ensure Transformer implements the interface.
var _ driven.Transformer = (*Transformer)(nil)

// Transformer injects statistical noise.
type Transformer struct {
	seg          driven.Segmenter
	words        driven.WordlistProvider
	repeatWindow int
}

// Option configures the noise transformer.
type Option func(*Transformer)

// WithRepeatWindow sets the no-repeat window for transition phrases.
func WithRepeatWindow(n int) Option {
	return func(t *Transformer) {
		if n > 0 {
			t.repeatWindow = n
		}
	}
}

// New creates a noise transformer with the given options.
func New(seg driven.Segmenter, words driven.WordlistProvider, opts ...Option) *Transformer {
	t := &Transformer{
		seg:          seg,
		words:        words,
		repeatWindow: DefaultRepeatWindow,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Name returns the transform name.
func (t *Transformer) Name() string {
	return domain.TransformNoise
}

// Transform perturbs sentence lengths, substitutes rare synonyms and
// inserts transition phrases, all scaled by intensity. The aim is to
// raise the length standard deviation relative to the input; that is a
// goal, not an enforced invariant. No-op at zero intensity.
func (t *Transformer) Transform(_ context.Context, text string, intensity float64, rng *rand.Rand) (driven.TransformOutput, error) {
	if intensity <= 0 {
		return driven.TransformOutput{Text: text, Changed: false}, nil
	}

	lists := t.words.Lists()
	paragraphs := segment.Paragraphs(text)
	rebuilt := make([]string, 0, len(paragraphs))
	recent := newRecentPhrases(t.repeatWindow)

	for _, para := range paragraphs {
		sentences := t.seg.Sentences(para)
		if len(sentences) == 0 {
			rebuilt = append(rebuilt, para)
			continue
		}

		sentences = t.perturbLengths(sentences, lists, intensity, rng)
		if intensity > rareGate {
			sentences = t.substituteRare(sentences, lists, intensity, rng)
		}
		sentences = t.insertTransitions(sentences, lists, intensity, rng, recent)

		rebuilt = append(rebuilt, strings.Join(sentences, " "))
	}

	result := strings.Join(rebuilt, "\n\n")
	if result == text {
		return driven.TransformOutput{Text: text, Changed: false}, nil
	}
	return driven.TransformOutput{Text: result, Changed: true}, nil
}

// perturbLengths selects a subset of sentences scaled by intensity and
// widens the length distribution: long sentences shed a clause into its
// own sentence, everything else gains a parenthetical aside.
func (t *Transformer) perturbLengths(sentences []string, lists *driven.Wordlists, intensity float64, rng *rand.Rand) []string {
	count := int(float64(len(sentences)) * intensity * 0.5)
	if count < 1 {
		count = 1
	}

	selected := rng.Perm(len(sentences))[:min(count, len(sentences))]
	sort.Ints(selected)

	result := make([]string, 0, len(sentences)+count)
	pick := make(map[int]struct{}, len(selected))
	for _, idx := range selected {
		pick[idx] = struct{}{}
	}

	for i, s := range sentences {
		if _, ok := pick[i]; !ok {
			result = append(result, s)
			continue
		}

		if len(t.seg.Words(s)) >= shortenThreshold {
			if first, second, ok := clause.Split(s); ok {
				result = append(result, first, second)
				continue
			}
		}
		result = append(result, t.pad(s, lists, rng))
	}

	return result
}

// pad appends a parenthetical aside before the terminal punctuation.
func (t *Transformer) pad(sentence string, lists *driven.Wordlists, rng *rand.Rand) string {
	if len(lists.Parentheticals) == 0 {
		return sentence
	}
	aside := lists.Parentheticals[rng.IntN(len(lists.Parentheticals))]

	trimmed := strings.TrimSpace(sentence)
	terminal := ""
	if strings.HasSuffix(trimmed, ".") || strings.HasSuffix(trimmed, "!") || strings.HasSuffix(trimmed, "?") {
		terminal = trimmed[len(trimmed)-1:]
		trimmed = strings.TrimSpace(trimmed[:len(trimmed)-1])
	}
	return trimmed + " " + aside + terminal
}

// substituteRare swaps common words for less predictable alternatives
// from the rare-synonym pool, first occurrence per word.
func (t *Transformer) substituteRare(sentences []string, lists *driven.Wordlists, intensity float64, rng *rand.Rand) []string {
	if len(lists.RareSynonyms) == 0 {
		return sentences
	}

	keys := make([]string, 0, len(lists.RareSynonyms))
	for k := range lists.RareSynonyms {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	result := make([]string, len(sentences))
	for i, s := range sentences {
		for _, key := range keys {
			if !strings.Contains(s, key) || rng.Float64() >= intensity {
				continue
			}
			alternatives := lists.RareSynonyms[key]
			if len(alternatives) == 0 {
				continue
			}
			s = strings.Replace(s, key, alternatives[rng.IntN(len(alternatives))], 1)
		}
		result[i] = s
	}

	return result
}

// insertTransitions places transition phrases at sentence boundaries,
// count scaled by intensity, never at the first sentence and never
// repeating a phrase within the configured window.
func (t *Transformer) insertTransitions(sentences []string, lists *driven.Wordlists, intensity float64, rng *rand.Rand, recent *recentPhrases) []string {
	if len(sentences) < 2 || len(lists.Transitions) == 0 {
		return sentences
	}

	count := int(float64(len(sentences)) * intensity * 0.3)
	if count < 1 {
		count = 1
	}

	positions := rng.Perm(len(sentences) - 1)
	inserted := 0
	for _, p := range positions {
		if inserted == count {
			break
		}
		idx := p + 1
		phrase := recent.pick(lists.Transitions, rng)
		if phrase == "" {
			break
		}
		sentences[idx] = phrase + ", " + sentences[idx]
		inserted++
	}

	return sentences
}

// recentPhrases tracks the last picks so the same transition is not
// chosen twice within the window.
type recentPhrases struct {
	window int
	last   []string
}

func newRecentPhrases(window int) *recentPhrases {
	return &recentPhrases{window: window}
}

// pick selects a phrase outside the window, or "" when the pool is
// exhausted by the window.
func (r *recentPhrases) pick(pool []string, rng *rand.Rand) string {
	available := make([]string, 0, len(pool))
	for _, p := range pool {
		if !r.contains(p) {
			available = append(available, p)
		}
	}
	if len(available) == 0 {
		return ""
	}

	phrase := available[rng.IntN(len(available))]
	r.last = append(r.last, phrase)
	if len(r.last) > r.window {
		r.last = r.last[1:]
	}
	return phrase
}

func (r *recentPhrases) contains(phrase string) bool {
	for _, p := range r.last {
		if p == phrase {
			return true
		}
	}
	return false
}
