// Package vocabulary substitutes connectors and content words with
// variants to reduce lexical-similarity signals. A static connector
// mapping always applies; an optional synonym oracle adds
// context-aware substitutions and is skipped silently when
// unavailable.
package vocabulary

import (
	"context"
	"math/rand/v2"
	"sort"
	"strings"
	"time"
	"unicode"

	"github.com/custodia-labs/rephrase-cli/internal/core/domain"
	"github.com/custodia-labs/rephrase-cli/internal/core/ports/driven"
	"github.com/custodia-labs/rephrase-cli/internal/logger"
	"github.com/custodia-labs/rephrase-cli/internal/nlp/segment"
)

// DefaultOracleTimeout bounds each synonym call.
const DefaultOracleTimeout = 10 * time.Second

// markerGate is the intensity above which discourse markers are
// inserted at sentence starts.
const markerGate = 0.6

// oracleGate is the intensity above which the oracle is consulted.
const oracleGate = 0.3

// maxOracleCalls caps per-request oracle traffic so a slow endpoint
// cannot stall the pipeline indefinitely.
const maxOracleCalls = 5

// Ensure Transformer implements the interface.
var _ driven.Transformer = (*Transformer)(nil)

// Transformer applies lexical variation.
type Transformer struct {
	seg           driven.Segmenter
	words         driven.WordlistProvider
	oracle        driven.SynonymOracle
	oracleTimeout time.Duration
}

// Option configures the vocabulary transformer.
type Option func(*Transformer)

// WithOracle sets the synonym oracle. Without one, only the static
// mapping and discourse markers apply.
func WithOracle(oracle driven.SynonymOracle) Option {
	return func(t *Transformer) {
		t.oracle = oracle
	}
}

// WithOracleTimeout sets the per-call oracle timeout.
func WithOracleTimeout(d time.Duration) Option {
	return func(t *Transformer) {
		if d > 0 {
			t.oracleTimeout = d
		}
	}
}

// New creates a vocabulary transformer with the given options.
func New(seg driven.Segmenter, words driven.WordlistProvider, opts ...Option) *Transformer {
	t := &Transformer{
		seg:           seg,
		words:         words,
		oracleTimeout: DefaultOracleTimeout,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Name returns the transform name.
func (t *Transformer) Name() string {
	return domain.TransformVocabulary
}

// Transform varies connectors, consults the oracle for content-word
// synonyms and inserts discourse markers, all gated by intensity.
// At intensity 1.0 every mapped connector present in the text is
// substituted, so a visible change is guaranteed. Oracle failures are
// swallowed: the transform falls back to the static steps and the
// pipeline never fails because the oracle is unreachable.
func (t *Transformer) Transform(ctx context.Context, text string, intensity float64, rng *rand.Rand) (driven.TransformOutput, error) {
	if intensity <= 0 {
		return driven.TransformOutput{Text: text, Changed: false}, nil
	}

	lists := t.words.Lists()
	result := t.varyConnectors(text, lists, intensity, rng)

	if t.oracle != nil && intensity > oracleGate {
		result = t.applyOracleSynonyms(ctx, result, lists, intensity, rng)
	}

	if intensity > markerGate {
		result = t.insertMarkers(result, lists, intensity, rng)
	}

	if result == text {
		return driven.TransformOutput{Text: text, Changed: false}, nil
	}
	return driven.TransformOutput{Text: result, Changed: true}, nil
}

// varyConnectors replaces the first occurrence of each mapped connector
// with probability equal to intensity, choosing uniformly among the
// variants and always excluding the original form.
func (t *Transformer) varyConnectors(text string, lists *driven.Wordlists, intensity float64, rng *rand.Rand) string {
	result := text

	// Longest connectors first so "예를 들어" wins over any shorter
	// overlap, and in deterministic order for seeded runs.
	connectors := make([]string, 0, len(lists.ConnectorVariants))
	for c := range lists.ConnectorVariants {
		connectors = append(connectors, c)
	}
	sort.Slice(connectors, func(i, j int) bool {
		if len(connectors[i]) != len(connectors[j]) {
			return len(connectors[i]) > len(connectors[j])
		}
		return connectors[i] < connectors[j]
	})

	for _, connector := range connectors {
		if !strings.Contains(result, connector) {
			continue
		}
		if rng.Float64() >= intensity {
			continue
		}
		variants := excluding(lists.ConnectorVariants[connector], connector)
		if len(variants) == 0 {
			continue
		}
		replacement := variants[rng.IntN(len(variants))]
		// First occurrence only, to keep some lexical consistency.
		result = strings.Replace(result, connector, replacement, 1)
	}

	return result
}

// applyOracleSynonyms asks the oracle for substitutes of a few content
// words. Any oracle error ends the step silently.
func (t *Transformer) applyOracleSynonyms(ctx context.Context, text string, lists *driven.Wordlists, intensity float64, rng *rand.Rand) string {
	sentences := t.seg.Sentences(text)
	if len(sentences) == 0 {
		return text
	}

	budget := int(float64(len(sentences)) * intensity)
	if budget < 1 {
		budget = 1
	}
	if budget > maxOracleCalls {
		budget = maxOracleCalls
	}

	result := text
	for _, idx := range rng.Perm(len(sentences)) {
		if budget == 0 {
			break
		}
		sentence := sentences[idx]
		word := t.pickContentWord(sentence, lists, rng)
		if word == "" {
			continue
		}
		budget--

		callCtx, cancel := context.WithTimeout(ctx, t.oracleTimeout)
		candidate, err := t.oracle.SuggestSynonym(callCtx, word, sentence)
		cancel()
		if err != nil {
			// Oracle degradation is invisible to the caller beyond
			// reduced lexical variation.
			logger.Debug("Oracle synonym lookup failed, skipping: %v", err)
			return result
		}

		if !acceptable(word, candidate) {
			continue
		}
		result = strings.Replace(result, word, candidate, 1)
	}

	return result
}

// pickContentWord selects a substitution candidate from the sentence:
// long enough to carry content and not a mapped connector.
func (t *Transformer) pickContentWord(sentence string, lists *driven.Wordlists, rng *rand.Rand) string {
	words := t.seg.Words(sentence)
	candidates := make([]string, 0, len(words))
	for _, w := range words {
		if len([]rune(w)) < 2 {
			continue
		}
		if _, mapped := lists.ConnectorVariants[w]; mapped {
			continue
		}
		candidates = append(candidates, w)
	}
	if len(candidates) == 0 {
		return ""
	}
	return candidates[rng.IntN(len(candidates))]
}

// insertMarkers prepends discourse markers to a few sentences beyond
// the first, mirroring the hedges of human prose.
func (t *Transformer) insertMarkers(text string, lists *driven.Wordlists, intensity float64, rng *rand.Rand) string {
	if len(lists.DiscourseMarkers) == 0 {
		return text
	}

	paragraphs := segment.Paragraphs(text)
	rebuilt := make([]string, 0, len(paragraphs))

	for _, para := range paragraphs {
		sentences := t.seg.Sentences(para)
		if len(sentences) < 2 {
			rebuilt = append(rebuilt, para)
			continue
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
			idx := p + 1 // never the first sentence
			if startsWithMarker(sentences[idx], lists.DiscourseMarkers) {
				continue
			}
			marker := lists.DiscourseMarkers[rng.IntN(len(lists.DiscourseMarkers))]
			sentences[idx] = marker + ", " + lowercaseFirst(sentences[idx])
			inserted++
		}

		rebuilt = append(rebuilt, strings.Join(sentences, " "))
	}

	return strings.Join(rebuilt, "\n\n")
}

// acceptable is the best-effort word-class check: the candidate must be
// a single token, differ from the original, and stay in the same script.
func acceptable(original, candidate string) bool {
	candidate = strings.TrimSpace(candidate)
	if candidate == "" || candidate == original {
		return false
	}
	if strings.ContainsAny(candidate, " \t\n") {
		return false
	}
	return sameScript(original, candidate)
}

// sameScript reports whether both words lead with the same script
// (Hangul stays Hangul, latin stays latin).
func sameScript(a, b string) bool {
	return leadingHangul(a) == leadingHangul(b)
}

func leadingHangul(s string) bool {
	for _, r := range s {
		return unicode.Is(unicode.Hangul, r)
	}
	return false
}

func startsWithMarker(sentence string, markers []string) bool {
	for _, m := range markers {
		if strings.HasPrefix(sentence, m) {
			return true
		}
	}
	return false
}

func excluding(variants []string, original string) []string {
	out := make([]string, 0, len(variants))
	for _, v := range variants {
		if v != original {
			out = append(out, v)
		}
	}
	return out
}

func lowercaseFirst(s string) string {
	runes := []rune(s)
	if len(runes) == 0 {
		return s
	}
	runes[0] = unicode.ToLower(runes[0])
	return string(runes)
}
