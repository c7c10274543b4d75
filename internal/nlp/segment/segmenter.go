// Package segment provides the default heuristic sentence segmenter.
//
// The segmenter is Korean-first: alongside terminal punctuation (. ? !)
// it recognises the common sentence-final endings 다/요/죠/네/까 when
// followed by whitespace and the start of a new sentence. Latin-script
// text is handled through the punctuation rules plus a small
// abbreviation guard.
package segment

import (
	"strings"
	"unicode"

	"github.com/custodia-labs/rephrase-cli/internal/core/ports/driven"
)

// Ensure Segmenter implements the interface.
var _ driven.Segmenter = (*Segmenter)(nil)

// koreanFinalEndings are sentence-final ending syllables that mark a
// likely boundary when followed by whitespace and a fresh sentence start.
const koreanFinalEndings = "다요죠네까"

// abbreviations are latin tokens whose trailing period does not end a
// sentence. Compared lowercase, without the final period.
var abbreviations = map[string]struct{}{
	"mr": {}, "mrs": {}, "ms": {}, "dr": {}, "prof": {},
	"etc": {}, "vs": {}, "cf": {}, "fig": {}, "no": {},
	"e.g": {}, "i.e": {},
}

// Segmenter splits text into sentences and word tokens.
type Segmenter struct{}

// New creates the default segmenter.
func New() *Segmenter {
	return &Segmenter{}
}

// Sentences splits text into sentences.
// Candidates containing no letter or digit (e.g. bare punctuation) are
// dropped, so degenerate input yields an empty slice rather than an error.
func (s *Segmenter) Sentences(text string) []string {
	normalised := normalisedWhitespace(text)
	if normalised == "" {
		return nil
	}

	runes := []rune(normalised)
	var sentences []string
	start := 0

	for i := 0; i < len(runes); i++ {
		if !isBoundary(runes, i) {
			continue
		}
		candidate := strings.TrimSpace(string(runes[start : i+1]))
		if hasWordContent(candidate) {
			sentences = append(sentences, candidate)
		}
		start = i + 1
	}

	if start < len(runes) {
		candidate := strings.TrimSpace(string(runes[start:]))
		if hasWordContent(candidate) {
			sentences = append(sentences, candidate)
		}
	}

	return sentences
}

// Words splits text into word tokens: maximal runs of non-whitespace,
// non-punctuation characters.
func (s *Segmenter) Words(text string) []string {
	var words []string
	var current strings.Builder

	flush := func() {
		if current.Len() > 0 {
			words = append(words, current.String())
			current.Reset()
		}
	}

	for _, r := range text {
		if unicode.IsSpace(r) || unicode.IsPunct(r) {
			flush()
			continue
		}
		current.WriteRune(r)
	}
	flush()

	return words
}

// Normalise lowercases a word token for type-token comparison.
// Lowercasing only affects cased scripts; Hangul passes through.
func Normalise(word string) string {
	return strings.ToLower(word)
}

// Paragraphs splits text on blank lines. Used by transformers that must
// preserve paragraph structure while reworking sentences within each.
func Paragraphs(text string) []string {
	parts := strings.Split(text, "\n\n")
	paragraphs := make([]string, 0, len(parts))
	for _, p := range parts {
		if strings.TrimSpace(p) != "" {
			paragraphs = append(paragraphs, strings.TrimSpace(p))
		}
	}
	return paragraphs
}

// isBoundary reports whether position i ends a sentence.
func isBoundary(runes []rune, i int) bool {
	r := runes[i]

	// Terminal punctuation followed by whitespace or end of text.
	if r == '.' || r == '?' || r == '!' {
		if i+1 < len(runes) && !unicode.IsSpace(runes[i+1]) {
			return false
		}
		if r == '.' && isAbbreviation(runes, i) {
			return false
		}
		return true
	}

	// Korean final ending followed by whitespace and a fresh sentence
	// start (Hangul, uppercase latin, or an opening quote).
	if strings.ContainsRune(koreanFinalEndings, r) {
		if i+1 >= len(runes) || !unicode.IsSpace(runes[i+1]) {
			return false
		}
		next := nextNonSpace(runes, i+1)
		if next == 0 {
			return false
		}
		return unicode.Is(unicode.Hangul, next) || unicode.IsUpper(next) || next == '"' || next == '“'
	}

	return false
}

// isAbbreviation reports whether the period at position i terminates a
// known abbreviation or a single-letter initial.
func isAbbreviation(runes []rune, i int) bool {
	start := i
	for start > 0 && !unicode.IsSpace(runes[start-1]) {
		start--
	}
	token := strings.ToLower(strings.TrimSuffix(string(runes[start:i]), "."))
	token = strings.TrimSuffix(token, ".") // handles "e.g." style double periods
	if _, ok := abbreviations[token]; ok {
		return true
	}
	// Single-letter initials such as "J."
	word := []rune(token)
	return len(word) == 1 && unicode.IsLetter(word[0])
}

// nextNonSpace returns the first non-space rune at or after position i,
// or 0 when none remains.
func nextNonSpace(runes []rune, i int) rune {
	for ; i < len(runes); i++ {
		if !unicode.IsSpace(runes[i]) {
			return runes[i]
		}
	}
	return 0
}

// normalisedWhitespace collapses whitespace runs to single spaces.
func normalisedWhitespace(text string) string {
	return strings.Join(strings.Fields(text), " ")
}

// hasWordContent reports whether the candidate contains at least one
// letter or digit. Bare punctuation is not a sentence.
func hasWordContent(candidate string) bool {
	for _, r := range candidate {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return true
		}
	}
	return false
}
