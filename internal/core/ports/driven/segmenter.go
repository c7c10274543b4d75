package driven

// Segmenter splits text into sentences and word tokens.
// Segmentation is a replaceable strategy: punctuation conventions vary
// by language, so the metrics engine and transformers depend on this
// interface rather than a concrete splitter. The default implementation
// is a Korean-aware heuristic in internal/nlp/segment.
type Segmenter interface {
	// Sentences splits text into sentences. Degenerate input that
	// contains no sentence (e.g. punctuation only) yields an empty
	// slice, not an error.
	Sentences(text string) []string

	// Words splits text into word tokens: maximal runs of
	// non-whitespace, non-punctuation characters.
	Words(text string) []string
}
