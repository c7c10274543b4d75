package domain

// TextMetrics is an immutable statistical snapshot of a piece of text.
// Snapshots are computed fresh on every request and never cached or
// mutated in place.
type TextMetrics struct {
	// SentenceCount is the number of sentences found by the segmenter.
	// Zero for degenerate input (e.g. punctuation only); not an error.
	SentenceCount int

	// WordCount is the total number of word tokens.
	WordCount int

	// AvgSentenceLength is the mean sentence length in words.
	AvgSentenceLength float64

	// LengthStd is the population standard deviation of sentence
	// lengths in words. Zero for single-sentence input.
	LengthStd float64

	// VocabularyDiversity is the type-token ratio: distinct normalised
	// word forms divided by total word tokens, in [0, 1].
	VocabularyDiversity float64

	// Burstiness measures how uneven word usage is, in [-1, 1].
	// Computed as (sigma - mu) / (sigma + mu) over word frequencies.
	// Human writing tends to score higher than machine output.
	Burstiness float64

	// SentenceLengths holds the per-sentence word counts the
	// statistics above were derived from.
	SentenceLengths []int
}
