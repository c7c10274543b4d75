package driven

// Wordlists holds the static word pools the transformers draw from.
// A Wordlists value is immutable once built; providers publish a fresh
// value on reload rather than mutating one in place, so concurrent
// readers need no locking.
type Wordlists struct {
	// ConnectorVariants maps a connector/discourse word to its
	// interchangeable variants. Substitution always excludes the
	// original form.
	ConnectorVariants map[string][]string

	// DiscourseMarkers are hedges inserted at sentence starts by the
	// vocabulary transformer ("admittedly", "사실", ...).
	DiscourseMarkers []string

	// Transitions are low-frequency transition phrases the noise
	// injector places at sentence boundaries.
	Transitions []string

	// Parentheticals are asides used to pad short sentences.
	Parentheticals []string

	// RareSynonyms maps common words to less predictable alternatives.
	RareSynonyms map[string][]string
}

// WordlistProvider supplies the current word pools.
type WordlistProvider interface {
	// Lists returns the current pools. The returned value must be
	// treated as read-only.
	Lists() *Wordlists
}
