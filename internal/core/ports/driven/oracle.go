package driven

import "context"

// SynonymOracle suggests context-appropriate synonyms using an external
// text-generation service. This is an optional capability - when nil,
// the vocabulary transformer degrades to its static connector mapping.
//
// Implementations may include:
//   - OpenAI (chat completions) or any compatible endpoint
//   - Anthropic (messages)
//   - Ollama (local inference)
//
// Every call must honour the context deadline. A timeout or transport
// error is reported as an error and treated by callers as "oracle
// unavailable" - it must never become a pipeline failure.
type SynonymOracle interface {
	// SuggestSynonym returns a register-appropriate substitute for word
	// given the sentence it appears in. The result is a single word;
	// callers verify it differs from the original before applying it.
	SuggestSynonym(ctx context.Context, word, sentenceContext string) (string, error)

	// ModelName returns the name of the model being used.
	ModelName() string

	// Ping validates the service is reachable with a lightweight,
	// non-generating request. Used by the health command's probe flag.
	Ping(ctx context.Context) error

	// Close releases resources.
	Close() error
}
