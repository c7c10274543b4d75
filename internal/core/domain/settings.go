package domain

// OracleProvider identifies a synonym oracle backend.
type OracleProvider string

// Supported oracle providers.
const (
	OracleProviderOpenAI    OracleProvider = "openai"
	OracleProviderAnthropic OracleProvider = "anthropic"
	OracleProviderOllama    OracleProvider = "ollama"
)

// OracleSettings configures the synonym oracle connection.
type OracleSettings struct {
	Provider OracleProvider

	// APIKey authenticates against hosted providers. Ollama runs
	// locally and ignores it.
	APIKey string

	// BaseURL overrides the provider's default endpoint.
	BaseURL string

	// Model is the model to use. Empty selects the provider default.
	Model string

	// TimeoutSeconds is the per-request timeout.
	TimeoutSeconds int
}

// IsConfigured reports whether the settings are complete enough to
// build an oracle. Ollama needs no credentials; the hosted providers
// need an API key.
func (s *OracleSettings) IsConfigured() bool {
	if s == nil || s.Provider == "" {
		return false
	}
	if s.Provider == OracleProviderOllama {
		return true
	}
	return s.APIKey != ""
}
