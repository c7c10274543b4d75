// Package ollama provides a synonym oracle adapter using a local
// Ollama instance.
package ollama

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/custodia-labs/rephrase-cli/internal/core/ports/driven"
)

// Ensure Oracle implements the interface.
var _ driven.SynonymOracle = (*Oracle)(nil)

// Default configuration values.
const (
	DefaultBaseURL = "http://localhost:11434"
	DefaultModel   = "llama3.2"
	DefaultTimeout = 30 * time.Second
)

// Config holds configuration for the Ollama oracle.
type Config struct {
	// BaseURL is the Ollama API base URL (default: http://localhost:11434).
	BaseURL string

	// Model is the model to use (default: llama3.2).
	Model string

	// Timeout is the per-request timeout (default: 30s). Local models
	// can be slow on first load, so this is looser than the hosted
	// providers.
	Timeout time.Duration
}

// Oracle suggests synonyms through the generate endpoint. Ollama runs
// locally, so there is no API key and no rate limiting.
type Oracle struct {
	client  *http.Client
	baseURL string
	model   string
}

// generateRequest is the Ollama /api/generate request format.
type generateRequest struct {
	Model   string   `json:"model"`
	Prompt  string   `json:"prompt"`
	Stream  bool     `json:"stream"`
	Options *options `json:"options,omitempty"`
}

// options holds generation parameters.
type options struct {
	NumPredict  int     `json:"num_predict,omitempty"`
	Temperature float64 `json:"temperature,omitempty"`
}

// generateResponse is the Ollama /api/generate response format.
type generateResponse struct {
	Response string `json:"response"`
	Done     bool   `json:"done"`
}

// synonymPrompt asks for exactly one substitute word. The oracle is
// bilingual: the word's own script decides the answer's language.
const synonymPrompt = `You are a lexical substitution assistant for Korean and English prose.
Given a word and the sentence it appears in, reply with ONE substitute word
of the same word class and register that fits the sentence. Keep the same
language as the original word. Reply with the word only, no punctuation,
no explanation.

Sentence: %s
Word: %s
Substitute:`

// New creates an Ollama oracle.
func New(cfg Config) *Oracle {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.Model == "" {
		cfg.Model = DefaultModel
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = DefaultTimeout
	}

	return &Oracle{
		client: &http.Client{
			Timeout: cfg.Timeout,
		},
		baseURL: cfg.BaseURL,
		model:   cfg.Model,
	}
}

// SuggestSynonym returns a single substitute for word in its sentence
// context. Any transport or API failure is returned as an error; the
// caller treats it as "oracle unavailable" and falls back.
func (o *Oracle) SuggestSynonym(ctx context.Context, word, sentenceContext string) (string, error) {
	prompt := fmt.Sprintf(synonymPrompt, sentenceContext, word)

	reqBody := generateRequest{
		Model:  o.model,
		Prompt: prompt,
		Stream: false,
		Options: &options{
			NumPredict:  16,
			Temperature: 0.7,
		},
	}

	jsonBody, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(
		ctx,
		http.MethodPost,
		o.baseURL+"/api/generate",
		bytes.NewReader(jsonBody),
	)
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := o.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, err := io.ReadAll(resp.Body)
		if err != nil {
			return "", fmt.Errorf("ollama error (status %d): failed to read response", resp.StatusCode)
		}
		return "", fmt.Errorf("ollama error (status %d): %s", resp.StatusCode, string(body))
	}

	var genResp generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&genResp); err != nil {
		return "", fmt.Errorf("decode response: %w", err)
	}

	candidate := strings.TrimSpace(genResp.Response)
	candidate = strings.Trim(candidate, `."'`)
	if candidate == "" {
		return "", fmt.Errorf("ollama: empty substitute returned")
	}

	return candidate, nil
}

// ModelName returns the name of the model being used.
func (o *Oracle) ModelName() string {
	return o.model
}

// Ping validates the service is reachable by checking the /api/tags
// endpoint. This is a lightweight check that validates connectivity
// without running inference.
func (o *Oracle) Ping(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, o.baseURL+"/api/tags", http.NoBody)
	if err != nil {
		return fmt.Errorf("ollama: failed to create ping request: %w", err)
	}

	resp, err := o.client.Do(req)
	if err != nil {
		return fmt.Errorf("ollama: ping failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, err := io.ReadAll(resp.Body)
		if err != nil {
			return fmt.Errorf("ollama: API returned status %d (failed to read body: %w)", resp.StatusCode, err)
		}
		return fmt.Errorf("ollama: API returned status %d: %s", resp.StatusCode, string(body))
	}
	return nil
}

// Close releases resources.
func (o *Oracle) Close() error {
	// HTTP client doesn't need explicit cleanup
	return nil
}
