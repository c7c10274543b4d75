// Package ai provides factory functions for creating synonym oracle
// adapters.
package ai

import (
	"context"
	"fmt"
	"time"

	"github.com/custodia-labs/rephrase-cli/internal/adapters/driven/llm/anthropic"
	"github.com/custodia-labs/rephrase-cli/internal/adapters/driven/llm/ollama"
	"github.com/custodia-labs/rephrase-cli/internal/adapters/driven/llm/openai"
	"github.com/custodia-labs/rephrase-cli/internal/core/domain"
	"github.com/custodia-labs/rephrase-cli/internal/core/ports/driven"
)

// pingTimeout is the maximum time to wait for connectivity validation.
const pingTimeout = 5 * time.Second

// CreateOracle creates the appropriate synonym oracle based on settings.
// Returns nil if no provider is configured; the pipeline then runs on
// its static wordlists alone.
func CreateOracle(settings *domain.OracleSettings) (driven.SynonymOracle, error) {
	if !settings.IsConfigured() {
		return nil, nil
	}

	switch settings.Provider {
	case domain.OracleProviderOllama:
		return createOllamaOracle(settings), nil

	case domain.OracleProviderOpenAI:
		return createOpenAIOracle(settings)

	case domain.OracleProviderAnthropic:
		return createAnthropicOracle(settings)

	default:
		return nil, fmt.Errorf("unsupported oracle provider: %s", settings.Provider)
	}
}

// ValidateOracleConfig validates oracle settings by creating an oracle
// and pinging it. This is intended for validating credentials when they
// are first configured.
func ValidateOracleConfig(settings *domain.OracleSettings) error {
	if !settings.IsConfigured() {
		return nil
	}

	svc, err := CreateOracle(settings)
	if err != nil {
		return err
	}
	if svc == nil {
		return nil
	}
	defer svc.Close()

	ctx, cancel := context.WithTimeout(context.Background(), pingTimeout)
	defer cancel()

	if err := svc.Ping(ctx); err != nil {
		return fmt.Errorf("%w: %w", domain.ErrOracleUnavailable, err)
	}
	return nil
}

// createOllamaOracle creates an Ollama oracle.
func createOllamaOracle(settings *domain.OracleSettings) driven.SynonymOracle {
	return ollama.New(ollama.Config{
		BaseURL: settings.BaseURL,
		Model:   settings.Model,
		Timeout: timeout(settings),
	})
}

// createOpenAIOracle creates an OpenAI oracle.
func createOpenAIOracle(settings *domain.OracleSettings) (driven.SynonymOracle, error) {
	return openai.New(openai.Config{
		APIKey:  settings.APIKey,
		BaseURL: settings.BaseURL,
		Model:   settings.Model,
		Timeout: timeout(settings),
	})
}

// createAnthropicOracle creates an Anthropic oracle.
func createAnthropicOracle(settings *domain.OracleSettings) (driven.SynonymOracle, error) {
	return anthropic.New(anthropic.Config{
		APIKey:  settings.APIKey,
		BaseURL: settings.BaseURL,
		Model:   settings.Model,
		Timeout: timeout(settings),
	})
}

// timeout converts the configured timeout, leaving zero for the
// adapter defaults when unset.
func timeout(settings *domain.OracleSettings) time.Duration {
	if settings.TimeoutSeconds <= 0 {
		return 0
	}
	return time.Duration(settings.TimeoutSeconds) * time.Second
}
