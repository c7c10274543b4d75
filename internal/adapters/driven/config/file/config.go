// Package file provides TOML-based application configuration.
// Configuration lives in ~/.rephrase/config.toml; the oracle settings
// can be overridden from the environment so the key never has to be
// written to disk.
package file

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"

	"github.com/custodia-labs/rephrase-cli/internal/core/domain"
)

// Env variables overriding the [oracle] section.
const (
	EnvProvider = "REPHRASE_PROVIDER"
	EnvAPIKey   = "REPHRASE_API_KEY"
	EnvModel    = "REPHRASE_MODEL"
	EnvBaseURL  = "REPHRASE_BASE_URL"
)

// Config is the application configuration.
type Config struct {
	Oracle    OracleConfig    `toml:"oracle"`
	Transform TransformConfig `toml:"transform"`
	Wordlists WordlistsConfig `toml:"wordlists"`
	History   HistoryConfig   `toml:"history"`
}

// OracleConfig configures the synonym oracle. The provider selects the
// backend (openai, anthropic or ollama). An empty APIKey disables the
// hosted providers; the pipeline then runs on its static wordlists
// alone.
type OracleConfig struct {
	Provider       string `toml:"provider"`
	APIKey         string `toml:"api_key"`
	BaseURL        string `toml:"base_url"`
	Model          string `toml:"model"`
	TimeoutSeconds int    `toml:"timeout_seconds"`
}

// TransformConfig tunes the pipeline stages.
type TransformConfig struct {
	// SplitThreshold is the word count above which a sentence may split.
	SplitThreshold int `toml:"split_threshold"`

	// MergeThreshold is the word count below which a sentence may merge.
	MergeThreshold int `toml:"merge_threshold"`

	// RepeatWindow is how many insertions must pass before a transition
	// phrase may repeat.
	RepeatWindow int `toml:"repeat_window"`

	// DefaultIntensity applies when the caller does not pass one.
	DefaultIntensity float64 `toml:"default_intensity"`
}

// WordlistsConfig points at an optional TOML override for the built-in
// word pools.
type WordlistsConfig struct {
	Path  string `toml:"path"`
	Watch bool   `toml:"watch"`
}

// HistoryConfig controls local run history.
type HistoryConfig struct {
	Disabled bool `toml:"disabled"`
}

// Defaults returns the built-in configuration.
func Defaults() *Config {
	return &Config{
		Oracle: OracleConfig{
			Provider:       string(domain.OracleProviderOpenAI),
			TimeoutSeconds: 10,
		},
		Transform: TransformConfig{
			SplitThreshold:   20,
			MergeThreshold:   6,
			RepeatWindow:     3,
			DefaultIntensity: 0.5,
		},
	}
}

// DefaultDir returns the configuration directory, ~/.rephrase.
func DefaultDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".rephrase"), nil
}

// Load reads configuration from dir/config.toml, applying defaults for
// anything unset and environment overrides for the oracle section.
// A missing file is not an error; defaults apply.
func Load(dir string) (*Config, error) {
	cfg := Defaults()

	if dir != "" {
		data, err := os.ReadFile(filepath.Join(dir, "config.toml"))
		switch {
		case errors.Is(err, os.ErrNotExist):
			// Defaults apply.
		case err != nil:
			return nil, err
		default:
			if err := toml.Unmarshal(data, cfg); err != nil {
				return nil, err
			}
		}
	}

	applyEnv(cfg)
	normalise(cfg)
	return cfg, nil
}

// Save writes the configuration to dir/config.toml.
func Save(dir string, cfg *Config) error {
	if err := os.MkdirAll(dir, 0700); err != nil {
		return err
	}
	data, err := toml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(dir, "config.toml"), data, 0600)
}

// OracleSettings converts the oracle section into the domain settings
// the oracle factory consumes.
func (c *Config) OracleSettings() *domain.OracleSettings {
	return &domain.OracleSettings{
		Provider:       domain.OracleProvider(c.Oracle.Provider),
		APIKey:         c.Oracle.APIKey,
		BaseURL:        c.Oracle.BaseURL,
		Model:          c.Oracle.Model,
		TimeoutSeconds: c.Oracle.TimeoutSeconds,
	}
}

// StageConfig builds the generic config map for a named pipeline stage,
// in the shape the transformer registry consumes.
func (c *Config) StageConfig(name string) map[string]any {
	switch name {
	case "structure":
		return map[string]any{
			"split_threshold": c.Transform.SplitThreshold,
			"merge_threshold": c.Transform.MergeThreshold,
		}
	case "vocabulary":
		return map[string]any{
			"oracle_timeout_seconds": c.Oracle.TimeoutSeconds,
		}
	case "noise":
		return map[string]any{
			"repeat_window": c.Transform.RepeatWindow,
		}
	default:
		return nil
	}
}

func applyEnv(cfg *Config) {
	if v := os.Getenv(EnvProvider); v != "" {
		cfg.Oracle.Provider = v
	}
	if v := os.Getenv(EnvAPIKey); v != "" {
		cfg.Oracle.APIKey = v
	}
	if v := os.Getenv(EnvModel); v != "" {
		cfg.Oracle.Model = v
	}
	if v := os.Getenv(EnvBaseURL); v != "" {
		cfg.Oracle.BaseURL = v
	}
}

// normalise pulls out-of-range values back to the defaults.
func normalise(cfg *Config) {
	def := Defaults()
	if cfg.Oracle.Provider == "" {
		cfg.Oracle.Provider = def.Oracle.Provider
	}
	if cfg.Transform.SplitThreshold <= 0 {
		cfg.Transform.SplitThreshold = def.Transform.SplitThreshold
	}
	if cfg.Transform.MergeThreshold <= 0 {
		cfg.Transform.MergeThreshold = def.Transform.MergeThreshold
	}
	if cfg.Transform.RepeatWindow <= 0 {
		cfg.Transform.RepeatWindow = def.Transform.RepeatWindow
	}
	if cfg.Transform.DefaultIntensity < 0 || cfg.Transform.DefaultIntensity > 1 {
		cfg.Transform.DefaultIntensity = def.Transform.DefaultIntensity
	}
	if cfg.Oracle.TimeoutSeconds <= 0 {
		cfg.Oracle.TimeoutSeconds = def.Oracle.TimeoutSeconds
	}
}
