package file

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/rephrase-cli/internal/core/domain"
)

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(t.TempDir())

	require.NoError(t, err)
	assert.Equal(t, 20, cfg.Transform.SplitThreshold)
	assert.Equal(t, 6, cfg.Transform.MergeThreshold)
	assert.Equal(t, 3, cfg.Transform.RepeatWindow)
	assert.InDelta(t, 0.5, cfg.Transform.DefaultIntensity, 1e-9)
	assert.Equal(t, "openai", cfg.Oracle.Provider)
	assert.Equal(t, 10, cfg.Oracle.TimeoutSeconds)
}

func TestLoad_ReadsFile(t *testing.T) {
	dir := t.TempDir()
	content := `
[oracle]
api_key = "sk-test"
model = "gpt-4o"

[transform]
split_threshold = 25
default_intensity = 0.8

[history]
disabled = true
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"), []byte(content), 0600))
	t.Setenv(EnvAPIKey, "")
	t.Setenv(EnvModel, "")

	cfg, err := Load(dir)

	require.NoError(t, err)
	assert.Equal(t, "sk-test", cfg.Oracle.APIKey)
	assert.Equal(t, "gpt-4o", cfg.Oracle.Model)
	assert.Equal(t, 25, cfg.Transform.SplitThreshold)
	assert.InDelta(t, 0.8, cfg.Transform.DefaultIntensity, 1e-9)
	assert.True(t, cfg.History.Disabled)
	// Unset values keep their defaults.
	assert.Equal(t, "openai", cfg.Oracle.Provider)
	assert.Equal(t, 6, cfg.Transform.MergeThreshold)
}

func TestLoad_MalformedFileFails(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"), []byte("not [valid"), 0600))

	_, err := Load(dir)
	assert.Error(t, err)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	content := `
[oracle]
api_key = "sk-from-file"
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"), []byte(content), 0600))

	t.Setenv(EnvAPIKey, "sk-from-env")
	t.Setenv(EnvModel, "gpt-4.1-mini")
	t.Setenv(EnvProvider, "anthropic")

	cfg, err := Load(dir)

	require.NoError(t, err)
	assert.Equal(t, "sk-from-env", cfg.Oracle.APIKey)
	assert.Equal(t, "gpt-4.1-mini", cfg.Oracle.Model)
	assert.Equal(t, "anthropic", cfg.Oracle.Provider)
}

func TestLoad_NormalisesOutOfRangeValues(t *testing.T) {
	dir := t.TempDir()
	content := `
[transform]
split_threshold = -5
default_intensity = 3.0
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"), []byte(content), 0600))

	cfg, err := Load(dir)

	require.NoError(t, err)
	assert.Equal(t, 20, cfg.Transform.SplitThreshold)
	assert.InDelta(t, 0.5, cfg.Transform.DefaultIntensity, 1e-9)
}

func TestSaveRoundTrip(t *testing.T) {
	dir := t.TempDir()
	t.Setenv(EnvAPIKey, "")

	cfg := Defaults()
	cfg.Oracle.APIKey = "sk-roundtrip"
	cfg.Transform.RepeatWindow = 5
	require.NoError(t, Save(dir, cfg))

	loaded, err := Load(dir)
	require.NoError(t, err)

	assert.Equal(t, "sk-roundtrip", loaded.Oracle.APIKey)
	assert.Equal(t, 5, loaded.Transform.RepeatWindow)
}

func TestOracleSettings(t *testing.T) {
	cfg := Defaults()
	cfg.Oracle.APIKey = "sk-test"
	cfg.Oracle.Model = "gpt-4o"

	settings := cfg.OracleSettings()

	assert.Equal(t, domain.OracleProviderOpenAI, settings.Provider)
	assert.Equal(t, "sk-test", settings.APIKey)
	assert.Equal(t, "gpt-4o", settings.Model)
	assert.Equal(t, 10, settings.TimeoutSeconds)
	assert.True(t, settings.IsConfigured())
}

func TestStageConfig(t *testing.T) {
	cfg := Defaults()

	structure := cfg.StageConfig("structure")
	assert.Equal(t, 20, structure["split_threshold"])
	assert.Equal(t, 6, structure["merge_threshold"])

	vocabulary := cfg.StageConfig("vocabulary")
	assert.Equal(t, 10, vocabulary["oracle_timeout_seconds"])

	noise := cfg.StageConfig("noise")
	assert.Equal(t, 3, noise["repeat_window"])

	assert.Nil(t, cfg.StageConfig("unknown"))
}
