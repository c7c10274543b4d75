// Package cli implements the command-line surface of Rephrase.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/rephrase-cli/internal/adapters/driven/ai"
	"github.com/custodia-labs/rephrase-cli/internal/adapters/driven/config/file"
	"github.com/custodia-labs/rephrase-cli/internal/adapters/driven/storage/sqlite"
	"github.com/custodia-labs/rephrase-cli/internal/core/domain"
	"github.com/custodia-labs/rephrase-cli/internal/core/ports/driven"
	"github.com/custodia-labs/rephrase-cli/internal/core/ports/driving"
	"github.com/custodia-labs/rephrase-cli/internal/core/services"
	"github.com/custodia-labs/rephrase-cli/internal/logger"
	"github.com/custodia-labs/rephrase-cli/internal/nlp/metrics"
	"github.com/custodia-labs/rephrase-cli/internal/nlp/segment"
	"github.com/custodia-labs/rephrase-cli/internal/transformers"
	"github.com/custodia-labs/rephrase-cli/internal/wordlists"
)

var (
	version = "dev"

	verbose   bool
	configDir string

	// Wired by initServices; tests inject their own.
	appConfig         *file.Config
	transformService  driving.TransformService
	metricsEngine     driven.MetricsEngine
	transformPipeline driven.Pipeline
	synonymOracle     driven.SynonymOracle
	historyStore      driven.HistoryStore
	wordlistStore     *wordlists.Store
	wordlistDone      chan struct{}
)

var rootCmd = &cobra.Command{
	Use:   "rephrase",
	Short: "Rewrite machine-generated text so it reads naturally",
	Long: `Rephrase rewrites machine-generated Korean and English text to soften
the statistical patterns AI detectors key on: uniform sentence lengths,
repetitive connectors and templated paragraph structure.

Transforms run in a fixed order (structure, vocabulary, noise) and every
run reports before/after text metrics.`,
	SilenceUsage: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verbose)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&configDir, "config-dir", "", "configuration directory (default ~/.rephrase)")
}

// Execute wires the default services and runs the root command.
func Execute() error {
	if err := initServices(); err != nil {
		return err
	}
	defer shutdown()
	return rootCmd.Execute()
}

// SetVersion sets the version reported by the version command.
func SetVersion(v string) {
	version = v
}

// initServices builds the pipeline from configuration. It is a no-op
// when a service is already injected (tests do this).
func initServices() error {
	if transformService != nil {
		return nil
	}

	dir := configDir
	if dir == "" {
		var err error
		dir, err = file.DefaultDir()
		if err != nil {
			return fmt.Errorf("resolving config directory: %w", err)
		}
	}

	cfg, err := file.Load(dir)
	if err != nil {
		return fmt.Errorf("loading configuration: %w", err)
	}
	appConfig = cfg

	seg := segment.New()
	metricsEngine = metrics.New(seg)

	words, err := wordlists.NewStore(cfg.Wordlists.Path)
	if err != nil {
		return fmt.Errorf("loading wordlists: %w", err)
	}
	wordlistStore = words
	if cfg.Wordlists.Watch && cfg.Wordlists.Path != "" {
		wordlistDone = make(chan struct{})
		go func() {
			// Watch blocks until the done channel closes.
			if err := words.Watch(wordlistDone); err != nil {
				logger.Warn("Wordlist watching unavailable: %v", err)
			}
		}()
	}

	oracle, err := ai.CreateOracle(cfg.OracleSettings())
	if err != nil {
		return fmt.Errorf("configuring synonym oracle: %w", err)
	}
	if oracle != nil {
		synonymOracle = oracle
		logger.Debug("Synonym oracle enabled: %s (%s)", oracle.ModelName(), cfg.Oracle.Provider)
	} else {
		logger.Debug("No oracle configured; running on static wordlists")
	}

	registry := transformers.NewRegistry()
	transformers.RegisterDefaults(registry, transformers.Deps{
		Segmenter: seg,
		Wordlists: words,
		Oracle:    synonymOracle,
	})

	pipeline := transformers.NewPipeline()
	for _, name := range domain.PipelineOrder {
		stage, err := registry.Build(name, cfg.StageConfig(name))
		if err != nil {
			return fmt.Errorf("building %s stage: %w", name, err)
		}
		pipeline.Add(stage)
	}
	transformPipeline = pipeline

	transformService = services.NewTransformService(metricsEngine, pipeline, synonymOracle)

	if !cfg.History.Disabled {
		store, err := sqlite.NewHistoryStore("")
		if err != nil {
			// History is best-effort; the pipeline works without it.
			logger.Warn("History unavailable: %v", err)
		} else {
			historyStore = store
		}
	}

	return nil
}

//nolint:errcheck // Shutdown is best-effort
func shutdown() {
	if wordlistDone != nil {
		close(wordlistDone)
		wordlistDone = nil
	}
	if historyStore != nil {
		historyStore.Close()
	}
	if synonymOracle != nil {
		synonymOracle.Close()
	}
}
