package transformers

import (
	"time"

	"github.com/custodia-labs/rephrase-cli/internal/core/ports/driven"
	"github.com/custodia-labs/rephrase-cli/internal/transformers/noise"
	"github.com/custodia-labs/rephrase-cli/internal/transformers/structure"
	"github.com/custodia-labs/rephrase-cli/internal/transformers/vocabulary"
)

// Deps are the shared collaborators the built-in transformers need.
// Oracle may be nil; the vocabulary stage then sticks to its static mapping.
type Deps struct {
	Segmenter driven.Segmenter
	Wordlists driven.WordlistProvider
	Oracle    driven.SynonymOracle
}

// RegisterDefaults registers all built-in transformers with the registry.
// Call this during application initialisation to enable standard stages.
func RegisterDefaults(r *Registry, deps Deps) {
	r.Register("structure", buildStructure(deps))
	r.Register("vocabulary", buildVocabulary(deps))
	r.Register("noise", buildNoise(deps))
}

// buildStructure creates the structure stage from generic config.
// Supported config keys:
//   - split_threshold (int): Words above which a sentence may split (default: 20)
//   - merge_threshold (int): Words below which a sentence may merge (default: 6)
func buildStructure(deps Deps) BuilderFunc {
	return func(cfg map[string]any) (driven.Transformer, error) {
		var opts []structure.Option
		if v := getIntFromConfig(cfg, "split_threshold"); v > 0 {
			opts = append(opts, structure.WithSplitThreshold(v))
		}
		if v := getIntFromConfig(cfg, "merge_threshold"); v > 0 {
			opts = append(opts, structure.WithMergeThreshold(v))
		}
		return structure.New(deps.Segmenter, opts...), nil
	}
}

// buildVocabulary creates the vocabulary stage from generic config.
// Supported config keys:
//   - oracle_timeout_seconds (int): Per-call oracle timeout (default: 10)
func buildVocabulary(deps Deps) BuilderFunc {
	return func(cfg map[string]any) (driven.Transformer, error) {
		var opts []vocabulary.Option
		if v := getIntFromConfig(cfg, "oracle_timeout_seconds"); v > 0 {
			opts = append(opts, vocabulary.WithOracleTimeout(time.Duration(v)*time.Second))
		}
		if deps.Oracle != nil {
			opts = append(opts, vocabulary.WithOracle(deps.Oracle))
		}
		return vocabulary.New(deps.Segmenter, deps.Wordlists, opts...), nil
	}
}

// buildNoise creates the noise stage from generic config.
// Supported config keys:
//   - repeat_window (int): Insertions before a transition phrase may repeat (default: 3)
func buildNoise(deps Deps) BuilderFunc {
	return func(cfg map[string]any) (driven.Transformer, error) {
		var opts []noise.Option
		if v := getIntFromConfig(cfg, "repeat_window"); v > 0 {
			opts = append(opts, noise.WithRepeatWindow(v))
		}
		return noise.New(deps.Segmenter, deps.Wordlists, opts...), nil
	}
}

// getIntFromConfig safely extracts an int from generic config map.
// Handles int, int64, and float64 types that may come from TOML/JSON parsing.
func getIntFromConfig(cfg map[string]any, key string) int {
	val, ok := cfg[key]
	if !ok {
		return 0
	}

	switch v := val.(type) {
	case int:
		return v
	case int64:
		return int(v)
	case float64:
		return int(v)
	default:
		return 0
	}
}
