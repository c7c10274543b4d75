package driven

import (
	"context"
	"math/rand/v2"

	"github.com/custodia-labs/rephrase-cli/internal/core/domain"
)

// TransformOutput is the result of one transformer stage.
type TransformOutput struct {
	// Text is the rewritten text. Equals the input when the stage no-opped.
	Text string

	// Changed reports whether the stage made at least one edit.
	// Callers use this to distinguish "requested" from "applied":
	// a transformer may legitimately no-op on text too short to
	// meaningfully rework.
	Changed bool
}

// Transformer is a single text rewriting stage.
// Transformers are chained in a pipeline in fixed order
// (structure, vocabulary, noise).
type Transformer interface {
	// Name returns the transform name for logging and reporting.
	Name() string

	// Transform rewrites text with the given intensity in [0, 1].
	// Intensity 0 is always a no-op. The rng is injected per request
	// so that fixed seeds give reproducible output in tests.
	Transform(ctx context.Context, text string, intensity float64, rng *rand.Rand) (TransformOutput, error)
}

// Pipeline chains multiple Transformers.
type Pipeline interface {
	// Run applies the enabled transformers in fixed order, feeding each
	// stage the previous stage's output. It returns the final text and
	// the names of the stages that reported a change, in pipeline order.
	Run(ctx context.Context, text string, opts domain.TransformOptions, intensity float64, rng *rand.Rand) (string, []string, error)
}
