// Package transformers provides the text rewriting stages and the
// pipeline that chains them.
package transformers

import (
	"context"
	"fmt"
	"math/rand/v2"

	"github.com/custodia-labs/rephrase-cli/internal/core/domain"
	"github.com/custodia-labs/rephrase-cli/internal/core/ports/driven"
	"github.com/custodia-labs/rephrase-cli/internal/logger"
)

// Ensure Pipeline implements the interface.
var _ driven.Pipeline = (*Pipeline)(nil)

// Pipeline chains multiple Transformers and runs them in order.
type Pipeline struct {
	stages []driven.Transformer
}

// NewPipeline creates a pipeline with the given stages.
// Stages are executed in the order provided.
func NewPipeline(stages ...driven.Transformer) *Pipeline {
	return &Pipeline{stages: stages}
}

// Run feeds the text through the enabled stages in order.
// Each stage consumes the previous stage's output. The returned names
// are the stages that reported at least one change, in pipeline order;
// a stage that was requested but no-opped is not listed.
//
// Cancellation is checked at every stage boundary: an aborted request
// returns the context error and no partial text.
func (p *Pipeline) Run(ctx context.Context, text string, opts domain.TransformOptions, intensity float64, rng *rand.Rand) (string, []string, error) {
	current := text
	var applied []string

	for _, stage := range p.stages {
		if !opts.Enabled(stage.Name()) {
			continue
		}
		if err := ctx.Err(); err != nil {
			return "", nil, err
		}

		out, err := stage.Transform(ctx, current, intensity, rng)
		if err != nil {
			return "", nil, fmt.Errorf("transformer %s: %w", stage.Name(), err)
		}

		if out.Changed {
			applied = append(applied, stage.Name())
			logger.Debug("Stage %s changed the text", stage.Name())
		} else {
			logger.Debug("Stage %s no-opped", stage.Name())
		}
		current = out.Text
	}

	return current, applied, nil
}

// Add appends a stage to the pipeline.
func (p *Pipeline) Add(stage driven.Transformer) {
	p.stages = append(p.stages, stage)
}

// Len returns the number of stages in the pipeline.
func (p *Pipeline) Len() int {
	return len(p.stages)
}
