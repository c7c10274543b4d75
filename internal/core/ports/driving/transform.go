package driving

import (
	"context"

	"github.com/custodia-labs/rephrase-cli/internal/core/domain"
)

// TransformService is the inbound boundary of the rewriting core.
// Any outer surface (CLI, MCP, a future HTTP layer) talks to the
// pipeline through this interface and nothing else.
type TransformService interface {
	// Transform validates the request, runs the enabled transformers in
	// fixed order and returns the result with before/after metrics.
	// Synchronous from the caller's perspective; internally it may wait
	// on the synonym oracle up to its configured timeout.
	Transform(ctx context.Context, req domain.TransformRequest) (*domain.TransformResult, error)

	// Health is a cheap liveness probe. It only confirms configuration
	// presence and never invokes a generation call.
	Health(ctx context.Context) domain.Health
}
