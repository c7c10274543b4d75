package mcp

import (
	"github.com/custodia-labs/rephrase-cli/internal/core/ports/driven"
	"github.com/custodia-labs/rephrase-cli/internal/core/ports/driving"
)

// Ports aggregates the port interfaces required by the MCP server.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Transform runs the rewrite pipeline.
	Transform driving.TransformService

	// History exposes past runs as resources. Optional.
	History driven.HistoryStore
}

// Validate ensures all required ports are set.
// Returns an error if any required port is nil.
func (p *Ports) Validate() error {
	if p.Transform == nil {
		return ErrMissingTransformService
	}
	// History is optional
	return nil
}
