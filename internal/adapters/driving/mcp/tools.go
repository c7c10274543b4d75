package mcp

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/rephrase-cli/internal/core/domain"
)

// TransformInput is the input schema for the transform tool.
type TransformInput struct {
	Text       string   `json:"text" jsonschema:"the text to rewrite, 1-10000 characters"`
	Structure  bool     `json:"structure,omitempty" jsonschema:"split, merge and reorder sentences"`
	Vocabulary bool     `json:"vocabulary,omitempty" jsonschema:"vary connectors and substitute synonyms"`
	Noise      bool     `json:"noise,omitempty" jsonschema:"perturb sentence lengths and insert transitions"`
	Intensity  *float64 `json:"intensity,omitempty" jsonschema:"transform intensity between 0.0 and 1.0 (default 0.5)"`
}

// TransformOutput is the output schema for the transform tool.
type TransformOutput struct {
	Original          string               `json:"original"`
	Transformed       string               `json:"transformed"`
	Metrics           domain.MetricsReport `json:"metrics"`
	AppliedTransforms []string             `json:"applied_transforms"`
}

// HealthOutput is the output schema for the health tool.
type HealthOutput struct {
	Status          string `json:"status"`
	OracleReachable bool   `json:"oracleReachable"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "transform",
		Description: "Rewrite machine-generated text so it reads naturally",
	}, s.handleTransform)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "health",
		Description: "Report whether the transform pipeline and synonym oracle are ready",
	}, s.handleHealth)
}

// handleTransform handles the transform tool invocation.
func (s *Server) handleTransform(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input TransformInput,
) (*mcp.CallToolResult, TransformOutput, error) {
	// An omitted intensity defaults to 0.5; an explicit 0 stays 0 and
	// yields the documented no-op.
	intensity := 0.5
	if input.Intensity != nil {
		intensity = *input.Intensity
	}

	req := domain.TransformRequest{
		Text: input.Text,
		Options: domain.TransformOptions{
			Structure:  input.Structure,
			Vocabulary: input.Vocabulary,
			Noise:      input.Noise,
		},
		Intensity: intensity,
	}

	result, err := s.ports.Transform.Transform(ctx, req)
	if err != nil {
		return nil, TransformOutput{}, err
	}

	output := TransformOutput{
		Original:          result.Original,
		Transformed:       result.Transformed,
		Metrics:           result.Metrics,
		AppliedTransforms: result.AppliedTransforms,
	}

	return nil, output, nil
}

// handleHealth handles the health tool invocation.
func (s *Server) handleHealth(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	_ struct{},
) (*mcp.CallToolResult, HealthOutput, error) {
	health := s.ports.Transform.Health(ctx)

	return nil, HealthOutput{
		Status:          "ok",
		OracleReachable: health.OracleReachable,
	}, nil
}
