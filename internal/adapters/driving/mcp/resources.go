package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/rephrase-cli/internal/core/domain"
)

const (
	// uriScheme is the custom URI scheme for Rephrase resources.
	uriScheme = "rephrase://"

	// historyResourceLimit caps how many entries the list resource returns.
	historyResourceLimit = 50
)

// registerResources registers all resource handlers with the MCP server.
func (s *Server) registerResources() {
	// Static resource for listing past runs.
	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "history",
		Name:        "history",
		Description: "Recent transformation runs",
		MIMEType:    "application/json",
	}, s.handleHistoryResource)

	// Template for a single run.
	s.server.AddResourceTemplate(&mcp.ResourceTemplate{
		URITemplate: uriScheme + "history/{entryId}",
		Name:        "history-entry",
		Description: "A single transformation run with full text and metrics",
		MIMEType:    "application/json",
	}, s.handleHistoryEntryResource)
}

// handleHistoryResource returns the recent runs as a JSON list.
func (s *Server) handleHistoryResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	if s.ports.History == nil {
		return jsonResource(req.Params.URI, "[]"), nil
	}

	entries, err := s.ports.History.List(ctx, historyResourceLimit)
	if err != nil {
		return nil, fmt.Errorf("listing history: %w", err)
	}

	// Build simplified entry list; full text comes from the entry resource.
	type entryInfo struct {
		ID        string   `json:"id"`
		CreatedAt string   `json:"created_at"`
		Intensity float64  `json:"intensity"`
		Applied   []string `json:"applied_transforms"`
	}

	infos := make([]entryInfo, len(entries))
	for i := range entries {
		infos[i] = entryInfo{
			ID:        entries[i].ID,
			CreatedAt: entries[i].CreatedAt.UTC().Format("2006-01-02T15:04:05Z"),
			Intensity: entries[i].Intensity,
			Applied:   entries[i].AppliedTransforms,
		}
	}

	data, err := json.MarshalIndent(infos, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling history: %w", err)
	}
	return jsonResource(req.Params.URI, string(data)), nil
}

// handleHistoryEntryResource returns one run in full.
func (s *Server) handleHistoryEntryResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	if s.ports.History == nil {
		return nil, domain.ErrHistoryUnavailable
	}

	entryID := strings.TrimPrefix(req.Params.URI, uriScheme+"history/")
	if entryID == "" || strings.Contains(entryID, "/") {
		return nil, fmt.Errorf("invalid history URI: %s", req.Params.URI)
	}

	entry, err := s.ports.History.Get(ctx, entryID)
	if err != nil {
		return nil, fmt.Errorf("loading history entry: %w", err)
	}

	data, err := json.MarshalIndent(entry, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling entry: %w", err)
	}
	return jsonResource(req.Params.URI, string(data)), nil
}

func jsonResource(uri, text string) *mcp.ReadResourceResult {
	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      uri,
			MIMEType: "application/json",
			Text:     text,
		}},
	}
}
