// Package mcp provides an MCP (Model Context Protocol) server adapter for Rephrase.
// It lets AI assistants like Claude rewrite text through the local transform pipeline.
package mcp

import "errors"

// ErrMissingTransformService is returned when the transform service is not provided.
var ErrMissingTransformService = errors.New("mcp: transform service is required")
