// Package domain defines the core business entities for Rephrase.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - TransformRequest: Text plus option flags and intensity
//   - TransformResult: Rewritten text with before/after metrics
//   - TextMetrics: Statistical snapshot of a piece of text
//   - HistoryEntry: A recorded transformation run
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
