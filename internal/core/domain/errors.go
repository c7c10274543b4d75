package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrInvalidInput indicates malformed or out-of-range input.
	// Requests failing validation are rejected before any transformer runs.
	ErrInvalidInput = errors.New("invalid input")

	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrOracleUnavailable indicates the synonym oracle is not configured,
	// timed out, or errored. This is recovered locally: the vocabulary
	// transformer falls back to its static mapping and never surfaces
	// this as a request failure.
	ErrOracleUnavailable = errors.New("oracle unavailable")

	// ErrHistoryUnavailable indicates the history store is not configured.
	// Recording and listing past transformations is disabled.
	ErrHistoryUnavailable = errors.New("history store unavailable")
)
