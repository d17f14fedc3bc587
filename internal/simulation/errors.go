package simulation

import "errors"

// Core failure kinds. All of them are deterministic given the same inputs;
// nothing in this package retries.
var (
	// ErrInsufficientHistory means a single run cannot complete within the
	// series. A run is never silently truncated: a shortened run would
	// understate its duration and corrupt the return distribution.
	ErrInsufficientHistory = errors.New("insufficient history to complete the run")

	// ErrNoValidStartingPoint means no run of the requested duration fits
	// anywhere in the series.
	ErrNoValidStartingPoint = errors.New("no valid starting point for the requested duration")

	// ErrEmptySample means summary statistics were requested for zero returns.
	// This indicates an upstream bug and is treated as fatal.
	ErrEmptySample = errors.New("empty return sample")

	// ErrInvalidConfig covers non-positive durations or amounts, empty grids
	// and out-of-range indices, rejected before any simulation runs.
	ErrInvalidConfig = errors.New("invalid simulation parameters")
)
