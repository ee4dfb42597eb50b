package engine

import "errors"

// Sentinel errors for the engine package.
var (
	// ErrSinkNotFound indicates Release was asked for a node id absent
	// from the most recent ValidateAnalysis result.
	ErrSinkNotFound = errors.New("engine: release target not found in analysis result")

	// ErrNotReleasable indicates Release was asked for a node whose
	// Property is not yet Releasable (it has not passed through a
	// mechanism, and is not a public Literal).
	ErrNotReleasable = errors.New("engine: node is not releasable")

	// ErrNoAnalysis indicates an operation requiring a prior
	// ValidateAnalysis call was invoked before one succeeded.
	ErrNoAnalysis = errors.New("engine: no validated analysis available")
)
