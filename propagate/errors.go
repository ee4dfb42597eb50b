package propagate

import "errors"

// Sentinel errors for the propagate package.
var (
	// ErrCycleDetected indicates the graph is not a DAG.
	ErrCycleDetected = errors.New("propagate: cycle detected in computation graph")

	// ErrNeighborFetch indicates a node's declared argument could not be
	// resolved to an existing node while building the dependency order.
	ErrNeighborFetch = errors.New("propagate: failed to resolve node argument")

	// ErrMissingInputProperty indicates a node was visited before one of
	// its arguments had a Property, which should be unreachable given a
	// valid topological order; it signals an internal ordering bug.
	ErrMissingInputProperty = errors.New("propagate: input node has no property yet")

	// ErrUnboundedInput indicates an aggregator or mechanism received an
	// input Property lacking the bounds it requires to derive a
	// sensitivity (spec §4.A/§7).
	ErrUnboundedInput = errors.New("propagate: input property is unbounded")

	// ErrNonReleasableUnion indicates Union(flatten=true) was applied to
	// at least one non-releasable input partition.
	ErrNonReleasableUnion = errors.New("propagate: union flatten requires releasable inputs")

	// ErrDynamicFailure marks a node whose propagation failed in dynamic
	// mode; the fixpoint records a warning and continues with downstream
	// nodes treated as failed rather than aborting, per spec §6's
	// dynamic-vs-static failure propagation modes.
	ErrDynamicFailure = errors.New("propagate: node failed under dynamic failure mode")
)
