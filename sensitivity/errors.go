package sensitivity

import "errors"

// Sentinel errors for the sensitivity package.
var (
	// ErrUnsupportedAggregator indicates a sensitivity was requested
	// for a Component.Variant this package has no derivation for.
	ErrUnsupportedAggregator = errors.New("sensitivity: unsupported aggregator variant")

	// ErrMissingBounds indicates the provenance's input lacks the
	// Lower/Upper bounds required to derive a finite sensitivity.
	ErrMissingBounds = errors.New("sensitivity: aggregator input is unbounded")

	// ErrIncompatibleNorm indicates a mechanism requested a sensitivity
	// in a norm the aggregator cannot produce (e.g. asking an L∞
	// sensitivity of a Covariance aggregator).
	ErrIncompatibleNorm = errors.New("sensitivity: incompatible norm requested")
)
