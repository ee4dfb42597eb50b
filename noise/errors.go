package noise

import "errors"

// Sentinel errors for the noise package.
var (
	// ErrSourceFailure indicates the underlying CSPRNG Source failed to
	// produce bytes; it always wraps the Source's own error via %w.
	ErrSourceFailure = errors.New("noise: csprng source failure")

	// ErrInvalidProbability indicates p was outside [0, 1].
	ErrInvalidProbability = errors.New("noise: probability out of range")

	// ErrInvalidRange indicates a uniform range with lo > hi.
	ErrInvalidRange = errors.New("noise: lo > hi")

	// ErrInvalidScale indicates a non-positive Laplace/geometric scale.
	ErrInvalidScale = errors.New("noise: scale must be positive")

	// ErrInvalidStddev indicates a non-positive Gaussian standard
	// deviation.
	ErrInvalidStddev = errors.New("noise: stddev must be positive")

	// ErrTruncationExhausted indicates rejection sampling for a
	// truncated Gaussian ran out of trials without landing in bounds.
	ErrTruncationExhausted = errors.New("noise: truncated gaussian rejection exhausted trial budget")

	// ErrEmptyScores indicates the exponential mechanism was asked to
	// select over zero candidates.
	ErrEmptyScores = errors.New("noise: exponential mechanism requires at least one candidate")

	// ErrInvalidSubsetSize indicates CreateSubset's k was negative or
	// larger than the population.
	ErrInvalidSubsetSize = errors.New("noise: subset size out of range")

	// ErrInvalidSensitivity indicates a non-positive sensitivity was
	// passed to Snap.
	ErrInvalidSensitivity = errors.New("noise: sensitivity must be positive")

	// ErrInvalidEpsilon indicates a non-positive epsilon was passed to
	// a mechanism.
	ErrInvalidEpsilon = errors.New("noise: epsilon must be positive")

	// ErrInvalidBound indicates a non-positive bound B was passed to
	// Snap.
	ErrInvalidBound = errors.New("noise: bound must be positive")

	// ErrEpsilonBelowSnappingFloor indicates the requested epsilon is
	// too small relative to the bound B for the Snapping mechanism's
	// redefined epsilon to stay positive.
	ErrEpsilonBelowSnappingFloor = errors.New("noise: epsilon below snapping's safe redefinition bound")
)
