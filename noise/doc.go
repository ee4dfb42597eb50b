// Package noise implements the engine's cryptographically-seeded
// sampling primitives: unbiased bits, arbitrary-probability coins,
// uniform floats and integers, Laplace, Gaussian (and truncated
// Gaussian), censored and simple geometric noise, Gumbel(0,1) and the
// exponential-mechanism argmax, weighted subset sampling, and the
// Snapping mechanism (a floating-point-safe Laplace replacement).
//
// Every sampler draws from a single process-wide CSPRNG byte pool
// under an exclusive lock (source.go); callers never see partial
// reads or silently-reused randomness. Samplers that expose an
// enforceConstantTime parameter always exhaust their worst-case loop
// count when it is set, per the spec's constant-time mode (§5).
//
// No sampler panics: CSPRNG failures surface as a wrapped
// ErrSourceFailure, and out-of-domain parameters (p outside [0,1],
// a > b, non-positive scale) surface as their own sentinels.
package noise
