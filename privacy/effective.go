package privacy

import "math"

// GroupAmplificationFactor computes f(g) = (e^(g*eps) - 1) / (e^eps - 1),
// the pure-DP group-privacy amplification factor spec §4.F uses to
// convert between a mechanism's configured (effective) usage and the
// usage actually charged against the analysis-wide budget. f(1) is
// always 1, regardless of eps, since a group of one individual needs
// no amplification.
func GroupAmplificationFactor(groupSize int, eps float64) float64 {
	if groupSize <= 1 {
		return 1
	}
	if eps <= 0 {
		return float64(groupSize)
	}
	denom := math.Expm1(eps)
	if denom == 0 {
		return float64(groupSize)
	}
	return math.Expm1(float64(groupSize)*eps) / denom
}

// EffectiveToActual converts a mechanism's configured (effective)
// privacy usage into the usage actually charged to the analysis,
// folding in subsampling (sampleProportion), c-stability
// (cStability), and group-size amplification (groupSize), per spec
// §4.F: epsilon_actual = epsilon_effective / (sampleProportion *
// cStability * f(groupSize)); delta is scaled identically, matching
// the spec's "approximate-DP delta scales identically" note.
func EffectiveToActual(eff Usage, sampleProportion, cStability float64, groupSize int) (Usage, error) {
	if !(sampleProportion > 0 && sampleProportion <= 1) {
		return Usage{}, ErrInvalidUsage
	}
	if cStability < 1 {
		return Usage{}, ErrInvalidUsage
	}
	f := GroupAmplificationFactor(groupSize, eff.Epsilon)
	denom := sampleProportion * cStability * f
	return Usage{Epsilon: eff.Epsilon / denom, Delta: eff.Delta / denom}, nil
}
