package privacy

import (
	"fmt"
	"math"

	"github.com/arborcroft/dpgraph/graphmodel"
	"github.com/arborcroft/dpgraph/noise"
)

// PrivacyUsageToAccuracy returns the (1-alpha)-confidence accuracy a
// release with the given sensitivity and usage achieves under
// mechanism, i.e. the radius r such that P(|release - true| > r) <=
// alpha.
func PrivacyUsageToAccuracy(mechanism graphmodel.MechanismKind, sens, alpha float64, u Usage) (float64, error) {
	if !(alpha > 0 && alpha < 1) {
		return 0, ErrInvalidAlpha
	}
	if err := u.Validate(); err != nil {
		return 0, err
	}
	switch mechanism {
	case graphmodel.MechanismLaplace, graphmodel.MechanismSimpleGeometric, graphmodel.MechanismSnapping:
		scale := sens / u.Epsilon
		return scale * math.Log(1/alpha), nil
	case graphmodel.MechanismGaussian, graphmodel.MechanismAnalyticGaussian:
		stddev := sens * math.Sqrt(2*math.Log(1.25/u.Delta)) / u.Epsilon
		return stddev * math.Sqrt(2*math.Log(2/alpha)), nil
	default:
		return 0, fmt.Errorf("%w: %s", ErrUnsupportedMechanism, mechanism)
	}
}

// AccuracyToPrivacyUsage inverts PrivacyUsageToAccuracy: given a
// desired accuracy radius (at confidence 1-alpha) and a sensitivity,
// returns the epsilon (and, for Gaussian variants, the delta already
// baked into delta) that achieves it. For MechanismGaussian and
// MechanismAnalyticGaussian the caller-supplied delta is used as-is;
// for Snapping, epsilon is recovered by bisection through the same
// redefinition noise.RedefineEpsilon applies at sampling time, so the
// accuracy actually delivered (after clipping/rounding) matches what
// was asked for as closely as Snapping's granularity allows.
func AccuracyToPrivacyUsage(mechanism graphmodel.MechanismKind, sens, alpha, accuracy, delta, bound float64) (Usage, error) {
	if !(alpha > 0 && alpha < 1) {
		return Usage{}, ErrInvalidAlpha
	}
	if accuracy <= 0 {
		return Usage{}, ErrInvalidAccuracy
	}
	switch mechanism {
	case graphmodel.MechanismLaplace, graphmodel.MechanismSimpleGeometric:
		scale := accuracy / math.Log(1/alpha)
		return Usage{Epsilon: sens / scale}, nil

	case graphmodel.MechanismGaussian, graphmodel.MechanismAnalyticGaussian:
		if !(delta > 0 && delta < 1) {
			return Usage{}, fmt.Errorf("%w: gaussian accuracy conversion requires delta in (0, 1)", ErrInvalidUsage)
		}
		stddev := accuracy / math.Sqrt(2*math.Log(2/alpha))
		epsilon := sens * math.Sqrt(2*math.Log(1.25/delta)) / stddev
		return Usage{Epsilon: epsilon, Delta: delta}, nil

	case graphmodel.MechanismSnapping:
		return snappingAccuracyToUsage(sens, alpha, accuracy, bound)

	default:
		return Usage{}, fmt.Errorf("%w: %s", ErrUnsupportedMechanism, mechanism)
	}
}

// snappingAccuracyToUsage bisects for the epsilon whose Snapping-
// redefined scale delivers the requested accuracy, since Snapping's
// power-of-two rounding makes the epsilon<->accuracy relationship
// piecewise rather than a clean closed form.
func snappingAccuracyToUsage(sens, alpha, accuracy, bound float64) (Usage, error) {
	if bound <= 0 {
		return Usage{}, fmt.Errorf("%w: snapping accuracy conversion requires a positive bound", ErrInvalidUsage)
	}
	lo, hi := 1e-9, 10.0
	achieved := func(eps float64) float64 {
		p := noise.SnappingPrecision(eps)
		epsPrime := noise.RedefineEpsilon(eps, bound, p)
		scale := sens / epsPrime
		return scale * math.Log(1/alpha)
	}
	for i := 0; i < 100; i++ {
		mid := (lo + hi) / 2
		if achieved(mid) > accuracy {
			lo = mid
		} else {
			hi = mid
		}
	}
	return Usage{Epsilon: hi}, nil
}
