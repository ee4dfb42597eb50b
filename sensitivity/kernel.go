package sensitivity

import (
	"fmt"
	"math"

	"github.com/arborcroft/dpgraph/graphmodel"
)

// Compute derives prov's sensitivity under the given neighboring
// definition. The norm returned depends only on prov's Variant, never
// on the caller: a mechanism that needs a different norm must convert
// or reject, via ErrIncompatibleNorm, rather than asking Compute for
// one it cannot produce.
func Compute(prov *graphmodel.AggregatorProvenance, neighboring Neighboring) (Sensitivity, error) {
	if prov == nil {
		return Sensitivity{}, ErrMissingBounds
	}
	switch prov.Component.Variant {
	case graphmodel.VariantCount:
		return countSensitivity(prov), nil
	case graphmodel.VariantHistogram:
		return histogramSensitivity(prov), nil
	case graphmodel.VariantSum:
		return sumSensitivity(prov, neighboring)
	case graphmodel.VariantMean:
		return meanSensitivity(prov, neighboring)
	case graphmodel.VariantVariance:
		return varianceSensitivity(prov, neighboring)
	case graphmodel.VariantCovariance:
		return covarianceSensitivity(prov, neighboring)
	case graphmodel.VariantQuantile:
		return quantileSensitivity(prov, neighboring)
	default:
		return Sensitivity{}, fmt.Errorf("%w: %s", ErrUnsupportedAggregator, prov.Component.Variant)
	}
}

func recordRange(lower, upper []float64, i int, neighboring Neighboring) float64 {
	if neighboring == Substitute {
		return upper[i] - lower[i]
	}
	return math.Max(math.Abs(lower[i]), math.Abs(upper[i]))
}

func requireBounds(prov *graphmodel.AggregatorProvenance) error {
	if len(prov.InputLower) == 0 && len(prov.InputLowerInt) == 0 {
		return ErrMissingBounds
	}
	return nil
}
