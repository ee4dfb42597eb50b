package sensitivity

import "github.com/arborcroft/dpgraph/graphmodel"

// sumSensitivity: each column's sensitivity is GroupSize times the
// per-record range, in whichever distance recordRange uses for the
// requested neighboring definition. This also serves the Sum
// aggregator that propagate's expandRawMoment emits for DpRawMoment;
// that aggregator carries the input's own bounds, and Params.Order is
// not applied to them here or anywhere else.
func sumSensitivity(prov *graphmodel.AggregatorProvenance, neighboring Neighboring) (Sensitivity, error) {
	if err := requireBounds(prov); err != nil {
		return Sensitivity{}, err
	}
	g := float64(groupSizeOf(prov))
	values := make([]float64, len(prov.InputLower))
	for i := range prov.InputLower {
		values[i] = g * recordRange(prov.InputLower, prov.InputUpper, i, neighboring)
	}
	return Sensitivity{Norm: NormL1, Values: values}, nil
}
