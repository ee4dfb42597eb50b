package sensitivity

import "github.com/arborcroft/dpgraph/graphmodel"

// varianceSensitivity uses the standard bound for a single-pass
// variance estimator: swapping one record in an n-record bounded
// sample can move the variance by at most range^2/n, scaled by the
// group-size amplification for the underlying record count.
func varianceSensitivity(prov *graphmodel.AggregatorProvenance, neighboring Neighboring) (Sensitivity, error) {
	if err := requireBounds(prov); err != nil {
		return Sensitivity{}, err
	}
	n := float64(1)
	if len(prov.InputNumRecords) > 0 && prov.InputNumRecords[0] > 0 {
		n = float64(prov.InputNumRecords[0])
	}
	g := float64(groupSizeOf(prov))
	values := make([]float64, len(prov.InputLower))
	for i := range prov.InputLower {
		r := recordRange(prov.InputLower, prov.InputUpper, i, neighboring)
		values[i] = g * r * r / n
	}
	return Sensitivity{Norm: NormL2, Values: values}, nil
}
