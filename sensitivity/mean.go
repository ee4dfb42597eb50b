package sensitivity

import "github.com/arborcroft/dpgraph/graphmodel"

// meanSensitivity: a mean over n records moves by at most GroupSize
// times the per-record range, divided by n (one record's worst-case
// swing is diluted by the denominator); n is taken from the
// aggregator's recorded InputNumRecords, clamped to at least 1 so an
// empty or unknown-count dataset never divides by zero.
func meanSensitivity(prov *graphmodel.AggregatorProvenance, neighboring Neighboring) (Sensitivity, error) {
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
		values[i] = g * recordRange(prov.InputLower, prov.InputUpper, i, neighboring) / n
	}
	return Sensitivity{Norm: NormL1, Values: values}, nil
}
