package sensitivity

import "github.com/arborcroft/dpgraph/graphmodel"

// covarianceSensitivity bounds how far a single swapped record can
// move Cov(X, Y) given both columns' ranges: the product of the two
// per-record ranges, divided by n, amplified by GroupSize. Covariance
// requires at least two bounded input columns and uses the first two;
// fewer is ErrMissingBounds since there is no meaningful covariance
// otherwise.
func covarianceSensitivity(prov *graphmodel.AggregatorProvenance, neighboring Neighboring) (Sensitivity, error) {
	if len(prov.InputLower) < 2 || len(prov.InputUpper) < 2 {
		return Sensitivity{}, ErrMissingBounds
	}
	n := float64(1)
	if len(prov.InputNumRecords) > 0 && prov.InputNumRecords[0] > 0 {
		n = float64(prov.InputNumRecords[0])
	}
	g := float64(groupSizeOf(prov))
	rangeA := recordRange(prov.InputLower, prov.InputUpper, 0, neighboring)
	rangeB := recordRange(prov.InputLower, prov.InputUpper, 1, neighboring)
	return Sensitivity{Norm: NormL2, Values: []float64{g * rangeA * rangeB / n}}, nil
}
