package sensitivity

import "github.com/arborcroft/dpgraph/graphmodel"

// quantileSensitivity: a rank-based statistic's worst-case movement
// under one record's substitution is bounded by the full column
// range regardless of sample size — unlike Mean/Variance, a quantile
// does not average away a single outlier's influence. Computed for
// any mechanism placed over a Quantile aggregator; DpGumbelMedian
// does not call it.
func quantileSensitivity(prov *graphmodel.AggregatorProvenance, neighboring Neighboring) (Sensitivity, error) {
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
