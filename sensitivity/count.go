package sensitivity

import "github.com/arborcroft/dpgraph/graphmodel"

// countSensitivity: one individual's participation (bounded by
// GroupSize records) changes a count by at most GroupSize, regardless
// of neighboring definition — adding/removing or substituting a
// record each move the count by at most one per affected row.
func countSensitivity(prov *graphmodel.AggregatorProvenance) Sensitivity {
	g := groupSizeOf(prov)
	return Sensitivity{Norm: NormL1, Values: []float64{float64(g)}}
}

// histogramSensitivity: a single individual's records can move at
// most GroupSize counts from one bin to another, so the L1
// sensitivity across all bins together is 2*GroupSize (one bin's
// count goes down, another's goes up) while any single bin moves by
// at most GroupSize.
func histogramSensitivity(prov *graphmodel.AggregatorProvenance) Sensitivity {
	g := groupSizeOf(prov)
	n := prov.Component.Params.NumPartitions
	if n == 0 {
		n = len(prov.Component.Params.Categories)
	}
	if n == 0 {
		n = 1
	}
	values := make([]float64, n)
	for i := range values {
		values[i] = 2 * float64(g)
	}
	return Sensitivity{Norm: NormL1, Values: values}
}

func groupSizeOf(prov *graphmodel.AggregatorProvenance) int {
	if prov.InputGroupSize > 0 {
		return prov.InputGroupSize
	}
	return 1
}
