package propagate

import (
	"github.com/arborcroft/dpgraph/graphmodel"
)

// propagateAggregator derives the output Property for Count, Sum,
// Mean, Variance, Covariance, Quantile and Histogram nodes. Every
// aggregator reduces an unbounded-record input down to a small,
// fixed-size output (NumRecords=1 per group) and attaches an
// AggregatorProvenance so the sensitivity kernel (package sensitivity)
// can later derive a sensitivity without re-walking the graph.
func propagateAggregator(c *graphmodel.Component, inputs map[uint32]*graphmodel.Property) (*graphmodel.Property, error) {
	in, err := dataInput(c, inputs)
	if err != nil {
		return nil, err
	}
	if c.Variant != graphmodel.VariantCount {
		if err := requireBounds(in); err != nil {
			return nil, err
		}
	}

	prov := &graphmodel.AggregatorProvenance{
		Component:       *c,
		InputNature:     []graphmodel.Nature{in.Nature},
		InputLower:      append([]float64(nil), in.Lower...),
		InputUpper:      append([]float64(nil), in.Upper...),
		InputLowerInt:   append([]int64(nil), in.LowerInt...),
		InputUpperInt:   append([]int64(nil), in.UpperInt...),
		InputNumRecords: []int64{in.NumRecords},
		InputGroupSize:  in.GroupSize,
	}

	out := &graphmodel.Property{
		Nature:     graphmodel.NatureArray,
		NumRecords: 1,
		GroupSize:  in.GroupSize,
		Releasable: false,
		Aggregator: prov,
		DataType:   in.DataType,
	}

	switch c.Variant {
	case graphmodel.VariantCount:
		out.NumColumns = 1
		out.LowerInt = []int64{0}
		out.UpperInt = []int64{in.NumRecords}
		out.HasBounds = true

	case graphmodel.VariantHistogram:
		out.NumColumns = len(c.Params.Categories)
		if out.NumColumns == 0 {
			out.NumColumns = 1
		}
		out.LowerInt = make([]int64, out.NumColumns)
		out.UpperInt = make([]int64, out.NumColumns)
		for i := range out.UpperInt {
			out.UpperInt[i] = in.NumRecords
		}
		out.HasBounds = true

	case graphmodel.VariantSum:
		out.NumColumns = in.NumColumns
		out.Lower = make([]float64, len(in.Lower))
		out.Upper = make([]float64, len(in.Upper))
		for i := range in.Lower {
			out.Lower[i] = in.Lower[i] * float64(in.NumRecords)
			out.Upper[i] = in.Upper[i] * float64(in.NumRecords)
		}
		out.HasBounds = in.HasBounds

	case graphmodel.VariantMean:
		out.NumColumns = in.NumColumns
		out.Lower = append([]float64(nil), in.Lower...)
		out.Upper = append([]float64(nil), in.Upper...)
		out.HasBounds = in.HasBounds

	case graphmodel.VariantVariance:
		out.NumColumns = in.NumColumns
		out.Lower = make([]float64, len(in.Lower))
		out.Upper = make([]float64, len(in.Upper))
		for i := range in.Lower {
			out.Lower[i] = 0
			span := in.Upper[i] - in.Lower[i]
			out.Upper[i] = span * span / 4
		}
		out.HasBounds = in.HasBounds

	case graphmodel.VariantCovariance:
		out.NumColumns = 1
		if in.NumColumns >= 2 {
			spanA := in.Upper[0] - in.Lower[0]
			spanB := in.Upper[1] - in.Lower[1]
			out.Lower = []float64{-spanA * spanB / 4}
			out.Upper = []float64{spanA * spanB / 4}
			out.HasBounds = in.HasBounds
		}

	case graphmodel.VariantQuantile:
		out.NumColumns = in.NumColumns
		out.Lower = append([]float64(nil), in.Lower...)
		out.Upper = append([]float64(nil), in.Upper...)
		out.HasBounds = in.HasBounds
	}

	return out, nil
}
