package propagate

import (
	"github.com/arborcroft/dpgraph/graphmodel"
	"github.com/arborcroft/dpgraph/value"
)

func propagateLiteral(c *graphmodel.Component) (*graphmodel.Property, error) {
	p := &graphmodel.Property{
		Nature:     graphmodel.NatureArray,
		Releasable: true, // a literal is public by construction
		GroupSize:  1,
	}
	if c.Literal != nil {
		if arr, err := c.Literal.AsArray(); err == nil {
			p.NumColumns, _ = arr.NumColumns()
			if n, err := arr.NumRecords(); err == nil {
				p.NumRecords = int64(n)
			}
			p.DataType = value.FromKind(arr.Kind())
		}
	}
	return p, nil
}

// propagateTransform handles the elementary, record-count-preserving
// transforms. None of them are aggregators: NumRecords, GroupSize and
// Releasable pass through from the input. Bound-affecting transforms
// (Cast, Clamp, ConstantScale, Divide, Modulo) recompute bounds; the
// rest (Bin, Impute, Resize, Reshape) pass bounds through unchanged.
func propagateTransform(c *graphmodel.Component, inputs map[uint32]*graphmodel.Property) (*graphmodel.Property, error) {
	in, err := dataInput(c, inputs)
	if err != nil {
		return nil, err
	}
	out := in.Clone()

	switch c.Variant {
	case graphmodel.VariantCast:
		if len(c.Params.Lower) > 0 {
			out.Lower = append([]float64(nil), c.Params.Lower...)
			out.Upper = append([]float64(nil), c.Params.Upper...)
			out.HasBounds = true
			out.DataType = value.DataTypeFloat
		} else if len(c.Params.LowerInt) > 0 {
			out.LowerInt = append([]int64(nil), c.Params.LowerInt...)
			out.UpperInt = append([]int64(nil), c.Params.UpperInt...)
			out.HasBounds = true
			out.DataType = value.DataTypeInt
		}

	case graphmodel.VariantClamp:
		if len(c.Params.Lower) > 0 {
			out.Lower = append([]float64(nil), c.Params.Lower...)
			out.Upper = append([]float64(nil), c.Params.Upper...)
			out.HasBounds = true
		}
		if len(c.Params.LowerInt) > 0 {
			out.LowerInt = append([]int64(nil), c.Params.LowerInt...)
			out.UpperInt = append([]int64(nil), c.Params.UpperInt...)
			out.HasBounds = true
		}

	case graphmodel.VariantConstantScale:
		scaleBoundsFloat(out, c.Params.Candidates)

	case graphmodel.VariantDivide:
		scaleBoundsFloat(out, c.Params.Candidates)

	case graphmodel.VariantBin:
		// Binning keeps the input's bounds and boundedness as they are;
		// the bin edges in Params.Candidates are not applied to them.
		out.HasBounds = in.HasBounds

	case graphmodel.VariantModulo:
		if len(c.Params.Upper) > 0 {
			out.Lower = []float64{0}
			out.Upper = []float64{c.Params.Upper[0]}
			out.HasBounds = true
		}

	case graphmodel.VariantImpute, graphmodel.VariantResize, graphmodel.VariantReshape:
		// bounds, data type, group size pass through unchanged.
	}

	return out, nil
}

// scaleBoundsFloat rescales each column's [lower, upper] pair by the
// corresponding factor in factors (or the last factor, if fewer
// factors than columns were given — a single constant applied
// uniformly). A negative factor flips the bound order.
func scaleBoundsFloat(p *graphmodel.Property, factors []float64) {
	if !p.HasBounds || len(factors) == 0 {
		return
	}
	for i := range p.Lower {
		f := factors[len(factors)-1]
		if i < len(factors) {
			f = factors[i]
		}
		lo, hi := p.Lower[i]*f, p.Upper[i]*f
		if lo > hi {
			lo, hi = hi, lo
		}
		p.Lower[i], p.Upper[i] = lo, hi
	}
}
