package propagate

import (
	"fmt"

	"github.com/arborcroft/dpgraph/graphmodel"
	"github.com/arborcroft/dpgraph/sensitivity"
)

// propagateMechanism derives the Property for a Laplace, Gaussian,
// AnalyticGaussian, SimpleGeometric, Snapping or Exponential node. It
// requires Params.Epsilon > 0 (and, for the two Gaussian variants,
// Params.Delta in (0, 1)), validates that a sensitivity can actually
// be derived from the input's aggregator provenance, and marks the
// output Releasable. The AggregatorProvenance is carried forward onto
// the output Property (rather than dropped once "spent") so that
// package privacy can read epsilon/delta/sensitivity straight off the
// release node without re-walking the graph to find the aggregator
// that fed it.
func propagateMechanism(c *graphmodel.Component, inputs map[uint32]*graphmodel.Property) (*graphmodel.Property, error) {
	if c.Params.Epsilon <= 0 {
		return nil, fmt.Errorf("propagate: node requires epsilon > 0")
	}
	switch c.Variant {
	case graphmodel.VariantGaussian, graphmodel.VariantAnalyticGaussian:
		if !(c.Params.Delta > 0 && c.Params.Delta < 1) {
			return nil, fmt.Errorf("propagate: %s requires delta in (0, 1)", c.Variant)
		}
	}

	in, err := dataInput(c, inputs)
	if err != nil {
		return nil, err
	}

	out := in.Clone()
	out.Releasable = true
	out.GroupSize = 1

	if in.Aggregator == nil {
		// Exponential/Gumbel over a caller-supplied candidate set
		// (spec §4.D) rather than over an aggregator's numeric output;
		// nothing further to validate here.
		return out, nil
	}

	neighboring := sensitivity.Substitute
	if _, err := sensitivity.Compute(in.Aggregator, neighboring); err != nil {
		return nil, fmt.Errorf("propagate: deriving sensitivity for %s: %w", c.Variant, err)
	}

	if c.Variant == graphmodel.VariantSnapping && len(c.Params.Upper) > 0 {
		bound := c.Params.Upper[0]
		for i := range out.Lower {
			if out.Upper[i] > bound {
				out.Upper[i] = bound
			}
			if out.Lower[i] < -bound {
				out.Lower[i] = -bound
			}
		}
	}

	return out, nil
}

// propagateDpGumbelMedian derives the release Property directly for
// the one DP composite that is never expanded into a subgraph (spec
// §4.D). It checks epsilon, a non-empty Params.Candidates and bounded
// input, and returns a single-record, releasable Property bounded by
// the input's first column; the report-noisy-max selection itself is
// not performed here.
func propagateDpGumbelMedian(c *graphmodel.Component, inputs map[uint32]*graphmodel.Property) (*graphmodel.Property, error) {
	if c.Params.Epsilon <= 0 {
		return nil, fmt.Errorf("propagate: DpGumbelMedian requires epsilon > 0")
	}
	if len(c.Params.Candidates) == 0 {
		return nil, fmt.Errorf("propagate: DpGumbelMedian requires a non-empty candidate set")
	}
	in, err := dataInput(c, inputs)
	if err != nil {
		return nil, err
	}
	if err := requireBounds(in); err != nil {
		return nil, err
	}

	out := &graphmodel.Property{
		Nature:     graphmodel.NatureArray,
		NumRecords: 1,
		NumColumns: 1,
		DataType:   in.DataType,
		Releasable: true,
		GroupSize:  1,
		Lower:      []float64{in.Lower[0]},
		Upper:      []float64{in.Upper[0]},
		HasBounds:  true,
	}
	return out, nil
}
