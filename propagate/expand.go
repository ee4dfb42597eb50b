package propagate

import (
	"fmt"

	"github.com/arborcroft/dpgraph/graphmodel"
)

// ExpandComponent rewrites a single DP composite node into its
// constituent {aggregator -> mechanism} subgraph, per spec §4.D. The
// returned ComponentExpansion's ReplacementID node stands in for id in
// every other node's existing arguments; callers merge it via
// spliceExpansion. ExpandComponent is a no-op-returning-error for any
// Variant outside the closed composite set — propagate's caller only
// calls it when Variant.IsDpComposite() is true.
func ExpandComponent(g *graphmodel.Graph, id uint32, c *graphmodel.Component, known map[uint32]*graphmodel.Property) (*graphmodel.ComponentExpansion, error) {
	switch c.Variant {
	case graphmodel.VariantDpMean:
		return expandAggregateMechanism(g, c, graphmodel.VariantMean)
	case graphmodel.VariantDpCount:
		return expandAggregateMechanism(g, c, graphmodel.VariantCount)
	case graphmodel.VariantDpSum:
		return expandAggregateMechanism(g, c, graphmodel.VariantSum)
	case graphmodel.VariantDpVariance:
		return expandAggregateMechanism(g, c, graphmodel.VariantVariance)
	case graphmodel.VariantDpCovariance:
		return expandAggregateMechanism(g, c, graphmodel.VariantCovariance)
	case graphmodel.VariantDpQuantile:
		return expandAggregateMechanism(g, c, graphmodel.VariantQuantile)
	case graphmodel.VariantDpHistogram:
		return expandAggregateMechanism(g, c, graphmodel.VariantHistogram)
	case graphmodel.VariantDpRawMoment:
		return expandRawMoment(g, c)
	default:
		return nil, fmt.Errorf("propagate: %w: %s is not a DP composite", graphmodel.ErrUnknownVariant, c.Variant)
	}
}

// mechanismVariant maps a Params.Mechanism selection onto the
// concrete mechanism Variant to synthesize; MechanismUnspecified
// defaults to Laplace, the textbook baseline mechanism, matching
// spec §4.D's default.
func mechanismVariant(m graphmodel.MechanismKind) graphmodel.Variant {
	switch m {
	case graphmodel.MechanismGaussian:
		return graphmodel.VariantGaussian
	case graphmodel.MechanismAnalyticGaussian:
		return graphmodel.VariantAnalyticGaussian
	case graphmodel.MechanismSimpleGeometric:
		return graphmodel.VariantSimpleGeometric
	case graphmodel.MechanismSnapping:
		return graphmodel.VariantSnapping
	case graphmodel.MechanismExponential:
		return graphmodel.VariantExponential
	default:
		return graphmodel.VariantLaplace
	}
}

// expandAggregateMechanism builds the standard two-node {aggregator,
// mechanism} expansion shared by every DP composite except
// DpRawMoment: an aggregator node reusing the composite's arguments
// and aggregation-relevant Params, feeding a mechanism node configured
// from the composite's privacy Params.
func expandAggregateMechanism(g *graphmodel.Graph, c *graphmodel.Component, aggVariant graphmodel.Variant) (*graphmodel.ComponentExpansion, error) {
	exp := graphmodel.NewComponentExpansion()

	agg := graphmodel.NewComponent(aggVariant)
	for _, name := range c.ArgOrder() {
		agg.SetArg(name, c.Args[name])
	}
	agg.Params = c.Params
	agg.Submission = c.Submission
	aggID := g.NextID()
	exp.Add(aggID, agg)

	mech := graphmodel.NewComponent(mechanismVariant(c.Params.Mechanism))
	mech.Params = c.Params
	mech.Submission = c.Submission
	mech.SetArg(dataArgKey, aggID)
	mechID := g.NextID()
	exp.Add(mechID, mech)

	exp.ReplacementID = mechID
	return exp, nil
}

// expandRawMoment builds the {aggregator=Sum, mechanism} expansion for
// VariantDpRawMoment, a supplemented composite (not in the distilled
// spec). The expansion is the same as DpSum's: no power transform is
// inserted, Params.Order is not read, and the aggregator's sensitivity
// is the plain bounded-sum sensitivity of the input's bounds.
func expandRawMoment(g *graphmodel.Graph, c *graphmodel.Component) (*graphmodel.ComponentExpansion, error) {
	return expandAggregateMechanism(g, c, graphmodel.VariantSum)
}
