package propagate

import (
	"fmt"

	"github.com/arborcroft/dpgraph/graphmodel"
)

// PropagateProperty derives c's outgoing Property from its already-
// propagated input Properties. This is the per-variant dispatch
// table; VariantUnknown and any value outside the closed enum are
// rejected with ErrUnknownVariant before reaching it.
func PropagateProperty(c *graphmodel.Component, inputs map[uint32]*graphmodel.Property) (*graphmodel.Property, error) {
	if !c.Variant.Valid() && c.Variant != graphmodel.VariantLiteral {
		return nil, fmt.Errorf("propagate: %w: %v", graphmodel.ErrUnknownVariant, c.Variant)
	}

	switch {
	case c.Variant == graphmodel.VariantLiteral:
		return propagateLiteral(c)
	case isElementaryTransform(c.Variant):
		return propagateTransform(c, inputs)
	case c.Variant.IsAggregator():
		return propagateAggregator(c, inputs)
	case isStructural(c.Variant):
		return propagateStructural(c, inputs)
	case c.Variant.IsMechanism():
		return propagateMechanism(c, inputs)
	case c.Variant == graphmodel.VariantDpGumbelMedian:
		return propagateDpGumbelMedian(c, inputs)
	default:
		return nil, fmt.Errorf("propagate: %w: %s has no propagation rule (composites must be expanded first)", graphmodel.ErrUnknownVariant, c.Variant)
	}
}

func isElementaryTransform(v graphmodel.Variant) bool {
	switch v {
	case graphmodel.VariantCast, graphmodel.VariantClamp, graphmodel.VariantImpute,
		graphmodel.VariantResize, graphmodel.VariantConstantScale, graphmodel.VariantDivide,
		graphmodel.VariantReshape, graphmodel.VariantBin, graphmodel.VariantModulo:
		return true
	default:
		return false
	}
}

func isStructural(v graphmodel.Variant) bool {
	switch v {
	case graphmodel.VariantUnion, graphmodel.VariantPartition, graphmodel.VariantMap, graphmodel.VariantJoin:
		return true
	default:
		return false
	}
}
