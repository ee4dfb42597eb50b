package graphmodel

// Variant is the closed enum of component primitives. Adding a
// primitive means adding a value here plus its entries in the
// propagate, sensitivity, and privacy dispatch tables (propagate_property,
// expand_component, compute_sensitivity, get_privacy_usage, summarize);
// an unrecognized Variant is always ErrUnknownVariant, never ignored.
type Variant int

// The closed set of component variants.
const (
	VariantUnknown Variant = iota

	// Literal and elementary transforms.
	VariantLiteral
	VariantCast
	VariantClamp
	VariantImpute
	VariantResize
	VariantConstantScale
	VariantDivide
	VariantReshape
	VariantBin
	VariantModulo

	// Aggregators: reduce many records to few, and carry enough
	// provenance for a downstream mechanism to derive a sensitivity.
	VariantCount
	VariantHistogram
	VariantSum
	VariantMean
	VariantVariance
	VariantCovariance
	VariantQuantile

	// Structural.
	VariantUnion
	VariantPartition
	VariantMap
	VariantJoin

	// Mechanisms.
	VariantStabilityMechanism
	VariantLaplace
	VariantGaussian
	VariantAnalyticGaussian
	VariantSimpleGeometric
	VariantSnapping
	VariantExponential

	// DP composites: expand into {aggregator -> mechanism} subgraphs.
	VariantDpMean
	VariantDpCount
	VariantDpSum
	VariantDpVariance
	VariantDpCovariance
	VariantDpQuantile
	VariantDpHistogram
	VariantDpRawMoment

	// DpGumbelMedian is not expanded further; it emits a single DP
	// release directly (spec §4.D).
	VariantDpGumbelMedian

	variantSentinel // always last; used to validate Variant is in range
)

var variantNames = map[Variant]string{
	VariantLiteral:            "Literal",
	VariantCast:                "Cast",
	VariantClamp:               "Clamp",
	VariantImpute:              "Impute",
	VariantResize:              "Resize",
	VariantConstantScale:       "ConstantScale",
	VariantDivide:              "Divide",
	VariantReshape:             "Reshape",
	VariantBin:                 "Bin",
	VariantModulo:              "Modulo",
	VariantCount:               "Count",
	VariantHistogram:           "Histogram",
	VariantSum:                 "Sum",
	VariantMean:                "Mean",
	VariantVariance:            "Variance",
	VariantCovariance:          "Covariance",
	VariantQuantile:            "Quantile",
	VariantUnion:               "Union",
	VariantPartition:           "Partition",
	VariantMap:                 "Map",
	VariantJoin:                "Join",
	VariantStabilityMechanism:  "StabilityMechanism",
	VariantLaplace:             "Laplace",
	VariantGaussian:            "Gaussian",
	VariantAnalyticGaussian:    "AnalyticGaussian",
	VariantSimpleGeometric:     "SimpleGeometric",
	VariantSnapping:            "Snapping",
	VariantExponential:         "Exponential",
	VariantDpMean:              "DpMean",
	VariantDpCount:             "DpCount",
	VariantDpSum:               "DpSum",
	VariantDpVariance:          "DpVariance",
	VariantDpCovariance:        "DpCovariance",
	VariantDpQuantile:          "DpQuantile",
	VariantDpHistogram:         "DpHistogram",
	VariantDpRawMoment:         "DpRawMoment",
	VariantDpGumbelMedian:      "DpGumbelMedian",
}

// String renders the Variant's canonical name, or "Unknown" for
// anything outside the closed enum.
func (v Variant) String() string {
	if n, ok := variantNames[v]; ok {
		return n
	}
	return "Unknown"
}

var variantByName map[string]Variant

func init() {
	variantByName = make(map[string]Variant, len(variantNames))
	for v, name := range variantNames {
		variantByName[name] = v
	}
}

// ParseVariant looks up a Variant by its canonical String() name, for
// deserializing a graph description (e.g. the CLI's JSON graph
// format) back into the closed enum.
func ParseVariant(name string) (Variant, bool) {
	v, ok := variantByName[name]
	return v, ok
}

// Valid reports whether v is a recognized member of the closed enum
// (excluding VariantUnknown, which is never a legal node variant).
func (v Variant) Valid() bool {
	return v > VariantUnknown && v < variantSentinel
}

// IsMechanism reports whether v is one of the noise-injecting
// mechanism variants.
func (v Variant) IsMechanism() bool {
	switch v {
	case VariantStabilityMechanism, VariantLaplace, VariantGaussian,
		VariantAnalyticGaussian, VariantSimpleGeometric, VariantSnapping,
		VariantExponential:
		return true
	default:
		return false
	}
}

// IsAggregator reports whether v is one of the record-reducing
// aggregator variants whose output property carries aggregator
// provenance for sensitivity derivation.
func (v Variant) IsAggregator() bool {
	switch v {
	case VariantCount, VariantHistogram, VariantSum, VariantMean,
		VariantVariance, VariantCovariance, VariantQuantile:
		return true
	default:
		return false
	}
}

// IsDpComposite reports whether v is a DP convenience component that
// expands into an {aggregator -> mechanism} subgraph during
// propagation, per spec §4.D.
func (v Variant) IsDpComposite() bool {
	switch v {
	case VariantDpMean, VariantDpCount, VariantDpSum, VariantDpVariance,
		VariantDpCovariance, VariantDpQuantile, VariantDpHistogram,
		VariantDpRawMoment:
		return true
	default:
		return false
	}
}
