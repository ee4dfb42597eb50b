// Package sensitivity derives a mechanism's sensitivity — how much a
// single individual's participation can change an aggregator's output
// — directly from the AggregatorProvenance a graphmodel.Property
// carries, without re-walking the computation graph. Each aggregator
// Variant has a closed-form sensitivity in one of the L1, L2 or L∞
// norms (spec §4.A/§7); Compute dispatches on the provenance's
// Component.Variant and returns the norm the result is expressed in
// alongside the per-column values. Package propagate's
// propagateMechanism calls Compute only to confirm that a sensitivity
// can be derived; it does not compare the returned norm with the
// mechanism's.
package sensitivity
