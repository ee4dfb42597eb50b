// Package privacy defines the privacy contract an analysis operates
// under (PrivacyDefinition), the per-release privacy cost it
// accumulates (Usage), the composition rules that turn many
// per-node costs into one analysis-wide total (package functions
// Sequential, Parallel and BatchPrivacyUsage), and the two-way
// conversion between a mechanism's accuracy guarantee and the epsilon
// it requires (AccuracyToPrivacyUsage, PrivacyUsageToAccuracy).
//
// Composition follows spec §7: releases that share no partition
// compose sequentially (costs add); releases living in sibling
// partitions of the same Partition node compose in parallel (the
// total cost is the worst single partition's cost, since the
// partitions' underlying data are disjoint and a single individual's
// participation, bounded by GroupSize, can only touch one of them).
package privacy
