// Package engine is the facade a caller (the cmd/dpgraph CLI, or an
// embedding Go program) drives an analysis through. It wires together
// propagate (the property-propagation fixpoint), sensitivity and
// privacy (accounting), and report (the JSON contract) behind seven
// operations: ValidateAnalysis, ComputePrivacyUsage, GenerateReport,
// AccuracyToPrivacyUsage, PrivacyUsageToAccuracy, GetProperties and
// Release.
//
// Engine is an analysis engine, not a query executor: like
// validator-rust in the original implementation this spec is modeled
// on, it reasons about what an analysis graph would do and what it
// would cost, symbolically, without itself reducing every primitive
// over real data — Release resolves only the nodes whose values are
// already known at analysis time (VariantLiteral), carrying the
// composed privacy cost for the rest. Numeric execution against a
// real dataset, were it added, would live in a sibling package the
// way runtime-rust sits beside validator-rust in the original.
package engine
