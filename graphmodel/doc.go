// Package graphmodel defines the computation-graph arena: Component
// (a typed primitive plus its ordered arguments), the closed Variant
// enum, Graph (an index-addressed, id-keyed node table), Property (the
// per-node symbolic record propagation derives), and ReleaseNode /
// ComponentExpansion, the bags that carry values and newly-introduced
// nodes back out of expansion and execution.
//
// Nodes reference each other by uint32 id through Graph's ordered
// node table, never by owning pointer (the "arena-and-index" pattern,
// grounded on core.Graph's adjacency-map approach but keyed by node id
// rather than string vertex id). This lets the property-propagation
// fixpoint (package propagate) mutate the graph freely while holding
// references only to ids, and lets a ComponentExpansion's new nodes be
// merged into the outer graph without renumbering anything that
// already exists.
package graphmodel
