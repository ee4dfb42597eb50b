// Package propagate drives the property-propagation fixpoint: given a
// graphmodel.Graph and the Properties already known for its source
// nodes, it visits every node in dependency order, expanding DP
// composites into their constituent subgraphs and deriving each
// node's outgoing Property from its inputs, until every reachable
// node has a Property or the graph is proven invalid.
//
// Traversal order is computed by topology.go, a uint32-keyed
// specialization of dfs.TopologicalSort's vertex-coloring algorithm
// (White/Gray/Black, back-edge cycle detection, post-order over the
// argument edges).
// Unlike a one-shot topological sort, the fixpoint loop (fixpoint.go)
// re-derives the order after every expansion pass, since expanding a
// DP composite can introduce nodes the original order never accounted
// for.
package propagate
