package graphmodel

import "github.com/arborcroft/dpgraph/value"

// ReleaseNode binds one graph node's id to the concrete Value it
// evaluated to, the epsilon/delta it consumed getting there, and the
// Property that was in force at release time. Release (an engine-level
// operation) returns one ReleaseNode per requested sink.
type ReleaseNode struct {
	NodeID   uint32
	Value    value.Value
	Property *Property

	// EpsilonConsumed/DeltaConsumed are the epsilon/delta spent producing
	// Value; zero for nodes that never touched protected data (e.g. a
	// pure Literal).
	EpsilonConsumed float64
	DeltaConsumed   float64
}

// ComponentExpansion is what expand_component returns when a single
// high-level node (most commonly a DP composite, e.g. VariantDpMean)
// needs to be rewritten into a small subgraph of lower-level
// primitives. NewNodes are pre-numbered (via Graph.NextID) so the
// caller can merge them into the outer graph with AddNodeWithID
// without any renumbering, and ReplacementID tells the caller which of
// NewNodes now stands in for the original node wherever it was
// referenced as an argument elsewhere in the graph.
type ComponentExpansion struct {
	NewNodes      map[uint32]*Component
	NewNodeOrder  []uint32
	ReplacementID uint32

	// Warnings carries non-fatal notices surfaced during expansion
	// (e.g. a requested ddof being clamped), propagated up into the
	// engine-level report alongside propagation warnings.
	Warnings []string
}

// NewComponentExpansion returns an empty expansion result.
func NewComponentExpansion() *ComponentExpansion {
	return &ComponentExpansion{NewNodes: make(map[uint32]*Component)}
}

// Add appends a pre-numbered node to the expansion, in insertion
// order, and returns the same id for chaining.
func (e *ComponentExpansion) Add(id uint32, c *Component) uint32 {
	e.NewNodes[id] = c
	e.NewNodeOrder = append(e.NewNodeOrder, id)
	return id
}
