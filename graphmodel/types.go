package graphmodel

import (
	"sort"
	"sync"

	"github.com/arborcroft/dpgraph/value"
)

// MechanismKind names the noise mechanism a Laplace/Gaussian/... node
// or a DP composite's synthesized mechanism node should use.
type MechanismKind int

const (
	MechanismUnspecified MechanismKind = iota
	MechanismLaplace
	MechanismGaussian
	MechanismAnalyticGaussian
	MechanismSimpleGeometric
	MechanismSnapping
	MechanismExponential
)

func (m MechanismKind) String() string {
	switch m {
	case MechanismLaplace:
		return "Laplace"
	case MechanismGaussian:
		return "Gaussian"
	case MechanismAnalyticGaussian:
		return "AnalyticGaussian"
	case MechanismSimpleGeometric:
		return "SimpleGeometric"
	case MechanismSnapping:
		return "Snapping"
	case MechanismExponential:
		return "Exponential"
	default:
		return "Unspecified"
	}
}

// Params is the closed bag of scalar/slice configuration a Component
// may carry alongside its node arguments. Not every field applies to
// every Variant; expand/propagate dispatch reads only the fields its
// own Variant defines and leaves the rest zero.
type Params struct {
	Epsilon             float64
	Delta               float64
	Mechanism           MechanismKind
	Ddof                int
	K                   int
	Alpha               []float64
	Candidates          []float64
	Flatten             bool
	CensorRows          bool
	NumPartitions       int
	Categories          []value.Scalar
	By                  value.IndexKey
	Names               []value.IndexKey
	Lower               []float64
	Upper               []float64
	LowerInt            []int64
	UpperInt            []int64
	GroupSize           int
	EnforceConstantTime bool
	MaxTrials           int
	Order               int // raw moment order, for VariantDpRawMoment
}

// Component is one node of the computation graph: a typed primitive,
// its ordered named arguments (each a reference to a producing node's
// id), and the Params configuring its behavior.
type Component struct {
	Variant Variant
	Args    map[value.IndexKey]uint32
	argKeys []value.IndexKey

	// Omit marks this node as omitted in the report (report.Build keeps
	// the node and sets its Omitted field); it does not change
	// propagation, per spec §4's "omit" flag on intermediate
	// bookkeeping nodes.
	Omit bool

	// Submission is an opaque ordinal assigned by the caller (e.g. the
	// position of the originating analysis statement); it has no
	// semantic effect on propagation and exists purely for report
	// traceability.
	Submission uint32

	// Literal holds the node's constant value when Variant ==
	// VariantLiteral; nil otherwise.
	Literal value.Value

	Params Params
}

// NewComponent builds a Component with an empty, order-preserving
// argument map.
func NewComponent(v Variant) *Component {
	return &Component{Variant: v, Args: make(map[value.IndexKey]uint32)}
}

// SetArg records a named argument, preserving first-insertion order
// for ArgOrder.
func (c *Component) SetArg(name value.IndexKey, nodeID uint32) {
	if _, exists := c.Args[name]; !exists {
		c.argKeys = append(c.argKeys, name)
	}
	c.Args[name] = nodeID
}

// ArgOrder returns argument names in the order they were first set.
func (c *Component) ArgOrder() []value.IndexKey {
	out := make([]value.IndexKey, len(c.argKeys))
	copy(out, c.argKeys)
	return out
}

// Arg looks up a named argument's producing node id.
func (c *Component) Arg(name value.IndexKey) (uint32, bool) {
	id, ok := c.Args[name]
	return id, ok
}

// Graph is the id-addressed node arena. Nodes never hold owning
// pointers to each other; every edge is a uint32 id looked up through
// the Graph's table, so the propagation fixpoint (package propagate)
// can mutate Params or splice in expansion subgraphs without
// invalidating any other node's references.
type Graph struct {
	mu     sync.Mutex
	nextID uint32
	nodes  map[uint32]*Component
	order  []uint32 // insertion order, for deterministic iteration
}

// NewGraph returns an empty Graph.
func NewGraph() *Graph {
	return &Graph{nodes: make(map[uint32]*Component)}
}

// AddNode inserts c under a freshly allocated id and returns it.
func (g *Graph) AddNode(c *Component) uint32 {
	g.mu.Lock()
	defer g.mu.Unlock()
	id := g.nextID
	g.nextID++
	g.nodes[id] = c
	g.order = append(g.order, id)
	return id
}

// AddNodeWithID inserts c under an explicit id, failing if the id is
// already occupied (used when merging a ComponentExpansion's nodes,
// which are pre-numbered by the caller, back into the outer graph).
func (g *Graph) AddNodeWithID(id uint32, c *Component) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	if _, exists := g.nodes[id]; exists {
		return ErrNodeExists
	}
	g.nodes[id] = c
	g.order = append(g.order, id)
	if id >= g.nextID {
		g.nextID = id + 1
	}
	return nil
}

// NextID reserves and returns the next id the Graph would allocate,
// without inserting a node. Used by expand_component to pre-number a
// ComponentExpansion's new nodes before they are merged in.
func (g *Graph) NextID() uint32 {
	g.mu.Lock()
	defer g.mu.Unlock()
	id := g.nextID
	g.nextID++
	return id
}

// Get returns the Component stored under id.
func (g *Graph) Get(id uint32) (*Component, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	c, ok := g.nodes[id]
	if !ok {
		return nil, ErrNodeNotFound
	}
	return c, nil
}

// Remove deletes the node at id. Callers are responsible for not
// leaving dangling references to it in other nodes' Args.
func (g *Graph) Remove(id uint32) {
	g.mu.Lock()
	defer g.mu.Unlock()
	delete(g.nodes, id)
	for i, oid := range g.order {
		if oid == id {
			g.order = append(g.order[:i], g.order[i+1:]...)
			break
		}
	}
}

// Len returns the number of nodes currently in the graph.
func (g *Graph) Len() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return len(g.nodes)
}

// NodeIDs returns all node ids in insertion order.
func (g *Graph) NodeIDs() []uint32 {
	g.mu.Lock()
	defer g.mu.Unlock()
	out := make([]uint32, len(g.order))
	copy(out, g.order)
	return out
}

// Sinks returns, in ascending id order, every node id that is not
// referenced as an argument by any other node — the natural release
// targets of the graph.
func (g *Graph) Sinks() []uint32 {
	g.mu.Lock()
	defer g.mu.Unlock()
	referenced := make(map[uint32]bool, len(g.nodes))
	for _, c := range g.nodes {
		for _, id := range c.Args {
			referenced[id] = true
		}
	}
	var sinks []uint32
	for id := range g.nodes {
		if !referenced[id] {
			sinks = append(sinks, id)
		}
	}
	sort.Slice(sinks, func(i, j int) bool { return sinks[i] < sinks[j] })
	return sinks
}
