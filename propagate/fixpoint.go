package propagate

import (
	"context"
	"fmt"

	"github.com/arborcroft/dpgraph/graphmodel"
)

// FailureMode controls what happens when a single node's property
// derivation fails mid-fixpoint.
type FailureMode int

const (
	// FailStatic aborts the whole run on the first error, per spec
	// §6's static mode: a single bad node invalidates the analysis.
	FailStatic FailureMode = iota

	// FailDynamic records the error as a warning, marks the node (and
	// everything downstream of it) unreleasable, and keeps evaluating
	// the rest of the graph.
	FailDynamic
)

// Result is what Propagate returns: a Property per successfully
// evaluated node, plus accumulated warnings and the final node order
// used (useful for callers that want to re-run privacy accounting in
// the same order).
type Result struct {
	Properties map[uint32]*graphmodel.Property
	Order      []uint32
	Warnings   []string
	Failed     map[uint32]error
}

// Propagate runs the property-propagation fixpoint over g, starting
// from the given known Properties (normally the source/literal
// nodes). It repeatedly computes a topological order, expanding any
// DP composite it encounters into its constituent subgraph via
// ExpandComponent and splicing the new nodes into g before continuing,
// until a pass produces no further expansions, then derives a
// Property for every remaining node via PropagateProperty.
func Propagate(ctx context.Context, g *graphmodel.Graph, known map[uint32]*graphmodel.Property, mode FailureMode) (*Result, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	res := &Result{
		Properties: make(map[uint32]*graphmodel.Property, len(known)),
		Failed:     make(map[uint32]error),
	}
	for id, p := range known {
		res.Properties[id] = p
	}

	// Expansion pass: repeat until no node in the current topological
	// order is still an un-expanded DP composite. The expansions in
	// expand.go emit only aggregator and mechanism nodes, so the pass
	// after the first expansion finds nothing left to expand; the loop
	// re-checks the order anyway, so an expansion that emitted further
	// composites would have them expanded in turn.
	for {
		order, err := TopologicalOrder(ctx, g)
		if err != nil {
			return nil, err
		}
		expandedAny := false
		for _, id := range order {
			c, err := g.Get(id)
			if err != nil {
				return nil, fmt.Errorf("propagate: %w", err)
			}
			if !c.Variant.IsDpComposite() {
				continue
			}
			exp, err := ExpandComponent(g, id, c, res.Properties)
			if err != nil {
				if mode == FailStatic {
					return nil, fmt.Errorf("propagate: expanding node %d: %w", id, err)
				}
				res.Failed[id] = err
				res.Warnings = append(res.Warnings, fmt.Sprintf("node %d: expansion failed: %v", id, err))
				continue
			}
			if err := spliceExpansion(g, id, exp); err != nil {
				return nil, err
			}
			res.Warnings = append(res.Warnings, exp.Warnings...)
			expandedAny = true
		}
		if !expandedAny {
			res.Order = order
			break
		}
	}

	for _, id := range res.Order {
		if _, ok := res.Properties[id]; ok {
			continue
		}
		if _, failed := res.Failed[id]; failed {
			continue
		}
		c, err := g.Get(id)
		if err != nil {
			return nil, fmt.Errorf("propagate: %w", err)
		}

		inputs, missing := gatherInputs(c, res.Properties)
		if missing != 0 {
			if anyFailed(c, res.Failed) {
				res.Failed[id] = ErrDynamicFailure
				res.Warnings = append(res.Warnings, fmt.Sprintf("node %d: skipped, upstream failure", id))
				continue
			}
			return nil, fmt.Errorf("propagate: node %d: %w", id, ErrMissingInputProperty)
		}

		prop, err := PropagateProperty(c, inputs)
		if err != nil {
			if mode == FailStatic {
				return nil, fmt.Errorf("propagate: node %d: %w", id, err)
			}
			res.Failed[id] = err
			res.Warnings = append(res.Warnings, fmt.Sprintf("node %d: %v", id, err))
			continue
		}
		res.Properties[id] = prop
	}

	return res, nil
}

func gatherInputs(c *graphmodel.Component, known map[uint32]*graphmodel.Property) (map[uint32]*graphmodel.Property, int) {
	inputs := make(map[uint32]*graphmodel.Property, len(c.Args))
	missing := 0
	for _, id := range c.Args {
		p, ok := known[id]
		if !ok {
			missing++
			continue
		}
		inputs[id] = p
	}
	return inputs, missing
}

func anyFailed(c *graphmodel.Component, failed map[uint32]error) bool {
	for _, id := range c.Args {
		if _, ok := failed[id]; ok {
			return true
		}
	}
	return false
}

// spliceExpansion merges exp's pre-numbered nodes into g, reusing
// originalID for exp's ReplacementID component so every other node's
// existing Args (which still point at originalID) resolve correctly
// without rewriting a single one of them.
func spliceExpansion(g *graphmodel.Graph, originalID uint32, exp *graphmodel.ComponentExpansion) error {
	g.Remove(originalID)
	for _, id := range exp.NewNodeOrder {
		if id == exp.ReplacementID {
			continue
		}
		if err := g.AddNodeWithID(id, exp.NewNodes[id]); err != nil {
			return fmt.Errorf("propagate: splicing expansion of node %d: %w", originalID, err)
		}
	}
	replacement, ok := exp.NewNodes[exp.ReplacementID]
	if !ok {
		return fmt.Errorf("propagate: expansion of node %d has no replacement node", originalID)
	}
	if err := g.AddNodeWithID(originalID, replacement); err != nil {
		return fmt.Errorf("propagate: replacing node %d: %w", originalID, err)
	}
	return nil
}
