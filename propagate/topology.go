package propagate

import (
	"context"

	"github.com/arborcroft/dpgraph/graphmodel"
)

// vertex coloring states, mirroring dfs.White/Gray/Black.
const (
	white = 0
	gray  = 1
	black = 2
)

// topoSorter is a uint32-keyed specialization of dfs's DFS-based
// topological sort: same vertex-coloring back-edge detection, adapted
// to walk a graphmodel.Graph's Args edges instead of core.Graph's
// adjacency list. Args edges point from a node to its inputs, so the
// plain post-order (inputs appended before their user) is already the
// dependency order and is returned without reversal.
type topoSorter struct {
	g     *graphmodel.Graph
	ctx   context.Context
	state map[uint32]int
	order []uint32
}

// TopologicalOrder returns g's node ids ordered so that every node
// appears after all nodes it names as arguments. Returns
// ErrCycleDetected if g is not a DAG, or ErrNeighborFetch if a node
// names an argument id absent from g.
func TopologicalOrder(ctx context.Context, g *graphmodel.Graph) ([]uint32, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	ids := g.NodeIDs()
	s := &topoSorter{
		g:     g,
		ctx:   ctx,
		state: make(map[uint32]int, len(ids)),
		order: make([]uint32, 0, len(ids)),
	}
	for _, id := range ids {
		if s.state[id] == white {
			if err := s.visit(id); err != nil {
				return nil, err
			}
		}
	}
	return s.order, nil
}

func (s *topoSorter) visit(id uint32) error {
	select {
	case <-s.ctx.Done():
		return s.ctx.Err()
	default:
	}
	if s.state[id] == gray {
		return ErrCycleDetected
	}
	if s.state[id] == black {
		return nil
	}
	s.state[id] = gray

	c, err := s.g.Get(id)
	if err != nil {
		return ErrNeighborFetch
	}
	for _, argID := range c.ArgOrder() {
		depID := c.Args[argID]
		if _, err := s.g.Get(depID); err != nil {
			return ErrNeighborFetch
		}
		if err := s.visit(depID); err != nil {
			return err
		}
	}

	s.state[id] = black
	s.order = append(s.order, id)
	return nil
}
