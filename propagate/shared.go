package propagate

import (
	"github.com/arborcroft/dpgraph/graphmodel"
	"github.com/arborcroft/dpgraph/value"
)

// dataArgKey is the conventional argument name every single-input
// component (elementary transforms, aggregators, mechanisms) expects
// its upstream data under.
var dataArgKey = value.StrKey("data")

// dataInput resolves c's "data" argument's Property, falling back to
// the first argument in insertion order for components (Join, Map)
// that name their primary input differently.
func dataInput(c *graphmodel.Component, inputs map[uint32]*graphmodel.Property) (*graphmodel.Property, error) {
	if id, ok := c.Arg(dataArgKey); ok {
		if p, ok := inputs[id]; ok {
			return p, nil
		}
		return nil, ErrMissingInputProperty
	}
	order := c.ArgOrder()
	if len(order) == 0 {
		return nil, ErrMissingInputProperty
	}
	id := c.Args[order[0]]
	p, ok := inputs[id]
	if !ok {
		return nil, ErrMissingInputProperty
	}
	return p, nil
}

func requireBounds(p *graphmodel.Property) error {
	if !p.HasBounds {
		return ErrUnboundedInput
	}
	return nil
}
