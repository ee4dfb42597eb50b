package propagate

import (
	"github.com/arborcroft/dpgraph/graphmodel"
)

// propagateStructural handles the four non-record-reducing structural
// variants: Union (concatenate or, with Flatten, merge releasable
// partitions into one array), Partition (split one dataset into
// per-key groups, each amplifying group size per spec §7), Map (apply
// a sub-graph per partition), and Join (combine two dataframes on a
// shared key).
func propagateStructural(c *graphmodel.Component, inputs map[uint32]*graphmodel.Property) (*graphmodel.Property, error) {
	switch c.Variant {
	case graphmodel.VariantPartition:
		return propagatePartition(c, inputs)
	case graphmodel.VariantUnion:
		return propagateUnion(c, inputs)
	case graphmodel.VariantMap:
		return propagateMap(c, inputs)
	case graphmodel.VariantJoin:
		return propagateJoin(c, inputs)
	default:
		return nil, ErrMissingInputProperty
	}
}

func propagatePartition(c *graphmodel.Component, inputs map[uint32]*graphmodel.Property) (*graphmodel.Property, error) {
	in, err := dataInput(c, inputs)
	if err != nil {
		return nil, err
	}
	out := in.Clone()
	out.Nature = graphmodel.NaturePartitions
	if c.Params.NumPartitions > 0 {
		out.GroupSize = in.GroupSize * c.Params.NumPartitions
	}
	return out, nil
}

func propagateUnion(c *graphmodel.Component, inputs map[uint32]*graphmodel.Property) (*graphmodel.Property, error) {
	var sumRecords int64
	allReleasable := true
	var template *graphmodel.Property
	for _, p := range inputs {
		sumRecords += p.NumRecords
		if !p.Releasable {
			allReleasable = false
		}
		if template == nil {
			template = p
		}
	}
	if c.Params.Flatten && !allReleasable {
		return nil, ErrNonReleasableUnion
	}
	out := &graphmodel.Property{Nature: graphmodel.NatureArray, NumRecords: sumRecords, Releasable: allReleasable, GroupSize: 1}
	if template != nil {
		out.DataType = template.DataType
		out.NumColumns = template.NumColumns
		out.Lower = append([]float64(nil), template.Lower...)
		out.Upper = append([]float64(nil), template.Upper...)
		out.HasBounds = template.HasBounds
		out.GroupSize = template.GroupSize
	}
	return out, nil
}

func propagateMap(c *graphmodel.Component, inputs map[uint32]*graphmodel.Property) (*graphmodel.Property, error) {
	in, err := dataInput(c, inputs)
	if err != nil {
		return nil, err
	}
	out := in.Clone()
	out.Nature = graphmodel.NatureDataframe
	return out, nil
}

func propagateJoin(c *graphmodel.Component, inputs map[uint32]*graphmodel.Property) (*graphmodel.Property, error) {
	var maxRecords int64
	allReleasable := true
	var cols int
	for _, p := range inputs {
		if p.NumRecords > maxRecords {
			maxRecords = p.NumRecords
		}
		cols += p.NumColumns
		if !p.Releasable {
			allReleasable = false
		}
	}
	return &graphmodel.Property{
		Nature:     graphmodel.NatureDataframe,
		NumRecords: maxRecords,
		NumColumns: cols,
		Releasable: allReleasable,
		GroupSize:  1,
	}, nil
}
