package graphmodel_test

import (
	"testing"

	"github.com/arborcroft/dpgraph/graphmodel"
	"github.com/arborcroft/dpgraph/value"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGraph_AddNodeAndGet(t *testing.T) {
	g := graphmodel.NewGraph()
	c := graphmodel.NewComponent(graphmodel.VariantLiteral)
	id := g.AddNode(c)

	got, err := g.Get(id)
	require.NoError(t, err)
	assert.Same(t, c, got)
}

func TestGraph_GetUnknownID(t *testing.T) {
	g := graphmodel.NewGraph()
	_, err := g.Get(99)
	assert.ErrorIs(t, err, graphmodel.ErrNodeNotFound)
}

func TestGraph_AddNodeWithID_RejectsDuplicate(t *testing.T) {
	g := graphmodel.NewGraph()
	id := g.NextID()
	require.NoError(t, g.AddNodeWithID(id, graphmodel.NewComponent(graphmodel.VariantCount)))

	err := g.AddNodeWithID(id, graphmodel.NewComponent(graphmodel.VariantSum))
	assert.ErrorIs(t, err, graphmodel.ErrNodeExists)
}

func TestGraph_Sinks_ExcludesReferencedNodes(t *testing.T) {
	g := graphmodel.NewGraph()
	lit := g.AddNode(graphmodel.NewComponent(graphmodel.VariantLiteral))

	sum := graphmodel.NewComponent(graphmodel.VariantSum)
	sum.SetArg(value.StrKey("data"), lit)
	sumID := g.AddNode(sum)

	sinks := g.Sinks()
	require.Len(t, sinks, 1)
	assert.Equal(t, sumID, sinks[0])
}

func TestComponent_ArgOrderPreservesInsertion(t *testing.T) {
	c := graphmodel.NewComponent(graphmodel.VariantCovariance)
	c.SetArg(value.StrKey("right"), 2)
	c.SetArg(value.StrKey("left"), 1)

	order := c.ArgOrder()
	require.Len(t, order, 2)
	assert.Equal(t, value.StrKey("right"), order[0])
	assert.Equal(t, value.StrKey("left"), order[1])
}

func TestVariant_StringAndPredicates(t *testing.T) {
	assert.Equal(t, "DpMean", graphmodel.VariantDpMean.String())
	assert.True(t, graphmodel.VariantDpMean.IsDpComposite())
	assert.True(t, graphmodel.VariantLaplace.IsMechanism())
	assert.True(t, graphmodel.VariantSum.IsAggregator())
	assert.False(t, graphmodel.VariantSum.IsMechanism())
	assert.Equal(t, "Unknown", graphmodel.Variant(9999).String())
	assert.False(t, graphmodel.VariantUnknown.Valid())
}

func TestProperty_CloneDoesNotAliasSlices(t *testing.T) {
	p := &graphmodel.Property{Lower: []float64{0}, Upper: []float64{10}}
	q := p.Clone()
	q.Lower[0] = 99
	assert.Equal(t, 0.0, p.Lower[0])
}

func TestComponentExpansion_AddPreservesOrder(t *testing.T) {
	e := graphmodel.NewComponentExpansion()
	e.Add(5, graphmodel.NewComponent(graphmodel.VariantMean))
	e.Add(6, graphmodel.NewComponent(graphmodel.VariantLaplace))
	require.Equal(t, []uint32{5, 6}, e.NewNodeOrder)
}
