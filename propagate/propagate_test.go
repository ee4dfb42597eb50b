package propagate_test

import (
	"context"
	"testing"

	"github.com/arborcroft/dpgraph/graphmodel"
	"github.com/arborcroft/dpgraph/propagate"
	"github.com/arborcroft/dpgraph/value"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func literalProperty(lower, upper float64, n int64) *graphmodel.Property {
	return &graphmodel.Property{
		Nature:     graphmodel.NatureArray,
		NumRecords: n,
		NumColumns: 1,
		Lower:      []float64{lower},
		Upper:      []float64{upper},
		HasBounds:  true,
		Releasable: true,
		GroupSize:  1,
		DataType:   value.DataTypeFloat,
	}
}

func TestTopologicalOrder_DetectsCycle(t *testing.T) {
	g := graphmodel.NewGraph()
	a := g.NextID()
	b := g.NextID()
	ac := graphmodel.NewComponent(graphmodel.VariantSum)
	ac.SetArg(value.StrKey("data"), b)
	require.NoError(t, g.AddNodeWithID(a, ac))
	bc := graphmodel.NewComponent(graphmodel.VariantSum)
	bc.SetArg(value.StrKey("data"), a)
	require.NoError(t, g.AddNodeWithID(b, bc))

	_, err := propagate.TopologicalOrder(context.Background(), g)
	assert.ErrorIs(t, err, propagate.ErrCycleDetected)
}

func TestPropagate_SumThenLaplace(t *testing.T) {
	g := graphmodel.NewGraph()
	lit := g.AddNode(graphmodel.NewComponent(graphmodel.VariantLiteral))

	sum := graphmodel.NewComponent(graphmodel.VariantSum)
	sum.SetArg(value.StrKey("data"), lit)
	sumID := g.AddNode(sum)

	lap := graphmodel.NewComponent(graphmodel.VariantLaplace)
	lap.SetArg(value.StrKey("data"), sumID)
	lap.Params.Epsilon = 1.0
	lapID := g.AddNode(lap)

	known := map[uint32]*graphmodel.Property{lit: literalProperty(0, 10, 100)}
	res, err := propagate.Propagate(context.Background(), g, known, propagate.FailStatic)
	require.NoError(t, err)

	out := res.Properties[lapID]
	require.NotNil(t, out)
	assert.True(t, out.Releasable)
}

func TestPropagate_DpMeanExpandsAndReleases(t *testing.T) {
	g := graphmodel.NewGraph()
	lit := g.AddNode(graphmodel.NewComponent(graphmodel.VariantLiteral))

	dpMean := graphmodel.NewComponent(graphmodel.VariantDpMean)
	dpMean.SetArg(value.StrKey("data"), lit)
	dpMean.Params.Epsilon = 0.5
	dpMean.Params.Mechanism = graphmodel.MechanismLaplace
	dpMeanID := g.AddNode(dpMean)

	known := map[uint32]*graphmodel.Property{lit: literalProperty(0, 10, 50)}
	res, err := propagate.Propagate(context.Background(), g, known, propagate.FailStatic)
	require.NoError(t, err)

	out := res.Properties[dpMeanID]
	require.NotNil(t, out)
	assert.True(t, out.Releasable)
}

func TestPropagate_DynamicModeRecordsFailureAndContinues(t *testing.T) {
	g := graphmodel.NewGraph()
	lit := g.AddNode(graphmodel.NewComponent(graphmodel.VariantLiteral))

	// Sum with no bounds on input should fail aggregator propagation.
	sum := graphmodel.NewComponent(graphmodel.VariantSum)
	sum.SetArg(value.StrKey("data"), lit)
	sumID := g.AddNode(sum)

	unboundedLit := &graphmodel.Property{Nature: graphmodel.NatureArray, NumRecords: 10, GroupSize: 1}
	known := map[uint32]*graphmodel.Property{lit: unboundedLit}

	res, err := propagate.Propagate(context.Background(), g, known, propagate.FailDynamic)
	require.NoError(t, err)
	_, failed := res.Failed[sumID]
	assert.True(t, failed)
	assert.NotEmpty(t, res.Warnings)
}

func TestPropagate_StaticModeAbortsOnFailure(t *testing.T) {
	g := graphmodel.NewGraph()
	lit := g.AddNode(graphmodel.NewComponent(graphmodel.VariantLiteral))

	sum := graphmodel.NewComponent(graphmodel.VariantSum)
	sum.SetArg(value.StrKey("data"), lit)
	g.AddNode(sum)

	unboundedLit := &graphmodel.Property{Nature: graphmodel.NatureArray, NumRecords: 10, GroupSize: 1}
	known := map[uint32]*graphmodel.Property{lit: unboundedLit}

	_, err := propagate.Propagate(context.Background(), g, known, propagate.FailStatic)
	assert.Error(t, err)
}
