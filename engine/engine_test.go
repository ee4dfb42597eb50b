package engine_test

import (
	"context"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arborcroft/dpgraph/engine"
	"github.com/arborcroft/dpgraph/graphmodel"
	"github.com/arborcroft/dpgraph/privacy"
	"github.com/arborcroft/dpgraph/value"
)

func TestEngine_ValidateAndReport(t *testing.T) {
	g := graphmodel.NewGraph()
	lit := g.AddNode(graphmodel.NewComponent(graphmodel.VariantLiteral))

	sum := graphmodel.NewComponent(graphmodel.VariantSum)
	sum.SetArg(value.StrKey("data"), lit)
	sumID := g.AddNode(sum)

	lap := graphmodel.NewComponent(graphmodel.VariantLaplace)
	lap.SetArg(value.StrKey("data"), sumID)
	lap.Params.Epsilon = 1.0
	lapID := g.AddNode(lap)

	known := map[uint32]*graphmodel.Property{
		lit: {Nature: graphmodel.NatureArray, NumRecords: 20, Lower: []float64{0}, Upper: []float64{10}, HasBounds: true, Releasable: true, GroupSize: 1},
	}

	reg := prometheus.NewRegistry()
	e := engine.New(privacy.DefaultDefinition(), zerolog.Nop(), engine.NewMetrics(reg))

	a, err := e.ValidateAnalysis(context.Background(), g, known)
	require.NoError(t, err)

	props, err := e.GetProperties(a)
	require.NoError(t, err)
	assert.True(t, props[lapID].Releasable)

	usages, total, err := e.ComputePrivacyUsage(a)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, total.Epsilon, 1e-9)
	assert.Contains(t, usages, lapID)

	rep, err := e.GenerateReport(a, usages, total)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, rep.TotalEpsilon, 1e-9)

	released, failed := e.Release(a, []uint32{lapID, 9999})
	require.Len(t, released, 1)
	assert.Contains(t, failed, uint32(9999))
}
