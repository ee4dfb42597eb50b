package sensitivity_test

import (
	"testing"

	"github.com/arborcroft/dpgraph/graphmodel"
	"github.com/arborcroft/dpgraph/sensitivity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func provenance(variant graphmodel.Variant, lower, upper []float64, n int64, groupSize int) *graphmodel.AggregatorProvenance {
	return &graphmodel.AggregatorProvenance{
		Component:       graphmodel.Component{Variant: variant},
		InputLower:      lower,
		InputUpper:      upper,
		InputNumRecords: []int64{n},
		InputGroupSize:  groupSize,
	}
}

func TestCompute_Count_IsGroupSizeUnderAnyNeighboring(t *testing.T) {
	prov := provenance(graphmodel.VariantCount, nil, nil, 100, 3)
	s, err := sensitivity.Compute(prov, sensitivity.AddRemove)
	require.NoError(t, err)
	assert.Equal(t, sensitivity.NormL1, s.Norm)
	assert.Equal(t, 3.0, s.Scalar())
}

func TestCompute_Sum_SubstituteUsesFullRange(t *testing.T) {
	prov := provenance(graphmodel.VariantSum, []float64{0}, []float64{10}, 50, 1)
	s, err := sensitivity.Compute(prov, sensitivity.Substitute)
	require.NoError(t, err)
	assert.Equal(t, 10.0, s.Scalar())
}

func TestCompute_Sum_AddRemoveUsesMaxAbs(t *testing.T) {
	prov := provenance(graphmodel.VariantSum, []float64{-5}, []float64{10}, 50, 1)
	s, err := sensitivity.Compute(prov, sensitivity.AddRemove)
	require.NoError(t, err)
	assert.Equal(t, 10.0, s.Scalar())
}

func TestCompute_Mean_ShrinksWithRecordCount(t *testing.T) {
	prov := provenance(graphmodel.VariantMean, []float64{0}, []float64{10}, 100, 1)
	s, err := sensitivity.Compute(prov, sensitivity.Substitute)
	require.NoError(t, err)
	assert.InDelta(t, 0.1, s.Scalar(), 1e-9)
}

func TestCompute_MissingBoundsRejected(t *testing.T) {
	prov := provenance(graphmodel.VariantSum, nil, nil, 10, 1)
	_, err := sensitivity.Compute(prov, sensitivity.Substitute)
	assert.ErrorIs(t, err, sensitivity.ErrMissingBounds)
}

func TestCompute_UnsupportedVariantRejected(t *testing.T) {
	prov := provenance(graphmodel.VariantLiteral, []float64{0}, []float64{1}, 1, 1)
	_, err := sensitivity.Compute(prov, sensitivity.Substitute)
	assert.ErrorIs(t, err, sensitivity.ErrUnsupportedAggregator)
}

func TestCompute_Covariance_RequiresTwoColumns(t *testing.T) {
	prov := provenance(graphmodel.VariantCovariance, []float64{0}, []float64{1}, 10, 1)
	_, err := sensitivity.Compute(prov, sensitivity.Substitute)
	assert.ErrorIs(t, err, sensitivity.ErrMissingBounds)
}
