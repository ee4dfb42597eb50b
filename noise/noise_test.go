package noise_test

import (
	"math"
	"testing"

	"github.com/arborcroft/dpgraph/noise"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSampleBitProb_MeanConvergesToP(t *testing.T) {
	const n = 20000
	for _, p := range []float64{0.1, 0.37, 0.5, 0.9} {
		count := 0
		for i := 0; i < n; i++ {
			b, err := noise.SampleBitProb(p)
			require.NoError(t, err)
			if b {
				count++
			}
		}
		mean := float64(count) / n
		// O(1/sqrt(n)) tolerance with slack for test stability.
		assert.InDelta(t, p, mean, 0.03)
	}
}

func TestSampleBitProb_Boundaries(t *testing.T) {
	b, err := noise.SampleBitProb(0)
	require.NoError(t, err)
	assert.False(t, b)

	b, err = noise.SampleBitProb(1)
	require.NoError(t, err)
	assert.True(t, b)

	_, err = noise.SampleBitProb(1.5)
	assert.ErrorIs(t, err, noise.ErrInvalidProbability)
}

func TestSampleGumbel_MeanIsEulerMascheroni(t *testing.T) {
	const n = 100000
	sum := 0.0
	for i := 0; i < n; i++ {
		g, err := noise.SampleGumbel()
		require.NoError(t, err)
		sum += g
	}
	mean := sum / n
	assert.InDelta(t, 0.5772, mean, 0.05)
}

func TestSampleUniformInt_Boundaries(t *testing.T) {
	v, err := noise.SampleUniformInt(5, 5)
	require.NoError(t, err)
	assert.Equal(t, int64(5), v)

	_, err = noise.SampleUniformInt(6, 5)
	assert.ErrorIs(t, err, noise.ErrInvalidRange)

	for i := 0; i < 500; i++ {
		v, err := noise.SampleUniformInt(-3, 3)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, v, int64(-3))
		assert.LessOrEqual(t, v, int64(3))
	}
}

func TestCreateSubset_ReturnsKDistinctIndices(t *testing.T) {
	weights := []float64{1, 2, 3, 4, 5}
	idx, err := noise.CreateSubset(5, weights, 3)
	require.NoError(t, err)
	require.Len(t, idx, 3)
	seen := map[int]bool{}
	for _, i := range idx {
		assert.False(t, seen[i], "index %d repeated", i)
		seen[i] = true
		assert.GreaterOrEqual(t, i, 0)
		assert.Less(t, i, 5)
	}
}

func TestCreateSubset_RejectsOutOfRangeK(t *testing.T) {
	_, err := noise.CreateSubset(3, []float64{1, 1, 1}, 4)
	assert.ErrorIs(t, err, noise.ErrInvalidSubsetSize)
}

func TestCensoredGeometric_ConstantTimeRecordsFirstSuccess(t *testing.T) {
	g, err := noise.CensoredGeometric(0.5, 50, true)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, g, 0)
	assert.LessOrEqual(t, g, 50)
}

func TestExponentialMechanismSelect_PrefersHighScoreAtLargeEpsilon(t *testing.T) {
	scores := []float64{0, 0, 100, 0}
	hits := 0
	const trials = 50
	for i := 0; i < trials; i++ {
		idx, err := noise.ExponentialMechanismSelect(scores, 1.0, 50.0)
		require.NoError(t, err)
		if idx == 2 {
			hits++
		}
	}
	assert.Greater(t, hits, trials/2)
}

func TestSampleLaplace_RejectsNonPositiveScale(t *testing.T) {
	_, err := noise.SampleLaplace(0)
	assert.ErrorIs(t, err, noise.ErrInvalidScale)
}

func TestSampleTruncatedGaussian_StaysInBounds(t *testing.T) {
	for i := 0; i < 200; i++ {
		v, err := noise.SampleTruncatedGaussian(0, 1, -2, 2, false, 10000)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, v, -2.0)
		assert.LessOrEqual(t, v, 2.0)
	}
}

func TestSimpleGeometricNoise_IsSymmetricInExpectation(t *testing.T) {
	const n = 5000
	sum := 0.0
	for i := 0; i < n; i++ {
		v, err := noise.SimpleGeometricNoise(4.0, 200, false)
		require.NoError(t, err)
		sum += float64(v)
	}
	mean := sum / n
	assert.InDelta(t, 0, mean, 0.5)
}

func TestSampleUniformUnit_IsWithinUnitInterval(t *testing.T) {
	for i := 0; i < 1000; i++ {
		u, err := noise.SampleUniformUnit()
		require.NoError(t, err)
		assert.Greater(t, u, 0.0)
		assert.Less(t, u, 1.0)
		assert.False(t, math.IsNaN(u))
	}
}
