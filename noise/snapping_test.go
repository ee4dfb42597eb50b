package noise_test

import (
	"math"
	"testing"

	"github.com/arborcroft/dpgraph/noise"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoundToMultipleOfLambda_Invariants(t *testing.T) {
	const m = 4 // Lambda = 16
	lambda := math.Ldexp(1, m)

	t.Run("small values round to zero", func(t *testing.T) {
		y := noise.RoundToMultipleOfLambda(lambda/2-0.01, m)
		assert.Equal(t, 0.0, y)
	})

	t.Run("result is always a multiple of lambda", func(t *testing.T) {
		for _, x := range []float64{10, 17, 100, -53, 1000.25} {
			y := noise.RoundToMultipleOfLambda(x, m)
			ratio := y / lambda
			assert.InDelta(t, math.Round(ratio), ratio, 1e-9)
		}
	})

	t.Run("bounded error above lambda", func(t *testing.T) {
		for _, x := range []float64{16, 31, 100, 257} {
			y := noise.RoundToMultipleOfLambda(x, m)
			assert.LessOrEqual(t, math.Abs(y-x), lambda/2+1e-9)
		}
	})

	t.Run("round half to even", func(t *testing.T) {
		// x = 1.5*lambda is exactly halfway between lambda and 2*lambda;
		// round-half-to-even picks the even multiple (2*lambda here,
		// since 1 is odd and 2 is even).
		y := noise.RoundToMultipleOfLambda(1.5*lambda, m)
		assert.Equal(t, 2*lambda, y)
	})
}

func TestSnap_StaysWithinClippedBound(t *testing.T) {
	for i := 0; i < 200; i++ {
		v, err := noise.Snap(5.0, 1.0, 0.5, 10.0)
		require.NoError(t, err)
		assert.LessOrEqual(t, math.Abs(v), 10.0*1.0+1e-6)
	}
}

func TestSnap_RejectsNonPositiveParameters(t *testing.T) {
	_, err := noise.Snap(1, -1, 0.5, 10)
	assert.ErrorIs(t, err, noise.ErrInvalidSensitivity)

	_, err = noise.Snap(1, 1, 0, 10)
	assert.ErrorIs(t, err, noise.ErrInvalidEpsilon)

	_, err = noise.Snap(1, 1, 0.5, 0)
	assert.ErrorIs(t, err, noise.ErrInvalidBound)
}

func TestSnap_MatchesLaplaceNearEpsilonOne(t *testing.T) {
	// At epsilon=1, Snapping's redefined epsilon should sit close to 1,
	// so a large sample's average magnitude should be in the right
	// ballpark for Lap(1/1): mean absolute value = 1/epsilon = 1.
	const n = 4000
	sum := 0.0
	for i := 0; i < n; i++ {
		v, err := noise.Snap(0, 1, 1, 1e6)
		require.NoError(t, err)
		sum += math.Abs(v)
	}
	mean := sum / n
	assert.InDelta(t, 1.0, mean, 0.3)
}
