package privacy_test

import (
	"testing"

	"github.com/arborcroft/dpgraph/graphmodel"
	"github.com/arborcroft/dpgraph/privacy"
	"github.com/arborcroft/dpgraph/value"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSequentialComposesBySum(t *testing.T) {
	total := privacy.Sequential(privacy.Usage{Epsilon: 0.5}, privacy.Usage{Epsilon: 0.3})
	assert.InDelta(t, 0.8, total.Epsilon, 1e-9)
}

func TestParallelComposesByMax(t *testing.T) {
	total := privacy.Parallel(privacy.Usage{Epsilon: 0.5}, privacy.Usage{Epsilon: 0.3})
	assert.InDelta(t, 0.5, total.Epsilon, 1e-9)
}

func TestCheck_RejectsOverBudget(t *testing.T) {
	def := privacy.DefaultDefinition()
	def.BudgetEpsilon = 1.0
	err := privacy.Check(def, privacy.Usage{Epsilon: 2.0})
	assert.ErrorIs(t, err, privacy.ErrBudgetExceeded)
}

func TestBatchPrivacyUsage_PartitionSiblingsComposeByMax(t *testing.T) {
	usages := map[uint32]privacy.Usage{
		1: {Epsilon: 0.4},
		2: {Epsilon: 0.9},
	}
	groups := map[uint32]*graphmodel.GroupID{
		1: {PartitionID: 7, Index: value.IntKey(0)},
		2: {PartitionID: 7, Index: value.IntKey(1)},
	}
	total, err := privacy.BatchPrivacyUsage(usages, groups)
	require.NoError(t, err)
	assert.InDelta(t, 0.9, total.Epsilon, 1e-9)
}

func TestBatchPrivacyUsage_UngroupedComposeSequentially(t *testing.T) {
	usages := map[uint32]privacy.Usage{
		1: {Epsilon: 0.4},
		2: {Epsilon: 0.3},
	}
	total, err := privacy.BatchPrivacyUsage(usages, nil)
	require.NoError(t, err)
	assert.InDelta(t, 0.7, total.Epsilon, 1e-9)
}

func TestAccuracyRoundTrip_Laplace(t *testing.T) {
	usage, err := privacy.AccuracyToPrivacyUsage(graphmodel.MechanismLaplace, 10, 0.05, 2.0, 0, 0)
	require.NoError(t, err)
	accuracy, err := privacy.PrivacyUsageToAccuracy(graphmodel.MechanismLaplace, 10, 0.05, usage)
	require.NoError(t, err)
	assert.InDelta(t, 2.0, accuracy, 1e-6)
}

func TestAccuracyToPrivacyUsage_RejectsBadAlpha(t *testing.T) {
	_, err := privacy.AccuracyToPrivacyUsage(graphmodel.MechanismLaplace, 10, 1.5, 2.0, 0, 0)
	assert.ErrorIs(t, err, privacy.ErrInvalidAlpha)
}

func TestGroupAmplificationFactor_SingletonGroupIsIdentity(t *testing.T) {
	assert.Equal(t, 1.0, privacy.GroupAmplificationFactor(1, 0.5))
	assert.Equal(t, 1.0, privacy.GroupAmplificationFactor(0, 0.5))
}

func TestGroupAmplificationFactor_GrowsWithGroupSize(t *testing.T) {
	f2 := privacy.GroupAmplificationFactor(2, 0.5)
	f3 := privacy.GroupAmplificationFactor(3, 0.5)
	assert.Greater(t, f2, 1.0)
	assert.Greater(t, f3, f2)
}

func TestEffectiveToActual_NoAmplificationIsIdentity(t *testing.T) {
	actual, err := privacy.EffectiveToActual(privacy.Usage{Epsilon: 0.5, Delta: 1e-6}, 1, 1, 1)
	require.NoError(t, err)
	assert.InDelta(t, 0.5, actual.Epsilon, 1e-9)
	assert.InDelta(t, 1e-6, actual.Delta, 1e-12)
}

func TestEffectiveToActual_SamplingAndStabilityReduceActualCost(t *testing.T) {
	actual, err := privacy.EffectiveToActual(privacy.Usage{Epsilon: 1.0}, 0.5, 2, 1)
	require.NoError(t, err)
	// eps_actual = eps_eff / (sample_proportion * c_stability * f(1))
	assert.InDelta(t, 1.0/(0.5*2), actual.Epsilon, 1e-9)
}

func TestEffectiveToActual_RejectsInvalidSampleProportion(t *testing.T) {
	_, err := privacy.EffectiveToActual(privacy.Usage{Epsilon: 1.0}, 0, 1, 1)
	assert.ErrorIs(t, err, privacy.ErrInvalidUsage)
}
