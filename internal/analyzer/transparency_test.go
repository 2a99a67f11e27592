package analyzer

import (
	"testing"

	"github.com/flavyr/flavyr/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfidenceScore(t *testing.T) {
	t.Parallel()

	t.Run("full strength data maxes out", func(t *testing.T) {
		t.Parallel()
		score := ConfidenceScore(ConfidenceFactors{SampleSize: 1500, DaysOfData: 90, BenchmarkSampleSize: 800})
		assert.Equal(t, 1.0, score)
	})

	t.Run("thin data bottoms at the floor bands", func(t *testing.T) {
		t.Parallel()
		score := ConfidenceScore(ConfidenceFactors{SampleSize: 12, DaysOfData: 3, BenchmarkSampleSize: 20})
		assert.InDelta(t, 0.25, score, 0.001)
	})

	t.Run("middle tiers add up", func(t *testing.T) {
		t.Parallel()
		// 0.3 for 500+, 0.25 for 30+ days, 0.2 for 100+ benchmark rows.
		score := ConfidenceScore(ConfidenceFactors{SampleSize: 600, DaysOfData: 45, BenchmarkSampleSize: 200})
		assert.InDelta(t, 0.75, score, 0.001)
	})

	t.Run("always within bounds", func(t *testing.T) {
		t.Parallel()
		for _, f := range []ConfidenceFactors{
			{},
			{SampleSize: 1, DaysOfData: 1, BenchmarkSampleSize: 1},
			{SampleSize: 1 << 20, DaysOfData: 10000, BenchmarkSampleSize: 1 << 20},
		} {
			score := ConfidenceScore(f)
			assert.GreaterOrEqual(t, score, 0.0)
			assert.LessOrEqual(t, score, 1.0)
		}
	})
}

func TestGapCalculationSteps(t *testing.T) {
	t.Parallel()

	gap, err := CalculateGap(models.MetricAvgTicket, 22, 25)
	require.NoError(t, err)
	steps := GapCalculationSteps(gap)
	require.Len(t, steps, 1)
	assert.Contains(t, steps[0].Substitution, "22.00")
	assert.Contains(t, steps[0].Substitution, "25.00")
	assert.Equal(t, "-12.0%", steps[0].Result)

	costGap, err := CalculateGap(models.MetricLaborCostPct, 36, 30)
	require.NoError(t, err)
	costSteps := GapCalculationSteps(costGap)
	require.Len(t, costSteps, 2)
	assert.Equal(t, "-20.0%", costSteps[1].Result)
}

func TestThresholdExplanation(t *testing.T) {
	t.Parallel()

	thresholds := models.DefaultThresholds()

	gap, err := CalculateGap(models.MetricLoyaltyRate, 24.5, 38)
	require.NoError(t, err)
	gap.Severity = ClassifySeverity(gap, thresholds[models.MetricLoyaltyRate])
	explanation := ThresholdExplanation(gap, thresholds[models.MetricLoyaltyRate])
	assert.Contains(t, explanation, "critical")
	assert.Contains(t, explanation, "24.5")

	healthy, err := CalculateGap(models.MetricAvgTicket, 29, 28.5)
	require.NoError(t, err)
	explanation = ThresholdExplanation(healthy, thresholds[models.MetricAvgTicket])
	assert.Contains(t, explanation, "healthy")
}
