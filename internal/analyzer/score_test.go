package analyzer

import (
	"testing"

	"github.com/flavyr/flavyr/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func gapWith(percent float64, lowerIsBetter bool) models.Gap {
	return models.Gap{GapPercent: percent, LowerIsBetter: lowerIsBetter}
}

func TestComputeScore(t *testing.T) {
	t.Parallel()

	t.Run("at benchmark scores 70", func(t *testing.T) {
		t.Parallel()
		score, err := ComputeScore([]models.Gap{gapWith(0, false)})
		require.NoError(t, err)
		assert.Equal(t, 70.0, score.Score)
		assert.Equal(t, "C", score.Grade)
	})

	t.Run("twenty percent ahead caps at 100", func(t *testing.T) {
		t.Parallel()
		score, err := ComputeScore([]models.Gap{gapWith(20, false)})
		require.NoError(t, err)
		assert.Equal(t, 100.0, score.Score)
		assert.Equal(t, "A", score.Grade)

		score, err = ComputeScore([]models.Gap{gapWith(55, false)})
		require.NoError(t, err)
		assert.Equal(t, 100.0, score.Score)
	})

	t.Run("positive side interpolates to 100", func(t *testing.T) {
		t.Parallel()
		score, err := ComputeScore([]models.Gap{gapWith(10, false)})
		require.NoError(t, err)
		assert.Equal(t, 85.0, score.Score)
		assert.Equal(t, "B", score.Grade)
	})

	t.Run("negative side interpolates to zero", func(t *testing.T) {
		t.Parallel()
		score, err := ComputeScore([]models.Gap{gapWith(-20, false)})
		require.NoError(t, err)
		assert.Equal(t, 35.0, score.Score)
		assert.Equal(t, "F", score.Grade)

		score, err = ComputeScore([]models.Gap{gapWith(-40, false)})
		require.NoError(t, err)
		assert.Equal(t, 0.0, score.Score)

		score, err = ComputeScore([]models.Gap{gapWith(-75, false)})
		require.NoError(t, err)
		assert.Equal(t, 0.0, score.Score)
	})

	t.Run("mixed gaps average before scoring", func(t *testing.T) {
		t.Parallel()
		score, err := ComputeScore([]models.Gap{
			gapWith(10, false),
			gapWith(-10, false),
		})
		require.NoError(t, err)
		assert.Equal(t, 70.0, score.Score)
	})

	t.Run("cost overrun lowers the score", func(t *testing.T) {
		t.Parallel()
		// +10% on a lower-is-better metric is underperformance.
		score, err := ComputeScore([]models.Gap{gapWith(10, true)})
		require.NoError(t, err)
		assert.Equal(t, 52.5, score.Score)
		assert.Equal(t, "F", score.Grade)
	})

	t.Run("no gaps errors", func(t *testing.T) {
		t.Parallel()
		_, err := ComputeScore(nil)
		var noMetrics *NoMetricsError
		assert.ErrorAs(t, err, &noMetrics)
	})
}

func TestGradeBoundaries(t *testing.T) {
	t.Parallel()

	cases := []struct {
		avgGap float64
		grade  string
	}{
		{20, "A"},
		{13.4, "A"},     // 90.1
		{8, "B"},        // 82
		{0, "C"},        // 70
		{-5.7, "D"},     // 60.025
		{-6, "F"},       // 59.5
		{-40, "F"},
	}
	for _, tc := range cases {
		score, err := ComputeScore([]models.Gap{gapWith(tc.avgGap, false)})
		require.NoError(t, err)
		assert.Equalf(t, tc.grade, score.Grade, "avg gap %.1f scored %.1f", tc.avgGap, score.Score)
	}
}

func TestComputeScoreImprovingAnyGapNeverLowersScore(t *testing.T) {
	t.Parallel()

	base := []models.Gap{gapWith(-10, false), gapWith(5, true)}
	baseScore, err := ComputeScore(base)
	require.NoError(t, err)

	improved := []models.Gap{gapWith(-5, false), gapWith(5, true)}
	improvedScore, err := ComputeScore(improved)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, improvedScore.Score, baseScore.Score)

	costDown := []models.Gap{gapWith(-10, false), gapWith(2, true)}
	costDownScore, err := ComputeScore(costDown)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, costDownScore.Score, baseScore.Score)
}
