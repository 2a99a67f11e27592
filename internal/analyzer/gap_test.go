package analyzer

import (
	"testing"

	"github.com/flavyr/flavyr/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalculateGap(t *testing.T) {
	t.Parallel()

	t.Run("below benchmark is negative", func(t *testing.T) {
		t.Parallel()
		gap, err := CalculateGap(models.MetricAvgTicket, 22.0, 25.0)
		require.NoError(t, err)
		assert.InDelta(t, -12.0, gap.GapPercent, 0.001)
		assert.Equal(t, models.MetricAvgTicket, gap.MetricKey)
		assert.False(t, gap.LowerIsBetter)
	})

	t.Run("above benchmark is positive", func(t *testing.T) {
		t.Parallel()
		gap, err := CalculateGap(models.MetricCovers, 110, 100)
		require.NoError(t, err)
		assert.InDelta(t, 10.0, gap.GapPercent, 0.001)
	})

	t.Run("raw sign kept for cost metrics", func(t *testing.T) {
		t.Parallel()
		gap, err := CalculateGap(models.MetricLaborCostPct, 36.0, 30.0)
		require.NoError(t, err)
		assert.InDelta(t, 20.0, gap.GapPercent, 0.001)
		assert.True(t, gap.LowerIsBetter)
		assert.InDelta(t, -20.0, gap.EffectiveGap(), 0.001)
	})

	t.Run("large gaps are not clamped", func(t *testing.T) {
		t.Parallel()
		gap, err := CalculateGap(models.MetricSalesPerSqft, 300, 100)
		require.NoError(t, err)
		assert.InDelta(t, 200.0, gap.GapPercent, 0.001)
	})

	t.Run("zero benchmark fails", func(t *testing.T) {
		t.Parallel()
		_, err := CalculateGap(models.MetricAvgTicket, 22.0, 0)
		var zeroErr *ZeroBenchmarkError
		require.ErrorAs(t, err, &zeroErr)
		assert.Equal(t, models.MetricAvgTicket, zeroErr.MetricKey)
	})
}
