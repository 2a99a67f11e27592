package analyzer

import (
	"testing"

	"github.com/flavyr/flavyr/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var benchmarkFixture = []models.BenchmarkRow{
	{CuisineType: "Italian", DiningModel: "Casual Dining", AvgTicket: 28.5, Covers: 95, SampleSize: 640},
	{CuisineType: "Italian", DiningModel: "Fine Dining", AvgTicket: 62, Covers: 60, SampleSize: 180},
	{CuisineType: "American", DiningModel: "Fast Casual", AvgTicket: 14.5, Covers: 160, SampleSize: 950},
}

func TestMatchBenchmark(t *testing.T) {
	t.Parallel()

	t.Run("exact match on both fields", func(t *testing.T) {
		t.Parallel()
		row, err := MatchBenchmark(benchmarkFixture, models.RestaurantCategory{CuisineType: "Italian", DiningModel: "Fine Dining"})
		require.NoError(t, err)
		assert.Equal(t, 62.0, row.AvgTicket)
	})

	t.Run("unknown category fails", func(t *testing.T) {
		t.Parallel()
		_, err := MatchBenchmark(benchmarkFixture, models.RestaurantCategory{CuisineType: "Klingon", DiningModel: "Warship Mess"})
		var notFound *BenchmarkNotFoundError
		require.ErrorAs(t, err, &notFound)
		assert.Equal(t, "Klingon", notFound.Category.CuisineType)
	})

	t.Run("matching is case sensitive", func(t *testing.T) {
		t.Parallel()
		_, err := MatchBenchmark(benchmarkFixture, models.RestaurantCategory{CuisineType: "italian", DiningModel: "Fine Dining"})
		var notFound *BenchmarkNotFoundError
		assert.ErrorAs(t, err, &notFound)
	})

	t.Run("partial match is no match", func(t *testing.T) {
		t.Parallel()
		_, err := MatchBenchmark(benchmarkFixture, models.RestaurantCategory{CuisineType: "Italian", DiningModel: "Fast Casual"})
		var notFound *BenchmarkNotFoundError
		assert.ErrorAs(t, err, &notFound)
	})
}

func TestValidateBenchmarkTable(t *testing.T) {
	t.Parallel()

	assert.NoError(t, ValidateBenchmarkTable(benchmarkFixture))

	duplicated := append([]models.BenchmarkRow{}, benchmarkFixture...)
	duplicated = append(duplicated, models.BenchmarkRow{CuisineType: "Italian", DiningModel: "Casual Dining", AvgTicket: 99})
	err := ValidateBenchmarkTable(duplicated)
	var dup *DuplicateBenchmarkError
	require.ErrorAs(t, err, &dup)
	assert.Equal(t, "Italian", dup.Category.CuisineType)
}

func TestMatchTransactionBenchmark(t *testing.T) {
	t.Parallel()

	rows := []models.TransactionBenchmarkRow{
		{CuisineType: "Italian", DiningModel: "Casual Dining", LoyaltyRate: 38, AOVWeekday: 26, AOVWeekend: 32},
	}

	row, err := MatchTransactionBenchmark(rows, models.RestaurantCategory{CuisineType: "Italian", DiningModel: "Casual Dining"})
	require.NoError(t, err)
	assert.Equal(t, 38.0, row.LoyaltyRate)
	// Blended benchmark weights five weekdays against two weekend days.
	assert.InDelta(t, (26*5+32*2)/7.0, row.OverallAOV(), 0.001)

	_, err = MatchTransactionBenchmark(rows, models.RestaurantCategory{CuisineType: "Thai", DiningModel: "Casual Dining"})
	var notFound *BenchmarkNotFoundError
	assert.ErrorAs(t, err, &notFound)
}
