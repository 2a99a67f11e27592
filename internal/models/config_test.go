package models

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadBenchmarkData(t *testing.T) {
	t.Parallel()

	path := writeFile(t, "benchmarks.csv",
		"cuisine_type,dining_model,avg_ticket,covers,labor_cost_pct,food_cost_pct,table_turnover,sales_per_sqft,expected_customer_repeat_rate,sample_size\n"+
			"Italian,Casual Dining,28.50,95,31.0,29.0,2.2,145.0,38.0,640\n"+
			"American,Fast Casual,14.50,160,27.0,31.0,3.5,120.0,30.0,950\n")

	cfg := &Config{}
	rows, err := cfg.LoadBenchmarkData(path)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "Italian", rows[0].CuisineType)
	assert.Equal(t, 28.5, rows[0].AvgTicket)
	assert.Equal(t, 640, rows[0].SampleSize)
	assert.Equal(t, 3.5, rows[1].TableTurnover)
}

func TestLoadBenchmarkDataHandlesColumnOrder(t *testing.T) {
	t.Parallel()

	// Columns shuffled: lookup is header-driven, not positional.
	path := writeFile(t, "benchmarks.csv",
		"sample_size,expected_customer_repeat_rate,sales_per_sqft,table_turnover,food_cost_pct,labor_cost_pct,covers,avg_ticket,dining_model,cuisine_type\n"+
			"640,38.0,145.0,2.2,29.0,31.0,95,28.50,Casual Dining,Italian\n")

	cfg := &Config{}
	rows, err := cfg.LoadBenchmarkData(path)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "Italian", rows[0].CuisineType)
	assert.Equal(t, 95.0, rows[0].Covers)
}

func TestLoadBenchmarkDataBadNumber(t *testing.T) {
	t.Parallel()

	path := writeFile(t, "benchmarks.csv",
		"cuisine_type,dining_model,avg_ticket,covers,labor_cost_pct,food_cost_pct,table_turnover,sales_per_sqft,expected_customer_repeat_rate\n"+
			"Italian,Casual Dining,not-a-number,95,31.0,29.0,2.2,145.0,38.0\n")

	cfg := &Config{}
	_, err := cfg.LoadBenchmarkData(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "avg_ticket")
}

func TestLoadTransactionBenchmarkData(t *testing.T) {
	t.Parallel()

	path := writeFile(t, "tx_benchmarks.csv",
		"cuisine_type,dining_model,benchmark_loyalty_rate,benchmark_aov_weekday,benchmark_aov_weekend,benchmark_aov_variation_pct,expected_slowest_day,benchmark_slow_day_drop_pct,benchmark_top_item_share_pct,benchmark_bottom_item_threshold_pct,sample_size\n"+
			"Italian,Casual Dining,38.0,26.00,32.00,23.0,Tuesday,28.0,22.0,3.0,640\n")

	cfg := &Config{}
	rows, err := cfg.LoadTransactionBenchmarkData(path)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "Tuesday", rows[0].ExpectedSlowestDay)
	assert.Equal(t, 38.0, rows[0].LoyaltyRate)
	assert.InDelta(t, (26.0*5+32.0*2)/7, rows[0].OverallAOV(), 0.001)
}

func TestLoadDealBankData(t *testing.T) {
	t.Parallel()

	path := writeFile(t, "deal_bank.csv",
		"business_problem,deal_types,rationale\n"+
			"Foster Customer Loyalty,Points Program; Visit-Based Stamps,Structured rewards bring guests back\n")

	cfg := &Config{}
	catalog, err := cfg.LoadDealBankData(path)
	require.NoError(t, err)
	require.Len(t, catalog, 1)
	assert.Equal(t, "Foster Customer Loyalty", catalog[0].BusinessProblem)
	assert.Equal(t, []string{"Points Program", "Visit-Based Stamps"}, catalog[0].DealTypes)
}

func TestLoadTransactionCSV(t *testing.T) {
	t.Parallel()

	path := writeFile(t, "transactions.csv",
		"date,total,customer_id,item_name,day_of_week\n"+
			"2026-07-06,24.50,c1,Pizza,Monday\n"+
			"2026-07-07,18.00,c2,Pasta,Tuesday\n")

	txns, err := LoadTransactionCSV(path)
	require.NoError(t, err)
	require.Len(t, txns, 2)
	assert.Equal(t, 24.5, txns[0].Total)
	assert.Equal(t, "c1", txns[0].CustomerID)
	assert.Equal(t, "Tuesday", txns[1].DayOfWeek)
}

func TestLoadTransactionCSVBadDate(t *testing.T) {
	t.Parallel()

	path := writeFile(t, "transactions.csv",
		"date,total,customer_id,item_name,day_of_week\n"+
			"06/07/2026,24.50,c1,Pizza,Monday\n")

	_, err := LoadTransactionCSV(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid date")
}

func TestLoadDailyPOSCSV(t *testing.T) {
	t.Parallel()

	path := writeFile(t, "daily.csv",
		"date,cuisine_type,dining_model,avg_ticket,covers,labor_cost_pct,food_cost_pct,table_turnover,sales_per_sqft,expected_customer_repeat_rate\n"+
			"2026-07-06,Italian,Casual Dining,27.0,90,30.0,28.0,2.1,140.0,36.0\n")

	rows, err := LoadDailyPOSCSV(path)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "Italian", rows[0].CuisineType)
	assert.Equal(t, 90.0, rows[0].Covers)
	assert.Equal(t, 36.0, rows[0].RepeatRate)
}

func TestEffectiveThresholds(t *testing.T) {
	t.Parallel()

	cfg := &Config{SeverityThresholds: Thresholds{
		MetricAvgTicket: ThresholdTable{{Boundary: -50, Severity: SeverityCritical, Mode: CompareGapBelow}},
	}}

	thresholds := cfg.EffectiveThresholds()
	assert.Len(t, thresholds[MetricAvgTicket], 1)
	assert.NotEmpty(t, thresholds[MetricLoyaltyRate])
}
