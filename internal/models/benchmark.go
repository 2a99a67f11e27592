package models

// BenchmarkRow holds the industry-average strategic KPIs for one
// (cuisine type, dining model) pair. Exactly one row exists per pair.
type BenchmarkRow struct {
	CuisineType   string  `json:"cuisine_type"`
	DiningModel   string  `json:"dining_model"`
	AvgTicket     float64 `json:"avg_ticket"`
	Covers        float64 `json:"covers"`
	LaborCostPct  float64 `json:"labor_cost_pct"`
	FoodCostPct   float64 `json:"food_cost_pct"`
	TableTurnover float64 `json:"table_turnover"`
	SalesPerSqft  float64 `json:"sales_per_sqft"`
	RepeatRate    float64 `json:"expected_customer_repeat_rate"`
	SampleSize    int     `json:"sample_size"`
}

// Value returns the benchmark value for a strategic metric key.
func (b *BenchmarkRow) Value(metricKey string) (float64, bool) {
	switch metricKey {
	case MetricAvgTicket:
		return b.AvgTicket, true
	case MetricCovers:
		return b.Covers, true
	case MetricLaborCostPct:
		return b.LaborCostPct, true
	case MetricFoodCostPct:
		return b.FoodCostPct, true
	case MetricTableTurnover:
		return b.TableTurnover, true
	case MetricSalesPerSqft:
		return b.SalesPerSqft, true
	case MetricRepeatRate:
		return b.RepeatRate, true
	}
	return 0, false
}

func (b *BenchmarkRow) Category() RestaurantCategory {
	return RestaurantCategory{CuisineType: b.CuisineType, DiningModel: b.DiningModel}
}

// TransactionBenchmarkRow holds the transaction-pattern benchmarks for one
// (cuisine type, dining model) pair, used by the tactical analysis.
type TransactionBenchmarkRow struct {
	CuisineType           string  `json:"cuisine_type"`
	DiningModel           string  `json:"dining_model"`
	LoyaltyRate           float64 `json:"benchmark_loyalty_rate"`
	AOVWeekday            float64 `json:"benchmark_aov_weekday"`
	AOVWeekend            float64 `json:"benchmark_aov_weekend"`
	AOVVariationPct       float64 `json:"benchmark_aov_variation_pct"`
	ExpectedSlowestDay    string  `json:"expected_slowest_day"`
	SlowDayDropPct        float64 `json:"benchmark_slow_day_drop_pct"`
	TopItemSharePct       float64 `json:"benchmark_top_item_share_pct"`
	BottomItemThresholdPct float64 `json:"benchmark_bottom_item_threshold_pct"`
	SampleSize            int     `json:"sample_size"`
}

func (b *TransactionBenchmarkRow) Category() RestaurantCategory {
	return RestaurantCategory{CuisineType: b.CuisineType, DiningModel: b.DiningModel}
}

// OverallAOV computes the blended AOV benchmark, weighting five weekdays and
// two weekend days.
func (b *TransactionBenchmarkRow) OverallAOV() float64 {
	return (b.AOVWeekday*5 + b.AOVWeekend*2) / 7
}
