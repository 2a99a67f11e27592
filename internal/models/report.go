package models

import "time"

// PerformanceScore reduces the strategic gaps into a single 0-100 score and
// letter grade.
type PerformanceScore struct {
	Score         float64 `json:"score"`
	Grade         string  `json:"grade"`
	ComponentGaps []Gap   `json:"component_gaps"`
}

// DayStat is one day-of-week's transaction tally.
type DayStat struct {
	Day     string  `json:"day"`
	Count   int     `json:"count"`
	Revenue float64 `json:"revenue"`
	AOV     float64 `json:"aov"`
}

// ItemStat is one menu item's sales tally.
type ItemStat struct {
	Item     string  `json:"item"`
	Revenue  float64 `json:"revenue"`
	Quantity int     `json:"quantity"`
}

// TransactionInsights holds the tactical analysis derived from raw
// transaction records.
type TransactionInsights struct {
	SlowestDayByCount   string             `json:"slowest_day_transactions"`
	SlowestDayCount     int                `json:"slowest_day_count"`
	SlowestDayByRevenue string             `json:"slowest_day_revenue_day"`
	SlowestDayRevenue   float64            `json:"slowest_day_revenue"`
	AverageDailyCount   float64            `json:"average_daily_count"`
	DayStats            []DayStat          `json:"day_stats"`
	LoyaltyRate         float64            `json:"loyalty_rate"`
	TotalCustomers      int                `json:"total_customers"`
	RepeatCustomers     int                `json:"repeat_customers"`
	NewCustomers        int                `json:"new_customers"`
	AOVOverall          float64            `json:"aov_overall"`
	AOVByDay            map[string]float64 `json:"aov_by_day"`
	WeekdayAOV          float64            `json:"weekday_aov"`
	WeekendAOV          float64            `json:"weekend_aov"`
	WeekendUpliftPct    float64            `json:"weekend_uplift_pct"`
	TopItemsByRevenue   []ItemStat         `json:"top_items_revenue"`
	TopItemsByQuantity  []ItemStat         `json:"top_items_quantity"`
	BottomItems         []ItemStat         `json:"bottom_items"`
	TotalRevenue        float64            `json:"total_revenue"`
	ItemRevenueShares   map[string]float64 `json:"item_revenue_shares"`
	Insights            []string           `json:"insights"`
}

// Report is the full diagnostic output emitted to the presentation and
// export collaborators. Plain data, convertible to JSON.
type Report struct {
	GeneratedAt       time.Time            `json:"generated_at"`
	Category          RestaurantCategory   `json:"category"`
	Summary           DataSummary          `json:"data_summary"`
	Gaps              []Gap                `json:"gaps"`
	SkippedMetrics    []string             `json:"skipped_metrics,omitempty"`
	Score             *PerformanceScore    `json:"performance_score,omitempty"`
	Transactions      *TransactionInsights `json:"transaction_insights,omitempty"`
	Strategic         []Recommendation     `json:"strategic_recommendations"`
	Tactical          []Recommendation     `json:"tactical_recommendations"`
	CombinedCount     int                  `json:"combined_count"`
	PriorityActions   []string             `json:"priority_actions"`
	HasCriticalIssues bool                 `json:"has_critical_issues"`
	Warnings          []string             `json:"warnings,omitempty"`
}

// GapExport is the flat per-metric row written by the CSV and parquet sinks.
type GapExport struct {
	MetricKey      string  `json:"metric_key" parquet:"name=metric_key,type=BYTE_ARRAY,convertedtype=UTF8"`
	MetricName     string  `json:"metric_name" parquet:"name=metric_name,type=BYTE_ARRAY,convertedtype=UTF8"`
	ActualValue    float64 `json:"actual_value" parquet:"name=actual_value,type=DOUBLE"`
	BenchmarkValue float64 `json:"benchmark_value" parquet:"name=benchmark_value,type=DOUBLE"`
	GapPercent     float64 `json:"gap_percent" parquet:"name=gap_percent,type=DOUBLE"`
	Severity       string  `json:"severity" parquet:"name=severity,type=BYTE_ARRAY,convertedtype=UTF8"`
	Source         string  `json:"source" parquet:"name=source,type=BYTE_ARRAY,convertedtype=UTF8"`
	GeneratedAt    int64   `json:"generated_at" parquet:"name=generated_at,type=INT64"`
}

// ExportGaps flattens the report's strategic gaps for tabular sinks.
func (r *Report) ExportGaps() []GapExport {
	rows := make([]GapExport, 0, len(r.Gaps))
	for _, g := range r.Gaps {
		rows = append(rows, GapExport{
			MetricKey:      g.MetricKey,
			MetricName:     g.MetricName,
			ActualValue:    g.ActualValue,
			BenchmarkValue: g.BenchmarkValue,
			GapPercent:     g.GapPercent,
			Severity:       g.Severity,
			Source:         SourceStrategic,
			GeneratedAt:    r.GeneratedAt.Unix(),
		})
	}
	return rows
}
