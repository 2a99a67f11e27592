package models

// Comparison modes for severity rules. A rule matches when:
//
//	CompareAbsoluteBelow  actual < boundary
//	CompareAbsoluteAbove  actual > boundary
//	CompareGapBelow       direction-adjusted gap percent < boundary
//	ComparePointsBelow    benchmark - actual > boundary (higher-is-better)
//	ComparePointsAbove    actual - benchmark > boundary (lower-is-better)
//	CompareRatioBelow     actual < benchmark * boundary
const (
	CompareAbsoluteBelow = "absolute_below"
	CompareAbsoluteAbove = "absolute_above"
	CompareGapBelow      = "gap_below"
	ComparePointsBelow   = "points_below"
	ComparePointsAbove   = "points_above"
	CompareRatioBelow    = "ratio_below"
)

// SeverityRule is one (boundary, label, comparison mode) entry of a metric's
// threshold table.
type SeverityRule struct {
	Boundary float64 `json:"boundary" mapstructure:"boundary"`
	Severity string  `json:"severity" mapstructure:"severity"`
	Mode     string  `json:"mode" mapstructure:"mode"`
}

// ThresholdTable is an ordered list of rules, walked from most severe to
// least; the first matching rule wins, so a metric with both absolute and
// benchmark-relative rules resolves to the more severe of the two.
type ThresholdTable []SeverityRule

// Thresholds maps metric keys to their threshold tables.
type Thresholds map[string]ThresholdTable

// DefaultThresholds returns the built-in threshold tables. The loyalty bands
// mirror the documented 25/30/35 absolute cut-offs with the 5-point
// benchmark-relative fallback; strategic KPIs use relative gap bands and the
// cost metrics are expressed as percentage points above benchmark.
func DefaultThresholds() Thresholds {
	relativeGap := ThresholdTable{
		{Boundary: -20, Severity: SeverityCritical, Mode: CompareGapBelow},
		{Boundary: -10, Severity: SeverityHigh, Mode: CompareGapBelow},
		{Boundary: -5, Severity: SeverityMedium, Mode: CompareGapBelow},
	}
	costPoints := ThresholdTable{
		{Boundary: 8, Severity: SeverityCritical, Mode: ComparePointsAbove},
		{Boundary: 5, Severity: SeverityHigh, Mode: ComparePointsAbove},
		{Boundary: 2, Severity: SeverityMedium, Mode: ComparePointsAbove},
	}
	loyalty := ThresholdTable{
		{Boundary: 25, Severity: SeverityCritical, Mode: CompareAbsoluteBelow},
		{Boundary: 30, Severity: SeverityHigh, Mode: CompareAbsoluteBelow},
		{Boundary: 35, Severity: SeverityMedium, Mode: CompareAbsoluteBelow},
		{Boundary: 5, Severity: SeverityMedium, Mode: ComparePointsBelow},
	}

	return Thresholds{
		MetricAvgTicket:     relativeGap,
		MetricCovers:        relativeGap,
		MetricTableTurnover: relativeGap,
		MetricSalesPerSqft:  relativeGap,
		MetricRepeatRate:    loyalty,
		MetricLaborCostPct:  costPoints,
		MetricFoodCostPct:   costPoints,

		MetricLoyaltyRate: loyalty,
		MetricAOV: ThresholdTable{
			{Boundary: 0.90, Severity: SeverityHigh, Mode: CompareRatioBelow},
			{Boundary: 0.95, Severity: SeverityMedium, Mode: CompareRatioBelow},
		},
		// For the slowest-day metric the actual value is the observed drop
		// from the daily average and the benchmark is the expected drop.
		MetricSlowestDay: ThresholdTable{
			{Boundary: 40, Severity: SeverityCritical, Mode: CompareAbsoluteAbove},
			{Boundary: 35, Severity: SeverityHigh, Mode: CompareAbsoluteAbove},
			{Boundary: 5, Severity: SeverityMedium, Mode: ComparePointsAbove},
		},
		MetricWeekendUplift: ThresholdTable{
			{Boundary: 15, Severity: SeverityMedium, Mode: CompareAbsoluteBelow},
		},
		MetricTopItemShare: ThresholdTable{
			{Boundary: 30, Severity: SeverityMedium, Mode: CompareAbsoluteAbove},
		},
		MetricBottomItemCount: ThresholdTable{
			{Boundary: 5, Severity: SeverityMedium, Mode: CompareAbsoluteAbove},
		},
	}
}

// Merge overlays per-metric overrides onto the receiver, returning a new map.
func (t Thresholds) Merge(overrides Thresholds) Thresholds {
	merged := make(Thresholds, len(t))
	for key, table := range t {
		merged[key] = table
	}
	for key, table := range overrides {
		if len(table) > 0 {
			merged[key] = table
		}
	}
	return merged
}
