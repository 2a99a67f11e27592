package models

import (
	"fmt"
	"math"
)

// Provenance records how a metric value was obtained.
type Provenance struct {
	Derived   bool   `json:"derived"`
	IsDefault bool   `json:"is_default"`
	Source    string `json:"source"`
}

// MetricRecord holds one KPI value for one restaurant-period. Immutable once
// computed.
type MetricRecord struct {
	MetricKey  string     `json:"metric_key"`
	Value      float64    `json:"value"`
	Unit       string     `json:"unit"`
	Provenance Provenance `json:"provenance"`
}

// Gap is the signed percentage difference between an actual KPI value and its
// benchmark. The stored GapPercent always keeps the raw signed formula; the
// lower-is-better inversion is applied only during severity classification.
type Gap struct {
	MetricKey      string  `json:"metric_key"`
	MetricName     string  `json:"metric_name"`
	ActualValue    float64 `json:"actual_value"`
	BenchmarkValue float64 `json:"benchmark_value"`
	GapPercent     float64 `json:"gap_percent"`
	LowerIsBetter  bool    `json:"lower_is_better"`
	Severity       string  `json:"severity,omitempty"`
}

// EffectiveGap returns the gap with the direction convention applied, so that
// negative always means underperforming.
func (g Gap) EffectiveGap() float64 {
	if g.LowerIsBetter {
		return -g.GapPercent
	}
	return g.GapPercent
}

// DisplayGap renders the gap rounded to one decimal place with a sign.
func (g Gap) DisplayGap() string {
	return fmt.Sprintf("%+.1f%%", Round1(g.GapPercent))
}

// DisplayValue formats a value according to the metric's unit.
func DisplayValue(metricKey string, value float64) string {
	switch MetricUnits[metricKey] {
	case UnitCurrency:
		return fmt.Sprintf("$%.2f", value)
	case UnitPercentage:
		return fmt.Sprintf("%.1f%%", value)
	default:
		return fmt.Sprintf("%.1f", value)
	}
}

// Finding pairs a classified gap with its source and a human-readable
// actionable insight. Findings are the assembler's input unit.
type Finding struct {
	Gap     Gap    `json:"gap"`
	Source  string `json:"source"`
	Insight string `json:"insight"`
}

// Round1 rounds to one decimal place for display purposes.
func Round1(v float64) float64 {
	return math.Round(v*10) / 10
}

// Round2 rounds to two decimal places.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
