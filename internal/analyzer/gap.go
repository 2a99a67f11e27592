package analyzer

import "github.com/flavyr/flavyr/internal/models"

// CalculateGap computes the signed percentage gap between an actual value
// and its benchmark. The result always keeps the raw signed formula,
// independent of the metric's direction convention; severity classification
// applies the lower-is-better inversion. Gaps beyond ±100% are valid and are
// never clamped here.
func CalculateGap(metricKey string, actual, benchmark float64) (models.Gap, error) {
	if benchmark == 0 {
		return models.Gap{}, &ZeroBenchmarkError{MetricKey: metricKey}
	}

	return models.Gap{
		MetricKey:      metricKey,
		MetricName:     models.MetricNames[metricKey],
		ActualValue:    actual,
		BenchmarkValue: benchmark,
		GapPercent:     (actual - benchmark) / benchmark * 100,
		LowerIsBetter:  models.LowerIsBetter[metricKey],
	}, nil
}
