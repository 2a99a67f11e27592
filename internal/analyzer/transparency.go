package analyzer

import (
	"fmt"

	"github.com/flavyr/flavyr/internal/models"
)

// ConfidenceFactors are the data-volume inputs to the confidence score.
type ConfidenceFactors struct {
	SampleSize          int
	DaysOfData          int
	BenchmarkSampleSize int
	Locations           int
}

// ConfidenceScore combines sample size, observation window and benchmark
// depth into a 0.0-1.0 confidence value. Each factor contributes a banded
// weight; the bands sum to 1.0 at full strength.
func ConfidenceScore(f ConfidenceFactors) float64 {
	var score float64

	switch {
	case f.SampleSize >= 1000:
		score += 0.4
	case f.SampleSize >= 500:
		score += 0.3
	case f.SampleSize >= 100:
		score += 0.2
	default:
		score += 0.1
	}

	switch {
	case f.DaysOfData >= 60:
		score += 0.3
	case f.DaysOfData >= 30:
		score += 0.25
	case f.DaysOfData >= 14:
		score += 0.15
	default:
		score += 0.05
	}

	switch {
	case f.BenchmarkSampleSize >= 500:
		score += 0.3
	case f.BenchmarkSampleSize >= 100:
		score += 0.2
	default:
		score += 0.1
	}

	if score > 1.0 {
		score = 1.0
	}
	return models.Round2(score)
}

// GapCalculationSteps replays the arithmetic behind a gap so the operator can
// verify the number instead of trusting it.
func GapCalculationSteps(gap models.Gap) []models.CalculationStep {
	steps := []models.CalculationStep{
		{
			Description:  fmt.Sprintf("Compare %s against the benchmark", gap.MetricName),
			Formula:      "(actual - benchmark) / benchmark x 100",
			Substitution: fmt.Sprintf("(%.2f - %.2f) / %.2f x 100", gap.ActualValue, gap.BenchmarkValue, gap.BenchmarkValue),
			Result:       fmt.Sprintf("%.1f%%", gap.GapPercent),
		},
	}
	if gap.LowerIsBetter {
		steps = append(steps, models.CalculationStep{
			Description:  "Lower values are better for this metric, so the sign flips for scoring",
			Formula:      "-gap",
			Substitution: fmt.Sprintf("-(%.1f)", gap.GapPercent),
			Result:       fmt.Sprintf("%.1f%%", gap.EffectiveGap()),
		})
	}
	return steps
}

// ThresholdExplanation renders the rule that fired for a gap in plain terms.
func ThresholdExplanation(gap models.Gap, table models.ThresholdTable) string {
	for _, rule := range table {
		if !ruleMatches(gap, rule) {
			continue
		}
		switch rule.Mode {
		case models.CompareAbsoluteBelow:
			return fmt.Sprintf("Classified %s: %s of %.1f is below the %.1f threshold",
				rule.Severity, gap.MetricName, gap.ActualValue, rule.Boundary)
		case models.CompareAbsoluteAbove:
			return fmt.Sprintf("Classified %s: %s of %.1f exceeds the %.1f threshold",
				rule.Severity, gap.MetricName, gap.ActualValue, rule.Boundary)
		case models.CompareGapBelow:
			return fmt.Sprintf("Classified %s: performance gap of %.1f%% is below the %.1f%% threshold",
				rule.Severity, gap.EffectiveGap(), rule.Boundary)
		case models.ComparePointsBelow:
			return fmt.Sprintf("Classified %s: %s trails the benchmark by %.1f points (threshold %.1f)",
				rule.Severity, gap.MetricName, gap.BenchmarkValue-gap.ActualValue, rule.Boundary)
		case models.ComparePointsAbove:
			return fmt.Sprintf("Classified %s: %s runs %.1f points above the benchmark (threshold %.1f)",
				rule.Severity, gap.MetricName, gap.ActualValue-gap.BenchmarkValue, rule.Boundary)
		case models.CompareRatioBelow:
			return fmt.Sprintf("Classified %s: %s of %.2f is under %.0f%% of the %.2f benchmark",
				rule.Severity, gap.MetricName, gap.ActualValue, rule.Boundary*100, gap.BenchmarkValue)
		}
	}
	return fmt.Sprintf("Within healthy range: %s shows no threshold breach", gap.MetricName)
}
