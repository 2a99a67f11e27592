package analyzer

import "github.com/flavyr/flavyr/internal/models"

// ClassifySeverity walks a metric's threshold table from most severe to
// least and returns the first matching rule's label. The classifier is
// total: a gap that matches no rule classifies as good.
func ClassifySeverity(gap models.Gap, table models.ThresholdTable) string {
	for _, rule := range table {
		if ruleMatches(gap, rule) {
			return rule.Severity
		}
	}
	return models.SeverityGood
}

func ruleMatches(gap models.Gap, rule models.SeverityRule) bool {
	switch rule.Mode {
	case models.CompareAbsoluteBelow:
		return gap.ActualValue < rule.Boundary
	case models.CompareAbsoluteAbove:
		return gap.ActualValue > rule.Boundary
	case models.CompareGapBelow:
		return gap.EffectiveGap() < rule.Boundary
	case models.ComparePointsBelow:
		return gap.BenchmarkValue-gap.ActualValue > rule.Boundary
	case models.ComparePointsAbove:
		return gap.ActualValue-gap.BenchmarkValue > rule.Boundary
	case models.CompareRatioBelow:
		return gap.ActualValue < gap.BenchmarkValue*rule.Boundary
	}
	return false
}

// MoreSevere reports whether severity a outranks severity b.
func MoreSevere(a, b string) bool {
	return models.SeverityRank[a] < models.SeverityRank[b]
}
