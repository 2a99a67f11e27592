package analyzer

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/flavyr/flavyr/internal/models"
)

const maxPriorityActions = 5

// minStrategicRecommendations keeps the strategic list informative even when
// the restaurant is healthy: the largest gaps are surfaced regardless of
// whether they breached a threshold.
const minStrategicRecommendations = 3

// AssembleRecommendations turns classified findings into the ranked
// recommendation set. Findings deduplicate per (business problem, source)
// keeping the most severe; ranking is severity first, then gap magnitude.
// A catalog miss degrades to a recommendation without deal types and is
// reported as a warning rather than an error.
func AssembleRecommendations(findings []models.Finding, catalog models.DealCatalog, thresholds models.Thresholds, confidence float64) (models.RecommendationSet, []string) {
	var warnings []string

	type slot struct {
		finding models.Finding
		problem string
	}
	best := make(map[string]slot)
	var order []string

	for _, f := range findings {
		problem, ok := MapToProblem(f.Gap.MetricKey)
		if !ok {
			warnings = append(warnings, fmt.Sprintf("no business problem mapped for metric %q", f.Gap.MetricKey))
			continue
		}
		key := f.Source + "|" + problem
		current, seen := best[key]
		if !seen {
			best[key] = slot{finding: f, problem: problem}
			order = append(order, key)
			continue
		}
		if MoreSevere(f.Gap.Severity, current.finding.Gap.Severity) ||
			(f.Gap.Severity == current.finding.Gap.Severity &&
				math.Abs(f.Gap.EffectiveGap()) > math.Abs(current.finding.Gap.EffectiveGap())) {
			best[key] = slot{finding: f, problem: problem}
		}
	}

	var strategic, tactical []models.Recommendation
	for _, key := range order {
		s := best[key]
		if s.finding.Gap.Severity == models.SeverityGood && s.finding.Source != models.SourceStrategic {
			continue
		}
		rec := buildRecommendation(s.finding, s.problem, catalog, thresholds, confidence, &warnings)
		if s.finding.Source == models.SourceStrategic {
			strategic = append(strategic, rec)
		} else {
			tactical = append(tactical, rec)
		}
	}

	rank(strategic)
	rank(tactical)

	// Trim healthy strategic entries beyond the guaranteed floor.
	trimmed := strategic[:0]
	for i, rec := range strategic {
		if rec.Severity != models.SeverityGood || i < minStrategicRecommendations {
			trimmed = append(trimmed, rec)
		}
	}
	strategic = trimmed

	set := models.RecommendationSet{
		Strategic:     strategic,
		Tactical:      tactical,
		CombinedCount: len(strategic) + len(tactical),
	}
	set.PriorityActions = priorityActions(strategic, tactical)
	for _, rec := range append(append([]models.Recommendation(nil), strategic...), tactical...) {
		if rec.Severity == models.SeverityCritical {
			set.HasCriticalIssues = true
			break
		}
	}
	return set, warnings
}

func buildRecommendation(f models.Finding, problem string, catalog models.DealCatalog, thresholds models.Thresholds, confidence float64, warnings *[]string) models.Recommendation {
	rec := models.Recommendation{
		BusinessProblem:   problem,
		Severity:          f.Gap.Severity,
		Source:            f.Source,
		MetricKey:         f.Gap.MetricKey,
		ActualValue:       models.DisplayValue(f.Gap.MetricKey, f.Gap.ActualValue),
		BenchmarkValue:    models.DisplayValue(f.Gap.MetricKey, f.Gap.BenchmarkValue),
		GapDisplay:        f.Gap.DisplayGap(),
		GapPercent:        f.Gap.EffectiveGap(),
		ActionableInsight: f.Insight,
		ConfidenceScore:   confidence,
		Transparency: models.Transparency{
			CalculationSteps:     GapCalculationSteps(f.Gap),
			ThresholdExplanation: ThresholdExplanation(f.Gap, thresholds[f.Gap.MetricKey]),
			DataSource:           f.Source,
		},
	}

	entry, ok := catalog.Lookup(problem)
	if !ok {
		*warnings = append(*warnings, fmt.Sprintf("deal bank has no entry for business problem %q", problem))
		rec.Rationale = fmt.Sprintf("No deal types on file for %s yet; review the gap directly", problem)
		return rec
	}
	rec.DealTypes = entry.DealTypes
	rec.Rationale = entry.Rationale
	return rec
}

func rank(recs []models.Recommendation) {
	sort.SliceStable(recs, func(i, j int) bool {
		ri, rj := models.SeverityRank[recs[i].Severity], models.SeverityRank[recs[j].Severity]
		if ri != rj {
			return ri < rj
		}
		return math.Abs(recs[i].GapPercent) > math.Abs(recs[j].GapPercent)
	})
}

// priorityActions flattens both lists into the top severity-ordered actions.
func priorityActions(strategic, tactical []models.Recommendation) []string {
	combined := append(append([]models.Recommendation(nil), strategic...), tactical...)
	rank(combined)

	var actions []string
	for _, rec := range combined {
		if rec.Severity == models.SeverityGood {
			continue
		}
		actions = append(actions, fmt.Sprintf("%s: %s", strings.ToUpper(rec.Severity), rec.ActionableInsight))
		if len(actions) == maxPriorityActions {
			break
		}
	}
	return actions
}
