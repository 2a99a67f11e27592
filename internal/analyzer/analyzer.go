package analyzer

import (
	"fmt"
	"time"

	"github.com/flavyr/flavyr/internal/models"
)

// Analyzer runs the full diagnostic pipeline against loaded reference data.
// Safe for reuse across inputs; it never mutates its reference tables.
type Analyzer struct {
	Benchmarks            []models.BenchmarkRow
	TransactionBenchmarks []models.TransactionBenchmarkRow
	Deals                 models.DealCatalog
	Thresholds            models.Thresholds
	MinTransactions       int
	Locations             int
}

// New validates the reference tables and returns a ready Analyzer.
func New(cfg *models.Config, benchmarks []models.BenchmarkRow, txBenchmarks []models.TransactionBenchmarkRow, deals models.DealCatalog) (*Analyzer, error) {
	if err := ValidateBenchmarkTable(benchmarks); err != nil {
		return nil, err
	}
	locations := cfg.Locations
	if locations < 1 {
		locations = 1
	}
	return &Analyzer{
		Benchmarks:            benchmarks,
		TransactionBenchmarks: txBenchmarks,
		Deals:                 deals,
		Thresholds:            cfg.EffectiveThresholds(),
		MinTransactions:       cfg.MinTransactions,
		Locations:             locations,
	}, nil
}

// AnalyzeTransactions runs the pipeline over raw transaction records:
// derive KPIs, compare against benchmarks, run the tactical transaction
// analysis, and assemble the ranked recommendation report.
func (a *Analyzer) AnalyzeTransactions(txns []models.Transaction, cat models.RestaurantCategory) (*models.Report, error) {
	metrics, warnings, err := DeriveMetrics(txns, a.MinTransactions)
	if err != nil {
		return nil, err
	}

	bench, err := MatchBenchmark(a.Benchmarks, cat)
	if err != nil {
		return nil, err
	}

	report := &models.Report{
		GeneratedAt: time.Now().UTC(),
		Category:    cat,
		Summary:     models.SummarizeTransactions(txns),
		Warnings:    warnings,
	}
	report.Summary.Locations = a.Locations

	findings := a.strategicFindings(metrics, bench, report)

	if score, err := ComputeScore(report.Gaps); err == nil {
		report.Score = score
	} else {
		report.Warnings = append(report.Warnings, err.Error())
	}

	insights := AnalyzeTransactions(txns)
	report.Transactions = insights

	txBench, err := MatchTransactionBenchmark(a.TransactionBenchmarks, cat)
	if err != nil {
		report.Warnings = append(report.Warnings, fmt.Sprintf(
			"transaction benchmarks unavailable: %v; tactical severity checks skipped", err))
	} else {
		findings = append(findings, EvaluateTransactionPerformance(insights, txBench, a.Thresholds)...)
	}

	confidence := ConfidenceScore(ConfidenceFactors{
		SampleSize:          report.Summary.TotalTransactions,
		DaysOfData:          report.Summary.Days,
		BenchmarkSampleSize: bench.SampleSize,
		Locations:           a.Locations,
	})

	a.assemble(report, findings, confidence)
	return report, nil
}

// AnalyzeDaily runs the strategic pipeline over aggregated daily POS rows.
// No transaction-level records exist in this mode, so the tactical analysis
// is absent from the report.
func (a *Analyzer) AnalyzeDaily(rows []models.DailyPOSRow, cat models.RestaurantCategory) (*models.Report, error) {
	metrics, err := AggregateDaily(rows)
	if err != nil {
		return nil, err
	}

	bench, err := MatchBenchmark(a.Benchmarks, cat)
	if err != nil {
		return nil, err
	}

	report := &models.Report{
		GeneratedAt: time.Now().UTC(),
		Category:    cat,
		Summary:     summarizeDaily(rows),
	}
	report.Summary.Locations = a.Locations

	findings := a.strategicFindings(metrics, bench, report)

	if score, err := ComputeScore(report.Gaps); err == nil {
		report.Score = score
	} else {
		report.Warnings = append(report.Warnings, err.Error())
	}

	confidence := ConfidenceScore(ConfidenceFactors{
		SampleSize:          len(rows),
		DaysOfData:          report.Summary.Days,
		BenchmarkSampleSize: bench.SampleSize,
		Locations:           a.Locations,
	})

	a.assemble(report, findings, confidence)
	return report, nil
}

// strategicFindings computes, classifies and records the strategic gaps.
// A zero benchmark skips that metric and continues; the skip is recorded on
// the report so partial results are never mistaken for complete ones.
func (a *Analyzer) strategicFindings(metrics map[string]models.MetricRecord, bench *models.BenchmarkRow, report *models.Report) []models.Finding {
	var findings []models.Finding
	for _, key := range models.StrategicMetrics {
		record, ok := metrics[key]
		if !ok {
			continue
		}
		benchValue, ok := bench.Value(key)
		if !ok {
			continue
		}
		gap, err := CalculateGap(key, record.Value, benchValue)
		if err != nil {
			report.SkippedMetrics = append(report.SkippedMetrics, key)
			report.Warnings = append(report.Warnings, err.Error())
			continue
		}
		gap.Severity = ClassifySeverity(gap, a.Thresholds[key])
		report.Gaps = append(report.Gaps, gap)
		findings = append(findings, models.Finding{
			Gap:     gap,
			Source:  models.SourceStrategic,
			Insight: strategicInsight(gap, record),
		})
	}
	return findings
}

func (a *Analyzer) assemble(report *models.Report, findings []models.Finding, confidence float64) {
	set, warnings := AssembleRecommendations(findings, a.Deals, a.Thresholds, confidence)
	report.Strategic = set.Strategic
	report.Tactical = set.Tactical
	report.CombinedCount = set.CombinedCount
	report.PriorityActions = set.PriorityActions
	report.HasCriticalIssues = set.HasCriticalIssues
	report.Warnings = append(report.Warnings, warnings...)
}

func strategicInsight(gap models.Gap, record models.MetricRecord) string {
	actual := models.DisplayValue(gap.MetricKey, gap.ActualValue)
	benchmark := models.DisplayValue(gap.MetricKey, gap.BenchmarkValue)
	insight := fmt.Sprintf("%s at %s vs %s industry benchmark (%s)",
		gap.MetricName, actual, benchmark, gap.DisplayGap())
	if record.Provenance.IsDefault {
		insight += " - based on industry default, upload cost data for an exact read"
	}
	return insight
}

func summarizeDaily(rows []models.DailyPOSRow) models.DataSummary {
	summary := models.DataSummary{Locations: 1}
	for i, row := range rows {
		summary.TotalRevenue += row.AvgTicket * row.Covers
		if i == 0 || row.Date.Before(summary.StartDate) {
			summary.StartDate = row.Date
		}
		if i == 0 || row.Date.After(summary.EndDate) {
			summary.EndDate = row.Date
		}
	}
	if len(rows) > 0 {
		summary.Days = int(summary.EndDate.Sub(summary.StartDate).Hours()/24) + 1
	}
	summary.TotalRevenue = models.Round2(summary.TotalRevenue)
	return summary
}
