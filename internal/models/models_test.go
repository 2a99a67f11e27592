package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGapEffectiveAndDisplay(t *testing.T) {
	t.Parallel()

	gap := Gap{MetricKey: MetricAvgTicket, GapPercent: -12.04}
	assert.Equal(t, -12.04, gap.EffectiveGap())
	assert.Equal(t, "-12.0%", gap.DisplayGap())

	cost := Gap{MetricKey: MetricLaborCostPct, GapPercent: 20, LowerIsBetter: true}
	assert.Equal(t, -20.0, cost.EffectiveGap())
	assert.Equal(t, "+20.0%", cost.DisplayGap())
}

func TestDisplayValue(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "$28.50", DisplayValue(MetricAvgTicket, 28.5))
	assert.Equal(t, "31.0%", DisplayValue(MetricLaborCostPct, 31))
	assert.Equal(t, "2.2", DisplayValue(MetricTableTurnover, 2.2))
}

func TestParseDealTypes(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []string{"Happy Hour", "BOGO"}, ParseDealTypes("Happy Hour; BOGO"))
	assert.Equal(t, []string{"Solo"}, ParseDealTypes("Solo"))
	assert.Nil(t, ParseDealTypes(""))
	assert.Equal(t, []string{"A", "B"}, ParseDealTypes(" A ;; B ; "))
}

func TestDealCatalogLookup(t *testing.T) {
	t.Parallel()

	catalog := DealCatalog{{BusinessProblem: ProblemLoyalty, DealTypes: []string{"Points Program"}}}
	entry, ok := catalog.Lookup(ProblemLoyalty)
	require.True(t, ok)
	assert.Equal(t, []string{"Points Program"}, entry.DealTypes)

	_, ok = catalog.Lookup("Something Else")
	assert.False(t, ok)
}

func TestThresholdsMerge(t *testing.T) {
	t.Parallel()

	defaults := DefaultThresholds()
	override := Thresholds{
		MetricAvgTicket: ThresholdTable{{Boundary: -30, Severity: SeverityCritical, Mode: CompareGapBelow}},
	}

	merged := defaults.Merge(override)
	assert.Len(t, merged[MetricAvgTicket], 1)
	assert.Equal(t, -30.0, merged[MetricAvgTicket][0].Boundary)
	// Untouched tables carry through.
	assert.Equal(t, defaults[MetricLaborCostPct], merged[MetricLaborCostPct])
	// An empty override does not erase a default table.
	merged = defaults.Merge(Thresholds{MetricCovers: nil})
	assert.NotEmpty(t, merged[MetricCovers])
}

func TestSummarizeTransactions(t *testing.T) {
	t.Parallel()

	d := func(s string) time.Time {
		v, _ := time.Parse("2006-01-02", s)
		return v
	}
	txns := []Transaction{
		{Date: d("2026-07-08"), Total: 20, CustomerID: "c1", ItemName: "Pizza"},
		{Date: d("2026-07-06"), Total: 30, CustomerID: "c2", ItemName: "Pasta"},
		{Date: d("2026-07-10"), Total: 10, CustomerID: "c1", ItemName: "Pizza"},
	}

	summary := SummarizeTransactions(txns)
	assert.Equal(t, 3, summary.TotalTransactions)
	assert.Equal(t, 2, summary.UniqueCustomers)
	assert.Equal(t, 2, summary.UniqueItems)
	assert.Equal(t, d("2026-07-06"), summary.StartDate)
	assert.Equal(t, d("2026-07-10"), summary.EndDate)
	assert.Equal(t, 5, summary.Days)
	assert.InDelta(t, 60.0, summary.TotalRevenue, 0.001)
}

func TestBenchmarkRowValue(t *testing.T) {
	t.Parallel()

	row := BenchmarkRow{AvgTicket: 28.5, Covers: 95, LaborCostPct: 31, RepeatRate: 38}
	v, ok := row.Value(MetricAvgTicket)
	require.True(t, ok)
	assert.Equal(t, 28.5, v)

	v, ok = row.Value(MetricRepeatRate)
	require.True(t, ok)
	assert.Equal(t, 38.0, v)

	_, ok = row.Value("unknown_metric")
	assert.False(t, ok)
}

func TestReportExportGaps(t *testing.T) {
	t.Parallel()

	report := &Report{
		GeneratedAt: time.Date(2026, 7, 10, 12, 0, 0, 0, time.UTC),
		Gaps: []Gap{
			{MetricKey: MetricAvgTicket, MetricName: "Average Ticket Size", ActualValue: 22, BenchmarkValue: 25, GapPercent: -12, Severity: SeverityHigh},
		},
	}

	rows := report.ExportGaps()
	require.Len(t, rows, 1)
	assert.Equal(t, MetricAvgTicket, rows[0].MetricKey)
	assert.Equal(t, SourceStrategic, rows[0].Source)
	assert.Equal(t, report.GeneratedAt.Unix(), rows[0].GeneratedAt)
}
