package output

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/flavyr/flavyr/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleReport() *models.Report {
	return &models.Report{
		GeneratedAt: time.Date(2026, 7, 10, 12, 0, 0, 0, time.UTC),
		Category:    models.RestaurantCategory{CuisineType: "Italian", DiningModel: "Casual Dining"},
		Summary:     models.DataSummary{TotalTransactions: 420, UniqueCustomers: 130, UniqueItems: 24, Days: 60},
		Gaps: []models.Gap{
			{MetricKey: models.MetricAvgTicket, MetricName: "Average Ticket Size", ActualValue: 22, BenchmarkValue: 28.5, GapPercent: -22.8, Severity: models.SeverityCritical},
			{MetricKey: models.MetricCovers, MetricName: "Total Covers", ActualValue: 100, BenchmarkValue: 95, GapPercent: 5.3, Severity: models.SeverityGood},
		},
		Score: &models.PerformanceScore{Score: 55.5, Grade: "F"},
		Strategic: []models.Recommendation{{
			BusinessProblem:   models.ProblemAOV,
			Severity:          models.SeverityCritical,
			Source:            models.SourceStrategic,
			MetricKey:         models.MetricAvgTicket,
			ActualValue:       "$22.00",
			BenchmarkValue:    "$28.50",
			GapDisplay:        "-22.8%",
			DealTypes:         []string{"Meal Bundles"},
			Rationale:         "nudge tickets higher",
			ActionableInsight: "Average Ticket Size at $22.00 vs $28.50 industry benchmark (-22.8%)",
			ConfidenceScore:   0.75,
		}},
		PriorityActions:   []string{"CRITICAL: Average Ticket Size at $22.00 vs $28.50 industry benchmark (-22.8%)"},
		HasCriticalIssues: true,
		Warnings:          []string{"only 5 transactions"},
	}
}

func TestConsoleOutput(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	sink := &ConsoleOutput{Writer: &buf}
	require.NoError(t, sink.WriteReport(sampleReport()))
	require.NoError(t, sink.Close())

	out := buf.String()
	assert.Contains(t, out, "Italian - Casual Dining")
	assert.Contains(t, out, "PERFORMANCE SCORE: 55.5 / 100 (grade F)")
	assert.Contains(t, out, "Average Ticket Size")
	assert.Contains(t, out, "[critical]")
	assert.Contains(t, out, "Meal Bundles")
	assert.Contains(t, out, "PRIORITY ACTIONS")
	assert.Contains(t, out, "Critical issues found")
	assert.Contains(t, out, "Warning: only 5 transactions")
}

func TestJSONOutput(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	sink := NewJSONOutput(dir, "reports")
	require.NoError(t, sink.WriteReport(sampleReport()))
	require.NoError(t, sink.Close())

	data, err := os.ReadFile(filepath.Join(dir, "reports", "report.json"))
	require.NoError(t, err)

	var decoded models.Report
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, "Italian", decoded.Category.CuisineType)
	require.NotNil(t, decoded.Score)
	assert.Equal(t, 55.5, decoded.Score.Score)
	require.Len(t, decoded.Strategic, 1)
	assert.Equal(t, models.ProblemAOV, decoded.Strategic[0].BusinessProblem)
}

func TestCSVOutput(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	sink := NewCSVOutput(dir, "reports")
	require.NoError(t, sink.WriteReport(sampleReport()))
	require.NoError(t, sink.Close())

	data, err := os.ReadFile(filepath.Join(dir, "reports", "gaps.csv"))
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, strings.Join(gapCSVHeader, ","), lines[0])
	assert.Contains(t, lines[1], models.MetricAvgTicket)
	assert.Contains(t, lines[1], "critical")
	assert.Contains(t, lines[2], "good")
}

func TestHTMLOutput(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	cfg := &models.Config{OutputPath: dir, OutputFolder: "reports", OutputDestination: "local"}
	sink, err := NewHTMLOutput(cfg)
	require.NoError(t, err)
	require.NoError(t, sink.WriteReport(sampleReport()))
	require.NoError(t, sink.Close())

	data, err := os.ReadFile(filepath.Join(dir, "reports", "report.html"))
	require.NoError(t, err)

	html := string(data)
	assert.Contains(t, html, "Italian - Casual Dining")
	assert.Contains(t, html, "55.5")
	assert.Contains(t, html, "CRITICAL")
	assert.Contains(t, html, "Meal Bundles")
}

func TestParquetOutputLocal(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	cfg := &models.Config{OutputPath: dir, OutputFolder: "reports", OutputDestination: "local"}
	sink, err := NewParquetOutput(cfg)
	require.NoError(t, err)
	require.NoError(t, sink.WriteReport(sampleReport()))
	require.NoError(t, sink.Close())

	info, err := os.Stat(filepath.Join(dir, "reports", "gaps.parquet"))
	require.NoError(t, err)
	assert.Positive(t, info.Size())
}

func TestNewDestination(t *testing.T) {
	t.Parallel()

	for _, format := range []string{"console", "json", "csv", "html", ""} {
		cfg := &models.Config{OutputFormat: format, OutputPath: t.TempDir(), OutputDestination: "local"}
		dest, err := NewDestination(cfg)
		require.NoErrorf(t, err, "format %q", format)
		assert.NotNil(t, dest)
	}

	_, err := NewDestination(&models.Config{OutputFormat: "yaml"})
	assert.Error(t, err)
}
