package output

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/flavyr/flavyr/internal/models"
)

// ConsoleOutput renders the report as readable text on stdout.
type ConsoleOutput struct {
	Writer io.Writer
}

func (c *ConsoleOutput) WriteReport(report *models.Report) error {
	w := c.Writer
	if w == nil {
		w = os.Stdout
	}

	rule := strings.Repeat("=", 64)
	fmt.Fprintln(w, rule)
	fmt.Fprintf(w, "RESTAURANT PERFORMANCE REPORT - %s\n", report.Category)
	fmt.Fprintf(w, "Generated %s\n", report.GeneratedAt.Format("2006-01-02 15:04 MST"))
	fmt.Fprintln(w, rule)

	s := report.Summary
	fmt.Fprintf(w, "\nData: %d transactions, %d customers, %d items over %d day(s)\n",
		s.TotalTransactions, s.UniqueCustomers, s.UniqueItems, s.Days)

	if report.Score != nil {
		fmt.Fprintf(w, "\nPERFORMANCE SCORE: %.1f / 100 (grade %s)\n", report.Score.Score, report.Score.Grade)
	}

	if len(report.Gaps) > 0 {
		fmt.Fprintln(w, "\nBENCHMARK COMPARISON")
		for _, g := range report.Gaps {
			fmt.Fprintf(w, "  %-24s %10s vs %10s  %8s  [%s]\n",
				g.MetricName,
				models.DisplayValue(g.MetricKey, g.ActualValue),
				models.DisplayValue(g.MetricKey, g.BenchmarkValue),
				g.DisplayGap(), g.Severity)
		}
	}
	for _, skipped := range report.SkippedMetrics {
		fmt.Fprintf(w, "  %-24s skipped (no usable benchmark)\n", models.MetricNames[skipped])
	}

	writeRecommendations(w, "STRATEGIC RECOMMENDATIONS", report.Strategic)
	writeRecommendations(w, "TACTICAL RECOMMENDATIONS", report.Tactical)

	if report.Transactions != nil && len(report.Transactions.Insights) > 0 {
		fmt.Fprintln(w, "\nTRANSACTION INSIGHTS")
		for _, insight := range report.Transactions.Insights {
			fmt.Fprintf(w, "  - %s\n", insight)
		}
	}

	if len(report.PriorityActions) > 0 {
		fmt.Fprintln(w, "\nPRIORITY ACTIONS")
		for i, action := range report.PriorityActions {
			fmt.Fprintf(w, "  %d. %s\n", i+1, action)
		}
	}

	if report.HasCriticalIssues {
		fmt.Fprintln(w, "\n!! Critical issues found - address the items above first")
	}

	for _, warning := range report.Warnings {
		fmt.Fprintf(w, "\nWarning: %s\n", warning)
	}
	return nil
}

func writeRecommendations(w io.Writer, title string, recs []models.Recommendation) {
	if len(recs) == 0 {
		return
	}
	fmt.Fprintf(w, "\n%s\n", title)
	for _, rec := range recs {
		fmt.Fprintf(w, "  [%s] %s\n", strings.ToUpper(rec.Severity), rec.BusinessProblem)
		fmt.Fprintf(w, "      %s (you: %s, benchmark: %s, gap: %s)\n",
			rec.ActionableInsight, rec.ActualValue, rec.BenchmarkValue, rec.GapDisplay)
		if len(rec.DealTypes) > 0 {
			fmt.Fprintf(w, "      Suggested deals: %s\n", strings.Join(rec.DealTypes, ", "))
		}
		if rec.Rationale != "" {
			fmt.Fprintf(w, "      Why: %s\n", rec.Rationale)
		}
		fmt.Fprintf(w, "      Confidence: %.0f%%  (%s)\n",
			rec.ConfidenceScore*100, rec.Transparency.ThresholdExplanation)
	}
}

func (c *ConsoleOutput) Close() error {
	return nil
}
