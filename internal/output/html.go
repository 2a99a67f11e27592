package output

import (
	"bytes"
	"fmt"
	"html/template"
	"os"
	"path/filepath"
	"strings"

	"github.com/flavyr/flavyr/internal/cloudwriter"
	"github.com/flavyr/flavyr/internal/models"
)

// HTMLOutput renders the report as a standalone HTML page, written locally
// or uploaded to object storage.
type HTMLOutput struct {
	basePath           string
	folder             string
	cloudWriterFactory cloudwriter.CloudWriterFactory
	cloudBucketName    string
	tmpl               *template.Template
}

func NewHTMLOutput(cfg *models.Config) (*HTMLOutput, error) {
	tmpl, err := template.New("report").Funcs(template.FuncMap{
		"upper": strings.ToUpper,
		"join":  strings.Join,
	}).Parse(reportTemplate)
	if err != nil {
		return nil, fmt.Errorf("failed to parse report template: %w", err)
	}

	h := &HTMLOutput{
		basePath: cfg.OutputPath,
		folder:   cfg.OutputFolder,
		tmpl:     tmpl,
	}
	if cfg.OutputDestination != "local" {
		factory, err := newCloudFactory(cfg)
		if err != nil {
			return nil, fmt.Errorf("failed to create cloud writer factory: %w", err)
		}
		h.cloudWriterFactory = factory
		h.cloudBucketName = cfg.CloudStorage.BucketName
	}
	return h, nil
}

func (h *HTMLOutput) WriteReport(report *models.Report) error {
	var buf bytes.Buffer
	if err := h.tmpl.Execute(&buf, report); err != nil {
		return fmt.Errorf("failed to render report: %w", err)
	}

	if h.cloudWriterFactory != nil {
		objectPath := filepath.Join(h.folder, "report.html")
		cw, err := h.cloudWriterFactory.NewWriter(h.cloudBucketName, objectPath, "text/html")
		if err != nil {
			return fmt.Errorf("failed to create cloud file writer: %w", err)
		}
		if _, err := cw.Write(buf.Bytes()); err != nil {
			return err
		}
		return cw.Close()
	}

	fullPath := filepath.Join(h.basePath, h.folder)
	if err := os.MkdirAll(fullPath, os.ModePerm); err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(fullPath, "report.html"), buf.Bytes(), 0o644)
}

func (h *HTMLOutput) Close() error {
	return nil
}

const reportTemplate = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>Performance Report - {{.Category}}</title>
<style>
body { font-family: sans-serif; margin: 2rem; color: #222; }
table { border-collapse: collapse; margin: 1rem 0; }
th, td { border: 1px solid #ccc; padding: 0.4rem 0.8rem; text-align: left; }
.critical { color: #b00020; font-weight: bold; }
.high { color: #d2691e; font-weight: bold; }
.medium { color: #b8860b; }
.good { color: #2e7d32; }
.score { font-size: 2rem; }
.rec { border-left: 4px solid #ccc; padding-left: 1rem; margin: 1rem 0; }
</style>
</head>
<body>
<h1>Restaurant Performance Report</h1>
<p>{{.Category}} &middot; generated {{.GeneratedAt.Format "2006-01-02 15:04 MST"}}</p>
<p>{{.Summary.TotalTransactions}} transactions, {{.Summary.UniqueCustomers}} customers over {{.Summary.Days}} day(s)</p>

{{if .Score}}<p class="score">Score: {{.Score.Score}} / 100 (grade {{.Score.Grade}})</p>{{end}}

{{if .Gaps}}
<h2>Benchmark Comparison</h2>
<table>
<tr><th>Metric</th><th>Actual</th><th>Benchmark</th><th>Gap</th><th>Severity</th></tr>
{{range .Gaps}}
<tr><td>{{.MetricName}}</td><td>{{printf "%.2f" .ActualValue}}</td><td>{{printf "%.2f" .BenchmarkValue}}</td><td>{{.DisplayGap}}</td><td class="{{.Severity}}">{{.Severity}}</td></tr>
{{end}}
</table>
{{end}}

{{if .Strategic}}
<h2>Strategic Recommendations</h2>
{{range .Strategic}}
<div class="rec">
<h3 class="{{.Severity}}">{{upper .Severity}}: {{.BusinessProblem}}</h3>
<p>{{.ActionableInsight}}</p>
{{if .DealTypes}}<p>Suggested deals: {{join .DealTypes ", "}}</p>{{end}}
<p><em>{{.Rationale}}</em></p>
<p>Confidence {{printf "%.2f" .ConfidenceScore}} &middot; {{.Transparency.ThresholdExplanation}}</p>
</div>
{{end}}
{{end}}

{{if .Tactical}}
<h2>Tactical Recommendations</h2>
{{range .Tactical}}
<div class="rec">
<h3 class="{{.Severity}}">{{upper .Severity}}: {{.BusinessProblem}}</h3>
<p>{{.ActionableInsight}}</p>
{{if .DealTypes}}<p>Suggested deals: {{join .DealTypes ", "}}</p>{{end}}
<p><em>{{.Rationale}}</em></p>
</div>
{{end}}
{{end}}

{{if .PriorityActions}}
<h2>Priority Actions</h2>
<ol>
{{range .PriorityActions}}<li>{{.}}</li>{{end}}
</ol>
{{end}}

{{if .Warnings}}
<h2>Warnings</h2>
<ul>
{{range .Warnings}}<li>{{.}}</li>{{end}}
</ul>
{{end}}
</body>
</html>
`
