package output

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"strconv"

	"github.com/flavyr/flavyr/internal/models"
)

// CSVOutput writes the flattened gap table, one row per compared metric.
type CSVOutput struct {
	basePath string
	folder   string
	file     *os.File
}

func NewCSVOutput(basePath, folder string) *CSVOutput {
	return &CSVOutput{basePath: basePath, folder: folder}
}

var gapCSVHeader = []string{
	"metric_key", "metric_name", "actual_value", "benchmark_value",
	"gap_percent", "severity", "source", "generated_at",
}

func (c *CSVOutput) WriteReport(report *models.Report) error {
	fullPath := filepath.Join(c.basePath, c.folder)
	if err := os.MkdirAll(fullPath, os.ModePerm); err != nil {
		return err
	}

	file, err := os.Create(filepath.Join(fullPath, "gaps.csv"))
	if err != nil {
		return err
	}
	c.file = file

	w := csv.NewWriter(file)
	if err := w.Write(gapCSVHeader); err != nil {
		return err
	}
	for _, row := range report.ExportGaps() {
		record := []string{
			row.MetricKey,
			row.MetricName,
			strconv.FormatFloat(row.ActualValue, 'f', 2, 64),
			strconv.FormatFloat(row.BenchmarkValue, 'f', 2, 64),
			strconv.FormatFloat(row.GapPercent, 'f', 2, 64),
			row.Severity,
			row.Source,
			strconv.FormatInt(row.GeneratedAt, 10),
		}
		if err := w.Write(record); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}

func (c *CSVOutput) Close() error {
	if c.file != nil {
		return c.file.Close()
	}
	return nil
}
