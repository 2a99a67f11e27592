package output

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/flavyr/flavyr/internal/models"
)

// JSONOutput writes the full report as a pretty-printed JSON document.
type JSONOutput struct {
	basePath string
	folder   string
	file     *os.File
}

func NewJSONOutput(basePath, folder string) *JSONOutput {
	return &JSONOutput{basePath: basePath, folder: folder}
}

func (j *JSONOutput) WriteReport(report *models.Report) error {
	fullPath := filepath.Join(j.basePath, j.folder)
	if err := os.MkdirAll(fullPath, os.ModePerm); err != nil {
		return err
	}

	file, err := os.Create(filepath.Join(fullPath, "report.json"))
	if err != nil {
		return err
	}
	j.file = file

	enc := json.NewEncoder(file)
	enc.SetIndent("", "  ")
	return enc.Encode(report)
}

func (j *JSONOutput) Close() error {
	if j.file != nil {
		return j.file.Close()
	}
	return nil
}
