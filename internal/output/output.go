package output

import (
	"fmt"

	"github.com/flavyr/flavyr/internal/cloudwriter"
	"github.com/flavyr/flavyr/internal/models"
)

// Destination receives a finished diagnostic report. Writers own their
// underlying files or connections until Close.
type Destination interface {
	WriteReport(report *models.Report) error
	Close() error
}

// NewDestination builds the sink selected by the output format setting.
func NewDestination(cfg *models.Config) (Destination, error) {
	switch cfg.OutputFormat {
	case "console", "":
		return &ConsoleOutput{}, nil
	case "json":
		return NewJSONOutput(cfg.OutputPath, cfg.OutputFolder), nil
	case "csv":
		return NewCSVOutput(cfg.OutputPath, cfg.OutputFolder), nil
	case "parquet":
		return NewParquetOutput(cfg)
	case "html":
		return NewHTMLOutput(cfg)
	default:
		return nil, fmt.Errorf("unsupported output format: %s", cfg.OutputFormat)
	}
}

// newCloudFactory resolves the configured cloud storage provider.
func newCloudFactory(cfg *models.Config) (cloudwriter.CloudWriterFactory, error) {
	switch cfg.CloudStorage.Provider {
	case "s3":
		return cloudwriter.NewS3WriterFactory(cfg.CloudStorage.Region)
	default:
		return nil, fmt.Errorf("unsupported cloud storage provider: %s", cfg.CloudStorage.Provider)
	}
}
