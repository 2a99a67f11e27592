package output

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/flavyr/flavyr/internal/cloudwriter"
	"github.com/flavyr/flavyr/internal/models"
	"github.com/xitongsys/parquet-go-source/local"
	"github.com/xitongsys/parquet-go/source"
	"github.com/xitongsys/parquet-go/writer"
)

// ParquetOutput writes the gap table as a parquet file, locally or straight
// to object storage.
type ParquetOutput struct {
	basePath           string
	folder             string
	cloudWriterFactory cloudwriter.CloudWriterFactory
	cloudBucketName    string
}

func NewParquetOutput(cfg *models.Config) (*ParquetOutput, error) {
	p := &ParquetOutput{
		basePath: cfg.OutputPath,
		folder:   cfg.OutputFolder,
	}

	if cfg.OutputDestination != "local" {
		factory, err := newCloudFactory(cfg)
		if err != nil {
			return nil, fmt.Errorf("failed to create cloud writer factory: %w", err)
		}
		p.cloudWriterFactory = factory
		p.cloudBucketName = cfg.CloudStorage.BucketName
	}
	return p, nil
}

func (p *ParquetOutput) WriteReport(report *models.Report) error {
	fw, err := p.openFile("gaps.parquet")
	if err != nil {
		return err
	}

	pw, err := writer.NewParquetWriter(fw, new(models.GapExport), 4)
	if err != nil {
		return fmt.Errorf("failed to create parquet writer: %w", err)
	}

	for _, row := range report.ExportGaps() {
		if err := pw.Write(row); err != nil {
			return fmt.Errorf("failed to write gap row: %w", err)
		}
	}

	if err := pw.WriteStop(); err != nil {
		return fmt.Errorf("failed to finalize parquet file: %w", err)
	}
	return fw.Close()
}

func (p *ParquetOutput) openFile(filename string) (source.ParquetFile, error) {
	if p.cloudWriterFactory != nil {
		objectPath := filepath.Join(p.folder, filename)
		cw, err := p.cloudWriterFactory.NewWriter(p.cloudBucketName, objectPath, "application/octet-stream")
		if err != nil {
			return nil, fmt.Errorf("failed to create cloud file writer: %w", err)
		}
		return NewCloudParquetFile(cw), nil
	}

	fullPath := filepath.Join(p.basePath, p.folder)
	if err := os.MkdirAll(fullPath, os.ModePerm); err != nil {
		return nil, err
	}
	fw, err := local.NewLocalFileWriter(filepath.Join(fullPath, filename))
	if err != nil {
		return nil, fmt.Errorf("failed to create local file writer: %w", err)
	}
	return fw, nil
}

func (p *ParquetOutput) Close() error {
	return nil
}

// CloudParquetFile adapts a buffering cloud writer to the parquet source
// interface. Reads and end-relative seeks are not supported.
type CloudParquetFile struct {
	cloudWriter cloudwriter.CloudWriter
	offset      int64
}

func NewCloudParquetFile(cw cloudwriter.CloudWriter) *CloudParquetFile {
	return &CloudParquetFile{cloudWriter: cw}
}

func (c *CloudParquetFile) Open(name string) (source.ParquetFile, error) {
	return c, nil
}

func (c *CloudParquetFile) Create(name string) (source.ParquetFile, error) {
	return c, nil
}

func (c *CloudParquetFile) Seek(offset int64, whence int) (int64, error) {
	switch whence {
	case io.SeekStart:
		c.offset = offset
	case io.SeekCurrent:
		c.offset += offset
	case io.SeekEnd:
		return 0, fmt.Errorf("seek from end not supported for cloud storage")
	}
	return c.offset, nil
}

func (c *CloudParquetFile) Read(p []byte) (n int, err error) {
	return 0, fmt.Errorf("read not supported for cloud storage")
}

func (c *CloudParquetFile) Write(p []byte) (n int, err error) {
	return c.cloudWriter.Write(p)
}

func (c *CloudParquetFile) Close() error {
	return c.cloudWriter.Close()
}
