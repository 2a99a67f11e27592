package repositories

import (
	"context"

	"github.com/flavyr/flavyr/internal/models"
)

type BenchmarkRepository interface {
	BulkCreate(ctx context.Context, rows []*models.BenchmarkRow) error
	Create(ctx context.Context, row *models.BenchmarkRow) error
	GetAll(ctx context.Context) ([]models.BenchmarkRow, error)
	Count(ctx context.Context) (int, error)
	DeleteAll(ctx context.Context) error
}

type TransactionBenchmarkRepository interface {
	BulkCreate(ctx context.Context, rows []*models.TransactionBenchmarkRow) error
	GetAll(ctx context.Context) ([]models.TransactionBenchmarkRow, error)
	Count(ctx context.Context) (int, error)
	DeleteAll(ctx context.Context) error
}

type DealRepository interface {
	BulkCreate(ctx context.Context, entries []*models.DealCatalogEntry) error
	GetAll(ctx context.Context) (models.DealCatalog, error)
	Count(ctx context.Context) (int, error)
	DeleteAll(ctx context.Context) error
}

type SnapshotRepository interface {
	Create(ctx context.Context, report *models.Report) error
	GetLatest(ctx context.Context, cat models.RestaurantCategory) (*models.Report, error)
	Count(ctx context.Context) (int, error)
}
