package postgres

import (
	"context"
	"encoding/json"

	"github.com/flavyr/flavyr/internal/models"
	"github.com/jackc/pgx/v5/pgxpool"
)

// SnapshotRepository persists full analysis reports as JSONB rows so runs
// can be compared over time.
type SnapshotRepository struct {
	pool *pgxpool.Pool
}

func NewSnapshotRepository(pool *pgxpool.Pool) *SnapshotRepository {
	return &SnapshotRepository{pool: pool}
}

func (r *SnapshotRepository) Create(ctx context.Context, report *models.Report) error {
	payload, err := json.Marshal(report)
	if err != nil {
		return err
	}

	query := `
        INSERT INTO analysis_snapshots (
            cuisine_type, dining_model, generated_at, score, report
        ) VALUES (
            $1, $2, $3, $4, $5
        )
    `
	var score *float64
	if report.Score != nil {
		score = &report.Score.Score
	}
	_, err = r.pool.Exec(ctx, query,
		report.Category.CuisineType,
		report.Category.DiningModel,
		report.GeneratedAt,
		score,
		payload,
	)
	return err
}

func (r *SnapshotRepository) GetLatest(ctx context.Context, cat models.RestaurantCategory) (*models.Report, error) {
	query := `
        SELECT report
        FROM analysis_snapshots
        WHERE cuisine_type = $1 AND dining_model = $2
        ORDER BY generated_at DESC
        LIMIT 1
    `
	var payload []byte
	err := r.pool.QueryRow(ctx, query, cat.CuisineType, cat.DiningModel).Scan(&payload)
	if err != nil {
		return nil, err
	}

	var report models.Report
	if err := json.Unmarshal(payload, &report); err != nil {
		return nil, err
	}
	return &report, nil
}

func (r *SnapshotRepository) Count(ctx context.Context) (int, error) {
	var count int
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM analysis_snapshots`).Scan(&count)
	return count, err
}
