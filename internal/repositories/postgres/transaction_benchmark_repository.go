package postgres

import (
	"context"

	"github.com/flavyr/flavyr/internal/models"
	"github.com/jackc/pgx/v5/pgxpool"
)

type TransactionBenchmarkRepository struct {
	pool *pgxpool.Pool
}

func NewTransactionBenchmarkRepository(pool *pgxpool.Pool) *TransactionBenchmarkRepository {
	return &TransactionBenchmarkRepository{pool: pool}
}

func (r *TransactionBenchmarkRepository) BulkCreate(ctx context.Context, rows []*models.TransactionBenchmarkRow) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	query := `
        INSERT INTO transaction_benchmarks (
            cuisine_type, dining_model, benchmark_loyalty_rate,
            benchmark_aov_weekday, benchmark_aov_weekend,
            benchmark_aov_variation_pct, expected_slowest_day,
            benchmark_slow_day_drop_pct, benchmark_top_item_share_pct,
            benchmark_bottom_item_threshold_pct, sample_size
        ) VALUES (
            $1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11
        )
    `

	for _, row := range rows {
		_, err = tx.Exec(ctx, query,
			row.CuisineType,
			row.DiningModel,
			row.LoyaltyRate,
			row.AOVWeekday,
			row.AOVWeekend,
			row.AOVVariationPct,
			row.ExpectedSlowestDay,
			row.SlowDayDropPct,
			row.TopItemSharePct,
			row.BottomItemThresholdPct,
			row.SampleSize,
		)
		if err != nil {
			return err
		}
	}

	return tx.Commit(ctx)
}

func (r *TransactionBenchmarkRepository) GetAll(ctx context.Context) ([]models.TransactionBenchmarkRow, error) {
	query := `
        SELECT
            cuisine_type, dining_model, benchmark_loyalty_rate,
            benchmark_aov_weekday, benchmark_aov_weekend,
            benchmark_aov_variation_pct, expected_slowest_day,
            benchmark_slow_day_drop_pct, benchmark_top_item_share_pct,
            benchmark_bottom_item_threshold_pct, sample_size
        FROM transaction_benchmarks
    `
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []models.TransactionBenchmarkRow
	for rows.Next() {
		var row models.TransactionBenchmarkRow
		err := rows.Scan(
			&row.CuisineType,
			&row.DiningModel,
			&row.LoyaltyRate,
			&row.AOVWeekday,
			&row.AOVWeekend,
			&row.AOVVariationPct,
			&row.ExpectedSlowestDay,
			&row.SlowDayDropPct,
			&row.TopItemSharePct,
			&row.BottomItemThresholdPct,
			&row.SampleSize,
		)
		if err != nil {
			return nil, err
		}
		result = append(result, row)
	}
	return result, rows.Err()
}

func (r *TransactionBenchmarkRepository) Count(ctx context.Context) (int, error) {
	var count int
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM transaction_benchmarks`).Scan(&count)
	return count, err
}

func (r *TransactionBenchmarkRepository) DeleteAll(ctx context.Context) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM transaction_benchmarks`)
	return err
}
