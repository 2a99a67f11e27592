package postgres

import (
	"context"

	"github.com/flavyr/flavyr/internal/models"
	"github.com/jackc/pgx/v5/pgxpool"
)

type BenchmarkRepository struct {
	pool *pgxpool.Pool
}

func NewBenchmarkRepository(pool *pgxpool.Pool) *BenchmarkRepository {
	return &BenchmarkRepository{pool: pool}
}

const benchmarkInsert = `
        INSERT INTO benchmarks (
            cuisine_type, dining_model, avg_ticket, covers,
            labor_cost_pct, food_cost_pct, table_turnover,
            sales_per_sqft, expected_customer_repeat_rate, sample_size
        ) VALUES (
            $1, $2, $3, $4, $5, $6, $7, $8, $9, $10
        )
    `

func (r *BenchmarkRepository) BulkCreate(ctx context.Context, rows []*models.BenchmarkRow) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	for _, row := range rows {
		_, err = tx.Exec(ctx, benchmarkInsert,
			row.CuisineType,
			row.DiningModel,
			row.AvgTicket,
			row.Covers,
			row.LaborCostPct,
			row.FoodCostPct,
			row.TableTurnover,
			row.SalesPerSqft,
			row.RepeatRate,
			row.SampleSize,
		)
		if err != nil {
			return err
		}
	}

	return tx.Commit(ctx)
}

func (r *BenchmarkRepository) Create(ctx context.Context, row *models.BenchmarkRow) error {
	_, err := r.pool.Exec(ctx, benchmarkInsert,
		row.CuisineType,
		row.DiningModel,
		row.AvgTicket,
		row.Covers,
		row.LaborCostPct,
		row.FoodCostPct,
		row.TableTurnover,
		row.SalesPerSqft,
		row.RepeatRate,
		row.SampleSize,
	)
	return err
}

func (r *BenchmarkRepository) GetAll(ctx context.Context) ([]models.BenchmarkRow, error) {
	query := `
        SELECT
            cuisine_type, dining_model, avg_ticket, covers,
            labor_cost_pct, food_cost_pct, table_turnover,
            sales_per_sqft, expected_customer_repeat_rate, sample_size
        FROM benchmarks
    `
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []models.BenchmarkRow
	for rows.Next() {
		var row models.BenchmarkRow
		err := rows.Scan(
			&row.CuisineType,
			&row.DiningModel,
			&row.AvgTicket,
			&row.Covers,
			&row.LaborCostPct,
			&row.FoodCostPct,
			&row.TableTurnover,
			&row.SalesPerSqft,
			&row.RepeatRate,
			&row.SampleSize,
		)
		if err != nil {
			return nil, err
		}
		result = append(result, row)
	}
	return result, rows.Err()
}

func (r *BenchmarkRepository) Count(ctx context.Context) (int, error) {
	var count int
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM benchmarks`).Scan(&count)
	return count, err
}

func (r *BenchmarkRepository) DeleteAll(ctx context.Context) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM benchmarks`)
	return err
}
