package postgres

import (
	"context"
	"strings"

	"github.com/flavyr/flavyr/internal/models"
	"github.com/jackc/pgx/v5/pgxpool"
)

type DealRepository struct {
	pool *pgxpool.Pool
}

func NewDealRepository(pool *pgxpool.Pool) *DealRepository {
	return &DealRepository{pool: pool}
}

func (r *DealRepository) BulkCreate(ctx context.Context, entries []*models.DealCatalogEntry) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	query := `
        INSERT INTO deal_bank (
            business_problem, deal_types, rationale
        ) VALUES (
            $1, $2, $3
        )
    `

	for _, entry := range entries {
		_, err = tx.Exec(ctx, query,
			entry.BusinessProblem,
			strings.Join(entry.DealTypes, ";"),
			entry.Rationale,
		)
		if err != nil {
			return err
		}
	}

	return tx.Commit(ctx)
}

func (r *DealRepository) GetAll(ctx context.Context) (models.DealCatalog, error) {
	query := `SELECT business_problem, deal_types, rationale FROM deal_bank`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var catalog models.DealCatalog
	for rows.Next() {
		var entry models.DealCatalogEntry
		var dealTypes string
		if err := rows.Scan(&entry.BusinessProblem, &dealTypes, &entry.Rationale); err != nil {
			return nil, err
		}
		entry.DealTypes = models.ParseDealTypes(dealTypes)
		catalog = append(catalog, entry)
	}
	return catalog, rows.Err()
}

func (r *DealRepository) Count(ctx context.Context) (int, error) {
	var count int
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM deal_bank`).Scan(&count)
	return count, err
}

func (r *DealRepository) DeleteAll(ctx context.Context) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM deal_bank`)
	return err
}
