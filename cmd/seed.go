package cmd

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/flavyr/flavyr/internal/models"
	"github.com/flavyr/flavyr/internal/repositories/postgres"
	"github.com/spf13/cobra"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Loads the benchmark and deal bank CSVs into Postgres",
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := models.LoadConfig(cfgFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}

		if err := runSeed(cfg); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(seedCmd)
}

func runSeed(cfg *models.Config) error {
	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return err
	}
	defer pool.Close()

	if cfg.BenchmarkFile != "" {
		rows, err := cfg.LoadBenchmarkData(cfg.BenchmarkFile)
		if err != nil {
			return fmt.Errorf("failed to load benchmarks: %w", err)
		}
		repo := postgres.NewBenchmarkRepository(pool)
		if err := repo.DeleteAll(ctx); err != nil {
			return err
		}
		ptrs := make([]*models.BenchmarkRow, len(rows))
		for i := range rows {
			ptrs[i] = &rows[i]
		}
		if err := repo.BulkCreate(ctx, ptrs); err != nil {
			return fmt.Errorf("failed to insert benchmarks: %w", err)
		}
		log.Printf("Seeded %d benchmark rows", len(rows))
	}

	if cfg.TransactionBenchmarkFile != "" {
		rows, err := cfg.LoadTransactionBenchmarkData(cfg.TransactionBenchmarkFile)
		if err != nil {
			return fmt.Errorf("failed to load transaction benchmarks: %w", err)
		}
		repo := postgres.NewTransactionBenchmarkRepository(pool)
		if err := repo.DeleteAll(ctx); err != nil {
			return err
		}
		ptrs := make([]*models.TransactionBenchmarkRow, len(rows))
		for i := range rows {
			ptrs[i] = &rows[i]
		}
		if err := repo.BulkCreate(ctx, ptrs); err != nil {
			return fmt.Errorf("failed to insert transaction benchmarks: %w", err)
		}
		log.Printf("Seeded %d transaction benchmark rows", len(rows))
	}

	if cfg.DealBankFile != "" {
		catalog, err := cfg.LoadDealBankData(cfg.DealBankFile)
		if err != nil {
			return fmt.Errorf("failed to load deal bank: %w", err)
		}
		repo := postgres.NewDealRepository(pool)
		if err := repo.DeleteAll(ctx); err != nil {
			return err
		}
		ptrs := make([]*models.DealCatalogEntry, len(catalog))
		for i := range catalog {
			ptrs[i] = &catalog[i]
		}
		if err := repo.BulkCreate(ctx, ptrs); err != nil {
			return fmt.Errorf("failed to insert deal bank: %w", err)
		}
		log.Printf("Seeded %d deal bank entries", len(catalog))
	}

	return nil
}
