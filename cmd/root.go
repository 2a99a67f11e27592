package cmd

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/flavyr/flavyr/internal/analyzer"
	"github.com/flavyr/flavyr/internal/models"
	"github.com/flavyr/flavyr/internal/output"
	"github.com/flavyr/flavyr/internal/repositories/postgres"
	"github.com/flavyr/flavyr/internal/validate"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "flavyr",
	Short: "Diagnoses restaurant performance against industry benchmarks",
	Long: `flavyr ingests POS transaction data, measures the restaurant's KPIs
against industry benchmarks for its cuisine and dining model, and produces a
ranked set of deal recommendations with a 0-100 performance score.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := models.LoadConfig(cfgFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}

		if err := runAnalysis(cfg); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is examples/config.json)")

	rootCmd.Flags().String("cuisine-type", "", "Restaurant cuisine type, e.g. Italian")
	rootCmd.Flags().String("dining-model", "", "Dining model, e.g. Casual Dining")
	rootCmd.Flags().String("input-file", "", "POS data CSV to analyze")
	rootCmd.Flags().String("input-format", "transactions", "Input format: transactions or daily")
	rootCmd.Flags().String("benchmark-file", "", "Strategic benchmark CSV")
	rootCmd.Flags().String("transaction-benchmark-file", "", "Transaction-pattern benchmark CSV")
	rootCmd.Flags().String("deal-bank-file", "", "Deal bank CSV")
	rootCmd.Flags().Int("min-transactions", 1, "Minimum transaction count required")
	rootCmd.Flags().Int("locations", 1, "Number of restaurant locations in the upload")
	rootCmd.Flags().String("output-format", "console", "Output format: console, json, csv, parquet, html")
	rootCmd.Flags().String("output-path", "output", "Base path for file outputs")
	rootCmd.Flags().String("output-folder", "reports", "Folder under the base path")
	rootCmd.Flags().String("output-destination", "local", "Output destination: local or a cloud provider")
	rootCmd.Flags().Bool("kafka-enabled", false, "Also publish report JSON to Kafka")
	rootCmd.Flags().String("kafka-broker-list", "localhost:9092", "Kafka broker list")
	rootCmd.Flags().String("kafka-topic", "analysis_reports", "Kafka topic for report messages")
	rootCmd.Flags().Bool("store-snapshot", false, "Persist the report to Postgres")

	viper.BindPFlags(rootCmd.Flags())
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath("examples")
		viper.SetConfigType("json")
		viper.SetConfigName("config")
	}

	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func runAnalysis(cfg *models.Config) error {
	benchmarks, txBenchmarks, deals, err := loadReferenceData(cfg)
	if err != nil {
		return err
	}

	a, err := analyzer.New(cfg, benchmarks, txBenchmarks, deals)
	if err != nil {
		return err
	}

	cat := models.RestaurantCategory{CuisineType: cfg.CuisineType, DiningModel: cfg.DiningModel}

	var report *models.Report
	switch cfg.InputFormat {
	case "daily":
		rows, err := models.LoadDailyPOSCSV(cfg.InputFile)
		if err != nil {
			return fmt.Errorf("failed to read daily POS data: %w", err)
		}
		res := validate.DailyRows(rows)
		if !res.Valid() {
			return fmt.Errorf("invalid daily POS data: %v", res.Errors)
		}
		report, err = a.AnalyzeDaily(rows, cat)
		if err != nil {
			return err
		}
		report.Warnings = append(res.Warnings, report.Warnings...)
	case "transactions", "":
		txns, err := models.LoadTransactionCSV(cfg.InputFile)
		if err != nil {
			return fmt.Errorf("failed to read transaction data: %w", err)
		}
		res := validate.Transactions(txns)
		if !res.Valid() {
			return fmt.Errorf("invalid transaction data: %v", res.Errors)
		}
		report, err = a.AnalyzeTransactions(txns, cat)
		if err != nil {
			return err
		}
		report.Warnings = append(res.Warnings, report.Warnings...)
	default:
		return fmt.Errorf("unsupported input format: %s", cfg.InputFormat)
	}

	dest, err := output.NewDestination(cfg)
	if err != nil {
		return err
	}
	if err := dest.WriteReport(report); err != nil {
		dest.Close()
		return fmt.Errorf("failed to write report: %w", err)
	}
	if err := dest.Close(); err != nil {
		return err
	}

	if cfg.KafkaEnabled {
		kafka, err := output.NewKafkaOutput(cfg)
		if err != nil {
			return err
		}
		defer kafka.Close()
		if err := kafka.WriteReport(report); err != nil {
			return fmt.Errorf("failed to publish report to Kafka: %w", err)
		}
	}

	if viper.GetBool("store-snapshot") {
		if err := storeSnapshot(cfg, report); err != nil {
			return fmt.Errorf("failed to store snapshot: %w", err)
		}
	}
	return nil
}

// loadReferenceData prefers the CSV files when configured and falls back to
// Postgres tables otherwise.
func loadReferenceData(cfg *models.Config) ([]models.BenchmarkRow, []models.TransactionBenchmarkRow, models.DealCatalog, error) {
	if cfg.BenchmarkFile != "" {
		benchmarks, err := cfg.LoadBenchmarkData(cfg.BenchmarkFile)
		if err != nil {
			return nil, nil, nil, fmt.Errorf("failed to load benchmarks: %w", err)
		}
		var txBenchmarks []models.TransactionBenchmarkRow
		if cfg.TransactionBenchmarkFile != "" {
			txBenchmarks, err = cfg.LoadTransactionBenchmarkData(cfg.TransactionBenchmarkFile)
			if err != nil {
				return nil, nil, nil, fmt.Errorf("failed to load transaction benchmarks: %w", err)
			}
		}
		deals, err := cfg.LoadDealBankData(cfg.DealBankFile)
		if err != nil {
			return nil, nil, nil, fmt.Errorf("failed to load deal bank: %w", err)
		}
		return benchmarks, txBenchmarks, deals, nil
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return nil, nil, nil, err
	}
	defer pool.Close()

	benchmarks, err := postgres.NewBenchmarkRepository(pool).GetAll(ctx)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to load benchmarks from database: %w", err)
	}
	txBenchmarks, err := postgres.NewTransactionBenchmarkRepository(pool).GetAll(ctx)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to load transaction benchmarks from database: %w", err)
	}
	deals, err := postgres.NewDealRepository(pool).GetAll(ctx)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to load deal bank from database: %w", err)
	}
	log.Printf("Loaded %d benchmark rows and %d deal bank entries from database", len(benchmarks), len(deals))
	return benchmarks, txBenchmarks, deals, nil
}

func storeSnapshot(cfg *models.Config, report *models.Report) error {
	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return err
	}
	defer pool.Close()
	return postgres.NewSnapshotRepository(pool).Create(ctx, report)
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
