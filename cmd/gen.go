package cmd

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/flavyr/flavyr/internal/factories"
	"github.com/flavyr/flavyr/internal/models"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var genCmd = &cobra.Command{
	Use:   "gen",
	Short: "Generates a sample POS transaction CSV for demos and testing",
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := models.LoadConfig(cfgFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}

		if err := runGen(cfg, viper.GetString("gen-output")); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(genCmd)

	genCmd.Flags().Int64("seed", 42, "Random seed for sample data")
	genCmd.Flags().Int("sample-days", 60, "Days of data to generate")
	genCmd.Flags().Int("sample-per-day", 40, "Baseline transactions per day")
	genCmd.Flags().Int("sample-customers", 120, "Size of the customer pool")
	genCmd.Flags().String("sample-start-date", time.Now().AddDate(0, -2, 0).Format(time.RFC3339), "First day of generated data")
	genCmd.Flags().String("gen-output", "sample_transactions.csv", "Where to write the generated CSV")

	viper.BindPFlags(genCmd.Flags())
}

func runGen(cfg *models.Config, outputFile string) error {
	if cfg.SampleStartDate.IsZero() {
		cfg.SampleStartDate = time.Now().AddDate(0, -2, 0)
	}

	factory := factories.NewTransactionFactory(cfg)
	txns := factory.CreateTransactions(cfg)

	file, err := os.Create(outputFile)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer file.Close()

	w := csv.NewWriter(file)
	if err := w.Write([]string{"date", "total", "customer_id", "item_name", "day_of_week"}); err != nil {
		return err
	}

	bar := progressbar.Default(int64(len(txns)), "writing transactions")
	for _, t := range txns {
		record := []string{
			t.Date.Format("2006-01-02"),
			strconv.FormatFloat(t.Total, 'f', 2, 64),
			t.CustomerID,
			t.ItemName,
			t.DayOfWeek,
		}
		if err := w.Write(record); err != nil {
			return err
		}
		bar.Add(1)
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return err
	}

	fmt.Printf("Wrote %d transactions to %s\n", len(txns), outputFile)
	return nil
}
