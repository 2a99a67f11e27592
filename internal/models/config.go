package models

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"
)

type CloudStorageConfig struct {
	Provider   string `mapstructure:"provider"`
	BucketName string `mapstructure:"bucket_name"`
	Region     string `mapstructure:"region"`
}

type DatabaseConfig struct {
	Host     string `mapstructure:"host"`
	Port     string `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	DBName   string `mapstructure:"dbname"`
	SSLMode  string `mapstructure:"sslmode"`
}

type Config struct {
	CuisineType              string `mapstructure:"cuisine_type"`
	DiningModel              string `mapstructure:"dining_model"`
	InputFile                string `mapstructure:"input_file"`
	InputFormat              string `mapstructure:"input_format"` // "transactions" or "daily"
	BenchmarkFile            string `mapstructure:"benchmark_file"`
	TransactionBenchmarkFile string `mapstructure:"transaction_benchmark_file"`
	DealBankFile             string `mapstructure:"deal_bank_file"`
	MinTransactions          int    `mapstructure:"min_transactions"`
	Locations                int    `mapstructure:"locations"`

	OutputFormat      string `mapstructure:"output_format"` // console, json, csv, parquet, html
	OutputPath        string `mapstructure:"output_path"`
	OutputFolder      string `mapstructure:"output_folder"`
	OutputDestination string `mapstructure:"output_destination"` // "local" or a cloud provider

	KafkaEnabled     bool   `mapstructure:"kafka_enabled"`
	KafkaBrokerList  string `mapstructure:"kafka_broker_list"`
	KafkaTopic       string `mapstructure:"kafka_topic"`
	SessionTimeoutMs int    `mapstructure:"session_timeout_ms"`

	CloudStorage CloudStorageConfig `mapstructure:"cloud_storage"`
	Database     DatabaseConfig     `mapstructure:"database"`

	// Per-metric severity threshold overrides; merged over the defaults.
	SeverityThresholds Thresholds `mapstructure:"severity_thresholds"`

	// Sample data generation (gen subcommand).
	Seed            int64     `mapstructure:"seed"`
	SampleDays      int       `mapstructure:"sample_days"`
	SamplePerDay    int       `mapstructure:"sample_per_day"`
	SampleCustomers int       `mapstructure:"sample_customers"`
	SampleStartDate time.Time `mapstructure:"sample_start_date"`
}

// LoadConfig initializes and reads the configuration using Viper
func LoadConfig(cfgFile string) (*Config, error) {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		// Default config location
		viper.AddConfigPath("examples")
		viper.SetConfigName("config")
		viper.SetConfigType("json")
	}

	viper.AutomaticEnv() // Read in environment variables that match

	viper.SetDefault("input_format", "transactions")
	viper.SetDefault("output_format", "console")
	viper.SetDefault("output_destination", "local")
	viper.SetDefault("min_transactions", 1)
	viper.SetDefault("locations", 1)
	viper.SetDefault("kafka_topic", "analysis_reports")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var config Config
	decoderConfigOption := viper.DecoderConfigOption(func(config *mapstructure.DecoderConfig) {
		config.DecodeHook = mapstructure.ComposeDecodeHookFunc(
			config.DecodeHook,
			mapstructure.StringToTimeHookFunc(time.RFC3339),
		)
	})
	if err := viper.Unmarshal(&config, decoderConfigOption); err != nil {
		return nil, fmt.Errorf("unable to decode into struct, %w", err)
	}

	return &config, nil
}

// Thresholds returns the effective severity threshold tables: the built-in
// defaults overlaid with any per-metric overrides from the config file.
func (cfg *Config) EffectiveThresholds() Thresholds {
	return DefaultThresholds().Merge(cfg.SeverityThresholds)
}

// LoadBenchmarkData reads the strategic benchmark table from CSV. Columns:
// cuisine_type,dining_model,avg_ticket,covers,labor_cost_pct,food_cost_pct,
// table_turnover,sales_per_sqft,expected_customer_repeat_rate[,sample_size]
func (cfg *Config) LoadBenchmarkData(filePath string) ([]BenchmarkRow, error) {
	records, col, err := readCSVTable(filePath)
	if err != nil {
		return nil, err
	}

	var rows []BenchmarkRow
	for _, fields := range records {
		row := BenchmarkRow{
			CuisineType: fields[col["cuisine_type"]],
			DiningModel: fields[col["dining_model"]],
		}
		numeric := map[string]*float64{
			"avg_ticket":                    &row.AvgTicket,
			"covers":                        &row.Covers,
			"labor_cost_pct":                &row.LaborCostPct,
			"food_cost_pct":                 &row.FoodCostPct,
			"table_turnover":                &row.TableTurnover,
			"sales_per_sqft":                &row.SalesPerSqft,
			"expected_customer_repeat_rate": &row.RepeatRate,
		}
		for name, dst := range numeric {
			v, err := strconv.ParseFloat(fields[col[name]], 64)
			if err != nil {
				return nil, fmt.Errorf("benchmark %s/%s: invalid %s: %w", row.CuisineType, row.DiningModel, name, err)
			}
			*dst = v
		}
		if idx, ok := col["sample_size"]; ok {
			row.SampleSize, _ = strconv.Atoi(fields[idx])
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// LoadTransactionBenchmarkData reads the transaction-pattern benchmark table
// from CSV.
func (cfg *Config) LoadTransactionBenchmarkData(filePath string) ([]TransactionBenchmarkRow, error) {
	records, col, err := readCSVTable(filePath)
	if err != nil {
		return nil, err
	}

	var rows []TransactionBenchmarkRow
	for _, fields := range records {
		row := TransactionBenchmarkRow{
			CuisineType:        fields[col["cuisine_type"]],
			DiningModel:        fields[col["dining_model"]],
			ExpectedSlowestDay: fields[col["expected_slowest_day"]],
		}
		numeric := map[string]*float64{
			"benchmark_loyalty_rate":              &row.LoyaltyRate,
			"benchmark_aov_weekday":               &row.AOVWeekday,
			"benchmark_aov_weekend":               &row.AOVWeekend,
			"benchmark_aov_variation_pct":         &row.AOVVariationPct,
			"benchmark_slow_day_drop_pct":         &row.SlowDayDropPct,
			"benchmark_top_item_share_pct":        &row.TopItemSharePct,
			"benchmark_bottom_item_threshold_pct": &row.BottomItemThresholdPct,
		}
		for name, dst := range numeric {
			v, err := strconv.ParseFloat(fields[col[name]], 64)
			if err != nil {
				return nil, fmt.Errorf("transaction benchmark %s/%s: invalid %s: %w", row.CuisineType, row.DiningModel, name, err)
			}
			*dst = v
		}
		if idx, ok := col["sample_size"]; ok {
			row.SampleSize, _ = strconv.Atoi(fields[idx])
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// LoadDealBankData reads the deal bank strategy matrix from CSV. Columns:
// business_problem,deal_types,rationale with deal types separated by
// semicolons.
func (cfg *Config) LoadDealBankData(filePath string) (DealCatalog, error) {
	records, col, err := readCSVTable(filePath)
	if err != nil {
		return nil, err
	}

	var catalog DealCatalog
	for _, fields := range records {
		catalog = append(catalog, DealCatalogEntry{
			BusinessProblem: fields[col["business_problem"]],
			DealTypes:       ParseDealTypes(fields[col["deal_types"]]),
			Rationale:       fields[col["rationale"]],
		})
	}
	return catalog, nil
}

func readCSVTable(filePath string) ([][]string, map[string]int, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return nil, nil, err
	}
	defer file.Close()

	reader := csv.NewReader(file)
	header, err := reader.Read()
	if err != nil {
		return nil, nil, fmt.Errorf("error reading header from %s: %w", filePath, err)
	}

	var records [][]string
	for {
		fields, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, nil, err
		}
		records = append(records, fields)
	}
	return records, columnIndex(header), nil
}
