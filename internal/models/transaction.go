package models

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"
)

// Transaction is a single POS line item as received from the ingestion layer.
type Transaction struct {
	ID         string    `json:"id,omitempty"`
	Date       time.Time `json:"date"`
	Total      float64   `json:"total"`
	CustomerID string    `json:"customer_id"`
	ItemName   string    `json:"item_name"`
	DayOfWeek  string    `json:"day_of_week"`
}

// DailyPOSRow is one day of aggregated POS data with all seven KPIs reported
// directly by the restaurant.
type DailyPOSRow struct {
	Date           time.Time `json:"date"`
	CuisineType    string    `json:"cuisine_type"`
	DiningModel    string    `json:"dining_model"`
	AvgTicket      float64   `json:"avg_ticket"`
	Covers         float64   `json:"covers"`
	LaborCostPct   float64   `json:"labor_cost_pct"`
	FoodCostPct    float64   `json:"food_cost_pct"`
	TableTurnover  float64   `json:"table_turnover"`
	SalesPerSqft   float64   `json:"sales_per_sqft"`
	RepeatRate     float64   `json:"expected_customer_repeat_rate"`
}

// RestaurantCategory identifies the benchmark cohort a restaurant belongs to.
type RestaurantCategory struct {
	CuisineType string `json:"cuisine_type"`
	DiningModel string `json:"dining_model"`
}

func (c RestaurantCategory) String() string {
	return c.CuisineType + " - " + c.DiningModel
}

// DataSummary captures the shape of the uploaded dataset, used for
// confidence scoring and report headers.
type DataSummary struct {
	TotalTransactions int       `json:"total_transactions"`
	UniqueCustomers   int       `json:"unique_customers"`
	UniqueItems       int       `json:"unique_items"`
	StartDate         time.Time `json:"start_date"`
	EndDate           time.Time `json:"end_date"`
	Days              int       `json:"days"`
	TotalRevenue      float64   `json:"total_revenue"`
	Locations         int       `json:"locations"`
}

// SummarizeTransactions derives a DataSummary from raw transaction records.
func SummarizeTransactions(txns []Transaction) DataSummary {
	summary := DataSummary{TotalTransactions: len(txns), Locations: 1}
	customers := make(map[string]struct{})
	items := make(map[string]struct{})

	for i, t := range txns {
		customers[t.CustomerID] = struct{}{}
		items[t.ItemName] = struct{}{}
		summary.TotalRevenue += t.Total
		if i == 0 || t.Date.Before(summary.StartDate) {
			summary.StartDate = t.Date
		}
		if i == 0 || t.Date.After(summary.EndDate) {
			summary.EndDate = t.Date
		}
	}
	summary.UniqueCustomers = len(customers)
	summary.UniqueItems = len(items)
	if len(txns) > 0 {
		summary.Days = int(summary.EndDate.Sub(summary.StartDate).Hours()/24) + 1
	}
	return summary
}

// LoadTransactionCSV reads transaction-level POS data with columns
// date,total,customer_id,item_name,day_of_week.
func LoadTransactionCSV(filePath string) ([]Transaction, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	reader := csv.NewReader(file)
	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("error reading transaction header: %w", err)
	}
	col := columnIndex(header)

	var txns []Transaction
	for {
		fields, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		date, err := time.Parse("2006-01-02", fields[col["date"]])
		if err != nil {
			return nil, fmt.Errorf("invalid date %q: %w", fields[col["date"]], err)
		}
		total, err := strconv.ParseFloat(fields[col["total"]], 64)
		if err != nil {
			return nil, fmt.Errorf("invalid total %q: %w", fields[col["total"]], err)
		}
		txns = append(txns, Transaction{
			Date:       date,
			Total:      total,
			CustomerID: fields[col["customer_id"]],
			ItemName:   fields[col["item_name"]],
			DayOfWeek:  fields[col["day_of_week"]],
		})
	}
	return txns, nil
}

// LoadDailyPOSCSV reads aggregated daily POS data with one row per day.
func LoadDailyPOSCSV(filePath string) ([]DailyPOSRow, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	reader := csv.NewReader(file)
	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("error reading daily POS header: %w", err)
	}
	col := columnIndex(header)

	var rows []DailyPOSRow
	for {
		fields, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		date, err := time.Parse("2006-01-02", fields[col["date"]])
		if err != nil {
			return nil, fmt.Errorf("invalid date %q: %w", fields[col["date"]], err)
		}
		row := DailyPOSRow{
			Date:        date,
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
				return nil, fmt.Errorf("invalid %s %q: %w", name, fields[col[name]], err)
			}
			*dst = v
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func columnIndex(header []string) map[string]int {
	col := make(map[string]int, len(header))
	for i, name := range header {
		col[name] = i
	}
	return col
}
