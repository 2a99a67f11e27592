// Package validate checks uploaded POS data before analysis. Errors abort
// the run; warnings travel with the report.
package validate

import (
	"fmt"
	"time"

	"github.com/flavyr/flavyr/internal/models"
)

// Result collects everything wrong or questionable about an upload.
type Result struct {
	Errors   []string
	Warnings []string
}

// Valid reports whether the data can be analyzed.
func (r *Result) Valid() bool {
	return len(r.Errors) == 0
}

func (r *Result) errorf(format string, args ...interface{}) {
	r.Errors = append(r.Errors, fmt.Sprintf(format, args...))
}

func (r *Result) warnf(format string, args ...interface{}) {
	r.Warnings = append(r.Warnings, fmt.Sprintf(format, args...))
}

var validDays = func() map[string]bool {
	m := make(map[string]bool, len(models.DayNames))
	for _, d := range models.DayNames {
		m[d] = true
	}
	return m
}()

const (
	minRecommendedRows      = 30
	minRecommendedCustomers = 10
	minRecommendedItems     = 5
	minRecommendedDays      = 7
)

// Transactions validates transaction-level records: required fields, value
// ranges and day names, plus data-volume warnings.
func Transactions(txns []models.Transaction) *Result {
	res := &Result{}
	if len(txns) == 0 {
		res.errorf("no transaction records found")
		return res
	}

	customers := make(map[string]struct{})
	items := make(map[string]struct{})
	var start, end time.Time
	for i, t := range txns {
		if t.CustomerID == "" {
			res.errorf("row %d: missing customer_id", i+1)
		}
		if t.ItemName == "" {
			res.errorf("row %d: missing item_name", i+1)
		}
		if t.Total < 0 {
			res.errorf("row %d: negative total %.2f", i+1, t.Total)
		}
		if t.DayOfWeek != "" && !validDays[t.DayOfWeek] {
			res.errorf("row %d: unknown day_of_week %q", i+1, t.DayOfWeek)
		}
		if t.Date.IsZero() {
			res.errorf("row %d: missing date", i+1)
			continue
		}
		customers[t.CustomerID] = struct{}{}
		items[t.ItemName] = struct{}{}
		if start.IsZero() || t.Date.Before(start) {
			start = t.Date
		}
		if end.IsZero() || t.Date.After(end) {
			end = t.Date
		}
	}

	if len(txns) < minRecommendedRows {
		res.warnf("only %d transactions - results may not be representative", len(txns))
	}
	if len(customers) > 0 && len(customers) < minRecommendedCustomers {
		res.warnf("only %d unique customers - loyalty metrics will be noisy", len(customers))
	}
	if len(items) > 0 && len(items) < minRecommendedItems {
		res.warnf("only %d unique menu items - item rankings will be thin", len(items))
	}
	if !start.IsZero() {
		span := int(end.Sub(start).Hours()/24) + 1
		if span < minRecommendedDays {
			res.warnf("data covers %d day(s) - day-of-week patterns need at least a full week", span)
		}
	}
	return res
}

// DailyRows validates aggregated daily POS rows.
func DailyRows(rows []models.DailyPOSRow) *Result {
	res := &Result{}
	if len(rows) == 0 {
		res.errorf("no daily POS rows found")
		return res
	}

	for i, row := range rows {
		if row.Date.IsZero() {
			res.errorf("row %d: missing date", i+1)
		}
		if row.CuisineType == "" || row.DiningModel == "" {
			res.errorf("row %d: missing restaurant category", i+1)
		}
		if row.AvgTicket < 0 || row.Covers < 0 || row.TableTurnover < 0 || row.SalesPerSqft < 0 {
			res.errorf("row %d: negative KPI value", i+1)
		}
		for name, pct := range map[string]float64{
			"labor_cost_pct":                row.LaborCostPct,
			"food_cost_pct":                 row.FoodCostPct,
			"expected_customer_repeat_rate": row.RepeatRate,
		} {
			if pct < 0 || pct > 100 {
				res.errorf("row %d: %s %.1f outside 0-100", i+1, name, pct)
			}
		}
	}

	if len(rows) < minRecommendedDays {
		res.warnf("only %d daily row(s) - averages over short windows are volatile", len(rows))
	}
	return res
}
