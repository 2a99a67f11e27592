package analyzer

import (
	"fmt"

	"github.com/flavyr/flavyr/internal/models"
)

// minRecommendedTransactions is the soft floor below which derived metrics
// come with a data-quality warning rather than an error.
const minRecommendedTransactions = 30

// DeriveMetrics converts transaction records into the strategic KPI set.
// Average order value, covers and repeat rate are derived from the records;
// the remaining KPIs are filled with documented industry defaults and
// flagged as such in their provenance. Pure function of the input sequence.
func DeriveMetrics(txns []models.Transaction, minTransactions int) (map[string]models.MetricRecord, []string, error) {
	if minTransactions < 1 {
		minTransactions = 1
	}
	if len(txns) < minTransactions {
		return nil, nil, &InsufficientDataError{Records: len(txns), Minimum: minTransactions}
	}

	var warnings []string
	if len(txns) < minRecommendedTransactions {
		warnings = append(warnings, fmt.Sprintf(
			"only %d transactions - recommend at least %d for meaningful analysis", len(txns), minRecommendedTransactions))
	}

	var revenue float64
	dailyCustomers := make(map[string]map[string]struct{})
	customerDates := make(map[string]map[string]struct{})
	for _, t := range txns {
		revenue += t.Total
		day := t.Date.Format("2006-01-02")
		if dailyCustomers[day] == nil {
			dailyCustomers[day] = make(map[string]struct{})
		}
		dailyCustomers[day][t.CustomerID] = struct{}{}
		if customerDates[t.CustomerID] == nil {
			customerDates[t.CustomerID] = make(map[string]struct{})
		}
		customerDates[t.CustomerID][day] = struct{}{}
	}

	avgTicket := revenue / float64(len(txns))

	var coverSum float64
	for _, customers := range dailyCustomers {
		coverSum += float64(len(customers))
	}
	covers := coverSum / float64(len(dailyCustomers))

	repeat := 0
	for _, dates := range customerDates {
		if len(dates) >= 2 {
			repeat++
		}
	}
	repeatRate := float64(repeat) / float64(len(customerDates)) * 100

	derived := models.Provenance{Derived: true, Source: "transaction_uploads"}
	defaulted := models.Provenance{Derived: false, IsDefault: true, Source: "industry_default"}

	return map[string]models.MetricRecord{
		models.MetricAvgTicket: {
			MetricKey: models.MetricAvgTicket, Value: avgTicket,
			Unit: models.UnitCurrency, Provenance: derived,
		},
		models.MetricCovers: {
			MetricKey: models.MetricCovers, Value: covers,
			Unit: models.UnitCount, Provenance: derived,
		},
		models.MetricRepeatRate: {
			MetricKey: models.MetricRepeatRate, Value: repeatRate,
			Unit: models.UnitPercentage, Provenance: derived,
		},
		models.MetricLaborCostPct: {
			MetricKey: models.MetricLaborCostPct, Value: models.DefaultLaborCostPct,
			Unit: models.UnitPercentage, Provenance: defaulted,
		},
		models.MetricFoodCostPct: {
			MetricKey: models.MetricFoodCostPct, Value: models.DefaultFoodCostPct,
			Unit: models.UnitPercentage, Provenance: defaulted,
		},
		models.MetricTableTurnover: {
			MetricKey: models.MetricTableTurnover, Value: models.DefaultTableTurnover,
			Unit: models.UnitCount, Provenance: defaulted,
		},
		models.MetricSalesPerSqft: {
			MetricKey: models.MetricSalesPerSqft, Value: models.DefaultSalesPerSqft,
			Unit: models.UnitCurrency, Provenance: defaulted,
		},
	}, warnings, nil
}

// AggregateDaily reduces daily POS rows to one strategic KPI set: covers are
// summed over the period, every other KPI is averaged.
func AggregateDaily(rows []models.DailyPOSRow) (map[string]models.MetricRecord, error) {
	if len(rows) == 0 {
		return nil, &InsufficientDataError{Records: 0, Minimum: 1}
	}

	n := float64(len(rows))
	sums := make(map[string]float64, len(models.StrategicMetrics))
	for _, row := range rows {
		sums[models.MetricAvgTicket] += row.AvgTicket
		sums[models.MetricCovers] += row.Covers
		sums[models.MetricLaborCostPct] += row.LaborCostPct
		sums[models.MetricFoodCostPct] += row.FoodCostPct
		sums[models.MetricTableTurnover] += row.TableTurnover
		sums[models.MetricSalesPerSqft] += row.SalesPerSqft
		sums[models.MetricRepeatRate] += row.RepeatRate
	}

	reported := models.Provenance{Derived: true, Source: "daily_pos_uploads"}
	metrics := make(map[string]models.MetricRecord, len(models.StrategicMetrics))
	for _, key := range models.StrategicMetrics {
		value := sums[key] / n
		if key == models.MetricCovers {
			value = sums[key]
		}
		metrics[key] = models.MetricRecord{
			MetricKey:  key,
			Value:      value,
			Unit:       models.MetricUnits[key],
			Provenance: reported,
		}
	}
	return metrics, nil
}
