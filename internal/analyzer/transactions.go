package analyzer

import (
	"fmt"
	"sort"

	"github.com/flavyr/flavyr/internal/models"
)

// AnalyzeTransactions computes the tactical insight set from raw transaction
// records: slowest days, loyalty, AOV patterns and item rankings.
func AnalyzeTransactions(txns []models.Transaction) *models.TransactionInsights {
	ins := &models.TransactionInsights{AOVByDay: make(map[string]float64)}

	type dayAgg struct {
		count   int
		revenue float64
	}
	byDay := make(map[string]*dayAgg)
	purchases := make(map[string]int)
	type itemAgg struct {
		revenue  float64
		quantity int
	}
	byItem := make(map[string]*itemAgg)

	var revenue float64
	for _, t := range txns {
		revenue += t.Total
		if byDay[t.DayOfWeek] == nil {
			byDay[t.DayOfWeek] = &dayAgg{}
		}
		byDay[t.DayOfWeek].count++
		byDay[t.DayOfWeek].revenue += t.Total
		purchases[t.CustomerID]++
		if byItem[t.ItemName] == nil {
			byItem[t.ItemName] = &itemAgg{}
		}
		byItem[t.ItemName].revenue += t.Total
		byItem[t.ItemName].quantity++
	}

	// Day-of-week stats in canonical order, observed days only.
	for _, day := range models.DayNames {
		agg, ok := byDay[day]
		if !ok {
			continue
		}
		aov := agg.revenue / float64(agg.count)
		ins.DayStats = append(ins.DayStats, models.DayStat{
			Day: day, Count: agg.count, Revenue: models.Round2(agg.revenue), AOV: models.Round2(aov),
		})
		ins.AOVByDay[day] = models.Round2(aov)
	}

	for _, stat := range ins.DayStats {
		if ins.SlowestDayByCount == "" || stat.Count < ins.SlowestDayCount {
			ins.SlowestDayByCount = stat.Day
			ins.SlowestDayCount = stat.Count
		}
		if ins.SlowestDayByRevenue == "" || stat.Revenue < ins.SlowestDayRevenue {
			ins.SlowestDayByRevenue = stat.Day
			ins.SlowestDayRevenue = stat.Revenue
		}
	}
	if len(ins.DayStats) > 0 {
		total := 0
		for _, stat := range ins.DayStats {
			total += stat.Count
		}
		ins.AverageDailyCount = float64(total) / float64(len(ins.DayStats))
	}

	// Customer loyalty: repeat means two or more purchases.
	ins.TotalCustomers = len(purchases)
	for _, n := range purchases {
		if n > 1 {
			ins.RepeatCustomers++
		}
	}
	ins.NewCustomers = ins.TotalCustomers - ins.RepeatCustomers
	if ins.TotalCustomers > 0 {
		ins.LoyaltyRate = models.Round2(float64(ins.RepeatCustomers) / float64(ins.TotalCustomers) * 100)
	}

	if len(txns) > 0 {
		ins.AOVOverall = models.Round2(revenue / float64(len(txns)))
	}

	var weekendSum, weekdaySum float64
	var weekendN, weekdayN int
	for day, aov := range ins.AOVByDay {
		if models.WeekendDays[day] {
			weekendSum += aov
			weekendN++
		} else {
			weekdaySum += aov
			weekdayN++
		}
	}
	if weekendN > 0 {
		ins.WeekendAOV = models.Round2(weekendSum / float64(weekendN))
	}
	if weekdayN > 0 {
		ins.WeekdayAOV = models.Round2(weekdaySum / float64(weekdayN))
	}
	if ins.WeekdayAOV > 0 {
		ins.WeekendUpliftPct = models.Round2((ins.WeekendAOV - ins.WeekdayAOV) / ins.WeekdayAOV * 100)
	}

	// Item rankings.
	ins.TotalRevenue = models.Round2(revenue)
	ins.ItemRevenueShares = make(map[string]float64, len(byItem))
	items := make([]models.ItemStat, 0, len(byItem))
	for name, agg := range byItem {
		items = append(items, models.ItemStat{Item: name, Revenue: models.Round2(agg.revenue), Quantity: agg.quantity})
		if revenue > 0 {
			ins.ItemRevenueShares[name] = models.Round2(agg.revenue / revenue * 100)
		}
	}
	sort.Slice(items, func(i, j int) bool {
		if items[i].Revenue != items[j].Revenue {
			return items[i].Revenue > items[j].Revenue
		}
		return items[i].Item < items[j].Item
	})
	ins.TopItemsByRevenue = topN(items, 3)

	byQuantity := append([]models.ItemStat(nil), items...)
	sort.Slice(byQuantity, func(i, j int) bool {
		if byQuantity[i].Quantity != byQuantity[j].Quantity {
			return byQuantity[i].Quantity > byQuantity[j].Quantity
		}
		return byQuantity[i].Item < byQuantity[j].Item
	})
	ins.TopItemsByQuantity = topN(byQuantity, 3)

	ascending := append([]models.ItemStat(nil), items...)
	for i, j := 0, len(ascending)-1; i < j; i, j = i+1, j-1 {
		ascending[i], ascending[j] = ascending[j], ascending[i]
	}
	ins.BottomItems = topN(ascending, 3)

	ins.Insights = dayInsights(ins)
	return ins
}

func topN(items []models.ItemStat, n int) []models.ItemStat {
	if len(items) < n {
		n = len(items)
	}
	return append([]models.ItemStat(nil), items[:n]...)
}

// dayInsights produces the day-specific tactical insight sentences.
func dayInsights(ins *models.TransactionInsights) []string {
	var insights []string

	if ins.SlowestDayByCount != "" {
		insights = append(insights, fmt.Sprintf(
			"Run midweek promotion on %s to boost traffic (currently lowest at %d transactions)",
			ins.SlowestDayByCount, ins.SlowestDayCount))
	}

	if ins.SlowestDayByRevenue != "" && ins.SlowestDayByRevenue != ins.SlowestDayByCount {
		insights = append(insights, fmt.Sprintf(
			"Focus on upselling on %s - has transactions but low revenue ($%.2f)",
			ins.SlowestDayByRevenue, ins.SlowestDayRevenue))
	}

	if len(ins.AOVByDay) > 0 {
		lowDay, highDay := "", ""
		for _, day := range models.DayNames {
			aov, ok := ins.AOVByDay[day]
			if !ok {
				continue
			}
			if lowDay == "" || aov < ins.AOVByDay[lowDay] {
				lowDay = day
			}
			if highDay == "" || aov > ins.AOVByDay[highDay] {
				highDay = day
			}
		}
		insights = append(insights, fmt.Sprintf(
			"Implement bundling strategy on %s to increase AOV (currently $%.2f vs $%.2f on %s)",
			lowDay, ins.AOVByDay[lowDay], ins.AOVByDay[highDay], highDay))
	}

	if len(ins.BottomItems) > 0 {
		insights = append(insights, fmt.Sprintf(
			"Consider removing or reformulating '%s' from menu (lowest revenue item at $%.2f)",
			ins.BottomItems[0].Item, ins.BottomItems[0].Revenue))
	}

	if len(ins.TopItemsByRevenue) > 0 {
		insights = append(insights, fmt.Sprintf(
			"Feature '%s' prominently - top revenue driver at $%.2f",
			ins.TopItemsByRevenue[0].Item, ins.TopItemsByRevenue[0].Revenue))
	}

	if ins.TotalCustomers > 0 && ins.LoyaltyRate < 30 {
		insights = append(insights, fmt.Sprintf(
			"Launch loyalty program - only %.1f%% of customers return (%d of %d customers)",
			ins.LoyaltyRate, ins.RepeatCustomers, ins.TotalCustomers))
	}

	return insights
}

// EvaluateTransactionPerformance compares the tactical insights against the
// transaction-pattern benchmarks and returns one classified finding per
// tracked transaction metric.
func EvaluateTransactionPerformance(ins *models.TransactionInsights, bench *models.TransactionBenchmarkRow, thresholds models.Thresholds) []models.Finding {
	var findings []models.Finding

	addFinding := func(metricKey string, actual, benchmark float64, insight string) {
		gap, err := CalculateGap(metricKey, actual, benchmark)
		if err != nil {
			// Zero transaction benchmark: a data-quality issue in the
			// reference table; skip the metric rather than abort.
			return
		}
		gap.Severity = ClassifySeverity(gap, thresholds[metricKey])
		findings = append(findings, models.Finding{Gap: gap, Source: models.SourceTransaction, Insight: insight})
	}

	addFinding(models.MetricLoyaltyRate, ins.LoyaltyRate, bench.LoyaltyRate, fmt.Sprintf(
		"Launch loyalty program - only %.1f%% of customers return (%d of %d customers)",
		ins.LoyaltyRate, ins.RepeatCustomers, ins.TotalCustomers))

	addFinding(models.MetricAOV, ins.AOVOverall, bench.OverallAOV(), fmt.Sprintf(
		"Increase average order value through upsells and bundles (currently $%.2f vs $%.2f benchmark)",
		ins.AOVOverall, bench.OverallAOV()))

	// Slowest-day severity compares the observed drop from the daily average
	// against the expected drop, not the raw day counts.
	if ins.AverageDailyCount > 0 {
		actualDrop := (ins.AverageDailyCount - float64(ins.SlowestDayCount)) / ins.AverageDailyCount * 100
		addFinding(models.MetricSlowestDay, actualDrop, bench.SlowDayDropPct, fmt.Sprintf(
			"Run promotion on %s - traffic drops %.1f%% below the daily average (industry expects %.0f%%)",
			ins.SlowestDayByCount, actualDrop, bench.SlowDayDropPct))
	}

	if ins.WeekdayAOV > 0 {
		addFinding(models.MetricWeekendUplift, ins.WeekendUpliftPct, bench.AOVVariationPct, fmt.Sprintf(
			"Boost weekend spending - uplift is %.1f%% vs the expected %.1f%%",
			ins.WeekendUpliftPct, bench.AOVVariationPct))
	}

	if len(ins.TopItemsByRevenue) > 0 && ins.TotalRevenue > 0 {
		share := ins.ItemRevenueShares[ins.TopItemsByRevenue[0].Item]
		addFinding(models.MetricTopItemShare, share, bench.TopItemSharePct, fmt.Sprintf(
			"Diversify menu - '%s' alone drives %.1f%% of revenue",
			ins.TopItemsByRevenue[0].Item, share))

		poor := 0
		for _, itemShare := range ins.ItemRevenueShares {
			if itemShare < bench.BottomItemThresholdPct {
				poor++
			}
		}
		addFinding(models.MetricBottomItemCount, float64(poor), 3, fmt.Sprintf(
			"Prune or rework %d menu item(s) generating under %.1f%% of revenue each",
			poor, bench.BottomItemThresholdPct))
	}

	return findings
}
