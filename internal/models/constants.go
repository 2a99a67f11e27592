package models

const (
	SeverityCritical = "critical"
	SeverityHigh     = "high"
	SeverityMedium   = "medium"
	SeverityGood     = "good"

	SourceStrategic   = "strategic"
	SourceTransaction = "transaction"

	UnitCurrency   = "currency"
	UnitPercentage = "percentage"
	UnitCount      = "count"

	MetricAvgTicket     = "avg_ticket"
	MetricCovers        = "covers"
	MetricLaborCostPct  = "labor_cost_pct"
	MetricFoodCostPct   = "food_cost_pct"
	MetricTableTurnover = "table_turnover"
	MetricSalesPerSqft  = "sales_per_sqft"
	MetricRepeatRate    = "expected_customer_repeat_rate"

	MetricLoyaltyRate     = "loyalty_rate"
	MetricAOV             = "aov"
	MetricSlowestDay      = "slowest_day"
	MetricWeekendUplift   = "weekend_uplift"
	MetricTopItemShare    = "top_item_concentration"
	MetricBottomItemCount = "bottom_items_count"

	ProblemQuantityOfSales = "Increase Quantity of Sales"
	ProblemAOV             = "Boost Average Order Value (AOV)"
	ProblemLoyalty         = "Foster Customer Loyalty"
	ProblemSlowDays        = "Improve Slow Days"
	ProblemProfitMargins   = "Enhance Profit Margins"
	ProblemInventory       = "Inventory Management"
	ProblemNewCustomers    = "Attract New Customers"
)

// StrategicMetrics fixes the iteration order for the seven tracked KPIs.
var StrategicMetrics = []string{
	MetricAvgTicket,
	MetricCovers,
	MetricLaborCostPct,
	MetricFoodCostPct,
	MetricTableTurnover,
	MetricSalesPerSqft,
	MetricRepeatRate,
}

var MetricNames = map[string]string{
	MetricAvgTicket:       "Average Ticket Size",
	MetricCovers:          "Total Covers",
	MetricLaborCostPct:    "Labor Cost %",
	MetricFoodCostPct:     "Food Cost %",
	MetricTableTurnover:   "Table Turnover",
	MetricSalesPerSqft:    "Sales per Sq Ft",
	MetricRepeatRate:      "Customer Repeat Rate",
	MetricLoyaltyRate:     "Customer Loyalty Rate",
	MetricAOV:             "Average Order Value",
	MetricSlowestDay:      "Slowest Day Drop",
	MetricWeekendUplift:   "Weekend Uplift",
	MetricTopItemShare:    "Top Item Concentration",
	MetricBottomItemCount: "Low Performing Items",
}

var MetricUnits = map[string]string{
	MetricAvgTicket:       UnitCurrency,
	MetricCovers:          UnitCount,
	MetricLaborCostPct:    UnitPercentage,
	MetricFoodCostPct:     UnitPercentage,
	MetricTableTurnover:   UnitCount,
	MetricSalesPerSqft:    UnitCurrency,
	MetricRepeatRate:      UnitPercentage,
	MetricLoyaltyRate:     UnitPercentage,
	MetricAOV:             UnitCurrency,
	MetricSlowestDay:      UnitPercentage,
	MetricWeekendUplift:   UnitPercentage,
	MetricTopItemShare:    UnitPercentage,
	MetricBottomItemCount: UnitCount,
}

// LowerIsBetter marks the cost metrics whose gap interpretation is inverted.
var LowerIsBetter = map[string]bool{
	MetricLaborCostPct: true,
	MetricFoodCostPct:  true,
}

// MetricToProblem maps each metric to its primary business problem.
var MetricToProblem = map[string]string{
	MetricCovers:          ProblemQuantityOfSales,
	MetricAvgTicket:       ProblemAOV,
	MetricRepeatRate:      ProblemLoyalty,
	MetricSalesPerSqft:    ProblemSlowDays,
	MetricLaborCostPct:    ProblemProfitMargins,
	MetricFoodCostPct:     ProblemProfitMargins,
	MetricTableTurnover:   ProblemQuantityOfSales,
	MetricLoyaltyRate:     ProblemLoyalty,
	MetricAOV:             ProblemAOV,
	MetricSlowestDay:      ProblemSlowDays,
	MetricWeekendUplift:   ProblemSlowDays,
	MetricTopItemShare:    ProblemInventory,
	MetricBottomItemCount: ProblemInventory,
}

var DayNames = []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}

var WeekendDays = map[string]bool{"Saturday": true, "Sunday": true}

// SeverityRank orders severity labels for sorting, most severe first.
var SeverityRank = map[string]int{
	SeverityCritical: 0,
	SeverityHigh:     1,
	SeverityMedium:   2,
	SeverityGood:     3,
}

// Industry defaults for strategic KPIs that cannot be derived from
// transaction data alone.
const (
	DefaultLaborCostPct  = 30.0
	DefaultFoodCostPct   = 30.0
	DefaultTableTurnover = 2.0
	DefaultSalesPerSqft  = 100.0
)
