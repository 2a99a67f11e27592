package models

// CalculationStep replays one step of the arithmetic that produced a metric,
// e.g. "122 ÷ 500 × 100 = 24.4%".
type CalculationStep struct {
	Description  string `json:"description"`
	Formula      string `json:"formula"`
	Substitution string `json:"substitution"`
	Result       string `json:"result"`
}

// Transparency explains how a recommendation was derived.
type Transparency struct {
	CalculationSteps     []CalculationStep `json:"calculation_steps"`
	ThresholdExplanation string            `json:"threshold_explanation"`
	DataSource           string            `json:"data_source"`
}

// Recommendation is the assembled output unit: one business problem, its
// severity, the deal types that address it, and the supporting evidence.
// Constructed fresh on every analysis run and never mutated afterwards.
type Recommendation struct {
	BusinessProblem   string       `json:"business_problem"`
	Severity          string       `json:"severity"`
	Source            string       `json:"source"`
	MetricKey         string       `json:"metric_key"`
	ActualValue       string       `json:"actual_value"`
	BenchmarkValue    string       `json:"benchmark_value"`
	GapDisplay        string       `json:"gap"`
	GapPercent        float64      `json:"gap_percent"`
	DealTypes         []string     `json:"deal_types"`
	Rationale         string       `json:"rationale"`
	ActionableInsight string       `json:"actionable_insight"`
	ConfidenceScore   float64      `json:"confidence_score"`
	Transparency      Transparency `json:"transparency"`
}

// RecommendationSet is the assembler's ranked output across both sources.
type RecommendationSet struct {
	Strategic         []Recommendation `json:"strategic_recommendations"`
	Tactical          []Recommendation `json:"tactical_recommendations"`
	CombinedCount     int              `json:"combined_count"`
	PriorityActions   []string         `json:"priority_actions"`
	HasCriticalIssues bool             `json:"has_critical_issues"`
}
