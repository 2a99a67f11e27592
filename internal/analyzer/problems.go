package analyzer

import "github.com/flavyr/flavyr/internal/models"

// MapToProblem translates a metric key into the business problem domain used
// by the deal catalog. The bool reports whether a mapping exists; unmapped
// metrics carry no recommendation and are surfaced as report warnings.
func MapToProblem(metricKey string) (string, bool) {
	problem, ok := models.MetricToProblem[metricKey]
	return problem, ok
}
