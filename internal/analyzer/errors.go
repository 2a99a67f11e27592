package analyzer

import (
	"fmt"

	"github.com/flavyr/flavyr/internal/models"
)

// InsufficientDataError is returned when too few transaction records exist
// to derive metrics from.
type InsufficientDataError struct {
	Records int
	Minimum int
}

func (e *InsufficientDataError) Error() string {
	return fmt.Sprintf("insufficient data: %d transaction(s), need at least %d", e.Records, e.Minimum)
}

// BenchmarkNotFoundError is returned when no benchmark row exists for a
// restaurant category. Fatal to the analysis run.
type BenchmarkNotFoundError struct {
	Category models.RestaurantCategory
}

func (e *BenchmarkNotFoundError) Error() string {
	return fmt.Sprintf("no benchmark data found for %s", e.Category)
}

// DuplicateBenchmarkError is returned when the benchmark table carries more
// than one row for the same category pair.
type DuplicateBenchmarkError struct {
	Category models.RestaurantCategory
}

func (e *DuplicateBenchmarkError) Error() string {
	return fmt.Sprintf("duplicate benchmark rows for %s", e.Category)
}

// ZeroBenchmarkError is returned when a metric's benchmark value is exactly
// zero. Fatal for that metric only; the run skips it and continues.
type ZeroBenchmarkError struct {
	MetricKey string
}

func (e *ZeroBenchmarkError) Error() string {
	return fmt.Sprintf("benchmark value for %s is zero, cannot compute gap", e.MetricKey)
}

// NoMetricsError is returned when score computation is attempted over an
// empty strategic gap set.
type NoMetricsError struct{}

func (e *NoMetricsError) Error() string {
	return "no strategic metrics available to score"
}
