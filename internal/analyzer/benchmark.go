package analyzer

import "github.com/flavyr/flavyr/internal/models"

// ValidateBenchmarkTable enforces uniqueness of the (cuisine type, dining
// model) key. Duplicate rows fail fast at load time so matching never has to
// disambiguate.
func ValidateBenchmarkTable(rows []models.BenchmarkRow) error {
	seen := make(map[models.RestaurantCategory]struct{}, len(rows))
	for _, row := range rows {
		cat := row.Category()
		if _, dup := seen[cat]; dup {
			return &DuplicateBenchmarkError{Category: cat}
		}
		seen[cat] = struct{}{}
	}
	return nil
}

// MatchBenchmark returns the strategic benchmark row matching both category
// fields exactly, case-sensitive. No fuzzy matching, no default fallback.
func MatchBenchmark(rows []models.BenchmarkRow, cat models.RestaurantCategory) (*models.BenchmarkRow, error) {
	for i := range rows {
		if rows[i].CuisineType == cat.CuisineType && rows[i].DiningModel == cat.DiningModel {
			return &rows[i], nil
		}
	}
	return nil, &BenchmarkNotFoundError{Category: cat}
}

// MatchTransactionBenchmark returns the transaction-pattern benchmark row
// for a category, same matching rules as MatchBenchmark.
func MatchTransactionBenchmark(rows []models.TransactionBenchmarkRow, cat models.RestaurantCategory) (*models.TransactionBenchmarkRow, error) {
	for i := range rows {
		if rows[i].CuisineType == cat.CuisineType && rows[i].DiningModel == cat.DiningModel {
			return &rows[i], nil
		}
	}
	return nil, &BenchmarkNotFoundError{Category: cat}
}
