package factories

import (
	"testing"
	"time"

	"github.com/flavyr/flavyr/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func genConfig(seed int64) *models.Config {
	return &models.Config{
		Seed:            seed,
		SampleDays:      14,
		SamplePerDay:    20,
		SampleCustomers: 30,
		SampleStartDate: time.Date(2026, 7, 6, 0, 0, 0, 0, time.UTC),
	}
}

func TestCreateTransactions(t *testing.T) {
	t.Parallel()

	cfg := genConfig(7)
	txns := NewTransactionFactory(cfg).CreateTransactions(cfg)
	require.NotEmpty(t, txns)

	seen := make(map[string]struct{})
	for _, txn := range txns {
		assert.NotEmpty(t, txn.ID)
		assert.NotEmpty(t, txn.CustomerID)
		assert.NotEmpty(t, txn.ItemName)
		assert.Positive(t, txn.Total)
		assert.Equal(t, txn.Date.Weekday().String(), txn.DayOfWeek)
		assert.False(t, txn.Date.Before(cfg.SampleStartDate))
		seen[txn.ID] = struct{}{}
	}
	assert.Len(t, seen, len(txns))

	// Day counts carry the built-in traffic shape: weekends busier than the
	// baseline, Tuesdays lighter.
	byDay := make(map[string]int)
	for _, txn := range txns {
		byDay[txn.DayOfWeek]++
	}
	assert.Greater(t, byDay["Saturday"], byDay["Tuesday"])
}

func TestCreateTransactionsDeterministic(t *testing.T) {
	t.Parallel()

	cfg := genConfig(42)
	first := NewTransactionFactory(cfg).CreateTransactions(cfg)

	cfg2 := genConfig(42)
	second := NewTransactionFactory(cfg2).CreateTransactions(cfg2)

	require.Equal(t, len(first), len(second))
	for i := range first {
		assert.Equal(t, first[i].Total, second[i].Total)
		assert.Equal(t, first[i].ItemName, second[i].ItemName)
		assert.Equal(t, first[i].Date, second[i].Date)
	}
}
