package factories

import (
	"fmt"
	"math/rand"

	"github.com/flavyr/flavyr/internal/models"
	"github.com/jaswdr/faker"
	"github.com/lucsky/cuid"
)

// TransactionFactory generates plausible POS transaction records for demos
// and tests. Seeded, so the same config yields the same dataset.
type TransactionFactory struct {
	fake faker.Faker
	rng  *rand.Rand

	customers []string
	menu      []menuEntry
}

type menuEntry struct {
	name     string
	basePrice float64
}

var sampleMenu = []menuEntry{
	{"Margherita Pizza", 12.50},
	{"Pepperoni Pizza", 14.00},
	{"Caesar Salad", 9.50},
	{"Spaghetti Carbonara", 13.50},
	{"Grilled Salmon", 19.00},
	{"Classic Cheeseburger", 11.00},
	{"Chicken Tikka Masala", 15.00},
	{"Tiramisu", 6.50},
	{"House Red (glass)", 7.00},
	{"Craft Lemonade", 4.50},
}

func NewTransactionFactory(cfg *models.Config) *TransactionFactory {
	seed := cfg.Seed
	if seed == 0 {
		seed = 42
	}
	rng := rand.New(rand.NewSource(seed))

	customers := make([]string, cfg.SampleCustomers)
	for i := range customers {
		customers[i] = cuid.Slug()
	}

	return &TransactionFactory{
		fake:      faker.NewWithSeed(rand.NewSource(seed)),
		rng:       rng,
		customers: customers,
		menu:      sampleMenu,
	}
}

// CreateTransactions produces SamplePerDay transactions for each of
// SampleDays consecutive days starting at SampleStartDate. Weekends see
// roughly a quarter more traffic and slightly larger tickets; Tuesdays run
// light, so generated datasets carry a findable slow day.
func (tf *TransactionFactory) CreateTransactions(cfg *models.Config) []models.Transaction {
	var txns []models.Transaction
	for day := 0; day < cfg.SampleDays; day++ {
		date := cfg.SampleStartDate.AddDate(0, 0, day)
		weekday := date.Weekday().String()

		perDay := cfg.SamplePerDay
		switch {
		case models.WeekendDays[weekday]:
			perDay += perDay / 4
		case weekday == "Tuesday":
			perDay -= perDay / 3
		}

		for i := 0; i < perDay; i++ {
			item := tf.menu[tf.rng.Intn(len(tf.menu))]
			total := item.basePrice * tf.fake.Float64(2, 90, 130) / 100
			if models.WeekendDays[weekday] {
				total *= 1.1
			}
			txns = append(txns, models.Transaction{
				ID:         cuid.New(),
				Date:       date,
				Total:      models.Round2(total),
				CustomerID: tf.pickCustomer(),
				ItemName:   item.name,
				DayOfWeek:  weekday,
			})
		}
	}
	return txns
}

// pickCustomer skews toward a loyal core so repeat-rate analysis has signal.
func (tf *TransactionFactory) pickCustomer() string {
	if len(tf.customers) == 0 {
		return fmt.Sprintf("walk-in-%d", tf.rng.Intn(1000))
	}
	if tf.rng.Float64() < 0.6 {
		return tf.customers[tf.rng.Intn(len(tf.customers)/3+1)]
	}
	return tf.customers[tf.rng.Intn(len(tf.customers))]
}
