package storage

import (
	"math"
	"math/rand/v2"

	"github.com/julianstephens/habitlog/internal/constants"
	"github.com/julianstephens/habitlog/internal/models"
	"github.com/julianstephens/habitlog/internal/validation"
)

// SeedHabit is a catalogue entry used to generate sample data
type SeedHabit struct {
	Name        string
	Measurement string
}

// SeedCatalogue is the fixed set of habits sample rows are drawn from
var SeedCatalogue = []SeedHabit{
	{Name: "Running", Measurement: "km"},
	{Name: "Reading", Measurement: "pages"},
	{Name: "Coding", Measurement: "hours"},
	{Name: "Meditation", Measurement: "minutes"},
}

// Seeder generates synthetic habit records from an injected random source
// and clock.
type Seeder struct {
	Rand  *rand.Rand
	Clock validation.Clock
	Count int
}

// NewSeeder returns a Seeder producing constants.SeedCount records
func NewSeeder(r *rand.Rand, clock validation.Clock) Seeder {
	return Seeder{Rand: r, Clock: clock, Count: constants.SeedCount}
}

// DefaultSeeder uses the system clock and a randomly seeded generator
func DefaultSeeder() Seeder {
	return NewSeeder(rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())), validation.SystemClock{})
}

// Generate builds Count records. Quantities fall in
// [SeedMinQuantity, SeedMaxQuantity] with two decimals and dates fall within
// the past SeedMaxDaysBack days, today included.
func (s Seeder) Generate() []models.Habit {
	today := validation.Today(s.Clock)
	span := constants.SeedMaxQuantity - constants.SeedMinQuantity

	habits := make([]models.Habit, 0, s.Count)
	for i := 0; i < s.Count; i++ {
		pick := SeedCatalogue[s.Rand.IntN(len(SeedCatalogue))]
		quantity := math.Round((s.Rand.Float64()*span+constants.SeedMinQuantity)*100) / 100
		habits = append(habits, models.Habit{
			Name:        pick.Name,
			Measurement: pick.Measurement,
			Quantity:    quantity,
			Date:        today.AddDate(0, 0, -s.Rand.IntN(constants.SeedMaxDaysBack)),
		})
	}
	return habits
}
