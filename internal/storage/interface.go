package storage

import (
	"errors"

	"github.com/julianstephens/habitlog/internal/models"
)

var (
	// ErrNoHabits is returned by ListHabits when the table holds no rows
	ErrNoHabits = errors.New("no records found")
	// ErrHabitNotFound is returned when a lookup by id matches nothing
	ErrHabitNotFound = errors.New("habit not found")
	// ErrInvalidColumn is returned for a column outside the updatable set
	ErrInvalidColumn = errors.New("invalid column")
	// ErrInvalidValue is returned when a value does not fit its column
	ErrInvalidValue = errors.New("invalid value")
)

type Provider interface {
	// Lifecycle
	Init() error
	Load() error
	Close() error
	EnsureSchema() error

	// Habits
	AddHabit(models.Habit) (int64, error)
	GetHabit(id int64) (models.Habit, error)
	ListHabits() ([]models.Habit, error)
	CountHabits() (int, error)
	// DeleteHabit returns the number of rows removed; 0 means no such id.
	DeleteHabit(id int64) (int64, error)
	// UpdateHabitField sets a single column on the row with the given id and
	// returns the number of rows changed. value must be a string for name and
	// measurement, a float64 for quantity and a time.Time for date.
	UpdateHabitField(id int64, column models.Column, value any) (int64, error)
	SeedIfEmpty(seeder Seeder) (int, error)

	// Utils
	GetConfigPath() string
}
