package sqlite

import (
	"database/sql"
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/julianstephens/habitlog/internal/constants"
	"github.com/julianstephens/habitlog/internal/logger"
	"github.com/julianstephens/habitlog/internal/models"
	"github.com/julianstephens/habitlog/internal/storage"
)

const (
	insertHabitSQL = `
		INSERT INTO habit (name, measurement, quantity, habit_date)
		VALUES (?, ?, ?, ?)`

	selectHabitsSQL = `
		SELECT id_habit, name, measurement, quantity, habit_date
		FROM habit ORDER BY id_habit`

	selectHabitSQL = `
		SELECT id_habit, name, measurement, quantity, habit_date
		FROM habit WHERE id_habit = ?`

	deleteHabitSQL = `DELETE FROM habit WHERE id_habit = ?`

	updateNameSQL        = `UPDATE habit SET name = ? WHERE id_habit = ?`
	updateMeasurementSQL = `UPDATE habit SET measurement = ? WHERE id_habit = ?`
	updateQuantitySQL    = `UPDATE habit SET quantity = ? WHERE id_habit = ?`
	updateDateSQL        = `UPDATE habit SET habit_date = ? WHERE id_habit = ?`
)

type rowScanner interface {
	Scan(dest ...any) error
}

func scanHabit(row rowScanner) (models.Habit, error) {
	var h models.Habit
	var day string

	if err := row.Scan(&h.ID, &h.Name, &h.Measurement, &h.Quantity, &day); err != nil {
		return models.Habit{}, err
	}

	date, err := time.Parse(constants.DateFormat, day)
	if err != nil {
		return models.Habit{}, fmt.Errorf("failed to parse habit_date for habit %d: %w", h.ID, err)
	}
	h.Date = date

	return h, nil
}

func checkText(field, value string) error {
	if strings.TrimSpace(value) == "" {
		return fmt.Errorf("%w: %s cannot be empty", storage.ErrInvalidValue, field)
	}
	return nil
}

func checkQuantity(q float64) error {
	if math.IsNaN(q) || math.IsInf(q, 0) {
		return fmt.Errorf("%w: quantity must be finite", storage.ErrInvalidValue)
	}
	return nil
}

func checkDate(d time.Time) error {
	if d.IsZero() {
		return fmt.Errorf("%w: date is required", storage.ErrInvalidValue)
	}
	return nil
}

func (s *Store) AddHabit(habit models.Habit) (int64, error) {
	if err := errors.Join(
		checkText("name", habit.Name),
		checkText("measurement", habit.Measurement),
		checkQuantity(habit.Quantity),
		checkDate(habit.Date),
	); err != nil {
		return 0, err
	}

	result, err := s.db.Exec(insertHabitSQL,
		habit.Name, habit.Measurement, habit.Quantity, habit.Date.Format(constants.DateFormat))
	if err != nil {
		return 0, fmt.Errorf("failed to insert habit: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to read inserted habit id: %w", err)
	}

	logger.Debug("Inserted habit", "id", id, "name", habit.Name)
	return id, nil
}

func (s *Store) GetHabit(id int64) (models.Habit, error) {
	h, err := scanHabit(s.db.QueryRow(selectHabitSQL, id))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Habit{}, fmt.Errorf("%w: id %d", storage.ErrHabitNotFound, id)
	}
	if err != nil {
		return models.Habit{}, fmt.Errorf("failed to get habit %d: %w", id, err)
	}
	return h, nil
}

// ListHabits returns every habit ordered by id, or storage.ErrNoHabits when
// the table is empty.
func (s *Store) ListHabits() ([]models.Habit, error) {
	rows, err := s.db.Query(selectHabitsSQL)
	if err != nil {
		return nil, fmt.Errorf("failed to query habits: %w", err)
	}
	defer rows.Close()

	var habits []models.Habit
	for rows.Next() {
		h, err := scanHabit(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan habit: %w", err)
		}
		habits = append(habits, h)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate habits: %w", err)
	}

	if len(habits) == 0 {
		return nil, storage.ErrNoHabits
	}
	return habits, nil
}

func (s *Store) CountHabits() (int, error) {
	var count int
	if err := s.db.QueryRow("SELECT COUNT(*) FROM habit").Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count habits: %w", err)
	}
	return count, nil
}

func (s *Store) DeleteHabit(id int64) (int64, error) {
	result, err := s.db.Exec(deleteHabitSQL, id)
	if err != nil {
		return 0, fmt.Errorf("failed to delete habit %d: %w", id, err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to read affected rows: %w", err)
	}

	logger.Debug("Deleted habit", "id", id, "rows", rows)
	return rows, nil
}

// updateStatement resolves a column and its typed value to one of the fixed
// update statements. Column names never reach the SQL text from input.
func updateStatement(column models.Column, value any) (string, any, error) {
	switch column {
	case models.ColumnName, models.ColumnMeasurement:
		text, ok := value.(string)
		if !ok {
			return "", nil, fmt.Errorf("%w: %s expects text, got %T", storage.ErrInvalidValue, column, value)
		}
		if err := checkText(column.String(), text); err != nil {
			return "", nil, err
		}
		if column == models.ColumnName {
			return updateNameSQL, text, nil
		}
		return updateMeasurementSQL, text, nil
	case models.ColumnQuantity:
		q, ok := value.(float64)
		if !ok {
			return "", nil, fmt.Errorf("%w: quantity expects a number, got %T", storage.ErrInvalidValue, value)
		}
		if err := checkQuantity(q); err != nil {
			return "", nil, err
		}
		return updateQuantitySQL, q, nil
	case models.ColumnDate:
		d, ok := value.(time.Time)
		if !ok {
			return "", nil, fmt.Errorf("%w: date expects a date, got %T", storage.ErrInvalidValue, value)
		}
		if err := checkDate(d); err != nil {
			return "", nil, err
		}
		return updateDateSQL, d.Format(constants.DateFormat), nil
	default:
		return "", nil, fmt.Errorf("%w: %s", storage.ErrInvalidColumn, column)
	}
}

func (s *Store) UpdateHabitField(id int64, column models.Column, value any) (int64, error) {
	query, arg, err := updateStatement(column, value)
	if err != nil {
		return 0, err
	}

	result, err := s.db.Exec(query, arg, id)
	if err != nil {
		return 0, fmt.Errorf("failed to update %s of habit %d: %w", column, id, err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to read affected rows: %w", err)
	}

	logger.Debug("Updated habit", "id", id, "column", column, "rows", rows)
	return rows, nil
}

// SeedIfEmpty inserts the seeder's records in one transaction when the habit
// table has no rows. It returns the number of inserted rows.
func (s *Store) SeedIfEmpty(seeder storage.Seeder) (int, error) {
	count, err := s.CountHabits()
	if err != nil {
		return 0, err
	}
	if count > 0 {
		logger.Debug("Skipping seed, table is not empty", "rows", count)
		return 0, nil
	}

	tx, err := s.db.Begin()
	if err != nil {
		return 0, fmt.Errorf("failed to begin seed transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.Prepare(insertHabitSQL)
	if err != nil {
		return 0, fmt.Errorf("failed to prepare seed insert: %w", err)
	}
	defer stmt.Close()

	habits := seeder.Generate()
	for _, h := range habits {
		if _, err := stmt.Exec(h.Name, h.Measurement, h.Quantity, h.Date.Format(constants.DateFormat)); err != nil {
			return 0, fmt.Errorf("failed to insert seed habit: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit seed data: %w", err)
	}

	logger.Info("Seeded empty database", "rows", len(habits))
	return len(habits), nil
}
