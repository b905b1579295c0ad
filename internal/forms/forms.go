package forms

import (
	"context"
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/julianstephens/habitlog/internal/models"
	"github.com/julianstephens/habitlog/internal/validation"
)

// HabitFormModel holds the raw text entered in the add form
type HabitFormModel struct {
	Name        string
	Measurement string
	Quantity    string
	Date        string
}

// UpdateFormModel holds the raw text entered in the update form
type UpdateFormModel struct {
	Column models.Column
	Value  string
}

// NewHabitForm creates a form for adding a habit record
func NewHabitForm(fm *HabitFormModel, clock validation.Clock) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Habit Name").
				Value(&fm.Name).
				Validate(validation.RequireString),
			huh.NewInput().
				Title("Unit of Measurement").
				Placeholder("km, hours, books, movies").
				Value(&fm.Measurement).
				Validate(validation.RequireString),
			huh.NewInput().
				Title("Quantity").
				Value(&fm.Quantity).
				Validate(validation.RequireQuantity),
			huh.NewInput().
				Title("Date").
				Description("YYYY-MM-DD, DD-MM-YYYY or 'today'").
				Value(&fm.Date).
				Validate(validation.RequireDate(clock)),
		),
	).WithTheme(huh.ThemeDracula())
}

// NewUpdateForm creates a form choosing a column and its new value
func NewUpdateForm(fm *UpdateFormModel, clock validation.Clock) *huh.Form {
	options := make([]huh.Option[models.Column], 0, len(models.Columns))
	for _, c := range models.Columns {
		options = append(options, huh.NewOption(c.String(), c))
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[models.Column]().
				Title("Field to update").
				Options(options...).
				Value(&fm.Column),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("New value").
				Value(&fm.Value).
				Validate(valueValidator(fm, clock)),
		),
	).WithTheme(huh.ThemeDracula())
}

func valueValidator(fm *UpdateFormModel, clock validation.Clock) func(string) error {
	return func(s string) error {
		switch fm.Column {
		case models.ColumnName, models.ColumnMeasurement:
			return validation.RequireString(s)
		case models.ColumnQuantity:
			return validation.RequireQuantity(s)
		case models.ColumnDate:
			return validation.RequireDate(clock)(s)
		default:
			return validation.ErrInvalidColumn
		}
	}
}

// Run runs the form against the given terminal streams
func Run(ctx context.Context, form *huh.Form, in io.Reader, out io.Writer) error {
	return form.
		WithProgramOptions(tea.WithInput(in), tea.WithOutput(out)).
		RunWithContext(ctx)
}

// ToHabit converts a completed add form into a record
func (fm *HabitFormModel) ToHabit(clock validation.Clock) (models.Habit, error) {
	if !validation.ValidateString(fm.Name) {
		return models.Habit{}, fmt.Errorf("name: %w", validation.ErrEmpty)
	}
	if !validation.ValidateString(fm.Measurement) {
		return models.Habit{}, fmt.Errorf("measurement: %w", validation.ErrEmpty)
	}
	quantity, ok := validation.ParseQuantity(fm.Quantity)
	if !ok {
		return models.Habit{}, fmt.Errorf("quantity %q: %w", fm.Quantity, validation.ErrInvalidQuantity)
	}
	date, ok := validation.ParseDate(fm.Date, clock)
	if !ok {
		return models.Habit{}, fmt.Errorf("date %q: %w", fm.Date, validation.ErrInvalidDate)
	}

	return models.Habit{
		Name:        fm.Name,
		Measurement: fm.Measurement,
		Quantity:    quantity,
		Date:        date,
	}, nil
}

// ParseValue converts raw text to the typed value expected for column
func ParseValue(column models.Column, raw string, clock validation.Clock) (any, error) {
	switch column {
	case models.ColumnName, models.ColumnMeasurement:
		if !validation.ValidateString(raw) {
			return nil, fmt.Errorf("%s: %w", column, validation.ErrEmpty)
		}
		return raw, nil
	case models.ColumnQuantity:
		q, ok := validation.ParseQuantity(raw)
		if !ok {
			return nil, fmt.Errorf("quantity %q: %w", raw, validation.ErrInvalidQuantity)
		}
		return q, nil
	case models.ColumnDate:
		d, ok := validation.ParseDate(raw, clock)
		if !ok {
			return nil, fmt.Errorf("date %q: %w", raw, validation.ErrInvalidDate)
		}
		return d, nil
	default:
		return nil, validation.ErrInvalidColumn
	}
}

// TypedValue returns the typed value of a completed update form
func (fm *UpdateFormModel) TypedValue(clock validation.Clock) (any, error) {
	return ParseValue(fm.Column, fm.Value, clock)
}
