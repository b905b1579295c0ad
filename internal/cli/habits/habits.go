package habits

import (
	"context"
	"fmt"
	"strings"

	"github.com/julianstephens/habitlog/internal/cli"
	"github.com/julianstephens/habitlog/internal/constants"
	"github.com/julianstephens/habitlog/internal/forms"
	"github.com/julianstephens/habitlog/internal/models"
	"github.com/julianstephens/habitlog/internal/validation"
)

type ListCmd struct{}

func (c *ListCmd) Run(ctx *cli.Context) error {
	return ctx.ListHabits()
}

type AddCmd struct {
	Name        string `short:"n" help:"Habit name."`
	Measurement string `short:"m" help:"Unit of measurement (km, hours, books, movies)."`
	Quantity    string `short:"q" help:"Quantity, a finite number."`
	Date        string `short:"d" help:"Date as YYYY-MM-DD, DD-MM-YYYY or 'today'." default:"today"`
	Form        bool   `short:"f" help:"Fill in the record with an interactive form."`
}

func (c *AddCmd) Validate() error {
	if c.Form {
		return nil
	}

	var missing []string
	if c.Name == "" {
		missing = append(missing, "--name")
	}
	if c.Measurement == "" {
		missing = append(missing, "--measurement")
	}
	if c.Quantity == "" {
		missing = append(missing, "--quantity")
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing flags: %s (or use --form)", strings.Join(missing, ", "))
	}
	return nil
}

func (c *AddCmd) Run(ctx *cli.Context) error {
	fm := &forms.HabitFormModel{
		Name:        c.Name,
		Measurement: c.Measurement,
		Quantity:    c.Quantity,
		Date:        c.Date,
	}

	if c.Form {
		if fm.Date == "" {
			fm.Date = constants.TodayKeyword
		}
		if err := forms.Run(context.Background(), forms.NewHabitForm(fm, ctx.Clock), ctx.In, ctx.Out); err != nil {
			return err
		}
	}

	habit, err := fm.ToHabit(ctx.Clock)
	if err != nil {
		return err
	}
	return ctx.InsertHabit(habit)
}

type DeleteCmd struct {
	ID string `arg:"" help:"ID of the habit to delete."`
}

func (c *DeleteCmd) Run(ctx *cli.Context) error {
	id, err := parseID(c.ID)
	if err != nil {
		return err
	}
	return ctx.DeleteHabit(id)
}

type UpdateCmd struct {
	ID     string `arg:"" help:"ID of the habit to update."`
	Column string `arg:"" optional:"" help:"Field to update (name, measurement, quantity, date)."`
	Value  string `arg:"" optional:"" help:"New value for the field."`
	Form   bool   `short:"f" help:"Choose the field and value with an interactive form."`
}

func (c *UpdateCmd) Validate() error {
	if c.Form {
		return nil
	}
	if c.Column == "" || c.Value == "" {
		return fmt.Errorf("both COLUMN and VALUE are required (or use --form)")
	}
	return nil
}

func (c *UpdateCmd) Run(ctx *cli.Context) error {
	id, err := parseID(c.ID)
	if err != nil {
		return err
	}

	var column models.Column
	var value any
	if c.Form {
		fm := &forms.UpdateFormModel{Column: models.ColumnName}
		if err := forms.Run(context.Background(), forms.NewUpdateForm(fm, ctx.Clock), ctx.In, ctx.Out); err != nil {
			return err
		}
		column = fm.Column
		value, err = fm.TypedValue(ctx.Clock)
	} else {
		var ok bool
		column, ok = validation.ParseColumn(c.Column)
		if !ok {
			return fmt.Errorf("column %q: %w", c.Column, validation.ErrInvalidColumn)
		}
		value, err = forms.ParseValue(column, c.Value, ctx.Clock)
	}
	if err != nil {
		return err
	}

	return ctx.UpdateHabit(id, column, value)
}

type SeedCmd struct{}

func (c *SeedCmd) Run(ctx *cli.Context) error {
	inserted, err := ctx.Seed()
	if err != nil {
		return fmt.Errorf("seed failed: %w", err)
	}
	if inserted == 0 {
		fmt.Fprintln(ctx.Out, "Database already has records. Nothing seeded.")
	}
	return nil
}

func parseID(raw string) (int64, error) {
	id, reason := validation.ParseID(raw)
	if reason != validation.IDValid {
		return 0, fmt.Errorf("id %q: %s", raw, reason.Message())
	}
	return id, nil
}
