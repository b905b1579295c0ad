package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/julianstephens/habitlog/internal/backup"
	"github.com/julianstephens/habitlog/internal/logger"
	"github.com/julianstephens/habitlog/internal/models"
	"github.com/julianstephens/habitlog/internal/prompt"
	"github.com/julianstephens/habitlog/internal/storage"
	"github.com/julianstephens/habitlog/internal/validation"
)

type Context struct {
	Store  storage.Provider
	Clock  validation.Clock
	Seeder storage.Seeder
	In     io.Reader
	Out    io.Writer

	// SkipSeed leaves an empty database empty
	SkipSeed bool
}

// Collector returns a line prompt bound to the context's input and output
func (c *Context) Collector() *prompt.Collector {
	return prompt.New(c.In, c.Out, c.Clock)
}

// PerformAutomaticBackup creates an automatic backup and silently handles errors
func (c *Context) PerformAutomaticBackup() {
	mgr := backup.NewManager(c.Store.GetConfigPath())
	if _, err := mgr.CreateBackup(); err != nil {
		logger.Warn("Automatic backup failed", "error", err)
	}
}

// ListHabits prints every habit, or a notice when there are none
func (c *Context) ListHabits() error {
	habits, err := c.Store.ListHabits()
	if errors.Is(err, storage.ErrNoHabits) {
		fmt.Fprintln(c.Out, "No records found.")
		return nil
	}
	if err != nil {
		return err
	}

	fmt.Fprintln(c.Out, RenderHabits(habits))
	return nil
}

func (c *Context) InsertHabit(h models.Habit) error {
	id, err := c.Store.AddHabit(h)
	if err != nil {
		return err
	}

	logger.Info("Habit inserted", "id", id, "name", h.Name)
	fmt.Fprintln(c.Out, successStyle.Render(fmt.Sprintf("Record inserted successfully! (id %d)", id)))
	return nil
}

// DeleteHabit removes the habit with the given id. A missing id is reported
// to the user rather than returned.
func (c *Context) DeleteHabit(id int64) error {
	c.PerformAutomaticBackup()

	rows, err := c.Store.DeleteHabit(id)
	if err != nil {
		return err
	}
	if rows == 0 {
		fmt.Fprintln(c.Out, warningStyle.Render("Couldn't find a habit with that id."))
		return nil
	}

	logger.Info("Habit deleted", "id", id)
	fmt.Fprintln(c.Out, successStyle.Render(fmt.Sprintf("%d row was affected.", rows)))
	return nil
}

// UpdateHabit sets one column of the habit with the given id
func (c *Context) UpdateHabit(id int64, column models.Column, value any) error {
	rows, err := c.Store.UpdateHabitField(id, column, value)
	if err != nil {
		return err
	}
	if rows == 0 {
		fmt.Fprintln(c.Out, warningStyle.Render("Couldn't find a habit with that id."))
		return nil
	}

	logger.Info("Habit updated", "id", id, "column", column.String())
	fmt.Fprintln(c.Out, successStyle.Render("Record updated successfully!"))
	return nil
}

// Seed fills an empty store with sample habits
func (c *Context) Seed() (int, error) {
	inserted, err := c.Store.SeedIfEmpty(c.Seeder)
	if err != nil {
		return 0, err
	}
	if inserted > 0 {
		logger.Info("Seeded empty store", "rows", inserted)
		fmt.Fprintf(c.Out, "Database was empty. Seeded %d sample records.\n", inserted)
	}
	return inserted, nil
}
