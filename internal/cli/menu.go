package cli

import (
	"errors"
	"fmt"
	"io"

	apperrors "github.com/julianstephens/habitlog/internal/errors"
	"github.com/julianstephens/habitlog/internal/logger"
	"github.com/julianstephens/habitlog/internal/models"
	"github.com/julianstephens/habitlog/internal/prompt"
)

type MenuCmd struct{}

// Run shows the numbered menu until the user picks exit or input ends. A
// failed action is reported and the menu is shown again.
func (c *MenuCmd) Run(ctx *Context) error {
	col := ctx.Collector()

	for {
		fmt.Fprint(ctx.Out, "\n"+RenderMenu())

		action, err := col.MenuChoice()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}

		logger.Debug("Menu action selected", "action", action.Label())
		if action == models.MenuExit {
			fmt.Fprintln(ctx.Out, "\nClosing application. Goodbye!")
			return nil
		}

		if err := ctx.Dispatch(action, col); err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			fmt.Fprintln(ctx.Out, DangerStyle.Render(apperrors.Report(action.Label(), err)))
		}
	}
}

// Dispatch runs one menu action, reading its inputs from col
func (c *Context) Dispatch(action models.MenuAction, col *prompt.Collector) error {
	switch action {
	case models.MenuExit:
		return nil
	case models.MenuList:
		return c.ListHabits()
	case models.MenuInsert:
		h, err := col.Habit()
		if err != nil {
			return err
		}
		return c.InsertHabit(h)
	case models.MenuDelete:
		id, err := col.ID("Enter the ID of the habit you wish to delete: ")
		if err != nil {
			return err
		}
		return c.DeleteHabit(id)
	case models.MenuUpdate:
		id, err := col.ID("Enter the ID of the habit you wish to update: ")
		if err != nil {
			return err
		}
		column, err := col.Column()
		if err != nil {
			return err
		}
		value, err := col.Value(column)
		if err != nil {
			return err
		}
		return c.UpdateHabit(id, column, value)
	default:
		return fmt.Errorf("unknown menu action %d", action)
	}
}
