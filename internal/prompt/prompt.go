package prompt

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/julianstephens/habitlog/internal/models"
	"github.com/julianstephens/habitlog/internal/validation"
)

// Collector reads console lines and re-prompts until each value passes its
// validator. There is no retry limit; end of input is returned as io.EOF.
type Collector struct {
	in    *bufio.Reader
	out   io.Writer
	clock validation.Clock
}

func New(in io.Reader, out io.Writer, clock validation.Clock) *Collector {
	return &Collector{
		in:    bufio.NewReader(in),
		out:   out,
		clock: clock,
	}
}

// Out returns the writer prompts are printed to
func (c *Collector) Out() io.Writer {
	return c.out
}

// ReadLine reads one line without its line terminator
func (c *Collector) ReadLine() (string, error) {
	line, err := c.in.ReadString('\n')
	if err != nil {
		if err == io.EOF && line != "" {
			return strings.TrimRight(line, "\r\n"), nil
		}
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// collect prints prompt and reads lines until parse accepts one. parse
// returns the value, or a non-empty message to print before reading again.
func collect[T any](c *Collector, prompt string, parse func(string) (T, string)) (T, error) {
	fmt.Fprint(c.out, prompt)
	for {
		line, err := c.ReadLine()
		if err != nil {
			var zero T
			return zero, err
		}
		v, reject := parse(line)
		if reject == "" {
			return v, nil
		}
		fmt.Fprint(c.out, reject)
	}
}

func (c *Collector) Name() (string, error) {
	return collect(c, "Enter the habit name: ", func(s string) (string, string) {
		if !validation.ValidateString(s) {
			return "", "Name cannot be empty. Please enter a valid name: "
		}
		return s, ""
	})
}

func (c *Collector) Measurement() (string, error) {
	return collect(c, "Enter a unit of measurement (km, hours, books, movies): ", func(s string) (string, string) {
		if !validation.ValidateString(s) {
			return "", "Enter a valid unit of measurement: "
		}
		return s, ""
	})
}

func (c *Collector) Quantity() (float64, error) {
	return collect(c, "Enter the quantity: ", func(s string) (float64, string) {
		q, ok := validation.ParseQuantity(s)
		if !ok {
			return 0, "Invalid number. Please enter a valid quantity: "
		}
		return q, ""
	})
}

// Date returns the accepted date normalized to midnight UTC. "today" is
// resolved when the line is read.
func (c *Collector) Date() (time.Time, error) {
	return collect(c, "Enter the date (yyyy-MM-dd or dd-MM-yyyy) or type 'today' to insert today's date: ", func(s string) (time.Time, string) {
		d, ok := validation.ParseDate(s, c.clock)
		if !ok {
			return time.Time{}, "Invalid date. Please use an accepted format and do not enter future dates: "
		}
		return d, ""
	})
}

func (c *Collector) ID(prompt string) (int64, error) {
	return collect(c, prompt, func(s string) (int64, string) {
		id, reason := validation.ParseID(s)
		if reason != validation.IDValid {
			return 0, reason.Message() + ": "
		}
		return id, ""
	})
}

func (c *Collector) Column() (models.Column, error) {
	return collect(c, "Enter the field you wish to update ("+models.ColumnNames()+"): ", func(s string) (models.Column, string) {
		col, ok := validation.ParseColumn(s)
		if !ok {
			return 0, "Enter a valid column name (" + models.ColumnNames() + "): "
		}
		return col, ""
	})
}

func (c *Collector) MenuChoice() (models.MenuAction, error) {
	return collect(c, "Choose an option: ", func(s string) (models.MenuAction, string) {
		action, ok := validation.ParseMenuChoice(s)
		if !ok {
			return 0, fmt.Sprintf("Invalid option. Enter a number from 0 to %d: ", len(models.MenuActions)-1)
		}
		return action, ""
	})
}

// Value collects a new value typed for the given column
func (c *Collector) Value(column models.Column) (any, error) {
	switch column {
	case models.ColumnName:
		return c.Name()
	case models.ColumnMeasurement:
		return c.Measurement()
	case models.ColumnQuantity:
		return c.Quantity()
	case models.ColumnDate:
		return c.Date()
	default:
		return nil, fmt.Errorf("unknown column %s", column)
	}
}

// Habit collects every field of a new record in order: name, measurement,
// quantity, date.
func (c *Collector) Habit() (models.Habit, error) {
	var h models.Habit
	var err error

	if h.Name, err = c.Name(); err != nil {
		return models.Habit{}, err
	}
	if h.Measurement, err = c.Measurement(); err != nil {
		return models.Habit{}, err
	}
	if h.Quantity, err = c.Quantity(); err != nil {
		return models.Habit{}, err
	}
	if h.Date, err = c.Date(); err != nil {
		return models.Habit{}, err
	}
	return h, nil
}
