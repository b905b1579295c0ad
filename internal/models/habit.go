package models

import (
	"fmt"
	"strings"
	"time"
)

// Habit is a single logged occurrence of a tracked activity
type Habit struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Measurement string    `json:"measurement"`
	Quantity    float64   `json:"quantity"`
	Date        time.Time `json:"date"` // calendar date, stored as YYYY-MM-DD
}

// Column identifies one of the updatable habit fields
type Column int

const (
	ColumnName Column = iota + 1
	ColumnMeasurement
	ColumnQuantity
	ColumnDate
)

// Columns lists every updatable column in prompt order
var Columns = []Column{ColumnName, ColumnMeasurement, ColumnQuantity, ColumnDate}

// String returns the user-facing identifier for the column
func (c Column) String() string {
	switch c {
	case ColumnName:
		return "name"
	case ColumnMeasurement:
		return "measurement"
	case ColumnQuantity:
		return "quantity"
	case ColumnDate:
		return "date"
	default:
		return fmt.Sprintf("Column(%d)", int(c))
	}
}

// ColumnNames returns the accepted column identifiers joined for display
func ColumnNames() string {
	names := make([]string, 0, len(Columns))
	for _, c := range Columns {
		names = append(names, c.String())
	}
	return strings.Join(names, ", ")
}

// MenuAction is one of the numbered menu entries
type MenuAction int

const (
	MenuExit MenuAction = iota
	MenuList
	MenuInsert
	MenuDelete
	MenuUpdate
)

// MenuActions lists the menu entries in display order
var MenuActions = []MenuAction{MenuExit, MenuList, MenuInsert, MenuDelete, MenuUpdate}

// Label returns the menu text for the action
func (a MenuAction) Label() string {
	switch a {
	case MenuExit:
		return "Close application"
	case MenuList:
		return "View all records"
	case MenuInsert:
		return "Insert record"
	case MenuDelete:
		return "Delete record"
	case MenuUpdate:
		return "Update record"
	default:
		return "Unknown"
	}
}
