package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/julianstephens/habitlog/internal/constants"
	"github.com/julianstephens/habitlog/internal/models"
)

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true)

	menuKeyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("212")).
			Bold(true)

	headerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("99")).
			Bold(true).
			Padding(0, 1)

	cellStyle = lipgloss.NewStyle().Padding(0, 1)

	borderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))

	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))

	warningStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214")).
			Italic(true)

	DangerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Bold(true)
)

// FormatQuantity renders a quantity with the fewest digits that round-trip
func FormatQuantity(q float64) string {
	return strconv.FormatFloat(q, 'f', -1, 64)
}

// RenderHabits renders habits as a bordered table in the order given
func RenderHabits(habits []models.Habit) string {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(borderStyle).
		Headers("ID", "Habit", "Quantity", "Date").
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})

	for _, h := range habits {
		t.Row(
			strconv.FormatInt(h.ID, 10),
			h.Name,
			FormatQuantity(h.Quantity)+" "+h.Measurement,
			h.Date.Format(constants.DateFormat),
		)
	}

	return t.Render()
}

func RenderMenu() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("MAIN MENU"))
	b.WriteString("\n\nWhat would you like to do?\n\n")
	for _, action := range models.MenuActions {
		fmt.Fprintf(&b, "%s %s\n", menuKeyStyle.Render(strconv.Itoa(int(action))), action.Label())
	}
	b.WriteString(strings.Repeat("-", 40))
	b.WriteString("\n")
	return b.String()
}
