package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/julianstephens/habitlog/internal/logger"
	"github.com/julianstephens/habitlog/internal/tui/components/habitlist"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.habitList.SetSize(msg.Width-4, msg.Height-6)
		return m, nil

	case habitsLoadedMsg:
		if msg.err != nil {
			m.setStatus(fmt.Sprintf("Error: %v", msg.err), true)
			return m, nil
		}
		m.habitList.SetHabits(msg.habits)
		return m, nil

	case habitlist.DeleteHabitMsg:
		m.habitToDeleteID = msg.ID
		m.state = StateConfirmDelete
		return m, nil

	case habitDeletedMsg:
		switch {
		case msg.err != nil:
			logger.Error("Failed to delete habit", "id", msg.id, "error", msg.err)
			m.setStatus(fmt.Sprintf("Error: %v", msg.err), true)
		case msg.rows == 0:
			m.setStatus("Couldn't find a habit with that id.", true)
		default:
			logger.Info("Habit deleted", "id", msg.id)
			m.setStatus(fmt.Sprintf("%d row was affected.", msg.rows), false)
		}
		return m, m.loadHabits

	case tea.KeyMsg:
		if m.state == StateConfirmDelete {
			switch {
			case key.Matches(msg, m.keys.Confirm):
				m.state = StateList
				return m, m.deleteHabit(m.habitToDeleteID)
			case key.Matches(msg, m.keys.Cancel):
				m.state = StateList
				m.setStatus("Delete cancelled.", false)
			}
			return m, nil
		}

		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			return m, nil
		case key.Matches(msg, m.keys.Refresh):
			m.setStatus("", false)
			return m, m.loadHabits
		}
	}

	var cmd tea.Cmd
	m.habitList, cmd = m.habitList.Update(msg)
	return m, cmd
}

func (m *Model) setStatus(msg string, isErr bool) {
	m.status = msg
	m.statusErr = isErr
}
