package tui

import (
	"errors"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/julianstephens/habitlog/internal/models"
	"github.com/julianstephens/habitlog/internal/storage"
	"github.com/julianstephens/habitlog/internal/tui/components/habitlist"
)

type SessionState int

const (
	StateList SessionState = iota
	StateConfirmDelete
)

type habitsLoadedMsg struct {
	habits []models.Habit
	err    error
}

type habitDeletedMsg struct {
	id   int64
	rows int64
	err  error
}

// Model is a full-screen browser over the stored habits with delete support
type Model struct {
	store           storage.Provider
	state           SessionState
	keys            KeyMap
	help            help.Model
	habitList       habitlist.Model
	habitToDeleteID int64
	status          string
	statusErr       bool
	quitting        bool
	width           int
	height          int
}

func NewModel(store storage.Provider) Model {
	return Model{
		store:     store,
		state:     StateList,
		keys:      DefaultKeyMap(),
		help:      help.New(),
		habitList: habitlist.New(nil, 0, 0),
	}
}

func (m Model) ShortHelp() []key.Binding {
	if m.state == StateConfirmDelete {
		return []key.Binding{m.keys.Confirm, m.keys.Cancel}
	}
	return []key.Binding{m.keys.Quit, m.keys.Help, m.keys.Refresh, habitlist.DefaultKeyMap().Delete}
}

func (m Model) FullHelp() [][]key.Binding {
	return append(m.keys.FullHelp(), []key.Binding{habitlist.DefaultKeyMap().Delete})
}

func (m Model) Init() tea.Cmd {
	return m.loadHabits
}

func (m Model) loadHabits() tea.Msg {
	habits, err := m.store.ListHabits()
	if errors.Is(err, storage.ErrNoHabits) {
		return habitsLoadedMsg{}
	}
	return habitsLoadedMsg{habits: habits, err: err}
}

func (m Model) deleteHabit(id int64) tea.Cmd {
	return func() tea.Msg {
		rows, err := m.store.DeleteHabit(id)
		return habitDeletedMsg{id: id, rows: rows, err: err}
	}
}
