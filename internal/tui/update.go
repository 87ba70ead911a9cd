package tui

import (
	tea "charm.land/bubbletea/v2"

	"github.com/thenoetrevino/flowboard/internal/tui/state"
)

// Update implements tea.Model. Forms receive every message, other modes
// only key presses.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.UiState.Mode() == state.TaskFormMode {
		return m.updateTaskForm(msg)
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.UiState.SetWidth(msg.Width)
		m.UiState.SetHeight(msg.Height)
		m.clampSelection()
		return m, nil

	case tea.KeyPressMsg:
		return m.handleKey(msg)
	}

	if m.UiState.Mode() == state.SearchMode {
		var cmd tea.Cmd
		m.FilterState.Search, cmd = m.FilterState.Search.Update(msg)
		return m, cmd
	}
	return m, nil
}

// handleKey dispatches key presses to the handler of the current mode
func (m Model) handleKey(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch m.UiState.Mode() {
	case state.SearchMode:
		return m.handleSearchMode(msg)
	case state.DeleteConfirmMode:
		return m.handleDeleteConfirm(msg)
	case state.MoveMode:
		return m.handleMoveMode(msg)
	case state.DetailMode:
		return m.handleDetailMode(msg)
	default:
		return m.handleNormalMode(msg)
	}
}
