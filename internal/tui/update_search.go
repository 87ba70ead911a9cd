package tui

import (
	tea "charm.land/bubbletea/v2"

	"github.com/thenoetrevino/flowboard/internal/tui/state"
)

// ============================================================================
// SEARCH MODE HANDLERS
// ============================================================================

// handleEnterSearch focuses the search box. The previous query stays so
// it can be refined.
func (m Model) handleEnterSearch() (tea.Model, tea.Cmd) {
	m.UiState.SetMode(state.SearchMode)
	return m, m.FilterState.Search.Focus()
}

// handleSearchMode feeds keys to the search box; the board filters live
// as the query changes
func (m Model) handleSearchMode(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		// Keep the query and go back to navigating the filtered board
		m.FilterState.Search.Blur()
		m.UiState.SetMode(state.NormalMode)
		m.clampSelection()
		return m, nil
	case "esc":
		// Drop the query entirely
		m.FilterState.Search.SetValue("")
		m.FilterState.Search.Blur()
		m.UiState.SetMode(state.NormalMode)
		m.clampSelection()
		return m, nil
	case "ctrl+c":
		return m, tea.Quit
	}

	var cmd tea.Cmd
	m.FilterState.Search, cmd = m.FilterState.Search.Update(msg)
	m.UiState.SetSelectedTask(0)
	m.clampSelection()
	return m, cmd
}
