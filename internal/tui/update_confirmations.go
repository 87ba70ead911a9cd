package tui

import (
	"log/slog"

	tea "charm.land/bubbletea/v2"

	"github.com/thenoetrevino/flowboard/internal/tui/state"
)

// handleDeleteTask asks before deleting the selected card
func (m Model) handleDeleteTask() (tea.Model, tea.Cmd) {
	if _, ok := m.SelectedTask(); !ok {
		m.NotificationState.Add(state.LevelInfo, "No task selected")
		return m, nil
	}
	m.UiState.SetMode(state.DeleteConfirmMode)
	return m, nil
}

// handleDeleteConfirm deletes on y, anything else cancels
func (m Model) handleDeleteConfirm(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	m.UiState.SetMode(state.NormalMode)

	switch msg.String() {
	case "y", "Y":
	case "ctrl+c":
		return m, tea.Quit
	default:
		return m, nil
	}

	task, ok := m.SelectedTask()
	if !ok {
		return m, nil
	}
	ctx, cancel := m.StoreContext()
	defer cancel()

	if err := m.App.TaskService.DeleteTask(ctx, task.ID); err != nil {
		slog.Error("failed to persist task deletion", "task_id", task.ID, "error", err)
		m.NotificationState.Add(state.LevelError, "Deleted, but saving failed")
	} else {
		m.NotificationState.Add(state.LevelInfo, "Deleted "+task.Title)
	}

	m.FilterState.SyncTag(m.BoardView().Tags)
	m.clampSelection()
	return m, nil
}
