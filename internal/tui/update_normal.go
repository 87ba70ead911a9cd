package tui

import (
	"errors"
	"fmt"
	"log/slog"

	tea "charm.land/bubbletea/v2"

	"github.com/thenoetrevino/flowboard/internal/models"
	"github.com/thenoetrevino/flowboard/internal/tui/components"
	"github.com/thenoetrevino/flowboard/internal/tui/state"
)

// ============================================================================
// NORMAL MODE HANDLERS
// ============================================================================

// handleNormalMode dispatches key events in NormalMode to specific handlers
func (m Model) handleNormalMode(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	m.NotificationState.Clear()

	km := m.Config.KeyMappings
	switch msg.String() {
	case km.Quit, "ctrl+c":
		return m, tea.Quit
	case km.PrevColumn, "left":
		return m.handleNavigateLeft()
	case km.NextColumn, "right":
		return m.handleNavigateRight()
	case km.PrevTask, "up":
		return m.handleNavigateUp()
	case km.NextTask, "down":
		return m.handleNavigateDown()
	case km.MoveTaskLeft:
		return m.handleMoveTaskLeft()
	case km.MoveTaskRight:
		return m.handleMoveTaskRight()
	case km.MoveTask:
		return m.handleEnterMoveMode()
	case km.AddTask:
		return m.handleAddTask()
	case km.DeleteTask:
		return m.handleDeleteTask()
	case km.ViewTask:
		return m.handleViewTask()
	case km.Search:
		return m.handleEnterSearch()
	case km.CyclePriority:
		m.FilterState.CyclePriority()
		m.clampSelection()
		return m, nil
	case km.CycleTag:
		m.FilterState.CycleTag(m.BoardView().Tags)
		m.clampSelection()
		return m, nil
	case km.ClearFilters:
		m.FilterState.Clear()
		m.clampSelection()
		return m, nil
	}
	return m, nil
}

// handleNavigateLeft moves selection to the previous column
func (m Model) handleNavigateLeft() (tea.Model, tea.Cmd) {
	if m.UiState.SelectedColumn() == 0 {
		m.NotificationState.Add(state.LevelInfo, "Already at the first column")
		return m, nil
	}
	m.UiState.SetSelectedColumn(m.UiState.SelectedColumn() - 1)
	m.UiState.SetSelectedTask(0)
	m.clampSelection()
	return m, nil
}

// handleNavigateRight moves selection to the next column
func (m Model) handleNavigateRight() (tea.Model, tea.Cmd) {
	if m.UiState.SelectedColumn() >= len(models.Columns())-1 {
		m.NotificationState.Add(state.LevelInfo, "Already at the last column")
		return m, nil
	}
	m.UiState.SetSelectedColumn(m.UiState.SelectedColumn() + 1)
	m.UiState.SetSelectedTask(0)
	m.clampSelection()
	return m, nil
}

// handleNavigateUp moves selection to the previous card
func (m Model) handleNavigateUp() (tea.Model, tea.Cmd) {
	if m.UiState.SelectedTask() > 0 {
		m.UiState.SetSelectedTask(m.UiState.SelectedTask() - 1)
		m.UiState.EnsureTaskVisible(m.UiState.SelectedColumn(), m.UiState.SelectedTask(), components.VisibleTasks(m.columnHeight()))
	}
	return m, nil
}

// handleNavigateDown moves selection to the next card
func (m Model) handleNavigateDown() (tea.Model, tea.Cmd) {
	col := m.currentColumn(m.BoardView())
	if m.UiState.SelectedTask() < len(col.Tasks)-1 {
		m.UiState.SetSelectedTask(m.UiState.SelectedTask() + 1)
		m.UiState.EnsureTaskVisible(m.UiState.SelectedColumn(), m.UiState.SelectedTask(), components.VisibleTasks(m.columnHeight()))
	}
	return m, nil
}

// handleMoveTaskLeft drops the selected card on the previous column
func (m Model) handleMoveTaskLeft() (tea.Model, tea.Cmd) {
	task, ok := m.SelectedTask()
	if !ok {
		return m, nil
	}
	ctx, cancel := m.StoreContext()
	defer cancel()

	err := m.App.TaskService.MoveTaskToPrevColumn(ctx, task.ID)
	return m.afterMove(task, err)
}

// handleMoveTaskRight drops the selected card on the next column
func (m Model) handleMoveTaskRight() (tea.Model, tea.Cmd) {
	task, ok := m.SelectedTask()
	if !ok {
		return m, nil
	}
	ctx, cancel := m.StoreContext()
	defer cancel()

	err := m.App.TaskService.MoveTaskToNextColumn(ctx, task.ID)
	return m.afterMove(task, err)
}

// afterMove reports the outcome of a move and keeps the cursor on the card
func (m Model) afterMove(task models.Task, err error) (tea.Model, tea.Cmd) {
	switch {
	case errors.Is(err, models.ErrAlreadyFirstColumn):
		m.NotificationState.Add(state.LevelInfo, "Task is already in the first column")
		return m, nil
	case errors.Is(err, models.ErrAlreadyLastColumn):
		m.NotificationState.Add(state.LevelInfo, "Task is already in the last column")
		return m, nil
	case err != nil:
		// The move happened in memory; only the write failed
		slog.Error("failed to persist task move", "task_id", task.ID, "error", err)
		m.NotificationState.Add(state.LevelError, "Moved, but saving failed")
	}
	m.selectTask(task.ID)
	return m, nil
}

// handleEnterMoveMode waits for the digit of the target column
func (m Model) handleEnterMoveMode() (tea.Model, tea.Cmd) {
	if _, ok := m.SelectedTask(); !ok {
		m.NotificationState.Add(state.LevelInfo, "No task selected")
		return m, nil
	}
	m.UiState.SetMode(state.MoveMode)
	return m, nil
}

// handleMoveMode drops the selected card on column 1-4, or cancels
func (m Model) handleMoveMode(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	m.UiState.SetMode(state.NormalMode)

	key := msg.String()
	cols := models.Columns()
	if len(key) != 1 || key[0] < '1' || int(key[0]-'0') > len(cols) {
		return m, nil
	}
	target := cols[key[0]-'1']

	task, ok := m.SelectedTask()
	if !ok {
		return m, nil
	}
	ctx, cancel := m.StoreContext()
	defer cancel()

	err := m.App.TaskService.MoveTask(ctx, task.ID, target.ID)
	if err == nil {
		m.NotificationState.Add(state.LevelInfo, fmt.Sprintf("Moved to %s", target.Title))
	}
	return m.afterMove(task, err)
}

// handleViewTask opens the detail view of the selected card
func (m Model) handleViewTask() (tea.Model, tea.Cmd) {
	if _, ok := m.SelectedTask(); !ok {
		return m, nil
	}
	m.UiState.SetMode(state.DetailMode)
	return m, nil
}

// handleDetailMode closes the detail view on any of esc, enter or quit
func (m Model) handleDetailMode(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "enter", m.Config.KeyMappings.ViewTask, m.Config.KeyMappings.Quit:
		m.UiState.SetMode(state.NormalMode)
	case "ctrl+c":
		return m, tea.Quit
	}
	return m, nil
}
