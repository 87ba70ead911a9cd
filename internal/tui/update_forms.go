package tui

import (
	"log/slog"

	tea "charm.land/bubbletea/v2"
	"charm.land/huh/v2"

	"github.com/thenoetrevino/flowboard/internal/converters"
	"github.com/thenoetrevino/flowboard/internal/models"
	taskservice "github.com/thenoetrevino/flowboard/internal/services/task"
	"github.com/thenoetrevino/flowboard/internal/tui/huhforms"
	"github.com/thenoetrevino/flowboard/internal/tui/state"
)

// descriptionLines is the height of the description field in the form
const descriptionLines = 4

// handleAddTask opens the new task form for the selected column
func (m Model) handleAddTask() (tea.Model, tea.Cmd) {
	status := m.currentColumn(m.BoardView()).Column.ID
	m.FormState.Reset(status)

	m.FormState.TaskForm = huhforms.CreateTaskForm(huhforms.TaskFormFields{
		Title:       &m.FormState.FormTitle,
		Description: &m.FormState.FormDescription,
		Priority:    &m.FormState.FormPriority,
		Assignee:    &m.FormState.FormAssignee,
		Due:         &m.FormState.FormDue,
		Tags:        &m.FormState.FormTags,
		Confirm:     &m.FormState.FormConfirm,
	}, descriptionLines).WithTheme(huhforms.CreateTheme(m.Config.ColorScheme))

	m.UiState.SetMode(state.TaskFormMode)
	return m, m.FormState.TaskForm.Init()
}

// updateTaskForm handles all messages when in TaskFormMode.
// Forms need to receive ALL messages, not just key presses.
func (m Model) updateTaskForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.FormState.TaskForm == nil {
		m.UiState.SetMode(state.NormalMode)
		return m, nil
	}

	if keyMsg, ok := msg.(tea.KeyPressMsg); ok && keyMsg.String() == "esc" {
		if m.FormState.HasChanges() {
			m.NotificationState.Add(state.LevelInfo, "New task discarded")
		}
		m.closeForm()
		return m, tea.ClearScreen
	}
	if size, ok := msg.(tea.WindowSizeMsg); ok {
		m.UiState.SetWidth(size.Width)
		m.UiState.SetHeight(size.Height)
	}

	model, cmd := m.FormState.TaskForm.Update(msg)
	if form, ok := model.(*huh.Form); ok {
		m.FormState.TaskForm = form
	}

	switch m.FormState.TaskForm.State {
	case huh.StateCompleted:
		if m.FormState.FormConfirm {
			m.createTaskFromForm()
		}
		m.closeForm()
		return m, tea.ClearScreen
	case huh.StateAborted:
		m.closeForm()
		return m, tea.ClearScreen
	}
	return m, cmd
}

// createTaskFromForm creates the task described by the completed form
func (m Model) createTaskFromForm() {
	f := m.FormState

	due, err := converters.ParseDueDate(f.FormDue)
	if err != nil {
		m.NotificationState.Add(state.LevelError, err.Error())
		return
	}

	ctx, cancel := m.StoreContext()
	defer cancel()

	task, err := m.App.TaskService.CreateTask(ctx, taskservice.CreateTaskRequest{
		Title:       f.FormTitle,
		Description: converters.NormalizeText(f.FormDescription),
		Status:      f.FormStatus,
		Priority:    f.FormPriority,
		Assignee:    converters.NormalizeText(f.FormAssignee),
		DueDate:     due,
		Tags:        converters.SplitTags(f.FormTags),
	})
	if task == nil && err == nil {
		m.NotificationState.Add(state.LevelInfo, "Empty title, nothing created")
		return
	}
	if err != nil {
		slog.Error("failed to create task", "error", err)
		if task == nil {
			m.NotificationState.Add(state.LevelError, "Could not create task")
			return
		}
		m.NotificationState.Add(state.LevelError, "Created, but saving failed")
	} else {
		col, _ := models.ColumnByKey(task.Status)
		m.NotificationState.Add(state.LevelInfo, "Created in "+col.Title)
	}
	m.selectTask(task.ID)
}

// closeForm returns to the board and forgets the form
func (m Model) closeForm() {
	m.FormState.Clear()
	m.UiState.SetMode(state.NormalMode)
}
