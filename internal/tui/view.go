package tui

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/thenoetrevino/flowboard/internal/board"
	"github.com/thenoetrevino/flowboard/internal/models"
	"github.com/thenoetrevino/flowboard/internal/tui/components"
	"github.com/thenoetrevino/flowboard/internal/tui/state"
	"github.com/thenoetrevino/flowboard/internal/tui/theme"
)

// View implements tea.Model: the board is always drawn, forms and dialogs
// float above it as layers
func (m Model) View() tea.View {
	var view tea.View
	view.AltScreen = true

	if m.UiState.Width() == 0 {
		view.Content = "Loading..."
		return view
	}

	v := m.BoardView()
	layers := []*lipgloss.Layer{lipgloss.NewLayer(m.renderBoard(v))}

	var modal string
	switch m.UiState.Mode() {
	case state.TaskFormMode:
		modal = m.renderTaskForm()
	case state.DeleteConfirmMode:
		modal = m.renderDeleteConfirm()
	case state.DetailMode:
		if task, ok := m.SelectedTask(); ok {
			modal = components.RenderTaskDetail(task, min(m.UiState.Width()*3/4, 100))
		}
	}
	if modal != "" {
		layers = append(layers, centeredLayer(modal, m.UiState.Width(), m.UiState.Height()))
	}

	view.Content = lipgloss.NewCanvas(layers...).Render()
	return view
}

// renderBoard stacks the summary bar, the filter bar, the columns and the
// status line
func (m Model) renderBoard(v board.View) string {
	width := m.UiState.Width()
	colWidth := max(width/len(v.Columns), 16)
	height := m.columnHeight()

	columns := make([]string, len(v.Columns))
	for i, col := range v.Columns {
		selectedTask := -1
		if i == m.UiState.SelectedColumn() {
			selectedTask = m.UiState.SelectedTask()
		}
		columns[i] = components.RenderColumn(col, colWidth, height, selectedTask, m.UiState.ScrollOffset(i))
	}

	filterBar := components.RenderFilterBar(components.FilterBarProps{
		Description: m.FilterState.Describe(),
		Visible:     v.Visible,
		Total:       v.Stats.Total,
		Searching:   m.UiState.Mode() == state.SearchMode,
		SearchView:  m.FilterState.Search.View(),
	})

	return lipgloss.JoinVertical(lipgloss.Left,
		components.RenderSummaryBar(v.Stats, width),
		filterBar,
		lipgloss.JoinHorizontal(lipgloss.Top, columns...),
		components.RenderStatusLine(m.NotificationState.All(), m.keyHint(), width),
	)
}

// keyHint is the help line for the current mode
func (m Model) keyHint() string {
	km := m.Config.KeyMappings
	switch m.UiState.Mode() {
	case state.SearchMode:
		return "enter keep search  esc clear search"
	case state.MoveMode:
		hint := "move to:"
		for i, c := range models.Columns() {
			hint += fmt.Sprintf("  %d %s", i+1, c.Title)
		}
		return hint + "  esc cancel"
	default:
		return fmt.Sprintf("%s/%s column  %s/%s task  %s/%s move  %s move to  %s new  %s delete  %s details  %s search  %s priority  %s tag  %s clear  %s quit",
			km.PrevColumn, km.NextColumn, km.PrevTask, km.NextTask, km.MoveTaskLeft, km.MoveTaskRight,
			km.MoveTask, km.AddTask, km.DeleteTask, km.ViewTask, km.Search, km.CyclePriority, km.CycleTag,
			km.ClearFilters, km.Quit)
	}
}

// renderTaskForm wraps the huh form in a box titled with the target column
func (m Model) renderTaskForm() string {
	if m.FormState.TaskForm == nil {
		return ""
	}
	col, _ := models.ColumnByKey(m.FormState.FormStatus)
	title := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(theme.Create)).
		Render("New task in " + col.Title)
	help := lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Subtle)).
		Render("tab next field  shift+tab previous  esc cancel")

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(theme.Create)).
		Padding(1, 2).
		Width(min(m.UiState.Width()*3/4, 90)).
		Render(lipgloss.JoinVertical(lipgloss.Left, title, "", m.FormState.TaskForm.View(), "", help))
}

// renderDeleteConfirm asks whether to delete the selected card
func (m Model) renderDeleteConfirm() string {
	task, ok := m.SelectedTask()
	if !ok {
		return ""
	}
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(theme.Delete)).
		Padding(1, 3).
		Render(fmt.Sprintf("Delete '%s'?\n\n", task.Title) +
			lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Subtle)).Render("[y]es  [n]o"))
}

// centeredLayer positions content in the middle of the screen
func centeredLayer(content string, screenWidth, screenHeight int) *lipgloss.Layer {
	x := max((screenWidth-lipgloss.Width(content))/2, 0)
	y := max((screenHeight-lipgloss.Height(content))/2, 0)
	return lipgloss.NewLayer(content).X(x).Y(y)
}
