// Package tui is the interactive kanban board: four columns of cards with
// keyboard navigation, moving cards between columns, filters and a new
// task form.
package tui

import (
	"context"
	"slices"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/thenoetrevino/flowboard/internal/app"
	"github.com/thenoetrevino/flowboard/internal/board"
	"github.com/thenoetrevino/flowboard/internal/config"
	"github.com/thenoetrevino/flowboard/internal/models"
	"github.com/thenoetrevino/flowboard/internal/tui/components"
	"github.com/thenoetrevino/flowboard/internal/tui/state"
	"github.com/thenoetrevino/flowboard/internal/tui/theme"
	"github.com/thenoetrevino/flowboard/internal/types"
)

// timeoutStore bounds every storage round trip made from the UI
const timeoutStore = 10 * time.Second

// Model represents the application state for the TUI
type Model struct {
	Ctx    context.Context
	App    *app.App
	Config *config.Config

	UiState           *state.UIState
	FilterState       *state.FilterState
	FormState         *state.FormState
	NotificationState *state.NotificationState
}

// InitialModel creates the TUI model over a ready application container
func InitialModel(ctx context.Context, a *app.App) Model {
	cfg := a.Config
	if cfg == nil {
		cfg = config.Default()
	}
	theme.Init(cfg.ColorScheme)
	components.InitStyles()

	m := Model{
		Ctx:               ctx,
		App:               a,
		Config:            cfg,
		UiState:           state.NewUIState(),
		FilterState:       state.NewFilterState(),
		FormState:         state.NewFormState(),
		NotificationState: state.NewNotificationState(),
	}
	if !a.Durable() {
		m.NotificationState.Add(state.LevelError, "Storage unavailable: changes last only for this session")
	}
	return m
}

// Init implements tea.Model
func (m Model) Init() tea.Cmd {
	return nil
}

// StoreContext creates a child context with timeout for storage operations
func (m Model) StoreContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(m.Ctx, timeoutStore)
}

// BoardView returns the current projection for the active filters
func (m Model) BoardView() board.View {
	return m.App.View(m.Ctx, m.FilterState.Filters())
}

// currentColumn returns the selected column of v
func (m Model) currentColumn(v board.View) board.ColumnView {
	cols := v.Columns
	i := min(max(m.UiState.SelectedColumn(), 0), len(cols)-1)
	return cols[i]
}

// SelectedTask returns the card under the cursor, if any
func (m Model) SelectedTask() (models.Task, bool) {
	col := m.currentColumn(m.BoardView())
	i := m.UiState.SelectedTask()
	if i < 0 || i >= len(col.Tasks) {
		return models.Task{}, false
	}
	return col.Tasks[i], true
}

// selectTask moves the cursor onto id, wherever it now sits on the board
func (m Model) selectTask(id types.TaskID) {
	v := m.BoardView()
	for ci, col := range v.Columns {
		ti := slices.IndexFunc(col.Tasks, func(t models.Task) bool { return t.ID == id })
		if ti < 0 {
			continue
		}
		m.UiState.SetSelectedColumn(ci)
		m.UiState.SetSelectedTask(ti)
		m.UiState.EnsureTaskVisible(ci, ti, components.VisibleTasks(m.columnHeight()))
		return
	}
	m.clampSelection()
}

// clampSelection keeps the cursor on an existing card after the board changed
func (m Model) clampSelection() {
	col := m.currentColumn(m.BoardView())
	m.UiState.ClampSelectedTask(len(col.Tasks))
	m.UiState.EnsureTaskVisible(m.UiState.SelectedColumn(), m.UiState.SelectedTask(), components.VisibleTasks(m.columnHeight()))
}

// columnHeight is what remains for the columns after the summary, filter
// and status lines
func (m Model) columnHeight() int {
	return max(m.UiState.Height()-4, components.TaskCardHeight+5)
}
