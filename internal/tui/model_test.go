package tui

import (
	"context"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thenoetrevino/flowboard/internal/models"
	"github.com/thenoetrevino/flowboard/internal/testutil/cli"
	"github.com/thenoetrevino/flowboard/internal/tui/state"
	"github.com/thenoetrevino/flowboard/internal/types"
)

// ============================================================================
// TEST HELPERS
// ============================================================================

// setupTestModel builds a sized model over the sample board:
// Backlog: task-0001, In Progress: task-0002, Review: task-0003, Done: task-0004
func setupTestModel(t *testing.T) Model {
	t.Helper()
	_, a := cli.SetupSeededCLITest(t)
	m := InitialModel(context.Background(), a)
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 160, Height: 48})
	return updated.(Model)
}

// press sends a printable key
func press(t *testing.T, m Model, text string) (Model, tea.Cmd) {
	t.Helper()
	updated, cmd := m.Update(tea.KeyPressMsg(tea.Key{Text: text, Code: []rune(text)[0]}))
	return updated.(Model), cmd
}

// pressCode sends a special key such as tea.KeyEscape
func pressCode(t *testing.T, m Model, code rune) (Model, tea.Cmd) {
	t.Helper()
	updated, cmd := m.Update(tea.KeyPressMsg(tea.Key{Code: code}))
	return updated.(Model), cmd
}

func statusOf(t *testing.T, m Model, id types.TaskID) models.ColumnKey {
	t.Helper()
	task, ok := m.App.TaskService.Get(context.Background(), id)
	require.True(t, ok, "task %s should exist", id)
	return task.Status
}

// ============================================================================
// NAVIGATION
// ============================================================================

func TestNavigation_Columns(t *testing.T) {
	m := setupTestModel(t)

	m, _ = press(t, m, "l")
	assert.Equal(t, 1, m.UiState.SelectedColumn())

	m, _ = pressCode(t, m, tea.KeyRight)
	assert.Equal(t, 2, m.UiState.SelectedColumn())

	m, _ = press(t, m, "h")
	m, _ = press(t, m, "h")
	assert.Equal(t, 0, m.UiState.SelectedColumn())

	m, _ = press(t, m, "h")
	assert.Equal(t, 0, m.UiState.SelectedColumn())
	require.True(t, m.NotificationState.HasAny())
	assert.Equal(t, "Already at the first column", m.NotificationState.All()[0].Message)
}

func TestNavigation_Tasks(t *testing.T) {
	m := setupTestModel(t)

	// Two cards in In Progress: task-0002 (high) above task-0001 (medium)
	require.NoError(t, m.App.TaskService.MoveTask(context.Background(), "task-0001", models.StatusInProgress))
	m, _ = press(t, m, "l")

	task, ok := m.SelectedTask()
	require.True(t, ok)
	assert.Equal(t, types.TaskID("task-0002"), task.ID)

	m, _ = press(t, m, "j")
	task, _ = m.SelectedTask()
	assert.Equal(t, types.TaskID("task-0001"), task.ID)

	m, _ = press(t, m, "j")
	assert.Equal(t, 1, m.UiState.SelectedTask(), "cursor stops at the last card")

	m, _ = press(t, m, "k")
	assert.Equal(t, 0, m.UiState.SelectedTask())
}

func TestSelectedTask_EmptyColumn(t *testing.T) {
	m := setupTestModel(t)
	require.NoError(t, m.App.TaskService.DeleteTask(context.Background(), "task-0001"))

	_, ok := m.SelectedTask()
	assert.False(t, ok)
}

// ============================================================================
// MOVING CARDS
// ============================================================================

func TestMoveTaskRight_FollowsCard(t *testing.T) {
	m := setupTestModel(t)

	m, _ = press(t, m, "L")
	assert.Equal(t, models.StatusInProgress, statusOf(t, m, "task-0001"))

	// The cursor follows the card into In Progress, below the high priority card
	assert.Equal(t, 1, m.UiState.SelectedColumn())
	task, ok := m.SelectedTask()
	require.True(t, ok)
	assert.Equal(t, types.TaskID("task-0001"), task.ID)
}

func TestMoveTaskLeft_AtFirstColumn(t *testing.T) {
	m := setupTestModel(t)

	m, _ = press(t, m, "H")
	assert.Equal(t, models.StatusBacklog, statusOf(t, m, "task-0001"))
	require.True(t, m.NotificationState.HasAny())
	assert.Equal(t, state.LevelInfo, m.NotificationState.All()[0].Level)
}

func TestMoveTaskRight_AtLastColumn(t *testing.T) {
	m := setupTestModel(t)
	for range 3 {
		m, _ = press(t, m, "l")
	}

	m, _ = press(t, m, "L")
	assert.Equal(t, models.StatusDone, statusOf(t, m, "task-0004"))
	assert.Equal(t, "Task is already in the last column", m.NotificationState.All()[0].Message)
}

func TestMoveMode_DropOnColumn(t *testing.T) {
	m := setupTestModel(t)

	m, _ = press(t, m, "m")
	assert.Equal(t, state.MoveMode, m.UiState.Mode())

	m, _ = press(t, m, "4")
	assert.Equal(t, state.NormalMode, m.UiState.Mode())
	assert.Equal(t, models.StatusDone, statusOf(t, m, "task-0001"))
	assert.Equal(t, 3, m.UiState.SelectedColumn())
}

func TestMoveMode_Cancel(t *testing.T) {
	m := setupTestModel(t)

	m, _ = press(t, m, "m")
	m, _ = pressCode(t, m, tea.KeyEscape)
	assert.Equal(t, state.NormalMode, m.UiState.Mode())
	assert.Equal(t, models.StatusBacklog, statusOf(t, m, "task-0001"))

	m, _ = press(t, m, "m")
	m, _ = press(t, m, "9")
	assert.Equal(t, models.StatusBacklog, statusOf(t, m, "task-0001"), "out of range digit is ignored")
}

// ============================================================================
// FILTERS
// ============================================================================

func TestCyclePriorityFilter(t *testing.T) {
	m := setupTestModel(t)

	m, _ = press(t, m, "p")
	assert.Equal(t, "high", m.FilterState.Priority())
	assert.Equal(t, 1, m.BoardView().Visible)
	assert.Equal(t, 4, m.BoardView().Stats.Total, "stats ignore filters")

	m, _ = press(t, m, "p")
	m, _ = press(t, m, "p")
	m, _ = press(t, m, "p")
	assert.Equal(t, models.FilterAll, m.FilterState.Priority())
}

func TestCycleTagFilter(t *testing.T) {
	m := setupTestModel(t)

	m, _ = press(t, m, "t")
	assert.Equal(t, "product", m.FilterState.Tag())
	assert.Equal(t, 1, m.BoardView().Visible)

	m, _ = pressCode(t, m, tea.KeyEscape)
	assert.Equal(t, models.FilterAll, m.FilterState.Tag())
	assert.Equal(t, 4, m.BoardView().Visible)
}

func TestSearch(t *testing.T) {
	m := setupTestModel(t)

	m, _ = press(t, m, "/")
	assert.Equal(t, state.SearchMode, m.UiState.Mode())

	m, _ = press(t, m, "q")
	m, _ = press(t, m, "a")
	assert.Equal(t, "qa", m.FilterState.Filters().Search)
	assert.Equal(t, 1, m.BoardView().Visible)

	// Enter keeps the query
	m, _ = pressCode(t, m, tea.KeyEnter)
	assert.Equal(t, state.NormalMode, m.UiState.Mode())
	assert.Equal(t, 1, m.BoardView().Visible)

	// Keys typed while searching never reach the board
	assert.Equal(t, models.StatusBacklog, statusOf(t, m, "task-0001"))

	// Esc in the search box drops the query
	m, _ = press(t, m, "/")
	m, _ = pressCode(t, m, tea.KeyEscape)
	assert.Equal(t, state.NormalMode, m.UiState.Mode())
	assert.Empty(t, m.FilterState.Filters().Search)
	assert.Equal(t, 4, m.BoardView().Visible)
}

// ============================================================================
// DELETE
// ============================================================================

func TestDelete_Confirm(t *testing.T) {
	m := setupTestModel(t)

	m, _ = press(t, m, "d")
	assert.Equal(t, state.DeleteConfirmMode, m.UiState.Mode())

	m, _ = press(t, m, "n")
	assert.Equal(t, state.NormalMode, m.UiState.Mode())
	assert.Len(t, m.App.TaskService.List(context.Background()), 4)

	m, _ = press(t, m, "d")
	m, _ = press(t, m, "y")
	assert.Len(t, m.App.TaskService.List(context.Background()), 3)
	_, ok := m.App.TaskService.Get(context.Background(), "task-0001")
	assert.False(t, ok)
}

func TestDelete_DropsVanishedTagFilter(t *testing.T) {
	m := setupTestModel(t)

	m, _ = press(t, m, "t") // #product, only on task-0001
	m, _ = press(t, m, "d")
	m, _ = press(t, m, "y")
	assert.Equal(t, models.FilterAll, m.FilterState.Tag())
}

// ============================================================================
// NEW TASK FORM
// ============================================================================

func TestAddTask_OpensFormForColumn(t *testing.T) {
	m := setupTestModel(t)
	m, _ = press(t, m, "l")

	m, _ = press(t, m, "n")
	assert.Equal(t, state.TaskFormMode, m.UiState.Mode())
	require.NotNil(t, m.FormState.TaskForm)
	assert.Equal(t, models.StatusInProgress, m.FormState.FormStatus)
	assert.Equal(t, models.PriorityMedium, m.FormState.FormPriority)

	m, _ = pressCode(t, m, tea.KeyEscape)
	assert.Equal(t, state.NormalMode, m.UiState.Mode())
	assert.Nil(t, m.FormState.TaskForm)
	assert.Len(t, m.App.TaskService.List(context.Background()), 4)
}

func TestCreateTaskFromForm(t *testing.T) {
	m := setupTestModel(t)
	m.FormState.Reset(models.StatusReview)
	m.FormState.FormTitle = "  Write release notes "
	m.FormState.FormPriority = models.PriorityHigh
	m.FormState.FormTags = "Docs, release, docs"
	m.FormState.FormDue = "2024-06-01"

	m.createTaskFromForm()

	tasks := m.App.TaskService.List(context.Background())
	require.Len(t, tasks, 5)
	created := tasks[0]
	assert.Equal(t, "Write release notes", created.Title)
	assert.Equal(t, models.StatusReview, created.Status)
	assert.Equal(t, []string{"docs", "release"}, created.Tags)
	assert.Equal(t, "2024-06-01T00:00:00.000Z", created.DueDate)

	// The cursor lands on the new card
	task, ok := m.SelectedTask()
	require.True(t, ok)
	assert.Equal(t, created.ID, task.ID)
}

func TestCreateTaskFromForm_BlankTitle(t *testing.T) {
	m := setupTestModel(t)
	m.FormState.Reset(models.StatusBacklog)
	m.FormState.FormTitle = "   "

	m.createTaskFromForm()

	assert.Len(t, m.App.TaskService.List(context.Background()), 4)
	assert.Equal(t, "Empty title, nothing created", m.NotificationState.All()[0].Message)
}

// ============================================================================
// DETAIL AND QUIT
// ============================================================================

func TestDetailMode(t *testing.T) {
	m := setupTestModel(t)

	m, _ = pressCode(t, m, tea.KeyEnter)
	assert.Equal(t, state.DetailMode, m.UiState.Mode())
	assert.Contains(t, m.View().Content, "task-0001")

	m, _ = pressCode(t, m, tea.KeyEscape)
	assert.Equal(t, state.NormalMode, m.UiState.Mode())
}

func TestQuit(t *testing.T) {
	m := setupTestModel(t)

	_, cmd := press(t, m, "q")
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestView(t *testing.T) {
	m := setupTestModel(t)
	content := m.View().Content

	assert.Contains(t, content, "Backlog (1)")
	assert.Contains(t, content, "In Progress (1)")
	assert.Contains(t, content, "25% complete")
	assert.Contains(t, content, "Plan sprint goals")
}

func TestView_BeforeResize(t *testing.T) {
	_, a := cli.SetupSeededCLITest(t)
	m := InitialModel(context.Background(), a)
	assert.Equal(t, "Loading...", m.View().Content)
}
