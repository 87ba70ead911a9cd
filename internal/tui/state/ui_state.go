package state

// Mode represents the current interaction mode of the TUI.
// Each mode determines which keyboard shortcuts are active and what UI is displayed.
type Mode int

const (
	NormalMode        Mode = iota // Default navigation mode
	SearchMode                    // Typing into the search box (/)
	TaskFormMode                  // New task form with huh
	DeleteConfirmMode             // Confirming task deletion
	MoveMode                      // Waiting for a column digit after m
	DetailMode                    // Full task details with rendered description
)

// UIState manages the user interface state.
// This includes navigation (column/task selection), per-column scrolling,
// terminal dimensions, and the current interaction mode.
type UIState struct {
	// selectedColumn is the index of the currently selected column
	selectedColumn int

	// selectedTask is the index of the currently selected task within the selected column
	selectedTask int

	width  int
	height int

	mode Mode

	// scrollOffsets tracks the first visible card for each column index
	scrollOffsets map[int]int
}

// NewUIState creates a new UIState with default values.
func NewUIState() *UIState {
	return &UIState{
		mode:          NormalMode,
		scrollOffsets: make(map[int]int),
	}
}

// SelectedColumn returns the index of the currently selected column.
func (s *UIState) SelectedColumn() int {
	return s.selectedColumn
}

// SetSelectedColumn updates the selected column index.
func (s *UIState) SetSelectedColumn(index int) {
	s.selectedColumn = index
}

// SelectedTask returns the index of the currently selected task.
func (s *UIState) SelectedTask() int {
	return s.selectedTask
}

// SetSelectedTask updates the selected task index.
func (s *UIState) SetSelectedTask(index int) {
	s.selectedTask = index
}

// ClampSelectedTask keeps the task index inside a column holding count cards.
func (s *UIState) ClampSelectedTask(count int) {
	switch {
	case count == 0:
		s.selectedTask = 0
	case s.selectedTask >= count:
		s.selectedTask = count - 1
	case s.selectedTask < 0:
		s.selectedTask = 0
	}
}

// Width returns the current terminal width.
func (s *UIState) Width() int {
	return s.width
}

// SetWidth updates the terminal width.
func (s *UIState) SetWidth(width int) {
	s.width = width
}

// Height returns the current terminal height.
func (s *UIState) Height() int {
	return s.height
}

// SetHeight updates the terminal height.
func (s *UIState) SetHeight(height int) {
	s.height = height
}

// Mode returns the current interaction mode.
func (s *UIState) Mode() Mode {
	return s.mode
}

// SetMode changes the interaction mode.
func (s *UIState) SetMode(mode Mode) {
	s.mode = mode
}

// ScrollOffset returns the first visible card index of a column.
func (s *UIState) ScrollOffset(column int) int {
	return s.scrollOffsets[column]
}

// EnsureTaskVisible scrolls column so that task is within a window of
// visible cards.
func (s *UIState) EnsureTaskVisible(column, task, visible int) {
	if visible < 1 {
		visible = 1
	}
	offset := s.scrollOffsets[column]
	if task < offset {
		offset = task
	}
	if task >= offset+visible {
		offset = task - visible + 1
	}
	s.scrollOffsets[column] = max(offset, 0)
}

// ResetSelection goes back to the first card of the first column.
func (s *UIState) ResetSelection() {
	s.selectedColumn = 0
	s.selectedTask = 0
	s.scrollOffsets = make(map[int]int)
}
