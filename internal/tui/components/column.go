package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/thenoetrevino/flowboard/internal/board"
	"github.com/thenoetrevino/flowboard/internal/tui/theme"
)

// columnOverhead is border(2) + header(1) + top indicator(1) + bottom indicator(1)
const columnOverhead = 5

// VisibleTasks returns how many cards fit in a column of the given height
func VisibleTasks(height int) int {
	return max((height-columnOverhead)/TaskCardHeight, 1)
}

// RenderColumn renders a complete column with its title and cards
//
// Layout:
//
//	{Column Title} ({count})
//	▲ more above (if scrolled down)
//	{Task 1}
//	{Task 2}
//	...
//	▼ more below (if more tasks below)
//
// selectedTask is -1 when the column is not selected.
func RenderColumn(col board.ColumnView, width, height, selectedTask, scrollOffset int) string {
	selected := selectedTask >= 0
	inner := max(width-4, 8)

	header := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(col.Column.Accent)).
		Render(fmt.Sprintf("%s (%d)", col.Column.Title, len(col.Tasks)))

	var b strings.Builder
	b.WriteString(header)
	b.WriteString("\n")

	if len(col.Tasks) == 0 {
		b.WriteString("\n")
		b.WriteString(SubtleStyle.Render("No tasks"))
	} else {
		visible := VisibleTasks(height)
		scrollOffset = min(max(scrollOffset, 0), len(col.Tasks)-1)
		end := min(scrollOffset+visible, len(col.Tasks))

		if scrollOffset > 0 {
			b.WriteString(SubtleStyle.Render("▲ more above"))
		}
		b.WriteString("\n")

		for i, task := range col.Tasks[scrollOffset:end] {
			b.WriteString(RenderTask(task, inner, selected && scrollOffset+i == selectedTask))
			b.WriteString("\n")
		}

		if end < len(col.Tasks) {
			b.WriteString(SubtleStyle.Render(fmt.Sprintf("▼ %d more below", len(col.Tasks)-end)))
		}
	}

	border := theme.ColumnBorder
	if selected {
		border = col.Column.Accent
	}
	style := ColumnStyle.
		Width(width).
		BorderForeground(lipgloss.Color(border))
	if height > 0 {
		style = style.Height(height)
	}
	return style.Render(b.String())
}
