package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/thenoetrevino/flowboard/internal/board"
	"github.com/thenoetrevino/flowboard/internal/models"
	"github.com/thenoetrevino/flowboard/internal/tui/theme"
)

// RenderSummaryBar renders the totals line shown above the board:
// total, completion percentage and the count of every column
func RenderSummaryBar(stats board.Stats, width int) string {
	bar := lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.StatusBarText)).
		Background(lipgloss.Color(theme.StatusBarBg))
	accent := bar.Bold(true).Foreground(lipgloss.Color(theme.Accent))

	parts := []string{
		accent.Render(" flowboard "),
		bar.Render(fmt.Sprintf("%d tasks", stats.Total)),
		bar.Render(fmt.Sprintf("%d%% complete", stats.Completion)),
	}
	for _, c := range stats.ByColumn {
		col, _ := models.ColumnByKey(c.ID)
		parts = append(parts, bar.Foreground(lipgloss.Color(col.Accent)).Render(fmt.Sprintf("%s %d", c.Title, c.Count)))
	}

	return bar.Width(width).Render(strings.Join(parts, bar.Render("  │  ")))
}

// FilterBarProps describes the filter line under the summary bar
type FilterBarProps struct {
	Description string // active filters, empty when none
	Visible     int
	Total       int
	Searching   bool
	SearchView  string // the text input, rendered
}

// RenderFilterBar renders the active filters or the live search input
func RenderFilterBar(props FilterBarProps) string {
	if props.Searching {
		return props.SearchView
	}
	if props.Description == "" {
		return SubtleStyle.Render("No filters  (/ search, p priority, t tag)")
	}
	count := SubtleStyle.Render(fmt.Sprintf("showing %d of %d", props.Visible, props.Total))
	return lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Accent)).Render(props.Description) + "  " + count
}
