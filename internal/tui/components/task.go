package components

import (
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/thenoetrevino/flowboard/internal/models"
	"github.com/thenoetrevino/flowboard/internal/tui/theme"
)

// TaskCardHeight is the fixed height of a card, borders included
const TaskCardHeight = 6

// RenderTask renders a single task as a fixed-size card
//
//	╭──────────────────────╮
//	│ {Task Title}         │
//	│ High Priority        │
//	│ #qa #release         │
//	│ @assignee   due Jun 1│
//	╰──────────────────────╯
func RenderTask(task models.Task, width int, selected bool) string {
	bg := theme.CardBg
	border := theme.CardBorder
	if selected {
		bg = theme.SelectedBg
		border = theme.SelectedBorder
	}
	inner := max(width-2, 4)

	lines := []string{
		renderCardTitle(task.Title, inner, bg),
		lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(task.Priority.Color())).
			Background(lipgloss.Color(bg)).
			Render(truncate(" "+task.Priority.Label(), inner)),
		renderCardTags(task.Tags, inner, bg),
		renderCardFooter(task, inner, bg),
	}

	return TaskStyle.
		Width(width).
		BorderForeground(lipgloss.Color(border)).
		BorderBackground(lipgloss.Color(bg)).
		Background(lipgloss.Color(bg)).
		Render(strings.Join(lines, "\n"))
}

func renderCardTitle(title string, width int, bg string) string {
	return lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(theme.Title)).
		Background(lipgloss.Color(bg)).
		Render(truncate(" "+title, width))
}

func renderCardTags(tags []string, width int, bg string) string {
	if len(tags) == 0 {
		return SubtleStyle.Background(lipgloss.Color(bg)).Render(" no tags")
	}
	chips := make([]string, len(tags))
	for i, tag := range tags {
		chips[i] = "#" + tag
	}
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.Accent)).
		Background(lipgloss.Color(bg)).
		Render(truncate(" "+strings.Join(chips, " "), width))
}

func renderCardFooter(task models.Task, width int, bg string) string {
	var parts []string
	if task.Assignee != "" {
		parts = append(parts, "@"+task.Assignee)
	}
	if due, ok := task.Due(); ok {
		parts = append(parts, "due "+due.Format("Jan 2"))
	}
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.Subtle)).
		Background(lipgloss.Color(bg)).
		Render(truncate(" "+strings.Join(parts, "  "), width))
}

// truncate shortens s to width runes, marking the cut with an ellipsis
func truncate(s string, width int) string {
	runes := []rune(s)
	if len(runes) <= width {
		return s
	}
	if width <= 1 {
		return string(runes[:width])
	}
	return string(runes[:width-1]) + "…"
}
