package components

import (
	"strings"
	"sync"

	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/glamour"

	"github.com/thenoetrevino/flowboard/internal/models"
	"github.com/thenoetrevino/flowboard/internal/tui/theme"
)

// Cache glamour renderers by width; building one parses a full style sheet
var rendererCache sync.Map // map[int]*glamour.TermRenderer

func getRenderer(width int) (*glamour.TermRenderer, error) {
	if cached, ok := rendererCache.Load(width); ok {
		return cached.(*glamour.TermRenderer), nil
	}

	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return nil, err
	}

	rendererCache.Store(width, renderer)
	return renderer, nil
}

// RenderDescription renders markdown at width, falling back to the raw text
func RenderDescription(description string, width int) string {
	if strings.TrimSpace(description) == "" {
		return SubtleStyle.Render("No description")
	}
	renderer, err := getRenderer(width)
	if err != nil {
		return description
	}
	out, err := renderer.Render(description)
	if err != nil {
		return description
	}
	return strings.TrimSpace(out)
}

// RenderTaskDetail renders every field of a task for the detail overlay
func RenderTaskDetail(task models.Task, width int) string {
	label := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(theme.Accent))
	value := lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Normal))

	col, _ := models.ColumnByKey(task.Status)
	lines := []string{
		TitleStyle.Render(task.Title),
		SubtleStyle.Render(string(task.ID)),
		"",
		label.Render("Status: ") + lipgloss.NewStyle().Foreground(lipgloss.Color(col.Accent)).Render(col.Title),
		label.Render("Priority: ") + lipgloss.NewStyle().Foreground(lipgloss.Color(task.Priority.Color())).Render(task.Priority.Label()),
	}
	if task.Assignee != "" {
		lines = append(lines, label.Render("Assignee: ")+value.Render(task.Assignee))
	}
	if created := task.Created(); !created.IsZero() {
		lines = append(lines, label.Render("Created: ")+value.Render(created.Local().Format("Jan 2, 2006 3:04 PM")))
	}
	if due, ok := task.Due(); ok {
		lines = append(lines, label.Render("Due: ")+value.Render(due.Format("Jan 2, 2006")))
	}
	if len(task.Tags) > 0 {
		lines = append(lines, label.Render("Tags: ")+value.Render("#"+strings.Join(task.Tags, " #")))
	}
	lines = append(lines, "", RenderDescription(task.Description, max(width-4, 20)))

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(theme.Accent)).
		Padding(1, 2).
		Width(width).
		Render(strings.Join(lines, "\n"))
}
