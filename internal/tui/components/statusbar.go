package components

import (
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/thenoetrevino/flowboard/internal/tui/state"
	"github.com/thenoetrevino/flowboard/internal/tui/theme"
)

// RenderStatusLine renders notifications, or the key hint for mode
func RenderStatusLine(notifications []state.Notification, hint string, width int) string {
	if len(notifications) == 0 {
		return SubtleStyle.Width(width).Render(hint)
	}

	rendered := make([]string, len(notifications))
	for i, n := range notifications {
		style := lipgloss.NewStyle().
			Foreground(lipgloss.Color(theme.InfoFg)).
			Background(lipgloss.Color(theme.InfoBg)).
			Padding(0, 1)
		icon := "● "
		if n.Level == state.LevelError {
			style = style.
				Foreground(lipgloss.Color(theme.ErrorFg)).
				Background(lipgloss.Color(theme.ErrorBg))
			icon = "✗ "
		}
		rendered[i] = style.Render(icon + n.Message)
	}
	return strings.Join(rendered, " ")
}
