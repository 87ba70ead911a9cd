package components

import (
	"charm.land/lipgloss/v2"

	"github.com/thenoetrevino/flowboard/internal/tui/theme"
)

// Styles are rebuilt by InitStyles whenever the theme changes
var (
	ColumnStyle lipgloss.Style
	TaskStyle   lipgloss.Style
	TitleStyle  lipgloss.Style
	SubtleStyle lipgloss.Style
)

func init() {
	InitStyles()
}

// InitStyles builds the component styles from the current theme colors
func InitStyles() {
	ColumnStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(theme.ColumnBorder)).
		Padding(0, 1)

	TaskStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(theme.CardBorder))

	TitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(theme.Title))

	SubtleStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.Subtle)).
		Italic(true)
}
