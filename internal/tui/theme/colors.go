// Package theme holds the resolved TUI colors. Init must run before any
// component renders.
package theme

import "github.com/thenoetrevino/flowboard/internal/config/colors"

// Colors holds the current theme colors, initialized by Init
var (
	Accent         string
	Title          string
	Subtle         string
	Normal         string
	Create         string
	Delete         string
	ColumnBorder   string
	CardBorder     string
	CardBg         string
	SelectedBorder string
	SelectedBg     string
	InfoFg         string
	InfoBg         string
	ErrorFg        string
	ErrorBg        string
	StatusBarBg    string
	StatusBarText  string
)

func init() {
	Init(*colors.Default())
}

// Init initializes the theme colors from the given color scheme
func Init(scheme colors.ColorScheme) {
	Accent = scheme.Accent
	Title = scheme.Title
	Subtle = scheme.Subtle
	Normal = scheme.Normal
	Create = scheme.Create
	Delete = scheme.Delete
	ColumnBorder = scheme.ColumnBorder
	CardBorder = scheme.CardBorder
	CardBg = scheme.CardBackground
	SelectedBorder = scheme.SelectedBorder
	SelectedBg = scheme.SelectedBg
	InfoFg = scheme.InfoFg
	InfoBg = scheme.InfoBg
	ErrorFg = scheme.ErrorFg
	ErrorBg = scheme.ErrorBg
	StatusBarBg = scheme.StatusBarBg
	StatusBarText = scheme.StatusBarText
}
