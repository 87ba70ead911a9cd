package converters

import (
	"fmt"
	"strings"

	"github.com/thenoetrevino/flowboard/internal/models"
)

// ParseStatus resolves user input to a column key.
//
// Accepted forms, all case-insensitive:
// - the key itself ("inProgress")
// - the display title ("In Progress")
// - kebab or snake case ("in-progress", "in_progress")
func ParseStatus(input string) (models.ColumnKey, error) {
	needle := squash(input)
	if needle == "" {
		return "", fmt.Errorf("status cannot be empty")
	}
	for _, col := range models.Columns() {
		if squash(string(col.ID)) == needle || squash(col.Title) == needle {
			return col.ID, nil
		}
	}
	return "", fmt.Errorf("invalid status '%s' (must be: %s)", input, strings.Join(StatusNames(), ", "))
}

// StatusNames lists the column keys in board order
func StatusNames() []string {
	cols := models.Columns()
	names := make([]string, len(cols))
	for i, c := range cols {
		names[i] = string(c.ID)
	}
	return names
}

// ColumnTitle returns the display title for key, or the raw key if unknown
func ColumnTitle(key models.ColumnKey) string {
	if col, ok := models.ColumnByKey(key); ok {
		return col.Title
	}
	return string(key)
}

// squash lowercases and strips separators so "In Progress" == "inprogress"
func squash(s string) string {
	r := strings.NewReplacer(" ", "", "-", "", "_", "")
	return strings.ToLower(r.Replace(strings.TrimSpace(s)))
}
