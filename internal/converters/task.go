// Package converters normalizes user-entered values into the shapes the
// task store accepts.
//
// All conversions handle:
// - Surrounding whitespace (titles, descriptions, assignees, tags)
// - Tag casing and duplicates (lowercased, first occurrence wins)
// - Date-only input ("2024-06-01") promoted to a full ISO-8601 timestamp
//
// Conversion failures are explicit - never silent type coercions.
//
// Example usage:
//
//	tags := converters.NormalizeTags([]string{" QA", "qa", "Release"})
//	// []string{"qa", "release"}
//
//	due, err := converters.ParseDueDate("2024-06-01")
//	// "2024-06-01T00:00:00.000Z"
package converters

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/thenoetrevino/flowboard/internal/models"
)

// dateOnlyLayout is what a date picker produces
const dateOnlyLayout = "2006-01-02"

// NormalizeTitle trims the title and caps it at models.MaxTitleLength runes
func NormalizeTitle(title string) string {
	return truncateRunes(strings.TrimSpace(title), models.MaxTitleLength)
}

// NormalizeText trims free text such as descriptions and assignees
func NormalizeText(s string) string {
	return strings.TrimSpace(s)
}

// NormalizeTag lowercases and trims a single tag, capped at models.MaxTagLength runes.
// An empty result means the tag should be dropped.
func NormalizeTag(tag string) string {
	return truncateRunes(strings.ToLower(strings.TrimSpace(tag)), models.MaxTagLength)
}

// NormalizeTags normalizes every tag, dropping blanks and duplicates while
// keeping first-seen order. The result is never nil.
func NormalizeTags(tags []string) []string {
	result := make([]string, 0, len(tags))
	seen := make(map[string]struct{}, len(tags))
	for _, raw := range tags {
		tag := NormalizeTag(raw)
		if tag == "" {
			continue
		}
		if _, dup := seen[tag]; dup {
			continue
		}
		seen[tag] = struct{}{}
		result = append(result, tag)
	}
	return result
}

// SplitTags splits a comma-separated tag list, as typed into a single field
func SplitTags(input string) []string {
	if strings.TrimSpace(input) == "" {
		return []string{}
	}
	return NormalizeTags(strings.Split(input, ","))
}

// ParseDueDate converts user input into an ISO-8601 timestamp.
// Blank input yields "" (no due date). A date-only value becomes midnight UTC.
func ParseDueDate(input string) (string, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return "", nil
	}
	if d, err := time.Parse(dateOnlyLayout, input); err == nil {
		return models.FormatTimestamp(d), nil
	}
	if ts, err := time.Parse(time.RFC3339Nano, input); err == nil {
		return models.FormatTimestamp(ts), nil
	}
	return "", fmt.Errorf("invalid due date '%s' (must be YYYY-MM-DD or RFC 3339)", input)
}

// ParsePriority maps a priority string to its value
func ParsePriority(priority string) (models.Priority, error) {
	p := models.Priority(strings.ToLower(strings.TrimSpace(priority)))
	if !p.Valid() {
		return "", fmt.Errorf("invalid priority '%s' (must be: high, medium, low)", priority)
	}
	return p, nil
}

func truncateRunes(s string, limit int) string {
	if utf8.RuneCountInString(s) <= limit {
		return s
	}
	runes := []rune(s)
	return strings.TrimSpace(string(runes[:limit]))
}
