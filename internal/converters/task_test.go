package converters

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/flowboard/internal/models"
)

// ============================================================================
// TEST CASES - Titles and tags
// ============================================================================

func TestNormalizeTitle(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"trims whitespace", "  Plan sprint  ", "Plan sprint"},
		{"blank becomes empty", " \t\n", ""},
		{"caps length", strings.Repeat("a", 130), strings.Repeat("a", models.MaxTitleLength)},
		{"counts runes not bytes", strings.Repeat("é", 121), strings.Repeat("é", models.MaxTitleLength)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeTitle(tt.input))
		})
	}
}

func TestNormalizeTags(t *testing.T) {
	tests := []struct {
		name  string
		input []string
		want  []string
	}{
		{"nil input", nil, []string{}},
		{"lowercases and trims", []string{" QA ", "Release"}, []string{"qa", "release"}},
		{"drops case-insensitive duplicates", []string{"qa", "QA", "Qa"}, []string{"qa"}},
		{"drops blanks", []string{"", "  ", "ops"}, []string{"ops"}},
		{"caps length", []string{"abcdefghijklmnopqrstuvwxyz"}, []string{"abcdefghijklmnopqr"}},
		{"keeps first-seen order", []string{"b", "a", "b"}, []string{"b", "a"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeTags(tt.input))
		})
	}
}

func TestSplitTags(t *testing.T) {
	assert.Equal(t, []string{}, SplitTags("  "))
	assert.Equal(t, []string{"qa", "release"}, SplitTags("QA, release,,qa"))
}

// ============================================================================
// TEST CASES - Dates and enums
// ============================================================================

func TestParseDueDate(t *testing.T) {
	got, err := ParseDueDate("")
	require.NoError(t, err)
	assert.Empty(t, got)

	got, err = ParseDueDate("2024-06-01")
	require.NoError(t, err)
	assert.Equal(t, "2024-06-01T00:00:00.000Z", got)

	got, err = ParseDueDate("2024-06-01T12:00:00+02:00")
	require.NoError(t, err)
	assert.Equal(t, "2024-06-01T10:00:00.000Z", got)

	_, err = ParseDueDate("next tuesday")
	assert.Error(t, err)
}

func TestParsePriority(t *testing.T) {
	p, err := ParsePriority(" HIGH ")
	require.NoError(t, err)
	assert.Equal(t, models.PriorityHigh, p)

	_, err = ParsePriority("critical")
	assert.Error(t, err)
}

func TestNormalizeText(t *testing.T) {
	assert.Equal(t, "Laura Chen", NormalizeText("  Laura Chen\n"))
	assert.Equal(t, "", NormalizeText(" \t "))
}
