package models

import (
	"slices"
	"strings"
	"time"

	"github.com/thenoetrevino/flowboard/internal/types"
)

// Field limits enforced at the input boundary
const (
	MaxTitleLength = 120
	MaxTagLength   = 18
)

// TimestampLayout is the ISO-8601 form used for createdAt and dueDate,
// millisecond precision in UTC (e.g., "2024-05-01T09:30:00.000Z")
const TimestampLayout = "2006-01-02T15:04:05.000Z07:00"

// Task represents a single card on the kanban board.
// Timestamps are kept in their textual form so a persisted snapshot
// round-trips field for field.
type Task struct {
	ID          types.TaskID `json:"id"`
	Title       string       `json:"title"`
	Description string       `json:"description,omitempty"`
	Status      ColumnKey    `json:"status"`
	Priority    Priority     `json:"priority"`
	Assignee    string       `json:"assignee,omitempty"`
	CreatedAt   string       `json:"createdAt"`
	DueDate     string       `json:"dueDate,omitempty"`
	Tags        []string     `json:"tags"`
}

// GetID lets output formatters print the id in quiet mode
func (t Task) GetID() string {
	return t.ID.String()
}

// Created parses CreatedAt. Unparseable values yield the zero time.
func (t Task) Created() time.Time {
	return ParseTimestamp(t.CreatedAt)
}

// Due parses DueDate; ok is false when the task has no due date
func (t Task) Due() (time.Time, bool) {
	if t.DueDate == "" {
		return time.Time{}, false
	}
	due := ParseTimestamp(t.DueDate)
	return due, !due.IsZero()
}

// HasTag reports whether the task carries tag (exact match)
func (t Task) HasTag(tag string) bool {
	return slices.Contains(t.Tags, tag)
}

// Clone returns a copy that shares no slices with t
func (t Task) Clone() Task {
	c := t
	c.Tags = slices.Clone(t.Tags)
	if c.Tags == nil {
		c.Tags = []string{}
	}
	return c
}

// Matches reports whether query occurs, case-insensitively, in the title,
// the description or any tag. A blank query matches every task.
func (t Task) Matches(query string) bool {
	if strings.TrimSpace(query) == "" {
		return true
	}
	q := strings.ToLower(query)
	if strings.Contains(strings.ToLower(t.Title), q) ||
		strings.Contains(strings.ToLower(t.Description), q) {
		return true
	}
	for _, tag := range t.Tags {
		if strings.Contains(strings.ToLower(tag), q) {
			return true
		}
	}
	return false
}

// FormatTimestamp renders ts in TimestampLayout
func FormatTimestamp(ts time.Time) string {
	return ts.UTC().Format(TimestampLayout)
}

// ParseTimestamp parses an ISO-8601 timestamp, returning the zero time on failure
func ParseTimestamp(s string) time.Time {
	if s == "" {
		return time.Time{}
	}
	ts, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return time.Time{}
	}
	return ts
}
