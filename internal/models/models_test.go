package models

import (
	"errors"
	"testing"
	"time"
)

// ============================================================================
// Column Tests
// ============================================================================

func TestColumns_FixedOrder(t *testing.T) {
	cols := Columns()
	want := []ColumnKey{StatusBacklog, StatusInProgress, StatusReview, StatusDone}
	if len(cols) != len(want) {
		t.Fatalf("Expected %d columns, got %d", len(want), len(cols))
	}
	for i, c := range cols {
		if c.ID != want[i] {
			t.Errorf("column %d: expected %s, got %s", i, want[i], c.ID)
		}
		if c.Title == "" || c.Accent == "" {
			t.Errorf("column %s is missing title or accent", c.ID)
		}
	}

	// Mutating the returned slice must not leak into the definitions
	cols[0].Title = "mutated"
	if Columns()[0].Title != "Backlog" {
		t.Error("Columns() returned shared storage")
	}
}

func TestColumnKey_NextPrev(t *testing.T) {
	next, err := StatusBacklog.Next()
	if err != nil || next != StatusInProgress {
		t.Errorf("backlog.Next() = %s, %v", next, err)
	}
	if _, err := StatusDone.Next(); !errors.Is(err, ErrAlreadyLastColumn) {
		t.Errorf("done.Next() error = %v, want ErrAlreadyLastColumn", err)
	}
	prev, err := StatusDone.Prev()
	if err != nil || prev != StatusReview {
		t.Errorf("done.Prev() = %s, %v", prev, err)
	}
	if _, err := StatusBacklog.Prev(); !errors.Is(err, ErrAlreadyFirstColumn) {
		t.Errorf("backlog.Prev() error = %v, want ErrAlreadyFirstColumn", err)
	}
	if _, err := ColumnKey("archive").Next(); !errors.Is(err, ErrInvalidStatus) {
		t.Errorf("archive.Next() error = %v, want ErrInvalidStatus", err)
	}
}

// ============================================================================
// Priority Tests
// ============================================================================

func TestPriority_Rank(t *testing.T) {
	if !(PriorityHigh.Rank() < PriorityMedium.Rank() && PriorityMedium.Rank() < PriorityLow.Rank()) {
		t.Error("expected high < medium < low")
	}
	if Priority("urgent").Valid() {
		t.Error("unknown priority reported valid")
	}
}

// ============================================================================
// Task Tests
// ============================================================================

func TestTask_Matches(t *testing.T) {
	task := Task{
		Title:       "QA regression suite",
		Description: "Run regression tests before release freeze.",
		Tags:        []string{"qa", "release"},
	}

	tests := []struct {
		query string
		want  bool
	}{
		{"", true},
		{"   ", true},
		{"REGRESSION", true},
		{"freeze", true},
		{"relea", true},
		{"marketing", false},
	}

	for _, tt := range tests {
		if got := task.Matches(tt.query); got != tt.want {
			t.Errorf("Matches(%q) = %v, want %v", tt.query, got, tt.want)
		}
	}
}

func TestTask_CloneDoesNotShareTags(t *testing.T) {
	task := Task{Tags: []string{"qa"}}
	c := task.Clone()
	c.Tags[0] = "changed"
	if task.Tags[0] != "qa" {
		t.Error("Clone shares the tags slice")
	}
	if (Task{}).Clone().Tags == nil {
		t.Error("Clone should normalize nil tags to an empty slice")
	}
}

func TestTimestamp_RoundTrip(t *testing.T) {
	ts := time.Date(2024, 5, 1, 9, 30, 0, 123_000_000, time.UTC)
	s := FormatTimestamp(ts)
	if s != "2024-05-01T09:30:00.123Z" {
		t.Fatalf("FormatTimestamp = %s", s)
	}
	if !ParseTimestamp(s).Equal(ts) {
		t.Errorf("ParseTimestamp(%s) = %v", s, ParseTimestamp(s))
	}
	if !ParseTimestamp("yesterday").IsZero() {
		t.Error("garbage should parse to the zero time")
	}
}

func TestTask_Due(t *testing.T) {
	if _, ok := (Task{}).Due(); ok {
		t.Error("task without due date reported one")
	}
	due, ok := Task{DueDate: "2024-06-01T00:00:00.000Z"}.Due()
	if !ok || due.Day() != 1 {
		t.Errorf("Due() = %v, %v", due, ok)
	}
}
