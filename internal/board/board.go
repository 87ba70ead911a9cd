// Package board derives the read-side projections of the task collection:
// filtered and sorted columns, aggregate statistics and the tag universe.
// Everything here is a pure function of (tasks, filters).
package board

import (
	"math"
	"slices"
	"strings"

	"github.com/thenoetrevino/flowboard/internal/models"
)

// Filters narrows the visible tasks. Zero values match everything.
type Filters struct {
	Search   string
	Priority string // models.FilterAll or a priority
	Tag      string // models.FilterAll or a tag
}

// Active reports whether any filter narrows the board
func (f Filters) Active() bool {
	return strings.TrimSpace(f.Search) != "" || !isAll(f.Priority) || !isAll(f.Tag)
}

// Match applies, in order: priority, tag, free-text search
func (f Filters) Match(t models.Task) bool {
	if !isAll(f.Priority) && string(t.Priority) != f.Priority {
		return false
	}
	if !isAll(f.Tag) && !t.HasTag(f.Tag) {
		return false
	}
	return t.Matches(f.Search)
}

func isAll(v string) bool {
	return v == "" || v == models.FilterAll
}

// ColumnView is one board column with its visible, sorted tasks
type ColumnView struct {
	Column models.Column `json:"column"`
	Tasks  []models.Task `json:"tasks"`
}

// ColumnStat is the unfiltered task count of one column
type ColumnStat struct {
	ID    models.ColumnKey `json:"id"`
	Title string           `json:"title"`
	Count int              `json:"count"`
}

// Stats aggregates over the whole, unfiltered collection
type Stats struct {
	Total      int          `json:"total"`
	ByColumn   []ColumnStat `json:"byColumn"`
	Completion int          `json:"completion"` // percent of tasks in done, rounded
}

// View bundles everything a board renderer needs
type View struct {
	Filters Filters      `json:"-"`
	Columns []ColumnView `json:"columns"`
	Stats   Stats        `json:"stats"`
	Tags    []string     `json:"tags"`
	Visible int          `json:"visible"`
}

// Filter returns the tasks matching f, in their original order
func Filter(tasks []models.Task, f Filters) []models.Task {
	out := make([]models.Task, 0, len(tasks))
	for _, t := range tasks {
		if f.Match(t) {
			out = append(out, t)
		}
	}
	return out
}

// Sort orders tasks by priority severity (high first), then newest first.
// The sort is stable so fully tied tasks keep store order.
func Sort(tasks []models.Task) {
	slices.SortStableFunc(tasks, compareTasks)
}

func compareTasks(a, b models.Task) int {
	if d := sortRank(a.Priority) - sortRank(b.Priority); d != 0 {
		return d
	}
	return b.Created().Compare(a.Created())
}

// sortRank places unknown priorities after low
func sortRank(p models.Priority) int {
	if r := p.Rank(); r >= 0 {
		return r
	}
	return len(models.Priorities())
}

// Group partitions tasks by status into the fixed columns, each sorted.
// Tasks with an unknown status belong to no column.
func Group(tasks []models.Task) []ColumnView {
	cols := models.Columns()
	views := make([]ColumnView, len(cols))
	index := make(map[models.ColumnKey]int, len(cols))
	for i, c := range cols {
		views[i] = ColumnView{Column: c, Tasks: []models.Task{}}
		index[c.ID] = i
	}
	for _, t := range tasks {
		if i, ok := index[t.Status]; ok {
			views[i].Tasks = append(views[i].Tasks, t)
		}
	}
	for i := range views {
		Sort(views[i].Tasks)
	}
	return views
}

// ComputeStats counts the unfiltered collection
func ComputeStats(tasks []models.Task) Stats {
	cols := models.Columns()
	stats := Stats{Total: len(tasks), ByColumn: make([]ColumnStat, len(cols))}
	done := 0
	for i, c := range cols {
		n := 0
		for _, t := range tasks {
			if t.Status == c.ID {
				n++
			}
		}
		stats.ByColumn[i] = ColumnStat{ID: c.ID, Title: c.Title, Count: n}
		if c.ID == models.StatusDone {
			done = n
		}
	}
	if stats.Total > 0 {
		stats.Completion = int(math.Round(float64(done) / float64(stats.Total) * 100))
	}
	return stats
}

// TagUniverse lists every distinct tag in first-seen order, prefixed with
// the models.FilterAll sentinel
func TagUniverse(tasks []models.Task) []string {
	tags := []string{models.FilterAll}
	seen := make(map[string]struct{})
	for _, t := range tasks {
		for _, tag := range t.Tags {
			if _, ok := seen[tag]; ok {
				continue
			}
			seen[tag] = struct{}{}
			tags = append(tags, tag)
		}
	}
	return tags
}

// Project computes the full board view
func Project(tasks []models.Task, f Filters) View {
	filtered := Filter(tasks, f)
	return View{
		Filters: f,
		Columns: Group(filtered),
		Stats:   ComputeStats(tasks),
		Tags:    TagUniverse(tasks),
		Visible: len(filtered),
	}
}

// Column returns the view for key
func (v View) Column(key models.ColumnKey) (ColumnView, bool) {
	for _, c := range v.Columns {
		if c.Column.ID == key {
			return c, true
		}
	}
	return ColumnView{}, false
}
