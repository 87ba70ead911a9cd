package board

import (
	"context"
	"slices"
	"sync"

	"github.com/thenoetrevino/flowboard/internal/models"
)

// Source is the read side of the task store
type Source interface {
	List(ctx context.Context) []models.Task
	Version() uint64
}

// Memo caches the last projection, keyed by store version and filters
type Memo struct {
	mu      sync.Mutex
	valid   bool
	version uint64
	filters Filters
	view    View
}

// View returns the cached projection when neither the store nor the
// filters changed since the last call, recomputing otherwise.
// The result is a copy; callers may modify it freely.
func (m *Memo) View(ctx context.Context, src Source, f Filters) View {
	// Version is read before List: if a mutation lands in between, the
	// cached entry is keyed to the older version and recomputed next time
	version := src.Version()

	m.mu.Lock()
	defer m.mu.Unlock()

	if m.valid && m.version == version && m.filters == f {
		return m.view.clone()
	}
	m.view = Project(src.List(ctx), f)
	m.version = version
	m.filters = f
	m.valid = true
	return m.view.clone()
}

func (v View) clone() View {
	out := v
	out.Columns = make([]ColumnView, len(v.Columns))
	for i, c := range v.Columns {
		tasks := make([]models.Task, len(c.Tasks))
		for j, t := range c.Tasks {
			tasks[j] = t.Clone()
		}
		out.Columns[i] = ColumnView{Column: c.Column, Tasks: tasks}
	}
	out.Stats.ByColumn = slices.Clone(v.Stats.ByColumn)
	out.Tags = slices.Clone(v.Tags)
	return out
}

// Invalidate drops the cached projection
func (m *Memo) Invalidate() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.valid = false
}
