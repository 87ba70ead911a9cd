package state

import (
	"slices"
	"strings"

	"charm.land/bubbles/v2/textinput"

	"github.com/thenoetrevino/flowboard/internal/board"
	"github.com/thenoetrevino/flowboard/internal/models"
)

// maxQueryLength caps the search box
const maxQueryLength = 100

// FilterState holds the board filters: the search box plus the priority
// and tag selectors, each of which is "all" when inactive.
type FilterState struct {
	Search   textinput.Model
	priority string
	tag      string
}

// NewFilterState creates a FilterState with every filter cleared.
func NewFilterState() *FilterState {
	ti := textinput.New()
	ti.Prompt = "/ "
	ti.Placeholder = "search title, description, tags"
	ti.CharLimit = maxQueryLength

	return &FilterState{
		Search:   ti,
		priority: models.FilterAll,
		tag:      models.FilterAll,
	}
}

// Filters returns the current filters for the board projection.
func (s *FilterState) Filters() board.Filters {
	return board.Filters{
		Search:   s.Search.Value(),
		Priority: s.priority,
		Tag:      s.tag,
	}
}

// Priority returns the selected priority filter.
func (s *FilterState) Priority() string {
	return s.priority
}

// Tag returns the selected tag filter.
func (s *FilterState) Tag() string {
	return s.tag
}

// CyclePriority advances all -> high -> medium -> low -> all.
func (s *FilterState) CyclePriority() {
	options := []string{models.FilterAll}
	for _, p := range models.Priorities() {
		options = append(options, string(p))
	}
	s.priority = next(options, s.priority)
}

// CycleTag advances through universe, which starts with the "all" sentinel.
// A tag that vanished from the universe restarts the cycle.
func (s *FilterState) CycleTag(universe []string) {
	if len(universe) == 0 {
		s.tag = models.FilterAll
		return
	}
	s.tag = next(universe, s.tag)
}

// SyncTag drops the tag filter when no task carries it any more.
func (s *FilterState) SyncTag(universe []string) {
	if !slices.Contains(universe, s.tag) {
		s.tag = models.FilterAll
	}
}

// Active reports whether any filter narrows the board.
func (s *FilterState) Active() bool {
	return s.Filters().Active()
}

// Clear resets every filter.
func (s *FilterState) Clear() {
	s.Search.SetValue("")
	s.priority = models.FilterAll
	s.tag = models.FilterAll
}

// Describe summarizes the active filters for the filter bar.
func (s *FilterState) Describe() string {
	var parts []string
	if q := strings.TrimSpace(s.Search.Value()); q != "" {
		parts = append(parts, "search: "+q)
	}
	if s.priority != models.FilterAll {
		parts = append(parts, "priority: "+s.priority)
	}
	if s.tag != models.FilterAll {
		parts = append(parts, "tag: #"+s.tag)
	}
	return strings.Join(parts, "  ")
}

func next(options []string, current string) string {
	i := slices.Index(options, current)
	return options[(i+1)%len(options)]
}
