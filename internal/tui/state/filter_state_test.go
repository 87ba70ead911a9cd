package state

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/thenoetrevino/flowboard/internal/models"
)

func TestCyclePriority(t *testing.T) {
	s := NewFilterState()

	var seen []string
	for range 4 {
		s.CyclePriority()
		seen = append(seen, s.Priority())
	}
	assert.Equal(t, []string{"high", "medium", "low", models.FilterAll}, seen)
}

func TestCycleTag(t *testing.T) {
	s := NewFilterState()
	universe := []string{models.FilterAll, "qa", "release"}

	s.CycleTag(universe)
	assert.Equal(t, "qa", s.Tag())
	s.CycleTag(universe)
	s.CycleTag(universe)
	assert.Equal(t, models.FilterAll, s.Tag())

	s.CycleTag(universe)
	s.CycleTag([]string{models.FilterAll, "ops"})
	assert.Equal(t, models.FilterAll, s.Tag(), "a vanished tag restarts the cycle")
}

func TestSyncTag(t *testing.T) {
	s := NewFilterState()
	s.CycleTag([]string{models.FilterAll, "qa"})

	s.SyncTag([]string{models.FilterAll, "qa", "ops"})
	assert.Equal(t, "qa", s.Tag())

	s.SyncTag([]string{models.FilterAll, "ops"})
	assert.Equal(t, models.FilterAll, s.Tag())
}

func TestDescribeAndClear(t *testing.T) {
	s := NewFilterState()
	assert.False(t, s.Active())
	assert.Empty(t, s.Describe())

	s.Search.SetValue("docs")
	s.CyclePriority()
	s.CycleTag([]string{models.FilterAll, "qa"})

	assert.True(t, s.Active())
	assert.Equal(t, "search: docs  priority: high  tag: #qa", s.Describe())
	assert.Equal(t, "docs", s.Filters().Search)

	s.Clear()
	assert.False(t, s.Active())
	assert.Equal(t, models.FilterAll, s.Filters().Priority)
}
