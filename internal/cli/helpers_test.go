package cli

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thenoetrevino/flowboard/internal/models"
	"github.com/thenoetrevino/flowboard/internal/persistence"
	taskservice "github.com/thenoetrevino/flowboard/internal/services/task"
	"github.com/thenoetrevino/flowboard/internal/types"
)

func filterCmd(t *testing.T, args ...string) *cobra.Command {
	t.Helper()
	cmd := &cobra.Command{Use: "test"}
	AddFilterFlags(cmd)
	require.NoError(t, cmd.Flags().Parse(args))
	return cmd
}

func TestParseFilters(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		want    [3]string // search, priority, tag
		wantErr bool
	}{
		{name: "defaults", want: [3]string{"", "all", "all"}},
		{name: "priority", args: []string{"--priority", "HIGH"}, want: [3]string{"", "high", "all"}},
		{name: "tag normalized", args: []string{"--tag", " QA "}, want: [3]string{"", "all", "qa"}},
		{name: "search kept verbatim", args: []string{"--search", "Funnel Report"}, want: [3]string{"Funnel Report", "all", "all"}},
		{name: "explicit all", args: []string{"--priority", "All", "--tag", "all"}, want: [3]string{"", "all", "all"}},
		{name: "bad priority", args: []string{"--priority", "urgent"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := ParseFilters(filterCmd(t, tt.args...))
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, [3]string{f.Search, f.Priority, f.Tag})
		})
	}
}

func TestResolveTask(t *testing.T) {
	ctx := context.Background()
	ids := []types.TaskID{"abc11111", "abc22222", "def33333"}
	next := 0
	svc := taskservice.NewService(ctx, persistence.NewAdapter(persistence.NewMemorySlot()),
		taskservice.WithSeed(nil),
		taskservice.WithClock(func() time.Time { return time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC) }),
		taskservice.WithIDGenerator(func() types.TaskID { id := ids[next]; next++; return id }),
	)
	for _, title := range []string{"one", "two", "three"} {
		_, err := svc.CreateTask(ctx, taskservice.CreateTaskRequest{Title: title})
		require.NoError(t, err)
	}

	got, err := ResolveTask(ctx, svc, "abc22222")
	require.NoError(t, err)
	assert.Equal(t, "two", got.Title)

	got, err = ResolveTask(ctx, svc, "def")
	require.NoError(t, err)
	assert.Equal(t, "three", got.Title)

	_, err = ResolveTask(ctx, svc, "abc")
	assert.True(t, errors.Is(err, ErrAmbiguousID))

	_, err = ResolveTask(ctx, svc, "zzz")
	assert.True(t, errors.Is(err, taskservice.ErrTaskNotFound))

	_, err = ResolveTask(ctx, svc, "  ")
	assert.True(t, errors.Is(err, taskservice.ErrTaskNotFound))
}

func TestShortID(t *testing.T) {
	assert.Equal(t, "12345678", ShortID("1234567890"))
	assert.Equal(t, "abc", ShortID("abc"))
	assert.Equal(t, "", ShortID(models.Task{}.ID))
}
