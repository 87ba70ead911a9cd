package view

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	clipkg "github.com/thenoetrevino/flowboard/internal/cli"
	"github.com/thenoetrevino/flowboard/internal/models"
	taskservice "github.com/thenoetrevino/flowboard/internal/services/task"
	"github.com/thenoetrevino/flowboard/internal/testutil"
	"github.com/thenoetrevino/flowboard/internal/testutil/cli"
)

func columnTitles(t *testing.T, column any) []string {
	t.Helper()
	var out []string
	for _, task := range column.(map[string]any)["tasks"].([]any) {
		out = append(out, task.(map[string]any)["title"].(string))
	}
	return out
}

func TestBoard_JSON(t *testing.T) {
	_, app := cli.SetupSeededCLITest(t)

	output, err := cli.ExecuteCLICommand(t, app, BoardCmd(), []string{"--json"})
	require.NoError(t, err)

	result := testutil.ParseJSON(t, output)
	b := result["board"].(map[string]any)
	columns := b["columns"].([]any)
	require.Len(t, columns, 4)
	assert.Equal(t, []string{"Plan sprint goals"}, columnTitles(t, columns[0]))
	assert.Equal(t, []string{"Publish changelog"}, columnTitles(t, columns[3]))
	assert.Equal(t, float64(4), b["visible"])

	stats := b["stats"].(map[string]any)
	assert.Equal(t, float64(4), stats["total"])
	assert.Equal(t, float64(25), stats["completion"])
	assert.Equal(t, []any{"all", "product", "sprint", "analytics", "qa", "release", "marketing"}, b["tags"])
}

func TestBoard_Filters(t *testing.T) {
	_, app := cli.SetupSeededCLITest(t)

	tests := []struct {
		name string
		args []string
		want []string
	}{
		{"tag qa", []string{"--tag", "qa"}, []string{"task-0003"}},
		{"tag marketing", []string{"--tag", "marketing"}, []string{"task-0004"}},
		{"priority high", []string{"--priority", "high"}, []string{"task-0002"}},
		{"search dashboard", []string{"--search", "Dashboard"}, []string{"task-0002"}},
		{"no match", []string{"--tag", "qa", "--priority", "low"}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			output, err := cli.ExecuteCLICommand(t, app, BoardCmd(), append(tt.args, "--quiet"))
			require.NoError(t, err)

			got := strings.Fields(output)
			if tt.want == nil {
				assert.Empty(t, got)
			} else {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestBoard_ColumnOrder(t *testing.T) {
	_, app := cli.SetupCLITest(t)
	cli.CreateTestTask(t, app, taskservice.CreateTaskRequest{Title: "low", Priority: models.PriorityLow})
	cli.CreateTestTask(t, app, taskservice.CreateTaskRequest{Title: "high older", Priority: models.PriorityHigh})
	cli.CreateTestTask(t, app, taskservice.CreateTaskRequest{Title: "high newer", Priority: models.PriorityHigh})

	output, err := cli.ExecuteCLICommand(t, app, BoardCmd(), []string{"--json"})
	require.NoError(t, err)

	result := testutil.ParseJSON(t, output)
	columns := result["board"].(map[string]any)["columns"].([]any)
	assert.Equal(t, []string{"high newer", "high older", "low"}, columnTitles(t, columns[0]))
}

func TestBoard_Human(t *testing.T) {
	_, app := cli.SetupSeededCLITest(t)

	output, err := cli.ExecuteCLICommand(t, app, BoardCmd(), []string{"--tag", "qa"})
	require.NoError(t, err)
	assert.Contains(t, output, "QA regression suite")
	assert.Contains(t, output, "No tasks")
	assert.Contains(t, output, "Showing 1 of 4 tasks")
}

func TestBoard_InvalidPriority(t *testing.T) {
	_, app := cli.SetupSeededCLITest(t)

	_, err := cli.ExecuteCLICommand(t, app, BoardCmd(), []string{"--priority", "urgent", "--json"})
	assert.Equal(t, clipkg.ExitValidation, clipkg.ExitCode(err))
}

func TestStats(t *testing.T) {
	_, app := cli.SetupSeededCLITest(t)

	output, err := cli.ExecuteCLICommand(t, app, StatsCmd(), []string{"--quiet"})
	require.NoError(t, err)
	assert.Equal(t, "25%", strings.TrimSpace(output))

	id := app.TaskService.List(context.Background())[0].ID
	require.NoError(t, app.TaskService.MoveTask(context.Background(), id, models.StatusDone))

	output, err = cli.ExecuteCLICommand(t, app, StatsCmd(), []string{"--json"})
	require.NoError(t, err)

	stats := testutil.ParseJSON(t, output)["stats"].(map[string]any)
	assert.Equal(t, float64(50), stats["completion"])
	byColumn := stats["byColumn"].([]any)
	require.Len(t, byColumn, 4)
	assert.Equal(t, float64(2), byColumn[3].(map[string]any)["count"])
}

func TestStats_Empty(t *testing.T) {
	_, app := cli.SetupCLITest(t)

	output, err := cli.ExecuteCLICommand(t, app, StatsCmd(), []string{"--quiet"})
	require.NoError(t, err)
	assert.Equal(t, "0%", strings.TrimSpace(output))
}

func TestTags(t *testing.T) {
	_, app := cli.SetupSeededCLITest(t)

	output, err := cli.ExecuteCLICommand(t, app, TagsCmd(), []string{"--json"})
	require.NoError(t, err)
	assert.Equal(t, []any{"all", "product", "sprint", "analytics", "qa", "release", "marketing"},
		testutil.ParseJSON(t, output)["tags"])

	output, err = cli.ExecuteCLICommand(t, app, TagsCmd(), []string{"--quiet"})
	require.NoError(t, err)
	assert.Equal(t, []string{"product", "sprint", "analytics", "qa", "release", "marketing"}, strings.Fields(output))
}

func TestTags_None(t *testing.T) {
	_, app := cli.SetupCLITest(t)

	output, err := cli.ExecuteCLICommand(t, app, TagsCmd(), nil)
	require.NoError(t, err)
	assert.Contains(t, output, "No tags in use")
}

func TestReset(t *testing.T) {
	_, app := cli.SetupSeededCLITest(t)
	ctx := context.Background()
	cli.CreateTestTask(t, app, taskservice.CreateTaskRequest{Title: "Scratch"})
	require.Len(t, app.TaskService.List(ctx), 5)

	output, err := cli.ExecuteCLICommand(t, app, ResetCmd(), []string{"--json"})
	require.NoError(t, err)

	tasks := testutil.ParseJSON(t, output)["tasks"].([]any)
	require.Len(t, tasks, 4)
	assert.Equal(t, "Plan sprint goals", tasks[0].(map[string]any)["title"])
	assert.Len(t, app.TaskService.List(ctx), 4)
}

func TestReset_Declined(t *testing.T) {
	_, app := cli.SetupSeededCLITest(t)
	cli.CreateTestTask(t, app, taskservice.CreateTaskRequest{Title: "Scratch"})

	cmd := ResetCmd()
	cmd.SetIn(strings.NewReader("no\n"))
	output, err := cli.ExecuteCLICommand(t, app, cmd, nil)
	require.NoError(t, err)
	assert.Contains(t, output, "Cancelled")
	assert.Len(t, app.TaskService.List(context.Background()), 5)
}
