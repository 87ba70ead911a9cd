package task

import (
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

func TestListTasks(t *testing.T) {
	_, app := cli.SetupCLITest(t)
	cli.CreateTestTask(t, app, taskservice.CreateTaskRequest{Title: "Design review", Priority: models.PriorityHigh, Tags: []string{"design"}})
	cli.CreateTestTask(t, app, taskservice.CreateTaskRequest{Title: "QA pass", Status: models.StatusReview, Tags: []string{"qa", "release"}})
	cli.CreateTestTask(t, app, taskservice.CreateTaskRequest{Title: "Write docs", Priority: models.PriorityLow})

	tests := []struct {
		name string
		args []string
		want []string // ids
	}{
		{"all tasks newest first", nil, []string{"task-0003", "task-0002", "task-0001"}},
		{"priority filter", []string{"--priority", "high"}, []string{"task-0001"}},
		{"tag filter", []string{"--tag", "QA"}, []string{"task-0002"}},
		{"tag filter excludes", []string{"--tag", "marketing"}, nil},
		{"search", []string{"--search", "DOCS"}, []string{"task-0003"}},
		{"status", []string{"--status", "review"}, []string{"task-0002"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			output, err := cli.ExecuteCLICommand(t, app, ListCmd(), append(tt.args, "--quiet"))
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

func TestListTasks_JSON(t *testing.T) {
	_, app := cli.SetupCLITest(t)
	cli.CreateTestTask(t, app, taskservice.CreateTaskRequest{Title: "Only task"})

	output, err := cli.ExecuteCLICommand(t, app, ListCmd(), []string{"--json"})
	require.NoError(t, err)

	result := testutil.ParseJSON(t, output)
	tasks := result["tasks"].([]any)
	require.Len(t, tasks, 1)
	task := tasks[0].(map[string]any)
	assert.Equal(t, "Only task", task["title"])
	assert.Equal(t, []any{}, task["tags"], "tags must encode as an empty array")
	_, hasDue := task["dueDate"]
	assert.False(t, hasDue, "empty optional fields are omitted")
}

func TestListTasks_InvalidFilter(t *testing.T) {
	_, app := cli.SetupCLITest(t)

	_, err := cli.ExecuteCLICommand(t, app, ListCmd(), []string{"--status", "archived", "--quiet"})
	assert.Equal(t, clipkg.ExitValidation, clipkg.ExitCode(err))

	_, err = cli.ExecuteCLICommand(t, app, ListCmd(), []string{"--priority", "urgent", "--quiet"})
	assert.Equal(t, clipkg.ExitValidation, clipkg.ExitCode(err))
}

func TestListTasks_Human(t *testing.T) {
	_, app := cli.SetupCLITest(t)

	output, err := cli.ExecuteCLICommand(t, app, ListCmd(), nil)
	require.NoError(t, err)
	assert.Contains(t, output, "No tasks found")

	cli.CreateTestTask(t, app, taskservice.CreateTaskRequest{Title: "Visible"})
	output, err = cli.ExecuteCLICommand(t, app, ListCmd(), nil)
	require.NoError(t, err)
	assert.Contains(t, output, "[task-000] Visible (Backlog, medium)")
}
