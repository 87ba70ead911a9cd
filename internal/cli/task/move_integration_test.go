package task

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

func TestMoveTask(t *testing.T) {
	tests := []struct {
		name   string
		start  models.ColumnKey
		target string
		want   models.ColumnKey
	}{
		{"next", models.StatusBacklog, "next", models.StatusInProgress},
		{"prev", models.StatusReview, "prev", models.StatusInProgress},
		{"previous alias", models.StatusDone, "previous", models.StatusReview},
		{"by title", models.StatusBacklog, "In Progress", models.StatusInProgress},
		{"by key", models.StatusBacklog, "done", models.StatusDone},
		{"same column", models.StatusReview, "review", models.StatusReview},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, app := cli.SetupCLITest(t)
			created := cli.CreateTestTask(t, app, taskservice.CreateTaskRequest{Title: "Card", Status: tt.start})

			output, err := cli.ExecuteCLICommand(t, app, MoveCmd(), []string{string(created.ID), tt.target, "--json"})
			require.NoError(t, err)

			result := testutil.ParseJSON(t, output)
			move := result["move"].(map[string]any)
			assert.Equal(t, string(tt.start), move["from_column"])
			assert.Equal(t, string(tt.want), move["to_column"])

			stored, _ := app.TaskService.Get(context.Background(), created.ID)
			assert.Equal(t, tt.want, stored.Status)
		})
	}
}

func TestMoveTask_Boundaries(t *testing.T) {
	tests := []struct {
		name     string
		start    models.ColumnKey
		target   string
		wantCode int
		wantErr  string
	}{
		{"next from done", models.StatusDone, "next", clipkg.ExitValidation, "NO_NEXT_COLUMN"},
		{"prev from backlog", models.StatusBacklog, "prev", clipkg.ExitValidation, "NO_PREV_COLUMN"},
		{"unknown column", models.StatusBacklog, "archive", clipkg.ExitNotFound, "COLUMN_NOT_FOUND"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, app := cli.SetupCLITest(t)
			created := cli.CreateTestTask(t, app, taskservice.CreateTaskRequest{Title: "Card", Status: tt.start})

			output, err := cli.ExecuteCLICommand(t, app, MoveCmd(), []string{string(created.ID), tt.target, "--json"})
			require.Error(t, err)
			assert.Equal(t, tt.wantCode, clipkg.ExitCode(err))

			result := testutil.ParseJSON(t, output)
			assert.Equal(t, tt.wantErr, result["error"].(map[string]any)["code"])

			stored, _ := app.TaskService.Get(context.Background(), created.ID)
			assert.Equal(t, tt.start, stored.Status, "failed move leaves the task in place")
		})
	}
}

func TestMoveTask_Human(t *testing.T) {
	_, app := cli.SetupCLITest(t)
	created := cli.CreateTestTask(t, app, taskservice.CreateTaskRequest{Title: "Card"})

	output, err := cli.ExecuteCLICommand(t, app, MoveCmd(), []string{string(created.ID), "next"})
	require.NoError(t, err)
	assert.Contains(t, output, "moved to 'In Progress'")

	output, err = cli.ExecuteCLICommand(t, app, MoveCmd(), []string{string(created.ID), "in-progress"})
	require.NoError(t, err)
	assert.True(t, strings.Contains(output, "already in 'In Progress'"), output)
}

func TestMoveTask_RequiresTwoArgs(t *testing.T) {
	_, app := cli.SetupCLITest(t)

	_, err := cli.ExecuteCLICommand(t, app, MoveCmd(), []string{"task-0001"})
	assert.Error(t, err)
}
