package cli

import (
	"context"
	"testing"
	"time"

	"github.com/thenoetrevino/flowboard/internal/app"
	"github.com/thenoetrevino/flowboard/internal/config"
	"github.com/thenoetrevino/flowboard/internal/models"
	"github.com/thenoetrevino/flowboard/internal/persistence"
	taskservice "github.com/thenoetrevino/flowboard/internal/services/task"
	"github.com/thenoetrevino/flowboard/internal/testutil"
)

// Epoch is the first timestamp the test clock hands out
var Epoch = time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)

// SetupCLITest creates an app over an empty in-memory slot with a
// deterministic clock and ids (task-0001, task-0002, ...).
// This function is only for CLI tests and is isolated in a separate package
// to avoid import cycles when service tests import testutil
func SetupCLITest(t *testing.T) (*persistence.MemorySlot, *app.App) {
	t.Helper()
	return setup(t, taskservice.WithSeed(nil))
}

// SetupSeededCLITest is SetupCLITest with the sample board loaded
func SetupSeededCLITest(t *testing.T) (*persistence.MemorySlot, *app.App) {
	t.Helper()
	return setup(t)
}

func setup(t *testing.T, extra ...taskservice.Option) (*persistence.MemorySlot, *app.App) {
	t.Helper()

	cfg := config.Default()
	cfg.Storage.Backend = config.BackendMemory

	slot := persistence.NewMemorySlot()
	opts := append([]taskservice.Option{
		taskservice.WithClock(testutil.FixedClock(Epoch)),
		taskservice.WithIDGenerator(testutil.SequentialIDs()),
	}, extra...)

	appInstance, err := app.New(context.Background(), cfg,
		app.WithSlot(slot),
		app.WithTaskOptions(opts...),
	)
	if err != nil {
		t.Fatalf("Failed to create test app: %v", err)
	}
	t.Cleanup(func() { _ = appInstance.Close() })

	return slot, appInstance
}

// CreateTestTask creates a task through the service and returns it
func CreateTestTask(t *testing.T, a *app.App, req taskservice.CreateTaskRequest) models.Task {
	t.Helper()
	task, err := a.TaskService.CreateTask(context.Background(), req)
	if err != nil {
		t.Fatalf("Failed to create test task: %v", err)
	}
	if task == nil {
		t.Fatalf("Test task %q was not created", req.Title)
	}
	return *task
}
