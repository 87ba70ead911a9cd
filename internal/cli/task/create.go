package task

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/flowboard/internal/cli"
	"github.com/thenoetrevino/flowboard/internal/converters"
	"github.com/thenoetrevino/flowboard/internal/models"
	taskservice "github.com/thenoetrevino/flowboard/internal/services/task"
	"github.com/thenoetrevino/flowboard/internal/user"
)

// CreateCmd returns the task create subcommand
func CreateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a new task",
		Long: `Create a new task. New tasks are placed at the top of their column's store order.

Examples:
  # Simple task (human-readable output)
  flowboard task create --title="Fix bug"

  # JSON output for agents
  flowboard task create --title="Fix bug" --json

  # Quiet mode for bash capture
  TASK_ID=$(flowboard task create --title="Fix bug" --quiet)

  # Full example with all options
  flowboard task create \
    --title="QA regression pass" \
    --description="Run the release checklist" \
    --status=review \
    --priority=high \
    --assignee="Laura Chen" \
    --due=2024-06-01 \
    --tag=qa --tag=release
`,
		RunE: runCreate,
	}

	// Required flags
	cmd.Flags().String("title", "", "Task title (required)")
	if err := cmd.MarkFlagRequired("title"); err != nil {
		slog.Error("failed to mark flag as required", "error", err)
	}

	// Optional flags
	cmd.Flags().String("description", "", "Task description, markdown (use - for stdin)")
	cmd.Flags().String("status", string(models.StatusBacklog), "Column: backlog, inProgress, review, done")
	cmd.Flags().String("priority", string(models.DefaultPriority), "Priority: high, medium, low")
	cmd.Flags().String("assignee", "", "Person responsible (@me for yourself)")
	cmd.Flags().String("due", "", "Due date: YYYY-MM-DD or RFC 3339")
	cmd.Flags().StringSlice("tag", nil, "Tag (repeatable or comma separated)")

	cli.AddAgentFlags(cmd)

	return cmd
}

func runCreate(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	title, _ := cmd.Flags().GetString("title")
	description, _ := cmd.Flags().GetString("description")
	statusFlag, _ := cmd.Flags().GetString("status")
	priorityFlag, _ := cmd.Flags().GetString("priority")
	assignee, _ := cmd.Flags().GetString("assignee")
	dueFlag, _ := cmd.Flags().GetString("due")
	tags, _ := cmd.Flags().GetStringSlice("tag")

	formatter := cli.Formatter(cmd)

	// Parse and validate input before touching storage
	status, err := converters.ParseStatus(statusFlag)
	if err != nil {
		return cli.Fail(formatter, cli.ExitValidation, "INVALID_STATUS", err, statusSuggestion())
	}
	priority, err := converters.ParsePriority(priorityFlag)
	if err != nil {
		return cli.Fail(formatter, cli.ExitValidation, "INVALID_PRIORITY", err, prioritySuggestion)
	}
	due, err := converters.ParseDueDate(dueFlag)
	if err != nil {
		return cli.Fail(formatter, cli.ExitValidation, "INVALID_DUE_DATE", err, "Example: --due=2024-06-01")
	}

	// Handle description from stdin
	if description == "-" {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return cli.Fail(formatter, cli.ExitError, "STDIN_READ_ERROR", err, "")
		}
		description = string(data)
	}

	cliInstance, err := cli.Open(cmd, formatter)
	if err != nil {
		return err
	}
	defer cli.CloseCLI(cliInstance)

	task, err := cliInstance.App.TaskService.CreateTask(ctx, taskservice.CreateTaskRequest{
		Title:       title,
		Description: converters.NormalizeText(description),
		Status:      status,
		Priority:    priority,
		Assignee:    converters.NormalizeText(user.ResolveAssignee(assignee)),
		DueDate:     due,
		Tags:        tags,
	})
	if err != nil {
		return cli.Fail(formatter, cli.ExitError, "TASK_CREATE_ERROR", err, "")
	}
	if task == nil {
		return cli.Fail(formatter, cli.ExitValidation, "EMPTY_TITLE",
			errors.New("task title cannot be empty"), "Provide a non-blank --title")
	}

	// Output based on mode (JSON/Quiet/Human)
	if formatter.Quiet {
		fmt.Println(task.ID)
		return nil
	}

	if formatter.JSON {
		return formatter.JSONSuccess("task", task)
	}

	fmt.Printf("✓ Task '%s' created successfully (ID: %s)\n", task.Title, cli.ShortID(task.ID))
	fmt.Printf("  Status: %s\n", converters.ColumnTitle(task.Status))
	fmt.Printf("  Priority: %s\n", task.Priority)
	if task.Assignee != "" {
		fmt.Printf("  Assignee: %s\n", task.Assignee)
	}
	if len(task.Tags) > 0 {
		fmt.Printf("  Tags: %v\n", task.Tags)
	}
	if !cliInstance.App.Durable() {
		fmt.Fprintln(os.Stderr, "⚠ storage is not durable; this task lives only for this process")
	}

	return nil
}
