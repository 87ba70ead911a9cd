package task

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/flowboard/internal/cli"
	"github.com/thenoetrevino/flowboard/internal/converters"
	"github.com/thenoetrevino/flowboard/internal/models"
)

// MoveCmd returns the task move subcommand
func MoveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "move <id> <next|prev|column>",
		Short: "Move a task to another column",
		Long: `Move a task to another column by direction or column name.
This is the command-line equivalent of dragging a card onto a column.

Examples:
  # Move to next column
  flowboard task move 3f2a next

  # Move to previous column
  flowboard task move 3f2a prev

  # Move to specific column by name (case-insensitive)
  flowboard task move 3f2a "In Progress"
  flowboard task move 3f2a done

  # JSON output for agents
  flowboard task move 3f2a next --json
`,
		Args: cobra.ExactArgs(2),
		RunE: runMove,
	}

	cli.AddAgentFlags(cmd)

	return cmd
}

func runMove(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.Formatter(cmd)
	target := args[1]

	cliInstance, err := cli.Open(cmd, formatter)
	if err != nil {
		return err
	}
	defer cli.CloseCLI(cliInstance)

	svc := cliInstance.App.TaskService
	task, err := resolve(cmd, formatter, svc, args[0])
	if err != nil {
		return err
	}
	from := task.Status

	// Handle the target: next, prev, or column name
	switch strings.ToLower(strings.TrimSpace(target)) {
	case "next":
		err = svc.MoveTaskToNextColumn(ctx, task.ID)
	case "prev", "previous":
		err = svc.MoveTaskToPrevColumn(ctx, task.ID)
	default:
		status, parseErr := converters.ParseStatus(target)
		if parseErr != nil {
			return cli.Fail(formatter, cli.ExitNotFound, "COLUMN_NOT_FOUND", parseErr,
				fmt.Sprintf("Task is currently in: %s\n%s", converters.ColumnTitle(from), statusSuggestion()))
		}
		err = svc.MoveTask(ctx, task.ID, status)
	}

	switch {
	case errors.Is(err, models.ErrAlreadyLastColumn):
		return cli.Fail(formatter, cli.ExitValidation, "NO_NEXT_COLUMN",
			fmt.Errorf("task is already in the last column (%s)", converters.ColumnTitle(from)), "")
	case errors.Is(err, models.ErrAlreadyFirstColumn):
		return cli.Fail(formatter, cli.ExitValidation, "NO_PREV_COLUMN",
			fmt.Errorf("task is already in the first column (%s)", converters.ColumnTitle(from)), "")
	case err != nil:
		return cli.Fail(formatter, cli.ExitError, "MOVE_ERROR", err, "")
	}

	moved, _ := svc.Get(ctx, task.ID)

	// Output success
	if formatter.Quiet {
		fmt.Println(moved.ID)
		return nil
	}

	if formatter.JSON {
		return formatter.JSONSuccess("move", map[string]any{
			"task_id":     moved.ID,
			"from_column": from,
			"to_column":   moved.Status,
		})
	}

	if from == moved.Status {
		fmt.Printf("Task %s is already in '%s'\n", cli.ShortID(moved.ID), converters.ColumnTitle(moved.Status))
	} else {
		fmt.Printf("Task %s moved to '%s'\n", cli.ShortID(moved.ID), converters.ColumnTitle(moved.Status))
	}
	return nil
}
