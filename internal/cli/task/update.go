package task

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/flowboard/internal/cli"
	"github.com/thenoetrevino/flowboard/internal/converters"
	taskservice "github.com/thenoetrevino/flowboard/internal/services/task"
	"github.com/thenoetrevino/flowboard/internal/user"
)

// UpdateCmd returns the task update subcommand
func UpdateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update [id]",
		Short: "Update a task",
		Long: `Update any field of a task. Only the flags you pass are changed.

Examples:
  flowboard task update 3f2a --title="Ship analytics"
  flowboard task update 3f2a --priority=high --tag=qa --tag=release
  flowboard task update 3f2a --due="" --assignee=""
`,
		Args: cobra.MaximumNArgs(1),
		RunE: runUpdate,
	}

	addIDFlag(cmd)

	// Optional update flags
	cmd.Flags().String("title", "", "New task title")
	cmd.Flags().String("description", "", "New task description (empty clears)")
	cmd.Flags().String("status", "", "New column: backlog, inProgress, review, done")
	cmd.Flags().String("priority", "", "New priority: high, medium, low")
	cmd.Flags().String("assignee", "", "New assignee, @me for yourself (empty clears)")
	cmd.Flags().String("due", "", "New due date: YYYY-MM-DD or RFC 3339 (empty clears)")
	cmd.Flags().StringSlice("tag", nil, "Replace tags (repeatable or comma separated)")
	cmd.Flags().Bool("clear-tags", false, "Remove all tags")

	cli.AddAgentFlags(cmd)

	return cmd
}

func runUpdate(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.Formatter(cmd)

	req, err := buildUpdateRequest(cmd, formatter)
	if err != nil {
		return err
	}

	cliInstance, err := cli.Open(cmd, formatter)
	if err != nil {
		return err
	}
	defer cli.CloseCLI(cliInstance)

	svc := cliInstance.App.TaskService
	task, err := resolve(cmd, formatter, svc, taskRef(cmd, args))
	if err != nil {
		return err
	}

	if err := svc.UpdateTask(ctx, task.ID, req); err != nil {
		switch {
		case errors.Is(err, taskservice.ErrEmptyTitle),
			errors.Is(err, taskservice.ErrTitleTooLong),
			errors.Is(err, taskservice.ErrInvalidStatus),
			errors.Is(err, taskservice.ErrInvalidPriority):
			return cli.Fail(formatter, cli.ExitValidation, "INVALID_UPDATE", err, "")
		default:
			return cli.Fail(formatter, cli.ExitError, "UPDATE_ERROR", err, "")
		}
	}

	updated, _ := svc.Get(ctx, task.ID)

	if formatter.Quiet {
		fmt.Println(updated.ID)
		return nil
	}

	if formatter.JSON {
		return formatter.JSONSuccess("task", updated)
	}

	fmt.Printf("✓ Task %s updated successfully\n", cli.ShortID(updated.ID))
	return nil
}

// buildUpdateRequest turns the changed flags into a partial update
func buildUpdateRequest(cmd *cobra.Command, formatter *cli.OutputFormatter) (taskservice.UpdateTaskRequest, error) {
	var req taskservice.UpdateTaskRequest
	flags := cmd.Flags()
	changed := false

	if flags.Changed("title") {
		title, _ := flags.GetString("title")
		req.Title = &title
		changed = true
	}
	if flags.Changed("description") {
		description, _ := flags.GetString("description")
		description = converters.NormalizeText(description)
		req.Description = &description
		changed = true
	}
	if flags.Changed("status") {
		s, _ := flags.GetString("status")
		status, err := converters.ParseStatus(s)
		if err != nil {
			return req, cli.Fail(formatter, cli.ExitValidation, "INVALID_STATUS", err, statusSuggestion())
		}
		req.Status = &status
		changed = true
	}
	if flags.Changed("priority") {
		p, _ := flags.GetString("priority")
		priority, err := converters.ParsePriority(p)
		if err != nil {
			return req, cli.Fail(formatter, cli.ExitValidation, "INVALID_PRIORITY", err, prioritySuggestion)
		}
		req.Priority = &priority
		changed = true
	}
	if flags.Changed("assignee") {
		assignee, _ := flags.GetString("assignee")
		assignee = converters.NormalizeText(user.ResolveAssignee(assignee))
		req.Assignee = &assignee
		changed = true
	}
	if flags.Changed("due") {
		d, _ := flags.GetString("due")
		due, err := converters.ParseDueDate(d)
		if err != nil {
			return req, cli.Fail(formatter, cli.ExitValidation, "INVALID_DUE_DATE", err, "Example: --due=2024-06-01")
		}
		req.DueDate = &due
		changed = true
	}
	if flags.Changed("tag") {
		tags, _ := flags.GetStringSlice("tag")
		req.Tags = &tags
		changed = true
	}
	if clearTags, _ := flags.GetBool("clear-tags"); clearTags {
		empty := []string{}
		req.Tags = &empty
		changed = true
	}

	if !changed {
		return req, cli.Fail(formatter, cli.ExitUsage, "NO_UPDATES",
			errors.New("no fields to update"),
			"Pass at least one of --title, --description, --status, --priority, --assignee, --due, --tag")
	}
	return req, nil
}
