package task

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/flowboard/internal/board"
	"github.com/thenoetrevino/flowboard/internal/cli"
	"github.com/thenoetrevino/flowboard/internal/converters"
	"github.com/thenoetrevino/flowboard/internal/models"
)

// ListCmd returns the task list subcommand
func ListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List tasks",
		Long: `List tasks in store order (newest first), optionally filtered.

Examples:
  flowboard task list
  flowboard task list --priority=high --tag=qa
  flowboard task list --status=review --json
`,
		RunE: runList,
	}

	cli.AddFilterFlags(cmd)
	cmd.Flags().String("status", "", "Only tasks in this column")
	cli.AddAgentFlags(cmd)

	return cmd
}

func runList(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.Formatter(cmd)

	filters, err := cli.ParseFilters(cmd)
	if err != nil {
		return cli.Fail(formatter, cli.ExitValidation, "INVALID_PRIORITY", err, prioritySuggestion)
	}

	var status models.ColumnKey
	if s, _ := cmd.Flags().GetString("status"); s != "" {
		status, err = converters.ParseStatus(s)
		if err != nil {
			return cli.Fail(formatter, cli.ExitValidation, "INVALID_STATUS", err, statusSuggestion())
		}
	}

	cliInstance, err := cli.Open(cmd, formatter)
	if err != nil {
		return err
	}
	defer cli.CloseCLI(cliInstance)

	tasks := board.Filter(cliInstance.App.TaskService.List(ctx), filters)
	if status != "" {
		inColumn := tasks[:0]
		for _, t := range tasks {
			if t.Status == status {
				inColumn = append(inColumn, t)
			}
		}
		tasks = inColumn
	}

	// Output in appropriate format
	if formatter.Quiet {
		for _, t := range tasks {
			fmt.Println(t.ID)
		}
		return nil
	}

	if formatter.JSON {
		return formatter.JSONSuccess("tasks", tasks)
	}

	if len(tasks) == 0 {
		fmt.Println("No tasks found")
		return nil
	}

	fmt.Printf("Found %d tasks:\n\n", len(tasks))
	for _, t := range tasks {
		fmt.Printf("  [%s] %s (%s, %s)\n", cli.ShortID(t.ID), t.Title, converters.ColumnTitle(t.Status), t.Priority)
	}

	return nil
}
