package task

import (
	"errors"
	"strings"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/flowboard/internal/cli"
	"github.com/thenoetrevino/flowboard/internal/converters"
	"github.com/thenoetrevino/flowboard/internal/models"
	taskservice "github.com/thenoetrevino/flowboard/internal/services/task"
)

// TaskCmd returns the task parent command
func TaskCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "task",
		Short: "Manage tasks",
	}

	cmd.AddCommand(CreateCmd())
	cmd.AddCommand(ListCmd())
	cmd.AddCommand(ShowCmd())
	cmd.AddCommand(UpdateCmd())
	cmd.AddCommand(MoveCmd())
	cmd.AddCommand(DeleteCmd())

	return cmd
}

// addIDFlag registers --id as an alternative to the positional id
func addIDFlag(cmd *cobra.Command) {
	cmd.Flags().String("id", "", "Task ID or unique prefix (can also be provided as positional argument)")
}

// taskRef reads the task id from the first positional arg or --id
func taskRef(cmd *cobra.Command, args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	id, _ := cmd.Flags().GetString("id")
	return id
}

// resolve looks up the referenced task and reports lookup failures
func resolve(cmd *cobra.Command, f *cli.OutputFormatter, svc taskservice.Service, ref string) (models.Task, error) {
	if strings.TrimSpace(ref) == "" {
		return models.Task{}, cli.Fail(f, cli.ExitUsage, "INVALID_TASK_ID",
			errors.New("task ID is required"),
			"Usage: flowboard task "+cmd.Name()+" <id> or --id=<id>")
	}

	t, err := cli.ResolveTask(cmd.Context(), svc, ref)
	switch {
	case errors.Is(err, cli.ErrAmbiguousID):
		return models.Task{}, cli.Fail(f, cli.ExitUsage, "AMBIGUOUS_TASK_ID", err,
			"Use more characters of the ID")
	case err != nil:
		return models.Task{}, cli.Fail(f, cli.ExitNotFound, "TASK_NOT_FOUND", err,
			"Use 'flowboard task list' to see available tasks")
	}
	return t, nil
}

// statusSuggestion lists the accepted status names
func statusSuggestion() string {
	return "Valid statuses are: " + strings.Join(converters.StatusNames(), ", ")
}

const prioritySuggestion = "Valid priorities are: high, medium, low"
