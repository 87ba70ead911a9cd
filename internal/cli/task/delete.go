package task

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/flowboard/internal/cli"
)

// DeleteCmd returns the task delete subcommand
func DeleteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete [id]",
		Short: "Delete a task",
		Long:  "Delete a task permanently (requires confirmation unless --force, --json or --quiet).",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runDelete,
	}

	addIDFlag(cmd)
	cmd.Flags().Bool("force", false, "Skip confirmation")
	cli.AddAgentFlags(cmd)

	return cmd
}

func runDelete(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	force, _ := cmd.Flags().GetBool("force")
	formatter := cli.Formatter(cmd)

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

	// Ask for confirmation unless forced or running for an agent
	if !force && !formatter.Quiet && !formatter.JSON {
		fmt.Printf("Delete task %s: '%s'? (y/N): ", cli.ShortID(task.ID), task.Title)
		response, _ := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
		response = strings.ToLower(strings.TrimSpace(response))
		if response != "y" && response != "yes" {
			fmt.Println("Cancelled")
			return nil
		}
	}

	if err := svc.DeleteTask(ctx, task.ID); err != nil {
		return cli.Fail(formatter, cli.ExitError, "DELETE_ERROR", err, "")
	}

	if formatter.Quiet {
		return nil
	}

	if formatter.JSON {
		return formatter.JSONSuccess("task_id", task.ID)
	}

	fmt.Printf("✓ Task %s deleted successfully\n", cli.ShortID(task.ID))
	return nil
}
