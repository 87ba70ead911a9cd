package view

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/flowboard/internal/cli"
)

// ResetCmd returns the reset command
func ResetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Replace every task with the sample board",
		Long:  "Discard all tasks and restore the four sample tasks (requires confirmation unless --force, --json or --quiet).",
		RunE:  runReset,
	}

	cmd.Flags().Bool("force", false, "Skip confirmation")
	cli.AddAgentFlags(cmd)

	return cmd
}

func runReset(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	force, _ := cmd.Flags().GetBool("force")
	formatter := cli.Formatter(cmd)

	cliInstance, err := cli.Open(cmd, formatter)
	if err != nil {
		return err
	}
	defer cli.CloseCLI(cliInstance)

	svc := cliInstance.App.TaskService

	if !force && !formatter.Quiet && !formatter.JSON {
		fmt.Printf("Replace all %d tasks with the sample board? (y/N): ", len(svc.List(ctx)))
		response, _ := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
		response = strings.ToLower(strings.TrimSpace(response))
		if response != "y" && response != "yes" {
			fmt.Println("Cancelled")
			return nil
		}
	}

	if err := svc.Reset(ctx); err != nil {
		return cli.Fail(formatter, cli.ExitError, "RESET_ERROR", err, "")
	}

	tasks := svc.List(ctx)
	if formatter.Quiet {
		for _, t := range tasks {
			fmt.Println(t.ID)
		}
		return nil
	}

	if formatter.JSON {
		return formatter.JSONSuccess("tasks", tasks)
	}

	fmt.Printf("✓ Board reset to %d sample tasks\n", len(tasks))
	return nil
}
