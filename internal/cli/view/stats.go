package view

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/flowboard/internal/board"
	"github.com/thenoetrevino/flowboard/internal/cli"
)

// StatsCmd returns the stats command
func StatsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show task totals and completion",
		Long:  "Show the total task count, the count per column and the percentage of tasks that are done. Filters never apply to stats.",
		RunE:  runStats,
	}

	cli.AddAgentFlags(cmd)

	return cmd
}

func runStats(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.Formatter(cmd)

	cliInstance, err := cli.Open(cmd, formatter)
	if err != nil {
		return err
	}
	defer cli.CloseCLI(cliInstance)

	stats := cliInstance.App.View(ctx, board.Filters{}).Stats

	if formatter.Quiet {
		fmt.Printf("%d%%\n", stats.Completion)
		return nil
	}

	if formatter.JSON {
		return formatter.JSONSuccess("stats", stats)
	}

	fmt.Println(summaryLine(stats))
	return nil
}
