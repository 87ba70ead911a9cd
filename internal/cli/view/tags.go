package view

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/flowboard/internal/board"
	"github.com/thenoetrevino/flowboard/internal/cli"
	"github.com/thenoetrevino/flowboard/internal/models"
)

// TagsCmd returns the tags command
func TagsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tags",
		Short: "List every tag in use",
		Long:  "List every distinct tag in the order it first appears. JSON output includes the 'all' filter sentinel first.",
		RunE:  runTags,
	}

	cli.AddAgentFlags(cmd)

	return cmd
}

func runTags(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.Formatter(cmd)

	cliInstance, err := cli.Open(cmd, formatter)
	if err != nil {
		return err
	}
	defer cli.CloseCLI(cliInstance)

	universe := cliInstance.App.View(ctx, board.Filters{}).Tags

	if formatter.JSON {
		return formatter.JSONSuccess("tags", universe)
	}

	tags := universe[1:] // drop models.FilterAll
	if formatter.Quiet {
		for _, tag := range tags {
			fmt.Println(tag)
		}
		return nil
	}

	if len(tags) == 0 {
		fmt.Println("No tags in use")
		return nil
	}
	fmt.Printf("Found %d tags (filter with --tag, or %q for none):\n\n", len(tags), models.FilterAll)
	for _, tag := range tags {
		fmt.Printf("  #%s\n", tag)
	}
	return nil
}
