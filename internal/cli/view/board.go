// Package view holds the read-side commands: the grouped board, aggregate
// statistics and the tag list, plus reset which restores the sample board.
package view

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/flowboard/internal/board"
	"github.com/thenoetrevino/flowboard/internal/cli"
	"github.com/thenoetrevino/flowboard/internal/cli/styles"
)

// BoardCmd returns the board command
func BoardCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "board",
		Short: "Show tasks grouped by column",
		Long: `Show the board: tasks grouped into Backlog, In Progress, Review and Done,
each column sorted by priority (high first) and then newest first.

Examples:
  flowboard board
  flowboard board --priority=high
  flowboard board --tag=qa --search=release --json
`,
		RunE: runBoard,
	}

	cli.AddFilterFlags(cmd)
	cli.AddAgentFlags(cmd)

	return cmd
}

func runBoard(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.Formatter(cmd)

	filters, err := cli.ParseFilters(cmd)
	if err != nil {
		return cli.Fail(formatter, cli.ExitValidation, "INVALID_PRIORITY", err, "Valid priorities are: all, high, medium, low")
	}

	cliInstance, err := cli.Open(cmd, formatter)
	if err != nil {
		return err
	}
	defer cli.CloseCLI(cliInstance)

	v := cliInstance.App.View(ctx, filters)

	if formatter.Quiet {
		for _, col := range v.Columns {
			for _, t := range col.Tasks {
				fmt.Println(t.ID)
			}
		}
		return nil
	}

	if formatter.JSON {
		return formatter.JSONSuccess("board", map[string]any{
			"filters": map[string]string{
				"search":   filters.Search,
				"priority": filters.Priority,
				"tag":      filters.Tag,
			},
			"columns": v.Columns,
			"stats":   v.Stats,
			"tags":    v.Tags,
			"visible": v.Visible,
		})
	}

	fmt.Print(renderBoard(v))
	return nil
}

// renderBoard prints each column with its cards, then the summary line
func renderBoard(v board.View) string {
	var b strings.Builder
	for _, col := range v.Columns {
		fmt.Fprintf(&b, "%s %s\n", styles.Column(col.Column), styles.SubtitleStyle.Render(fmt.Sprintf("(%d)", len(col.Tasks))))
		if len(col.Tasks) == 0 {
			b.WriteString(styles.SubtitleStyle.Render("  No tasks"))
			b.WriteString("\n")
		}
		for _, t := range col.Tasks {
			line := fmt.Sprintf("  [%s] %s  %s", cli.ShortID(t.ID), t.Title, styles.Priority(t.Priority))
			if len(t.Tags) > 0 {
				line += "  " + styles.Tags(t.Tags)
			}
			b.WriteString(line)
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}
	b.WriteString(summaryLine(v.Stats))
	b.WriteString("\n")
	if v.Filters.Active() {
		fmt.Fprintf(&b, "%s\n", styles.SubtitleStyle.Render(fmt.Sprintf("Showing %d of %d tasks", v.Visible, v.Stats.Total)))
	}
	return b.String()
}

func summaryLine(s board.Stats) string {
	parts := []string{
		fmt.Sprintf("%s %d", styles.LabelStyle.Render("Total:"), s.Total),
		fmt.Sprintf("%s %d%%", styles.LabelStyle.Render("Complete:"), s.Completion),
	}
	for _, c := range s.ByColumn {
		parts = append(parts, fmt.Sprintf("%s %d", c.Title, c.Count))
	}
	return strings.Join(parts, "  ")
}
