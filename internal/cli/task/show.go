package task

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"

	"github.com/thenoetrevino/flowboard/internal/cli"
	"github.com/thenoetrevino/flowboard/internal/cli/styles"
	"github.com/thenoetrevino/flowboard/internal/models"
)

// ShowCmd returns the task show subcommand
func ShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show [id]",
		Short: "Show task details",
		Long:  "Display all details of a task. The description is rendered as markdown.",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runShow,
	}

	addIDFlag(cmd)
	cli.AddAgentFlags(cmd)

	return cmd
}

func runShow(cmd *cobra.Command, args []string) error {
	formatter := cli.Formatter(cmd)

	cliInstance, err := cli.Open(cmd, formatter)
	if err != nil {
		return err
	}
	defer cli.CloseCLI(cliInstance)

	task, err := resolve(cmd, formatter, cliInstance.App.TaskService, taskRef(cmd, args))
	if err != nil {
		return err
	}

	// Output in appropriate format
	if formatter.Quiet {
		fmt.Println(task.ID)
		return nil
	}

	if formatter.JSON {
		return formatter.JSONSuccess("task", task)
	}

	fmt.Println(renderTask(task))
	return nil
}

// renderTask lays out a task as a bordered card
func renderTask(task models.Task) string {
	var content strings.Builder

	content.WriteString(styles.TitleStyle.Render(task.Title))
	content.WriteString("\n")
	content.WriteString(styles.SubtitleStyle.Render(string(task.ID)))
	content.WriteString("\n\n")

	col, _ := models.ColumnByKey(task.Status)
	fmt.Fprintf(&content, "%s %s  %s %s\n",
		styles.LabelStyle.Render("Status:"), styles.Column(col),
		styles.LabelStyle.Render("Priority:"), styles.Priority(task.Priority),
	)
	if task.Assignee != "" {
		fmt.Fprintf(&content, "%s %s\n", styles.LabelStyle.Render("Assignee:"), styles.ValueStyle.Render(task.Assignee))
	}
	if created := task.Created(); !created.IsZero() {
		fmt.Fprintf(&content, "%s %s\n",
			styles.LabelStyle.Render("Created:"),
			styles.SubtitleStyle.Render(created.Local().Format("Jan 2, 2006 3:04 PM")))
	}
	if due, ok := task.Due(); ok {
		fmt.Fprintf(&content, "%s %s\n",
			styles.LabelStyle.Render("Due:"),
			styles.ValueStyle.Render(due.Format("Jan 2, 2006")))
	}
	if len(task.Tags) > 0 {
		fmt.Fprintf(&content, "%s %s\n", styles.LabelStyle.Render("Tags:"), styles.Tags(task.Tags))
	}

	if task.Description != "" {
		content.WriteString(styles.SectionStyle.Render("Description"))
		content.WriteString("\n")
		content.WriteString(renderMarkdown(task.Description, styles.CardWidth-6))
		content.WriteString("\n")
	}

	return styles.CardStyle.Render(content.String())
}

// renderMarkdown renders md with glamour, falling back to the raw text
func renderMarkdown(md string, width int) string {
	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return md
	}
	out, err := renderer.Render(md)
	if err != nil {
		return md
	}
	return strings.TrimSpace(out)
}
