package cli

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/flowboard/internal/board"
	"github.com/thenoetrevino/flowboard/internal/converters"
	"github.com/thenoetrevino/flowboard/internal/models"
	taskservice "github.com/thenoetrevino/flowboard/internal/services/task"
	"github.com/thenoetrevino/flowboard/internal/types"
)

// AddAgentFlags registers --json and --quiet (REQUIRED on all commands)
func AddAgentFlags(cmd *cobra.Command) {
	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output (ID only)")
}

// AddFilterFlags registers the board filter flags
func AddFilterFlags(cmd *cobra.Command) {
	cmd.Flags().String("search", "", "Case-insensitive text in title, description or tags")
	cmd.Flags().String("priority", models.FilterAll, "Priority filter: all, high, medium, low")
	cmd.Flags().String("tag", models.FilterAll, "Tag filter: all or a tag")
}

// Formatter builds the output formatter from the agent flags
func Formatter(cmd *cobra.Command) *OutputFormatter {
	jsonOutput, _ := cmd.Flags().GetBool("json")
	quietMode, _ := cmd.Flags().GetBool("quiet")
	return &OutputFormatter{JSON: jsonOutput, Quiet: quietMode}
}

// Fail reports an error through the formatter and returns it tagged with
// the exit code
func Fail(f *OutputFormatter, exitCode int, code string, err error, suggestion string) error {
	if fmtErr := f.ErrorWithSuggestion(code, err.Error(), suggestion); fmtErr != nil {
		slog.Error("failed to format error message", "error", fmtErr)
	}
	return Exit(exitCode, err)
}

// Open returns the CLI for cmd, reporting initialization failures
func Open(cmd *cobra.Command, f *OutputFormatter) (*CLI, error) {
	cliInstance, err := GetCLIFromContext(cmd.Context())
	if err != nil {
		return nil, Fail(f, ExitError, "INITIALIZATION_ERROR", err, "")
	}
	return cliInstance, nil
}

// CloseCLI closes c, logging failures
func CloseCLI(c *CLI) {
	if err := c.Close(); err != nil {
		slog.Error("failed to close CLI", "error", err)
	}
}

// ParseFilters reads the filter flags into board filters
func ParseFilters(cmd *cobra.Command) (board.Filters, error) {
	search, _ := cmd.Flags().GetString("search")
	priority, _ := cmd.Flags().GetString("priority")
	tag, _ := cmd.Flags().GetString("tag")

	f := board.Filters{Search: search, Priority: models.FilterAll, Tag: models.FilterAll}

	if p := strings.TrimSpace(priority); p != "" && !strings.EqualFold(p, models.FilterAll) {
		parsed, err := converters.ParsePriority(p)
		if err != nil {
			return board.Filters{}, err
		}
		f.Priority = string(parsed)
	}
	if t := converters.NormalizeTag(tag); t != "" {
		f.Tag = t
	}
	return f, nil
}

// ResolveTask finds a task by full id or by a unique id prefix
func ResolveTask(ctx context.Context, svc taskservice.Service, ref string) (models.Task, error) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return models.Task{}, fmt.Errorf("%w: empty id", taskservice.ErrTaskNotFound)
	}
	if t, ok := svc.Get(ctx, types.TaskID(ref)); ok {
		return t, nil
	}

	var matches []models.Task
	for _, t := range svc.List(ctx) {
		if strings.HasPrefix(string(t.ID), ref) {
			matches = append(matches, t)
		}
	}
	switch len(matches) {
	case 0:
		return models.Task{}, fmt.Errorf("%w: %s", taskservice.ErrTaskNotFound, ref)
	case 1:
		return matches[0], nil
	default:
		return models.Task{}, fmt.Errorf("%w: %s matches %d tasks", ErrAmbiguousID, ref, len(matches))
	}
}

// ShortID returns the first eight characters of an id for display
func ShortID(id types.TaskID) string {
	s := string(id)
	if len(s) > 8 {
		return s[:8]
	}
	return s
}
