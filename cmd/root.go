package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/flowboard/internal/cli"
	"github.com/thenoetrevino/flowboard/internal/cli/task"
	"github.com/thenoetrevino/flowboard/internal/cli/view"
	"github.com/thenoetrevino/flowboard/internal/config"
	"github.com/thenoetrevino/flowboard/internal/launcher"
	"github.com/thenoetrevino/flowboard/internal/logging"
)

// logCloser releases the log file once the command finished
var logCloser io.Closer

// NewRootCmd builds the flowboard command tree. Without a subcommand the
// interactive board starts.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "flowboard",
		Short: "Flowboard - A terminal-based kanban board",
		Long: `Flowboard is a four column kanban board (Backlog, In Progress, Review, Done)
that runs in the terminal. Run it without arguments for the interactive board,
or use the subcommands to script it.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: initLogging,
		RunE: func(cmd *cobra.Command, args []string) error {
			return launcher.Launch(cmd.Context())
		},
	}

	rootCmd.SetFlagErrorFunc(func(c *cobra.Command, err error) error {
		fmt.Fprintf(c.ErrOrStderr(), "Error: %v\n", err)
		return cli.Exit(cli.ExitUsage, err)
	})

	rootCmd.AddCommand(task.TaskCmd())
	rootCmd.AddCommand(view.BoardCmd())
	rootCmd.AddCommand(view.StatsCmd())
	rootCmd.AddCommand(view.TagsCmd())
	rootCmd.AddCommand(view.ResetCmd())

	return rootCmd
}

// initLogging points slog at the log file. A broken config or log directory
// never blocks the command itself.
func initLogging(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		cfg = config.Default()
	}
	closer, err := logging.Init(cfg.Log.Dir, cfg.Log.Level)
	if err != nil {
		return nil
	}
	logCloser = closer
	return nil
}

// Execute runs the root command and returns the process exit code
func Execute() int {
	err := NewRootCmd().ExecuteContext(context.Background())
	if logCloser != nil {
		_ = logCloser.Close()
	}
	if err == nil {
		return cli.ExitSuccess
	}

	// Command failures were already reported by the output formatter;
	// anything else is a flag parsing or startup error
	var cmdErr *cli.CommandError
	if !errors.As(err, &cmdErr) {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}
	return cli.ExitCode(err)
}
