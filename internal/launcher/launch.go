// Package launcher starts the interactive board.
package launcher

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	tea "charm.land/bubbletea/v2"

	"github.com/thenoetrevino/flowboard/internal/app"
	"github.com/thenoetrevino/flowboard/internal/config"
	"github.com/thenoetrevino/flowboard/internal/tui/core"
)

// Launch loads the configuration, opens storage and runs the TUI until the
// user quits or the process is interrupted
func Launch(ctx context.Context) error {
	// Root context with signal handling for graceful shutdown
	ctx, cancel := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer cancel()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	application, err := app.New(ctx, cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize application: %w", err)
	}
	defer func() {
		if err := application.Close(); err != nil {
			slog.Error("error closing storage", "error", err)
		}
	}()

	return Run(ctx, application)
}

// Run drives the TUI over an already opened application
func Run(ctx context.Context, application *app.App, opts ...tea.ProgramOption) error {
	tuiApp := core.New(ctx, application)
	opts = append([]tea.ProgramOption{tea.WithContext(ctx)}, opts...)

	if _, err := tea.NewProgram(tuiApp, opts...).Run(); err != nil {
		if ctx.Err() != nil {
			slog.Info("shutdown signal received")
			return nil
		}
		return fmt.Errorf("error running program: %w", err)
	}
	return nil
}
