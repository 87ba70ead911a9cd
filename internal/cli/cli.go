package cli

import (
	"context"
	"fmt"

	"github.com/thenoetrevino/flowboard/internal/app"
	"github.com/thenoetrevino/flowboard/internal/cli/styles"
	"github.com/thenoetrevino/flowboard/internal/config"
)

// CLI represents the CLI application context
type CLI struct {
	App *app.App // Application container with services

	// owned is false when the app was injected by the caller, who then closes it
	owned bool
}

// NewCLI loads the user's config and opens the configured storage
func NewCLI(ctx context.Context) (*CLI, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	application, err := app.New(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize storage: %w", err)
	}
	styles.Init(cfg.ColorScheme)

	return &CLI{App: application, owned: true}, nil
}

// Close cleans up CLI resources
func (c *CLI) Close() error {
	if !c.owned {
		return nil
	}
	return c.App.Close()
}
