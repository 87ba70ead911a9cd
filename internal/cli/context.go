package cli

import (
	"context"

	"github.com/thenoetrevino/flowboard/internal/app"
	"github.com/thenoetrevino/flowboard/internal/cli/styles"
)

type contextKey struct{}

// WithApp attaches an already-built app to ctx. Commands executed with this
// context use it instead of opening storage themselves.
func WithApp(ctx context.Context, a *app.App) context.Context {
	return context.WithValue(ctx, contextKey{}, a)
}

// GetCLIFromContext returns the CLI for a command invocation, reusing an app
// attached with WithApp when present
func GetCLIFromContext(ctx context.Context) (*CLI, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	if a, ok := ctx.Value(contextKey{}).(*app.App); ok && a != nil {
		styles.Init(a.Config.ColorScheme)
		return &CLI{App: a}, nil
	}
	return NewCLI(ctx)
}
