// Package core is the bubbletea entry point for the TUI.
package core

import (
	"context"

	tea "charm.land/bubbletea/v2"

	"github.com/thenoetrevino/flowboard/internal/app"
	"github.com/thenoetrevino/flowboard/internal/tui"
)

// App wraps the TUI Model and implements the tea.Model interface.
// It delegates all operations to the underlying Model.
type App struct {
	model *tui.Model
}

// New creates a new App over the application container
func New(ctx context.Context, a *app.App) *App {
	model := tui.InitialModel(ctx, a)
	return &App{model: &model}
}

// Init implements tea.Model
func (a *App) Init() tea.Cmd {
	return a.model.Init()
}

// Update implements tea.Model, storing the updated Model back
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	updatedModel, cmd := a.model.Update(msg)
	if m, ok := updatedModel.(tui.Model); ok {
		*a.model = m
	}
	return a, cmd
}

// View implements tea.Model
func (a *App) View() tea.View {
	return a.model.View()
}

// GetModel returns the underlying Model.
// This is primarily useful for testing purposes.
func (a *App) GetModel() *tui.Model {
	return a.model
}
