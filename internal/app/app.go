package app

import (
	"context"
	"fmt"

	"github.com/thenoetrevino/flowboard/internal/board"
	"github.com/thenoetrevino/flowboard/internal/config"
	"github.com/thenoetrevino/flowboard/internal/persistence"
	taskservice "github.com/thenoetrevino/flowboard/internal/services/task"
)

// App holds all application services and provides dependency injection.
// This is the main application container that manages service lifecycles.
type App struct {
	Config *config.Config

	// Persistence layer (one durable slot)
	store *persistence.Adapter

	// Service layer (business logic)
	TaskService taskservice.Service

	// Memoized board projection
	board board.Memo
}

// New creates a new App with all services initialized.
// This is the single entry point for creating the application container.
func New(ctx context.Context, cfg *config.Config, opts ...Option) (*App, error) {
	if cfg == nil {
		cfg = config.Default()
	}

	ac := &appConfig{}
	for _, opt := range opts {
		opt(ac)
	}

	slot := ac.slot
	if slot == nil {
		var err error
		slot, err = OpenSlot(ctx, cfg.Storage)
		if err != nil {
			return nil, fmt.Errorf("failed to open %s storage: %w", cfg.Storage.Backend, err)
		}
	}

	store := persistence.NewAdapter(slot,
		persistence.WithKey(cfg.Storage.Key),
		persistence.WithStrictRecords(cfg.Storage.StrictRecords),
	)

	return &App{
		Config:      cfg,
		store:       store,
		TaskService: taskservice.NewService(ctx, store, ac.taskOptions...),
	}, nil
}

// View returns the board projection for filters, recomputed only when the
// task collection or the filters changed since the previous call
func (a *App) View(ctx context.Context, filters board.Filters) board.View {
	return a.board.View(ctx, a.TaskService, filters)
}

// Durable reports whether task changes survive the process
func (a *App) Durable() bool {
	return a.store.Available()
}

// StorageKey returns the slot key tasks are stored under
func (a *App) StorageKey() string {
	return a.store.Key()
}

// Close releases the storage backend
func (a *App) Close() error {
	return a.store.Close()
}
