package app

import (
	"github.com/thenoetrevino/flowboard/internal/persistence"
	taskservice "github.com/thenoetrevino/flowboard/internal/services/task"
)

// Option is a functional option for configuring App initialization
type Option func(*appConfig)

// appConfig holds the configuration for App initialization
type appConfig struct {
	slot        persistence.Slot
	taskOptions []taskservice.Option
}

// WithSlot bypasses the configured backend and stores tasks in slot
func WithSlot(slot persistence.Slot) Option {
	return func(cfg *appConfig) {
		cfg.slot = slot
	}
}

// WithTaskOptions passes options through to the task service
func WithTaskOptions(opts ...taskservice.Option) Option {
	return func(cfg *appConfig) {
		cfg.taskOptions = append(cfg.taskOptions, opts...)
	}
}
