package app

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/redis/go-redis/v9"

	"github.com/thenoetrevino/flowboard/internal/config"
	"github.com/thenoetrevino/flowboard/internal/database"
	"github.com/thenoetrevino/flowboard/internal/persistence"
)

// OpenSlot builds the slot backend named by cfg.Backend
func OpenSlot(ctx context.Context, cfg config.StorageConfig) (persistence.Slot, error) {
	switch cfg.Backend {
	case config.BackendSQLite, "":
		db, err := database.InitDB(ctx, sqlitePath(cfg.Path))
		if err != nil {
			return nil, err
		}
		return database.NewSlotRepo(db), nil

	case config.BackendFile:
		dir := cfg.Path
		if dir == "" {
			home, err := os.UserHomeDir()
			if err != nil {
				return nil, fmt.Errorf("failed to get home directory: %w", err)
			}
			dir = filepath.Join(home, ".flowboard", "slots")
		}
		slot, err := persistence.NewFileSlot(dir)
		if err != nil {
			return nil, err
		}
		return slot, nil

	case config.BackendRedis:
		slot, err := persistence.DialRedisSlot(ctx, &redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		}, cfg.Redis.Prefix)
		if err != nil {
			return nil, err
		}
		return slot, nil

	case config.BackendAzure:
		slot, err := persistence.DialTableSlot(ctx, cfg.Azure.ConnectionString, cfg.Azure.Table, cfg.Azure.Partition)
		if err != nil {
			return nil, err
		}
		return slot, nil

	case config.BackendMemory:
		return persistence.NewMemorySlot(), nil

	case config.BackendNone:
		return persistence.NopSlot{}, nil

	default:
		return nil, fmt.Errorf("%w: %q", persistence.ErrUnknownBackend, cfg.Backend)
	}
}

// sqlitePath treats a directory path as the folder holding flowboard.db
func sqlitePath(path string) string {
	if path == "" || path == database.MemoryPath {
		return path
	}
	if info, err := os.Stat(path); err == nil && info.IsDir() {
		return filepath.Join(path, "flowboard.db")
	}
	return path
}
