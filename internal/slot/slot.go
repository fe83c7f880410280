// Package slot implements the persistence slot: a single named key in a local
// key-value store holding the task snapshot. Backends are a JSON file, a
// SQLite table and a Redis key.
package slot

import (
	"context"
	"errors"
	"fmt"

	"todo/internal/config"
)

// ErrNotFound is returned by Get when the key has never been set.
var ErrNotFound = errors.New("slot not found")

// Slot is a single-key store with full-overwrite semantics.
// Set must be atomic per key: a reader sees either the old or the new value.
type Slot interface {
	// Get returns the value stored under key, or ErrNotFound.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set replaces the value stored under key.
	Set(ctx context.Context, key string, value []byte) error

	// Close releases the backend.
	Close() error
}

// Open returns the slot backend selected by cfg.Backend.
func Open(ctx context.Context, cfg *config.Config) (Slot, error) {
	switch cfg.Backend {
	case config.BackendFile, "":
		return NewFile(cfg.Dir), nil
	case config.BackendSQLite:
		if err := cfg.EnsureDir(); err != nil {
			return nil, fmt.Errorf("failed to create config dir: %w", err)
		}
		return NewSQLite(cfg.DatabasePath())
	case config.BackendRedis:
		return NewRedis(ctx, cfg.RedisAddr, RedisPrefix)
	default:
		return nil, fmt.Errorf("unknown backend: %s", cfg.Backend)
	}
}

// Location describes where the slot for cfg lives.
func Location(cfg *config.Config) string {
	switch cfg.Backend {
	case config.BackendSQLite:
		return fmt.Sprintf("%s (table %s, key %s)", cfg.DatabasePath(), tableName, cfg.Key)
	case config.BackendRedis:
		return fmt.Sprintf("redis://%s/%s%s", cfg.RedisAddr, RedisPrefix, cfg.Key)
	default:
		return NewFile(cfg.Dir).Path(cfg.Key)
	}
}
