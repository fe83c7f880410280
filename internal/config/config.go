// Package config handles the configuration directory, storage backend
// selection and environment overrides.
package config

import (
	"fmt"
	"os"
	"path/filepath"
)

const (
	// AppName is the application directory name.
	AppName = "todo"

	// StorageKey is the persistence slot key. The version tag is bumped when
	// the snapshot format changes; older keys are not migrated.
	StorageKey = "todos-v1"

	// DatabaseFile is the SQLite database filename.
	DatabaseFile = "todo.db"

	// DefaultRedisAddr is used when no address is configured.
	DefaultRedisAddr = "localhost:6379"
)

// Storage backends.
const (
	BackendFile   = "file"
	BackendSQLite = "sqlite"
	BackendRedis  = "redis"
)

// Environment variables.
const (
	EnvBackend   = "TODO_BACKEND"
	EnvRedisAddr = "TODO_REDIS_ADDR"
)

// Config holds configuration paths and settings.
type Config struct {
	// Dir is the configuration directory path.
	Dir string

	// Backend is the storage backend: file, sqlite or redis.
	Backend string

	// RedisAddr is the Redis server address for the redis backend.
	RedisAddr string

	// Key is the persistence slot key.
	Key string

	// Debug enables debug logging.
	Debug bool

	// Quiet suppresses informational output.
	Quiet bool
}

// New creates a new Config with the default or specified config directory.
// If configDir is empty, uses XDG_CONFIG_HOME/todo or $HOME/.config/todo.
// Backend and Redis address come from the environment unless set later.
func New(configDir string) (*Config, error) {
	dir := configDir
	if dir == "" {
		dir = DefaultConfigDir()
	}
	return &Config{
		Dir:       dir,
		Backend:   getEnv(EnvBackend, BackendFile),
		RedisAddr: getEnv(EnvRedisAddr, DefaultRedisAddr),
		Key:       StorageKey,
	}, nil
}

// DefaultConfigDir returns the default configuration directory.
// Uses XDG_CONFIG_HOME if set, otherwise $HOME/.config.
func DefaultConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, AppName)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		// Fallback to current directory if home can't be determined
		return AppName
	}
	return filepath.Join(home, ".config", AppName)
}

// Validate checks that the backend is known.
func (c *Config) Validate() error {
	switch c.Backend {
	case BackendFile, BackendSQLite, BackendRedis:
		return nil
	default:
		return fmt.Errorf("unknown backend: %s", c.Backend)
	}
}

// DatabasePath returns the path to the SQLite database file.
func (c *Config) DatabasePath() string {
	return filepath.Join(c.Dir, DatabaseFile)
}

// EnsureDir creates the config directory if it doesn't exist.
// Directory is created with mode 0700.
func (c *Config) EnsureDir() error {
	return os.MkdirAll(c.Dir, 0700)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
