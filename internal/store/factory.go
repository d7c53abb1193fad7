package store

import (
	"fmt"
	"os"
	"path/filepath"

	"ecotech/internal/config"
	"ecotech/internal/hr"
)

// NewStoreFromConfig creates a Store implementation based on the storage config type.
func NewStoreFromConfig(cfg config.StorageConfig) (hr.Store, error) {
	switch cfg.Type {
	case "sqlite":
		if cfg.DataDir == "" {
			return nil, fmt.Errorf("data_dir required for sqlite storage")
		}
		if err := os.MkdirAll(cfg.DataDir, 0755); err != nil {
			return nil, fmt.Errorf("creating data directory: %w", err)
		}
		return OpenSQLite(filepath.Join(cfg.DataDir, "ecotech.db"))
	case "memory":
		return OpenSQLite(":memory:")
	case "postgres":
		if cfg.DSN == "" {
			return nil, fmt.Errorf("dsn required for postgres storage")
		}
		return OpenPostgres(cfg.DSN)
	default:
		return nil, fmt.Errorf("unknown storage type: %s", cfg.Type)
	}
}
