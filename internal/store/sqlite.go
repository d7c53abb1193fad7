package store

import (
	"database/sql"
	"fmt"

	"ecotech/internal/store/migrations"

	_ "github.com/mattn/go-sqlite3" // SQLite driver
)

// OpenSQLite opens a SQLite database, enables foreign keys and applies
// any pending migrations. path can be a file path or ":memory:".
func OpenSQLite(path string) (*SQLStore, error) {
	db, err := OpenSQLiteConnection(path)
	if err != nil {
		return nil, err
	}

	if err := migrations.MigrateUp(db, "sqlite3"); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrating sqlite database: %w", err)
	}

	return New(db, "sqlite3"), nil
}

// OpenSQLiteConnection opens and configures a raw SQLite connection.
// Exported for tests and tools that manage migrations themselves.
func OpenSQLiteConnection(path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Enable foreign key constraints (SQLite default is OFF for backward compatibility)
	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to enable foreign keys: %w", err)
	}

	return db, nil
}
