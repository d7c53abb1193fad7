package store

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"ecotech/internal/store/migrations"

	_ "github.com/lib/pq" // PostgreSQL driver
)

// OpenPostgres connects to a networked PostgreSQL database, verifies the
// connection and applies any pending migrations. The pool is bounded:
// this tool runs one interactive session, not a server.
func OpenPostgres(dsn string) (*SQLStore, error) {
	// Stray CR/LF from env-sourced DSN values breaks lib/pq parsing.
	dsn = strings.TrimSpace(dsn)

	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	db.SetMaxOpenConns(5)
	db.SetMaxIdleConns(2)
	db.SetConnMaxLifetime(5 * time.Minute)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to reach database: %w", err)
	}

	if err := migrations.MigrateUp(db, "postgres"); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrating postgres database: %w", err)
	}

	return New(db, "postgres"), nil
}
