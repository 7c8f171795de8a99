// Package storage opens the local SQLite database and applies embedded
// schema migrations.
package storage

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/fun2learn/satvocab/internal/storage/migrations"
	"github.com/pressly/goose/v3"
)

// RunMigrations applies all pending goose migrations from the embedded FS.
func RunMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)

	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}

	return goose.UpContext(ctx, db, ".")
}

// InitDatabase opens (creating if needed) the SQLite database at dsn and
// brings its schema up to date. The caller owns the returned handle.
// The modernc.org/sqlite driver must be blank-imported by the binary.
func InitDatabase(ctx context.Context, dsn string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}

	if err := RunMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}

	return db, nil
}
