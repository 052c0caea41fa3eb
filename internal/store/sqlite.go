// Package store keeps a history of designs in a SQLite database.
package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

const schemaV1 = `
CREATE TABLE IF NOT EXISTS designs (
	id              TEXT PRIMARY KEY,
	kind            TEXT NOT NULL,
	name            TEXT NOT NULL DEFAULT '',
	project         TEXT NOT NULL DEFAULT '',
	span            REAL NOT NULL,
	moment          REAL NOT NULL,
	load_type       TEXT NOT NULL,
	steel_grade     TEXT NOT NULL,
	code            TEXT NOT NULL,
	section_name    TEXT NOT NULL,
	section_type    TEXT NOT NULL,
	overall_status  TEXT NOT NULL,
	result_json     TEXT NOT NULL DEFAULT '{}',
	created_at_unix INTEGER NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_designs_created ON designs(created_at_unix);
CREATE INDEX IF NOT EXISTS idx_designs_project ON designs(project);
`

// NewDB opens the SQLite database at path, creating its directory if
// needed, and migrates the schema
func NewDB(path string) (*sql.DB, error) {
	if dir := filepath.Dir(path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("create database directory: %w", err)
		}
	}

	dsn := fmt.Sprintf("file:%s?_pragma=journal_mode(WAL)&_pragma=synchronous(NORMAL)&_pragma=busy_timeout(5000)", path)
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	// single writer
	db.SetMaxOpenConns(1)

	if err := migrate(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate schema: %w", err)
	}
	return db, nil
}

func migrate(db *sql.DB) error {
	_, err := db.ExecContext(context.Background(), schemaV1)
	return err
}
