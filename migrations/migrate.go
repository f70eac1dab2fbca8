// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package migrations embeds the schema for every supported database dialect
// and applies it with goose.
package migrations

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"

	"github.com/pressly/goose/v3"
)

//go:embed sqlite/*.sql postgres/*.sql
var embedMigrations embed.FS

// Goose dialect names, matching the directories holding their migrations.
const (
	DialectSQLite   = "sqlite3"
	DialectPostgres = "postgres"
)

var dirs = map[string]string{
	DialectSQLite:   "sqlite",
	DialectPostgres: "postgres",
}

// ErrUnknownDialect is returned for a dialect without embedded migrations.
var ErrUnknownDialect = errors.New("unknown migration dialect")

// Migrate applies every pending migration for dialect to db.
func Migrate(db *sql.DB, dialect string) error {
	if db == nil {
		return errors.New("migration error: db is nil")
	}
	dir, ok := dirs[dialect]
	if !ok {
		return fmt.Errorf("migration error: %w: %q", ErrUnknownDialect, dialect)
	}

	goose.SetBaseFS(embedMigrations)

	if err := goose.SetDialect(dialect); err != nil {
		return fmt.Errorf("migration error setting dialect for db: %w", err)
	}

	if err := goose.Up(db, dir); err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	return nil
}
