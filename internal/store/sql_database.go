// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/shintya-qr/internal/logger"
	"github.com/MKhiriev/shintya-qr/migrations"
)

// Dialect names a supported database backend. The value doubles as the
// goose dialect name.
type Dialect string

const (
	DialectSQLite   Dialect = migrations.DialectSQLite
	DialectPostgres Dialect = migrations.DialectPostgres
)

// DialectFor picks the backend for dsn: PostgreSQL URLs use pgx, anything
// else is treated as a SQLite path.
func DialectFor(dsn string) Dialect {
	if strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://") {
		return DialectPostgres
	}
	return DialectSQLite
}

// statementBuilder returns a squirrel builder with the placeholder format of
// dialect.
func statementBuilder(dialect Dialect) sq.StatementBuilderType {
	if dialect == DialectPostgres {
		return sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
	}
	return sq.StatementBuilder.PlaceholderFormat(sq.Question)
}

// DB wraps a database handle with its dialect, query builder and error
// classifier.
type DB struct {
	*sql.DB
	dialect            Dialect
	builder            sq.StatementBuilderType
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

func newDB(conn *sql.DB, dialect Dialect, classifier ErrorClassificator, log *logger.Logger) *DB {
	return &DB{
		DB:                 conn,
		dialect:            dialect,
		builder:            statementBuilder(dialect),
		errorClassificator: classifier,
		logger:             log,
	}
}

// Migrate applies the embedded migrations for the connection dialect.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, string(db.dialect))
}

const (
	maxAttempts  = 3
	retryBackoff = 50 * time.Millisecond
)

// withRetry runs op until it succeeds, fails with an error the classifier
// does not consider retryable, or maxAttempts is reached.
func (db *DB) withRetry(ctx context.Context, op func() error) error {
	var err error
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		if err = op(); err == nil {
			return nil
		}
		if db.errorClassificator.Classify(err) != Retryable || attempt == maxAttempts {
			return err
		}

		db.logger.Warn().Err(err).Int("attempt", attempt).Msg("retrying database operation")
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(time.Duration(attempt) * retryBackoff):
		}
	}
	return err
}
