// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/shintya-qr/internal/config"
	"github.com/MKhiriev/shintya-qr/internal/logger"
)

// Storages bundles the repositories used by the gate services.
type Storages struct {
	UserRepository UserRepository
	ScanRepository ScanRepository

	db *DB
}

// NewStorages connects to the database selected by cfg.DB.DSN, applies the
// migrations for its dialect and builds the repositories.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	var (
		db  *DB
		err error
	)
	switch DialectFor(cfg.DB.DSN) {
	case DialectPostgres:
		db, err = NewConnectPostgres(ctx, cfg.DB, log)
	default:
		db, err = NewConnectSQLite(ctx, cfg.DB, log)
	}
	if err != nil {
		return nil, err
	}

	if err = db.Migrate(); err != nil {
		log.Err(err).Str("func", "NewStorages").Msg("error applying migrations")
		_ = db.Close()
		return nil, fmt.Errorf("error applying migrations: %w", err)
	}

	return newStorages(db, log), nil
}

func newStorages(db *DB, log *logger.Logger) *Storages {
	return &Storages{
		UserRepository: NewUserRepository(db, log),
		ScanRepository: NewScanRepository(db, log),
		db:             db,
	}
}

// Close releases the database connection.
func (s *Storages) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
