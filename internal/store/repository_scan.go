// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/MKhiriev/shintya-qr/internal/logger"
	"github.com/MKhiriev/shintya-qr/models"
)

type scanRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewScanRepository constructs a [ScanRepository] backed by db.
func NewScanRepository(db *DB, logger *logger.Logger) ScanRepository {
	logger.Debug().Msg("creating scan repository")
	return &scanRepository{
		db:     db,
		logger: logger,
	}
}

// SaveScan records scan. A second scan with the same identity and nonce
// fails with [ErrNonceReplayed].
func (r *scanRepository) SaveScan(ctx context.Context, scan models.Scan) error {
	log := logger.FromContext(ctx)

	query, args, err := buildSaveScanQuery(r.db.builder, scan)
	if err != nil {
		log.Err(err).Str("func", "*scanRepository.SaveScan").Msg("error building query")
		return err
	}

	var res sql.Result
	err = r.db.withRetry(ctx, func() error {
		var execErr error
		res, execErr = r.db.ExecContext(ctx, query, args...)
		return execErr
	})
	if err != nil {
		if r.db.errorClassificator.IsUniqueViolation(err) {
			return ErrNonceReplayed
		}
		log.Err(err).Str("func", "*scanRepository.SaveScan").Msg("error inserting scan")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return ErrScanNotSaved
	}
	return nil
}

// DeleteScansBefore removes scans recorded before the given moment and
// returns how many were deleted.
func (r *scanRepository) DeleteScansBefore(ctx context.Context, before time.Time) (int64, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteScansBeforeQuery(r.db.builder, before.UTC())
	if err != nil {
		log.Err(err).Str("func", "*scanRepository.DeleteScansBefore").Msg("error building query")
		return 0, err
	}

	var res sql.Result
	err = r.db.withRetry(ctx, func() error {
		var execErr error
		res, execErr = r.db.ExecContext(ctx, query, args...)
		return execErr
	})
	if err != nil {
		log.Err(err).Str("func", "*scanRepository.DeleteScansBefore").Msg("error deleting scans")
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	return n, nil
}
