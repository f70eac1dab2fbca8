// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/shintya-qr/models"
)

var (
	userColumns = []string{"user_id", "identity", "name", "locker", "created_at"}
	scanColumns = []string{"scan_id", "nonce", "identity", "session_id", "payload_timestamp", "scanned_at"}
)

func buildCreateUserQuery(b sq.StatementBuilderType, user models.User) (string, []any, error) {
	query, args, err := b.
		Insert(user.TableName()).
		Columns("identity", "name", "locker", "created_at").
		Values(user.Identity, user.Name, user.Locker, user.CreatedAt).
		Suffix("RETURNING user_id").
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildFindUserByIdentityQuery(b sq.StatementBuilderType, identity string) (string, []any, error) {
	query, args, err := b.
		Select(userColumns...).
		From(models.User{}.TableName()).
		Where(sq.Eq{"identity": identity}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildSaveScanQuery(b sq.StatementBuilderType, scan models.Scan) (string, []any, error) {
	query, args, err := b.
		Insert(scan.TableName()).
		Columns(scanColumns...).
		Values(scan.ScanID, scan.Nonce, scan.Identity, scan.SessionID, scan.PayloadTimestamp, scan.ScannedAt).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildDeleteScansBeforeQuery(b sq.StatementBuilderType, before time.Time) (string, []any, error) {
	query, args, err := b.
		Delete(models.Scan{}.TableName()).
		Where(sq.Lt{"scanned_at": before}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}
