// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrIdentityAlreadyExists is returned when a user with the same identity
	// is already registered.
	ErrIdentityAlreadyExists = errors.New("identity already exists")

	// ErrNoUserWasFound is returned when no registered user matches the
	// requested identity.
	ErrNoUserWasFound = errors.New("no user was found")

	// ErrNonceReplayed is returned when a scan with the same identity and
	// nonce was already recorded.
	ErrNonceReplayed = errors.New("nonce was already used")

	// ErrScanNotSaved is returned when the scan INSERT completes without error
	// but affects no rows.
	ErrScanNotSaved = errors.New("scan was not saved")

	// ErrUnsupportedDSN is returned when the DSN names neither a PostgreSQL
	// URL nor a usable SQLite path.
	ErrUnsupportedDSN = errors.New("unsupported database DSN")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a query fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrScanningRow is returned when scanning column values from a result
	// row fails.
	ErrScanningRow = errors.New("failed to scan row")
)
