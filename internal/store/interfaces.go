// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"time"

	"github.com/MKhiriev/shintya-qr/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository stores the registry of identities allowed through the gate.
type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByIdentity(ctx context.Context, identity string) (models.User, error)
}

// ScanRepository records admitted envelopes for replay detection.
type ScanRepository interface {
	SaveScan(ctx context.Context, scan models.Scan) error
	DeleteScansBefore(ctx context.Context, before time.Time) (int64, error)
}

// ErrorClassificator maps driver errors to retry decisions and detects
// uniqueness violations for a specific database backend.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
	IsUniqueViolation(err error) bool
}
