// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "errors"

// Validation errors returned when a required configuration group is
// incomplete or invalid. They are wrapped with the offending detail.
var (
	// ErrInvalidCodecConfigs indicates a short key, an out-of-range shift,
	// a non-positive freshness window or an unknown freshness mode.
	ErrInvalidCodecConfigs = errors.New("invalid codec configuration")
	// ErrInvalidServerConfigs indicates a missing listen address or
	// request timeout.
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidStorageConfigs indicates an empty DSN.
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidAdapterConfigs indicates a missing gate address or request
	// timeout.
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
	// ErrInvalidWorkerConfigs indicates a zero prune interval or a retention
	// not longer than the freshness window.
	ErrInvalidWorkerConfigs = errors.New("invalid worker configuration")
)
