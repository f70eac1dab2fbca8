// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "context"

// Server defines the lifecycle contract for the transport servers managed
// by this package.
type Server interface {
	// Run starts serving and blocks until ctx is cancelled or the listener
	// fails. A cancelled context leads to a graceful shutdown and a nil
	// error.
	Run(ctx context.Context) error
}
