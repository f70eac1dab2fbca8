// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package workers runs the background jobs of the gate.
//
// Each [Worker] owns its goroutine: Start launches it and Stop cancels it and
// waits for it to exit. [Workers] starts and stops all of them together.
package workers

import "context"

// Worker is a background job bound to a context.
//
// Start must not block. Calling Start on a running worker restarts it.
// Stop is safe to call on a worker that is not running.
type Worker interface {
	Start(ctx context.Context)
	Stop()
}
