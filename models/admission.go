// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Admission is the gate answer for an accepted envelope.
type Admission struct {
	ScanID     string    `json:"scan_id"`
	Identity   string    `json:"identity"`
	Field      string    `json:"field"`
	SessionID  string    `json:"session_id,omitempty"`
	Nonce      string    `json:"nonce"`
	Locker     string    `json:"locker,omitempty"`
	Version    string    `json:"version,omitempty"`
	AdmittedAt time.Time `json:"admitted_at"`
}

// IssuedEnvelope is a freshly sealed envelope for a registered identity.
type IssuedEnvelope struct {
	Envelope string    `json:"envelope"`
	Field    string    `json:"field"`
	Identity string    `json:"identity"`
	IssuedAt time.Time `json:"issued_at"`
}
