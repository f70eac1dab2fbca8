// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Scan records one admitted envelope. The (Identity, Nonce) pair is unique,
// which is what rejects a replayed envelope inside the retention period.
type Scan struct {
	// ScanID is a UUID assigned by the gate.
	ScanID string `json:"scan_id"`

	Nonce     string `json:"nonce"`
	Identity  string `json:"identity"`
	SessionID string `json:"session_id"`

	// PayloadTimestamp is the producer timestamp in milliseconds.
	PayloadTimestamp int64 `json:"payload_timestamp"`

	// ScannedAt is the gate time of admission.
	ScannedAt time.Time `json:"scanned_at"`
}

// TableName returns the name of the database table
// associated with the Scan model.
func (s Scan) TableName() string {
	return "scans"
}
