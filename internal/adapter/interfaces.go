// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter is the client side of the gate REST API.
//
// [GateAdapter] is what a scanner or the envelope CLI uses to submit
// envelopes. Failed calls are mapped back to the sentinel errors of the
// envelope and service packages through the "error" code of the response
// body, so callers can use [errors.Is] exactly as they would in-process.
package adapter

import (
	"context"

	"github.com/MKhiriev/shintya-qr/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/gate_adapter_mock.go -package=mock

// GateAdapter talks to a running gate.
type GateAdapter interface {
	// Admit submits a scanned envelope and returns the gate decision.
	Admit(ctx context.Context, env string) (models.Admission, error)

	// Issue asks the gate to seal an envelope for a registered identity.
	Issue(ctx context.Context, field, identity string) (models.IssuedEnvelope, error)

	// Version returns the envelope format reported by the gate.
	Version(ctx context.Context) (string, error)
}
