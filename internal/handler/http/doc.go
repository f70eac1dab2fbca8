// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package http implements the REST transport of the gate.
//
// It wires the chi router, the trace-id and access-log middleware and the
// handlers for admitting, issuing and decoding envelopes and for registering
// users. Every failed request is answered with a [models.ErrorResponse] whose
// Error field is the transport code returned by [service.KindOf].
package http
