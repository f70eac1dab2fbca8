// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// EnvelopeRequest carries an envelope to admit or decode.
type EnvelopeRequest struct {
	Envelope string `json:"envelope"`
}

// IssueRequest asks the gate to seal an envelope for a registered identity.
// Field defaults to "email" when empty.
type IssueRequest struct {
	Field    string `json:"field,omitempty"`
	Identity string `json:"identity"`
}

// DecodeResponse lists the fields recovered from a valid envelope.
type DecodeResponse struct {
	Fields map[string]string `json:"fields"`
}

// ErrorResponse is the body written for every failed request. Error is a
// stable machine-readable kind, Message is for humans.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}
