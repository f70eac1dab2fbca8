// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/shintya-qr/internal/envelope"
	"github.com/MKhiriev/shintya-qr/internal/logger"
	"github.com/MKhiriev/shintya-qr/internal/service"
	"github.com/MKhiriev/shintya-qr/internal/utils"
	"github.com/MKhiriev/shintya-qr/models"
)

// errorStatuses is matched in order, so a service error is found before the
// store error it wraps.
var errorStatuses = []struct {
	err    error
	status int
}{
	{ErrInvalidJSON, http.StatusBadRequest},
	{service.ErrInvalidDataProvided, http.StatusBadRequest},
	{service.ErrInvalidIdentity, http.StatusUnprocessableEntity},
	{service.ErrUnknownIdentity, http.StatusForbidden},
	{service.ErrEnvelopeReplayed, http.StatusConflict},
	{service.ErrIdentityTaken, http.StatusConflict},

	{envelope.ErrEmptyInput, http.StatusBadRequest},
	{envelope.ErrInvalidBase64, http.StatusBadRequest},
	{envelope.ErrInvalidBase64Character, http.StatusBadRequest},
	{envelope.ErrMalformedPayload, http.StatusBadRequest},
	{envelope.ErrMissingField, http.StatusUnprocessableEntity},
	{envelope.ErrAmbiguousIdentity, http.StatusUnprocessableEntity},
	{envelope.ErrInvalidNonceFormat, http.StatusUnprocessableEntity},
	{envelope.ErrChecksumMismatch, http.StatusUnprocessableEntity},
	{envelope.ErrTimestampExpired, http.StatusUnprocessableEntity},
}

func statusFromError(err error) int {
	for _, e := range errorStatuses {
		if errors.Is(err, e.err) {
			return e.status
		}
	}
	return http.StatusInternalServerError
}

// writeError answers the request with the status and transport code of err.
// Internal errors are reported without their text.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFromError(err)
	kind := service.KindOf(err)
	if errors.Is(err, ErrInvalidJSON) {
		kind = service.KindInvalidData
	}

	message := err.Error()
	if status == http.StatusInternalServerError {
		logger.FromRequest(r).Err(err).Msg("request failed")
		message = http.StatusText(status)
	}

	_, _ = utils.WriteJSON(w, models.ErrorResponse{Error: string(kind), Message: message}, status)
}
