// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/shintya-qr/internal/utils"
	"github.com/MKhiriev/shintya-qr/models"
)

func (h *Handler) issue(w http.ResponseWriter, r *http.Request) {
	var req models.IssueRequest
	if err := decodeBody(w, r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	issued, err := h.services.EnvelopeService.Issue(r.Context(), req.Field, req.Identity)
	if err != nil {
		writeError(w, r, err)
		return
	}

	_, _ = utils.WriteJSON(w, issued, http.StatusOK)
}

func (h *Handler) decode(w http.ResponseWriter, r *http.Request) {
	var req models.EnvelopeRequest
	if err := decodeBody(w, r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	payload, err := h.services.EnvelopeService.Decode(r.Context(), req.Envelope)
	if err != nil {
		writeError(w, r, err)
		return
	}

	_, _ = utils.WriteJSON(w, models.DecodeResponse{Fields: payload}, http.StatusOK)
}
