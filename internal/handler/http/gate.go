// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/shintya-qr/internal/utils"
	"github.com/MKhiriev/shintya-qr/models"
)

func (h *Handler) admit(w http.ResponseWriter, r *http.Request) {
	var req models.EnvelopeRequest
	if err := decodeBody(w, r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	admission, err := h.services.GateService.Admit(r.Context(), req.Envelope)
	if err != nil {
		writeError(w, r, err)
		return
	}

	_, _ = utils.WriteJSON(w, admission, http.StatusOK)
}
