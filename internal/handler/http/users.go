// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/shintya-qr/internal/logger"
	"github.com/MKhiriev/shintya-qr/internal/utils"
	"github.com/MKhiriev/shintya-qr/models"
)

func (h *Handler) registerUser(w http.ResponseWriter, r *http.Request) {
	var user models.User
	if err := decodeBody(w, r, &user); err != nil {
		writeError(w, r, err)
		return
	}

	registered, err := h.services.UserService.Register(r.Context(), user)
	if err != nil {
		writeError(w, r, err)
		return
	}

	logger.FromRequest(r).Info().Int64("user_id", registered.UserID).Msg("user registered")
	_, _ = utils.WriteJSON(w, registered, http.StatusCreated)
}
