// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
)

const buildVersionHeader = "X-Build-Version"

func (h *Handler) getServerVersion(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	serverVersion := h.services.AppInfoService.GetAppVersion(ctx)

	w.Header().Set("Content-Type", "text/plain")
	w.Header().Set(buildVersionHeader, h.services.AppInfoService.GetBuildInfo(ctx).BuildVersion())
	w.Write([]byte(serverVersion))
}
