// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "net/http"

func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	status, err := h.services.HealthService.Check(r.Context())
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	h.writeJSON(w, r, status, http.StatusOK)
}
