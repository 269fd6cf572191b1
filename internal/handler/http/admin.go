// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/MKhiriev/passport-api/internal/utils"
	"github.com/MKhiriev/passport-api/models"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) deleteUser(w http.ResponseWriter, r *http.Request) {
	identity, ok := utils.IdentityFromContext(r.Context())
	if !ok {
		h.writeError(w, r, ErrNotAuthenticatedOrNoRole)
		return
	}

	rawID := chi.URLParam(r, "id")
	targetID, err := strconv.ParseInt(rawID, 10, 64)
	if err != nil || targetID <= 0 {
		h.writeError(w, r, fmt.Errorf("%w: %q", ErrInvalidUserID, rawID))
		return
	}

	if err = h.services.UserService.DeleteUser(r.Context(), identity.UserID, targetID); err != nil {
		h.writeError(w, r, err)
		return
	}

	h.writeJSON(w, r, models.Response{
		Status:  models.StatusSuccess,
		Message: "user deleted",
	}, http.StatusOK)
}
