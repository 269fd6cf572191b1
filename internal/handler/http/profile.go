// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/passport-api/internal/utils"
	"github.com/MKhiriev/passport-api/models"
)

func (h *Handler) getProfile(w http.ResponseWriter, r *http.Request) {
	identity, ok := utils.IdentityFromContext(r.Context())
	if !ok {
		h.writeError(w, r, ErrNoToken)
		return
	}

	user, err := h.services.UserService.GetProfile(r.Context(), identity.UserID)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	public := user.Public()
	h.writeJSON(w, r, models.Response{
		Status: models.StatusSuccess,
		Data:   &public,
	}, http.StatusOK)
}

func (h *Handler) updateProfile(w http.ResponseWriter, r *http.Request) {
	identity, ok := utils.IdentityFromContext(r.Context())
	if !ok {
		h.writeError(w, r, ErrNoToken)
		return
	}

	var request models.UpdateProfileRequest
	if err := decodeJSON(w, r, &request); err != nil {
		h.writeError(w, r, err)
		return
	}

	updatedUser, err := h.services.UserService.UpdateProfile(r.Context(), identity.UserID, request)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	public := updatedUser.Public()
	h.writeJSON(w, r, models.Response{
		Status:  models.StatusSuccess,
		Message: "profile updated",
		User:    &public,
	}, http.StatusOK)
}

// deleteAccount hard-deletes the caller and drops the now useless cookie.
func (h *Handler) deleteAccount(w http.ResponseWriter, r *http.Request) {
	identity, ok := utils.IdentityFromContext(r.Context())
	if !ok {
		h.writeError(w, r, ErrNoToken)
		return
	}

	if err := h.services.UserService.DeleteAccount(r.Context(), identity.UserID); err != nil {
		h.writeError(w, r, err)
		return
	}

	h.cookies.Clear(w)
	w.WriteHeader(http.StatusNoContent)
}
