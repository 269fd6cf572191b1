// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/MKhiriev/passport-api/internal/logger"
	"github.com/MKhiriev/passport-api/internal/metrics"
	"github.com/MKhiriev/passport-api/internal/utils"
	"github.com/MKhiriev/passport-api/models"
)

// maxBodyBytes caps JSON request bodies.
const maxBodyBytes = 1 << 20

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var request models.RegisterRequest
	if err := decodeJSON(w, r, &request); err != nil {
		h.writeError(w, r, err)
		return
	}

	registeredUser, err := h.services.AuthService.RegisterUser(ctx, request)
	if err != nil {
		metrics.RecordAuthAttempt(metrics.FlowRegister, false)
		h.writeError(w, r, err)
		return
	}

	token, err := h.services.AuthService.CreateToken(ctx, registeredUser)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	h.cookies.Set(w, token, false)
	metrics.RecordAuthAttempt(metrics.FlowRegister, true)
	log.Debug().Int64("id", registeredUser.UserID).Msg("user registered and logged in")

	user := registeredUser.Public()
	h.writeJSON(w, r, models.Response{
		Status:  models.StatusSuccess,
		Message: "user registered successfully",
		Token:   token.SignedString,
		User:    &user,
	}, http.StatusCreated)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var request models.LoginRequest
	if err := decodeJSON(w, r, &request); err != nil {
		h.writeError(w, r, err)
		return
	}

	foundUser, err := h.services.AuthService.Login(ctx, request)
	if err != nil {
		metrics.RecordAuthAttempt(metrics.FlowLogin, false)
		h.writeError(w, r, err)
		return
	}

	token, err := h.services.AuthService.CreateToken(ctx, foundUser)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	h.cookies.Set(w, token, request.RememberMe)
	metrics.RecordAuthAttempt(metrics.FlowLogin, true)
	log.Debug().Int64("id", foundUser.UserID).Bool("remember", request.RememberMe).Msg("user successfully logged in")

	user := foundUser.Public()
	h.writeJSON(w, r, models.Response{
		Status:  models.StatusSuccess,
		Message: "login successful",
		Token:   token.SignedString,
		User:    &user,
	}, http.StatusOK)
}

// logout only clears the cookie. The token itself stays valid until it
// expires.
func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	h.cookies.Clear(w)
	h.writeJSON(w, r, models.Response{
		Status:  models.StatusSuccess,
		Message: "logged out",
	}, http.StatusOK)
}

func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(dst); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidJSON, err)
	}
	return nil
}

func (h *Handler) writeJSON(w http.ResponseWriter, r *http.Request, data any, statusCode int) {
	if _, err := utils.WriteJSON(w, data, statusCode); err != nil {
		logger.FromRequest(r).Err(err).Msg("error writing response")
	}
}
