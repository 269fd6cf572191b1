// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/MKhiriev/passport-api/internal/logger"
	"github.com/MKhiriev/passport-api/internal/service"
	"github.com/MKhiriev/passport-api/internal/utils"
)

// auth is an HTTP middleware that enforces session cookie authentication.
//
// It reads the session token from the cookie, validates it via
// [service.AuthService.ParseToken] and, on success, attaches the decoded
// [models.Identity] to the request context before delegating to the next
// handler.
//
// Requests are rejected with:
//   - 401 when the cookie is absent or empty ([ErrNoToken]).
//   - 403 when the token is tampered, expired or otherwise invalid
//     ([service.ErrTokenIsExpiredOrInvalid]).
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		tokenString, ok := h.cookies.Token(r)
		if !ok {
			h.writeError(w, r, ErrNoToken)
			return
		}

		ctx := r.Context()
		token, err := h.services.AuthService.ParseToken(ctx, tokenString)
		if err != nil {
			if !errors.Is(err, service.ErrTokenIsExpiredOrInvalid) {
				err = fmt.Errorf("%w: %w", service.ErrTokenIsExpiredOrInvalid, err)
			}
			h.writeError(w, r, err)
			return
		}

		identity := token.Claims.Identity()
		log.Debug().Int64("user_id", identity.UserID).Msg("request authenticated")

		next.ServeHTTP(w, r.WithContext(utils.WithIdentity(ctx, identity)))
	})
}
